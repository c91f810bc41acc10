package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/ohaeng/backend/internal/advisor"
)

// dailyCmd represents the daily command
var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "일간 운세 계산",
	Long: `생년월일과 대상 날짜로 일간 운세를 계산합니다.

이 명령어는:
- 생년월일에서 개인 오행 프로필 도출
- 대상 날짜의 일진 오행/음양 계산
- 종합 점수 + 5개 카테고리 점수 + 행운 색/방위 출력

DB 없이 동작하며 저장하지 않습니다.

Example:
  go run ./cmd/ohaeng daily --birth 1990-03-15 --date 2024-06-01
  go run ./cmd/ohaeng daily --birth 1990-03-15 --seed 42 --json
  go run ./cmd/ohaeng daily --birth 1990-03-15 --context`,
	RunE: runDaily,
}

var (
	dailyBirth   string
	dailyDate    string
	dailyContext bool
)

func init() {
	rootCmd.AddCommand(dailyCmd)

	dailyCmd.Flags().StringVar(&dailyBirth, "birth", "", "birth date (YYYY-MM-DD)")
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "target date (YYYY-MM-DD, default today)")
	dailyCmd.Flags().BoolVar(&dailyContext, "context", false, "print the assistant prompt context instead")
	_ = dailyCmd.MarkFlagRequired("birth")
}

func runDaily(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	log := cliLogger(cfg)

	forecasts, err := offlineForecasts(cfg, log)
	if err != nil {
		return fmt.Errorf("init engine: %w", err)
	}

	target := dailyDate
	if target == "" {
		target = today()
	}

	rec, err := forecasts.DailyFromText(cmd.Context(), dailyBirth, target)
	if err != nil {
		return err
	}

	if dailyContext {
		pc, err := advisor.BuildContext(rec)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(pc)
		}
		fmt.Println(pc.Text)
		return nil
	}

	if jsonOutput {
		return printJSON(rec)
	}
	printDaily(dailyBirth, rec)
	return nil
}
