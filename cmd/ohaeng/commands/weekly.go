package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// weeklyCmd represents the weekly command
var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "주간 운세 요약",
	Long: `시작일부터 N일간의 종합 점수를 계산하고 최고/최저일을 표시합니다.

Example:
  go run ./cmd/ohaeng weekly --birth 1990-03-15 --start 2024-06-01
  go run ./cmd/ohaeng weekly --birth 1990-03-15 --start 2024-06-01 --days 14`,
	RunE: runWeekly,
}

var (
	weeklyBirth string
	weeklyStart string
	weeklyDays  int
)

func init() {
	rootCmd.AddCommand(weeklyCmd)

	weeklyCmd.Flags().StringVar(&weeklyBirth, "birth", "", "birth date (YYYY-MM-DD)")
	weeklyCmd.Flags().StringVar(&weeklyStart, "start", "", "first day (YYYY-MM-DD, default today)")
	weeklyCmd.Flags().IntVar(&weeklyDays, "days", 7, "number of days")
	_ = weeklyCmd.MarkFlagRequired("birth")
}

func runWeekly(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	log := cliLogger(cfg)

	forecasts, err := offlineForecasts(cfg, log)
	if err != nil {
		return fmt.Errorf("init engine: %w", err)
	}

	start := weeklyStart
	if start == "" {
		start = today()
	}

	weekly, err := forecasts.WeeklyFromText(cmd.Context(), weeklyBirth, start, weeklyDays)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(weekly)
	}
	printWeekly(weekly)
	return nil
}
