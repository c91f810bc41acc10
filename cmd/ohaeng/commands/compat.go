package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/ohaeng/backend/internal/compatibility"
	"github.com/wonny/ohaeng/backend/internal/contracts"
)

// compatCmd represents the compat command
var compatCmd = &cobra.Command{
	Use:   "compat",
	Short: "개인 궁합 점수",
	Long: `두 오행 프로필의 궁합 점수(0~100)를 계산합니다.

프로필 형식: main[/secondary]:polarity
점수는 비대칭입니다 (A→B 와 B→A 가 다를 수 있음).

Example:
  go run ./cmd/ohaeng compat --a wood:yang --b fire:yin
  go run ./cmd/ohaeng compat --a metal/water:yang --b earth:yin --json`,
	RunE: runCompat,
}

var (
	compatA string
	compatB string
)

func init() {
	rootCmd.AddCommand(compatCmd)

	compatCmd.Flags().StringVar(&compatA, "a", "", "first profile (e.g. wood:yang)")
	compatCmd.Flags().StringVar(&compatB, "b", "", "second profile (e.g. fire/earth:yin)")
	_ = compatCmd.MarkFlagRequired("a")
	_ = compatCmd.MarkFlagRequired("b")
}

func runCompat(cmd *cobra.Command, args []string) error {
	a, err := contracts.ParseProfile(compatA)
	if err != nil {
		return err
	}
	b, err := contracts.ParseProfile(compatB)
	if err != nil {
		return err
	}

	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	log := cliLogger(cfg)

	result := compatibility.NewAnalyzer(log.Zerolog()).CalculatePersonalCompatibility(a, b)

	if jsonOutput {
		return printJSON(result)
	}
	printCompatibility(a, b, result)
	return nil
}
