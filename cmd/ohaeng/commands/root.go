package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	tablesPath string
	seed       int64
	jsonOutput bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ohaeng",
	Short: "오행 운세 & 궁합 엔진",
	Long: `Ohaeng Unified CLI

생년월일과 날짜로 오행(목화토금수) 기반 일간 운세를 계산하고
개인/팀 궁합을 분석합니다.

Usage:
  go run ./cmd/ohaeng [command]

Examples:
  go run ./cmd/ohaeng daily --birth 1990-03-15 --date 2024-06-01
  go run ./cmd/ohaeng weekly --birth 1990-03-15 --start 2024-06-01
  go run ./cmd/ohaeng compat --a wood:yang --b fire:yin
  go run ./cmd/ohaeng api`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags (환경변수보다 우선)
	rootCmd.PersistentFlags().StringVar(&tablesPath, "tables", "", "scoring tables YAML (default: FORTUNE_TABLES_PATH or built-in)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for category noise (default: FORTUNE_RANDOM_SEED or time)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logs on stderr)")
}
