package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wonny/ohaeng/backend/internal/fortuneconfig"
)

// tablesCmd represents the tables command
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "점수 테이블 관리",
	Long: `카테고리 친화 오행 / 관계 가감 / 노이즈 테이블을 검증하거나 출력합니다.

Subcommands:
  validate  - YAML 테이블 검증
  hash      - 테이블 해시 (저장된 레코드 추적용)
  dump      - 내장 기본 테이블을 YAML로 출력

Example:
  go run ./cmd/ohaeng tables validate config/fortune/default_tables.yaml
  go run ./cmd/ohaeng tables hash
  go run ./cmd/ohaeng tables dump > my_tables.yaml`,
}

var (
	tablesValidateCmd = &cobra.Command{
		Use:   "validate [file]",
		Short: "YAML 테이블 검증",
		Args:  cobra.ExactArgs(1),
		RunE:  runTablesValidate,
	}

	tablesHashCmd = &cobra.Command{
		Use:   "hash [file]",
		Short: "테이블 해시 출력 (파일 생략 시 내장 테이블)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTablesHash,
	}

	tablesDumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "내장 기본 테이블 출력",
		Args:  cobra.NoArgs,
		RunE:  runTablesDump,
	}
)

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.AddCommand(tablesValidateCmd)
	tablesCmd.AddCommand(tablesHashCmd)
	tablesCmd.AddCommand(tablesDumpCmd)
}

func runTablesValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, _, err := fortuneconfig.Load(path)
	if err != nil {
		PrintError(fmt.Sprintf("%s: %v", path, err))
		return err
	}

	tables, err := fortuneconfig.Compile(cfg)
	if err != nil {
		PrintError(fmt.Sprintf("%s: %v", path, err))
		return err
	}

	PrintSuccess(fmt.Sprintf("%s is valid", path))
	PrintKeyValue("Version", cfg.Meta.Version)
	PrintKeyValue("Noise max", fmt.Sprintf("±%d", tables.NoiseMax))
	PrintKeyValue("Hash", tables.Hash)
	return nil
}

func runTablesHash(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	tables, err := fortuneconfig.LoadTables(path)
	if err != nil {
		return err
	}

	fmt.Println(tables.Hash)
	return nil
}

func runTablesDump(cmd *cobra.Command, args []string) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()

	return enc.Encode(fortuneconfig.Default())
}
