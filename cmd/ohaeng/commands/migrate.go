package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/ohaeng/backend/migrations"
	"github.com/wonny/ohaeng/backend/pkg/config"
	"github.com/wonny/ohaeng/backend/pkg/database"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "DB 스키마 마이그레이션",
	Long: `바이너리에 내장된 migrations/*.sql 을 파일명 순서로 적용합니다.
각 파일은 멱등(CREATE ... IF NOT EXISTS)이라 반복 실행해도 안전합니다.

Example:
  go run ./cmd/ohaeng migrate
  go run ./cmd/ohaeng migrate --dry-run`,
	RunE: runMigrate,
}

var migrateDryRun bool

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "적용할 파일만 출력")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if migrateDryRun {
		files, err := database.MigrationFiles(migrations.FS)
		if err != nil {
			return err
		}
		fmt.Println("Migrations to apply:")
		PrintList(files)
		return nil
	}

	cfg, err := config.LoadForServer()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	applied, err := db.Migrate(cmd.Context(), migrations.FS)
	if err != nil {
		PrintError(err.Error())
		return err
	}

	for _, name := range applied {
		PrintSuccess(name)
	}
	fmt.Printf("\n%d migration(s) applied\n", len(applied))
	return nil
}
