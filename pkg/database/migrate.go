package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Migrate applies every *.sql file in fsys in lexical order, in one transaction
// 스키마 파일은 IF NOT EXISTS 로 작성되어 있어 반복 실행해도 안전
func (db *DB) Migrate(ctx context.Context, fsys fs.FS) ([]string, error) {
	names, err := MigrationFiles(fsys)
	if err != nil {
		return nil, err
	}

	bodies := make([]string, len(names))
	for i, name := range names {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		bodies[i] = string(body)
	}

	err = db.WithTx(ctx, func(tx pgx.Tx) error {
		for i, body := range bodies {
			if _, err := tx.Exec(ctx, body); err != nil {
				return fmt.Errorf("apply migration %s: %w", names[i], err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

// MigrationFiles lists the *.sql files of fsys in apply order
func MigrationFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}
