package fortune

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/ohaeng/backend/internal/contracts"
)

// Repository 일간 운세 레코드 저장소
// (birth_date, target_date) 당 최초 저장본이 영구 보존된다
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository 새 저장소 생성
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// StoredRecord 저장된 레코드 + 메타
type StoredRecord struct {
	ID         uuid.UUID                    `json:"id"`
	BirthDate  time.Time                    `json:"birth_date"`
	TargetDate time.Time                    `json:"target_date"`
	TablesHash string                       `json:"tables_hash"`
	Record     contracts.DailyFortuneRecord `json:"record"`
	CreatedAt  time.Time                    `json:"created_at"`
}

// SaveDaily 레코드 저장 (이미 있으면 기존 레코드 유지)
// 실제로 보존된 레코드를 반환한다
func (r *Repository) SaveDaily(ctx context.Context, birth time.Time, record contracts.DailyFortuneRecord, tablesHash string) (*StoredRecord, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	query := `
		INSERT INTO fortune.daily_records
			(id, birth_date, target_date, record, tables_hash)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (birth_date, target_date) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query,
		uuid.New(), dateOnly(birth), record.Date, payload, tablesHash,
	); err != nil {
		return nil, fmt.Errorf("insert daily record: %w", err)
	}

	stored, err := r.GetDaily(ctx, birth, record.Date)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("daily record %s/%s missing after insert",
			birth.Format(contracts.DateLayout), record.Date.Format(contracts.DateLayout))
	}

	return stored, nil
}

// GetDaily 레코드 조회 (없으면 nil, nil)
func (r *Repository) GetDaily(ctx context.Context, birth, target time.Time) (*StoredRecord, error) {
	query := `
		SELECT id, birth_date, target_date, record, tables_hash, created_at
		FROM fortune.daily_records
		WHERE birth_date = $1 AND target_date = $2`

	var s StoredRecord
	var payload []byte
	err := r.pool.QueryRow(ctx, query, dateOnly(birth), dateOnly(target)).Scan(
		&s.ID, &s.BirthDate, &s.TargetDate, &payload, &s.TablesHash, &s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily record: %w", err)
	}

	if err := json.Unmarshal(payload, &s.Record); err != nil {
		return nil, fmt.Errorf("unmarshal record %s: %w", s.ID, err)
	}

	return &s, nil
}

// ListByBirth 특정 생년월일의 기간 레코드 조회
func (r *Repository) ListByBirth(ctx context.Context, birth, from, to time.Time) ([]StoredRecord, error) {
	query := `
		SELECT id, birth_date, target_date, record, tables_hash, created_at
		FROM fortune.daily_records
		WHERE birth_date = $1 AND target_date BETWEEN $2 AND $3
		ORDER BY target_date`

	rows, err := r.pool.Query(ctx, query, dateOnly(birth), dateOnly(from), dateOnly(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []StoredRecord
	for rows.Next() {
		var s StoredRecord
		var payload []byte
		if err := rows.Scan(&s.ID, &s.BirthDate, &s.TargetDate, &payload, &s.TablesHash, &s.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &s.Record); err != nil {
			return nil, fmt.Errorf("unmarshal record %s: %w", s.ID, err)
		}
		records = append(records, s)
	}

	return records, rows.Err()
}
