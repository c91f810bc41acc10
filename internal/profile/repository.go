package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository profile.members 저장소
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository 새 저장소 생성
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const memberColumns = `id, team_id, name, birth_date, created_at`

// SaveMember 멤버 저장 (id 기준 upsert)
func (r *Repository) SaveMember(ctx context.Context, m Member) error {
	if err := m.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO profile.members (id, team_id, name, birth_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			team_id    = EXCLUDED.team_id,
			name       = EXCLUDED.name,
			birth_date = EXCLUDED.birth_date`

	birth := time.Date(m.BirthDate.Year(), m.BirthDate.Month(), m.BirthDate.Day(), 0, 0, 0, 0, time.UTC)
	if _, err := r.pool.Exec(ctx, query, m.ID, m.TeamID, m.Name, birth); err != nil {
		return fmt.Errorf("save member %s: %w", m.ID, err)
	}
	return nil
}

// GetMember 멤버 조회 (없으면 ErrMemberNotFound)
func (r *Repository) GetMember(ctx context.Context, id string) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM profile.members WHERE id = $1`

	m, err := scanMember(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get member %s: %w", id, err)
	}
	return m, nil
}

// ListByTeam 팀 멤버 목록 (id 순)
func (r *Repository) ListByTeam(ctx context.Context, teamID string) ([]Member, error) {
	query := `SELECT ` + memberColumns + ` FROM profile.members WHERE team_id = $1 ORDER BY id`
	return r.list(ctx, query, teamID)
}

// ListAll 전체 멤버 목록 (배치 사전 계산용)
func (r *Repository) ListAll(ctx context.Context) ([]Member, error) {
	query := `SELECT ` + memberColumns + ` FROM profile.members ORDER BY team_id, id`
	return r.list(ctx, query)
}

// DeleteMember 멤버 삭제
func (r *Repository) DeleteMember(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profile.members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete member %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrMemberNotFound, id)
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]Member, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, *m)
	}

	return members, rows.Err()
}

func scanMember(row pgx.Row) (*Member, error) {
	var m Member
	if err := row.Scan(&m.ID, &m.TeamID, &m.Name, &m.BirthDate, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
