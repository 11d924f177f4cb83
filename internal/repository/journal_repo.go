package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/billplz/internal/model"
)

type JournalRepository struct {
	pool *pgxpool.Pool
}

func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{pool: pool}
}

func (r *JournalRepository) Insert(ctx context.Context, e *model.JournalEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO journal_entries (id, tool, resource_id, outcome, status_code, error_type, error_message, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		e.ID, e.Tool, e.ResourceID, string(e.Outcome), e.StatusCode, e.ErrorType, e.ErrorMessage, e.DurationMS,
	).Scan(&e.CreatedAt)
}

func (r *JournalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.JournalEntry, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, tool, resource_id, outcome, status_code, error_type, error_message, duration_ms, created_at
		FROM journal_entries WHERE id = $1`, id)

	e, err := scanEntry(row)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *JournalRepository) List(ctx context.Context, tool string, limit, offset int) ([]model.JournalEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tool, resource_id, outcome, status_code, error_type, error_message, duration_ms, created_at
		FROM journal_entries
		WHERE ($1::text = '' OR tool = $1)
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`,
		tool, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	entries := []model.JournalEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (r *JournalRepository) Count(ctx context.Context, tool string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM journal_entries WHERE ($1::text = '' OR tool = $1)`, tool,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count journal: %w", err)
	}
	return count, nil
}

func scanEntry(row pgx.Row) (*model.JournalEntry, error) {
	var e model.JournalEntry
	var outcome string
	err := row.Scan(&e.ID, &e.Tool, &e.ResourceID, &outcome, &e.StatusCode,
		&e.ErrorType, &e.ErrorMessage, &e.DurationMS, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.Outcome = model.Outcome(outcome)
	return &e, nil
}
