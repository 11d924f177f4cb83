package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/billplz/internal/model"
)

// StatsFilter bounds entries to [Since, Until); nil bounds are open.
type StatsFilter struct {
	Since  *time.Time
	Until  *time.Time
	SortBy string
	Order  string
}

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

var statsSorts = map[string]string{
	"call_count":      "a.call_count",
	"success_rate":    "a.success_rate",
	"avg_duration_ms": "a.avg_duration_ms",
	"last_called_at":  "a.last_called_at",
	"tool":            "a.tool",
}

// ToolStats aggregates journal entries per tool. Activity is judged on the
// last 24 hours regardless of the filter window.
func (r *StatsRepository) ToolStats(ctx context.Context, f StatsFilter) ([]model.ToolStats, error) {
	query := `
		WITH agg AS (
			SELECT
				tool,
				COUNT(*) AS call_count,
				COUNT(*) FILTER (WHERE outcome = 'ok') AS ok_count,
				COUNT(*) FILTER (WHERE outcome = 'api_error') AS api_error_count,
				COUNT(*) FILTER (WHERE outcome = 'transport_error') AS transport_error_count,
				COUNT(*) FILTER (WHERE outcome IN ('parse_error', 'invalid', 'error')) AS other_error_count,
				ROUND(COUNT(*) FILTER (WHERE outcome = 'ok')::numeric / COUNT(*)::numeric * 100, 2)::float8 AS success_rate,
				ROUND(AVG(duration_ms)::numeric, 2)::float8 AS avg_duration_ms,
				MAX(duration_ms) AS max_duration_ms,
				MAX(created_at) AS last_called_at
			FROM journal_entries
			WHERE ($1::timestamptz IS NULL OR created_at >= $1)
				AND ($2::timestamptz IS NULL OR created_at < $2)
			GROUP BY tool
		),
		recent AS (
			SELECT tool, COUNT(*) AS calls_24h
			FROM journal_entries
			WHERE created_at >= NOW() - INTERVAL '24 hours'
			GROUP BY tool
		)
		SELECT
			a.tool, a.call_count, a.ok_count, a.api_error_count, a.transport_error_count,
			a.other_error_count, a.success_rate, a.avg_duration_ms, a.max_duration_ms,
			a.last_called_at,
			COALESCE(r.calls_24h, 0) AS calls_24h,
			CASE
				WHEN COALESCE(r.calls_24h, 0) >= 10 THEN 'ACTIVE'
				WHEN COALESCE(r.calls_24h, 0) >= 1 THEN 'LOW_ACTIVITY'
				ELSE 'INACTIVE'
			END AS activity_status
		FROM agg a
		LEFT JOIN recent r ON r.tool = a.tool
	`

	sortCol, ok := statsSorts[f.SortBy]
	if !ok {
		sortCol = "a.call_count"
	}
	orderDir := "DESC"
	if f.Order == "asc" {
		orderDir = "ASC"
	}
	query = fmt.Sprintf(`%s ORDER BY %s %s, a.tool`, query, sortCol, orderDir)

	rows, err := r.pool.Query(ctx, query, f.Since, f.Until)
	if err != nil {
		return nil, fmt.Errorf("query tool stats: %w", err)
	}
	defer rows.Close()

	stats := []model.ToolStats{}
	for rows.Next() {
		var s model.ToolStats
		err := rows.Scan(
			&s.Tool, &s.CallCount, &s.OKCount, &s.APIErrorCount, &s.TransportErrorCount,
			&s.OtherErrorCount, &s.SuccessRate, &s.AvgDurationMS, &s.MaxDurationMS,
			&s.LastCalledAt, &s.Calls24h, &s.ActivityStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("scan tool stats row: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
