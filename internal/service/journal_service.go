package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anyulbade/billplz/internal/model"
	"github.com/anyulbade/billplz/internal/repository"
)

type JournalService struct {
	repo  *repository.JournalRepository
	stats *repository.StatsRepository
}

func NewJournalService(repo *repository.JournalRepository, stats *repository.StatsRepository) *JournalService {
	return &JournalService{repo: repo, stats: stats}
}

func (s *JournalService) Record(ctx context.Context, entry *model.JournalEntry) error {
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

func (s *JournalService) List(ctx context.Context, tool string, limit, offset int) ([]model.JournalEntry, int, error) {
	total, err := s.repo.Count(ctx, tool)
	if err != nil {
		return nil, 0, err
	}

	entries, err := s.repo.List(ctx, tool, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (s *JournalService) Get(ctx context.Context, id uuid.UUID) (*model.JournalEntry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get journal entry %s: %w", id, err)
	}
	return e, nil
}

func (s *JournalService) Stats(ctx context.Context, f repository.StatsFilter) ([]model.ToolStats, model.StatsSummary, error) {
	stats, err := s.stats.ToolStats(ctx, f)
	if err != nil {
		return nil, model.StatsSummary{}, err
	}
	return stats, Summarize(stats), nil
}

// Summarize totals per-tool stats. The overall success rate is rounded to
// two decimals.
func Summarize(stats []model.ToolStats) model.StatsSummary {
	var summary model.StatsSummary
	for _, s := range stats {
		summary.TotalCalls += s.CallCount
		summary.TotalOK += s.OKCount

		switch s.ActivityStatus {
		case model.ActivityActive:
			summary.ActiveTools++
		case model.ActivityLowActivity:
			summary.LowActivityTools++
		case model.ActivityInactive:
			summary.InactiveTools++
		}
	}

	if summary.TotalCalls > 0 {
		rate := decimal.NewFromInt(int64(summary.TotalOK)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(summary.TotalCalls))).
			Round(2)
		summary.OverallSuccessRate = rate.InexactFloat64()
	}
	return summary
}
