package service

import (
	"context"

	"github.com/passgen/passgen-go/internal/model"
)

// StatsReader reads aggregate generation statistics.
type StatsReader interface {
	CountByType(ctx context.Context) (map[string]int64, error)
	CountByLabel(ctx context.Context) (map[string]int64, error)
	Totals(ctx context.Context) (int64, float64, error)
}

// StatsService summarises generation events.
type StatsService struct {
	repo StatsReader
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo StatsReader) *StatsService {
	return &StatsService{repo: repo}
}

// Summary returns event counts per type and label plus the mean entropy.
func (s *StatsService) Summary(ctx context.Context) (model.StatsResponse, error) {
	byType, err := s.repo.CountByType(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	byLabel, err := s.repo.CountByLabel(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	total, avg, err := s.repo.Totals(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	return model.StatsResponse{
		Total:          total,
		ByType:         byType,
		ByLabel:        byLabel,
		AverageEntropy: avg,
	}, nil
}
