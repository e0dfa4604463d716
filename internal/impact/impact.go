package impact

import (
	"context"
	"math"

	"ecowear-be/internal/apperr"
)

// treesPerKg is the fixed conversion from accumulated kg CO2e offset to an
// estimated tree count: one tree per 20 kg.
const treesPerKg = 20.0

type PlatformStats struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalCarbonOffset float64 `json:"totalCarbonOffset"`
	TreesPlanted      int     `json:"treesPlanted"`
}

// StatsSource supplies the raw platform counters. The SQL implementation
// scans orders on every call; an incremental counter maintained at
// order-creation time can replace it without touching callers.
type StatsSource interface {
	OrderTotals(ctx context.Context) (totalOrders int, totalCarbonOffset float64, err error)
}

type Service interface {
	PlatformStats(ctx context.Context) (PlatformStats, error)
}

type service struct {
	source StatsSource
}

func NewService(source StatsSource) Service {
	return &service{source: source}
}

func (s *service) PlatformStats(ctx context.Context) (PlatformStats, error) {
	totalOrders, totalOffset, err := s.source.OrderTotals(ctx)
	if err != nil {
		return PlatformStats{}, apperr.Internal("failed to compute platform stats", err)
	}

	return PlatformStats{
		TotalOrders:       totalOrders,
		TotalCarbonOffset: totalOffset,
		TreesPlanted:      int(math.Floor(totalOffset / treesPerKg)),
	}, nil
}
