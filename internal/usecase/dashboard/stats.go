package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/clock"
)

// ======================================================
// SHOP DASHBOARD
// ======================================================

type Stats struct {
	TotalAppointments     int64 `json:"total_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
	TotalBarbers          int64 `json:"total_barbers"`
	TodayAppointments     int64 `json:"today_appointments"`
}

// Repository counts all four dashboard figures from one snapshot.
type Repository interface {
	CountForShop(
		ctx context.Context,
		shopID string,
		dayStart time.Time,
		dayEnd time.Time,
	) (total, completed, barbers, today int64, err error)
}

// Cache is an optional read-through layer. Dashboard reads are allowed
// to lag writes, so a short-TTL cache is fine; a cache miss or failure
// falls through to the repository, never to the caller.
type Cache interface {
	Get(ctx context.Context, shopID string) (*Stats, bool)
	Set(ctx context.Context, shopID string, stats *Stats)
}

type GetStats struct {
	repo  Repository
	cache Cache
	clock clock.Clock
}

// NewGetStats accepts a nil cache.
func NewGetStats(repo Repository, cache Cache, clk clock.Clock) *GetStats {
	return &GetStats{
		repo:  repo,
		cache: cache,
		clock: clk,
	}
}

// Execute returns the four shop counters. "Today" is the half-open
// [midnight, midnight+24h) window in UTC regardless of shop locale.
// Counting failures propagate whole; a caller cannot tell zero
// activity from a failed computation otherwise.
func (uc *GetStats) Execute(ctx context.Context, shopID string) (*Stats, error) {

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, shopID); ok {
			return cached, nil
		}
	}

	dayStart, dayEnd := clock.DayWindowUTC(uc.clock.Now())

	total, completed, barbers, today, err := uc.repo.CountForShop(ctx, shopID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalAppointments:     total,
		CompletedAppointments: completed,
		TotalBarbers:          barbers,
		TodayAppointments:     today,
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, shopID, stats)
	}

	return stats, nil
}
