package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/clock"
)

type mockRepo struct {
	countFunc func(ctx context.Context, shopID string, dayStart, dayEnd time.Time) (int64, int64, int64, int64, error)
}

func (m *mockRepo) CountForShop(ctx context.Context, shopID string, dayStart, dayEnd time.Time) (int64, int64, int64, int64, error) {
	return m.countFunc(ctx, shopID, dayStart, dayEnd)
}

type memCache struct {
	stats map[string]*Stats
}

func (c *memCache) Get(_ context.Context, shopID string) (*Stats, bool) {
	s, ok := c.stats[shopID]
	return s, ok
}

func (c *memCache) Set(_ context.Context, shopID string, s *Stats) {
	c.stats[shopID] = s
}

func TestGetStats_Counters(t *testing.T) {
	now := time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC)

	repo := &mockRepo{
		countFunc: func(_ context.Context, shopID string, dayStart, dayEnd time.Time) (int64, int64, int64, int64, error) {
			assert.Equal(t, "shop_000000000001", shopID)
			assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), dayStart)
			assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), dayEnd)
			return 5, 2, 3, 1, nil
		},
	}

	uc := NewGetStats(repo, nil, clock.Fixed(now))
	stats, err := uc.Execute(context.Background(), "shop_000000000001")
	require.NoError(t, err)

	assert.Equal(t, &Stats{
		TotalAppointments:     5,
		CompletedAppointments: 2,
		TotalBarbers:          3,
		TodayAppointments:     1,
	}, stats)
}

func TestGetStats_FailurePropagatesWhole(t *testing.T) {
	boom := errors.New("storage unavailable")
	repo := &mockRepo{
		countFunc: func(_ context.Context, _ string, _, _ time.Time) (int64, int64, int64, int64, error) {
			return 0, 0, 0, 0, boom
		},
	}

	uc := NewGetStats(repo, nil, clock.Fixed(time.Now()))
	stats, err := uc.Execute(context.Background(), "shop_x")

	// no partial or zeroed counters on failure
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, boom)
}

func TestGetStats_CacheHitSkipsRepository(t *testing.T) {
	calls := 0
	repo := &mockRepo{
		countFunc: func(_ context.Context, _ string, _, _ time.Time) (int64, int64, int64, int64, error) {
			calls++
			return 5, 2, 3, 1, nil
		},
	}
	cache := &memCache{stats: map[string]*Stats{}}

	uc := NewGetStats(repo, cache, clock.Fixed(time.Now()))

	_, err := uc.Execute(context.Background(), "shop_a")
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), "shop_a")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}
