package adapters

import (
	"context"
	"testing"
	"time"

	"freight-emissions/internal/core/cache"
	"freight-emissions/internal/features/report/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T, ttl time.Duration) (*RedisReportRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "freight:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return NewRedisReportRepository(c, ttl), mr
}

func TestRedisReportRepository_SaveAndGet(t *testing.T) {
	repo, mr := newRepository(t, time.Hour)
	ctx := context.Background()

	report := &domain.Report{
		ID:          "0b8f6f3e",
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		RoadTotalKg: 26,
		FailedLegs:  []domain.FailedLeg{{Scope: domain.ScopeShipment, Index: 1, Mode: "Air", Stage: "estimation", Error: "boom"}},
	}

	require.NoError(t, repo.Save(ctx, report))
	assert.True(t, mr.Exists("freight:report:0b8f6f3e"))
	assert.Equal(t, time.Hour, mr.TTL("freight:report:0b8f6f3e"))

	got, err := repo.Get(ctx, "0b8f6f3e")
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestRedisReportRepository_Expiry(t *testing.T) {
	repo, mr := newRepository(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Report{ID: "short"}))
	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, "short")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestRedisReportRepository_NotFound(t *testing.T) {
	repo, _ := newRepository(t, 0)

	report, err := repo.Get(context.Background(), "missing")
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestRedisReportRepository_Corrupt(t *testing.T) {
	repo, mr := newRepository(t, 0)
	require.NoError(t, mr.Set("freight:report:bad", "{"))

	_, err := repo.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrReportNotFound)
}

func TestRedisReportRepository_SaveWithoutID(t *testing.T) {
	repo, _ := newRepository(t, 0)
	assert.Error(t, repo.Save(context.Background(), &domain.Report{}))
}
