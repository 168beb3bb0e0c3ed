package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freight-emissions/internal/core/cache"
	"freight-emissions/internal/features/report/domain"
)

const reportKeyPrefix = "report:"

// RedisReportRepository implements ports.ReportRepository on top of the cache.
type RedisReportRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisReportRepository creates a new RedisReportRepository. Reports expire after ttl, 0 keeps them.
func NewRedisReportRepository(c cache.Cache, ttl time.Duration) *RedisReportRepository {
	return &RedisReportRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the report under its ID.
func (r *RedisReportRepository) Save(ctx context.Context, report *domain.Report) error {
	if report.ID == "" {
		return errors.New("report without id")
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := r.cache.Set(ctx, reportKeyPrefix+report.ID, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save report to cache: %w", err)
	}

	return nil
}

// Get retrieves a report by ID.
func (r *RedisReportRepository) Get(ctx context.Context, id string) (*domain.Report, error) {
	data, err := r.cache.Get(ctx, reportKeyPrefix+id)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrReportNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, nil
}
