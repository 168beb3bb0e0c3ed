package service

import (
	"context"
	"fmt"

	"freight-emissions/internal/features/report/domain"
	"freight-emissions/internal/features/report/ports"
)

// ReportServiceImpl implements ports.ReportService.
type ReportServiceImpl struct {
	repo ports.ReportRepository
}

// NewReportService creates a new ReportServiceImpl. A nil repository disables storage.
func NewReportService(repo ports.ReportRepository) *ReportServiceImpl {
	return &ReportServiceImpl{
		repo: repo,
	}
}

// Enabled reports whether reports are stored.
func (s *ReportServiceImpl) Enabled() bool {
	return s.repo != nil
}

// Store saves a report.
func (s *ReportServiceImpl) Store(ctx context.Context, report *domain.Report) error {
	if s.repo == nil {
		return domain.ErrStorageDisabled
	}

	if err := s.repo.Save(ctx, report); err != nil {
		return fmt.Errorf("service: failed to store report: %w", err)
	}

	return nil
}

// Get retrieves a stored report.
func (s *ReportServiceImpl) Get(ctx context.Context, id string) (*domain.Report, error) {
	if s.repo == nil {
		return nil, domain.ErrStorageDisabled
	}

	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get report: %w", err)
	}

	return report, nil
}
