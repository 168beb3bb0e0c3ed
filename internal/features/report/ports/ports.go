package ports

import (
	"context"
	"io"

	"freight-emissions/internal/features/report/domain"
	shipment "freight-emissions/internal/features/shipment/domain"
)

// ReportRepository defines the secondary port for report storage.
type ReportRepository interface {
	Save(ctx context.Context, report *domain.Report) error
	Get(ctx context.Context, id string) (*domain.Report, error)
}

// ReportWriter renders a report in one output format.
type ReportWriter interface {
	Write(w io.Writer, report *domain.Report) error
}

// ReportService defines the primary port for stored reports.
type ReportService interface {
	Store(ctx context.Context, report *domain.Report) error
	Get(ctx context.Context, id string) (*domain.Report, error)
}

// Calculator runs one emissions calculation.
type Calculator interface {
	Calculate(ctx context.Context, input *shipment.Input) (*domain.Report, error)
}
