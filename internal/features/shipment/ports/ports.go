package ports

import (
	"context"

	"freight-emissions/internal/features/shipment/domain"
)

// InputSource loads the shipment and repositioning records of one run.
type InputSource interface {
	Load(ctx context.Context) (*domain.Input, error)
}
