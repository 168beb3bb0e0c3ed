package domain

import (
	"fmt"

	emissions "freight-emissions/internal/features/emissions/domain"
)

// Input is everything one calculation run consumes.
type Input struct {
	Shipment      emissions.NewShipment        `json:"shipment" yaml:"shipment"`
	Repositioning []emissions.RepositioningRow `json:"repositioning" yaml:"repositioning"`
}

// Validate checks the shipment and the repositioning rows.
func (i *Input) Validate() error {
	if err := i.Shipment.Validate(); err != nil {
		return err
	}
	for n, row := range i.Repositioning {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("repositioning row %d: %w", n+1, err)
		}
	}
	return nil
}
