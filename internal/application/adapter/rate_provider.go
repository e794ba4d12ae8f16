// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// RateProvider defines the interface for fetching live exchange rates from an
// external source.
type RateProvider interface {
	// FetchLatest retrieves the latest rates quoted against the given base
	// currency.
	FetchLatest(ctx context.Context, baseCurrency string) (*valueobject.RateSnapshot, error)
}
