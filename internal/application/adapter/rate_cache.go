// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// RateCache defines the interface for caching exchange rate snapshots. It
// holds two slots: a primary entry with a short TTL and a fallback entry with
// a long TTL that survives primary expiry.
type RateCache interface {
	// Get retrieves the primary cached snapshot. A nil snapshot with a nil
	// error means a cache miss.
	Get(ctx context.Context) (*valueobject.RateSnapshot, error)

	// GetFallback retrieves the fallback cached snapshot. A nil snapshot with
	// a nil error means a cache miss.
	GetFallback(ctx context.Context) (*valueobject.RateSnapshot, error)

	// Put stores the snapshot in both the primary and fallback slots.
	Put(ctx context.Context, snapshot *valueobject.RateSnapshot) error

	// Clear removes both cached entries.
	Clear(ctx context.Context) error
}
