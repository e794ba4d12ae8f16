// Package currency contains exchange-rate orchestration and conversion use cases.
package currency

import (
	"context"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// RateService resolves the current exchange-rate snapshot through a chain of
// sources: primary cache, live provider, fallback cache, static table. It
// always produces a snapshot; degraded sources are tagged unsuccessful so
// callers can surface the reduced reliability.
type RateService struct {
	cache        adapter.RateCache
	provider     adapter.RateProvider
	baseCurrency string
	logger       *slog.Logger
}

// NewRateService creates a new RateService instance.
func NewRateService(
	cache adapter.RateCache,
	provider adapter.RateProvider,
	baseCurrency string,
	logger *slog.Logger,
) *RateService {
	return &RateService{
		cache:        cache,
		provider:     provider,
		baseCurrency: baseCurrency,
		logger:       logger,
	}
}

// GetLatestRates returns the freshest available snapshot. It never returns an
// error: every failure escalates to the next source in the chain.
func (s *RateService) GetLatestRates(ctx context.Context) *valueobject.RateSnapshot {
	// Primary cache first.
	cached, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("rate cache read failed", "error", err)
	}
	if cached != nil {
		return cached
	}

	// Live fetch. A successful snapshot refreshes both cache tiers.
	fetched, err := s.provider.FetchLatest(ctx, s.baseCurrency)
	if err == nil && fetched != nil && fetched.IsSuccess {
		if putErr := s.cache.Put(ctx, fetched); putErr != nil {
			s.logger.Warn("rate cache write failed", "error", putErr)
		}
		return fetched
	}
	if err != nil {
		s.logger.Warn("live rate fetch failed", "error", err)
	}

	// Stale fallback tier. Tagged unsuccessful so reports can flag the data
	// as cached rather than live.
	fallback, fbErr := s.cache.GetFallback(ctx)
	if fbErr != nil {
		s.logger.Warn("fallback rate cache read failed", "error", fbErr)
	}
	if fallback != nil {
		return fallback.Degraded("using cached rates, live rate fetch failed")
	}

	s.logger.Error("no live or cached rates available, serving static rates")
	return staticSnapshot(s.baseCurrency, "using approximate static rates, live and cached rates unavailable")
}

// ClearCache drops both cached rate entries.
func (s *RateService) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}
