// Package currency contains exchange-rate orchestration and conversion use cases.
package currency

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestConverter(cache *fakeRateCache, provider *fakeRateProvider) *Converter {
	return NewConverter(NewRateService(cache, provider, "AUD", testLogger()))
}

func TestConverter_Convert(t *testing.T) {
	ctx := context.Background()

	t.Run("identity conversion skips rate lookup", func(t *testing.T) {
		provider := &fakeRateProvider{snapshot: liveSnapshot()}
		converter := newTestConverter(&fakeRateCache{}, provider)

		result := converter.Convert(ctx, decimal.NewFromFloat(42.50), "AUD", "AUD")

		if !result.IsSuccess {
			t.Error("expected identity conversion to succeed")
		}
		if !result.ConvertedAmount.Equal(decimal.NewFromFloat(42.50)) {
			t.Errorf("expected amount unchanged, got %s", result.ConvertedAmount)
		}
		if !result.Rate.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected rate 1, got %s", result.Rate)
		}
		if provider.calls != 0 {
			t.Errorf("expected no provider calls, got %d", provider.calls)
		}
	})

	t.Run("identity conversion is case insensitive", func(t *testing.T) {
		converter := newTestConverter(&fakeRateCache{}, &fakeRateProvider{snapshot: liveSnapshot()})

		result := converter.Convert(ctx, decimal.NewFromInt(10), "usd", "USD")

		if !result.IsSuccess || !result.ConvertedAmount.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected identity result, got %+v", result)
		}
	})

	t.Run("divides by the stored rate and rounds to 2 dp", func(t *testing.T) {
		converter := newTestConverter(&fakeRateCache{primary: liveSnapshot()}, &fakeRateProvider{})

		// 100 USD at 0.66 USD per AUD: 100 / 0.66 = 151.5151... -> 151.52
		result := converter.Convert(ctx, decimal.NewFromInt(100), "USD", "AUD")

		if !result.IsSuccess {
			t.Errorf("expected success, got error %q", result.ErrorMessage)
		}
		if !result.ConvertedAmount.Equal(decimal.NewFromFloat(151.52)) {
			t.Errorf("expected 151.52, got %s", result.ConvertedAmount)
		}
		if !result.Rate.Equal(decimal.NewFromFloat(0.66)) {
			t.Errorf("expected rate 0.66, got %s", result.Rate)
		}
		if !result.RateTimestamp.Equal(liveSnapshot().FetchedAt) {
			t.Errorf("expected snapshot timestamp, got %s", result.RateTimestamp)
		}
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		snapshot := liveSnapshot()
		snapshot.Rates["NZD"] = decimal.NewFromInt(2)
		converter := newTestConverter(&fakeRateCache{primary: snapshot}, &fakeRateProvider{})

		// 0.25 / 2 = 0.125 -> 0.13
		result := converter.Convert(ctx, decimal.NewFromFloat(0.25), "NZD", "AUD")

		if !result.ConvertedAmount.Equal(decimal.NewFromFloat(0.13)) {
			t.Errorf("expected 0.13, got %s", result.ConvertedAmount)
		}
	})

	t.Run("unknown currency degrades to identity", func(t *testing.T) {
		converter := newTestConverter(&fakeRateCache{primary: liveSnapshot()}, &fakeRateProvider{})

		result := converter.Convert(ctx, decimal.NewFromInt(500), "XYZ", "AUD")

		if result.IsSuccess {
			t.Error("expected unknown currency conversion to be unsuccessful")
		}
		if !result.ConvertedAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected amount unchanged, got %s", result.ConvertedAmount)
		}
		if !result.Rate.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected rate 1, got %s", result.Rate)
		}
		if result.ErrorMessage == "" {
			t.Error("expected a descriptive error message")
		}
	})

	t.Run("degraded snapshot marks result unsuccessful but still converts", func(t *testing.T) {
		fallback := liveSnapshot()
		cache := &fakeRateCache{fallback: fallback}
		provider := &fakeRateProvider{err: context.DeadlineExceeded}
		converter := newTestConverter(cache, provider)

		result := converter.Convert(ctx, decimal.NewFromInt(100), "USD", "AUD")

		if result.IsSuccess {
			t.Error("expected result built from fallback rates to be unsuccessful")
		}
		if !result.ConvertedAmount.Equal(decimal.NewFromFloat(151.52)) {
			t.Errorf("expected stale-rate conversion 151.52, got %s", result.ConvertedAmount)
		}
	})
}

func TestConverter_ConvertBreakdown(t *testing.T) {
	ctx := context.Background()

	t.Run("sums per-currency conversions", func(t *testing.T) {
		converter := newTestConverter(&fakeRateCache{primary: liveSnapshot()}, &fakeRateProvider{})

		breakdown := map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(66), // 66 / 0.66 = 100.00
			"EUR": decimal.NewFromInt(30), // 30 / 0.60 = 50.00
			"AUD": decimal.NewFromInt(25), // identity
		}

		total, snapshot := converter.ConvertBreakdown(ctx, breakdown, "AUD")

		if !total.Equal(decimal.NewFromInt(175)) {
			t.Errorf("expected total 175, got %s", total)
		}
		if snapshot == nil || !snapshot.IsSuccess {
			t.Error("expected the successful snapshot to be returned")
		}
	})

	t.Run("empty breakdown yields zero", func(t *testing.T) {
		converter := newTestConverter(&fakeRateCache{primary: liveSnapshot()}, &fakeRateProvider{})

		total, _ := converter.ConvertBreakdown(ctx, map[string]decimal.Decimal{}, "AUD")

		if !total.IsZero() {
			t.Errorf("expected zero, got %s", total)
		}
	})
}

func TestConverter_ProportionalShare(t *testing.T) {
	converter := newTestConverter(&fakeRateCache{}, &fakeRateProvider{})

	t.Run("distributes the converted total by original share", func(t *testing.T) {
		// 200 converted, sub 50 of 100 original: 200 * 50 / 100 = 100.00
		share := converter.ProportionalShare(
			decimal.NewFromInt(200),
			decimal.NewFromInt(50),
			decimal.NewFromInt(100),
		)

		if !share.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", share)
		}
	})

	t.Run("zero original total yields zero", func(t *testing.T) {
		share := converter.ProportionalShare(
			decimal.NewFromInt(200),
			decimal.NewFromInt(50),
			decimal.Zero,
		)

		if !share.IsZero() {
			t.Errorf("expected zero, got %s", share)
		}
	})

	t.Run("rounds to 2 decimal places", func(t *testing.T) {
		// 100 * 1 / 3 = 33.333... -> 33.33
		share := converter.ProportionalShare(
			decimal.NewFromInt(100),
			decimal.NewFromInt(1),
			decimal.NewFromInt(3),
		)

		if !share.Equal(decimal.NewFromFloat(33.33)) {
			t.Errorf("expected 33.33, got %s", share)
		}
	})
}
