package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPlatformFeeRate  = "0.05"
	DefaultVatRate          = "0.20"
	DefaultExtensionSeconds = 300
	DefaultSweepPageSize    = 100
	DefaultBidRetryAttempts = 3
)

// Fees holds the rates applied when a sale settles. They are configuration,
// not business logic: settlement receives them, it does not embed them.
type Fees struct {
	PlatformFeeRate decimal.Decimal
	VatRate         decimal.Decimal
}

// Config holds the domain tunables for the auction engine.
type Config struct {
	Fees Fees

	// DefaultExtension is the anti-snipe window applied to new auctions that
	// do not specify their own.
	DefaultExtension time.Duration

	// SweepPageSize bounds how many expired auctions one sweep invocation
	// settles.
	SweepPageSize int32

	// BidRetryAttempts bounds the engine's automatic retries after a
	// concurrent-modification conflict.
	BidRetryAttempts int
}

// Load reads the engine configuration from the environment, falling back to
// defaults for anything unset.
func Load() (*Config, error) {
	feeRate, err := rateFromEnv("PLATFORM_FEE_RATE", DefaultPlatformFeeRate)
	if err != nil {
		return nil, err
	}
	vatRate, err := rateFromEnv("VAT_RATE", DefaultVatRate)
	if err != nil {
		return nil, err
	}
	extension, err := intFromEnv("AUCTION_EXTENSION_SECONDS", DefaultExtensionSeconds)
	if err != nil {
		return nil, err
	}
	pageSize, err := intFromEnv("SWEEP_PAGE_SIZE", DefaultSweepPageSize)
	if err != nil {
		return nil, err
	}

	return &Config{
		Fees: Fees{
			PlatformFeeRate: feeRate,
			VatRate:         vatRate,
		},
		DefaultExtension: time.Duration(extension) * time.Second,
		SweepPageSize:    int32(pageSize),
		BidRetryAttempts: DefaultBidRetryAttempts,
	}, nil
}

func rateFromEnv(key, fallback string) (decimal.Decimal, error) {
	raw := os.Getenv(key)
	if raw == "" {
		raw = fallback
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: rate must be between 0 and 1", key, raw)
	}
	return rate, nil
}

func intFromEnv(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q: expected a positive integer", key, raw)
	}
	return v, nil
}
