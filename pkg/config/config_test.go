package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.True(t, cfg.Fees.PlatformFeeRate.Equal(decimal.RequireFromString("0.05")))
	assert.True(t, cfg.Fees.VatRate.Equal(decimal.RequireFromString("0.20")))
	assert.Equal(t, 5*time.Minute, cfg.DefaultExtension)
	assert.Equal(t, int32(100), cfg.SweepPageSize)
	assert.Equal(t, 3, cfg.BidRetryAttempts)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PLATFORM_FEE_RATE", "0.10")
	t.Setenv("VAT_RATE", "0.21")
	t.Setenv("AUCTION_EXTENSION_SECONDS", "120")
	t.Setenv("SWEEP_PAGE_SIZE", "25")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.True(t, cfg.Fees.PlatformFeeRate.Equal(decimal.RequireFromString("0.10")))
	assert.True(t, cfg.Fees.VatRate.Equal(decimal.RequireFromString("0.21")))
	assert.Equal(t, 2*time.Minute, cfg.DefaultExtension)
	assert.Equal(t, int32(25), cfg.SweepPageSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("Malformed Rate", func(t *testing.T) {
		t.Setenv("PLATFORM_FEE_RATE", "five percent")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Rate Out Of Range", func(t *testing.T) {
		t.Setenv("VAT_RATE", "1.5")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Negative Extension", func(t *testing.T) {
		t.Setenv("AUCTION_EXTENSION_SECONDS", "-10")
		_, err := Load()
		assert.Error(t, err)
	})
}
