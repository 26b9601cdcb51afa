package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvParsers(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T)
	}{
		{"int parses", "64", func(t *testing.T) {
			assert.Equal(t, 64, getEnvAsInt("CASEOPENER_TEST_VAR", 7))
		}},
		{"int keeps default on decimal", "6.4", func(t *testing.T) {
			assert.Equal(t, 7, getEnvAsInt("CASEOPENER_TEST_VAR", 7))
		}},
		{"duration parses compound", "1h15m", func(t *testing.T) {
			assert.Equal(t, 75*time.Minute, getEnvAsDuration("CASEOPENER_TEST_VAR", time.Second))
		}},
		{"duration needs a unit", "90", func(t *testing.T) {
			assert.Equal(t, time.Second, getEnvAsDuration("CASEOPENER_TEST_VAR", time.Second))
		}},
		{"bool accepts numeric", "1", func(t *testing.T) {
			assert.True(t, getEnvAsBool("CASEOPENER_TEST_VAR", false))
		}},
		{"bool keeps default on junk", "sometimes", func(t *testing.T) {
			assert.False(t, getEnvAsBool("CASEOPENER_TEST_VAR", false))
		}},
		{"slice trims and drops blanks", " 10.0.0.1 ,, 10.0.0.2", func(t *testing.T) {
			assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsSlice("CASEOPENER_TEST_VAR"))
		}},
		{"slice of nothing is nil", "", func(t *testing.T) {
			assert.Nil(t, getEnvAsSlice("CASEOPENER_TEST_VAR"))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CASEOPENER_TEST_VAR", tc.raw)
			tc.check(t)
		})
	}
}

// Money settings refuse to silently fall back.
func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("CASEOPENER_TEST_VAR", "")
	v, err := getEnvAsFloat("CASEOPENER_TEST_VAR", 250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, v)

	t.Setenv("CASEOPENER_TEST_VAR", "12.75")
	v, err = getEnvAsFloat("CASEOPENER_TEST_VAR", 250)
	require.NoError(t, err)
	assert.Equal(t, 12.75, v)

	t.Setenv("CASEOPENER_TEST_VAR", "lots")
	_, err = getEnvAsFloat("CASEOPENER_TEST_VAR", 250)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CASEOPENER_TEST_VAR")
}

func TestLoad_TuningKnobs(t *testing.T) {
	t.Run("malformed values fall back to defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "many")
		t.Setenv("MARKET_CACHE_TTL", "soon")
		t.Setenv("MARKET_CACHE_SIZE", "big")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultMarketCacheTTL, cfg.MarketCacheTTL)
		assert.Equal(t, DefaultMarketCacheSize, cfg.MarketCacheSize)
	})

	t.Run("market cache overrides", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("MARKET_CACHE_TTL", "45s")
		t.Setenv("MARKET_CACHE_SIZE", "16")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 45*time.Second, cfg.MarketCacheTTL)
		assert.Equal(t, 16, cfg.MarketCacheSize)
	})

	t.Run("parsed but zero values fail validation", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("MARKET_CACHE_TTL", "0s")

		_, err := Load()

		assert.Error(t, err)
	})
}
