package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("DATABASE_USER", "sales")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "db:5432/sales_targets?sslmode=disable")
	t.Setenv("PERIOD_DISCOVERY_FALLBACK_YEARS", "0")
	t.Setenv("TARGETING_MAX_RECIPIENTS", "20")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://sales:secret@db:5432/sales_targets?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 5, cfg.PeriodDiscovery.FallbackYears)
	assert.Equal(t, 20, cfg.Targeting.MaxRecipients)
	assert.Equal(t, "0 2 * * *", cfg.PeriodDiscovery.CronSchedule)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}
