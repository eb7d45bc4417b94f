package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/mode"
)

var keys = []string{
	"GRPC_PORT", "API_TOKEN", "LEDGER_BACKEND", "DB_CONN_STR", "DB_HOST", "DB_PORT",
	"DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "SEED_DEMO",
	"MODE_SAVINGS_MIN_EXPENSES", "MODE_SAVINGS_MIN_RATIO", "MODE_STREAK_BREAK_THRESHOLD",
	"MODE_RISK_PROFILE", "DEFAULT_BUDGET_STRATEGY",
}

// clearEnv blanks every key so the defaults apply regardless of the host environment
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.GRPCPort)
	assert.Equal(t, "dev-token", cfg.Server.APIToken)
	assert.Equal(t, BackendMemory, cfg.Database.Backend)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Mode.SavingsMinExpenses)
	assert.True(t, cfg.Mode.SavingsMinRatio.Equal(decimal.RequireFromString("0.2")))
	assert.Equal(t, 5, cfg.Mode.StreakBreakThreshold)
	assert.Equal(t, mode.RiskMedium, cfg.Mode.RiskProfile)
	assert.Equal(t, "fifty-thirty-twenty", cfg.Budget.DefaultStrategy)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=capacitor sslmode=disable",
		cfg.Database.ConnectionString())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRPC_PORT", ":9090")
	t.Setenv("LEDGER_BACKEND", "Postgres")
	t.Setenv("DB_CONN_STR", "postgres://localhost/capacitor")
	t.Setenv("SEED_DEMO", "no")
	t.Setenv("MODE_SAVINGS_MIN_EXPENSES", "3")
	t.Setenv("MODE_RISK_PROFILE", "high")
	t.Setenv("DEFAULT_BUDGET_STRATEGY", "zero-based")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.GRPCPort)
	assert.Equal(t, BackendPostgres, cfg.Database.Backend)
	assert.Equal(t, "postgres://localhost/capacitor", cfg.Database.ConnectionString())
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, 3, cfg.Mode.SavingsMinExpenses)
	assert.Equal(t, mode.RiskHigh, cfg.Mode.RiskProfile)
	assert.Len(t, cfg.Mode.Options(), 3)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non numeric port should fail", key: "DB_PORT", value: "abc"},
		{name: "non numeric min expenses should fail", key: "MODE_SAVINGS_MIN_EXPENSES", value: "ten"},
		{name: "negative min expenses should fail", key: "MODE_SAVINGS_MIN_EXPENSES", value: "-1"},
		{name: "ratio above one should fail", key: "MODE_SAVINGS_MIN_RATIO", value: "1.5"},
		{name: "malformed ratio should fail", key: "MODE_SAVINGS_MIN_RATIO", value: "20%"},
		{name: "unknown risk profile should fail", key: "MODE_RISK_PROFILE", value: "YOLO"},
		{name: "unknown backend should fail", key: "LEDGER_BACKEND", value: "sqlite"},
		{name: "unknown strategy should fail", key: "DEFAULT_BUDGET_STRATEGY", value: "envelope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
