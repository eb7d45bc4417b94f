package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/budget"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/mode"
)

// Ledger backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Mode     ModeConfig
	Budget   BudgetConfig
	SeedDemo bool
}

type ServerConfig struct {
	GRPCPort string
	APIToken string
}

type DatabaseConfig struct {
	Backend  string
	ConnStr  string // Takes precedence over the individual fields when set
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ModeConfig struct {
	SavingsMinExpenses   int
	SavingsMinRatio      decimal.Decimal
	StreakBreakThreshold int
	RiskProfile          mode.RiskProfile
}

type BudgetConfig struct {
	DefaultStrategy string
}

// Load reads the configuration from the environment.
// A .env file in the working directory is loaded first if present; real
// environment variables win over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	dbPort, err := getIntEnv("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	minExpenses, err := getIntEnv("MODE_SAVINGS_MIN_EXPENSES", 10)
	if err != nil {
		return nil, err
	}
	minRatio, err := getDecimalEnv("MODE_SAVINGS_MIN_RATIO", "0.2")
	if err != nil {
		return nil, err
	}
	streakBreak, err := getIntEnv("MODE_STREAK_BREAK_THRESHOLD", 5)
	if err != nil {
		return nil, err
	}
	riskProfile, err := mode.ParseRiskProfile(getEnv("MODE_RISK_PROFILE", string(mode.RiskMedium)))
	if err != nil {
		return nil, fmt.Errorf("invalid MODE_RISK_PROFILE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			GRPCPort: getEnv("GRPC_PORT", ":8080"),
			APIToken: getEnv("API_TOKEN", "dev-token"),
		},
		Database: DatabaseConfig{
			Backend:  strings.ToLower(getEnv("LEDGER_BACKEND", BackendMemory)),
			ConnStr:  os.Getenv("DB_CONN_STR"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "capacitor"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Mode: ModeConfig{
			SavingsMinExpenses:   minExpenses,
			SavingsMinRatio:      minRatio,
			StreakBreakThreshold: streakBreak,
			RiskProfile:          riskProfile,
		},
		Budget: BudgetConfig{
			DefaultStrategy: getEnv("DEFAULT_BUDGET_STRATEGY", "fifty-thirty-twenty"),
		},
		SeedDemo: getBoolEnv("SEED_DEMO", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that parse but make no sense
func (c *Config) Validate() error {
	if c.Database.Backend != BackendMemory && c.Database.Backend != BackendPostgres {
		return fmt.Errorf("invalid LEDGER_BACKEND %q: want %s or %s", c.Database.Backend, BackendMemory, BackendPostgres)
	}
	if c.Mode.SavingsMinExpenses < 0 {
		return errors.New("MODE_SAVINGS_MIN_EXPENSES cannot be negative")
	}
	if c.Mode.SavingsMinRatio.IsNegative() || c.Mode.SavingsMinRatio.GreaterThan(decimal.NewFromInt(1)) {
		return errors.New("MODE_SAVINGS_MIN_RATIO must be between 0 and 1")
	}
	if _, err := budget.ByName(c.Budget.DefaultStrategy); err != nil {
		return fmt.Errorf("invalid DEFAULT_BUDGET_STRATEGY: %w", err)
	}
	return nil
}

func (c *DatabaseConfig) ConnectionString() string {
	if c.ConnStr != "" {
		return c.ConnStr
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Options converts the mode settings into mode machine options
func (c ModeConfig) Options() []mode.Option {
	return []mode.Option{
		mode.WithConsistencyEvaluator(mode.SavingsRatioPolicy{
			MinExpenses:     c.SavingsMinExpenses,
			MinSavingsRatio: c.SavingsMinRatio,
		}),
		mode.WithStreakBreakThreshold(c.StreakBreakThreshold),
		mode.WithRiskProfile(c.RiskProfile),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDecimalEnv(key, defaultValue string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getEnv(key, defaultValue))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept: true, false, 1, 0, yes, no (case-insensitive)
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
