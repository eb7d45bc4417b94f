package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=capacitor sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	seq         BIGSERIAL PRIMARY KEY,
	id          UUID NOT NULL UNIQUE,
	user_id     UUID NOT NULL,
	amount      NUMERIC(19, 4) NOT NULL CHECK (amount > 0),
	description TEXT NOT NULL,
	date        TIMESTAMPTZ NOT NULL,
	type        TEXT NOT NULL,
	category    TEXT NOT NULL,
	account_id  TEXT NOT NULL,
	tags        TEXT[] NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS transactions_user_seq_idx ON transactions (user_id, seq);

CREATE TABLE IF NOT EXISTS market_value_history (
	id           UUID PRIMARY KEY,
	user_id      UUID NOT NULL,
	date         TIMESTAMPTZ NOT NULL,
	market_value NUMERIC(19, 4) NOT NULL
);
CREATE INDEX IF NOT EXISTS market_value_history_user_date_idx ON market_value_history (user_id, date DESC);
`

// Migrate creates the ledger tables if they do not exist yet
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
