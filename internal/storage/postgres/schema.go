package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// The heroes and settings tables hold at most one live row each. The
// constant singleton column with its unique constraint lets concurrent
// upserts land on ON CONFLICT instead of inserting duplicates.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS heroes (
		id            BIGSERIAL PRIMARY KEY,
		singleton     BOOLEAN NOT NULL DEFAULT TRUE UNIQUE CHECK (singleton),
		name          TEXT NOT NULL,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL,
		profile_image TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id           BIGSERIAL PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL,
		image        TEXT,
		github_url   TEXT,
		live_url     TEXT,
		technologies JSONB,
		is_featured  BOOLEAN NOT NULL DEFAULT FALSE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS experiences (
		id          BIGSERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		company     TEXT NOT NULL,
		duration    TEXT NOT NULL,
		location    TEXT,
		description TEXT,
		skills      JSONB,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id           BIGSERIAL PRIMARY KEY,
		singleton    BOOLEAN NOT NULL DEFAULT TRUE UNIQUE CHECK (singleton),
		font_size    TEXT NOT NULL DEFAULT 'medium',
		theme        TEXT NOT NULL DEFAULT 'light',
		email        TEXT,
		github_url   TEXT,
		linkedin_url TEXT,
		twitter_url  TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the content tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
