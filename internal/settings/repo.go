package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Site-wide defaults used when the settings row is created lazily.
const (
	DefaultFontSize = "medium"
	DefaultTheme    = "light"

	defaultEmail       = "hello@example.com"
	defaultGithubURL   = "https://github.com"
	defaultLinkedinURL = "https://linkedin.com"
	defaultTwitterURL  = "https://twitter.com"
)

// Settings is the site appearance and contact configuration. The store
// holds at most one row, created on first read if the admin never saved
// one.
type Settings struct {
	ID          int64     `json:"id"`
	FontSize    string    `json:"font_size"`
	Theme       string    `json:"theme"`
	Email       *string   `json:"email"`
	GithubURL   *string   `json:"github_url"`
	LinkedinURL *string   `json:"linkedin_url"`
	TwitterURL  *string   `json:"twitter_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateSettings carries the fields accepted on update. Nil fields are
// left unchanged.
type UpdateSettings struct {
	FontSize    *string `json:"font_size"`
	Theme       *string `json:"theme"`
	Email       *string `json:"email"`
	GithubURL   *string `json:"github_url"`
	LinkedinURL *string `json:"linkedin_url"`
	TwitterURL  *string `json:"twitter_url"`
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const settingsColumns = `id, font_size, theme, email, github_url, linkedin_url, twitter_url, created_at, updated_at`

// Get returns the settings row, creating the default one if none exists.
// A read never 404s.
func (r *Repo) Get(ctx context.Context) (*Settings, error) {
	s, err := r.selectOne(ctx)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	// No row yet: insert the defaults. DO NOTHING keeps a concurrent
	// creator from failing; whoever loses the race reselects.
	const q = `
INSERT INTO settings (email, github_url, linkedin_url, twitter_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (singleton) DO NOTHING
RETURNING ` + settingsColumns + `;
`
	s, err = scanSettings(r.db.QueryRowContext(ctx, q,
		defaultEmail, defaultGithubURL, defaultLinkedinURL, defaultTwitterURL))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}

	s, err = r.selectOne(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

// Update merges the non-nil fields over the stored row, creating the row
// first if it does not exist. Repeated calls always target the one
// singleton row.
func (r *Repo) Update(ctx context.Context, upd UpdateSettings) (*Settings, error) {
	const q = `
INSERT INTO settings (font_size, theme, email, github_url, linkedin_url, twitter_url)
VALUES (COALESCE($1, 'medium'), COALESCE($2, 'light'), $3, $4, $5, $6)
ON CONFLICT (singleton) DO UPDATE SET
	font_size    = COALESCE($1, settings.font_size),
	theme        = COALESCE($2, settings.theme),
	email        = COALESCE($3, settings.email),
	github_url   = COALESCE($4, settings.github_url),
	linkedin_url = COALESCE($5, settings.linkedin_url),
	twitter_url  = COALESCE($6, settings.twitter_url),
	updated_at   = NOW()
RETURNING ` + settingsColumns + `;
`
	s, err := scanSettings(r.db.QueryRowContext(ctx, q,
		upd.FontSize, upd.Theme, upd.Email, upd.GithubURL, upd.LinkedinURL, upd.TwitterURL))
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return s, nil
}

func (r *Repo) selectOne(ctx context.Context) (*Settings, error) {
	const q = `SELECT ` + settingsColumns + ` FROM settings LIMIT 1;`
	return scanSettings(r.db.QueryRowContext(ctx, q))
}

func scanSettings(row *sql.Row) (*Settings, error) {
	var s Settings
	err := row.Scan(
		&s.ID,
		&s.FontSize,
		&s.Theme,
		&s.Email,
		&s.GithubURL,
		&s.LinkedinURL,
		&s.TwitterURL,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
