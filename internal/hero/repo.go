package hero

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Hero is the profile block shown at the top of the portfolio. The store
// holds at most one row; Upsert always lands on that row.
type Hero struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ProfileImage *string   `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpsertHero struct {
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ProfileImage *string `json:"profile_image"`
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const heroColumns = `id, name, title, description, profile_image, created_at, updated_at`

// Get returns the hero, or nil without error when none has been created.
func (r *Repo) Get(ctx context.Context) (*Hero, error) {
	const q = `SELECT ` + heroColumns + ` FROM heroes LIMIT 1;`

	h, err := scanHero(r.db.QueryRowContext(ctx, q))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hero: %w", err)
	}
	return h, nil
}

// Upsert replaces the hero in place, creating it on first call. The unique
// singleton column makes concurrent upserts conflict instead of inserting
// a second row.
func (r *Repo) Upsert(ctx context.Context, in UpsertHero) (*Hero, error) {
	const q = `
INSERT INTO heroes (name, title, description, profile_image)
VALUES ($1, $2, $3, $4)
ON CONFLICT (singleton) DO UPDATE SET
	name          = EXCLUDED.name,
	title         = EXCLUDED.title,
	description   = EXCLUDED.description,
	profile_image = EXCLUDED.profile_image,
	updated_at    = NOW()
RETURNING ` + heroColumns + `;
`
	h, err := scanHero(r.db.QueryRowContext(ctx, q, in.Name, in.Title, in.Description, in.ProfileImage))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert hero: %w", err)
	}
	return h, nil
}

func scanHero(row *sql.Row) (*Hero, error) {
	var h Hero
	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Title,
		&h.Description,
		&h.ProfileImage,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
