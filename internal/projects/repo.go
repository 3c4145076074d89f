package projects

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("project not found")

// Project represents a single portfolio project.
type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        *string   `json:"image"`
	GithubURL    *string   `json:"github_url"`
	LiveURL      *string   `json:"live_url"`
	Technologies []string  `json:"technologies"`
	IsFeatured   bool      `json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateProject carries the fields accepted on create.
type CreateProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        *string  `json:"image"`
	GithubURL    *string  `json:"github_url"`
	LiveURL      *string  `json:"live_url"`
	Technologies []string `json:"technologies"`
	IsFeatured   bool     `json:"is_featured"`
}

// UpdateProject carries the fields accepted on update. Nil fields are left
// unchanged.
type UpdateProject struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Image        *string  `json:"image"`
	GithubURL    *string  `json:"github_url"`
	LiveURL      *string  `json:"live_url"`
	Technologies []string `json:"technologies"`
	IsFeatured   *bool    `json:"is_featured"`
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const projectColumns = `id, title, description, image, github_url, live_url, technologies, is_featured, created_at, updated_at`

func (r *Repo) Create(ctx context.Context, in CreateProject) (*Project, error) {
	const q = `
INSERT INTO projects (title, description, image, github_url, live_url, technologies, is_featured)
VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)
RETURNING ` + projectColumns + `;
`
	row := r.db.QueryRowContext(ctx, q,
		in.Title, in.Description, in.Image, in.GithubURL, in.LiveURL,
		marshalList(in.Technologies), in.IsFeatured)

	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

func (r *Repo) List(ctx context.Context, featuredOnly bool) ([]Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects ORDER BY id;`
	if featuredOnly {
		q = `SELECT ` + projectColumns + ` FROM projects WHERE is_featured ORDER BY id;`
	}

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	out := make([]Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Update applies only the non-nil fields and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id int64, upd UpdateProject) (*Project, error) {
	const q = `
UPDATE projects
SET title        = COALESCE($2, title),
    description  = COALESCE($3, description),
    image        = COALESCE($4, image),
    github_url   = COALESCE($5, github_url),
    live_url     = COALESCE($6, live_url),
    technologies = COALESCE($7::jsonb, technologies),
    is_featured  = COALESCE($8, is_featured),
    updated_at   = NOW()
WHERE id = $1
RETURNING ` + projectColumns + `;
`
	var technologies interface{}
	if upd.Technologies != nil {
		technologies = marshalList(upd.Technologies)
	}

	row := r.db.QueryRowContext(ctx, q, id,
		upd.Title, upd.Description, upd.Image, upd.GithubURL, upd.LiveURL,
		technologies, upd.IsFeatured)

	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return p, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleFeatured flips is_featured in the store so concurrent toggles
// serialize on the row instead of racing a read-modify-write.
func (r *Repo) ToggleFeatured(ctx context.Context, id int64) (*Project, error) {
	const q = `
UPDATE projects
SET is_featured = NOT is_featured,
    updated_at  = NOW()
WHERE id = $1
RETURNING ` + projectColumns + `;
`
	row := r.db.QueryRowContext(ctx, q, id)

	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle featured: %w", err)
	}
	return p, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row scanner) (*Project, error) {
	var p Project
	var technologiesJSON []byte

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Image,
		&p.GithubURL,
		&p.LiveURL,
		&technologiesJSON,
		&p.IsFeatured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Technologies = unmarshalList(technologiesJSON)
	return &p, nil
}

func marshalList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func unmarshalList(data []byte) []string {
	out := []string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &out); err != nil {
			return []string{}
		}
	}
	return out
}
