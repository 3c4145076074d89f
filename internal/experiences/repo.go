package experiences

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("experience not found")

// Experience represents one work-history entry.
type Experience struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Duration    string    `json:"duration"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateExperience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Location    *string  `json:"location"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
}

// UpdateExperience carries the fields accepted on update. Nil fields are
// left unchanged.
type UpdateExperience struct {
	Title       *string  `json:"title"`
	Company     *string  `json:"company"`
	Duration    *string  `json:"duration"`
	Location    *string  `json:"location"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const experienceColumns = `id, title, company, duration, location, description, skills, created_at, updated_at`

func (r *Repo) Create(ctx context.Context, in CreateExperience) (*Experience, error) {
	const q = `
INSERT INTO experiences (title, company, duration, location, description, skills)
VALUES ($1, $2, $3, $4, $5, $6::jsonb)
RETURNING ` + experienceColumns + `;
`
	row := r.db.QueryRowContext(ctx, q,
		in.Title, in.Company, in.Duration, in.Location, in.Description,
		marshalSkills(in.Skills))

	e, err := scanExperience(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return e, nil
}

func (r *Repo) List(ctx context.Context) ([]Experience, error) {
	const q = `SELECT ` + experienceColumns + ` FROM experiences ORDER BY id;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	out := make([]Experience, 0, 16)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list experiences: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Update applies only the non-nil fields and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id int64, upd UpdateExperience) (*Experience, error) {
	const q = `
UPDATE experiences
SET title       = COALESCE($2, title),
    company     = COALESCE($3, company),
    duration    = COALESCE($4, duration),
    location    = COALESCE($5, location),
    description = COALESCE($6, description),
    skills      = COALESCE($7::jsonb, skills),
    updated_at  = NOW()
WHERE id = $1
RETURNING ` + experienceColumns + `;
`
	var skills interface{}
	if upd.Skills != nil {
		skills = marshalSkills(upd.Skills)
	}

	row := r.db.QueryRowContext(ctx, q, id,
		upd.Title, upd.Company, upd.Duration, upd.Location, upd.Description, skills)

	e, err := scanExperience(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return e, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanExperience(row scanner) (*Experience, error) {
	var e Experience
	var skillsJSON []byte

	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Company,
		&e.Duration,
		&e.Location,
		&e.Description,
		&skillsJSON,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Skills = []string{}
	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &e.Skills); err != nil {
			e.Skills = []string{}
		}
	}
	return &e, nil
}

func marshalSkills(skills []string) string {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "[]"
	}
	return string(b)
}
