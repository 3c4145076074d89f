package portfolio

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-cms/portfolio-backend/internal/experiences"
	"github.com/portfolio-cms/portfolio-backend/internal/hero"
	"github.com/portfolio-cms/portfolio-backend/internal/projects"
	"github.com/portfolio-cms/portfolio-backend/internal/settings"
)

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	h := NewHandler(
		hero.NewRepo(db),
		projects.NewRepo(db),
		experiences.NewRepo(db),
		settings.NewRepo(db),
	)
	r := gin.New()
	h.Register(r)
	return r, mock, db
}

func TestPortfolio_ComposesAllSections(t *testing.T) {
	r, mock, db := setupRouter(t)
	defer db.Close()

	now := time.Now()
	projectCols := []string{
		"id", "title", "description", "image", "github_url", "live_url",
		"technologies", "is_featured", "created_at", "updated_at",
	}

	mock.ExpectQuery(`FROM heroes`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "title", "description", "profile_image", "created_at", "updated_at",
		}).AddRow(1, "Alex Doe", "Developer", "Bio", nil, now, now))
	mock.ExpectQuery(`FROM projects WHERE is_featured`).
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow(1, "Featured", "Desc", nil, nil, nil, []byte(`[]`), true, now, now))
	mock.ExpectQuery(`FROM projects ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow(1, "Featured", "Desc", nil, nil, nil, []byte(`[]`), true, now, now).
			AddRow(2, "Plain", "Desc", nil, nil, nil, []byte(`[]`), false, now, now))
	mock.ExpectQuery(`FROM experiences`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "company", "duration", "location", "description",
			"skills", "created_at", "updated_at",
		}).AddRow(1, "Engineer", "Acme", "2021 - 2023", nil, nil, nil, now, now))
	mock.ExpectQuery(`FROM settings`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "font_size", "theme", "email", "github_url", "linkedin_url",
			"twitter_url", "created_at", "updated_at",
		}).AddRow(1, "medium", "light", nil, nil, nil, nil, now, now))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp portfolioResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Hero)
	assert.Equal(t, "Alex Doe", resp.Hero.Name)
	assert.Len(t, resp.FeaturedProjects, 1)
	assert.Len(t, resp.Projects, 2)
	assert.Len(t, resp.Experiences, 1)
	require.NotNil(t, resp.Settings)
	assert.Equal(t, "light", resp.Settings.Theme)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolio_AbsentHeroIsNull(t *testing.T) {
	r, mock, db := setupRouter(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`FROM heroes`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "title", "description", "profile_image", "created_at", "updated_at",
		}))
	mock.ExpectQuery(`FROM projects WHERE is_featured`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "image", "github_url", "live_url",
			"technologies", "is_featured", "created_at", "updated_at",
		}))
	mock.ExpectQuery(`FROM projects ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "image", "github_url", "live_url",
			"technologies", "is_featured", "created_at", "updated_at",
		}))
	mock.ExpectQuery(`FROM experiences`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "company", "duration", "location", "description",
			"skills", "created_at", "updated_at",
		}))
	mock.ExpectQuery(`FROM settings`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "font_size", "theme", "email", "github_url", "linkedin_url",
			"twitter_url", "created_at", "updated_at",
		}).AddRow(1, "medium", "light", nil, nil, nil, nil, now, now))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"hero":null`)
}
