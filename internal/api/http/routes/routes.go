package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-cms/portfolio-backend/config"
	apihttp "github.com/portfolio-cms/portfolio-backend/internal/api/http"
	"github.com/portfolio-cms/portfolio-backend/internal/auth"
	"github.com/portfolio-cms/portfolio-backend/internal/experiences"
	"github.com/portfolio-cms/portfolio-backend/internal/hero"
	"github.com/portfolio-cms/portfolio-backend/internal/portfolio"
	"github.com/portfolio-cms/portfolio-backend/internal/projects"
	"github.com/portfolio-cms/portfolio-backend/internal/settings"
	"github.com/portfolio-cms/portfolio-backend/internal/uploads"
)

type Deps struct {
	DB  *sql.DB
	Cfg *config.Config
}

// Register wires every endpoint: public reads, the login route, the
// static upload mount, and the admin writes behind the auth gate.
func Register(r *gin.Engine, dep Deps) error {
	tokens := auth.NewTokenService(dep.Cfg.Auth.Secret, dep.Cfg.Auth.TokenTTL)

	uploadService, err := uploads.NewService(dep.Cfg.Upload.Dir)
	if err != nil {
		return err
	}

	heroRepo := hero.NewRepo(dep.DB)
	projectRepo := projects.NewRepo(dep.DB)
	experienceRepo := experiences.NewRepo(dep.DB)
	settingsRepo := settings.NewRepo(dep.DB)

	heroHandler := hero.NewHandler(heroRepo)
	projectHandler := projects.NewHandler(projectRepo)
	experienceHandler := experiences.NewHandler(experienceRepo)
	settingsHandler := settings.NewHandler(settingsRepo)

	auth.NewHandler(tokens, dep.Cfg.Auth.AdminUsername, dep.Cfg.Auth.AdminPassword).Register(r)

	apihttp.NewHealthHandler("portfolio-backend", dep.Cfg.App.Version, dep.DB).RegisterRoutes(r)

	portfolio.NewHandler(heroRepo, projectRepo, experienceRepo, settingsRepo).Register(r)
	heroHandler.Register(r)
	projectHandler.Register(r)
	experienceHandler.Register(r)
	settingsHandler.Register(r)

	r.Static("/uploads", uploadService.Dir())

	admin := r.Group("", auth.RequireAdmin(tokens))
	heroHandler.RegisterProtected(admin)
	projectHandler.RegisterProtected(admin)
	experienceHandler.RegisterProtected(admin)
	settingsHandler.RegisterProtected(admin)
	uploads.NewHandler(uploadService).RegisterProtected(admin)

	return nil
}
