package portfolio

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-cms/portfolio-backend/internal/experiences"
	"github.com/portfolio-cms/portfolio-backend/internal/hero"
	"github.com/portfolio-cms/portfolio-backend/internal/projects"
	"github.com/portfolio-cms/portfolio-backend/internal/settings"
)

// Handler serves the composed public payload: everything the frontend
// needs to render the site in one request.
type Handler struct {
	hero        *hero.Repo
	projects    *projects.Repo
	experiences *experiences.Repo
	settings    *settings.Repo
}

func NewHandler(heroRepo *hero.Repo, projectRepo *projects.Repo, experienceRepo *experiences.Repo, settingsRepo *settings.Repo) *Handler {
	return &Handler{
		hero:        heroRepo,
		projects:    projectRepo,
		experiences: experienceRepo,
		settings:    settingsRepo,
	}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.portfolio)
}

type portfolioResponse struct {
	Hero             *hero.Hero               `json:"hero"`
	FeaturedProjects []projects.Project       `json:"featured_projects"`
	Projects         []projects.Project       `json:"projects"`
	Experiences      []experiences.Experience `json:"experiences"`
	Settings         *settings.Settings       `json:"settings"`
}

func (h *Handler) portfolio(c *gin.Context) {
	ctx := c.Request.Context()

	heroRow, err := h.hero.Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load portfolio"})
		return
	}

	featured, err := h.projects.List(ctx, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load portfolio"})
		return
	}

	all, err := h.projects.List(ctx, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load portfolio"})
		return
	}

	exps, err := h.experiences.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load portfolio"})
		return
	}

	cfg, err := h.settings.Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load portfolio"})
		return
	}

	c.JSON(http.StatusOK, portfolioResponse{
		Hero:             heroRow,
		FeaturedProjects: featured,
		Projects:         all,
		Experiences:      exps,
		Settings:         cfg,
	})
}
