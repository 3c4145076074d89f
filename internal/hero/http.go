package hero

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/hero", h.get)
}

func (h *Handler) RegisterProtected(r gin.IRouter) {
	r.POST("/hero", h.upsert)
}

func (h *Handler) get(c *gin.Context) {
	hero, err := h.repo.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get hero"})
		return
	}
	// No hero yet renders as a JSON null, not a 404.
	c.JSON(http.StatusOK, hero)
}

func (h *Handler) upsert(c *gin.Context) {
	var req UpsertHero
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, title and description are required"})
		return
	}

	hero, err := h.repo.Upsert(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save hero"})
		return
	}
	c.JSON(http.StatusOK, hero)
}
