package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var validFontSizes = map[string]bool{
	"small":       true,
	"medium":      true,
	"large":       true,
	"extra-large": true,
}

var validThemes = map[string]bool{
	"light": true,
	"dark":  true,
}

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/settings", h.get)
}

func (h *Handler) RegisterProtected(r gin.IRouter) {
	r.PUT("/settings", h.update)
}

func (h *Handler) get(c *gin.Context) {
	s, err := h.repo.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) update(c *gin.Context) {
	var req UpdateSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if req.FontSize != nil && !validFontSizes[*req.FontSize] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "font_size must be one of small, medium, large, extra-large"})
		return
	}
	if req.Theme != nil && !validThemes[*req.Theme] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be light or dark"})
		return
	}

	s, err := h.repo.Update(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}
