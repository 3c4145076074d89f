package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the login endpoint. Credentials are a single configured
// admin pair; there is no user table.
type Handler struct {
	tokens        *TokenService
	adminUsername string
	adminPassword string
}

func NewHandler(tokens *TokenService, adminUsername, adminPassword string) *Handler {
	return &Handler{
		tokens:        tokens,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/auth/login", h.login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	// One message for either field being wrong.
	if req.Username != h.adminUsername || req.Password != h.adminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect username or password"})
		return
	}

	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer"})
}
