package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(tokens *TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", RequireAdmin(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": Subject(c)})
	})
	return r
}

func TestRequireAdmin_MissingHeader(t *testing.T) {
	r := protectedRouter(NewTokenService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"could not validate credentials"}`, rr.Body.String())
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	r := protectedRouter(NewTokenService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage-token")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAdmin_ExpiredToken(t *testing.T) {
	expired := NewTokenService("secret", -1*time.Minute)
	tok, err := expired.Issue("admin")
	require.NoError(t, err)

	r := protectedRouter(NewTokenService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"could not validate credentials"}`, rr.Body.String())
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)
	tok, err := tokens.Issue("admin")
	require.NoError(t, err)

	r := protectedRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"subject":"admin"}`, rr.Body.String())
}
