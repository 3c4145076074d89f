package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginRouter(t *testing.T) (*gin.Engine, *TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := NewTokenService("secret", time.Hour)
	h := NewHandler(tokens, "admin", "hunter2")

	r := gin.New()
	h.Register(r)
	return r, tokens
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestLogin_Success(t *testing.T) {
	r, tokens := loginRouter(t)

	rr := postLogin(r, `{"username":"admin","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)

	subject, err := tokens.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := loginRouter(t)

	rr := postLogin(r, `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"incorrect username or password"}`, rr.Body.String())
}

func TestLogin_WrongUsername_SameMessage(t *testing.T) {
	r, _ := loginRouter(t)

	wrongUser := postLogin(r, `{"username":"nobody","password":"hunter2"}`)
	wrongPass := postLogin(r, `{"username":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongUser.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, wrongUser.Body.String(), wrongPass.Body.String())
}

func TestLogin_BadBody(t *testing.T) {
	r, _ := loginRouter(t)

	rr := postLogin(r, `{`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
