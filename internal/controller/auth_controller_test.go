package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Alice",
		"email":    "alice@test.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			User         struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.NotEmpty(t, resp.Data.RefreshToken)
	assert.NotEmpty(t, resp.Data.User.ID)
	assert.Equal(t, "alice@test.com", resp.Data.User.Email)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	// 密码太短
	w := env.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Alice",
		"email":    "alice@test.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 邮箱格式非法
	w = env.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Alice",
		"email":    "not-an-email",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterConflict(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice@test.com")

	w := env.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Impostor",
		"email":    "alice@test.com",
		"password": "password456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "该邮箱已被注册")
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob@test.com")

	w := env.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "bob@test.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "access_token")

	w = env.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "bob@test.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestRefreshEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Carol",
		"email":    "carol@test.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 刷新令牌换新访问令牌
	w = env.request(t, http.MethodPost, "/api/auth/refresh", resp.Data.RefreshToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "access_token")

	// 访问令牌不能用来刷新
	w = env.request(t, http.MethodPost, "/api/auth/refresh", resp.Data.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/progress", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
