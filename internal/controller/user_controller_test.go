package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"dsa_prep_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePreferencesAppliesAllowedFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "prefs@test.com")

	w := env.request(t, http.MethodPut, "/api/preferences", token, gin.H{
		"theme":              "dark",
		"accessibility_mode": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Preferences model.UserPreferences `json:"preferences"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dark", resp.Data.Preferences.Theme)
	assert.True(t, resp.Data.Preferences.AccessibilityMode)
	// 未提供的字段保持默认值
	assert.Equal(t, "default", resp.Data.Preferences.Layout)
	assert.Equal(t, "en", resp.Data.Preferences.Language)
}

func TestUpdatePreferencesRejectsUnknownKeys(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "prefs@test.com")

	w := env.request(t, http.MethodPut, "/api/preferences", token, gin.H{
		"theem":      "dark",
		"hack_field": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// 偏好设置不受影响，仍为默认值
	var prefs model.UserPreferences
	require.NoError(t, env.db.First(&prefs).Error)
	assert.Equal(t, "light", prefs.Theme)
}

func TestGetProfileReturnsPreferences(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "profile@test.com")

	w := env.request(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "profile@test.com")
	assert.Contains(t, w.Body.String(), `"theme":"light"`)
}
