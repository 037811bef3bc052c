package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"dsa_prep_backend/internal/roadmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListResourcesPagination(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/resources?page=1&per_page=10", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			List  []roadmap.Resource `json:"list"`
			Total int64              `json:"total"`
			Page  int                `json:"page"`
			Limit int                `json:"limit"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.List, 10)
	assert.EqualValues(t, len(roadmap.Resources), resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Page)

	// 越界页返回空列表
	w = env.request(t, http.MethodGet, "/api/resources?page=999&per_page=10", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.List)
}

func TestListResourcesTypeFilter(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/resources?type=video&per_page=200", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			List []roadmap.Resource `json:"list"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.List)
	for _, r := range resp.Data.List {
		assert.Equal(t, "video", r.Type)
	}
}

func TestGetRoadmapFull(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/roadmap", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Roadmap []roadmap.Week `json:"roadmap"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Roadmap, 14)
}

func TestGetRoadmapSingleWeek(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/roadmap?week=3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data roadmap.Week `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Week)
	assert.Len(t, resp.Data.Days, 7)

	w = env.request(t, http.MethodGet, "/api/roadmap?week=99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
