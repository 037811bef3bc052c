package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"dsa_prep_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNoteEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "notes@test.com")

	w := env.request(t, http.MethodPost, "/api/notes", token, gin.H{
		"title":   "Hash maps",
		"content": "constant time lookups",
		"tags":    []string{"structures", " hashing "},
		"week":    4,
		"day":     "Monday",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data service.NoteView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.ID)
	assert.Equal(t, []string{"structures", "hashing"}, resp.Data.Tags)

	// title必填
	w = env.request(t, http.MethodPost, "/api/notes", token, gin.H{"content": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListNotesWithSearchParam(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "notes@test.com")

	for _, title := range []string{"Sorting basics", "Graph traversal"} {
		w := env.request(t, http.MethodPost, "/api/notes", token, gin.H{"title": title})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.request(t, http.MethodGet, "/api/notes?search=sorting", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			List  []service.NoteView `json:"list"`
			Total int64              `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.List, 1)
	assert.Equal(t, "Sorting basics", resp.Data.List[0].Title)

	w = env.request(t, http.MethodGet, "/api/notes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.List, 2)
}

func TestSearchEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "search@test.com")

	w := env.request(t, http.MethodGet, "/api/search?q=arrays", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data service.SearchResults `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Resources)
	assert.NotNil(t, resp.Data.NotesPagination)

	// 缺少关键词
	w = env.request(t, http.MethodGet, "/api/search?q=++", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Search query required")

	// 限定类型时不返回其他类别
	w = env.request(t, http.MethodGet, "/api/search?q=arrays&type=roadmap", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var scoped struct {
		Data service.SearchResults `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scoped))
	assert.NotEmpty(t, scoped.Data.Roadmap)
	assert.Empty(t, scoped.Data.Resources)
}
