package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"dsa_prep_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSearchService(t *testing.T) (*SearchService, *NoteService, *gorm.DB) {
	db := newTestDB(t)
	repo := repository.NewNoteRepository(db)
	return NewSearchService(repo), NewNoteService(repo), db
}

func TestSearchAllGroups(t *testing.T) {
	s, notes, db := newSearchService(t)
	user := createTestUser(t, db, "search@test.com", "password123")

	_, err := notes.Create(user.ID, "My sorting notes", "quicksort beats bubble sort", []string{"sorting"}, 6, "")
	require.NoError(t, err)

	results, err := s.Search(user.ID, "sorting", SearchTypeAll, 1, 20)
	require.NoError(t, err)

	assert.NotEmpty(t, results.Resources)
	require.NotNil(t, results.ResourcesTotal)
	assert.NotEmpty(t, results.Roadmap)
	assert.Len(t, results.Notes, 1)
	require.NotNil(t, results.NotesPagination)
	assert.EqualValues(t, 1, results.NotesPagination.Total)
}

func TestSearchSingleType(t *testing.T) {
	s, _, db := newSearchService(t)
	user := createTestUser(t, db, "search@test.com", "password123")

	results, err := s.Search(user.ID, "arrays", SearchTypeResources, 1, 20)
	require.NoError(t, err)
	assert.NotEmpty(t, results.Resources)
	// 未请求的类别不出现在结果里
	assert.Nil(t, results.Roadmap)
	assert.Nil(t, results.Notes)
	assert.Nil(t, results.NotesPagination)
}

func TestSearchResourcePagination(t *testing.T) {
	s, _, db := newSearchService(t)
	user := createTestUser(t, db, "search@test.com", "password123")

	page1, err := s.Search(user.ID, "w3schools", SearchTypeResources, 1, 3)
	require.NoError(t, err)
	require.NotNil(t, page1.ResourcesTotal)
	total := *page1.ResourcesTotal
	require.Greater(t, total, 3)
	assert.Len(t, page1.Resources, 3)

	page2, err := s.Search(user.ID, "w3schools", SearchTypeResources, 2, 3)
	require.NoError(t, err)
	assert.NotEqual(t, page1.Resources[0].ID, page2.Resources[0].ID)

	// 越界页返回空列表而不是报错
	beyond, err := s.Search(user.ID, "w3schools", SearchTypeResources, total, 100)
	require.NoError(t, err)
	assert.Empty(t, beyond.Resources)
	assert.NotNil(t, beyond.Resources)
}

func TestSearchRoadmapCap(t *testing.T) {
	s, _, db := newSearchService(t)
	user := createTestUser(t, db, "search@test.com", "password123")

	// 空串匹配所有14周，结果截断到10条
	results, err := s.Search(user.ID, "", SearchTypeRoadmap, 1, 20)
	require.NoError(t, err)
	assert.Len(t, results.Roadmap, 10)
}

func TestSearchNoteSnippet(t *testing.T) {
	s, notes, db := newSearchService(t)
	user := createTestUser(t, db, "search@test.com", "password123")

	long := strings.Repeat("x", 500) + " needle"
	_, err := notes.Create(user.ID, "Long note", long, nil, 0, "")
	require.NoError(t, err)
	_, err = notes.Create(user.ID, "Short needle note", "short body", nil, 0, "")
	require.NoError(t, err)

	results, err := s.Search(user.ID, "needle", SearchTypeNotes, 1, 20)
	require.NoError(t, err)
	require.Len(t, results.Notes, 2)

	for _, hit := range results.Notes {
		if hit.Title == "Long note" {
			assert.Len(t, hit.Content, snippetLength+3)
			assert.True(t, strings.HasSuffix(hit.Content, "..."))
		} else {
			assert.Equal(t, "short body", hit.Content)
		}
	}
}

func TestSearchNoteSnippetMultibyte(t *testing.T) {
	s, notes, db := newSearchService(t)
	user := createTestUser(t, db, "search@test.com", "password123")

	// 300个三字节字符，截断必须落在字符边界上
	long := "needle " + strings.Repeat("图", 300)
	_, err := notes.Create(user.ID, "CJK note", long, nil, 0, "")
	require.NoError(t, err)

	results, err := s.Search(user.ID, "needle", SearchTypeNotes, 1, 20)
	require.NoError(t, err)
	require.Len(t, results.Notes, 1)

	hit := results.Notes[0]
	assert.True(t, utf8.ValidString(hit.Content))
	assert.Len(t, []rune(hit.Content), snippetLength+3)
	assert.True(t, strings.HasSuffix(hit.Content, "..."))
}

func TestSearchNotesPagination(t *testing.T) {
	s, notes, db := newSearchService(t)
	user := createTestUser(t, db, "search@test.com", "password123")

	for i := 0; i < 5; i++ {
		_, err := notes.Create(user.ID, "Graph note", "bfs and dfs", nil, 0, "")
		require.NoError(t, err)
	}

	results, err := s.Search(user.ID, "graph", SearchTypeNotes, 1, 2)
	require.NoError(t, err)
	assert.Len(t, results.Notes, 2)
	require.NotNil(t, results.NotesPagination)
	assert.Equal(t, 1, results.NotesPagination.Page)
	assert.Equal(t, 3, results.NotesPagination.Pages)
	assert.EqualValues(t, 5, results.NotesPagination.Total)
}
