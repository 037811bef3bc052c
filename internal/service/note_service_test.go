package service

import (
	"testing"

	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNoteService(t *testing.T) (*NoteService, *gorm.DB) {
	db := newTestDB(t)
	return NewNoteService(repository.NewNoteRepository(db)), db
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "arrays,sorting", JoinTags([]string{"arrays", "sorting"}))
	assert.Equal(t, "arrays,sorting", JoinTags([]string{" arrays ", "", "  ", "sorting"}))
	assert.Equal(t, "", JoinTags(nil))
	assert.Equal(t, "", JoinTags([]string{"", "  "}))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"arrays", "sorting"}, SplitTags("arrays,sorting"))
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, []string{"solo"}, SplitTags("solo"))
}

func TestNoteCRUD(t *testing.T) {
	s, db := newNoteService(t)
	user := createTestUser(t, db, "notes@test.com", "password123")

	created, err := s.Create(user.ID, "Two Pointers", "left and right walk inward", []string{"arrays", " technique "}, 2, "Tuesday")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"arrays", "technique"}, created.Tags)
	assert.Equal(t, 2, created.Week)

	got, err := s.Get(user.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Two Pointers", got.Title)

	newTitle := "Two Pointers Revisited"
	updated, err := s.Update(user.ID, created.ID, NoteUpdate{Title: &newTitle, Tags: []string{"arrays"}})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, []string{"arrays"}, updated.Tags)
	// 未提供的字段保持不变
	assert.Equal(t, "left and right walk inward", updated.Content)

	require.NoError(t, s.Delete(user.ID, created.ID))
	_, err = s.Get(user.ID, created.ID)
	assert.ErrorIs(t, err, util.ErrNoteNotFound)
}

func TestNoteOwnership(t *testing.T) {
	s, db := newNoteService(t)
	owner := createTestUser(t, db, "owner@test.com", "password123")
	other := createTestUser(t, db, "other@test.com", "password123")

	created, err := s.Create(owner.ID, "Private", "secret", nil, 0, "")
	require.NoError(t, err)

	_, err = s.Get(other.ID, created.ID)
	assert.ErrorIs(t, err, util.ErrNoteNotFound)
	assert.ErrorIs(t, s.Delete(other.ID, created.ID), util.ErrNoteNotFound)
}

func TestNoteListFilters(t *testing.T) {
	s, db := newNoteService(t)
	user := createTestUser(t, db, "notes@test.com", "password123")

	_, err := s.Create(user.ID, "Week1 Monday", "c1", []string{"basics"}, 1, "Monday")
	require.NoError(t, err)
	_, err = s.Create(user.ID, "Week1 Tuesday", "c2", []string{"arrays"}, 1, "Tuesday")
	require.NoError(t, err)
	_, err = s.Create(user.ID, "Week2", "c3", []string{"arrays", "sorting"}, 2, "Monday")
	require.NoError(t, err)

	all, total, err := s.List(user.ID, repository.NoteFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.EqualValues(t, 3, total)

	week1, _, err := s.List(user.ID, repository.NoteFilter{Week: 1}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, week1, 2)

	tagged, _, err := s.List(user.ID, repository.NoteFilter{Tag: "sorting"}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, tagged, 1)
	assert.Equal(t, "Week2", tagged[0].Title)

	paged, total, err := s.List(user.ID, repository.NoteFilter{}, 1, 2)
	require.NoError(t, err)
	assert.Len(t, paged, 2)
	assert.EqualValues(t, 3, total)
}

func TestNoteSearch(t *testing.T) {
	s, db := newNoteService(t)
	user := createTestUser(t, db, "notes@test.com", "password123")

	_, err := s.Create(user.ID, "Binary Search", "divide in half", []string{"algorithms"}, 5, "")
	require.NoError(t, err)
	_, err = s.Create(user.ID, "Linked List", "pointers everywhere", []string{"structures"}, 3, "")
	require.NoError(t, err)

	byTitle, total, err := s.Search(user.ID, "binary", 1, 20)
	require.NoError(t, err)
	assert.Len(t, byTitle, 1)
	assert.EqualValues(t, 1, total)

	byContent, _, err := s.Search(user.ID, "POINTERS", 1, 20)
	require.NoError(t, err)
	assert.Len(t, byContent, 1)
	assert.Equal(t, "Linked List", byContent[0].Title)

	byTag, _, err := s.Search(user.ID, "algorithms", 1, 20)
	require.NoError(t, err)
	assert.Len(t, byTag, 1)

	none, total, err := s.Search(user.ID, "nothing here", 1, 20)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Zero(t, total)
}
