package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dsa_prep_backend/internal/config"
	"dsa_prep_backend/internal/model"
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeAIServer 模拟OpenAI兼容接口，记录收到的请求
func fakeAIServer(t *testing.T, answer string, requests *[]ChatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if requests != nil {
			*requests = append(*requests, req)
		}

		resp := ChatCompletionResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message AIChatMessage `json:"message"`
		}{Message: AIChatMessage{Role: "assistant", Content: answer}})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTutorService(t *testing.T, baseURL string) (*TutorService, *gorm.DB) {
	db := newTestDB(t)
	ai := NewAIService(config.AIConfig{BaseURL: baseURL, APIKey: "test-key", Model: "gpt-4o-mini"})
	s := NewTutorService(
		ai,
		repository.NewProgressRepository(db),
		repository.NewNoteRepository(db),
		repository.NewConversationRepository(db),
	)
	return s, db
}

func TestAskPersistsConversation(t *testing.T) {
	var requests []ChatCompletionRequest
	server := fakeAIServer(t, "Use two pointers.", &requests)
	defer server.Close()

	s, db := newTutorService(t, server.URL)
	user := createTestUser(t, db, "tutor@test.com", "password123")

	result, err := s.Ask(context.Background(), user.ID, "How do arrays work?")
	require.NoError(t, err)
	assert.Equal(t, "Use two pointers.", result.Answer)
	assert.NotEmpty(t, result.Citations)
	assert.LessOrEqual(t, len(result.Citations), contextResourceLimit)

	// 发给模型的提示词带上了资源和路线图上下文
	require.Len(t, requests, 1)
	prompt := requests[0].Messages[0].Content
	assert.Contains(t, prompt, "RESOURCES:")
	assert.Contains(t, prompt, "QUESTION: How do arrays work?")

	var conv model.AIConversation
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&conv).Error)
	assert.Equal(t, "How do arrays work?", conv.Question)
	assert.Equal(t, "Use two pointers.", conv.Answer)
	assert.NotEmpty(t, conv.Citations)
}

func TestHistoryReturnsConversations(t *testing.T) {
	server := fakeAIServer(t, "ok", nil)
	defer server.Close()

	s, db := newTutorService(t, server.URL)
	user := createTestUser(t, db, "tutor@test.com", "password123")

	_, err := s.Ask(context.Background(), user.ID, "What are arrays?")
	require.NoError(t, err)
	_, err = s.Ask(context.Background(), user.ID, "What are trees?")
	require.NoError(t, err)

	conversations, total, err := s.History(user.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, conversations, 2)
	// 最新的排在前面
	assert.Equal(t, "What are trees?", conversations[0].Question)

	page2, _, err := s.History(user.ID, 2, 1)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "What are arrays?", page2[0].Question)
}

func TestAskAIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	s, db := newTutorService(t, server.URL)
	user := createTestUser(t, db, "tutor@test.com", "password123")

	_, err := s.Ask(context.Background(), user.ID, "anything")
	require.Error(t, err)

	// 失败时不落库
	var count int64
	require.NoError(t, db.Model(&model.AIConversation{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStudyPlanProgressSummary(t *testing.T) {
	server := fakeAIServer(t, "Focus on linked lists next week.", nil)
	defer server.Close()

	s, db := newTutorService(t, server.URL)
	user := createTestUser(t, db, "tutor@test.com", "password123")

	now := time.Now().UTC()
	for _, week := range []int{1, 2} {
		require.NoError(t, db.Create(&model.Progress{
			UserID: user.ID, Week: week, Day: "Monday", Completed: true, CompletionDate: &now,
		}).Error)
	}

	result, err := s.StudyPlan(context.Background(), user.ID, 0, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Focus on linked lists next week.", result.StudyPlan)
	assert.Equal(t, 3, result.CurrentWeek)
	assert.Equal(t, "2/14 weeks completed", result.ProgressSummary)
}

func TestQuizClampsQuestionCount(t *testing.T) {
	var requests []ChatCompletionRequest
	server := fakeAIServer(t, "Q: ...", &requests)
	defer server.Close()

	s, _ := newTutorService(t, server.URL)

	result, err := s.Quiz(context.Background(), "", "", 50)
	require.NoError(t, err)
	assert.Equal(t, "arrays", result.Topic)
	assert.Equal(t, "medium", result.Difficulty)
	assert.Equal(t, 10, result.QuestionCount)

	zero, err := s.Quiz(context.Background(), "graphs", "hard", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, zero.QuestionCount)
	assert.Contains(t, requests[1].Messages[0].Content, "graphs")
}

func TestSummarizeNote(t *testing.T) {
	var requests []ChatCompletionRequest
	server := fakeAIServer(t, "A short summary.", &requests)
	defer server.Close()

	s, db := newTutorService(t, server.URL)
	user := createTestUser(t, db, "tutor@test.com", "password123")

	note := &model.Note{UserID: user.ID, Title: "BFS", Content: "visit neighbors level by level"}
	require.NoError(t, db.Create(note).Error)

	result, err := s.Summarize(context.Background(), user.ID, "note", note.ID)
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", result.Summary)
	assert.Equal(t, "note", result.ContentType)
	assert.Contains(t, requests[0].Messages[0].Content, "visit neighbors level by level")

	_, err = s.Summarize(context.Background(), user.ID, "note", "missing")
	assert.ErrorIs(t, err, util.ErrNoteNotFound)
}

func TestSummarizeResource(t *testing.T) {
	server := fakeAIServer(t, "Resource summary.", nil)
	defer server.Close()

	s, db := newTutorService(t, server.URL)
	user := createTestUser(t, db, "tutor@test.com", "password123")

	result, err := s.Summarize(context.Background(), user.ID, "resource", "w3_python_getstarted")
	require.NoError(t, err)
	assert.Equal(t, "Resource summary.", result.Summary)

	_, err = s.Summarize(context.Background(), user.ID, "resource", "bogus")
	assert.Error(t, err)

	_, err = s.Summarize(context.Background(), user.ID, "podcast", "x")
	assert.Error(t, err)
}
