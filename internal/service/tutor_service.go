package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dsa_prep_backend/internal/model"
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/roadmap"
	"dsa_prep_backend/internal/util"
	"dsa_prep_backend/pkg/logger"

	"go.uber.org/zap"
)

// TutorService 把路线图和资源目录作为上下文喂给AI的辅导服务
type TutorService struct {
	AI               *AIService
	ProgressRepo     *repository.ProgressRepository
	NoteRepo         *repository.NoteRepository
	ConversationRepo *repository.ConversationRepository
}

func NewTutorService(
	ai *AIService,
	progressRepo *repository.ProgressRepository,
	noteRepo *repository.NoteRepository,
	conversationRepo *repository.ConversationRepository,
) *TutorService {
	return &TutorService{
		AI:               ai,
		ProgressRepo:     progressRepo,
		NoteRepo:         noteRepo,
		ConversationRepo: conversationRepo,
	}
}

const (
	contextResourceLimit = 5
	contextWeekLimit     = 3
)

// AskResult 问答结果及引用的资源
type AskResult struct {
	Answer    string             `json:"answer"`
	Citations []roadmap.Resource `json:"citations"`
}

// Ask 结合相关资源和路线图上下文回答问题，问答记录落库
func (s *TutorService) Ask(ctx context.Context, userID, question string) (*AskResult, error) {
	citations := roadmap.RelevantResources(question, contextResourceLimit)
	weeks := roadmap.RelevantWeeks(question, contextWeekLimit)

	var contextText strings.Builder
	contextText.WriteString("RESOURCES:\n")
	for _, r := range citations {
		contextText.WriteString(fmt.Sprintf("- %s: %s\n", r.Title, r.URL))
	}
	if len(weeks) > 0 {
		contextText.WriteString("\nROADMAP CONTEXT:\n")
		for _, w := range weeks {
			contextText.WriteString(fmt.Sprintf("Week %d: %s - %s\n", w.Week, w.Title, w.Goal))
		}
	}

	prompt := fmt.Sprintf(`You are a helpful DSA (Data Structures and Algorithms) tutor. Answer the following question based on the provided context.

CONTEXT:
%s

QUESTION: %s

Provide a clear, educational answer. If you reference any resources from the context, mention them naturally in your response.`, contextText.String(), question)

	answer, err := s.AI.Chat(ctx, prompt, 1000, 0.7)
	if err != nil {
		return nil, err
	}

	if citations == nil {
		citations = []roadmap.Resource{}
	}

	citationsJSON, _ := json.Marshal(citations)
	conv := &model.AIConversation{
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		Citations: string(citationsJSON),
	}
	if err := s.ConversationRepo.Create(conv); err != nil {
		logger.Log.Error("Failed to persist AI conversation",
			zap.String("user_id", userID),
			zap.Error(err))
	}

	return &AskResult{Answer: answer, Citations: citations}, nil
}

// StudyPlanResult 个性化学习计划
type StudyPlanResult struct {
	StudyPlan       string `json:"study_plan"`
	CurrentWeek     int    `json:"current_week"`
	ProgressSummary string `json:"progress_summary"`
}

// StudyPlan 根据已完成周数生成下周学习建议
func (s *TutorService) StudyPlan(ctx context.Context, userID string, availableTime int, focusAreas []string, difficulty string) (*StudyPlanResult, error) {
	records, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	completedWeeks := make(map[int]bool)
	for _, p := range records {
		if p.Completed {
			completedWeeks[p.Week] = true
		}
	}
	currentWeek := len(completedWeeks) + 1

	if availableTime <= 0 {
		availableTime = 60
	}
	if difficulty == "" {
		difficulty = "medium"
	}
	focus := "general DSA"
	if len(focusAreas) > 0 {
		focus = strings.Join(focusAreas, ", ")
	}

	prompt := fmt.Sprintf(`Create a personalized DSA study plan for a user who:
- Has completed %d weeks of study
- Is currently on week %d
- Has %d minutes available daily
- Wants to focus on: %s
- Prefers %s difficulty level

Based on the ROADMAP structure, suggest specific topics and time allocation for the next week.`,
		len(completedWeeks), currentWeek, availableTime, focus, difficulty)

	plan, err := s.AI.Chat(ctx, prompt, 800, 0.7)
	if err != nil {
		return nil, err
	}

	return &StudyPlanResult{
		StudyPlan:       plan,
		CurrentWeek:     currentWeek,
		ProgressSummary: fmt.Sprintf("%d/%d weeks completed", len(completedWeeks), len(roadmap.Weeks)),
	}, nil
}

// QuizResult 生成的测验文本
type QuizResult struct {
	Quiz          string `json:"quiz"`
	Topic         string `json:"topic"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"question_count"`
}

// Quiz 按主题生成选择题，题量上限10
func (s *TutorService) Quiz(ctx context.Context, topic, difficulty string, questionCount int) (*QuizResult, error) {
	if topic == "" {
		topic = "arrays"
	}
	if difficulty == "" {
		difficulty = "medium"
	}
	if questionCount <= 0 {
		questionCount = 5
	}
	if questionCount > 10 {
		questionCount = 10
	}

	prompt := fmt.Sprintf(`Generate %d %s level multiple choice questions about %s in DSA.

Format each question as:
Q: [question text]
A) [option A]
B) [option B]
C) [option C]
D) [option D]
Correct: [A/B/C/D]
Explanation: [brief explanation]

Focus on practical understanding and problem-solving concepts.`, questionCount, difficulty, topic)

	quiz, err := s.AI.Chat(ctx, prompt, 1500, 0.8)
	if err != nil {
		return nil, err
	}

	return &QuizResult{
		Quiz:          quiz,
		Topic:         topic,
		Difficulty:    difficulty,
		QuestionCount: questionCount,
	}, nil
}

// SummarizeResult 摘要结果
type SummarizeResult struct {
	Summary     string `json:"summary"`
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
}

// Summarize 摘要一条笔记或一个资源
func (s *TutorService) Summarize(ctx context.Context, userID, contentType, contentID string) (*SummarizeResult, error) {
	var content string

	switch contentType {
	case "note":
		note, err := s.NoteRepo.FindByIDAndUser(contentID, userID)
		if err != nil {
			return nil, util.ErrNoteNotFound
		}
		content = fmt.Sprintf("Title: %s\n\nContent: %s", note.Title, note.Content)
	case "resource":
		resource := roadmap.ResourceByID(contentID)
		if resource == nil {
			return nil, fmt.Errorf("resource not found: %s", contentID)
		}
		content = fmt.Sprintf("Resource: %s\nType: %s\nURL: %s", resource.Title, resource.Type, resource.URL)
	default:
		return nil, fmt.Errorf("invalid content type: %s", contentType)
	}

	prompt := fmt.Sprintf(`Provide a concise summary of the following content, highlighting key concepts and learning points:

%s

Focus on the most important information for DSA learning.`, content)

	summary, err := s.AI.Chat(ctx, prompt, 500, 0.5)
	if err != nil {
		return nil, err
	}

	return &SummarizeResult{
		Summary:     summary,
		ContentType: contentType,
		ContentID:   contentID,
	}, nil
}

// History 分页返回当前用户的历史问答记录，最新在前
func (s *TutorService) History(userID string, page, limit int) ([]model.AIConversation, int64, error) {
	return s.ConversationRepo.FindByUser(userID, page, limit)
}
