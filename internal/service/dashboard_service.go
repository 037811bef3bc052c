package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/roadmap"
	"dsa_prep_backend/internal/util"
	"dsa_prep_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type DashboardService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	PomodoroRepo *repository.PomodoroRepository
	NoteRepo     *repository.NoteRepository
	Redis        *redis.Client
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	pomodoroRepo *repository.PomodoroRepository,
	noteRepo *repository.NoteRepository,
	redisClient *redis.Client,
) *DashboardService {
	return &DashboardService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		PomodoroRepo: pomodoroRepo,
		NoteRepo:     noteRepo,
		Redis:        redisClient,
	}
}

const dashboardCacheTTL = 60 * time.Second

// DashboardStats 顶部统计卡片数据
type DashboardStats struct {
	CurrentStreak        int     `json:"current_streak"`
	LongestStreak        int     `json:"longest_streak"`
	TotalStudyTime       int     `json:"total_study_time"`
	StudyTimeLast7Days   int     `json:"study_time_last_7_days"`
	CompletionPercentage float64 `json:"completion_percentage"`
	CompletedDays        int     `json:"completed_days"`
	TotalDays            int     `json:"total_days"`
}

// WeeklyProgressEntry 每周完成情况
type WeeklyProgressEntry struct {
	Title      string  `json:"title"`
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// RecentSession 最近的番茄钟
type RecentSession struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Topic     string `json:"topic"`
	Completed bool   `json:"completed"`
}

// RecentNote 最近更新的笔记
type RecentNote struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updated_at"`
}

// Dashboard 仪表盘聚合数据
type Dashboard struct {
	Stats          DashboardStats              `json:"stats"`
	WeeklyProgress map[int]WeeklyProgressEntry `json:"weekly_progress"`
	RecentSessions []RecentSession             `json:"recent_sessions"`
	RecentNotes    []RecentNote                `json:"recent_notes"`
}

// Get 组装仪表盘数据，结果在Redis中缓存60秒
func (s *DashboardService) Get(ctx context.Context, userID string) (*Dashboard, error) {
	cacheKey := fmt.Sprintf("dashboard:%s", userID)

	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var dashboard Dashboard
			if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
				return &dashboard, nil
			}
		}
	}

	dashboard, err := s.build(userID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		data, err := json.Marshal(dashboard)
		if err == nil {
			if err := s.Redis.Set(ctx, cacheKey, data, dashboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache dashboard",
					zap.String("user_id", userID),
					zap.Error(err))
			}
		}
	}

	return dashboard, nil
}

func (s *DashboardService) build(userID string) (*Dashboard, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	records, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	completedDays := 0
	completedByWeek := make(map[int]int)
	for _, p := range records {
		if p.Completed {
			completedDays++
			completedByWeek[p.Week]++
		}
	}
	totalDays := roadmap.TotalDays()

	weeklyProgress := make(map[int]WeeklyProgressEntry)
	for _, w := range roadmap.Weeks {
		total := len(w.Days)
		completed := completedByWeek[w.Week]
		pct := 0.0
		if total > 0 {
			pct = float64(completed) / float64(total) * 100
		}
		weeklyProgress[w.Week] = WeeklyProgressEntry{
			Title:      w.Title,
			Completed:  completed,
			Total:      total,
			Percentage: pct,
		}
	}

	last7Days, err := s.PomodoroRepo.SumCompletedMinutesSince(userID, time.Now().UTC().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	sessions, _, err := s.PomodoroRepo.FindByUser(userID, 1, 5)
	if err != nil {
		return nil, err
	}
	recentSessions := make([]RecentSession, 0, len(sessions))
	for _, sess := range sessions {
		recentSessions = append(recentSessions, RecentSession{
			ID:        sess.ID,
			StartTime: sess.StartTime.UTC().Format(util.TimeFormat),
			Duration:  sess.Duration,
			Topic:     sess.Topic,
			Completed: sess.Completed,
		})
	}

	notes, err := s.NoteRepo.FindRecent(userID, 5)
	if err != nil {
		return nil, err
	}
	recentNotes := make([]RecentNote, 0, len(notes))
	for _, n := range notes {
		recentNotes = append(recentNotes, RecentNote{
			ID:        n.ID,
			Title:     n.Title,
			UpdatedAt: n.UpdatedAt.UTC().Format(util.TimeFormat),
		})
	}

	completionPct := 0.0
	if totalDays > 0 {
		completionPct = float64(completedDays) / float64(totalDays) * 100
	}

	return &Dashboard{
		Stats: DashboardStats{
			CurrentStreak:        user.CurrentStreak,
			LongestStreak:        user.LongestStreak,
			TotalStudyTime:       user.TotalStudyTime,
			StudyTimeLast7Days:   last7Days,
			CompletionPercentage: completionPct,
			CompletedDays:        completedDays,
			TotalDays:            totalDays,
		},
		WeeklyProgress: weeklyProgress,
		RecentSessions: recentSessions,
		RecentNotes:    recentNotes,
	}, nil
}
