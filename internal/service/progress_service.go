package service

import (
	"time"

	"dsa_prep_backend/internal/model"
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/roadmap"
	"dsa_prep_backend/internal/util"
	"dsa_prep_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type ProgressService struct {
	DB           *gorm.DB
	ProgressRepo *repository.ProgressRepository
	UserRepo     *repository.UserRepository
}

func NewProgressService(db *gorm.DB, progressRepo *repository.ProgressRepository, userRepo *repository.UserRepository) *ProgressService {
	return &ProgressService{
		DB:           db,
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
	}
}

// DayProgress 单日进度的对外表示
type DayProgress struct {
	Completed      bool       `json:"completed"`
	CompletionDate *time.Time `json:"completion_date"`
	TimeSpent      int        `json:"time_spent"`
	Notes          string     `json:"notes"`
}

// ProgressStats 用户学习统计
type ProgressStats struct {
	CurrentStreak  int `json:"current_streak"`
	LongestStreak  int `json:"longest_streak"`
	TotalStudyTime int `json:"total_study_time"`
}

// ProgressOverview 全部进度，按周和日嵌套
type ProgressOverview struct {
	Progress map[int]map[string]DayProgress `json:"progress"`
	Stats    ProgressStats                  `json:"stats"`
}

func (s *ProgressService) GetProgress(userID string) (*ProgressOverview, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	records, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	progress := make(map[int]map[string]DayProgress)
	for _, p := range records {
		if _, ok := progress[p.Week]; !ok {
			progress[p.Week] = make(map[string]DayProgress)
		}
		progress[p.Week][p.Day] = DayProgress{
			Completed:      p.Completed,
			CompletionDate: p.CompletionDate,
			TimeSpent:      p.TimeSpent,
			Notes:          p.Notes,
		}
	}

	return &ProgressOverview{
		Progress: progress,
		Stats: ProgressStats{
			CurrentStreak:  user.CurrentStreak,
			LongestStreak:  user.LongestStreak,
			TotalStudyTime: user.TotalStudyTime,
		},
	}, nil
}

// UpdateProgress 更新某一天的进度。完成标记是单向的：
// 首次完成时盖时间戳、累计学习时长并推进连续打卡，重复提交不再生效。
// week/day作为不透明标识存储，不校验是否在路线图范围内。
func (s *ProgressService) UpdateProgress(userID string, week int, day string, completed bool, timeSpent int, notes string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		record, err := s.ProgressRepo.FindByUserWeekDay(tx, userID, week, day)
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			record = &model.Progress{
				UserID: userID,
				Week:   week,
				Day:    day,
			}
		}

		record.Completed = completed
		record.TimeSpent = timeSpent
		record.Notes = notes

		firstCompletion := completed && record.CompletionDate == nil
		if firstCompletion {
			now := time.Now().UTC()
			record.CompletionDate = &now
		}

		if err := tx.Save(record).Error; err != nil {
			return err
		}

		if firstCompletion {
			var user model.User
			if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
				return err
			}

			user.TotalStudyTime += record.TimeSpent
			applyStreak(&user, time.Now().UTC())

			if err := tx.Save(&user).Error; err != nil {
				return err
			}
			monitoring.DaysCompleted.Inc()
		}

		return nil
	})
}

// applyStreak 按自然日推进连续打卡：昨天打过卡则+1，
// 今天已打过卡则不变，否则重置为1。
func applyStreak(user *model.User, now time.Time) {
	today := truncateToDate(now)
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case user.LastStreakDate != nil && sameDate(*user.LastStreakDate, yesterday):
		user.CurrentStreak++
	case user.LastStreakDate != nil && sameDate(*user.LastStreakDate, today):
		// 今天已算过
	default:
		user.CurrentStreak = 1
	}

	user.LastStreakDate = &today
	if user.CurrentStreak > user.LongestStreak {
		user.LongestStreak = user.CurrentStreak
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekCalendar 指定周的日程及进度
type WeekCalendar struct {
	Week     *roadmap.Week          `json:"week"`
	Progress map[string]DayProgress `json:"progress"`
}

// WeekSummary 周维度的完成概况
type WeekSummary struct {
	Title                string  `json:"title"`
	CompletedDays        int     `json:"completed_days"`
	TotalDays            int     `json:"total_days"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

func (s *ProgressService) WeekCalendar(userID string, week int) (*WeekCalendar, error) {
	roadmapWeek := roadmap.WeekByNumber(week)
	if roadmapWeek == nil {
		return nil, util.ErrInvalidDay
	}

	records, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]model.Progress)
	for _, p := range records {
		if p.Week == week {
			byDay[p.Day] = p
		}
	}

	calendar := &WeekCalendar{
		Week:     roadmapWeek,
		Progress: make(map[string]DayProgress),
	}
	for _, d := range roadmapWeek.Days {
		p, ok := byDay[d.Day]
		if ok {
			calendar.Progress[d.Day] = DayProgress{
				Completed:      p.Completed,
				CompletionDate: p.CompletionDate,
				TimeSpent:      p.TimeSpent,
				Notes:          p.Notes,
			}
		} else {
			calendar.Progress[d.Day] = DayProgress{}
		}
	}

	return calendar, nil
}

// CalendarOverview 所有周的完成概况
func (s *ProgressService) CalendarOverview(userID string) (map[int]WeekSummary, error) {
	records, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	completedByWeek := make(map[int]int)
	for _, p := range records {
		if p.Completed {
			completedByWeek[p.Week]++
		}
	}

	overview := make(map[int]WeekSummary)
	for _, w := range roadmap.Weeks {
		total := len(w.Days)
		completed := completedByWeek[w.Week]
		pct := 0.0
		if total > 0 {
			pct = float64(completed) / float64(total) * 100
		}
		overview[w.Week] = WeekSummary{
			Title:                w.Title,
			CompletedDays:        completed,
			TotalDays:            total,
			CompletionPercentage: pct,
		}
	}

	return overview, nil
}
