package service

import (
	"testing"
	"time"

	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/util"
	"dsa_prep_backend/pkg/monitoring"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPomodoroService(t *testing.T) (*PomodoroService, *gorm.DB) {
	db := newTestDB(t)
	return NewPomodoroService(repository.NewPomodoroRepository(db)), db
}

func TestPomodoroStartDefaults(t *testing.T) {
	s, db := newPomodoroService(t)
	user := createTestUser(t, db, "pomodoro@test.com", "password123")

	session, err := s.Start(user.ID, 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, 25, session.Duration)
	assert.Equal(t, "study", session.SessionType)
	assert.False(t, session.Completed)
	assert.Nil(t, session.EndTime)

	custom, err := s.Start(user.ID, 50, "graphs", "review")
	require.NoError(t, err)
	assert.Equal(t, 50, custom.Duration)
	assert.Equal(t, "graphs", custom.Topic)
	assert.Equal(t, "review", custom.SessionType)
}

func TestPomodoroCompleteCapsDuration(t *testing.T) {
	s, db := newPomodoroService(t)
	user := createTestUser(t, db, "pomodoro@test.com", "password123")

	session, err := s.Start(user.ID, 25, "arrays", "study")
	require.NoError(t, err)

	// 刚开始就结束：实际耗时接近0分钟，入账时长取较小值
	completed, actual, err := s.Complete(user.ID, session.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	require.NotNil(t, completed.EndTime)
	assert.Less(t, actual, 1.0)
	assert.Equal(t, 0, completed.Duration)
}

func TestPomodoroCompleteKeepsPlannedWhenOverrun(t *testing.T) {
	s, db := newPomodoroService(t)
	user := createTestUser(t, db, "pomodoro@test.com", "password123")

	session, err := s.Start(user.ID, 25, "arrays", "study")
	require.NoError(t, err)

	// 后移开始时间模拟挂机：实际耗时远超计划，计划值封顶
	session.StartTime = time.Now().UTC().Add(-2 * time.Hour)
	require.NoError(t, db.Save(session).Error)

	completed, actual, err := s.Complete(user.ID, session.ID)
	require.NoError(t, err)
	assert.Greater(t, actual, 100.0)
	assert.Equal(t, 25, completed.Duration)
}

func TestPomodoroRecompleteSkipsMetric(t *testing.T) {
	s, db := newPomodoroService(t)
	user := createTestUser(t, db, "pomodoro@test.com", "password123")

	session, err := s.Start(user.ID, 25, "arrays", "study")
	require.NoError(t, err)
	session.StartTime = time.Now().UTC().Add(-30 * time.Minute)
	require.NoError(t, db.Save(session).Error)

	before := testutil.ToFloat64(monitoring.PomodoroMinutes)

	completed, _, err := s.Complete(user.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, completed.Duration)
	assert.InDelta(t, before+25, testutil.ToFloat64(monitoring.PomodoroMinutes), 0.01)

	// 重复完成是允许的，但指标只计一次
	_, _, err = s.Complete(user.ID, session.ID)
	require.NoError(t, err)
	assert.InDelta(t, before+25, testutil.ToFloat64(monitoring.PomodoroMinutes), 0.01)
}

func TestPomodoroCompleteUnknownSession(t *testing.T) {
	s, db := newPomodoroService(t)
	user := createTestUser(t, db, "pomodoro@test.com", "password123")

	_, _, err := s.Complete(user.ID, "no-such-session")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestPomodoroHistoryPagination(t *testing.T) {
	s, db := newPomodoroService(t)
	user := createTestUser(t, db, "pomodoro@test.com", "password123")

	for i := 0; i < 5; i++ {
		_, err := s.Start(user.ID, 25, "topic", "study")
		require.NoError(t, err)
	}

	page1, total, err := s.History(user.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)
	assert.EqualValues(t, 5, total)

	page3, _, err := s.History(user.ID, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}
