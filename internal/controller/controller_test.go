package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"dsa_prep_backend/internal/config"
	"dsa_prep_backend/internal/middleware"
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/service"
	"dsa_prep_backend/pkg/database"
	"dsa_prep_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq int64

func init() {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:controllertest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessExpireTime:  time.Hour,
			RefreshExpireTime: 24 * time.Hour,
		},
	}

	userRepo := repository.NewUserRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	notificationService := service.NewNotificationService(repository.NewNotificationRepository(db))
	authService := service.NewAuthService(userRepo, prefRepo, sessionRepo, resetRepo, notificationService, service.NewMailService(cfg.Mail), cfg)
	userService := service.NewUserService(userRepo, prefRepo, sessionRepo, service.NewStorageService(cfg))
	progressService := service.NewProgressService(db, progressRepo, userRepo)
	noteService := service.NewNoteService(noteRepo)
	searchService := service.NewSearchService(noteRepo)

	authCtrl := NewAuthController(authService)
	userCtrl := NewUserController(userService)
	notificationCtrl := NewNotificationController(notificationService)
	progressCtrl := NewProgressController(progressService)
	noteCtrl := NewNoteController(noteService)
	searchCtrl := NewSearchController(searchService)
	roadmapCtrl := NewRoadmapController()
	healthCtrl := NewHealthController(db)

	router := gin.New()
	public := router.Group("/api")
	{
		public.GET("/health", healthCtrl.HealthCheck)
		public.POST("/auth/register", authCtrl.Register)
		public.POST("/auth/login", authCtrl.Login)
		public.POST("/auth/refresh", middleware.RefreshMiddleware(cfg), authCtrl.Refresh)
		public.GET("/resources", roadmapCtrl.ListResources)
		public.GET("/roadmap", roadmapCtrl.GetRoadmap)
	}
	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/profile", userCtrl.GetProfile)
		authed.PUT("/preferences", userCtrl.UpdatePreferences)
		authed.GET("/notifications", notificationCtrl.ListNotifications)
		authed.GET("/progress", progressCtrl.GetProgress)
		authed.POST("/progress", progressCtrl.UpdateProgress)
		authed.GET("/calendar", progressCtrl.GetCalendar)
		authed.POST("/notes", noteCtrl.Create)
		authed.GET("/notes", noteCtrl.List)
		authed.GET("/search", searchCtrl.Search)
	}

	return &testEnv{router: router, db: db, cfg: cfg}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register 注册一个用户并返回访问令牌
func (e *testEnv) register(t *testing.T, email string) string {
	t.Helper()

	w := e.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}
