package app

import (
	"context"
	"dsa_prep_backend/internal/config"
	"dsa_prep_backend/internal/controller"
	"dsa_prep_backend/internal/repository"
	"dsa_prep_backend/internal/service"
	"dsa_prep_backend/pkg/configwatcher"
	"dsa_prep_backend/pkg/database"
	"dsa_prep_backend/pkg/logger"
	"dsa_prep_backend/pkg/monitoring"
	"dsa_prep_backend/pkg/security"
	"dsa_prep_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user          *repository.UserRepository
	preference    *repository.PreferenceRepository
	session       *repository.SessionRepository
	passwordReset *repository.PasswordResetRepository
	notification  *repository.NotificationRepository
	progress      *repository.ProgressRepository
	pomodoro      *repository.PomodoroRepository
	note          *repository.NoteRepository
	conversation  *repository.ConversationRepository
}

type services struct {
	storage      *service.StorageService
	mail         *service.MailService
	ai           *service.AIService
	auth         *service.AuthService
	user         *service.UserService
	notification *service.NotificationService
	progress     *service.ProgressService
	pomodoro     *service.PomodoroService
	note         *service.NoteService
	search       *service.SearchService
	dashboard    *service.DashboardService
	tutor        *service.TutorService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	session      *controller.SessionController
	notification *controller.NotificationController
	progress     *controller.ProgressController
	pomodoro     *controller.PomodoroController
	note         *controller.NoteController
	search       *controller.SearchController
	ai           *controller.AIController
	dashboard    *controller.DashboardController
	roadmap      *controller.RoadmapController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		preference:    repository.NewPreferenceRepository(db),
		session:       repository.NewSessionRepository(db),
		passwordReset: repository.NewPasswordResetRepository(db),
		notification:  repository.NewNotificationRepository(db),
		progress:      repository.NewProgressRepository(db),
		pomodoro:      repository.NewPomodoroRepository(db),
		note:          repository.NewNoteRepository(db),
		conversation:  repository.NewConversationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.mail = service.NewMailService(cfg.Mail)
	s.ai = service.NewAIService(cfg.AI)

	s.notification = service.NewNotificationService(repos.notification)
	s.auth = service.NewAuthService(repos.user, repos.preference, repos.session, repos.passwordReset, s.notification, s.mail, cfg)
	s.user = service.NewUserService(repos.user, repos.preference, repos.session, s.storage)
	s.progress = service.NewProgressService(db, repos.progress, repos.user)
	s.pomodoro = service.NewPomodoroService(repos.pomodoro)
	s.note = service.NewNoteService(repos.note)
	s.search = service.NewSearchService(repos.note)
	s.dashboard = service.NewDashboardService(repos.user, repos.progress, repos.pomodoro, repos.note, rdb)
	s.tutor = service.NewTutorService(s.ai, repos.progress, repos.note, repos.conversation)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		session:      controller.NewSessionController(s.user),
		notification: controller.NewNotificationController(s.notification),
		progress:     controller.NewProgressController(s.progress),
		pomodoro:     controller.NewPomodoroController(s.pomodoro),
		note:         controller.NewNoteController(s.note),
		search:       controller.NewSearchController(s.search),
		ai:           controller.NewAIController(s.tutor),
		dashboard:    controller.NewDashboardController(s.dashboard),
		roadmap:      controller.NewRoadmapController(),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(cfg interface{}) {
		newCfg, ok := cfg.(*config.Config)
		if !ok {
			return
		}
		a.Config = newCfg
		for _, callback := range a.configCallbacks {
			callback(newCfg)
		}
		logger.Log.Info("Config reloaded")
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 仪表盘缓存降级为直查数据库
		logger.Log.Warn("Failed to initialize redis, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("dsa-prep-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
