package app

import (
	"context"
	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/controller"
	"lexilearn_backend/internal/repository"
	"lexilearn_backend/internal/service"
	"lexilearn_backend/pkg/database"
	"lexilearn_backend/pkg/logger"
	"lexilearn_backend/pkg/monitoring"
	"lexilearn_backend/pkg/security"
	"lexilearn_backend/pkg/tracing"
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
	user       *repository.UserRepository
	vocabulary *repository.VocabularyRepository
	progress   *repository.ProgressRepository
	favorite   *repository.FavoriteRepository
	testRecord *repository.TestRecordRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	vocabulary *service.VocabularyService
	progress   *service.ProgressService
	favorite   *service.FavoriteService
	statistics *service.StatisticsService
	outbox     *service.ProgressOutbox
	session    *service.SessionService
}

type controllers struct {
	auth       *controller.AuthController
	vocabulary *controller.VocabularyController
	progress   *controller.ProgressController
	favorite   *controller.FavoriteController
	session    *controller.SessionController
	statistics *controller.StatisticsController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口，只有会话调优参数支持运行期变更
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config.Session = cfg.Session
	logger.Log.Info("config reloaded",
		zap.Int("groupSize", cfg.Session.GroupSize),
		zap.Duration("idleExpire", cfg.Session.IdleExpire))
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		vocabulary: repository.NewVocabularyRepository(db),
		progress:   repository.NewProgressRepository(db),
		favorite:   repository.NewFavoriteRepository(db),
		testRecord: repository.NewTestRecordRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.vocabulary = service.NewVocabularyService(repos.vocabulary, s.storage, cfg, rdb)
	s.progress = service.NewProgressService(repos.progress)
	s.favorite = service.NewFavoriteService(repos.favorite, repos.vocabulary)
	s.statistics = service.NewStatisticsService(repos.progress, repos.testRecord, repos.vocabulary)

	s.outbox = service.NewProgressOutbox(repos.progress, cfg.Outbox)
	s.outbox.Start()

	s.session = service.NewSessionService(
		s.vocabulary,
		repos.progress,
		repos.favorite,
		repos.testRecord,
		s.outbox,
		cfg,
	)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		vocabulary: controller.NewVocabularyController(s.vocabulary),
		progress:   controller.NewProgressController(s.progress),
		favorite:   controller.NewFavoriteController(s.favorite),
		session:    controller.NewSessionController(s.session),
		statistics: controller.NewStatisticsController(s.statistics),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
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

func (a *App) startBackgroundTasks(s *services) {
	// 定期回收空闲过期的测试会话
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if n := s.session.CleanupExpired(); n > 0 {
				logger.Log.Info("expired test sessions removed", zap.Int("count", n))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("lexilearn-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

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

	// 先停进度重试队列，保证排队中的写入落库
	if a.services != nil && a.services.outbox != nil {
		a.services.outbox.Stop()
	}

	// 关闭服务
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
