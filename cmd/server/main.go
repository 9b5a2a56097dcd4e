package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	"github.com/WorldsAreYours/fit-and-easy/internal/config"
	"github.com/WorldsAreYours/fit-and-easy/internal/database"
	"github.com/WorldsAreYours/fit-and-easy/internal/handler"
	"github.com/WorldsAreYours/fit-and-easy/internal/logging"
	"github.com/WorldsAreYours/fit-and-easy/internal/metrics"
	"github.com/WorldsAreYours/fit-and-easy/internal/middleware"
	"github.com/WorldsAreYours/fit-and-easy/internal/queue"
	"github.com/WorldsAreYours/fit-and-easy/internal/router"
	"github.com/WorldsAreYours/fit-and-easy/internal/seed"
	"github.com/WorldsAreYours/fit-and-easy/internal/service"
	"github.com/WorldsAreYours/fit-and-easy/internal/validation"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	})
	log.Warnf("---->> running in [%s] environment", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, database.Options{
		User:            cfg.DBUser,
		Password:        cfg.DBPass,
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		Name:            cfg.DBName,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("open database: %s", err)
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("migrate: %s", err)
		}
	}
	if cfg.SeedOnStart {
		if _, err := seed.Run(ctx, db); err != nil {
			log.Fatalf("seed: %s", err)
		}
	}

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb != nil {
		defer rdb.Close()
	}

	var gatherer prometheus.Gatherer
	reg := prometheus.NewRegistry()
	if cfg.MetricsEnabled {
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		gatherer = reg
	}
	m := metrics.NewManager("fitness", "api", reg)

	var events service.EventPublisher = queue.NopPublisher{}
	if qcfg := config.LoadQueueConfig(); qcfg.Enabled {
		events = queue.NewPublisher(qcfg.URL, qcfg.Queue)
		log.Infof("publishing activity events to queue [%s]", qcfg.Queue)
	}

	gcfg := config.LoadGeneratorConfig()
	users := service.NewUserService(db)
	exercises := service.NewExerciseService(db)
	workouts := service.NewWorkoutService(db, events)
	generator := service.NewGenerator(db, service.GeneratorSettings{
		DefaultDurationMinutes: gcfg.DefaultDurationMinutes,
		MinExercises:           gcfg.MinExercises,
		MaxExercises:           gcfg.MaxExercises,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.NewValidator()
	e.Binder = handler.StrictBinder{}

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.RequestLogger())
	e.Use(middleware.PanicRecovery(m))
	e.Use(middleware.RequestMetrics(m))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.CORSAllowOrigins}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e, handler.Health(db), gatherer)
	router.RegisterUsers(e, handler.NewUserHandler(users, workouts, generator, m))
	router.RegisterCatalog(e, handler.NewExerciseHandler(exercises), config.LoadCacheConfig(), rdb)
	router.RegisterWorkouts(e, handler.NewWorkoutHandler(workouts, m))

	addr := ":" + cfg.Port
	go func() {
		log.Infof("listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %s", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down ...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %s", err)
	}
}
