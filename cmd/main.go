// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"habit_keep/internal/config"
	"habit_keep/internal/handlers"
	"habit_keep/internal/logging"
	"habit_keep/internal/repository"
	"habit_keep/internal/service"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configPath := os.Getenv("APP_CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}
	if err := config.LoadConfig(configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	appEnv := os.Getenv("APP_ENV")
	logger, logCloser := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		AppEnv:     appEnv,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer logCloser.Close()
	log.Println("Log Config Loaded...")

	// Configファイルの読み込み完了後、アプリケーション全体のデフォルトロガーを設定
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion), slog.String("APP_ENV", appEnv))

	if err := run(cfg, logger); err != nil {
		slog.Error("Application terminated with error", slog.Any("error", err))
		logCloser.Close()
		os.Exit(1)
	}
	log.Println("Server exiting")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := repository.NewDB(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	mailer, err := service.NewMailer(context.Background(), cfg)
	if err != nil {
		return err
	}
	clock := service.NewClock(cfg)

	userRepo := repository.NewGormUserRepository()
	habitRepo := repository.NewGormHabitRepository()
	assignmentRepo := repository.NewGormAssignmentRepository()
	completionRepo := repository.NewGormCompletionRepository()
	statsRepo := repository.NewGormStatsRepository()

	router := handlers.NewRouter(cfg, logger, db, handlers.Services{
		User:       service.NewUserService(db, userRepo, mailer),
		Habit:      service.NewHabitService(db, userRepo, habitRepo),
		Assignment: service.NewAssignmentService(db, userRepo, habitRepo, assignmentRepo, clock),
		Schedule:   service.NewScheduleService(db, userRepo, assignmentRepo, completionRepo, cfg, clock),
		Completion: service.NewCompletionService(db, assignmentRepo, completionRepo),
		Stats:      service.NewStatsService(db, userRepo, statsRepo, clock),
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		if err != nil {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			return err
		}
	case sig := <-quit:
		slog.Info("Shutting down server...", slog.String("signal", sig.String()))
	}

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}
	return nil
}
