// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"habit_keep/internal/config"
	"habit_keep/internal/middleware"
	"habit_keep/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// Services はルーターが利用するサービスの集合です
type Services struct {
	User       service.UserService
	Habit      service.HabitService
	Assignment service.AssignmentService
	Schedule   service.ScheduleService
	Completion service.CompletionService
	Stats      service.StatsService
}

// NewRouter はミドルウェアと API ルートを設定した chi ルーターを返します。
// db は /health の疎通確認にのみ使用します (nil の場合は常に OK)。
func NewRouter(cfg *config.Config, logger *slog.Logger, db *gorm.DB, svcs Services) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}

	userHandler := NewUserHandler(svcs.User, logger)
	habitHandler := NewHabitHandler(svcs.Habit, logger)
	assignmentHandler := NewAssignmentHandler(svcs.Assignment, logger)
	scheduleHandler := NewScheduleHandler(svcs.Schedule, logger)
	completionHandler := NewCompletionHandler(svcs.Completion, logger)
	statsHandler := NewStatsHandler(svcs.Stats, logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	requestTimeout := cfg.Server.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 60 * time.Second
	}
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", userHandler.RegisterUser)

		r.Route("/habits", func(r chi.Router) {
			r.Get("/", habitHandler.ListHabits)
			r.Get("/{habit_id}", habitHandler.GetHabit)
		})

		r.Route("/users/{user_id}", func(r chi.Router) {
			r.Get("/", userHandler.GetUser)

			r.Post("/habits", habitHandler.CreateCustomHabit)
			r.Get("/habits/recommended", habitHandler.ListRecommended)

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/", assignmentHandler.ListAssignments)
				r.Post("/", assignmentHandler.AssignHabit)
				r.Delete("/{habit_id}", assignmentHandler.DeactivateAssignment)
			})

			r.Get("/schedule", scheduleHandler.GetSchedule)
			r.Get("/stats", statsHandler.GetStats)
		})

		r.Route("/assignments/{assignment_id}/completions/{date}", func(r chi.Router) {
			r.Get("/", completionHandler.GetCompletion)
			r.Put("/", completionHandler.MarkComplete)
			r.Put("/not-done", completionHandler.MarkNotDone)
		})
	})

	r.Get("/health", healthHandler(db))

	return r
}

func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			logger := middleware.GetLogger(r.Context())
			sqlDB, err := db.DB()
			if err != nil {
				logger.Error("Health check failed: could not get DB object", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
			if err := sqlDB.PingContext(r.Context()); err != nil {
				logger.Error("Health check failed: could not ping DB", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
