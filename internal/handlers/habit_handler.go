// internal/handlers/habit_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"habit_keep/internal/model"
	"habit_keep/internal/service"
	"habit_keep/internal/webutil"
)

type HabitHandler struct {
	service service.HabitService
	logger  *slog.Logger
}

func NewHabitHandler(s service.HabitService, logger *slog.Logger) *HabitHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HabitHandler{
		service: s,
		logger:  logger,
	}
}

// ListHabits はグローバル習慣の一覧を返すハンドラ
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "ListHabits")

	habits, err := h.service.ListGlobal(r.Context())
	if err != nil {
		logger.Error("Error listing habits in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if habits == nil {
		habits = []*model.Habit{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, habits, logger)
}

// GetHabit は習慣を1件返すハンドラ
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetHabit")

	habitID, err := parseUintParam(r, "habit_id")
	if err != nil {
		logger.Warn("Invalid habit ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	habit, err := h.service.GetHabit(r.Context(), habitID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, habit, logger)
}

// CreateCustomHabit はユーザー独自の習慣を作成するハンドラ
func (h *HabitHandler) CreateCustomHabit(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "CreateCustomHabit")

	userID, err := parseUUIDParam(r, "user_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CreateHabitRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create habit request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	habit, err := h.service.CreateCustomHabit(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Custom habit created successfully", slog.Uint64("habit_id", uint64(habit.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, habit, logger)
}

// ListRecommended はユーザーがまだ割り当てていない習慣を返すハンドラ
func (h *HabitHandler) ListRecommended(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "ListRecommended")

	userID, err := parseUUIDParam(r, "user_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	habits, err := h.service.ListRecommended(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if habits == nil {
		habits = []*model.Habit{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, habits, logger)
}
