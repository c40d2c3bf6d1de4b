// internal/handlers/assignment_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"habit_keep/internal/model"
	"habit_keep/internal/service"
	"habit_keep/internal/webutil"
)

type AssignmentHandler struct {
	service service.AssignmentService
	logger  *slog.Logger
}

func NewAssignmentHandler(s service.AssignmentService, logger *slog.Logger) *AssignmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssignmentHandler{
		service: s,
		logger:  logger,
	}
}

// AssignHabit は習慣をユーザーに割り当てるハンドラ
func (h *AssignmentHandler) AssignHabit(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "AssignHabit")

	userID, err := parseUUIDParam(r, "user_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.AssignHabitRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid assign habit request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	assignment, err := h.service.AssignHabit(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Habit assigned successfully", slog.Uint64("assignment_id", uint64(assignment.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewAssignmentResponse(assignment), logger)
}

// ListAssignments はアクティブな割り当ての一覧を返すハンドラ
func (h *AssignmentHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "ListAssignments")

	userID, err := parseUUIDParam(r, "user_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	assignments, err := h.service.ListActive(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp := make([]*model.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		resp = append(resp, model.NewAssignmentResponse(a))
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// DeactivateAssignment は割り当てを論理削除するハンドラ
func (h *AssignmentHandler) DeactivateAssignment(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "DeactivateAssignment")

	userID, err := parseUUIDParam(r, "user_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	habitID, err := parseUintParam(r, "habit_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.Deactivate(r.Context(), userID, habitID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Assignment deactivated successfully", slog.String("user_id", userID.String()), slog.Uint64("habit_id", uint64(habitID)))
	webutil.RespondNoContent(w)
}
