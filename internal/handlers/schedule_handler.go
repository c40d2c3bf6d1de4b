// internal/handlers/schedule_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"habit_keep/internal/model"
	"habit_keep/internal/service"
	"habit_keep/internal/webutil"
)

type ScheduleHandler struct {
	service service.ScheduleService
	logger  *slog.Logger
}

func NewScheduleHandler(s service.ScheduleService, logger *slog.Logger) *ScheduleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleHandler{
		service: s,
		logger:  logger,
	}
}

// GetSchedule は指定日 (省略時は今日) のスケジュールを返すハンドラ
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetSchedule")

	userID, err := parseUUIDParam(r, "user_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var date model.Date
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err = parseDate(raw, "date")
		if err != nil {
			logger.Warn("Invalid date query", slog.String("date", raw))
			webutil.HandleError(w, logger, err)
			return
		}
	} else {
		date = h.service.Today()
	}

	schedule, err := h.service.Resolve(r.Context(), userID, date)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if schedule.Habits == nil {
		schedule.Habits = []*model.ScheduledHabit{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, schedule, logger)
}
