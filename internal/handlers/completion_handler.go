// internal/handlers/completion_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"habit_keep/internal/model"
	"habit_keep/internal/service"
	"habit_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type CompletionHandler struct {
	service service.CompletionService
	logger  *slog.Logger
}

func NewCompletionHandler(s service.CompletionService, logger *slog.Logger) *CompletionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompletionHandler{
		service: s,
		logger:  logger,
	}
}

// completionTarget は URL の assignment_id と date を解釈します
func completionTarget(r *http.Request) (uint, model.Date, error) {
	assignmentID, err := parseUintParam(r, "assignment_id")
	if err != nil {
		return 0, model.Date{}, err
	}
	date, err := parseDate(chi.URLParam(r, "date"), "date")
	if err != nil {
		return 0, model.Date{}, err
	}
	return assignmentID, date, nil
}

// MarkComplete は実施済みとして記録するハンドラ
func (h *CompletionHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "MarkComplete")

	assignmentID, date, err := completionTarget(r)
	if err != nil {
		logger.Warn("Invalid completion target", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.MarkComplete(r.Context(), assignmentID, date)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// MarkNotDone は未実施として記録するハンドラ。policy の指定が必要です。
func (h *CompletionHandler) MarkNotDone(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "MarkNotDone")

	assignmentID, date, err := completionTarget(r)
	if err != nil {
		logger.Warn("Invalid completion target", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.MarkNotDoneRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid mark not done request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.MarkNotDone(r.Context(), assignmentID, date, req.Policy)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetCompletion は実施状態 (done / not_done / unmarked) を返すハンドラ
func (h *CompletionHandler) GetCompletion(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetCompletion")

	assignmentID, date, err := completionTarget(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.GetState(r.Context(), assignmentID, date)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
