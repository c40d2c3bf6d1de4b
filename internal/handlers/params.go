package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"habit_keep/internal/middleware"
	"habit_keep/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// requestLogger はリクエストスコープのロガー (無ければ fallback) にハンドラ名を付けて返します。
func requestLogger(r *http.Request, fallback *slog.Logger, handler string) *slog.Logger {
	logger := fallback
	if l, ok := middleware.LoggerFromContext(r.Context()); ok {
		logger = l
	}
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("handler", handler))
}

func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return id, nil
}

func parseUintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return uint(id), nil
}

// parseDate は YYYY-MM-DD 形式の日付を解釈します。不正な場合は InvalidDate。
func parseDate(raw, field string) (model.Date, error) {
	d, err := model.ParseDate(raw)
	if err != nil {
		return model.Date{}, model.NewAppError("INVALID_DATE", "日付は YYYY-MM-DD 形式で指定してください。", field, model.ErrInvalidDate)
	}
	return d, nil
}
