package handlers_test

import (
	"net/http"
	"testing"

	"habit_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleHandler_GetSchedule(t *testing.T) {
	userID := uuid.New()
	base := "/api/v1/users/" + userID.String() + "/schedule"
	date := model.NewDate(2024, 1, 2)

	t.Run("正常系: 指定日のスケジュール", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.schedule.On("Resolve", mock.Anything, userID, date).Return(&model.ScheduleResponse{
			Date: date,
			Habits: []*model.ScheduledHabit{
				{AssignmentID: 1, HabitID: 10, HabitName: "Drink water", CompletionState: model.StateDone},
				{AssignmentID: 2, HabitID: 11, HabitName: "Walk", CompletionState: model.StateUnmarked},
			},
		}, nil).Once()

		rr := doRequest(t, router, http.MethodGet, base+"?date=2024-01-02", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		var got model.ScheduleResponse
		decodeJSON(t, rr, &got)
		assert.Equal(t, "2024-01-02", got.Date.String())
		require.Len(t, got.Habits, 2)
		assert.Equal(t, model.StateDone, got.Habits[0].CompletionState)
		assert.Equal(t, model.StateUnmarked, got.Habits[1].CompletionState)
	})

	t.Run("正常系: 日付省略時は今日", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.schedule.On("Today").Return(date).Once()
		m.schedule.On("Resolve", mock.Anything, userID, date).Return(&model.ScheduleResponse{Date: date}, nil).Once()

		rr := doRequest(t, router, http.MethodGet, base, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"date":"2024-01-02","habits":[]}`, rr.Body.String())
	})

	t.Run("異常系: 日付の形式が不正", func(t *testing.T) {
		router, _ := newTestRouter(t)
		rr := doRequest(t, router, http.MethodGet, base+"?date=2024-02-30", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		detail := decodeError(t, rr)
		assert.Equal(t, "INVALID_DATE", detail.Code)
		assert.Equal(t, "date", detail.Field)
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.schedule.On("Resolve", mock.Anything, userID, date).
			Return(nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "user_id", model.ErrNotFound)).Once()

		rr := doRequest(t, router, http.MethodGet, base+"?date=2024-01-02", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
