package handlers_test

import (
	"net/http"
	"testing"

	"habit_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsHandler_GetStats(t *testing.T) {
	userID := uuid.New()
	path := "/api/v1/users/" + userID.String() + "/stats"

	t.Run("正常系", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.stats.On("Summary", mock.Anything, userID).Return(&model.StatsSummary{
			ActiveHabitCount:            2,
			CompletedTodayCount:         1,
			OverallCompletionPercentage: 67,
			PerHabit: []*model.HabitStats{
				{AssignmentID: 1, HabitName: "Read", TotalRecords: 3, TotalCompleted: 2, Percentage: 67},
				{AssignmentID: 2, HabitName: "Walk", Percentage: 0},
			},
			Monthly: []*model.MonthlyStats{{Month: 3, TotalCompleted: 2}},
		}, nil).Once()

		rr := doRequest(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"active_habit_count": 2,
			"completed_today_count": 1,
			"overall_completion_percentage": 67,
			"per_habit": [
				{"assignment_id": 1, "habit_name": "Read", "total_records": 3, "total_completed": 2, "percentage": 67},
				{"assignment_id": 2, "habit_name": "Walk", "total_records": 0, "total_completed": 0, "percentage": 0}
			],
			"monthly": [{"month": 3, "total_completed": 2}]
		}`, rr.Body.String())
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.stats.On("Summary", mock.Anything, userID).
			Return(nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "user_id", model.ErrNotFound)).Once()

		rr := doRequest(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestRouter_TrailingSlash(t *testing.T) {
	router, m := newTestRouter(t)
	m.habit.On("ListGlobal", mock.Anything).Return([]*model.Habit{}, nil).Once()

	rr := doRequest(t, router, http.MethodGet, "/api/v1/habits/", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}
