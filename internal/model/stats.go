// internal/model/stats.go
package model

import "math"

// HabitStats は割り当てごとの集計結果
type HabitStats struct {
	AssignmentID   uint   `json:"assignment_id"`
	HabitName      string `json:"habit_name"`
	TotalRecords   int64  `json:"total_records"`
	TotalCompleted int64  `json:"total_completed"`
	Percentage     int    `json:"percentage"`
}

// MonthlyStats は月(1-12)ごとの実施数。年は区別しない。
type MonthlyStats struct {
	Month          int   `json:"month"`
	TotalCompleted int64 `json:"total_completed"`
}

// StatsSummary は統計APIのレスポンス
type StatsSummary struct {
	ActiveHabitCount            int64           `json:"active_habit_count"`
	CompletedTodayCount         int64           `json:"completed_today_count"`
	OverallCompletionPercentage int             `json:"overall_completion_percentage"`
	PerHabit                    []*HabitStats   `json:"per_habit"`
	Monthly                     []*MonthlyStats `json:"monthly"`
}

// Percentage は round(100 * completed / total) を返します。total が 0 なら 0。
func Percentage(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}
