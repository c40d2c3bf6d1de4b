package model

// ScheduledHabit は指定日にスコープ内の習慣と、その日の実施状態
type ScheduledHabit struct {
	AssignmentID    uint            `json:"assignment_id"`
	HabitID         uint            `json:"habit_id"`
	HabitName       string          `json:"habit_name"`
	Description     *string         `json:"description,omitempty"`
	CompletionState CompletionState `json:"completion_state"`
}

// ScheduleResponse は日付ごとのスケジュールのレスポンス
type ScheduleResponse struct {
	Date   Date              `json:"date"`
	Habits []*ScheduledHabit `json:"habits"`
}
