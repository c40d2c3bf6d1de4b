// internal/model/assignment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Assignment はユーザーとカタログ習慣の紐付け(ユーザーごとの設定)です。
// 削除は Active=false による論理削除のみ。
type Assignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:varchar(36);not null;index:idx_assignment_user_habit" json:"user_id"`
	HabitID    uint      `gorm:"not null;index:idx_assignment_user_habit" json:"habit_id"`
	Frequency  Frequency `gorm:"type:varchar(16);not null" json:"frequency"`
	Goal       int       `gorm:"not null;default:1" json:"goal"`
	TargetTime *string   `gorm:"type:varchar(5)" json:"target_time,omitempty"` // HH:MM
	Weekdays   Weekdays  `gorm:"type:varchar(100)" json:"weekdays,omitempty"` // weekly の場合のみ
	Notes      *string   `gorm:"type:text" json:"notes,omitempty"`
	StartDate  Date      `gorm:"type:varchar(10);not null" json:"start_date"`
	EndDate    *Date     `gorm:"type:varchar(10)" json:"end_date,omitempty"`
	Active     bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Habit *Habit `gorm:"foreignKey:HabitID" json:"habit,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// Window は有効期間 [start, start+goal-1] を返します (両端含む)。
// goal が 1 未満の場合 ok=false で、どの日付もスコープ外になります。
func (a *Assignment) Window() (start, end Date, ok bool) {
	if a.Goal < 1 || a.StartDate.IsZero() {
		return Date{}, Date{}, false
	}
	return a.StartDate, a.StartDate.AddDays(a.Goal - 1), true
}

// InScope は date が有効期間内かどうかを判定します。
// frequency / weekdays は表示用のメタデータで、判定には使いません。
func (a *Assignment) InScope(date Date) bool {
	start, end, ok := a.Window()
	if !ok {
		return false
	}
	return !date.Before(start) && !date.After(end)
}

// AssignHabitRequest は習慣割り当てリクエストDTO
type AssignHabitRequest struct {
	HabitID    uint      `json:"habit_id" validate:"required,gt=0"`
	Frequency  Frequency `json:"frequency" validate:"required,oneof=daily weekly monthly"`
	Goal       int       `json:"goal" validate:"required,min=1,max=3660"`
	TargetTime *string   `json:"target_time,omitempty" validate:"omitempty,hhmm"`
	Weekdays   []string  `json:"weekdays,omitempty" validate:"omitempty,dive,weekday"`
	Notes      *string   `json:"notes,omitempty" validate:"omitempty,max=1000"`
	StartDate  *Date     `json:"start_date,omitempty"` // 省略時は今日
}

// AssignmentResponse は割り当て一覧のレスポンスDTO
type AssignmentResponse struct {
	ID          uint      `json:"id"`
	HabitID     uint      `json:"habit_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Frequency   Frequency `json:"frequency"`
	Goal        int       `json:"goal"`
	TargetTime  *string   `json:"target_time,omitempty"`
	Weekdays    Weekdays  `json:"weekdays,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	StartDate   Date      `json:"start_date"`
	EndDate     *Date     `json:"end_date,omitempty"`
}

func NewAssignmentResponse(a *Assignment) *AssignmentResponse {
	resp := &AssignmentResponse{
		ID:         a.ID,
		HabitID:    a.HabitID,
		Frequency:  a.Frequency,
		Goal:       a.Goal,
		TargetTime: a.TargetTime,
		Weekdays:   a.Weekdays,
		Notes:      a.Notes,
		StartDate:  a.StartDate,
		EndDate:    a.EndDate,
	}
	if a.Habit != nil {
		resp.Name = a.Habit.Name
		resp.Description = a.Habit.Description
		resp.Category = a.Habit.Category
	}
	return resp
}

// DuplicateActiveAssignment は (user, habit) に複数のアクティブな割り当てがある組
type DuplicateActiveAssignment struct {
	UserID  uuid.UUID `json:"user_id"`
	HabitID uint      `json:"habit_id"`
	Count   int64     `json:"count"`
}
