// internal/model/habit.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Habit はカタログ上の習慣です。グローバル(システム提供)かユーザー作成のどちらか。
// 作成後は変更しません。
type Habit struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(150);not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Category    *string    `gorm:"type:varchar(100)" json:"category,omitempty"`
	IsGlobal    bool       `gorm:"not null;default:false;index" json:"is_global"`
	CreatedBy   *uuid.UUID `gorm:"type:varchar(36);index" json:"created_by,omitempty"` // グローバルの場合は NULL
	CreatedAt   time.Time  `json:"created_at"`
}

func (Habit) TableName() string {
	return "habits"
}

// OwnedBy はユーザー作成の習慣で、作成者が userID かどうか
func (h *Habit) OwnedBy(userID uuid.UUID) bool {
	return !h.IsGlobal && h.CreatedBy != nil && *h.CreatedBy == userID
}

// VisibleTo はユーザーが割り当て可能な習慣かどうか
func (h *Habit) VisibleTo(userID uuid.UUID) bool {
	return h.IsGlobal || h.OwnedBy(userID)
}

// CreateHabitRequest はカスタム習慣作成リクエストDTO
type CreateHabitRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
}
