// internal/model/completion.go
package model

import "time"

// Realized の値 (1 = 実施, 0 = 明示的に未実施)
const (
	RealizedNotDone = 0
	RealizedDone    = 1
)

// CompletionRecord は (割り当て, 日付) ごとの実施記録です。
// (assignment_id, date) は一意。記録が無い日は「未記録」。
type CompletionRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AssignmentID uint      `gorm:"not null;uniqueIndex:idx_completion_assignment_date" json:"assignment_id"`
	Date         Date      `gorm:"type:varchar(10);not null;uniqueIndex:idx_completion_assignment_date;index" json:"date"`
	Realized     int       `gorm:"type:smallint;not null;default:0" json:"realized"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (CompletionRecord) TableName() string {
	return "completions"
}

func (c *CompletionRecord) State() CompletionState {
	if c == nil {
		return StateUnmarked
	}
	if c.Realized == RealizedDone {
		return StateDone
	}
	return StateNotDone
}

type CompletionState string

const (
	StateDone     CompletionState = "done"
	StateNotDone  CompletionState = "not_done"
	StateUnmarked CompletionState = "unmarked"
)

// ConflictPolicy は「未実施」を書き込むときに既存記録をどう扱うか
type ConflictPolicy string

const (
	// PolicyKeepExisting は記録が無い場合のみ挿入する (先勝ち)
	PolicyKeepExisting ConflictPolicy = "keep_existing"
	// PolicyOverwrite は既存記録を上書きする (後勝ち)
	PolicyOverwrite ConflictPolicy = "overwrite"
)

func (p ConflictPolicy) Valid() bool {
	return p == PolicyKeepExisting || p == PolicyOverwrite
}

// MarkNotDoneRequest は未実施記録リクエストDTO。policy は必須。
type MarkNotDoneRequest struct {
	Policy ConflictPolicy `json:"policy" validate:"required,oneof=keep_existing overwrite"`
}

// CompletionResponse は記録系APIのレスポンス
type CompletionResponse struct {
	AssignmentID uint            `json:"assignment_id"`
	Date         Date            `json:"date"`
	State        CompletionState `json:"state"`
	Written      bool            `json:"written"`
}
