//go:generate mockery --name StatsRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"habit_keep/internal/middleware"
	"habit_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompletionTotals はある範囲の記録件数と実施件数
type CompletionTotals struct {
	Total     int64
	Completed int64
}

// HabitTotals は割り当てごとの記録件数と実施件数
type HabitTotals struct {
	AssignmentID   uint
	HabitName      string
	TotalRecords   int64
	TotalCompleted int64
}

// MonthTotals は月(1-12)ごとの実施件数
type MonthTotals struct {
	Month          int
	TotalCompleted int64
}

// StatsRepository は統計用の集計クエリです。割合の計算は行いません。
type StatsRepository interface {
	CountActiveAssignments(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	CountCompletedOn(ctx context.Context, db *gorm.DB, userID uuid.UUID, date model.Date) (int64, error)
	OverallTotals(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*CompletionTotals, error)
	// PerHabitTotals はユーザーの全割り当て(非アクティブ含む)を ID 昇順で返します。
	PerHabitTotals(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*HabitTotals, error)
	// MonthlyCompleted は年を区別せずに月ごとに集計します。
	MonthlyCompleted(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*MonthTotals, error)
}

type gormStatsRepository struct{}

func NewGormStatsRepository() StatsRepository {
	return &gormStatsRepository{}
}

// userCompletions はユーザーの割り当てに紐づく実施記録を対象にしたクエリを返します。
func userCompletions(ctx context.Context, db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.WithContext(ctx).
		Table("completions AS c").
		Joins("JOIN assignments AS a ON a.id = c.assignment_id").
		Where("a.user_id = ?", userID)
}

func (r *gormStatsRepository) CountActiveAssignments(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Assignment{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting active assignments in DB", "error", result.Error, "user_id", userID.String())
		return 0, fmt.Errorf("gormStatsRepository.CountActiveAssignments: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return count, nil
}

func (r *gormStatsRepository) CountCompletedOn(ctx context.Context, db *gorm.DB, userID uuid.UUID, date model.Date) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := userCompletions(ctx, db, userID).
		Where("c.date = ? AND c.realized = ?", date, model.RealizedDone).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting completions on date in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"date", date.String(),
		)
		return 0, fmt.Errorf("gormStatsRepository.CountCompletedOn: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return count, nil
}

func (r *gormStatsRepository) OverallTotals(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*CompletionTotals, error) {
	logger := middleware.GetLogger(ctx)
	var totals CompletionTotals
	// 記録が無い場合 SUM は NULL になるため COALESCE する
	result := userCompletions(ctx, db, userID).
		Select("COUNT(c.id) AS total, COALESCE(SUM(c.realized), 0) AS completed").
		Scan(&totals)
	if result.Error != nil {
		logger.Error("Error aggregating overall completions in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormStatsRepository.OverallTotals: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return &totals, nil
}

func (r *gormStatsRepository) PerHabitTotals(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*HabitTotals, error) {
	logger := middleware.GetLogger(ctx)
	var rows []*HabitTotals
	result := db.WithContext(ctx).
		Table("assignments AS a").
		Select("a.id AS assignment_id, h.name AS habit_name, COUNT(c.id) AS total_records, COALESCE(SUM(c.realized), 0) AS total_completed").
		Joins("JOIN habits AS h ON h.id = a.habit_id").
		Joins("LEFT JOIN completions AS c ON c.assignment_id = a.id").
		Where("a.user_id = ?", userID).
		Group("a.id, h.name").
		Order("a.id ASC").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error aggregating per-habit completions in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormStatsRepository.PerHabitTotals: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return rows, nil
}

func (r *gormStatsRepository) MonthlyCompleted(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*MonthTotals, error) {
	logger := middleware.GetLogger(ctx)
	var rows []*MonthTotals
	// date は YYYY-MM-DD の文字列なので SUBSTR で月を取り出す (全ドライバ共通)
	monthExpr := "CAST(SUBSTR(c.date, 6, 2) AS INTEGER)"
	if db.Dialector != nil && db.Dialector.Name() == "mysql" {
		monthExpr = "CAST(SUBSTR(c.date, 6, 2) AS UNSIGNED)"
	}
	result := userCompletions(ctx, db, userID).
		Select(monthExpr + " AS month, COALESCE(SUM(c.realized), 0) AS total_completed").
		Group(monthExpr).
		Order("month ASC").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error aggregating monthly completions in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormStatsRepository.MonthlyCompleted: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return rows, nil
}
