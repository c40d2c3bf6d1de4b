//go:generate mockery --name CompletionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"habit_keep/internal/middleware"
	"habit_keep/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompletionRepository は (割り当て, 日付) ごとの実施記録(台帳)を扱います。
type CompletionRepository interface {
	// Find は記録が無い場合 model.ErrNotFound を返します。
	Find(ctx context.Context, db *gorm.DB, assignmentID uint, date model.Date) (*model.CompletionRecord, error)
	// Upsert は記録を作成、または既存記録の realized を上書きします。
	Upsert(ctx context.Context, tx *gorm.DB, assignmentID uint, date model.Date, realized int) (*model.CompletionRecord, error)
	// InsertIfAbsent は記録が無い場合のみ挿入し、挿入したかどうかを返します。
	InsertIfAbsent(ctx context.Context, tx *gorm.DB, assignmentID uint, date model.Date, realized int) (bool, error)
	CountByAssignmentAndDate(ctx context.Context, db *gorm.DB, assignmentID uint, date model.Date) (int64, error)
}

type gormCompletionRepository struct{}

func NewGormCompletionRepository() CompletionRepository {
	return &gormCompletionRepository{}
}

func uniqueCompletionColumns() []clause.Column {
	return []clause.Column{{Name: "assignment_id"}, {Name: "date"}}
}

func (r *gormCompletionRepository) Find(ctx context.Context, db *gorm.DB, assignmentID uint, date model.Date) (*model.CompletionRecord, error) {
	logger := middleware.GetLogger(ctx)
	var rec model.CompletionRecord
	result := db.WithContext(ctx).
		Where("assignment_id = ? AND date = ?", assignmentID, date).
		Limit(1).
		Find(&rec)
	if result.Error != nil {
		logger.Error("Error finding completion record in DB",
			"error", result.Error,
			"assignment_id", assignmentID,
			"date", date.String(),
		)
		return nil, fmt.Errorf("gormCompletionRepository.Find: %w", errors.Join(model.ErrStorage, result.Error))
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrNotFound
	}
	return &rec, nil
}

func (r *gormCompletionRepository) Upsert(ctx context.Context, tx *gorm.DB, assignmentID uint, date model.Date, realized int) (*model.CompletionRecord, error) {
	logger := middleware.GetLogger(ctx)
	rec := &model.CompletionRecord{
		AssignmentID: assignmentID,
		Date:         date,
		Realized:     realized,
	}
	// postgres/sqlite: ON CONFLICT (assignment_id, date) DO UPDATE
	// mysql: ON DUPLICATE KEY UPDATE
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   uniqueCompletionColumns(),
		DoUpdates: clause.AssignmentColumns([]string{"realized", "updated_at"}),
	}).Create(rec)
	if result.Error != nil {
		logger.Error("Error upserting completion record in DB",
			"error", result.Error,
			"assignment_id", assignmentID,
			"date", date.String(),
			"realized", realized,
		)
		return nil, fmt.Errorf("gormCompletionRepository.Upsert: %w", errors.Join(model.ErrStorage, result.Error))
	}
	// 競合時は rec.ID が既存行を指さないドライバがあるため読み直す
	return r.Find(ctx, tx, assignmentID, date)
}

func (r *gormCompletionRepository) InsertIfAbsent(ctx context.Context, tx *gorm.DB, assignmentID uint, date model.Date, realized int) (bool, error) {
	logger := middleware.GetLogger(ctx)
	rec := &model.CompletionRecord{
		AssignmentID: assignmentID,
		Date:         date,
		Realized:     realized,
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   uniqueCompletionColumns(),
		DoNothing: true,
	}).Create(rec)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return false, nil
		}
		logger.Error("Error inserting completion record in DB",
			"error", result.Error,
			"assignment_id", assignmentID,
			"date", date.String(),
		)
		return false, fmt.Errorf("gormCompletionRepository.InsertIfAbsent: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return result.RowsAffected > 0, nil
}

func (r *gormCompletionRepository) CountByAssignmentAndDate(ctx context.Context, db *gorm.DB, assignmentID uint, date model.Date) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.CompletionRecord{}).
		Where("assignment_id = ? AND date = ?", assignmentID, date).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormCompletionRepository.CountByAssignmentAndDate: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return count, nil
}
