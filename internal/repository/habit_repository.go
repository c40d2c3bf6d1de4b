//go:generate mockery --name HabitRepository --output ./mocks --outpkg mocks --case=underscore
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

type HabitRepository interface {
	Create(ctx context.Context, tx *gorm.DB, habit *model.Habit) error
	FindByID(ctx context.Context, db *gorm.DB, habitID uint) (*model.Habit, error)
	// ListGlobal はグローバル習慣を ID 昇順で返します。
	ListGlobal(ctx context.Context, db *gorm.DB) ([]*model.Habit, error)
	// ListRecommended はユーザーが割り当て可能な習慣 (グローバルまたは本人作成) のうち、
	// アクティブな割り当てが無いものを返します。
	ListRecommended(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Habit, error)
	// FindGlobalByName はシード投入時の存在確認用
	FindGlobalByName(ctx context.Context, db *gorm.DB, name string) (*model.Habit, error)
}

type gormHabitRepository struct{}

func NewGormHabitRepository() HabitRepository {
	return &gormHabitRepository{}
}

func (r *gormHabitRepository) Create(ctx context.Context, tx *gorm.DB, habit *model.Habit) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(habit)
	if result.Error != nil {
		logger.Error("Error creating habit in DB",
			"error", result.Error,
			"name", habit.Name,
			"is_global", habit.IsGlobal,
		)
		return fmt.Errorf("gormHabitRepository.Create: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return nil
}

func (r *gormHabitRepository) FindByID(ctx context.Context, db *gorm.DB, habitID uint) (*model.Habit, error) {
	logger := middleware.GetLogger(ctx)
	var habit model.Habit
	result := db.WithContext(ctx).Where("id = ?", habitID).First(&habit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding habit by ID in DB", "error", result.Error, "habit_id", habitID)
		return nil, fmt.Errorf("gormHabitRepository.FindByID: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return &habit, nil
}

func (r *gormHabitRepository) ListGlobal(ctx context.Context, db *gorm.DB) ([]*model.Habit, error) {
	logger := middleware.GetLogger(ctx)
	var habits []*model.Habit
	result := db.WithContext(ctx).Where("is_global = ?", true).Order("id ASC").Find(&habits)
	if result.Error != nil {
		logger.Error("Error listing global habits in DB", "error", result.Error)
		return nil, fmt.Errorf("gormHabitRepository.ListGlobal: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return habits, nil
}

func (r *gormHabitRepository) ListRecommended(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Habit, error) {
	logger := middleware.GetLogger(ctx)
	var habits []*model.Habit
	assigned := db.Model(&model.Assignment{}).
		Select("habit_id").
		Where("user_id = ? AND active = ?", userID, true)
	result := db.WithContext(ctx).
		Where("is_global = ? OR created_by = ?", true, userID).
		Where("id NOT IN (?)", assigned).
		Order("id ASC").
		Find(&habits)
	if result.Error != nil {
		logger.Error("Error listing recommended habits in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormHabitRepository.ListRecommended: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return habits, nil
}

func (r *gormHabitRepository) FindGlobalByName(ctx context.Context, db *gorm.DB, name string) (*model.Habit, error) {
	var habit model.Habit
	result := db.WithContext(ctx).Where("is_global = ? AND name = ?", true, name).First(&habit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormHabitRepository.FindGlobalByName: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return &habit, nil
}
