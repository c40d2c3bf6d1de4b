//go:generate mockery --name AssignmentRepository --output ./mocks --outpkg mocks --case=underscore
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

type AssignmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, assignment *model.Assignment) error
	// FindByID は習慣をPreloadした割り当てを返します。非アクティブなものも含みます。
	FindByID(ctx context.Context, db *gorm.DB, assignmentID uint) (*model.Assignment, error)
	// FindActiveByUser はアクティブな割り当てを ID 昇順で返します。
	FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Assignment, error)
	ExistsActive(ctx context.Context, db *gorm.DB, userID uuid.UUID, habitID uint) (bool, error)
	// Deactivate は (user, habit) のアクティブな割り当てを論理削除し、更新件数を返します。
	Deactivate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, habitID uint) (int64, error)
	FindDuplicateActive(ctx context.Context, db *gorm.DB) ([]*model.DuplicateActiveAssignment, error)
}

type gormAssignmentRepository struct{}

func NewGormAssignmentRepository() AssignmentRepository {
	return &gormAssignmentRepository{}
}

func (r *gormAssignmentRepository) Create(ctx context.Context, tx *gorm.DB, assignment *model.Assignment) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Omit("Habit").Create(assignment)
	if result.Error != nil {
		logger.Error("Error creating assignment in DB",
			"error", result.Error,
			"user_id", assignment.UserID.String(),
			"habit_id", assignment.HabitID,
		)
		return fmt.Errorf("gormAssignmentRepository.Create: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return nil
}

func (r *gormAssignmentRepository) FindByID(ctx context.Context, db *gorm.DB, assignmentID uint) (*model.Assignment, error) {
	logger := middleware.GetLogger(ctx)
	var assignment model.Assignment
	result := db.WithContext(ctx).Preload("Habit").Where("id = ?", assignmentID).First(&assignment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding assignment by ID in DB", "error", result.Error, "assignment_id", assignmentID)
		return nil, fmt.Errorf("gormAssignmentRepository.FindByID: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return &assignment, nil
}

func (r *gormAssignmentRepository) FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Assignment, error) {
	logger := middleware.GetLogger(ctx)
	var assignments []*model.Assignment
	result := db.WithContext(ctx).
		Preload("Habit").
		Where("user_id = ? AND active = ?", userID, true).
		Order("id ASC").
		Find(&assignments)
	if result.Error != nil {
		logger.Error("Error finding active assignments by user in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormAssignmentRepository.FindActiveByUser: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return assignments, nil
}

func (r *gormAssignmentRepository) ExistsActive(ctx context.Context, db *gorm.DB, userID uuid.UUID, habitID uint) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Assignment{}).
		Where("user_id = ? AND habit_id = ? AND active = ?", userID, habitID, true).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking active assignment in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"habit_id", habitID,
		)
		return false, fmt.Errorf("gormAssignmentRepository.ExistsActive: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return count > 0, nil
}

func (r *gormAssignmentRepository) Deactivate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, habitID uint) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Assignment{}).
		Where("user_id = ? AND habit_id = ? AND active = ?", userID, habitID, true).
		Update("active", false)
	if result.Error != nil {
		logger.Error("Error deactivating assignment in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"habit_id", habitID,
		)
		return 0, fmt.Errorf("gormAssignmentRepository.Deactivate: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return result.RowsAffected, nil
}

func (r *gormAssignmentRepository) FindDuplicateActive(ctx context.Context, db *gorm.DB) ([]*model.DuplicateActiveAssignment, error) {
	logger := middleware.GetLogger(ctx)
	var dups []*model.DuplicateActiveAssignment
	result := db.WithContext(ctx).Model(&model.Assignment{}).
		Select("user_id, habit_id, COUNT(*) AS count").
		Where("active = ?", true).
		Group("user_id, habit_id").
		Having("COUNT(*) > ?", 1).
		Order("user_id, habit_id").
		Scan(&dups)
	if result.Error != nil {
		logger.Error("Error finding duplicate active assignments in DB", "error", result.Error)
		return nil, fmt.Errorf("gormAssignmentRepository.FindDuplicateActive: %w", errors.Join(model.ErrStorage, result.Error))
	}
	return dups, nil
}
