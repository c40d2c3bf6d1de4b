package service

import (
	"context"
	"errors"
	"strings"

	"habit_keep/internal/middleware"
	"habit_keep/internal/model"
	"habit_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HabitService は習慣カタログの操作です。習慣は作成後に変更・削除しません。
type HabitService interface {
	ListGlobal(ctx context.Context) ([]*model.Habit, error)
	GetHabit(ctx context.Context, habitID uint) (*model.Habit, error)
	ListRecommended(ctx context.Context, userID uuid.UUID) ([]*model.Habit, error)
	CreateCustomHabit(ctx context.Context, userID uuid.UUID, req *model.CreateHabitRequest) (*model.Habit, error)
}

type habitService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	habitRepo repository.HabitRepository
}

func NewHabitService(db *gorm.DB, userRepo repository.UserRepository, habitRepo repository.HabitRepository) HabitService {
	return &habitService{
		db:        db,
		userRepo:  userRepo,
		habitRepo: habitRepo,
	}
}

func (s *habitService) ListGlobal(ctx context.Context) ([]*model.Habit, error) {
	logger := middleware.GetLogger(ctx)
	habits, err := s.habitRepo.ListGlobal(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list global habits", "error", err)
		return nil, internalError("習慣一覧の取得に失敗しました。", err)
	}
	return habits, nil
}

func (s *habitService) GetHabit(ctx context.Context, habitID uint) (*model.Habit, error) {
	logger := middleware.GetLogger(ctx)
	habit, err := s.habitRepo.FindByID(ctx, s.db, habitID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, habitNotFound()
		}
		logger.Error("Failed to find habit", "error", err, "habit_id", habitID)
		return nil, internalError("習慣の取得に失敗しました。", err)
	}
	return habit, nil
}

func (s *habitService) ListRecommended(ctx context.Context, userID uuid.UUID) ([]*model.Habit, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	if err := ensureUserExists(ctx, s.db, s.userRepo, userID); err != nil {
		return nil, err
	}
	habits, err := s.habitRepo.ListRecommended(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list recommended habits", "error", err)
		return nil, internalError("おすすめ習慣の取得に失敗しました。", err)
	}
	return habits, nil
}

func (s *habitService) CreateCustomHabit(ctx context.Context, userID uuid.UUID, req *model.CreateHabitRequest) (*model.Habit, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "名前は必須項目です。", "name", model.ErrInvalidInput)
	}

	var created *model.Habit
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUserExists(ctx, tx, s.userRepo, userID); err != nil {
			return err
		}
		owner := userID
		habit := &model.Habit{
			Name:        name,
			Description: req.Description,
			Category:    req.Category,
			IsGlobal:    false,
			CreatedBy:   &owner,
		}
		if err := s.habitRepo.Create(ctx, tx, habit); err != nil {
			logger.Error("Failed to create custom habit", "error", err)
			return internalError("習慣の作成に失敗しました。", err)
		}
		created = habit
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Custom habit created", "habit_id", created.ID)
	return created, nil
}
