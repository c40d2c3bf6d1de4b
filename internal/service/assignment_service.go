package service

import (
	"context"
	"errors"

	"habit_keep/internal/middleware"
	"habit_keep/internal/model"
	"habit_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentService interface {
	AssignHabit(ctx context.Context, userID uuid.UUID, req *model.AssignHabitRequest) (*model.Assignment, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]*model.Assignment, error)
	Deactivate(ctx context.Context, userID uuid.UUID, habitID uint) error
	// FindDuplicates は (user, habit) にアクティブな割り当てが複数ある組を返します。
	FindDuplicates(ctx context.Context) ([]*model.DuplicateActiveAssignment, error)
}

type assignmentService struct {
	db             *gorm.DB
	userRepo       repository.UserRepository
	habitRepo      repository.HabitRepository
	assignmentRepo repository.AssignmentRepository
	clock          Clock
}

func NewAssignmentService(db *gorm.DB, userRepo repository.UserRepository, habitRepo repository.HabitRepository, assignmentRepo repository.AssignmentRepository, clock Clock) AssignmentService {
	return &assignmentService{
		db:             db,
		userRepo:       userRepo,
		habitRepo:      habitRepo,
		assignmentRepo: assignmentRepo,
		clock:          clock,
	}
}

func (s *assignmentService) AssignHabit(ctx context.Context, userID uuid.UUID, req *model.AssignHabitRequest) (*model.Assignment, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "habit_id", req.HabitID)

	if !req.Frequency.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "頻度は daily, weekly, monthly のいずれかです。", "frequency", model.ErrInvalidInput)
	}
	if req.Goal < 1 {
		return nil, model.NewAppError("VALIDATION_ERROR", "目標日数は1以上で指定してください。", "goal", model.ErrInvalidInput)
	}
	if len(req.Weekdays) > 0 && req.Frequency != model.FrequencyWeekly {
		return nil, model.NewAppError("VALIDATION_ERROR", "曜日は頻度が weekly の場合のみ指定できます。", "weekdays", model.ErrInvalidInput)
	}
	weekdays, err := model.NormalizeWeekdays(req.Weekdays)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "曜日の指定が正しくありません。", "weekdays", err)
	}

	start := s.clock.Today()
	if req.StartDate != nil && !req.StartDate.IsZero() {
		start = *req.StartDate
	}
	end := start.AddDays(req.Goal - 1)

	var created *model.Assignment
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUserExists(ctx, tx, s.userRepo, userID); err != nil {
			return err
		}

		habit, err := s.habitRepo.FindByID(ctx, tx, req.HabitID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return habitNotFound()
			}
			logger.Error("Failed to find habit", "error", err)
			return internalError("習慣の取得に失敗しました。", err)
		}
		// 他のユーザーが作成した習慣は存在しないものとして扱う
		if !habit.VisibleTo(userID) {
			logger.Warn("Habit is not visible to user")
			return habitNotFound()
		}

		exists, err := s.assignmentRepo.ExistsActive(ctx, tx, userID, req.HabitID)
		if err != nil {
			logger.Error("Failed to check active assignment", "error", err)
			return internalError("習慣の割り当てに失敗しました。", err)
		}
		if exists {
			logger.Warn("Habit already assigned")
			return model.NewAppError("DUPLICATE_ASSIGNMENT", "この習慣は既に割り当てられています。", "habit_id", model.ErrConflict)
		}

		assignment := &model.Assignment{
			UserID:     userID,
			HabitID:    req.HabitID,
			Frequency:  req.Frequency,
			Goal:       req.Goal,
			TargetTime: req.TargetTime,
			Weekdays:   weekdays,
			Notes:      req.Notes,
			StartDate:  start,
			EndDate:    &end,
			Active:     true,
		}
		if err := s.assignmentRepo.Create(ctx, tx, assignment); err != nil {
			logger.Error("Failed to create assignment", "error", err)
			return internalError("習慣の割り当てに失敗しました。", err)
		}
		assignment.Habit = habit
		created = assignment
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Habit assigned", "assignment_id", created.ID, "start_date", start.String(), "goal", created.Goal)
	return created, nil
}

func (s *assignmentService) ListActive(ctx context.Context, userID uuid.UUID) ([]*model.Assignment, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	if err := ensureUserExists(ctx, s.db, s.userRepo, userID); err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepo.FindActiveByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list active assignments", "error", err)
		return nil, internalError("習慣一覧の取得に失敗しました。", err)
	}
	return assignments, nil
}

func (s *assignmentService) Deactivate(ctx context.Context, userID uuid.UUID, habitID uint) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "habit_id", habitID)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.assignmentRepo.Deactivate(ctx, tx, userID, habitID)
		if err != nil {
			logger.Error("Failed to deactivate assignment", "error", err)
			return internalError("習慣の削除に失敗しました。", err)
		}
		if n == 0 {
			return model.NewAppError("ASSIGNMENT_NOT_FOUND", "有効な習慣の割り当てが見つかりません。", "habit_id", model.ErrNotFound)
		}
		if n > 1 {
			logger.Warn("Deactivated duplicate active assignments", "count", n)
		}
		logger.Info("Assignment deactivated")
		return nil
	})
}

func (s *assignmentService) FindDuplicates(ctx context.Context) ([]*model.DuplicateActiveAssignment, error) {
	dups, err := s.assignmentRepo.FindDuplicateActive(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to find duplicate assignments", "error", err)
		return nil, internalError("重複チェックに失敗しました。", err)
	}
	return dups, nil
}
