package service

import (
	"context"
	"errors"

	"habit_keep/internal/config"
	"habit_keep/internal/middleware"
	"habit_keep/internal/model"
	"habit_keep/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ScheduleService は指定日にスコープ内の習慣と、その日の実施状態を解決します。読み取り専用。
type ScheduleService interface {
	Resolve(ctx context.Context, userID uuid.UUID, date model.Date) (*model.ScheduleResponse, error)
	// Today は設定されたタイムゾーンでの今日の日付
	Today() model.Date
}

type scheduleService struct {
	db             *gorm.DB
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
	completionRepo repository.CompletionRepository
	clock          Clock
	concurrency    int
}

func NewScheduleService(db *gorm.DB, userRepo repository.UserRepository, assignmentRepo repository.AssignmentRepository, completionRepo repository.CompletionRepository, cfg *config.Config, clock Clock) ScheduleService {
	concurrency := cfg.App.ScheduleLookupConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &scheduleService{
		db:             db,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		completionRepo: completionRepo,
		clock:          clock,
		concurrency:    concurrency,
	}
}

func (s *scheduleService) Today() model.Date {
	return s.clock.Today()
}

func (s *scheduleService) Resolve(ctx context.Context, userID uuid.UUID, date model.Date) (*model.ScheduleResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "date", date.String())
	if date.IsZero() {
		return nil, invalidDate("date")
	}
	if err := ensureUserExists(ctx, s.db, s.userRepo, userID); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.FindActiveByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to find active assignments", "error", err)
		return nil, internalError("スケジュールの取得に失敗しました。", err)
	}

	inScope := make([]*model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.InScope(date) {
			inScope = append(inScope, a)
		}
	}

	// 実施記録の参照は並列に行い、結果は割り当ての順序で格納する
	habits := make([]*model.ScheduledHabit, len(inScope))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, a := range inScope {
		g.Go(func() error {
			rec, err := s.completionRepo.Find(gctx, s.db, a.ID, date)
			if err != nil && !errors.Is(err, model.ErrNotFound) {
				return err
			}
			habits[i] = newScheduledHabit(a, rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Failed to look up completion records", "error", err)
		return nil, internalError("スケジュールの取得に失敗しました。", err)
	}

	logger.Debug("Schedule resolved", "active", len(assignments), "in_scope", len(habits))
	return &model.ScheduleResponse{Date: date, Habits: habits}, nil
}

// rec が nil の場合は未記録
func newScheduledHabit(a *model.Assignment, rec *model.CompletionRecord) *model.ScheduledHabit {
	sh := &model.ScheduledHabit{
		AssignmentID:    a.ID,
		HabitID:         a.HabitID,
		CompletionState: rec.State(),
	}
	if a.Habit != nil {
		sh.HabitName = a.Habit.Name
		sh.Description = a.Habit.Description
	}
	return sh
}
