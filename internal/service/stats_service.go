package service

import (
	"context"

	"habit_keep/internal/middleware"
	"habit_keep/internal/model"
	"habit_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatsService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*model.StatsSummary, error)
}

type statsService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	clock     Clock
}

func NewStatsService(db *gorm.DB, userRepo repository.UserRepository, statsRepo repository.StatsRepository, clock Clock) StatsService {
	return &statsService{
		db:        db,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		clock:     clock,
	}
}

// Summary はユーザーの統計を集計します。割合は四捨五入した整数(%)で、記録が無ければ 0。
// 月別集計は年を区別しません。
func (s *statsService) Summary(ctx context.Context, userID uuid.UUID) (*model.StatsSummary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	if err := ensureUserExists(ctx, s.db, s.userRepo, userID); err != nil {
		return nil, err
	}
	fail := func(step string, err error) (*model.StatsSummary, error) {
		logger.Error("Failed to aggregate statistics", "step", step, "error", err)
		return nil, internalError("統計の取得に失敗しました。", err)
	}

	active, err := s.statsRepo.CountActiveAssignments(ctx, s.db, userID)
	if err != nil {
		return fail("active_count", err)
	}
	completedToday, err := s.statsRepo.CountCompletedOn(ctx, s.db, userID, s.clock.Today())
	if err != nil {
		return fail("completed_today", err)
	}
	overall, err := s.statsRepo.OverallTotals(ctx, s.db, userID)
	if err != nil {
		return fail("overall", err)
	}
	perHabit, err := s.statsRepo.PerHabitTotals(ctx, s.db, userID)
	if err != nil {
		return fail("per_habit", err)
	}
	monthly, err := s.statsRepo.MonthlyCompleted(ctx, s.db, userID)
	if err != nil {
		return fail("monthly", err)
	}

	summary := &model.StatsSummary{
		ActiveHabitCount:            active,
		CompletedTodayCount:         completedToday,
		OverallCompletionPercentage: model.Percentage(overall.Completed, overall.Total),
		PerHabit:                    make([]*model.HabitStats, 0, len(perHabit)),
		Monthly:                     make([]*model.MonthlyStats, 0, len(monthly)),
	}
	for _, h := range perHabit {
		summary.PerHabit = append(summary.PerHabit, &model.HabitStats{
			AssignmentID:   h.AssignmentID,
			HabitName:      h.HabitName,
			TotalRecords:   h.TotalRecords,
			TotalCompleted: h.TotalCompleted,
			Percentage:     model.Percentage(h.TotalCompleted, h.TotalRecords),
		})
	}
	for _, m := range monthly {
		summary.Monthly = append(summary.Monthly, &model.MonthlyStats{Month: m.Month, TotalCompleted: m.TotalCompleted})
	}
	return summary, nil
}
