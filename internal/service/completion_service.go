package service

import (
	"context"
	"errors"

	"habit_keep/internal/middleware"
	"habit_keep/internal/model"
	"habit_keep/internal/repository"

	"gorm.io/gorm"
)

// CompletionService は実施記録(台帳)への書き込みと参照です。
// 同じ (割り当て, 日付) への並行した書き込みは後勝ちになります。
type CompletionService interface {
	// MarkComplete は実施済みとして記録します。何度呼んでも結果は同じです。
	MarkComplete(ctx context.Context, assignmentID uint, date model.Date) (*model.CompletionResponse, error)
	// MarkNotDone は未実施として記録します。既存記録の扱いは policy で指定します。
	MarkNotDone(ctx context.Context, assignmentID uint, date model.Date, policy model.ConflictPolicy) (*model.CompletionResponse, error)
	GetState(ctx context.Context, assignmentID uint, date model.Date) (*model.CompletionResponse, error)
}

type completionService struct {
	db             *gorm.DB
	assignmentRepo repository.AssignmentRepository
	completionRepo repository.CompletionRepository
}

func NewCompletionService(db *gorm.DB, assignmentRepo repository.AssignmentRepository, completionRepo repository.CompletionRepository) CompletionService {
	return &completionService{
		db:             db,
		assignmentRepo: assignmentRepo,
		completionRepo: completionRepo,
	}
}

// activeAssignment は書き込み対象の割り当てを取得します。存在しない・非アクティブの場合は NotFound。
func (s *completionService) activeAssignment(ctx context.Context, db *gorm.DB, assignmentID uint) (*model.Assignment, error) {
	a, err := s.assignmentRepo.FindByID(ctx, db, assignmentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, assignmentNotFound()
		}
		middleware.GetLogger(ctx).Error("Failed to find assignment", "error", err, "assignment_id", assignmentID)
		return nil, internalError("習慣の割り当ての取得に失敗しました。", err)
	}
	if !a.Active {
		return nil, assignmentNotFound()
	}
	return a, nil
}

func (s *completionService) MarkComplete(ctx context.Context, assignmentID uint, date model.Date) (*model.CompletionResponse, error) {
	logger := middleware.GetLogger(ctx).With("assignment_id", assignmentID, "date", date.String())
	if date.IsZero() {
		return nil, invalidDate("date")
	}

	var resp *model.CompletionResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.activeAssignment(ctx, tx, assignmentID); err != nil {
			return err
		}
		rec, err := s.completionRepo.Upsert(ctx, tx, assignmentID, date, model.RealizedDone)
		if err != nil {
			logger.Error("Failed to mark completion", "error", err)
			return internalError("実施記録の保存に失敗しました。", err)
		}
		resp = &model.CompletionResponse{AssignmentID: assignmentID, Date: date, State: rec.State(), Written: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Habit marked as done")
	return resp, nil
}

func (s *completionService) MarkNotDone(ctx context.Context, assignmentID uint, date model.Date, policy model.ConflictPolicy) (*model.CompletionResponse, error) {
	logger := middleware.GetLogger(ctx).With("assignment_id", assignmentID, "date", date.String(), "policy", string(policy))
	if date.IsZero() {
		return nil, invalidDate("date")
	}
	if !policy.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "policy は keep_existing または overwrite を指定してください。", "policy", model.ErrInvalidInput)
	}

	var resp *model.CompletionResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.activeAssignment(ctx, tx, assignmentID); err != nil {
			return err
		}

		switch policy {
		case model.PolicyOverwrite:
			rec, err := s.completionRepo.Upsert(ctx, tx, assignmentID, date, model.RealizedNotDone)
			if err != nil {
				logger.Error("Failed to overwrite completion", "error", err)
				return internalError("実施記録の保存に失敗しました。", err)
			}
			resp = &model.CompletionResponse{AssignmentID: assignmentID, Date: date, State: rec.State(), Written: true}

		case model.PolicyKeepExisting:
			inserted, err := s.completionRepo.InsertIfAbsent(ctx, tx, assignmentID, date, model.RealizedNotDone)
			if err != nil {
				logger.Error("Failed to insert completion", "error", err)
				return internalError("実施記録の保存に失敗しました。", err)
			}
			// 既存記録がある場合はその状態を返す
			rec, err := s.completionRepo.Find(ctx, tx, assignmentID, date)
			if err != nil {
				logger.Error("Failed to read completion after insert", "error", err)
				return internalError("実施記録の取得に失敗しました。", err)
			}
			resp = &model.CompletionResponse{AssignmentID: assignmentID, Date: date, State: rec.State(), Written: inserted}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !resp.Written {
		logger.Info("Existing completion kept", "state", string(resp.State))
	} else {
		logger.Info("Habit marked as not done")
	}
	return resp, nil
}

func (s *completionService) GetState(ctx context.Context, assignmentID uint, date model.Date) (*model.CompletionResponse, error) {
	logger := middleware.GetLogger(ctx).With("assignment_id", assignmentID, "date", date.String())
	if date.IsZero() {
		return nil, invalidDate("date")
	}
	if _, err := s.assignmentRepo.FindByID(ctx, s.db, assignmentID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, assignmentNotFound()
		}
		logger.Error("Failed to find assignment", "error", err)
		return nil, internalError("習慣の割り当ての取得に失敗しました。", err)
	}

	rec, err := s.completionRepo.Find(ctx, s.db, assignmentID, date)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to find completion", "error", err)
		return nil, internalError("実施記録の取得に失敗しました。", err)
	}
	return &model.CompletionResponse{AssignmentID: assignmentID, Date: date, State: rec.State()}, nil
}
