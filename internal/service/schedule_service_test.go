package service

import (
	"errors"
	"testing"
	"time"

	"habit_keep/internal/model"
	"habit_keep/internal/repository"
	"habit_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_scheduleService_Resolve(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	userID := uuid.New()
	desc := "8 glasses"

	// ID 昇順で返る想定
	assignments := []*model.Assignment{
		{ID: 1, HabitID: 10, Goal: 3, StartDate: day(2024, time.January, 1), Active: true, Habit: &model.Habit{ID: 10, Name: "Drink water", Description: &desc}},
		{ID: 2, HabitID: 11, Goal: 1, StartDate: day(2024, time.January, 2), Active: true, Habit: &model.Habit{ID: 11, Name: "Walk"}},
		{ID: 3, HabitID: 12, Goal: 10, StartDate: day(2023, time.December, 30), Active: true, Habit: &model.Habit{ID: 12, Name: "Read"}},
		{ID: 4, HabitID: 13, Goal: 0, StartDate: day(2024, time.January, 2), Active: true, Habit: &model.Habit{ID: 13, Name: "Broken goal"}},
	}

	tests := []struct {
		name      string
		date      model.Date
		setupMock func(userRepo *mocks.UserRepository, assignRepo *mocks.AssignmentRepository, compRepo *mocks.CompletionRepository)
		wantErr   error
		want      []*model.ScheduledHabit
	}{
		{
			name: "正常系: スコープ内の習慣を割り当て順に返す",
			date: day(2024, time.January, 2),
			setupMock: func(userRepo *mocks.UserRepository, assignRepo *mocks.AssignmentRepository, compRepo *mocks.CompletionRepository) {
				userRepo.On("Exists", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).Return(true, nil).Once()
				assignRepo.On("FindActiveByUser", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).Return(assignments, nil).Once()
				compRepo.On("Find", mock.Anything, mock.AnythingOfType("*gorm.DB"), uint(1), day(2024, time.January, 2)).
					Return(&model.CompletionRecord{AssignmentID: 1, Realized: model.RealizedDone}, nil).Once()
				compRepo.On("Find", mock.Anything, mock.AnythingOfType("*gorm.DB"), uint(2), day(2024, time.January, 2)).
					Return(&model.CompletionRecord{AssignmentID: 2, Realized: model.RealizedNotDone}, nil).Once()
				compRepo.On("Find", mock.Anything, mock.AnythingOfType("*gorm.DB"), uint(3), day(2024, time.January, 2)).
					Return(nil, model.ErrNotFound).Once()
			},
			want: []*model.ScheduledHabit{
				{AssignmentID: 1, HabitID: 10, HabitName: "Drink water", Description: &desc, CompletionState: model.StateDone},
				{AssignmentID: 2, HabitID: 11, HabitName: "Walk", CompletionState: model.StateNotDone},
				{AssignmentID: 3, HabitID: 12, HabitName: "Read", CompletionState: model.StateUnmarked},
			},
		},
		{
			name: "正常系: 期間終了の翌日はスコープ外",
			date: day(2024, time.January, 4),
			setupMock: func(userRepo *mocks.UserRepository, assignRepo *mocks.AssignmentRepository, compRepo *mocks.CompletionRepository) {
				userRepo.On("Exists", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).Return(true, nil).Once()
				assignRepo.On("FindActiveByUser", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).Return(assignments, nil).Once()
				compRepo.On("Find", mock.Anything, mock.AnythingOfType("*gorm.DB"), uint(3), day(2024, time.January, 4)).
					Return(nil, model.ErrNotFound).Once()
			},
			want: []*model.ScheduledHabit{
				{AssignmentID: 3, HabitID: 12, HabitName: "Read", CompletionState: model.StateUnmarked},
			},
		},
		{
			name: "正常系: スコープ内の習慣が無い場合は空",
			date: day(2025, time.June, 1),
			setupMock: func(userRepo *mocks.UserRepository, assignRepo *mocks.AssignmentRepository, compRepo *mocks.CompletionRepository) {
				userRepo.On("Exists", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).Return(true, nil).Once()
				assignRepo.On("FindActiveByUser", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).Return(assignments, nil).Once()
			},
			want: []*model.ScheduledHabit{},
		},
		{
			name: "異常系: ユーザーが存在しない",
			date: day(2024, time.January, 2),
			setupMock: func(userRepo *mocks.UserRepository, assignRepo *mocks.AssignmentRepository, compRepo *mocks.CompletionRepository) {
				userRepo.On("Exists", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).Return(false, nil).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 実施記録の参照でDBエラー",
			date: day(2024, time.January, 4),
			setupMock: func(userRepo *mocks.UserRepository, assignRepo *mocks.AssignmentRepository, compRepo *mocks.CompletionRepository) {
				userRepo.On("Exists", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).Return(true, nil).Once()
				assignRepo.On("FindActiveByUser", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).Return(assignments, nil).Once()
				compRepo.On("Find", mock.Anything, mock.AnythingOfType("*gorm.DB"), uint(3), day(2024, time.January, 4)).
					Return(nil, errors.Join(model.ErrStorage, errors.New("connection reset"))).Once()
			},
			wantErr: model.ErrStorage,
		},
		{
			name:      "異常系: 日付が未指定",
			date:      model.Date{},
			setupMock: func(*mocks.UserRepository, *mocks.AssignmentRepository, *mocks.CompletionRepository) {},
			wantErr:   model.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewUserRepository(t)
			assignRepo := mocks.NewAssignmentRepository(t)
			compRepo := mocks.NewCompletionRepository(t)
			tt.setupMock(userRepo, assignRepo, compRepo)

			svc := NewScheduleService(db, userRepo, assignRepo, compRepo, testConfig(4), FixedClock(time.Now(), time.UTC))
			got, err := svc.Resolve(ctx, userID, tt.date)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.date, got.Date)
			assert.Equal(t, tt.want, got.Habits)
		})
	}
}

func Test_scheduleService_Resolve_PreservesOrderUnderConcurrency(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	userID := uuid.New()
	date := day(2024, time.May, 10)

	userRepo := mocks.NewUserRepository(t)
	assignRepo := mocks.NewAssignmentRepository(t)
	compRepo := mocks.NewCompletionRepository(t)

	var assignments []*model.Assignment
	for i := uint(1); i <= 20; i++ {
		assignments = append(assignments, &model.Assignment{ID: i, HabitID: 100 + i, Goal: 30, StartDate: day(2024, time.May, 1), Active: true})
		realized := int(i % 2)
		// 先の割り当てほど応答を遅らせる
		delay := time.Duration(21-i) * time.Millisecond
		compRepo.On("Find", mock.Anything, mock.Anything, i, date).
			After(delay).
			Return(&model.CompletionRecord{AssignmentID: i, Realized: realized}, nil).Once()
	}
	userRepo.On("Exists", mock.Anything, mock.Anything, userID).Return(true, nil).Once()
	assignRepo.On("FindActiveByUser", mock.Anything, mock.Anything, userID).Return(assignments, nil).Once()

	svc := NewScheduleService(db, userRepo, assignRepo, compRepo, testConfig(8), FixedClock(time.Now(), time.UTC))
	got, err := svc.Resolve(ctx, userID, date)
	require.NoError(t, err)
	require.Len(t, got.Habits, 20)
	for i, h := range got.Habits {
		id := uint(i + 1)
		assert.Equal(t, id, h.AssignmentID)
		if id%2 == 1 {
			assert.Equal(t, model.StateDone, h.CompletionState)
		} else {
			assert.Equal(t, model.StateNotDone, h.CompletionState)
		}
	}
}

// 実際のリポジトリを使った確認 (SQLite)
func Test_scheduleService_Resolve_WithRepositories(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	user, habit := seedUserWithHabit(t, db, "Stretch")
	a := seedAssignment(t, db, 0, user.UserID, habit.ID, day(2024, time.January, 1), 3)

	svc := NewScheduleService(db,
		repository.NewGormUserRepository(),
		repository.NewGormAssignmentRepository(),
		repository.NewGormCompletionRepository(),
		testConfig(1),
		FixedClock(time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC), time.UTC),
	)
	completions := NewCompletionService(db, repository.NewGormAssignmentRepository(), repository.NewGormCompletionRepository())

	_, err := completions.MarkComplete(ctx, a.ID, day(2024, time.January, 1))
	require.NoError(t, err)

	states := map[string]model.CompletionState{}
	for _, d := range []model.Date{day(2024, time.January, 1), day(2024, time.January, 2), day(2024, time.January, 3)} {
		got, err := svc.Resolve(ctx, user.UserID, d)
		require.NoError(t, err)
		require.Len(t, got.Habits, 1, d.String())
		assert.Equal(t, "Stretch", got.Habits[0].HabitName)
		states[d.String()] = got.Habits[0].CompletionState
	}
	assert.Equal(t, map[string]model.CompletionState{
		"2024-01-01": model.StateDone,
		"2024-01-02": model.StateUnmarked,
		"2024-01-03": model.StateUnmarked,
	}, states)

	got, err := svc.Resolve(ctx, user.UserID, day(2024, time.January, 4))
	require.NoError(t, err)
	assert.Empty(t, got.Habits)

	assert.Equal(t, "2024-01-02", svc.Today().String())

	_, err = svc.Resolve(ctx, uuid.New(), day(2024, time.January, 1))
	assert.ErrorIs(t, err, model.ErrNotFound)
}
