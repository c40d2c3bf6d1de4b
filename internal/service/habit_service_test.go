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

func Test_habitService_GetHabit(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)

	tests := []struct {
		name      string
		setupMock func(habitRepo *mocks.HabitRepository)
		want      *model.Habit
		wantErr   error
	}{
		{
			name: "正常系: 習慣を取得",
			setupMock: func(habitRepo *mocks.HabitRepository) {
				habitRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), uint(1)).
					Return(&model.Habit{ID: 1, Name: "Drink water", IsGlobal: true}, nil).Once()
			},
			want: &model.Habit{ID: 1, Name: "Drink water", IsGlobal: true},
		},
		{
			name: "異常系: 存在しない",
			setupMock: func(habitRepo *mocks.HabitRepository) {
				habitRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), uint(1)).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: DBエラー",
			setupMock: func(habitRepo *mocks.HabitRepository) {
				habitRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), uint(1)).
					Return(nil, errors.Join(model.ErrStorage, errors.New("boom"))).Once()
			},
			wantErr: model.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			habitRepo := mocks.NewHabitRepository(t)
			tt.setupMock(habitRepo)
			svc := NewHabitService(db, mocks.NewUserRepository(t), habitRepo)

			got, err := svc.GetHabit(ctx, 1)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_habitService_CreateCustomHabit(t *testing.T) {
	ctx := testContext()

	t.Run("異常系: 名前が空白のみ", func(t *testing.T) {
		svc := NewHabitService(setupTestDB(t), mocks.NewUserRepository(t), mocks.NewHabitRepository(t))
		got, err := svc.CreateCustomHabit(ctx, uuid.New(), &model.CreateHabitRequest{Name: "   "})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, got)
	})

	t.Run("異常系: 存在しないユーザー", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewHabitService(db, repository.NewGormUserRepository(), repository.NewGormHabitRepository())
		_, err := svc.CreateCustomHabit(ctx, uuid.New(), &model.CreateHabitRequest{Name: "Journal"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 作成者のみがおすすめに含まれる", func(t *testing.T) {
		db := setupTestDB(t)
		owner, global := seedUserWithHabit(t, db, "Drink water")
		other, _ := seedUserWithHabit(t, db, "Walk")
		svc := NewHabitService(db, repository.NewGormUserRepository(), repository.NewGormHabitRepository())

		category := "mindfulness"
		created, err := svc.CreateCustomHabit(ctx, owner.UserID, &model.CreateHabitRequest{Name: "  Journal ", Category: &category})
		require.NoError(t, err)
		assert.Equal(t, "Journal", created.Name)
		assert.False(t, created.IsGlobal)
		require.NotNil(t, created.CreatedBy)
		assert.Equal(t, owner.UserID, *created.CreatedBy)

		ownerList, err := svc.ListRecommended(ctx, owner.UserID)
		require.NoError(t, err)
		assert.Contains(t, habitNames(ownerList), "Journal")
		assert.Contains(t, habitNames(ownerList), global.Name)

		otherList, err := svc.ListRecommended(ctx, other.UserID)
		require.NoError(t, err)
		assert.NotContains(t, habitNames(otherList), "Journal")

		globals, err := svc.ListGlobal(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Drink water", "Walk"}, habitNames(globals))
	})
}

func Test_habitService_ListRecommended(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	user, water := seedUserWithHabit(t, db, "Drink water")
	walk := &model.Habit{Name: "Walk", IsGlobal: true}
	require.NoError(t, repository.NewGormHabitRepository().Create(ctx, db, walk))
	svc := NewHabitService(db, repository.NewGormUserRepository(), repository.NewGormHabitRepository())

	got, err := svc.ListRecommended(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Drink water", "Walk"}, habitNames(got))

	// アクティブに割り当て済みの習慣は除外される
	seedAssignment(t, db, 0, user.UserID, water.ID, day(2024, time.January, 1), 30)
	got, err = svc.ListRecommended(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Walk"}, habitNames(got))

	_, err = svc.ListRecommended(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func habitNames(habits []*model.Habit) []string {
	names := make([]string, 0, len(habits))
	for _, h := range habits {
		names = append(names, h.Name)
	}
	return names
}
