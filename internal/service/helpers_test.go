package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"habit_keep/internal/config"
	"habit_keep/internal/middleware"
	"habit_keep/internal/model"
	"habit_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for testing")
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// testContext は出力を捨てるロガーを持つコンテキスト
func testContext() context.Context {
	return middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testConfig(concurrency int) *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Timezone:                  "UTC",
			ScheduleLookupConcurrency: concurrency,
		},
	}
}

// seedUserWithHabit はユーザーとグローバル習慣を作成します
func seedUserWithHabit(t *testing.T, db *gorm.DB, habitName string) (*model.User, *model.Habit) {
	t.Helper()
	ctx := testContext()
	user := &model.User{
		UserID:       uuid.New(),
		Name:         "Hanako",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Avatar:       model.DefaultAvatar,
	}
	require.NoError(t, repository.NewGormUserRepository().Create(ctx, db, user))
	habit := &model.Habit{Name: habitName, IsGlobal: true}
	require.NoError(t, repository.NewGormHabitRepository().Create(ctx, db, habit))
	return user, habit
}

func seedAssignment(t *testing.T, db *gorm.DB, id uint, userID uuid.UUID, habitID uint, start model.Date, goal int) *model.Assignment {
	t.Helper()
	a := &model.Assignment{
		ID:        id,
		UserID:    userID,
		HabitID:   habitID,
		Frequency: model.FrequencyDaily,
		Goal:      goal,
		StartDate: start,
		Active:    true,
	}
	require.NoError(t, repository.NewGormAssignmentRepository().Create(testContext(), db, a))
	return a
}

func day(y int, m time.Month, d int) model.Date {
	return model.NewDate(y, m, d)
}
