package repository

import (
	"context"
	"errors"
	"fmt"

	"habit_keep/internal/middleware"
	"habit_keep/internal/model"

	"gorm.io/gorm"
)

// GlobalHabitSeed はシステム提供の習慣の初期データ
type GlobalHabitSeed struct {
	Name        string
	Description string
	Category    string
}

var DefaultGlobalHabits = []GlobalHabitSeed{
	{Name: "Drink water", Description: "Drink 8 glasses of water", Category: "health"},
	{Name: "Walk", Description: "Walk for 30 minutes", Category: "health"},
	{Name: "Read", Description: "Read 20 pages", Category: "learning"},
	{Name: "Meditate", Description: "Meditate for 10 minutes", Category: "mindfulness"},
	{Name: "Sleep early", Description: "Go to bed before 23:00", Category: "health"},
	{Name: "Journal", Description: "Write three lines about your day", Category: "mindfulness"},
	{Name: "Stretch", Description: "Stretch for 5 minutes after waking up", Category: "fitness"},
	{Name: "Study a language", Description: "Practice vocabulary for 15 minutes", Category: "learning"},
}

// SeedGlobalHabits は未登録のグローバル習慣を名前で判定して投入し、投入件数を返します。
// 何度実行しても重複しません。
func SeedGlobalHabits(ctx context.Context, db *gorm.DB, repo HabitRepository, seeds []GlobalHabitSeed) (int, error) {
	logger := middleware.GetLogger(ctx)
	inserted := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range seeds {
			_, err := repo.FindGlobalByName(ctx, tx, s.Name)
			if err == nil {
				continue
			}
			if !errors.Is(err, model.ErrNotFound) {
				return err
			}
			desc, category := s.Description, s.Category
			habit := &model.Habit{
				Name:        s.Name,
				Description: &desc,
				Category:    &category,
				IsGlobal:    true,
			}
			if err := repo.Create(ctx, tx, habit); err != nil {
				return err
			}
			logger.Info("Seeded global habit", "habit_id", habit.ID, "name", habit.Name)
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("repository.SeedGlobalHabits: %w", err)
	}
	return inserted, nil
}
