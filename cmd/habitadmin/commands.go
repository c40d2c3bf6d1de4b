package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"habit_keep/internal/middleware"
	"habit_keep/internal/repository"
	"habit_keep/internal/service"
)

// errDuplicatesFound は check-duplicates が重複を検出した場合に返す (終了コード 1)
var errDuplicatesFound = errors.New("duplicate active assignments found")

type MigrateCmd struct{}

func (c *MigrateCmd) Run(app *adminContext) error {
	if err := repository.Migrate(app.db); err != nil {
		return err
	}
	app.logger.Info("Database schema migrated", "driver", app.cfg.Database.Driver)
	return nil
}

type SeedCmd struct {
	DryRun bool `help:"List the seed habits without writing them." name:"dry-run"`
}

func (c *SeedCmd) Run(app *adminContext) error {
	if c.DryRun {
		for _, s := range repository.DefaultGlobalHabits {
			fmt.Printf("%s\t%s\t%s\n", s.Name, s.Category, s.Description)
		}
		return nil
	}
	ctx := middleware.WithLogger(context.Background(), app.logger)
	n, err := repository.SeedGlobalHabits(ctx, app.db, repository.NewGormHabitRepository(), repository.DefaultGlobalHabits)
	if err != nil {
		return err
	}
	app.logger.Info("Seeding finished", "inserted", n, "total", len(repository.DefaultGlobalHabits))
	return nil
}

type CheckDuplicatesCmd struct{}

func (c *CheckDuplicatesCmd) Run(app *adminContext) error {
	ctx := middleware.WithLogger(context.Background(), app.logger)
	svc := service.NewAssignmentService(app.db,
		repository.NewGormUserRepository(),
		repository.NewGormHabitRepository(),
		repository.NewGormAssignmentRepository(),
		service.NewClock(app.cfg),
	)
	dups, err := svc.FindDuplicates(ctx)
	if err != nil {
		return err
	}
	if len(dups) == 0 {
		fmt.Println("no duplicate active assignments")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USER_ID\tHABIT_ID\tACTIVE")
	for _, d := range dups {
		fmt.Fprintf(w, "%s\t%d\t%d\n", d.UserID, d.HabitID, d.Count)
	}
	w.Flush()
	return fmt.Errorf("%w: %d pair(s)", errDuplicatesFound, len(dups))
}
