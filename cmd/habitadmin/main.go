// cmd/habitadmin/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"habit_keep/internal/config"
	"habit_keep/internal/logging"
	"habit_keep/internal/repository"

	"github.com/alecthomas/kong"
	"gorm.io/gorm"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Directory containing config.yaml." type:"path" default:"configs" env:"APP_CONFIG_PATH"`

	Migrate         MigrateCmd         `cmd:"" help:"Create or update the database schema."`
	Seed            SeedCmd            `cmd:"" help:"Insert the default global habits (idempotent)."`
	CheckDuplicates CheckDuplicatesCmd `cmd:"" name:"check-duplicates" help:"Report users with more than one active assignment for the same habit."`
}

// adminContext は各コマンドに渡される共通の依存
type adminContext struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitadmin"),
		kong.Description("habit_keep administration tool"),
		kong.UsageOnError(),
		kong.Vars{"version": config.AppVersion},
	)

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx *kong.Context) error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	// migrate コマンド以外でスキーマを勝手に変更しない
	cfg.Database.AutoMigrate = false

	logger, closer := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: "text",
		AppEnv: os.Getenv("APP_ENV"),
	})
	defer closer.Close()
	slog.SetDefault(logger)

	db, err := repository.NewDB(cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	return ctx.Run(&adminContext{cfg: cfg, logger: logger, db: db})
}
