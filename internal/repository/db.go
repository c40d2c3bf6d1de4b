package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"habit_keep/internal/config"
	"habit_keep/internal/model"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// dialector は設定されたドライバに対応する GORM Dialector を返します。
func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(driver) {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverMySQL:
		return mysql.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// NewGormLogger は slog を利用する GORM Logger を生成します。
func NewGormLogger(appLogger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	opts := []slogGorm.Option{
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
	}
	if cfg.Database.SlowThreshold > 0 {
		opts = append(opts, slogGorm.WithSlowThreshold(cfg.Database.SlowThreshold))
	}
	return slogGorm.New(opts...).LogMode(gormLogLevel)
}

// NewDB はデータベースに接続し、コネクションプールを設定します。
func NewDB(cfg *config.Config, appLogger *slog.Logger) (*gorm.DB, error) {
	dial, err := dialector(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		appLogger.Error("Invalid database configuration", slog.Any("error", err))
		return nil, err
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: NewGormLogger(appLogger, cfg),
		// 一意制約違反を gorm.ErrDuplicatedKey に変換
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err), slog.String("driver", cfg.Database.Driver))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	appLogger.Info("Database connection established with GORM", slog.String("driver", cfg.Database.Driver))

	if cfg.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			appLogger.Error("Error migrating database schema", slog.Any("error", err))
			sqlDB.Close()
			return nil, err
		}
		appLogger.Info("Database schema migrated")
	}

	return db, nil
}

// Models はスキーマ管理対象のモデル一覧です。
func Models() []any {
	return []any{
		&model.User{},
		&model.Habit{},
		&model.Assignment{},
		&model.CompletionRecord{},
	}
}

// Migrate はテーブルとインデックスを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}
