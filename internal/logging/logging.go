// internal/logging/logging.go
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options は slog ロガーの構築設定
type Options struct {
	Level      string
	Format     string // json | text
	AppEnv     string // dev の場合は tint を使う
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ParseLevel は設定文字列を slog.Level に変換します。不明な値は Info として ok=false を返します。
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New はアプリケーションのロガーを生成します。
// 返り値の io.Closer はログファイル出力時のみ意味を持ち、それ以外は no-op です。
func New(opts Options) (*slog.Logger, io.Closer) {
	logLevel := new(slog.LevelVar)
	lvl, ok := ParseLevel(opts.Level)
	logLevel.Set(lvl)

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stderr, rotator)
		closer = rotator
	}

	var handler slog.Handler
	if strings.ToLower(opts.AppEnv) == "dev" || strings.ToLower(opts.Format) == "text" {
		handler = tint.NewHandler(out, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
			NoColor:    opts.File != "",
		})
	} else {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	if !ok {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", opts.Level))
	}
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
