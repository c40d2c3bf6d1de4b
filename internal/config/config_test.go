package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	// config.yaml が存在しないディレクトリ
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, DefaultScheduleLookupConcurrency, cfg.App.ScheduleLookupConcurrency)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, MailerTypeLog, cfg.Mailer.Type)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: ":9090"
database:
  driver: sqlite
  url: "file::memory:?cache=shared"
app:
  timezone: Asia/Tokyo
  schedule_lookup_concurrency: 2
log:
  level: debug
`)
	t.Setenv("APP_SERVER_PORT", ":7070")
	t.Setenv("APP_DATABASE_URL", "file:habit.db")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:habit.db", cfg.Database.URL)
	assert.Equal(t, 2, cfg.App.ScheduleLookupConcurrency)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Asia/Tokyo", cfg.Location().String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "異常系: 未対応のドライバ", body: "database:\n  driver: oracle\n"},
		{name: "異常系: 不正なタイムゾーン", body: "app:\n  timezone: Mars/Olympus\n"},
		{name: "異常系: 並列数が0", body: "app:\n  schedule_lookup_concurrency: 0\n"},
		{name: "異常系: 未対応のメーラー", body: "mailer:\n  type: smtp\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
