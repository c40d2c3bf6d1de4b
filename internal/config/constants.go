// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "habit_keep"
	AppVersion = "0.3.0"
)

// データベースドライバ
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// メール送信方式
const (
	MailerTypeLog = "log"
	MailerTypeSES = "ses"
)

// デフォルト設定値
const (
	DefaultServerPort                = ":8080"
	DefaultDatabaseDriver            = DriverPostgres
	DefaultLogLevel                  = "info"
	DefaultLogFormat                 = "json"
	DefaultTimezone                  = "UTC"
	DefaultScheduleLookupConcurrency = 4
	DefaultMailerType                = MailerTypeLog
)
