package service

import (
	"time"

	"habit_keep/internal/config"
	"habit_keep/internal/model"
)

// Clock は「今日」の判定に使う現在時刻とタイムゾーンです。
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func NewClock(cfg *config.Config) Clock {
	return Clock{Now: time.Now, Location: cfg.Location()}
}

// FixedClock は常に同じ時刻を返す Clock (テスト・バッチ用)
func FixedClock(t time.Time, loc *time.Location) Clock {
	return Clock{Now: func() time.Time { return t }, Location: loc}
}

func (c Clock) Today() model.Date {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return model.Today(now(), c.Location)
}
