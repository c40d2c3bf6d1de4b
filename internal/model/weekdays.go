package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ParseWeekday は曜日名(英語、省略形可、大文字小文字無視)を time.Weekday にします
func ParseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	return wd, ok
}

// Weekdays は曜日の集合。DB にはカンマ区切りの小文字フルネームで保存します。
type Weekdays []string

// NormalizeWeekdays は重複を除き、日曜始まりの順に並べたフルネームの集合を返します
func NormalizeWeekdays(names []string) (Weekdays, error) {
	var seen [7]bool
	for _, n := range names {
		wd, ok := ParseWeekday(n)
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, n)
		}
		seen[wd] = true
	}
	var out Weekdays
	for i, ok := range seen {
		if ok {
			out = append(out, strings.ToLower(time.Weekday(i).String()))
		}
	}
	return out, nil
}

func (w Weekdays) Contains(day time.Weekday) bool {
	for _, n := range w {
		if wd, ok := ParseWeekday(n); ok && wd == day {
			return true
		}
	}
	return false
}

func (w Weekdays) Value() (driver.Value, error) {
	if len(w) == 0 {
		return nil, nil
	}
	return strings.Join(w, ","), nil
}

func (w *Weekdays) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*w = nil
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("model.Weekdays: cannot scan %T", src)
	}
	if strings.TrimSpace(s) == "" {
		*w = nil
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(Weekdays, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*w = out
	return nil
}
