package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "正常系: 通常の日付", input: "2024-03-05", want: "2024-03-05"},
		{name: "正常系: うるう日", input: "2024-02-29", want: "2024-02-29"},
		{name: "異常系: 存在しない日付", input: "2023-02-29", wantErr: true},
		{name: "異常系: 形式違い", input: "05/03/2024", wantErr: true},
		{name: "異常系: 時刻付き", input: "2024-03-05T10:00:00Z", wantErr: true},
		{name: "異常系: 空文字", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_DaysSince(t *testing.T) {
	a := NewDate(2024, time.March, 1)
	b := NewDate(2024, time.February, 27)
	assert.Equal(t, 3, a.DaysSince(b))
	assert.Equal(t, -3, b.DaysSince(a))
	assert.Equal(t, 0, a.DaysSince(a))
}

func TestToday_UsesLocation(t *testing.T) {
	// UTC 2024-01-01 20:00 は Asia/Tokyo では 2024-01-02
	now := time.Date(2024, time.January, 1, 20, 0, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "2024-01-02", Today(now, tokyo).String())
	assert.Equal(t, "2024-01-01", Today(now, nil).String())
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date  Date  `json:"date"`
		Until *Date `json:"until,omitempty"`
	}

	b, err := json.Marshal(payload{Date: NewDate(2024, time.March, 5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-05"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-12-31","until":"2025-01-02"}`), &p))
	assert.Equal(t, "2024-12-31", p.Date.String())
	require.NotNil(t, p.Until)
	assert.Equal(t, "2025-01-02", p.Until.String())

	err = json.Unmarshal([]byte(`{"date":"31-12-2024"}`), &p)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_ScanValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-03-05"))
	assert.Equal(t, "2024-03-05", d.String())

	require.NoError(t, d.Scan([]byte("2024-04-01")))
	assert.Equal(t, "2024-04-01", d.String())

	require.NoError(t, d.Scan(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-05-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := NewDate(2024, time.March, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", v)
}
