package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWeekdays(t *testing.T) {
	got, err := NormalizeWeekdays([]string{"Fri", "monday", " WED ", "mon"})
	require.NoError(t, err)
	assert.Equal(t, Weekdays{"monday", "wednesday", "friday"}, got)

	_, err = NormalizeWeekdays([]string{"lunes"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err = NormalizeWeekdays(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWeekdays_ScanValue(t *testing.T) {
	v, err := Weekdays{"monday", "friday"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "monday,friday", v)

	v, err = Weekdays(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var w Weekdays
	require.NoError(t, w.Scan("monday, friday"))
	assert.Equal(t, Weekdays{"monday", "friday"}, w)
	assert.True(t, w.Contains(time.Friday))
	assert.False(t, w.Contains(time.Sunday))

	require.NoError(t, w.Scan(""))
	assert.Nil(t, w)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 0, Percentage(5, 0))
	assert.Equal(t, 100, Percentage(3, 3))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 50, Percentage(1, 2))
	assert.Equal(t, 13, Percentage(1, 8)) // 12.5 は切り上げ
}

func TestCompletionRecord_State(t *testing.T) {
	var missing *CompletionRecord
	assert.Equal(t, StateUnmarked, missing.State())
	assert.Equal(t, StateDone, (&CompletionRecord{Realized: RealizedDone}).State())
	assert.Equal(t, StateNotDone, (&CompletionRecord{Realized: RealizedNotDone}).State())
}
