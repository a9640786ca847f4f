package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossesMidnight(t *testing.T) {
	tests := []struct {
		name     string
		interval Interval
		want     bool
	}{
		{name: "day interval", interval: Interval{Open: "09:00", Close: "18:00"}, want: false},
		{name: "night interval", interval: Interval{Open: "22:00", Close: "02:00"}, want: true},
		{name: "close at midnight runs to end of day", interval: Interval{Open: "18:00", Close: "00:00"}, want: false},
		{name: "late night crossing", interval: Interval{Open: "23:00", Close: "01:00"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CrossesMidnight(tt.interval)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNeedsSpecialMidnightHandling(t *testing.T) {
	crossing := Interval{Open: "22:00", Close: "02:00"}
	toEndOfDay := Interval{Open: "18:00", Close: "00:00"}

	t.Run("flag off always false", func(t *testing.T) {
		got, err := NeedsSpecialMidnightHandling(crossing, false)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("flag on with crossing interval", func(t *testing.T) {
		got, err := NeedsSpecialMidnightHandling(crossing, true)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("close at midnight never special", func(t *testing.T) {
		got, err := NeedsSpecialMidnightHandling(toEndOfDay, true)
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestIntervalsAreValid(t *testing.T) {
	tests := []struct {
		name      string
		intervals []Interval
		want      bool
	}{
		{name: "empty set", intervals: []Interval{}, want: true},
		{
			name:      "single interval",
			intervals: []Interval{{Open: "09:00", Close: "18:00"}},
			want:      true,
		},
		{
			name: "adjacent intervals are valid",
			intervals: []Interval{
				{Open: "09:00", Close: "12:00"},
				{Open: "12:00", Close: "14:00"},
			},
			want: true,
		},
		{
			name: "split shift with lunch break",
			intervals: []Interval{
				{Open: "09:00", Close: "13:00"},
				{Open: "16:00", Close: "20:00"},
			},
			want: true,
		},
		{
			name: "overlapping intervals rejected",
			intervals: []Interval{
				{Open: "09:00", Close: "13:00"},
				{Open: "12:00", Close: "15:00"},
			},
			want: false,
		},
		{
			name: "contained interval rejected",
			intervals: []Interval{
				{Open: "09:00", Close: "18:00"},
				{Open: "10:00", Close: "11:00"},
			},
			want: false,
		},
		{
			name: "two crossing intervals always conflict",
			intervals: []Interval{
				{Open: "22:00", Close: "02:00"},
				{Open: "23:00", Close: "03:00"},
			},
			want: false,
		},
		{
			name: "crossing plus morning that stays clear",
			intervals: []Interval{
				{Open: "22:00", Close: "02:00"},
				{Open: "09:00", Close: "12:00"},
			},
			want: true,
		},
		{
			name: "crossing plus interval opening inside its tail",
			intervals: []Interval{
				{Open: "22:00", Close: "02:00"},
				{Open: "01:00", Close: "05:00"},
			},
			want: false,
		},
		{
			name: "crossing plus interval opening inside its head",
			intervals: []Interval{
				{Open: "22:00", Close: "02:00"},
				{Open: "23:00", Close: "23:30"},
			},
			want: false,
		},
		{
			name: "day interval plus evening to end of day",
			intervals: []Interval{
				{Open: "09:00", Close: "13:00"},
				{Open: "18:00", Close: "00:00"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntervalsAreValid(tt.intervals)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntervalsAreValid_Symmetric(t *testing.T) {
	// Результат не зависит от порядка интервалов
	pairs := [][2]Interval{
		{{Open: "09:00", Close: "13:00"}, {Open: "12:00", Close: "15:00"}},
		{{Open: "09:00", Close: "12:00"}, {Open: "12:00", Close: "14:00"}},
		{{Open: "22:00", Close: "02:00"}, {Open: "09:00", Close: "12:00"}},
		{{Open: "22:00", Close: "02:00"}, {Open: "01:00", Close: "05:00"}},
	}

	for _, pair := range pairs {
		forward, err := IntervalsAreValid([]Interval{pair[0], pair[1]})
		require.NoError(t, err)
		backward, err := IntervalsAreValid([]Interval{pair[1], pair[0]})
		require.NoError(t, err)
		assert.Equal(t, forward, backward, "asymmetric result for %v", pair)
	}
}

func TestIntervalsAreValid_MalformedInterval(t *testing.T) {
	_, err := IntervalsAreValid([]Interval{
		{Open: "9:00", Close: "13:00"},
		{Open: "14:00", Close: "18:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
