package schedule

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeGaps(t *testing.T) {
	window := MinuteRange{Start: 540, End: 1080} // 09:00 - 18:00

	tests := []struct {
		name string
		busy []MinuteRange
		want []MinuteRange
	}{
		{
			name: "no occupied ranges",
			busy: nil,
			want: []MinuteRange{{Start: 540, End: 1080}},
		},
		{
			name: "one booking in the middle",
			busy: []MinuteRange{{Start: 600, End: 660}},
			want: []MinuteRange{{Start: 540, End: 600}, {Start: 660, End: 1080}},
		},
		{
			name: "booking at window start leaves no leading gap",
			busy: []MinuteRange{{Start: 540, End: 600}},
			want: []MinuteRange{{Start: 600, End: 1080}},
		},
		{
			name: "booking at window end leaves no trailing gap",
			busy: []MinuteRange{{Start: 1020, End: 1080}},
			want: []MinuteRange{{Start: 540, End: 1020}},
		},
		{
			name: "unsorted input is sorted internally",
			busy: []MinuteRange{{Start: 900, End: 960}, {Start: 600, End: 660}},
			want: []MinuteRange{
				{Start: 540, End: 600},
				{Start: 660, End: 900},
				{Start: 960, End: 1080},
			},
		},
		{
			name: "overlapping bookings merge",
			busy: []MinuteRange{{Start: 600, End: 720}, {Start: 660, End: 780}},
			want: []MinuteRange{{Start: 540, End: 600}, {Start: 780, End: 1080}},
		},
		{
			name: "booking outside window ignored",
			busy: []MinuteRange{{Start: 60, End: 120}, {Start: 1200, End: 1260}},
			want: []MinuteRange{{Start: 540, End: 1080}},
		},
		{
			name: "booking spanning window start is clipped",
			busy: []MinuteRange{{Start: 480, End: 600}},
			want: []MinuteRange{{Start: 600, End: 1080}},
		},
		{
			name: "booking covering whole window",
			busy: []MinuteRange{{Start: 480, End: 1140}},
			want: []MinuteRange{},
		},
		{
			name: "adjacent bookings produce no zero-length gap",
			busy: []MinuteRange{{Start: 600, End: 660}, {Start: 660, End: 720}},
			want: []MinuteRange{{Start: 540, End: 600}, {Start: 720, End: 1080}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeGaps(window, tt.busy)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Свободные промежутки вместе с обрезанными занятыми диапазонами должны
// в точности восстанавливать окно: без дыр и без наложений.
func TestFreeGaps_PartitionsWindow(t *testing.T) {
	window := MinuteRange{Start: 480, End: 1200}
	busy := []MinuteRange{
		{Start: 1100, End: 1300}, // пересекает конец окна
		{Start: 500, End: 560},
		{Start: 400, End: 500}, // пересекает начало окна
		{Start: 700, End: 800},
		{Start: 750, End: 820}, // частично дублирует предыдущий
	}

	gaps := FreeGaps(window, busy)

	// Собираем покрытие: промежутки + обрезанные по окну занятые диапазоны
	covered := make([]MinuteRange, 0)
	covered = append(covered, gaps...)
	for _, b := range busy {
		start, end := b.Start, b.End
		if start < window.Start {
			start = window.Start
		}
		if end > window.End {
			end = window.End
		}
		if start < end {
			covered = append(covered, MinuteRange{Start: start, End: end})
		}
	}

	sort.Slice(covered, func(i, j int) bool { return covered[i].Start < covered[j].Start })

	cursor := window.Start
	for _, r := range covered {
		require.LessOrEqual(t, r.Start, cursor, "hole before %v", r)
		if r.End > cursor {
			cursor = r.End
		}
	}
	assert.Equal(t, window.End, cursor, "window not fully covered")

	// Сами промежутки упорядочены и не пересекаются между собой
	for i := 1; i < len(gaps); i++ {
		assert.True(t, gaps[i-1].End <= gaps[i].Start)
	}
	for _, g := range gaps {
		assert.Less(t, g.Start, g.End, "zero-length gap emitted")
	}
}
