package schedule

import "sort"

// MinuteRange полуинтервал [Start, End) в минутах с начала суток
type MinuteRange struct {
	Start MinuteOffset
	End   MinuteOffset
}

// FreeGaps вычисляет свободные промежутки окна window, не занятые ни одним
// из диапазонов busy. Занятые диапазоны могут приходить в любом порядке -
// сортировка обязательна. Диапазоны вне окна отбрасываются, пересекающие
// границу окна обрезаются по ней.
//
// Гарантии: промежутки не пересекаются, идут в хронологическом порядке,
// вместе с обрезанными занятыми диапазонами точно восстанавливают окно.
// Промежутки нулевой длины не возвращаются.
func FreeGaps(window MinuteRange, busy []MinuteRange) []MinuteRange {
	// Оставляем только диапазоны, пересекающие окно
	relevant := make([]MinuteRange, 0, len(busy))
	for _, b := range busy {
		if b.End > window.Start && b.Start < window.End {
			relevant = append(relevant, b)
		}
	}

	sort.Slice(relevant, func(i, j int) bool {
		return relevant[i].Start < relevant[j].Start
	})

	gaps := make([]MinuteRange, 0)
	nextAvailable := window.Start

	for _, b := range relevant {
		if b.Start > nextAvailable {
			end := b.Start
			if end > window.End {
				end = window.End
			}
			gaps = append(gaps, MinuteRange{Start: nextAvailable, End: end})
		}
		if b.End > nextAvailable {
			nextAvailable = b.End
		}
	}

	if nextAvailable < window.End {
		gaps = append(gaps, MinuteRange{Start: nextAvailable, End: window.End})
	}

	return gaps
}
