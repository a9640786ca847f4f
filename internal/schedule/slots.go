package schedule

import "time"

// Reservation занятый диапазон существующего бронирования в пределах дня.
// Отменённые бронирования обязан отфильтровать вызывающий код - у движка
// нет понятия статуса, любая переданная бронь блокирует слоты.
type Reservation struct {
	Start WallClock
	End   WallClock
}

// SlotsInput входные данные генерации слотов на один день
type SlotsInput struct {
	// Date день, на который считаются слоты
	Date time.Time
	// TotalDuration суммарная длительность бронирования в минутах
	TotalDuration int
	// DayHours действующие рабочие часы этого дня
	DayHours DayHours
	// Reservations активные бронирования на этот день
	Reservations []Reservation
	// MidnightMode включает особую генерацию для ночных интервалов
	MidnightMode bool
	// Now текущее время - для отсечения прошедших слотов при брони на сегодня
	Now time.Time
}

// AvailableSlots вычисляет упорядоченный список допустимых времён начала
// нового бронирования. Каждый интервал дня обрабатывается независимо,
// результаты конкатенируются. Если дата - сегодня, слоты раньше текущего
// времени отбрасываются.
//
// Интервалы дня предполагаются уже проверенными IntervalsAreValid -
// генератор их заново не валидирует.
func AvailableSlots(in SlotsInput) ([]WallClock, error) {
	if !in.DayHours.Enabled || in.TotalDuration <= 0 {
		return []WallClock{}, nil
	}

	busy, err := reservationsToRanges(in.Reservations)
	if err != nil {
		return nil, err
	}

	slots := make([]WallClock, 0)

	for _, iv := range in.DayHours.Intervals {
		special, err := NeedsSpecialMidnightHandling(iv, in.MidnightMode)
		if err != nil {
			return nil, err
		}

		var ivSlots []WallClock
		if special {
			ivSlots, err = crossingIntervalSlots(iv, in.TotalDuration)
		} else {
			ivSlots, err = regularIntervalSlots(iv, in.TotalDuration, busy)
		}
		if err != nil {
			return nil, err
		}

		slots = append(slots, ivSlots...)
	}

	if isSameDay(in.Date, in.Now) {
		slots, err = dropPastSlots(slots, in.Now)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// regularIntervalSlots обычная генерация: из интервала вычитаются занятые
// диапазоны, по каждому свободному промежутку идём шагом длительности.
// Закрытие "00:00" означает работу до конца дня (1440).
func regularIntervalSlots(iv Interval, duration int, busy []MinuteRange) ([]WallClock, error) {
	openMin, err := ParseWallClock(string(iv.Open), BoundaryOpen)
	if err != nil {
		return nil, err
	}
	closeMin, err := ParseWallClock(string(iv.Close), BoundaryClose)
	if err != nil {
		return nil, err
	}

	gaps := FreeGaps(MinuteRange{Start: openMin, End: closeMin}, busy)

	slots := make([]WallClock, 0)
	step := MinuteOffset(duration)

	for _, gap := range gaps {
		for start := gap.Start; start+step <= gap.End; start += step {
			slot, err := FormatMinutes(start)
			if err != nil {
				return nil, err
			}
			slots = append(slots, slot)
		}
	}

	return slots, nil
}

// crossingIntervalSlots генерация для ночного интервала: прямой шаг от
// открытия, кандидат проверяется на вместимость относительно точки перехода.
//
// Известное ограничение: до точки перехода существующие бронирования НЕ
// вычитаются - слоты до полуночи считаются свободными по построению.
// Поведение закреплено тестами, менять его без отдельной миграции нельзя.
func crossingIntervalSlots(iv Interval, duration int) ([]WallClock, error) {
	openMin, err := ParseWallClock(string(iv.Open), BoundaryOpen)
	if err != nil {
		return nil, err
	}
	closeMin, err := ParseWallClock(string(iv.Close), BoundaryOpen)
	if err != nil {
		return nil, err
	}

	slots := make([]WallClock, 0)
	step := MinuteOffset(duration)

	for start := openMin; ; start += step {
		end := start + step

		fits := false
		switch {
		case start < MinutesPerDay && end <= MinutesPerDay:
			// Целиком до полуночи - помещается безусловно
			fits = true
		case start < MinutesPerDay:
			// Пересекает полночь: хвост должен уложиться до закрытия
			fits = end-MinutesPerDay <= closeMin
		default:
			// Уже за полночью
			fits = end <= closeMin+MinutesPerDay
		}

		if !fits {
			break
		}

		normalized := start
		if normalized >= MinutesPerDay {
			normalized -= MinutesPerDay
		}
		slot, err := FormatMinutes(normalized)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func reservationsToRanges(reservations []Reservation) ([]MinuteRange, error) {
	busy := make([]MinuteRange, 0, len(reservations))
	for _, r := range reservations {
		start, err := ParseWallClock(string(r.Start), BoundaryOpen)
		if err != nil {
			return nil, err
		}
		end, err := ParseWallClock(string(r.End), BoundaryClose)
		if err != nil {
			return nil, err
		}
		busy = append(busy, MinuteRange{Start: start, End: end})
	}
	return busy, nil
}

// dropPastSlots отбрасывает слоты раньше текущего времени суток
func dropPastSlots(slots []WallClock, now time.Time) ([]WallClock, error) {
	nowMinute := MinuteOffset(now.Hour()*60 + now.Minute())

	filtered := make([]WallClock, 0, len(slots))
	for _, slot := range slots {
		m, err := ParseWallClock(string(slot), BoundaryOpen)
		if err != nil {
			return nil, err
		}
		if m >= nowMinute {
			filtered = append(filtered, slot)
		}
	}

	return filtered, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
