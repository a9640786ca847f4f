package schedule

// Interval один непрерывный рабочий период в пределах дня.
// Может переходить через полночь (открытие численно позже закрытия,
// например 22:00 -> 02:00). Закрытие ровно в "00:00" переходом не считается -
// такой интервал просто работает до конца дня.
type Interval struct {
	Open  WallClock `json:"open"`
	Close WallClock `json:"close"`
}

// DayHours рабочие часы одного дня недели.
// Если Enabled = false, интервалы игнорируются - день полностью закрыт.
// Интервалы одного дня обязаны попарно не пересекаться (проверяется
// IntervalsAreValid перед сохранением, не при чтении).
type DayHours struct {
	Enabled   bool       `json:"enabled"`
	Intervals []Interval `json:"intervals"`
}

// CrossesMidnight сообщает, переходит ли интервал через границу суток.
// Сравнение численное, без контекста границ: открытие позже закрытия.
// Закрытие в "00:00" - это работа до конца дня, не переход.
func CrossesMidnight(iv Interval) (bool, error) {
	if iv.Close == "00:00" {
		return false, nil
	}

	open, err := ParseWallClock(string(iv.Open), BoundaryOpen)
	if err != nil {
		return false, err
	}
	close, err := ParseWallClock(string(iv.Close), BoundaryOpen)
	if err != nil {
		return false, err
	}

	return open > close, nil
}

// NeedsSpecialMidnightHandling сообщает, требует ли интервал особой генерации
// слотов через полночь. Фича включается отдельно на каждый бизнес: без флага
// поведение генерации не меняется, чтобы не удивлять существующих арендаторов.
func NeedsSpecialMidnightHandling(iv Interval, midnightMode bool) (bool, error) {
	if !midnightMode || iv.Close == "00:00" {
		return false, nil
	}
	return CrossesMidnight(iv)
}

// IntervalsAreValid проверяет, что интервалы одного дня попарно не
// пересекаются. Для 0 или 1 интервала всегда true.
//
// Правила пересечения:
//   - оба интервала переходят через полночь -> всегда конфликт
//     (сознательное упрощение: две ночные смены в один день не поддерживаются);
//   - переходит ровно один -> конфликт, если открытие второго попадает
//     в один из двух числовых диапазонов ночного: [open, 1440) или [0, close);
//   - не переходит ни один -> классическая проверка, смежные интервалы
//     (закрытие одного равно открытию другого) пересечением не считаются.
func IntervalsAreValid(intervals []Interval) (bool, error) {
	if len(intervals) < 2 {
		return true, nil
	}

	for i := 0; i < len(intervals); i++ {
		for j := i + 1; j < len(intervals); j++ {
			overlap, err := intervalsOverlap(intervals[i], intervals[j])
			if err != nil {
				return false, err
			}
			if overlap {
				return false, nil
			}
		}
	}

	return true, nil
}

func intervalsOverlap(a, b Interval) (bool, error) {
	aCrosses, err := CrossesMidnight(a)
	if err != nil {
		return false, err
	}
	bCrosses, err := CrossesMidnight(b)
	if err != nil {
		return false, err
	}

	if aCrosses && bCrosses {
		return true, nil
	}

	if aCrosses || bCrosses {
		crossing, other := a, b
		if bCrosses {
			crossing, other = b, a
		}

		crossingOpen, err := ParseWallClock(string(crossing.Open), BoundaryOpen)
		if err != nil {
			return false, err
		}
		crossingClose, err := ParseWallClock(string(crossing.Close), BoundaryOpen)
		if err != nil {
			return false, err
		}
		otherOpen, err := ParseWallClock(string(other.Open), BoundaryOpen)
		if err != nil {
			return false, err
		}

		// Ночной интервал занимает два числовых диапазона: [open, 1440) и [0, close)
		return otherOpen < crossingClose || otherOpen >= crossingOpen, nil
	}

	aOpen, err := ParseWallClock(string(a.Open), BoundaryOpen)
	if err != nil {
		return false, err
	}
	aClose, err := ParseWallClock(string(a.Close), BoundaryClose)
	if err != nil {
		return false, err
	}
	bOpen, err := ParseWallClock(string(b.Open), BoundaryOpen)
	if err != nil {
		return false, err
	}
	bClose, err := ParseWallClock(string(b.Close), BoundaryClose)
	if err != nil {
		return false, err
	}

	return !(aClose <= bOpen || bClose <= aOpen), nil
}
