package schedule

// EmployeeDay состояние одного сотрудника на конкретную дату:
// уже разрешённые действующие часы и его активные бронирования.
type EmployeeDay struct {
	EmployeeID int64
	// Hours действующие часы дня, nil = в этот день не работает
	Hours *DayHours
	// Reservations активные бронирования сотрудника на эту дату.
	// Контракт: отменённые бронирования исключаются вызывающим кодом,
	// здесь по статусу ничего не фильтруется.
	Reservations []Reservation
}

// FindAvailableEmployee находит первого сотрудника, свободного для слота
// [slot, slot+totalDuration). Кандидаты проверяются в переданном порядке -
// первый подошедший побеждает, балансировки нагрузки нет.
//
// Проверки: слот целиком лежит хотя бы в одном рабочем интервале дня
// (простое числовое вхождение, без особой обработки ночных интервалов -
// проверка уже, чем полный генератор слотов) и не пересекается ни с одним
// бронированием (строгие неравенства, смежность пересечением не считается).
//
// Возвращает (0, false) если никто не свободен - вызывающий код обязан
// отдать пользователю ошибку, а не подбирать слот молча.
func FindAvailableEmployee(candidates []EmployeeDay, slot WallClock, totalDuration int) (int64, bool, error) {
	slotStart, err := ParseWallClock(string(slot), BoundaryOpen)
	if err != nil {
		return 0, false, err
	}
	slotEnd := slotStart + MinuteOffset(totalDuration)

	for _, c := range candidates {
		if c.Hours == nil {
			continue
		}

		within, err := slotWithinHours(slotStart, slotEnd, c.Hours.Intervals)
		if err != nil {
			return 0, false, err
		}
		if !within {
			continue
		}

		free, err := slotFree(slotStart, slotEnd, c.Reservations)
		if err != nil {
			return 0, false, err
		}
		if free {
			return c.EmployeeID, true, nil
		}
	}

	return 0, false, nil
}

// RangeWithinHours проверяет, что диапазон [start, end) целиком лежит хотя бы
// в одном интервале дня. Выключенный день не вмещает ничего. Используется при
// смене расписания: существующие бронирования не должны выпасть из новых часов.
func RangeWithinHours(start, end WallClock, hours DayHours) (bool, error) {
	if !hours.Enabled {
		return false, nil
	}

	startMin, err := ParseWallClock(string(start), BoundaryOpen)
	if err != nil {
		return false, err
	}
	endMin, err := ParseWallClock(string(end), BoundaryClose)
	if err != nil {
		return false, err
	}

	return slotWithinHours(startMin, endMin, hours.Intervals)
}

func slotWithinHours(slotStart, slotEnd MinuteOffset, intervals []Interval) (bool, error) {
	for _, iv := range intervals {
		open, err := ParseWallClock(string(iv.Open), BoundaryOpen)
		if err != nil {
			return false, err
		}
		close, err := ParseWallClock(string(iv.Close), BoundaryClose)
		if err != nil {
			return false, err
		}

		if slotStart >= open && slotEnd <= close {
			return true, nil
		}
	}
	return false, nil
}

func slotFree(slotStart, slotEnd MinuteOffset, reservations []Reservation) (bool, error) {
	for _, r := range reservations {
		start, err := ParseWallClock(string(r.Start), BoundaryOpen)
		if err != nil {
			return false, err
		}
		end, err := ParseWallClock(string(r.End), BoundaryClose)
		if err != nil {
			return false, err
		}

		if start < slotEnd && end > slotStart {
			return false, nil
		}
	}
	return true, nil
}
