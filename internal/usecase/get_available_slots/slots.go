package get_available_slots

import (
	"sort"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
)

// reservationsFor собирает занятые диапазоны одного сотрудника.
// Отменённые бронирования отсекаются здесь - движок расписания
// по контракту получает только активные.
func reservationsFor(bookings []*domain.Booking, employeeID int64) []schedule.Reservation {
	reservations := make([]schedule.Reservation, 0)

	for _, b := range bookings {
		if b.EmployeeID != employeeID || !b.IsActive() {
			continue
		}
		reservations = append(reservations, schedule.Reservation{
			Start: b.StartTime,
			End:   b.EndTime,
		})
	}

	return reservations
}

// filterByID оставляет из списка одного сотрудника с указанным ID
func filterByID(employees []*domain.Employee, id int64) []*domain.Employee {
	for _, e := range employees {
		if e.ID == id {
			return []*domain.Employee{e}
		}
	}
	return nil
}

// sortSlots упорядочивает объединение слотов по минуте начала
func sortSlots(union map[schedule.WallClock]struct{}) ([]schedule.WallClock, error) {
	slots := make([]schedule.WallClock, 0, len(union))
	minutes := make(map[schedule.WallClock]schedule.MinuteOffset, len(union))

	for slot := range union {
		m, err := schedule.ParseWallClock(string(slot), schedule.BoundaryOpen)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
		minutes[slot] = m
	}

	sort.Slice(slots, func(i, j int) bool {
		return minutes[slots[i]] < minutes[slots[j]]
	})

	return slots, nil
}
