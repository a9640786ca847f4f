package domain

import (
	"time"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
)

// WeekHours расписание на неделю: рабочие часы каждого дня.
// Хранится как JSONB в колонке hours.
type WeekHours struct {
	Monday    schedule.DayHours `json:"monday"`
	Tuesday   schedule.DayHours `json:"tuesday"`
	Wednesday schedule.DayHours `json:"wednesday"`
	Thursday  schedule.DayHours `json:"thursday"`
	Friday    schedule.DayHours `json:"friday"`
	Saturday  schedule.DayHours `json:"saturday"`
	Sunday    schedule.DayHours `json:"sunday"`
}

// ForWeekday возвращает часы указанного дня недели
func (w WeekHours) ForWeekday(weekday time.Weekday) schedule.DayHours {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return schedule.DayHours{Enabled: false}
	}
}

// Days возвращает все дни недели в порядке понедельник..воскресенье
// вместе с их часами - для валидации и сериализации ответов
func (w WeekHours) Days() []struct {
	Weekday time.Weekday
	Hours   schedule.DayHours
} {
	return []struct {
		Weekday time.Weekday
		Hours   schedule.DayHours
	}{
		{time.Monday, w.Monday},
		{time.Tuesday, w.Tuesday},
		{time.Wednesday, w.Wednesday},
		{time.Thursday, w.Thursday},
		{time.Friday, w.Friday},
		{time.Saturday, w.Saturday},
		{time.Sunday, w.Sunday},
	}
}
