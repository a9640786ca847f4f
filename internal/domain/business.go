package domain

import (
	"time"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
)

// Business represents a tenant: a company taking appointments
type Business struct {
	ID   int64
	Name string
	Slug string
	// MidnightModeEnabled включает особую генерацию слотов для ночных
	// интервалов. Фича опциональна на каждый бизнес: без флага поведение
	// генерации не меняется.
	MidnightModeEnabled bool
	// Hours часы работы бизнеса по умолчанию, действуют для всех
	// сотрудников без личного переопределения
	Hours      WeekHours
	ManagerIDs []int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsManager returns true if the user manages this business
func (b *Business) IsManager(userID int64) bool {
	for _, id := range b.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Employee represents a bookable resource of a business
type Employee struct {
	ID         int64
	BusinessID int64
	Name       string
	Active     bool
	// Hours личное переопределение часов, nil = использовать часы бизнеса
	Hours     *WeekHours
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveHours разрешает действующие часы сотрудника на день недели:
// личное переопределение, если оно есть и включено для этого дня,
// иначе часы бизнеса. nil = сотрудник в этот день не работает.
func (e *Employee) EffectiveHours(business *Business, weekday time.Weekday) *schedule.DayHours {
	var override *schedule.DayHours
	if e.Hours != nil {
		day := e.Hours.ForWeekday(weekday)
		override = &day
	}
	return schedule.ResolveEffectiveHours(override, business.Hours.ForWeekday(weekday))
}

// Service represents a bookable service offered by a business
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	DurationMinutes int
	// BufferMinutes технологический перерыв после услуги, входит в занимаемое время
	BufferMinutes int
	Price         float64
	// EmployeeIDs сотрудники, допущенные к выполнению услуги
	EmployeeIDs []int64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AllowsEmployee returns true if the employee is qualified for this service
func (s *Service) AllowsEmployee(employeeID int64) bool {
	for _, id := range s.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// TotalOccupiedMinutes суммарное занимаемое время набора услуг
// (длительность + буфер каждой)
func TotalOccupiedMinutes(services []*Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMinutes + s.BufferMinutes
	}
	return total
}

// QualifiedForAll оставляет сотрудников, допущенных к КАЖДОЙ из услуг
// (полное пересечение списков, не объединение). Порядок сохраняется.
func QualifiedForAll(employees []*Employee, services []*Service) []*Employee {
	qualified := make([]*Employee, 0, len(employees))
	for _, e := range employees {
		ok := true
		for _, s := range services {
			if !s.AllowsEmployee(e.ID) {
				ok = false
				break
			}
		}
		if ok {
			qualified = append(qualified, e)
		}
	}
	return qualified
}
