package models

import (
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
)

// Request модели

// UpdateBusinessHoursRequest запрос на обновление расписания бизнеса
type UpdateBusinessHoursRequest struct {
	UserID              int64            `json:"userId"`
	BusinessID          int64            `json:"businessId"`
	MidnightModeEnabled bool             `json:"midnightModeEnabled"`
	Hours               domain.WeekHours `json:"hours"`
}

// UpdateEmployeeHoursRequest запрос на обновление личного расписания сотрудника.
// Hours = nil сбрасывает переопределение, сотрудник возвращается к часам бизнеса.
type UpdateEmployeeHoursRequest struct {
	UserID     int64             `json:"userId"`
	BusinessID int64             `json:"businessId"`
	EmployeeID int64             `json:"employeeId"`
	Hours      *domain.WeekHours `json:"hours"`
}

// Response модели

// BusinessHoursResponse ответ с расписанием бизнеса
type BusinessHoursResponse struct {
	BusinessID          int64            `json:"businessId"`
	MidnightModeEnabled bool             `json:"midnightModeEnabled"`
	Hours               domain.WeekHours `json:"hours"`
}

// EmployeeHoursResponse ответ с действующим расписанием сотрудника
type EmployeeHoursResponse struct {
	EmployeeID int64             `json:"employeeId"`
	BusinessID int64             `json:"businessId"`
	Hours      *domain.WeekHours `json:"hours,omitempty"` // nil = наследует часы бизнеса
}
