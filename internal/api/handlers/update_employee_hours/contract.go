package update_employee_hours

import (
	"context"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/hours/models"
)

type HoursService interface {
	UpdateEmployeeHours(ctx context.Context, req *models.UpdateEmployeeHoursRequest) (*models.EmployeeHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
