package get_business_hours

import (
	"context"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/hours/models"
)

type HoursService interface {
	GetBusinessHours(ctx context.Context, businessID int64) (*models.BusinessHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
