package update_business_hours

import (
	"context"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/hours/models"
)

type HoursService interface {
	UpdateBusinessHours(ctx context.Context, req *models.UpdateBusinessHoursRequest) (*models.BusinessHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
