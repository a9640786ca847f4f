package get_booking_by_code

import (
	"context"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/bookings/models"
)

type BookingService interface {
	GetByCode(ctx context.Context, code string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
