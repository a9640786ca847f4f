package hours

import (
	"context"
	"time"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	UpdateHours(ctx context.Context, id int64, hours domain.WeekHours, midnightMode bool) error
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	UpdateHours(ctx context.Context, id int64, hours *domain.WeekHours) error
}

// BookingRepository интерфейс репозитория бронирований,
// нужен для проверки конфликтов при смене расписания
type BookingRepository interface {
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
