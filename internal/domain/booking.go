package domain

import (
	"time"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a client appointment in the system
type Booking struct {
	ID         int64
	Code       string // публичный UUID для ссылок отмены и поиска
	BusinessID int64
	EmployeeID int64
	ClientID   int64
	ServiceIDs []int64

	BookingDate     time.Time
	StartTime       schedule.WallClock
	EndTime         schedule.WallClock
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	ClientName   string
	ClientPhone  string
	ServiceNames string
	TotalPrice   float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BusinessBookingsFilter фильтр для получения бронирований бизнеса
type BusinessBookingsFilter struct {
	BusinessID      int64          // Обязательный параметр
	EmployeeID      *int64         // Фильтр по сотруднику (опционально)
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
