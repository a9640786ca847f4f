package domain

// Business validation constants
const (
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 часов
	MaxBufferMinutes            = 120
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxAdvanceBookingDays       = 365
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:mm
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, занимающих слот.
// Используются при подсчёте доступных слотов и проверке пересечений:
// отменённые бронирования обязаны отсекаться до передачи в движок расписания.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
