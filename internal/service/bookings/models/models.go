package models

import (
	"errors"
	"time"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetClientBookingsRequest запрос на получение бронирований клиента
type GetClientBookingsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// GetBusinessBookingsRequest запрос на получение бронирований бизнеса
type GetBusinessBookingsRequest struct {
	UserID          int64      `json:"userId"`
	BusinessID      int64      `json:"businessId"`
	EmployeeID      *int64     `json:"employeeId,omitempty"`      // Фильтр по сотруднику (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBusinessBookingsRequest) ToDomainFilter() (domain.BusinessBookingsFilter, error) {
	filter := domain.BusinessBookingsFilter{
		BusinessID:      r.BusinessID,
		EmployeeID:      r.EmployeeID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	Code            string  `json:"code"`
	BusinessID      int64   `json:"businessId"`
	EmployeeID      int64   `json:"employeeId"`
	ClientID        int64   `json:"clientId"`
	ServiceIDs      []int64 `json:"serviceIds"`
	BookingDate     string  `json:"bookingDate"` // "2026-09-15"
	StartTime       string  `json:"startTime"`   // "10:00"
	EndTime         string  `json:"endTime"`     // "11:30"
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`

	// Денормализованные данные
	ClientName   string  `json:"clientName"`
	ClientPhone  string  `json:"clientPhone"`
	ServiceNames string  `json:"serviceNames"`
	TotalPrice   float64 `json:"totalPrice"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Code:               b.Code,
		BusinessID:         b.BusinessID,
		EmployeeID:         b.EmployeeID,
		ClientID:           b.ClientID,
		ServiceIDs:         b.ServiceIDs,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          string(b.StartTime),
		EndTime:            string(b.EndTime),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		ClientName:         b.ClientName,
		ClientPhone:        b.ClientPhone,
		ServiceNames:       b.ServiceNames,
		TotalPrice:         b.TotalPrice,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	switch s {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return s, nil
	}

	return "", ErrInvalidStatus
}
