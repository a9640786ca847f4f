package create_booking

import (
	"time"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
	createBooking "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	BusinessID  int64   `json:"businessId"`
	ServiceIDs  []int64 `json:"serviceIds"`
	EmployeeID  *int64  `json:"employeeId,omitempty"`
	BookingDate string  `json:"bookingDate"` // "2026-09-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Code            string  `json:"code"`
	ClientID        int64   `json:"clientId"`
	BusinessID      int64   `json:"businessId"`
	EmployeeID      int64   `json:"employeeId"`
	ServiceIDs      []int64 `json:"serviceIds"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ClientName      string  `json:"clientName"`
	ClientPhone     string  `json:"clientPhone"`
	ServiceNames    string  `json:"serviceNames"`
	TotalPrice      float64 `json:"totalPrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// ID клиента берется из заголовка аутентификации, а не из тела.
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:    clientID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		BusinessID:  r.BusinessID,
		ServiceIDs:  r.ServiceIDs,
		EmployeeID:  r.EmployeeID,
		Date:        bookingDate,
		StartTime:   schedule.WallClock(r.StartTime),
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Code:            resp.Code,
		ClientID:        resp.ClientID,
		BusinessID:      resp.BusinessID,
		EmployeeID:      resp.EmployeeID,
		ServiceIDs:      resp.ServiceIDs,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       string(resp.StartTime),
		EndTime:         string(resp.EndTime),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ClientName:      resp.ClientName,
		ClientPhone:     resp.ClientPhone,
		ServiceNames:    resp.ServiceNames,
		TotalPrice:      resp.TotalPrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
