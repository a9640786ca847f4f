package get_booking_by_code

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/bookings"
)

const (
	msgInvalidCode = "некорректный код бронирования"
	msgNotFound    = "бронирование не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/code/{code}
// Публичный маршрут: код - UUID из ссылки подтверждения,
// знание кода и есть право доступа.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем code из URL
	vars := mux.Vars(r)
	code := vars["code"]

	if _, err := uuid.Parse(code); err != nil {
		h.logger.Warn("GET /bookings/code/{code} - Invalid booking code: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCode)
		return
	}

	// Получаем бронирование по коду
	booking, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/code/{code} - Booking not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/code/{code} - Failed to get booking: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/code/{code} - Booking retrieved successfully: booking_id=%d", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
