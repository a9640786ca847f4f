package create_booking

import (
	"errors"
	"net/http"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/middleware"
	createBooking "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgBusinessNotFound     = "бизнес не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceInactive      = "услуга недоступна"
	msgEmployeeNotQualified = "сотрудник не выполняет выбранные услуги"
	msgInvalidBookingDate   = "некорректная дата бронирования"
	msgDateTooFar           = "дата бронирования слишком далеко в будущем"
	msgTooLateToBook        = "слишком поздно для бронирования этого слота"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: client_id=%d, business_id=%d", clientID, req.BusinessID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrBusinessNotFound):
			h.logger.Warn("POST /bookings - Business not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: client_id=%d, business_id=%d", clientID, req.BusinessID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceInactive):
			h.logger.Warn("POST /bookings - Service inactive: client_id=%d, business_id=%d", clientID, req.BusinessID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createBooking.ErrEmployeeNotQualified):
			h.logger.Warn("POST /bookings - Employee not qualified: client_id=%d, business_id=%d", clientID, req.BusinessID)
			handlers.RespondBadRequest(w, msgEmployeeNotQualified)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: client_id=%d, business_id=%d", clientID, req.BusinessID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: client_id=%d, business_id=%d", clientID, req.BusinessID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: client_id=%d, business_id=%d", clientID, req.BusinessID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%d, business_id=%d, error=%v",
				clientID, req.BusinessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, business_id=%d, error=%v",
				clientID, req.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, code=%s, client_id=%d, business_id=%d",
		result.ID, result.Code, clientID, req.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
