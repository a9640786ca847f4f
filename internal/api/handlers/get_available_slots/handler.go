package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers"
	getAvailableSlots "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/usecase/get_available_slots"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgMissingServiceIDs = "список услуг обязателен"
	msgMissingDate       = "дата обязательна"
	msgInvalidParams     = "некорректные параметры запроса, ожидается date=YYYY-MM-DD и serviceIds=1,2"
	msgBusinessNotFound  = "бизнес не найден"
	msgServiceNotFound   = "услуга не найдена"
	msgServiceInactive   = "услуга недоступна"
	msgInvalidDate       = "некорректная дата"
	msgDateTooFar        = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/available-slots
// Query params: serviceIds (required, "1,2"), date (required, YYYY-MM-DD),
// employeeId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем businessId из URL
	vars := mux.Vars(r)
	businessIDStr := vars["businessId"]

	businessID, err := strconv.ParseInt(businessIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/available-slots - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	// Извлекаем обязательные query параметры
	serviceIDsStr := r.URL.Query().Get("serviceIds")
	if serviceIDsStr == "" {
		h.logger.Warn("GET /businesses/{id}/available-slots - Missing service IDs")
		handlers.RespondBadRequest(w, msgMissingServiceIDs)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /businesses/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	employeeIDStr := r.URL.Query().Get("employeeId")

	// Формируем запрос к use case (с парсингом даты и списка услуг)
	useCaseReq, err := ToUseCaseRequest(businessID, serviceIDsStr, dateStr, employeeIDStr)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/available-slots - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /businesses/{id}/available-slots - Service not found: business_id=%d, service_ids=%s",
				businessID, serviceIDsStr)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceInactive):
			h.logger.Warn("GET /businesses/{id}/available-slots - Service inactive: business_id=%d, service_ids=%s",
				businessID, serviceIDsStr)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /businesses/{id}/available-slots - Invalid date: business_id=%d, date=%s",
				businessID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /businesses/{id}/available-slots - Date too far in future: business_id=%d, date=%s",
				businessID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/available-slots - Invalid input: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /businesses/{id}/available-slots - Failed to get slots: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /businesses/{id}/available-slots - Slots retrieved successfully: business_id=%d, date=%s, slots_count=%d",
		businessID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
