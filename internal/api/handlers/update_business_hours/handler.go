package update_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/middleware"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/hours"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBusinessNotFound   = "бизнес не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidHours       = "некорректное расписание"
	msgHoursConflict      = "новое расписание конфликтует с существующими бронированиями"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/businesses/{businessId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем businessId из URL
	vars := mux.Vars(r)
	businessIDStr := vars["businessId"]

	businessID, err := strconv.ParseInt(businessIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /businesses/{id}/hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем расписание (сервис сам проверит права менеджера и конфликты)
	result, err := h.service.UpdateBusinessHours(r.Context(), req.ToServiceRequest(businessID, userID))
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrBusinessNotFound):
			h.logger.Warn("PUT /businesses/{id}/hours - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, hours.ErrAccessDenied):
			h.logger.Warn("PUT /businesses/{id}/hours - Access denied: business_id=%d, user_id=%d",
				businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, hours.ErrInvalidHours):
			h.logger.Warn("PUT /businesses/{id}/hours - Invalid hours: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, hours.ErrHoursConflict):
			h.logger.Warn("PUT /businesses/{id}/hours - Hours conflict with bookings: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondError(w, http.StatusConflict, msgHoursConflict)

		default:
			h.logger.Error("PUT /businesses/{id}/hours - Failed to update hours: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/hours - Hours updated successfully: business_id=%d, user_id=%d",
		businessID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
