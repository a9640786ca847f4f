package update_employee_hours

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
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgEmployeeNotFound   = "сотрудник не найден"
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

// Handle PUT /api/v1/employees/{employeeId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем employeeId из URL
	vars := mux.Vars(r)
	employeeIDStr := vars["employeeId"]

	employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /employees/{id}/hours - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /employees/{id}/hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateEmployeeHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /employees/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем расписание (сервис сам проверит права менеджера и конфликты)
	result, err := h.service.UpdateEmployeeHours(r.Context(), req.ToServiceRequest(employeeID, userID))
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrEmployeeNotFound):
			h.logger.Warn("PUT /employees/{id}/hours - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, hours.ErrBusinessNotFound):
			h.logger.Warn("PUT /employees/{id}/hours - Business not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, hours.ErrAccessDenied):
			h.logger.Warn("PUT /employees/{id}/hours - Access denied: employee_id=%d, user_id=%d",
				employeeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, hours.ErrInvalidHours):
			h.logger.Warn("PUT /employees/{id}/hours - Invalid hours: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, hours.ErrHoursConflict):
			h.logger.Warn("PUT /employees/{id}/hours - Hours conflict with bookings: employee_id=%d, error=%v",
				employeeID, err)
			handlers.RespondError(w, http.StatusConflict, msgHoursConflict)

		default:
			h.logger.Error("PUT /employees/{id}/hours - Failed to update hours: employee_id=%d, error=%v",
				employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /employees/{id}/hours - Hours updated successfully: employee_id=%d, user_id=%d",
		employeeID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
