package get_business_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	businessID int64,
	userID int64,
	employeeIDStr string,
	statusStr string,
	startDateStr string,
	endDateStr string,
	includeInactiveStr string,
) (*models.GetBusinessBookingsRequest, error) {
	req := &models.GetBusinessBookingsRequest{
		UserID:          userID,
		BusinessID:      businessID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим employeeId если указан
	if employeeIDStr != "" {
		employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.EmployeeID = &employeeID
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим период если указан
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
