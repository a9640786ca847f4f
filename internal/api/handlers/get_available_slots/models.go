package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	getAvailableSlots "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string   `json:"date"`
	BusinessID    int64    `json:"businessId"`
	ServiceIDs    []int64  `json:"serviceIds"`
	TotalDuration int      `json:"totalDuration"`
	Slots         []string `json:"slots"`
}

// ToUseCaseRequest создает запрос use case из параметров URL и query
func ToUseCaseRequest(businessID int64, serviceIDsStr, dateStr, employeeIDStr string) (*getAvailableSlots.Request, error) {
	serviceIDs, err := parseServiceIDs(serviceIDsStr)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	var employeeID *int64
	if employeeIDStr != "" {
		id, err := strconv.ParseInt(employeeIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		employeeID = &id
	}

	return &getAvailableSlots.Request{
		BusinessID: businessID,
		ServiceIDs: serviceIDs,
		EmployeeID: employeeID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = string(slot)
	}

	return &AvailableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		BusinessID:    resp.BusinessID,
		ServiceIDs:    resp.ServiceIDs,
		TotalDuration: resp.TotalDuration,
		Slots:         slots,
	}
}

// parseServiceIDs разбирает список ID услуг из query параметра "1,2,3"
func parseServiceIDs(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
