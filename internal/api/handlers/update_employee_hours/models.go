package update_employee_hours

import (
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/hours/models"
)

// UpdateEmployeeHoursRequest HTTP request model.
// Hours = null сбрасывает переопределение, сотрудник возвращается
// к часам бизнеса.
type UpdateEmployeeHoursRequest struct {
	BusinessID int64             `json:"businessId"`
	Hours      *domain.WeekHours `json:"hours"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса.
// ID пользователя берется из заголовка аутентификации.
func (r *UpdateEmployeeHoursRequest) ToServiceRequest(employeeID, userID int64) *models.UpdateEmployeeHoursRequest {
	return &models.UpdateEmployeeHoursRequest{
		UserID:     userID,
		BusinessID: r.BusinessID,
		EmployeeID: employeeID,
		Hours:      r.Hours,
	}
}
