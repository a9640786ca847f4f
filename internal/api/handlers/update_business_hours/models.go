package update_business_hours

import (
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/hours/models"
)

// UpdateBusinessHoursRequest HTTP request model
type UpdateBusinessHoursRequest struct {
	MidnightModeEnabled bool             `json:"midnightModeEnabled"`
	Hours               domain.WeekHours `json:"hours"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса.
// ID пользователя берется из заголовка аутентификации.
func (r *UpdateBusinessHoursRequest) ToServiceRequest(businessID, userID int64) *models.UpdateBusinessHoursRequest {
	return &models.UpdateBusinessHoursRequest{
		UserID:              userID,
		BusinessID:          businessID,
		MidnightModeEnabled: r.MidnightModeEnabled,
		Hours:               r.Hours,
	}
}
