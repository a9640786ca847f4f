package get_available_slots

import (
	"time"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID int64     // ID бизнеса
	ServiceIDs []int64   // Выбранные услуги, бронируются одним визитом
	EmployeeID *int64    // Слоты только этого сотрудника (опционально, nil = все)
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date          time.Time            // Дата, на которую запрашивались слоты
	BusinessID    int64                // ID бизнеса
	ServiceIDs    []int64              // Выбранные услуги
	TotalDuration int                  // Суммарная длительность визита в минутах (с буферами)
	Slots         []schedule.WallClock // Упорядоченные времена начала
}
