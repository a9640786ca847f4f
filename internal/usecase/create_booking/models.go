package create_booking

import (
	"time"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID    int64              // ID клиента
	ClientName  string             // Имя клиента (денормализуется в бронь)
	ClientPhone string             // Телефон клиента (денормализуется в бронь)
	BusinessID  int64              // ID бизнеса
	ServiceIDs  []int64            // Выбранные услуги, бронируются одним визитом
	EmployeeID  *int64             // Предпочитаемый сотрудник (опционально, nil = любой свободный)
	Date        time.Time          // Дата бронирования (без времени)
	StartTime   schedule.WallClock // Время начала слота (например, "10:00")
	Notes       *string            // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64              // ID созданного бронирования
	Code            string             // Публичный код для ссылок
	ClientID        int64              // ID клиента
	BusinessID      int64              // ID бизнеса
	EmployeeID      int64              // Назначенный сотрудник
	ServiceIDs      []int64            // Выбранные услуги
	BookingDate     time.Time          // Дата бронирования
	StartTime       schedule.WallClock // Время начала
	EndTime         schedule.WallClock // Время окончания
	DurationMinutes int                // Длительность визита в минутах
	Status          string             // Статус бронирования

	// Денормализованные данные
	ClientName   string  // Имя клиента
	ClientPhone  string  // Телефон клиента
	ServiceNames string  // Названия услуг через запятую
	TotalPrice   float64 // Суммарная цена услуг
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
