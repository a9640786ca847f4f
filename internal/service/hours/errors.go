package hours

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidHours возвращается при некорректном расписании
	// (нечитаемое время, пересекающиеся интервалы)
	ErrInvalidHours = errors.New("invalid hours")

	// ErrHoursConflict возвращается, когда новое расписание выталкивает
	// существующие активные бронирования за рабочие часы
	ErrHoursConflict = errors.New("hours conflict with existing bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
