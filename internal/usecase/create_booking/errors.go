package create_booking

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive возвращается, когда услуга снята с продажи
	ErrServiceInactive = errors.New("create_booking: service is not active")

	// ErrEmployeeNotQualified возвращается, когда выбранный сотрудник
	// не допущен к одной из услуг или не работает в этом бизнесе
	ErrEmployeeNotQualified = errors.New("create_booking: employee is not qualified for selected services")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrSlotNotAvailable возвращается, когда на выбранный слот нет свободного сотрудника
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTooLateToBook возвращается при попытке забронировать уже прошедшее время
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
