package business

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business.repository: business not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("business.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("business.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("business.repository: failed to scan row")

	// ErrEncodeHours возвращается при ошибке сериализации часов работы в JSON
	ErrEncodeHours = errors.New("business.repository: failed to encode hours")

	// ErrDecodeHours возвращается при ошибке разбора часов работы из JSON
	ErrDecodeHours = errors.New("business.repository: failed to decode hours")
)
