package employee

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee.repository: employee not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("employee.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("employee.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("employee.repository: failed to scan row")

	// ErrEncodeHours возвращается при ошибке сериализации часов работы в JSON
	ErrEncodeHours = errors.New("employee.repository: failed to encode hours")

	// ErrDecodeHours возвращается при ошибке разбора часов работы из JSON
	ErrDecodeHours = errors.New("employee.repository: failed to decode hours")
)
