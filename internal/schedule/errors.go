package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при пустом или отсутствующем значении
	ErrInvalidInput = errors.New("schedule: invalid input")

	// ErrInvalidFormat возвращается при синтаксически некорректной строке времени
	// (нет ведущего нуля, неверный разделитель, "24:xx" кроме "24:00")
	ErrInvalidFormat = errors.New("schedule: invalid time format")

	// ErrOutOfRange возвращается при выходе за допустимые границы
	// (часы > 24, минуты > 59, смещение вне [0, 1440])
	ErrOutOfRange = errors.New("schedule: value out of range")
)
