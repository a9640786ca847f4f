package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// WallClock время в формате "HH:mm" (часы 00..24, минуты 00..59).
// Значение "24:00" допустимо только как конец дня.
type WallClock string

// MinuteOffset количество минут с начала суток, в диапазоне [0, 1440].
// 1440 - валидное значение-сентинел "конец дня" (эксклюзивная верхняя граница),
// отличное от 0 "начало дня", хотя оба соответствуют "00:00" на часах.
type MinuteOffset int

// MinutesPerDay верхняя граница суток в минутах
const MinutesPerDay MinuteOffset = 1440

// Boundary указывает, какой границей интервала является разбираемое время.
// Из-за двойного смысла "00:00" (начало или конец дня) парсинг требует
// явного контекста: "00:00" как открытие даёт 0, как закрытие - 1440.
type Boundary int

const (
	// BoundaryOpen время открытия интервала: "00:00" -> 0
	BoundaryOpen Boundary = iota
	// BoundaryClose время закрытия интервала: "00:00" -> 1440
	BoundaryClose
)

var wallClockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ParseWallClock разбирает строку "HH:mm" в минуты с начала суток.
// Порядок проверок фиксирован: пустое значение, формат, диапазон, спец-случай "24:xx".
// "24:00" всегда даёт 1440 независимо от контекста.
func ParseWallClock(s string, b Boundary) (MinuteOffset, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: time string is empty", ErrInvalidInput)
	}

	if !wallClockPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q, expected HH:mm with leading zeros", ErrInvalidFormat, s)
	}

	// Формат гарантирован регуляркой, ошибки Atoi невозможны
	hours, _ := strconv.Atoi(s[:2])
	minutes, _ := strconv.Atoi(s[3:])

	if hours > 24 {
		return 0, fmt.Errorf("%w: %q, hours must be 00..24", ErrOutOfRange, s)
	}
	if minutes > 59 {
		return 0, fmt.Errorf("%w: %q, minutes must be 00..59", ErrOutOfRange, s)
	}
	if hours == 24 && minutes != 0 {
		return 0, fmt.Errorf("%w: %q, hour 24 is only valid as 24:00", ErrInvalidFormat, s)
	}

	if hours == 24 {
		return MinutesPerDay, nil
	}

	// "00:00" как граница закрытия означает конец дня
	if hours == 0 && minutes == 0 && b == BoundaryClose {
		return MinutesPerDay, nil
	}

	return MinuteOffset(hours*60 + minutes), nil
}

// FormatMinutes форматирует смещение в минутах обратно в "HH:mm".
// 1440 нормализуется в "00:00" - представления "24:00" на выходе нет.
func FormatMinutes(m MinuteOffset) (WallClock, error) {
	if m < 0 || m > MinutesPerDay {
		return "", fmt.Errorf("%w: %d, minute offset must be in [0, 1440]", ErrOutOfRange, m)
	}

	if m == MinutesPerDay {
		return "00:00", nil
	}

	return WallClock(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// NormalizeTimeString отрезает необязательный хвост ":ss" у времени из
// хранилища, возвращая чистое "HH:mm". Уже нормализованный вход не меняется.
func NormalizeTimeString(s string) string {
	if strings.Count(s, ":") == 2 {
		return s[:strings.LastIndex(s, ":")]
	}
	return s
}
