package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	futureDate = time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	// "Сейчас" далеко до futureDate, чтобы фильтр сегодняшнего дня не включался
	fixedNow = time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
)

func wallClocks(ss ...string) []WallClock {
	out := make([]WallClock, len(ss))
	for i, s := range ss {
		out[i] = WallClock(s)
	}
	return out
}

func TestAvailableSlots_FullDayNoReservations(t *testing.T) {
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "09:00", Close: "18:00"}},
		},
		Now: fixedNow,
	})

	require.NoError(t, err)
	assert.Equal(t, wallClocks(
		"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
	), slots)
}

func TestAvailableSlots_ReservationBlocksSlot(t *testing.T) {
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "09:00", Close: "18:00"}},
		},
		Reservations: []Reservation{{Start: "10:00", End: "11:00"}},
		Now:          fixedNow,
	})

	require.NoError(t, err)
	assert.NotContains(t, slots, WallClock("10:00"))
	assert.Contains(t, slots, WallClock("09:00"))
	assert.Contains(t, slots, WallClock("11:00"))
}

func TestAvailableSlots_CloseAtMidnightRunsToEndOfDay(t *testing.T) {
	// "00:00" в закрытии - работа до конца дня, особый ночной режим не нужен
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "18:00", Close: "00:00"}},
		},
		Now: fixedNow,
	})

	require.NoError(t, err)
	// Последний слот 23:00: 23:00+60 = 1440 помещается ровно
	assert.Equal(t, wallClocks("18:00", "19:00", "20:00", "21:00", "22:00", "23:00"), slots)
}

func TestAvailableSlots_SlotNeverExceedsClose(t *testing.T) {
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 90,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "09:00", Close: "12:00"}},
		},
		Now: fixedNow,
	})

	require.NoError(t, err)
	// 09:00+90=10:30, 10:30+90=12:00 ровно; 12:00+90 уже не помещается
	assert.Equal(t, wallClocks("09:00", "10:30"), slots)
}

func TestAvailableSlots_DisabledDay(t *testing.T) {
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled:   false,
			Intervals: []Interval{{Open: "09:00", Close: "18:00"}},
		},
		Now: fixedNow,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlots_NonPositiveDuration(t *testing.T) {
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 0,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "09:00", Close: "18:00"}},
		},
		Now: fixedNow,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlots_SplitShift(t *testing.T) {
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled: true,
			Intervals: []Interval{
				{Open: "09:00", Close: "12:00"},
				{Open: "16:00", Close: "19:00"},
			},
		},
		Now: fixedNow,
	})

	require.NoError(t, err)
	assert.Equal(t, wallClocks("09:00", "10:00", "11:00", "16:00", "17:00", "18:00"), slots)
}

func TestAvailableSlots_SameDayPastSlotsDropped(t *testing.T) {
	// Сегодня 14:05 - слоты 14:00 и раньше не предлагаются
	now := time.Date(2025, 11, 20, 14, 5, 0, 0, time.UTC)

	slots, err := AvailableSlots(SlotsInput{
		Date:          now,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "09:00", Close: "18:00"}},
		},
		Now: now,
	})

	require.NoError(t, err)
	assert.Equal(t, wallClocks("15:00", "16:00", "17:00"), slots)
}

func TestAvailableSlots_FutureDateKeepsAllSlots(t *testing.T) {
	now := time.Date(2025, 11, 19, 23, 50, 0, 0, time.UTC)

	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "09:00", Close: "18:00"}},
		},
		Now: now,
	})

	require.NoError(t, err)
	assert.Len(t, slots, 9)
}

func TestAvailableSlots_MidnightMode(t *testing.T) {
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "22:00", Close: "02:00"}},
		},
		MidnightMode: true,
		Now:          fixedNow,
	})

	require.NoError(t, err)
	// Слоты за полуночью нормализуются обратно в [0, 1440)
	assert.Equal(t, wallClocks("22:00", "23:00", "00:00", "01:00"), slots)
}

func TestAvailableSlots_MidnightModeOddDuration(t *testing.T) {
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 90,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "22:00", Close: "02:00"}},
		},
		MidnightMode: true,
		Now:          fixedNow,
	})

	require.NoError(t, err)
	// 22:00, 23:30 (пересекает полночь: хвост 60 <= 120), 01:00 (01:00+90=02:30 > 02:00 не помещается)
	assert.Equal(t, wallClocks("22:00", "23:30"), slots)
}

// Закреплённое поведение: в ночном режиме бронирования до точки перехода
// НЕ вычитаются - слот 22:00 остаётся в выдаче несмотря на бронь.
// Тест фиксирует существующее ограничение, а не желаемое поведение;
// правка потребует отдельной миграции для арендаторов с включённой фичей.
func TestAvailableSlots_MidnightModeIgnoresReservationsBeforeWrap(t *testing.T) {
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "22:00", Close: "02:00"}},
		},
		Reservations: []Reservation{{Start: "22:00", End: "23:00"}},
		MidnightMode: true,
		Now:          fixedNow,
	})

	require.NoError(t, err)
	assert.Contains(t, slots, WallClock("22:00"))
}

func TestAvailableSlots_MidnightModeOffFallsBackToRegular(t *testing.T) {
	// Без флага ночной интервал идёт обычной веткой: окно [22:00, 02:00)
	// численно пусто, слотов нет. Изоляция легаси-арендаторов.
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "22:00", Close: "02:00"}},
		},
		Now: fixedNow,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

// Контракт вызывающего кода: движок не знает о статусах, отменённая бронь,
// переданная в Reservations, блокирует слот точно так же, как активная.
// Фильтрация по статусу обязана происходить до вызова движка.
func TestAvailableSlots_CancelledReservationMustBeFilteredByCaller(t *testing.T) {
	slots, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "09:00", Close: "18:00"}},
		},
		// Бронь со статусом "cancelled", которую забыли отфильтровать
		Reservations: []Reservation{{Start: "10:00", End: "11:00"}},
		Now:          fixedNow,
	})

	require.NoError(t, err)
	assert.NotContains(t, slots, WallClock("10:00"))
}

func TestAvailableSlots_ReservationWithSecondsRejected(t *testing.T) {
	// Времена из хранилища обязаны проходить через NormalizeTimeString
	// до движка - "HH:mm:ss" здесь считается ошибкой формата
	_, err := AvailableSlots(SlotsInput{
		Date:          futureDate,
		TotalDuration: 60,
		DayHours: DayHours{
			Enabled:   true,
			Intervals: []Interval{{Open: "09:00", Close: "18:00"}},
		},
		Reservations: []Reservation{{Start: "10:00:00", End: "11:00:00"}},
		Now:          fixedNow,
	})

	assert.ErrorIs(t, err, ErrInvalidFormat)
}
