package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workingDay(intervals ...Interval) *DayHours {
	return &DayHours{Enabled: true, Intervals: intervals}
}

func TestFindAvailableEmployee(t *testing.T) {
	nineToSix := workingDay(Interval{Open: "09:00", Close: "18:00"})

	t.Run("first free candidate wins", func(t *testing.T) {
		candidates := []EmployeeDay{
			{EmployeeID: 1, Hours: nineToSix},
			{EmployeeID: 2, Hours: nineToSix},
		}

		id, ok, err := FindAvailableEmployee(candidates, "10:00", 60)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(1), id)
	})

	t.Run("busy candidate is skipped", func(t *testing.T) {
		candidates := []EmployeeDay{
			{
				EmployeeID:   1,
				Hours:        nineToSix,
				Reservations: []Reservation{{Start: "10:00", End: "11:00"}},
			},
			{EmployeeID: 2, Hours: nineToSix},
		}

		id, ok, err := FindAvailableEmployee(candidates, "10:00", 60)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(2), id)
	})

	t.Run("adjacent reservation does not block", func(t *testing.T) {
		candidates := []EmployeeDay{
			{
				EmployeeID: 1,
				Hours:      nineToSix,
				Reservations: []Reservation{
					{Start: "09:00", End: "10:00"},
					{Start: "11:00", End: "12:00"},
				},
			},
		}

		id, ok, err := FindAvailableEmployee(candidates, "10:00", 60)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(1), id)
	})

	t.Run("not working that day is skipped", func(t *testing.T) {
		candidates := []EmployeeDay{
			{EmployeeID: 1, Hours: nil},
			{EmployeeID: 2, Hours: nineToSix},
		}

		id, ok, err := FindAvailableEmployee(candidates, "10:00", 60)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(2), id)
	})

	t.Run("slot must fit inside one interval", func(t *testing.T) {
		splitShift := workingDay(
			Interval{Open: "09:00", Close: "12:00"},
			Interval{Open: "14:00", Close: "18:00"},
		)
		candidates := []EmployeeDay{{EmployeeID: 1, Hours: splitShift}}

		// 11:30+60 вылезает за 12:00 и не попадает целиком во второй интервал
		_, ok, err := FindAvailableEmployee(candidates, "11:30", 60)
		require.NoError(t, err)
		assert.False(t, ok)

		id, ok, err := FindAvailableEmployee(candidates, "11:00", 60)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(1), id)
	})

	t.Run("slot ending exactly at close fits", func(t *testing.T) {
		candidates := []EmployeeDay{{EmployeeID: 1, Hours: nineToSix}}

		id, ok, err := FindAvailableEmployee(candidates, "17:00", 60)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(1), id)
	})

	t.Run("interval closing at midnight contains evening slot", func(t *testing.T) {
		evening := workingDay(Interval{Open: "18:00", Close: "00:00"})
		candidates := []EmployeeDay{{EmployeeID: 1, Hours: evening}}

		id, ok, err := FindAvailableEmployee(candidates, "23:00", 60)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(1), id)
	})

	t.Run("nobody available returns not found", func(t *testing.T) {
		candidates := []EmployeeDay{
			{
				EmployeeID:   1,
				Hours:        nineToSix,
				Reservations: []Reservation{{Start: "09:30", End: "11:30"}},
			},
		}

		_, ok, err := FindAvailableEmployee(candidates, "10:00", 60)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, ok, err := FindAvailableEmployee(nil, "10:00", 60)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
