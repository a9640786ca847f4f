package hours

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	businessRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/business"
	employeeRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/employee"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/hours/models"
)

type fakeBusinessRepo struct {
	businesses map[int64]*domain.Business

	updatedID           int64
	updatedHours        domain.WeekHours
	updatedMidnightMode bool
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, id int64) (*domain.Business, error) {
	b, ok := f.businesses[id]
	if !ok {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return b, nil
}

func (f *fakeBusinessRepo) UpdateHours(_ context.Context, id int64, hours domain.WeekHours, midnightMode bool) error {
	f.updatedID = id
	f.updatedHours = hours
	f.updatedMidnightMode = midnightMode
	return nil
}

type fakeEmployeeRepo struct {
	employees map[int64]*domain.Employee

	updatedID    int64
	updatedHours *domain.WeekHours
	updateCalled bool
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) UpdateHours(_ context.Context, id int64, hours *domain.WeekHours) error {
	f.updatedID = id
	f.updatedHours = hours
	f.updateCalled = true
	return nil
}

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BusinessBookingsFilter
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func workday(open, close string) schedule.DayHours {
	return schedule.DayHours{
		Enabled:   true,
		Intervals: []schedule.Interval{{Open: schedule.WallClock(open), Close: schedule.WallClock(close)}},
	}
}

func fullWeek(day schedule.DayHours) domain.WeekHours {
	return domain.WeekHours{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
		Friday: day, Saturday: day, Sunday: day,
	}
}

type fixture struct {
	svc        *Service
	businesses *fakeBusinessRepo
	employees  *fakeEmployeeRepo
	bookings   *fakeBookingRepo
}

// Бизнес 1: менеджер 7, часы 09:00-18:00. Сотрудник 10 без переопределения.
func newFixture(bookings []*domain.Booking) *fixture {
	businesses := &fakeBusinessRepo{
		businesses: map[int64]*domain.Business{
			1: {ID: 1, ManagerIDs: []int64{7}, Hours: fullWeek(workday("09:00", "18:00"))},
		},
	}
	employees := &fakeEmployeeRepo{
		employees: map[int64]*domain.Employee{
			10: {ID: 10, BusinessID: 1, Active: true},
		},
	}
	bookingRepo := &fakeBookingRepo{bookings: bookings}

	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	svc := NewService(businesses, employees, bookingRepo, &fixedTimeProvider{now: now}, nopLogger{})

	return &fixture{svc: svc, businesses: businesses, employees: employees, bookings: bookingRepo}
}

// Активное бронирование сотрудника 10 на вторник 2026-09-15, 10:00-11:00
func futureBooking() *domain.Booking {
	return &domain.Booking{
		ID:          200,
		BusinessID:  1,
		EmployeeID:  10,
		BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.StatusConfirmed,
	}
}

func TestGetBusinessHours(t *testing.T) {
	f := newFixture(nil)

	resp, err := f.svc.GetBusinessHours(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.BusinessID)
	assert.True(t, resp.Hours.Monday.Enabled)

	_, err = f.svc.GetBusinessHours(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestUpdateBusinessHours_Manager(t *testing.T) {
	f := newFixture(nil)

	newHours := fullWeek(workday("08:00", "20:00"))
	resp, err := f.svc.UpdateBusinessHours(context.Background(), &models.UpdateBusinessHoursRequest{
		UserID:              7,
		BusinessID:          1,
		MidnightModeEnabled: true,
		Hours:               newHours,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), f.businesses.updatedID)
	assert.True(t, f.businesses.updatedMidnightMode)
	assert.Equal(t, newHours, f.businesses.updatedHours)
	assert.True(t, resp.MidnightModeEnabled)
}

func TestUpdateBusinessHours_NotManagerDenied(t *testing.T) {
	f := newFixture(nil)

	_, err := f.svc.UpdateBusinessHours(context.Background(), &models.UpdateBusinessHoursRequest{
		UserID:     5,
		BusinessID: 1,
		Hours:      fullWeek(workday("08:00", "20:00")),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateBusinessHours_OverlappingIntervals(t *testing.T) {
	f := newFixture(nil)

	bad := fullWeek(schedule.DayHours{
		Enabled: true,
		Intervals: []schedule.Interval{
			{Open: "09:00", Close: "13:00"},
			{Open: "12:00", Close: "18:00"},
		},
	})

	_, err := f.svc.UpdateBusinessHours(context.Background(), &models.UpdateBusinessHoursRequest{
		UserID:     7,
		BusinessID: 1,
		Hours:      bad,
	})
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestUpdateBusinessHours_ConflictWithBooking(t *testing.T) {
	// Бронирование 10:00-11:00 выпадает из новых часов 12:00-18:00
	f := newFixture([]*domain.Booking{futureBooking()})

	_, err := f.svc.UpdateBusinessHours(context.Background(), &models.UpdateBusinessHoursRequest{
		UserID:     7,
		BusinessID: 1,
		Hours:      fullWeek(workday("12:00", "18:00")),
	})
	assert.ErrorIs(t, err, ErrHoursConflict)
	assert.Zero(t, f.businesses.updatedID)
}

func TestUpdateBusinessHours_BookingStillFits(t *testing.T) {
	f := newFixture([]*domain.Booking{futureBooking()})

	_, err := f.svc.UpdateBusinessHours(context.Background(), &models.UpdateBusinessHoursRequest{
		UserID:     7,
		BusinessID: 1,
		Hours:      fullWeek(workday("10:00", "14:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.businesses.updatedID)

	// Проверка конфликтов смотрит только в будущее
	assert.NotNil(t, f.bookings.lastFilter.StartDate)
}

func TestUpdateEmployeeHours_Override(t *testing.T) {
	f := newFixture(nil)

	override := fullWeek(workday("10:00", "15:00"))
	resp, err := f.svc.UpdateEmployeeHours(context.Background(), &models.UpdateEmployeeHoursRequest{
		UserID:     7,
		BusinessID: 1,
		EmployeeID: 10,
		Hours:      &override,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), f.employees.updatedID)
	require.NotNil(t, f.employees.updatedHours)
	assert.Equal(t, override, *f.employees.updatedHours)
	assert.NotNil(t, resp.Hours)
}

func TestUpdateEmployeeHours_ResetToBusinessHours(t *testing.T) {
	f := newFixture(nil)
	override := fullWeek(workday("10:00", "15:00"))
	f.employees.employees[10].Hours = &override

	resp, err := f.svc.UpdateEmployeeHours(context.Background(), &models.UpdateEmployeeHoursRequest{
		UserID:     7,
		BusinessID: 1,
		EmployeeID: 10,
		Hours:      nil,
	})
	require.NoError(t, err)

	assert.True(t, f.employees.updateCalled)
	assert.Nil(t, f.employees.updatedHours)
	assert.Nil(t, resp.Hours)
}

func TestUpdateEmployeeHours_NotManagerDenied(t *testing.T) {
	f := newFixture(nil)

	_, err := f.svc.UpdateEmployeeHours(context.Background(), &models.UpdateEmployeeHoursRequest{
		UserID:     5,
		BusinessID: 1,
		EmployeeID: 10,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateEmployeeHours_WrongBusiness(t *testing.T) {
	f := newFixture(nil)
	f.businesses.businesses[2] = &domain.Business{ID: 2, ManagerIDs: []int64{7}}

	// Сотрудник 10 принадлежит бизнесу 1, а не 2
	_, err := f.svc.UpdateEmployeeHours(context.Background(), &models.UpdateEmployeeHoursRequest{
		UserID:     7,
		BusinessID: 2,
		EmployeeID: 10,
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUpdateEmployeeHours_ConflictWithBooking(t *testing.T) {
	// Переопределение 12:00-18:00 выталкивает бронирование 10:00-11:00
	f := newFixture([]*domain.Booking{futureBooking()})

	override := fullWeek(workday("12:00", "18:00"))
	_, err := f.svc.UpdateEmployeeHours(context.Background(), &models.UpdateEmployeeHoursRequest{
		UserID:     7,
		BusinessID: 1,
		EmployeeID: 10,
		Hours:      &override,
	})
	assert.ErrorIs(t, err, ErrHoursConflict)
	assert.False(t, f.employees.updateCalled)
}

func TestUpdateEmployeeHours_ConflictWithDayOff(t *testing.T) {
	// Выключенный вторник в переопределении конфликтует с бронированием
	// на вторник 2026-09-15
	f := newFixture([]*domain.Booking{futureBooking()})

	override := fullWeek(workday("09:00", "18:00"))
	override.Tuesday = schedule.DayHours{Enabled: false}

	_, err := f.svc.UpdateEmployeeHours(context.Background(), &models.UpdateEmployeeHoursRequest{
		UserID:     7,
		BusinessID: 1,
		EmployeeID: 10,
		Hours:      &override,
	})
	assert.ErrorIs(t, err, ErrHoursConflict)
}
