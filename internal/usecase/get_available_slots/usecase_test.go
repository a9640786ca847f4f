package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
)

type fakeBusinessRepo struct {
	business *domain.Business
	err      error
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, _ int64) (*domain.Business, error) {
	return f.business, f.err
}

type fakeEmployeeRepo struct {
	employees []*domain.Employee
}

func (f *fakeEmployeeRepo) GetByBusinessID(_ context.Context, _ int64, _ bool) ([]*domain.Employee, error) {
	return f.employees, nil
}

type fakeServiceRepo struct {
	services []*domain.Service
	err      error
}

func (f *fakeServiceRepo) GetByIDs(_ context.Context, _ int64, _ []int64) ([]*domain.Service, error) {
	return f.services, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, _ domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
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

func newTestUseCase(
	business *domain.Business,
	employees []*domain.Employee,
	services []*domain.Service,
	bookings []*domain.Booking,
	now time.Time,
) *UseCase {
	uc := NewUseCase(
		&fakeBusinessRepo{business: business},
		&fakeEmployeeRepo{employees: employees},
		&fakeServiceRepo{services: services},
		&fakeBookingRepo{bookings: bookings},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_UnionAcrossEmployees(t *testing.T) {
	// Вторник 2026-09-15. Два мастера с разными часами: объединение слотов
	// должно покрыть оба диапазона без дублей.
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	business := &domain.Business{
		ID:    1,
		Hours: fullWeek(workday("09:00", "11:00")),
	}

	morning := fullWeek(workday("09:00", "11:00"))
	midday := fullWeek(workday("10:00", "12:00"))

	employees := []*domain.Employee{
		{ID: 10, BusinessID: 1, Active: true, Hours: &morning},
		{ID: 11, BusinessID: 1, Active: true, Hours: &midday},
	}

	services := []*domain.Service{
		{ID: 100, BusinessID: 1, Name: "Corte", DurationMinutes: 60, Active: true, EmployeeIDs: []int64{10, 11}},
	}

	uc := newTestUseCase(business, employees, services, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceIDs: []int64{100},
		Date:       date,
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.TotalDuration)
	assert.Equal(t, []schedule.WallClock{"09:00", "10:00", "11:00"}, resp.Slots)
}

func TestExecute_EmployeeReservationsBlockOnlyThatEmployee(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	business := &domain.Business{
		ID:    1,
		Hours: fullWeek(workday("09:00", "11:00")),
	}

	employees := []*domain.Employee{
		{ID: 10, BusinessID: 1, Active: true},
		{ID: 11, BusinessID: 1, Active: true},
	}

	services := []*domain.Service{
		{ID: 100, BusinessID: 1, Name: "Corte", DurationMinutes: 60, Active: true, EmployeeIDs: []int64{10, 11}},
	}

	// Сотрудник 10 занят в 09:00, сотрудник 11 свободен - слот остаётся
	bookings := []*domain.Booking{
		{ID: 1, BusinessID: 1, EmployeeID: 10, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
	}

	uc := newTestUseCase(business, employees, services, bookings, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceIDs: []int64{100},
		Date:       date,
	})
	require.NoError(t, err)

	assert.Equal(t, []schedule.WallClock{"09:00", "10:00"}, resp.Slots)
}

func TestExecute_CancelledBookingsDoNotBlock(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	business := &domain.Business{
		ID:    1,
		Hours: fullWeek(workday("09:00", "10:00")),
	}

	employees := []*domain.Employee{{ID: 10, BusinessID: 1, Active: true}}
	services := []*domain.Service{
		{ID: 100, BusinessID: 1, Name: "Corte", DurationMinutes: 60, Active: true, EmployeeIDs: []int64{10}},
	}

	bookings := []*domain.Booking{
		{ID: 1, BusinessID: 1, EmployeeID: 10, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCancelled},
	}

	uc := newTestUseCase(business, employees, services, bookings, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceIDs: []int64{100},
		Date:       date,
	})
	require.NoError(t, err)

	assert.Equal(t, []schedule.WallClock{"09:00"}, resp.Slots)
}

func TestExecute_MultiServiceDurationIncludesBuffers(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	business := &domain.Business{
		ID:    1,
		Hours: fullWeek(workday("09:00", "13:00")),
	}

	employees := []*domain.Employee{{ID: 10, BusinessID: 1, Active: true}}
	services := []*domain.Service{
		{ID: 100, BusinessID: 1, Name: "Corte", DurationMinutes: 60, BufferMinutes: 15, Active: true, EmployeeIDs: []int64{10}},
		{ID: 101, BusinessID: 1, Name: "Barba", DurationMinutes: 30, BufferMinutes: 0, Active: true, EmployeeIDs: []int64{10}},
	}

	uc := newTestUseCase(business, employees, services, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceIDs: []int64{100, 101},
		Date:       date,
	})
	require.NoError(t, err)

	// 60+15+30 = 105 минут, шаг 105: 09:00 и 10:45
	assert.Equal(t, 105, resp.TotalDuration)
	assert.Equal(t, []schedule.WallClock{"09:00", "10:45"}, resp.Slots)
}

func TestExecute_PreferredEmployeeNarrowsResult(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	business := &domain.Business{
		ID:    1,
		Hours: fullWeek(workday("09:00", "11:00")),
	}

	morning := fullWeek(workday("09:00", "11:00"))
	midday := fullWeek(workday("10:00", "12:00"))

	employees := []*domain.Employee{
		{ID: 10, BusinessID: 1, Active: true, Hours: &morning},
		{ID: 11, BusinessID: 1, Active: true, Hours: &midday},
	}

	services := []*domain.Service{
		{ID: 100, BusinessID: 1, Name: "Corte", DurationMinutes: 60, Active: true, EmployeeIDs: []int64{10, 11}},
	}

	uc := newTestUseCase(business, employees, services, nil, now)

	preferred := int64(11)
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceIDs: []int64{100},
		EmployeeID: &preferred,
		Date:       date,
	})
	require.NoError(t, err)

	assert.Equal(t, []schedule.WallClock{"10:00", "11:00"}, resp.Slots)

	// Предпочитаемый сотрудник не допущен к услуге - слотов нет
	unqualified := int64(99)
	resp, err = uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceIDs: []int64{100},
		EmployeeID: &unqualified,
		Date:       date,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoQualifiedEmployees(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	business := &domain.Business{ID: 1, Hours: fullWeek(workday("09:00", "18:00"))}
	employees := []*domain.Employee{{ID: 10, BusinessID: 1, Active: true}}
	services := []*domain.Service{
		{ID: 100, BusinessID: 1, Name: "Corte", DurationMinutes: 60, Active: true, EmployeeIDs: []int64{99}},
	}

	uc := newTestUseCase(business, employees, services, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceIDs: []int64{100},
		Date:       date,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InactiveService(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	business := &domain.Business{ID: 1, Hours: fullWeek(workday("09:00", "18:00"))}
	employees := []*domain.Employee{{ID: 10, BusinessID: 1, Active: true}}
	services := []*domain.Service{
		{ID: 100, BusinessID: 1, Name: "Corte", DurationMinutes: 60, Active: false, EmployeeIDs: []int64{10}},
	}

	uc := newTestUseCase(business, employees, services, nil, now)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceIDs: []int64{100},
		Date:       date,
	})
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_DateInPast(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	past := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&domain.Business{ID: 1}, nil, nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceIDs: []int64{100},
		Date:       past,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&domain.Business{ID: 1}, nil, nil, nil, now)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero business", &Request{ServiceIDs: []int64{1}, Date: date}},
		{"no services", &Request{BusinessID: 1, Date: date}},
		{"negative service id", &Request{BusinessID: 1, ServiceIDs: []int64{-1}, Date: date}},
		{"zero date", &Request{BusinessID: 1, ServiceIDs: []int64{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_EmployeeOverrideDisabledDay(t *testing.T) {
	// Личное расписание с выключенным вторником побеждает часы бизнеса:
	// сотрудник в этот день недоступен, слотов нет.
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC) // вторник
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	business := &domain.Business{ID: 1, Hours: fullWeek(workday("09:00", "18:00"))}

	override := fullWeek(workday("09:00", "18:00"))
	override.Tuesday = schedule.DayHours{Enabled: false}

	employees := []*domain.Employee{{ID: 10, BusinessID: 1, Active: true, Hours: &override}}
	services := []*domain.Service{
		{ID: 100, BusinessID: 1, Name: "Corte", DurationMinutes: 60, Active: true, EmployeeIDs: []int64{10}},
	}

	uc := newTestUseCase(business, employees, services, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceIDs: []int64{100},
		Date:       date,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
