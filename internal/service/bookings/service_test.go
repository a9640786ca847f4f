package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	bookingRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/booking"
	businessRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/business"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/bookings/models"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	byCode   map[string]*domain.Booking
	listed   []*domain.Booking

	cancelledID      int64
	cancelReason     string
	updatedID        int64
	updatedStatus    domain.BookingStatus
	lastClientStatus *domain.BookingStatus
	lastFilter       domain.BusinessBookingsFilter
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByCode(_ context.Context, code string) (*domain.Booking, error) {
	b, ok := f.byCode[code]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByClientID(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastClientStatus = status
	return f.listed, nil
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.listed, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

type fakeBusinessRepo struct {
	businesses map[int64]*domain.Business
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, id int64) (*domain.Business, error) {
	b, ok := f.businesses[id]
	if !ok {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return b, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Бизнес 1: менеджер 7. Бронирование 100: клиент 5.
func newFixture() (*Service, *fakeBookingRepo) {
	booking := &domain.Booking{
		ID:         100,
		Code:       "3f1e8a10-6f6e-4c7d-9a70-2f25c8f0b111",
		BusinessID: 1,
		EmployeeID: 10,
		ClientID:   5,
		Status:     domain.StatusPending,
	}

	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{100: booking},
		byCode:   map[string]*domain.Booking{booking.Code: booking},
	}
	businesses := &fakeBusinessRepo{
		businesses: map[int64]*domain.Business{
			1: {ID: 1, ManagerIDs: []int64{7}},
		},
	}

	return NewService(bookings, businesses, nopLogger{}), bookings
}

func TestGetByID_Owner(t *testing.T) {
	svc, _ := newFixture()

	resp, err := svc.GetByID(context.Background(), 100, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
}

func TestGetByID_Manager(t *testing.T) {
	svc, _ := newFixture()

	resp, err := svc.GetByID(context.Background(), 100, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.GetByID(context.Background(), 100, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.GetByID(context.Background(), 999, 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByCode(t *testing.T) {
	svc, _ := newFixture()

	resp, err := svc.GetByCode(context.Background(), "3f1e8a10-6f6e-4c7d-9a70-2f25c8f0b111")
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)

	_, err = svc.GetByCode(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_Owner(t *testing.T) {
	svc, repo := newFixture()

	err := svc.Cancel(context.Background(), 100, &models.CancelBookingRequest{
		UserID:             5,
		CancellationReason: "не смогу прийти",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), repo.cancelledID)
	assert.Equal(t, "не смогу прийти", repo.cancelReason)
}

func TestCancel_Manager(t *testing.T) {
	svc, repo := newFixture()

	err := svc.Cancel(context.Background(), 100, &models.CancelBookingRequest{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(100), repo.cancelledID)
}

func TestCancel_StrangerDenied(t *testing.T) {
	svc, repo := newFixture()

	err := svc.Cancel(context.Background(), 100, &models.CancelBookingRequest{UserID: 8})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc, repo := newFixture()
	repo.bookings[100].Status = domain.StatusCancelled

	err := svc.Cancel(context.Background(), 100, &models.CancelBookingRequest{UserID: 5})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestConfirm_Manager(t *testing.T) {
	svc, repo := newFixture()

	err := svc.Confirm(context.Background(), 100, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(100), repo.updatedID)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestConfirm_NotManagerDenied(t *testing.T) {
	svc, _ := newFixture()

	// Даже владелец бронирования не может его подтвердить
	err := svc.Confirm(context.Background(), 100, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestConfirm_OnlyPending(t *testing.T) {
	svc, repo := newFixture()
	repo.bookings[100].Status = domain.StatusConfirmed

	err := svc.Confirm(context.Background(), 100, 7)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetClientBookings_StatusFilter(t *testing.T) {
	svc, repo := newFixture()

	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: 5,
		Status:   ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastClientStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastClientStatus)
}

func TestGetClientBookings_InvalidStatus(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: 5,
		Status:   ptr.Ptr("done"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetBusinessBookings_Manager(t *testing.T) {
	svc, repo := newFixture()

	_, err := svc.GetBusinessBookings(context.Background(), &models.GetBusinessBookingsRequest{
		UserID:     7,
		BusinessID: 1,
		EmployeeID: ptr.Ptr(int64(10)),
		Status:     ptr.Ptr("pending"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), repo.lastFilter.BusinessID)
	require.NotNil(t, repo.lastFilter.EmployeeID)
	assert.Equal(t, int64(10), *repo.lastFilter.EmployeeID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.lastFilter.Status)
}

func TestGetBusinessBookings_NotManagerDenied(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.GetBusinessBookings(context.Background(), &models.GetBusinessBookingsRequest{
		UserID:     5,
		BusinessID: 1,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
