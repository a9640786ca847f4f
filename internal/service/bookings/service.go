package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	bookingRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/booking"
	businessRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/business"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он является менеджером бизнеса
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetByCode получает бронирование по публичному коду.
// Код - UUID из ссылки подтверждения, знание кода и есть право доступа.
func (s *Service) GetByCode(ctx context.Context, code string) (*models.BookingResponse, error) {
	s.logger.Info("GetByCode: fetching booking code=%s", code)

	booking, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByCode: booking code=%s not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCode: successfully fetched booking id=%d", booking.ID)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBusinessBookings получает бронирования бизнеса с гибкой фильтрацией
// Поддерживает фильтрацию по сотруднику, периоду, статусу и включению
// отменённых бронирований. Доступно только менеджерам бизнеса.
func (s *Service) GetBusinessBookings(ctx context.Context, req *models.GetBusinessBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetBusinessBookings: fetching bookings for business=%d, user=%d", req.BusinessID, req.UserID)
	if req.EmployeeID != nil {
		logMsg += fmt.Sprintf(", employee=%d", *req.EmployeeID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if err := s.checkManagerAccess(ctx, req.BusinessID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBusinessBookings: invalid filter for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBusinessBookings: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetBusinessBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBusinessBookings: successfully fetched %d bookings for business=%d", len(bookings), req.BusinessID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Клиент может отменить только своё бронирование, менеджер - любое
// бронирование своего бизнеса. Уже отменённое отменить нельзя.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Не владелец - проверяем менеджерские права
	if booking.ClientID != req.UserID {
		if err := s.checkManagerAccess(ctx, booking.BusinessID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Confirm переводит бронирование из pending в confirmed
// Доступно только менеджерам бизнеса
func (s *Service) Confirm(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Confirm: confirming booking id=%d by user=%d", bookingID, userID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, booking.BusinessID, userID); err != nil {
		return err
	}

	if booking.Status != domain.StatusPending {
		s.logger.Warn("Confirm: booking id=%d has status=%s, only pending can be confirmed", bookingID, booking.Status)
		return fmt.Errorf("%w: only pending bookings can be confirmed", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь может видеть своё бронирование или если он менеджер бизнеса
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.ClientID == userID {
		return nil
	}

	if err := s.checkManagerAccess(ctx, booking.BusinessID, userID); err != nil {
		return ErrAccessDenied
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером бизнеса
func (s *Service) checkManagerAccess(ctx context.Context, businessID int64, userID int64) error {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("checkManagerAccess: business id=%d not found", businessID)
			return ErrBusinessNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get business id=%d: %v", businessID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get business: %v", ErrInternal, err)
	}

	if business.IsManager(userID) {
		s.logger.Info("checkManagerAccess: user=%d is manager of business=%d", userID, businessID)
		return nil
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of business=%d", userID, businessID)
	return ErrAccessDenied
}
