package hours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	businessRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/business"
	employeeRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/employee"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/hours/models"
)

// Service сервис для работы с расписаниями бизнесов и сотрудников
type Service struct {
	businessRepo BusinessRepository
	employeeRepo EmployeeRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	businessRepo BusinessRepository,
	employeeRepo EmployeeRepository,
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		businessRepo: businessRepo,
		employeeRepo: employeeRepo,
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetBusinessHours возвращает расписание бизнеса. Публичная операция -
// клиенту нужно видеть часы работы до бронирования.
func (s *Service) GetBusinessHours(ctx context.Context, businessID int64) (*models.BusinessHoursResponse, error) {
	s.logger.Info("GetBusinessHours: fetching hours for business=%d", businessID)

	business, err := s.getBusiness(ctx, businessID, "GetBusinessHours")
	if err != nil {
		return nil, err
	}

	return &models.BusinessHoursResponse{
		BusinessID:          business.ID,
		MidnightModeEnabled: business.MidnightModeEnabled,
		Hours:               business.Hours,
	}, nil
}

// UpdateBusinessHours обновляет недельное расписание бизнеса.
// Доступно только менеджерам. Интервалы каждого дня проверяются на
// пересечения, затем новое расписание сверяется с будущими активными
// бронированиями: бронь, выпадающая из новых часов, блокирует обновление.
func (s *Service) UpdateBusinessHours(ctx context.Context, req *models.UpdateBusinessHoursRequest) (*models.BusinessHoursResponse, error) {
	s.logger.Info("UpdateBusinessHours: updating hours for business=%d by user=%d", req.BusinessID, req.UserID)

	business, err := s.getBusiness(ctx, req.BusinessID, "UpdateBusinessHours")
	if err != nil {
		return nil, err
	}

	if !business.IsManager(req.UserID) {
		s.logger.Warn("UpdateBusinessHours: user=%d is not a manager of business=%d", req.UserID, req.BusinessID)
		return nil, ErrAccessDenied
	}

	if err := validateWeek(req.Hours); err != nil {
		s.logger.Warn("UpdateBusinessHours: invalid hours for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	if err := s.checkBusinessConflicts(ctx, req.BusinessID, req.Hours); err != nil {
		return nil, err
	}

	if err := s.businessRepo.UpdateHours(ctx, req.BusinessID, req.Hours, req.MidnightModeEnabled); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("UpdateBusinessHours: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: UpdateBusinessHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBusinessHours: successfully updated hours for business=%d", req.BusinessID)
	return &models.BusinessHoursResponse{
		BusinessID:          req.BusinessID,
		MidnightModeEnabled: req.MidnightModeEnabled,
		Hours:               req.Hours,
	}, nil
}

// UpdateEmployeeHours обновляет личное расписание сотрудника.
// Доступно только менеджерам бизнеса, которому принадлежит сотрудник.
// Будущие бронирования сотрудника сверяются с новыми действующими часами.
func (s *Service) UpdateEmployeeHours(ctx context.Context, req *models.UpdateEmployeeHoursRequest) (*models.EmployeeHoursResponse, error) {
	s.logger.Info("UpdateEmployeeHours: updating hours for employee=%d by user=%d", req.EmployeeID, req.UserID)

	business, err := s.getBusiness(ctx, req.BusinessID, "UpdateEmployeeHours")
	if err != nil {
		return nil, err
	}

	if !business.IsManager(req.UserID) {
		s.logger.Warn("UpdateEmployeeHours: user=%d is not a manager of business=%d", req.UserID, req.BusinessID)
		return nil, ErrAccessDenied
	}

	employee, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("UpdateEmployeeHours: employee=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("UpdateEmployeeHours: repository error for employee=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: UpdateEmployeeHours - repository error: %v", ErrInternal, err)
	}

	if employee.BusinessID != req.BusinessID {
		s.logger.Warn("UpdateEmployeeHours: employee=%d does not belong to business=%d", req.EmployeeID, req.BusinessID)
		return nil, ErrEmployeeNotFound
	}

	if req.Hours != nil {
		if err := validateWeek(*req.Hours); err != nil {
			s.logger.Warn("UpdateEmployeeHours: invalid hours for employee=%d: %v", req.EmployeeID, err)
			return nil, err
		}
	}

	// Действующие часы после обновления: личные или часы бизнеса
	employee.Hours = req.Hours
	if err := s.checkEmployeeConflicts(ctx, business, employee); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.UpdateHours(ctx, req.EmployeeID, req.Hours); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("UpdateEmployeeHours: repository error for employee=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: UpdateEmployeeHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateEmployeeHours: successfully updated hours for employee=%d", req.EmployeeID)
	return &models.EmployeeHoursResponse{
		EmployeeID: req.EmployeeID,
		BusinessID: req.BusinessID,
		Hours:      req.Hours,
	}, nil
}

// Вспомогательные методы

func (s *Service) getBusiness(ctx context.Context, businessID int64, op string) (*domain.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("%s: business=%d not found", op, businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("%s: failed to get business=%d: %v", op, businessID, err)
		return nil, fmt.Errorf("%w: %s - failed to get business: %v", ErrInternal, op, err)
	}
	return business, nil
}

// checkBusinessConflicts сверяет будущие активные бронирования бизнеса
// с новым расписанием
func (s *Service) checkBusinessConflicts(ctx context.Context, businessID int64, hours domain.WeekHours) error {
	bookings, err := s.futureActiveBookings(ctx, businessID, nil)
	if err != nil {
		return err
	}

	for _, b := range bookings {
		ok, err := schedule.RangeWithinHours(b.StartTime, b.EndTime, hours.ForWeekday(b.BookingDate.Weekday()))
		if err != nil {
			return fmt.Errorf("%w: conflict check - booking id=%d: %v", ErrInvalidHours, b.ID, err)
		}
		if !ok {
			s.logger.Warn("checkBusinessConflicts: booking id=%d (%s %s-%s) falls outside new hours",
				b.ID, b.BookingDate.Format(domain.DateFormat), b.StartTime, b.EndTime)
			return fmt.Errorf("%w: booking id=%d on %s", ErrHoursConflict, b.ID, b.BookingDate.Format(domain.DateFormat))
		}
	}

	return nil
}

// checkEmployeeConflicts сверяет будущие активные бронирования сотрудника
// с его новыми действующими часами
func (s *Service) checkEmployeeConflicts(ctx context.Context, business *domain.Business, employee *domain.Employee) error {
	bookings, err := s.futureActiveBookings(ctx, business.ID, &employee.ID)
	if err != nil {
		return err
	}

	for _, b := range bookings {
		effective := employee.EffectiveHours(business, b.BookingDate.Weekday())
		if effective == nil {
			s.logger.Warn("checkEmployeeConflicts: booking id=%d on %s falls on a day off",
				b.ID, b.BookingDate.Format(domain.DateFormat))
			return fmt.Errorf("%w: booking id=%d on %s", ErrHoursConflict, b.ID, b.BookingDate.Format(domain.DateFormat))
		}

		ok, err := schedule.RangeWithinHours(b.StartTime, b.EndTime, *effective)
		if err != nil {
			return fmt.Errorf("%w: conflict check - booking id=%d: %v", ErrInvalidHours, b.ID, err)
		}
		if !ok {
			s.logger.Warn("checkEmployeeConflicts: booking id=%d (%s %s-%s) falls outside new hours",
				b.ID, b.BookingDate.Format(domain.DateFormat), b.StartTime, b.EndTime)
			return fmt.Errorf("%w: booking id=%d on %s", ErrHoursConflict, b.ID, b.BookingDate.Format(domain.DateFormat))
		}
	}

	return nil
}

func (s *Service) futureActiveBookings(ctx context.Context, businessID int64, employeeID *int64) ([]*domain.Booking, error) {
	today := truncateToDay(s.timeProvider.Now())

	bookings, err := s.bookingRepo.GetByBusinessWithFilter(ctx, domain.BusinessBookingsFilter{
		BusinessID: businessID,
		EmployeeID: employeeID,
		StartDate:  &today,
	})
	if err != nil {
		s.logger.Error("futureActiveBookings: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: futureActiveBookings - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}

// validateWeek проверяет каждый день недели: интервалы читаемы и попарно
// не пересекаются
func validateWeek(hours domain.WeekHours) error {
	for _, day := range hours.Days() {
		if !day.Hours.Enabled {
			continue
		}
		valid, err := schedule.IntervalsAreValid(day.Hours.Intervals)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidHours, day.Weekday, err)
		}
		if !valid {
			return fmt.Errorf("%w: %s: overlapping intervals", ErrInvalidHours, day.Weekday)
		}
	}
	return nil
}

// truncateToDay отбрасывает время, оставляя полуночь того же дня
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
