package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	businessRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/business"
	serviceRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/service"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
)

// UseCase use case для получения доступных слотов для бронирования.
// Слоты считаются на каждого допущенного сотрудника независимо,
// итог - объединение: слот доступен, если свободен хотя бы один сотрудник.
type UseCase struct {
	businessRepo BusinessRepository
	employeeRepo EmployeeRepository
	serviceRepo  ServiceRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	employeeRepo EmployeeRepository,
	serviceRepo ServiceRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo: businessRepo,
		employeeRepo: employeeRepo,
		serviceRepo:  serviceRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, services=%v, date=%s",
		req.BusinessID, req.ServiceIDs, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и валидируем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем бизнес
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Получаем выбранные услуги и считаем суммарную длительность визита
	services, err := uc.serviceRepo.GetByIDs(ctx, req.BusinessID, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: some services not found: %v", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	for _, svc := range services {
		if !svc.Active {
			uc.logger.Warn("GetAvailableSlots: service id=%d is not active", svc.ID)
			return nil, ErrServiceInactive
		}
	}

	totalDuration := domain.TotalOccupiedMinutes(services)

	// 5. Отбираем сотрудников, допущенных ко ВСЕМ выбранным услугам
	employees, err := uc.employeeRepo.GetByBusinessID(ctx, req.BusinessID, true)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get employees: %v", err)
		return nil, fmt.Errorf("%w: failed to get employees: %v", ErrInternal, err)
	}

	qualified := domain.QualifiedForAll(employees, services)

	// Предпочитаемый сотрудник сужает расчет до него одного
	if req.EmployeeID != nil {
		qualified = filterByID(qualified, *req.EmployeeID)
	}

	if len(qualified) == 0 {
		uc.logger.Info("GetAvailableSlots: no qualified employees for business=%d, services=%v",
			req.BusinessID, req.ServiceIDs)
		return uc.emptyResponse(req, totalDuration), nil
	}

	// 6. Получаем активные бронирования на эту дату
	filter := domain.BusinessBookingsFilter{
		BusinessID: req.BusinessID,
		StartDate:  &req.Date,
		EndDate:    &req.Date,
	}

	bookings, err := uc.bookingRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Считаем слоты на каждого сотрудника и объединяем
	union := make(map[schedule.WallClock]struct{})

	for _, emp := range qualified {
		effective := emp.EffectiveHours(business, req.Date.Weekday())
		if effective == nil {
			continue
		}

		slots, err := schedule.AvailableSlots(schedule.SlotsInput{
			Date:          req.Date,
			TotalDuration: totalDuration,
			DayHours:      *effective,
			Reservations:  reservationsFor(bookings, emp.ID),
			MidnightMode:  business.MidnightModeEnabled,
			Now:           now,
		})
		if err != nil {
			uc.logger.Error("GetAvailableSlots: slot generation failed for employee=%d: %v", emp.ID, err)
			return nil, fmt.Errorf("%w: slot generation failed: %v", ErrInternal, err)
		}

		for _, slot := range slots {
			union[slot] = struct{}{}
		}
	}

	sorted, err := sortSlots(union)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to sort slots: %v", err)
		return nil, fmt.Errorf("%w: failed to sort slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for business=%d, services=%v, date=%s",
		len(sorted), req.BusinessID, req.ServiceIDs, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:          req.Date,
		BusinessID:    req.BusinessID,
		ServiceIDs:    req.ServiceIDs,
		TotalDuration: totalDuration,
		Slots:         sorted,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, totalDuration int) *Response {
	return &Response{
		Date:          req.Date,
		BusinessID:    req.BusinessID,
		ServiceIDs:    req.ServiceIDs,
		TotalDuration: totalDuration,
		Slots:         []schedule.WallClock{},
	}
}
