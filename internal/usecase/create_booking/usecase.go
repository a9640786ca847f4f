package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	businessRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/business"
	serviceRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/service"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/schedule"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	employeeRepo EmployeeRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	employeeRepo EmployeeRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		employeeRepo: employeeRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Подбор сотрудника повторяется внутри сериализуемой транзакции по
// заблокированным строкам (FOR UPDATE): слот, свободный на момент показа
// клиенту, мог быть занят конкурентным бронированием.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, business=%d, services=%v, date=%s, time=%s",
		req.ClientID, req.BusinessID, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время, валидируем дату и время
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем бизнес
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Получаем услуги, считаем длительность визита и денормализуемые данные
	services, err := uc.serviceRepo.GetByIDs(ctx, req.BusinessID, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: some services not found: %v", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	for _, svc := range services {
		if !svc.Active {
			uc.logger.Warn("CreateBooking: service id=%d is not active", svc.ID)
			return nil, ErrServiceInactive
		}
	}

	totalDuration := domain.TotalOccupiedMinutes(services)

	// 5. Отбираем сотрудников, допущенных ко всем услугам
	employees, err := uc.employeeRepo.GetByBusinessID(ctx, req.BusinessID, true)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get employees: %v", err)
		return nil, fmt.Errorf("%w: failed to get employees: %v", ErrInternal, err)
	}

	qualified := domain.QualifiedForAll(employees, services)

	// Предпочитаемый сотрудник сужает кандидатов до одного
	if req.EmployeeID != nil {
		qualified = filterByID(qualified, *req.EmployeeID)
		if len(qualified) == 0 {
			uc.logger.Warn("CreateBooking: employee id=%d is not qualified for services %v",
				*req.EmployeeID, req.ServiceIDs)
			return nil, ErrEmployeeNotQualified
		}
	}

	if len(qualified) == 0 {
		uc.logger.Warn("CreateBooking: no qualified employees for business=%d, services=%v",
			req.BusinessID, req.ServiceIDs)
		return nil, ErrSlotNotAvailable
	}

	var result *domain.Booking

	// 6. Подбор сотрудника и запись - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Активные бронирования на дату, строки блокируются FOR UPDATE
		filter := domain.BusinessBookingsFilter{
			BusinessID: req.BusinessID,
			StartDate:  &req.Date,
			EndDate:    &req.Date,
		}

		bookings, err := uc.bookingRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Повторная проверка доступности по свежим данным
		candidates := make([]schedule.EmployeeDay, 0, len(qualified))
		for _, emp := range qualified {
			candidates = append(candidates, schedule.EmployeeDay{
				EmployeeID:   emp.ID,
				Hours:        emp.EffectiveHours(business, req.Date.Weekday()),
				Reservations: reservationsFor(bookings, emp.ID),
			})
		}

		employeeID, found, err := schedule.FindAvailableEmployee(candidates, req.StartTime, totalDuration)
		if err != nil {
			uc.logger.Error("CreateBooking: employee search failed: %v", err)
			return fmt.Errorf("%w: employee search failed: %v", ErrInternal, err)
		}
		if !found {
			uc.logger.Warn("CreateBooking: no employee available for slot %s on %s",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateBooking: assigned employee id=%d for slot %s", employeeID, req.StartTime)

		// 6.3. Вычисляем время окончания
		startMin, err := schedule.ParseWallClock(string(req.StartTime), schedule.BoundaryOpen)
		if err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		endTime, err := schedule.FormatMinutes(startMin + schedule.MinuteOffset(totalDuration))
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		// 6.4. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			Code:            uuid.NewString(),
			BusinessID:      req.BusinessID,
			EmployeeID:      employeeID,
			ClientID:        req.ClientID,
			ServiceIDs:      req.ServiceIDs,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: totalDuration,
			Status:          domain.StatusPending,
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			ServiceNames:    joinServiceNames(services),
			TotalPrice:      totalPrice(services),
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d code=%s", result.ID, result.Code)

	return &Response{
		ID:              result.ID,
		Code:            result.Code,
		ClientID:        result.ClientID,
		BusinessID:      result.BusinessID,
		EmployeeID:      result.EmployeeID,
		ServiceIDs:      result.ServiceIDs,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		ServiceNames:    result.ServiceNames,
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// filterByID оставляет из списка одного сотрудника с указанным ID
func filterByID(employees []*domain.Employee, id int64) []*domain.Employee {
	for _, e := range employees {
		if e.ID == id {
			return []*domain.Employee{e}
		}
	}
	return nil
}

// reservationsFor собирает занятые диапазоны одного сотрудника,
// отменённые бронирования отсекаются
func reservationsFor(bookings []*domain.Booking, employeeID int64) []schedule.Reservation {
	reservations := make([]schedule.Reservation, 0)
	for _, b := range bookings {
		if b.EmployeeID != employeeID || !b.IsActive() {
			continue
		}
		reservations = append(reservations, schedule.Reservation{
			Start: b.StartTime,
			End:   b.EndTime,
		})
	}
	return reservations
}

func joinServiceNames(services []*domain.Service) string {
	names := make([]string, len(services))
	for i, s := range services {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

func totalPrice(services []*domain.Service) float64 {
	total := 0.0
	for _, s := range services {
		total += s.Price
	}
	return total
}
