package get_employee_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/integrations/directory"
)

// UseCase use case для расчёта свободных интервалов сотрудника на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	directory       EmployeeResolver
	settings        Settings
	limits          domain.SchedulingLimits
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directory EmployeeResolver,
	settings Settings,
	limits domain.SchedulingLimits,
	logger Logger,
) *UseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.SlotStepMinutes <= 0 {
		settings.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if settings.WorkingHours.Close <= settings.WorkingHours.Open {
		settings.WorkingHours = domain.DefaultWorkingHours()
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directory:       directory,
		settings:        settings,
		limits:          limits,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения свободных интервалов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetEmployeeAvailability: employee=%s, date=%s, duration=%d",
		req.EmployeeID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	duration, err := validateRequest(req, uc.limits, uc.settings.SlotStepMinutes)
	if err != nil {
		uc.logger.Warn("GetEmployeeAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем сотрудника через справочник
	employee, err := uc.directory.ResolveEmployee(ctx, req.EmployeeID)
	if err != nil {
		uc.logger.Warn("GetEmployeeAvailability: employee id=%s lookup failed: %v", req.EmployeeID, err)
		return nil, directory.ToDomainError(err, domain.KindEmployee, req.EmployeeID)
	}

	loc := uc.settings.Location
	day := domain.CalendarDay(req.Date, loc)
	now := uc.timeProvider.Now()

	response := &Response{
		EmployeeID:      employee.ID,
		EmployeeName:    employee.DisplayName(),
		Date:            day,
		DurationMinutes: int(duration / time.Minute),
		Slots:           []domain.Slot{},
	}

	// 3. Прошедшие дни не содержат интервалов
	if isDateInPast(day, now, loc) {
		uc.logger.Info("GetEmployeeAvailability: date %s is in the past", day.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Генерируем сетку интервалов рабочего дня
	open, closing := uc.settings.WorkingHours.Bounds(day, loc)
	step := time.Duration(uc.settings.SlotStepMinutes) * time.Minute
	slots := generateSlots(open, closing, duration, step, now)
	if len(slots) == 0 {
		return response, nil
	}

	// 5. Загружаем приёмы сотрудника, которые могут пересекаться с рабочим днём
	// Приём длиннее максимума не создаётся, поэтому начало ищем с запасом в MaxDuration
	from := open.Add(-time.Duration(uc.limits.MaxDurationMinutes) * time.Minute)
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentFilter{
		EmployeeID:      &req.EmployeeID,
		From:            &from,
		To:              &closing,
		ExcludeStatuses: []domain.AppointmentStatus{domain.AppointmentStatusCancelled},
	})
	if err != nil {
		uc.logger.Error("GetEmployeeAvailability: failed to list appointments: %v", err)
		return nil, storageError("list appointments", err)
	}

	// 6. Помечаем свободные интервалы
	free := markAvailability(slots, req.EmployeeID, appointments)
	response.Slots = slots

	uc.logger.Info("GetEmployeeAvailability: employee=%s, date=%s, slots=%d, free=%d",
		req.EmployeeID, day.Format(domain.DateFormat), len(slots), free)

	return response, nil
}
