package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/integrations/directory"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

// UseCase use case для создания приёма
type UseCase struct {
	appointmentRepo AppointmentRepository
	directory       DirectoryResolver
	projector       Projector
	txManager       TransactionManager
	metrics         Metrics
	limits          domain.SchedulingLimits
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directory DirectoryResolver,
	projector Projector,
	txManager TransactionManager,
	metrics Metrics,
	limits domain.SchedulingLimits,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directory:       directory,
		projector:       projector,
		txManager:       txManager,
		metrics:         metrics,
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

// Execute выполняет use case создания приёма
// Проверка конфликтов и вставка выполняются в одной транзакции
// под advisory-блокировкой расписания сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*projection.AppointmentResponse, error) {
	uc.logger.Info("CreateAppointment: service=%s, start=%s, end=%s",
		req.ServiceType, req.StartTime.Format("2006-01-02T15:04Z07:00"), req.EndTime.Format("2006-01-02T15:04Z07:00"))

	// 1. Валидация входных данных
	appointment, err := buildAppointment(req, uc.limits, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем ссылки через справочник
	if err := uc.resolveReferences(ctx, appointment); err != nil {
		return nil, err
	}

	// 3. Проверка конфликтов и вставка под блокировкой расписания сотрудника
	var created *domain.Appointment
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if appointment.EmployeeID != nil {
			employeeID := *appointment.EmployeeID

			// 3.1. Блокируем расписание сотрудника
			if err := uc.appointmentRepo.LockEmployee(txCtx, employeeID); err != nil {
				uc.logger.Error("CreateAppointment: failed to lock employee=%s: %v", employeeID, err)
				return storageError("lock employee", err)
			}

			// 3.2. Ищем пересечения (FOR UPDATE)
			overlapping, err := uc.appointmentRepo.FindOverlapping(txCtx, employeeID, appointment.StartTime, appointment.EndTime, nil)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to find overlapping appointments: %v", err)
				return storageError("find overlapping", err)
			}

			if conflict := domain.FindConflict(overlapping, employeeID, appointment.StartTime, appointment.EndTime, nil); conflict != nil {
				uc.logger.Warn("CreateAppointment: employee=%s is busy, conflicting appointment id=%s", employeeID, conflict.ID)
				uc.metrics.RecordSchedulingConflict()
				return &domain.SchedulingConflictError{EmployeeID: employeeID, ConflictingID: conflict.ID}
			}
		}

		// 3.3. Сохраняем приём
		result, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return storageError("create appointment", err)
		}

		created = result
		return nil
	})

	if err != nil {
		return nil, storageError("transaction", err)
	}

	uc.metrics.RecordAppointmentCreated(string(created.ServiceType))
	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", created.ID)

	return uc.projector.Appointment(ctx, created), nil
}

// resolveReferences проверяет существование клиента, питомца и сотрудника
// и бизнес-правила, зависящие от данных справочника
func (uc *UseCase) resolveReferences(ctx context.Context, a *domain.Appointment) error {
	if a.ClientID != nil {
		if _, err := uc.directory.ResolveClient(ctx, *a.ClientID); err != nil {
			uc.logger.Warn("CreateAppointment: client id=%s lookup failed: %v", *a.ClientID, err)
			return directory.ToDomainError(err, domain.KindClient, *a.ClientID)
		}
	}

	if a.PetID != nil {
		pet, err := uc.directory.ResolvePet(ctx, *a.PetID)
		if err != nil {
			uc.logger.Warn("CreateAppointment: pet id=%s lookup failed: %v", *a.PetID, err)
			return directory.ToDomainError(err, domain.KindPet, *a.PetID)
		}
		if err := domain.ValidatePetOwnership(a.ClientID, pet); err != nil {
			uc.logger.Warn("CreateAppointment: %v", err)
			return err
		}
	}

	if a.EmployeeID != nil {
		employee, err := uc.directory.ResolveEmployee(ctx, *a.EmployeeID)
		if err != nil {
			uc.logger.Warn("CreateAppointment: employee id=%s lookup failed: %v", *a.EmployeeID, err)
			return directory.ToDomainError(err, domain.KindEmployee, *a.EmployeeID)
		}
		if err := domain.ValidateEmployeeForService(a.ServiceType, employee); err != nil {
			uc.logger.Warn("CreateAppointment: %v", err)
			return err
		}
	}

	return nil
}
