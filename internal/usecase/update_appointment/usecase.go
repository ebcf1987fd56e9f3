package update_appointment

import (
	"context"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/integrations/directory"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

// UseCase use case для частичного обновления приёма
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

// Execute применяет изменения к приёму
// Инварианты клиента и питомца перепроверяются только при их изменении,
// конфликт расписания только при смене сотрудника или интервала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*projection.AppointmentResponse, error) {
	uc.logger.Info("UpdateAppointment: id=%s", req.ID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed for id=%s: %v", req.ID, err)
		return nil, err
	}

	var saved *domain.Appointment
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Загружаем текущее состояние (FOR UPDATE)
		current, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return repositoryError("get appointment", req.ID, err)
		}

		if current.IsTerminal() {
			uc.logger.Warn("UpdateAppointment: appointment id=%s is %s", current.ID, current.Status)
			return domain.NewInvalidOperation("appointment in status " + string(current.Status) + " cannot be modified")
		}

		// 2. Применяем изменения и перепроверяем затронутые инварианты
		updated, ch := applyPatch(current, req)
		if err := uc.validate(txCtx, updated, ch); err != nil {
			uc.logger.Warn("UpdateAppointment: id=%s rejected: %v", req.ID, err)
			return err
		}

		// 3. Проверка конфликтов при смене сотрудника или времени
		if updated.EmployeeID != nil && (ch.employee || ch.interval) {
			if err := uc.checkConflict(txCtx, updated); err != nil {
				return err
			}
		}

		// 4. Сохраняем
		result, err := uc.appointmentRepo.Update(txCtx, updated)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to update id=%s: %v", req.ID, err)
			return repositoryError("update appointment", req.ID, err)
		}

		saved = result
		return nil
	})

	if err != nil {
		return nil, repositoryError("transaction", req.ID, err)
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%s", saved.ID)
	return uc.projector.Appointment(ctx, saved), nil
}

// validate проверяет инварианты, затронутые изменениями
func (uc *UseCase) validate(ctx context.Context, a *domain.Appointment, ch changes) error {
	if ch.interval {
		if err := domain.ValidateInterval(a.StartTime, a.EndTime, uc.limits.MinDurationMinutes, uc.limits.MaxDurationMinutes); err != nil {
			return err
		}
		if !a.EndTime.After(uc.timeProvider.Now()) {
			return domain.NewValidationError("endTime", "appointment must end in the future")
		}
	}

	if err := domain.ValidateAppointmentText(a, uc.limits); err != nil {
		return err
	}

	if ch.client {
		if err := domain.ValidateClientIdentification(a.ClientID, a.Guest); err != nil {
			return err
		}
		if a.ClientID != nil {
			if _, err := uc.directory.ResolveClient(ctx, *a.ClientID); err != nil {
				return directory.ToDomainError(err, domain.KindClient, *a.ClientID)
			}
		}
	}

	if (ch.client || ch.pet) && a.PetID != nil {
		if a.ClientID == nil {
			return domain.NewValidationError("petId", "guest appointments cannot reference a registered pet")
		}
		pet, err := uc.directory.ResolvePet(ctx, *a.PetID)
		if err != nil {
			return directory.ToDomainError(err, domain.KindPet, *a.PetID)
		}
		if err := domain.ValidatePetOwnership(a.ClientID, pet); err != nil {
			return err
		}
	}

	if (ch.employee || ch.service) && a.EmployeeID != nil {
		employee, err := uc.directory.ResolveEmployee(ctx, *a.EmployeeID)
		if err != nil {
			return directory.ToDomainError(err, domain.KindEmployee, *a.EmployeeID)
		}
		if err := domain.ValidateEmployeeForService(a.ServiceType, employee); err != nil {
			return err
		}
	}

	// После подтверждения клиническому приёму нужен сотрудник
	if (ch.employee || ch.service) && a.EmployeeID == nil &&
		a.Status != domain.AppointmentStatusScheduled && a.ServiceType.IsClinical() {
		return domain.NewValidationError("employeeId", "clinical appointment in status "+string(a.Status)+" requires an employee")
	}

	return nil
}

// checkConflict блокирует расписание сотрудника и ищет пересечения, исключая сам приём
func (uc *UseCase) checkConflict(ctx context.Context, a *domain.Appointment) error {
	employeeID := *a.EmployeeID

	if err := uc.appointmentRepo.LockEmployee(ctx, employeeID); err != nil {
		uc.logger.Error("UpdateAppointment: failed to lock employee=%s: %v", employeeID, err)
		return repositoryError("lock employee", a.ID, err)
	}

	overlapping, err := uc.appointmentRepo.FindOverlapping(ctx, employeeID, a.StartTime, a.EndTime, &a.ID)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to find overlapping appointments: %v", err)
		return repositoryError("find overlapping", a.ID, err)
	}

	if conflict := domain.FindConflict(overlapping, employeeID, a.StartTime, a.EndTime, &a.ID); conflict != nil {
		uc.logger.Warn("UpdateAppointment: employee=%s is busy, conflicting appointment id=%s", employeeID, conflict.ID)
		uc.metrics.RecordSchedulingConflict()
		return &domain.SchedulingConflictError{EmployeeID: employeeID, ConflictingID: conflict.ID}
	}

	return nil
}
