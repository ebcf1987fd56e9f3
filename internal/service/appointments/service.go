package appointments

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/service/appointments/models"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

// Service сервис чтения приёмов и смены их статуса
type Service struct {
	appointmentRepo AppointmentRepository
	projector       Projector
	txManager       TransactionManager
	metrics         Metrics
	location        *time.Location
	upcomingWindow  time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса приёмов
func NewService(
	appointmentRepo AppointmentRepository,
	projector Projector,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	upcomingWindow time.Duration,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	if upcomingWindow <= 0 {
		upcomingWindow = domain.DefaultUpcomingWindow
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		projector:       projector,
		txManager:       txManager,
		metrics:         metrics,
		location:        location,
		upcomingWindow:  upcomingWindow,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает приём по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*projection.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("GetByID: appointment id=%s: %v", id, err)
		return nil, repositoryError("GetByID", id, err)
	}

	return s.projector.Appointment(ctx, appointment), nil
}

// List возвращает приёмы по фильтру, отсортированные по времени начала
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) ([]*projection.AppointmentResponse, error) {
	filter, err := req.ToDomainFilter(s.location)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	return s.list(ctx, "List", filter)
}

// Today возвращает приёмы текущего дня в часовом поясе клиники
func (s *Service) Today(ctx context.Context) ([]*projection.AppointmentResponse, error) {
	from := domain.StartOfDay(s.timeProvider.Now(), s.location)
	to := from.AddDate(0, 0, 1)

	return s.list(ctx, "Today", domain.AppointmentFilter{From: &from, To: &to})
}

// Upcoming возвращает приёмы, начинающиеся в ближайшее окно, кроме отменённых и завершённых
func (s *Service) Upcoming(ctx context.Context) ([]*projection.AppointmentResponse, error) {
	from := s.timeProvider.Now()
	to := from.Add(s.upcomingWindow)

	return s.list(ctx, "Upcoming", domain.AppointmentFilter{
		From: &from,
		To:   &to,
		ExcludeStatuses: []domain.AppointmentStatus{
			domain.AppointmentStatusCancelled,
			domain.AppointmentStatusCompleted,
		},
	})
}

func (s *Service) list(ctx context.Context, op string, filter domain.AppointmentFilter) ([]*projection.AppointmentResponse, error) {
	list, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, repositoryError(op, uuid.Nil, err)
	}

	s.logger.Info("%s: found %d appointments", op, len(list))
	return s.projector.Appointments(ctx, list), nil
}

// ChangeStatus переводит приём в новый статус по таблице переходов
// Клиническому приёму нужен назначенный сотрудник до подтверждения или начала
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, req *models.ChangeStatusRequest) (*projection.AppointmentResponse, error) {
	s.logger.Info("ChangeStatus: appointment id=%s, to=%s", id, req.Status)

	to, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("ChangeStatus: %v", err)
		return nil, err
	}

	var (
		saved *domain.Appointment
		from  domain.AppointmentStatus
	)
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			return repositoryError("ChangeStatus", id, err)
		}
		from = current.Status

		if err := current.Status.ValidateTransition(to); err != nil {
			return err
		}
		if requiresEmployee(to) && current.RequiresVeterinarian() && current.EmployeeID == nil {
			return domain.NewValidationError("employeeId", "clinical appointment requires an employee before "+string(to))
		}

		current.Status = to
		current.UpdatedBy = req.Actor
		if to == domain.AppointmentStatusCancelled {
			now := s.timeProvider.Now()
			current.CancelledAt = &now
		}

		result, err := s.appointmentRepo.Update(txCtx, current)
		if err != nil {
			return repositoryError("ChangeStatus", id, err)
		}
		saved = result
		return nil
	})
	if err != nil {
		s.logger.Warn("ChangeStatus: appointment id=%s: %v", id, err)
		return nil, repositoryError("ChangeStatus", id, err)
	}

	s.metrics.RecordAppointmentTransition(string(from), string(to))
	s.logger.Info("ChangeStatus: appointment id=%s moved %s -> %s", id, from, to)

	return s.projector.Appointment(ctx, saved), nil
}

// Cancel отменяет приём и дописывает причину в заметки
// Повторная отмена уже отменённого приёма ничего не меняет
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, req *models.CancelAppointmentRequest) (*projection.AppointmentResponse, error) {
	s.logger.Info("Cancel: appointment id=%s", id)

	var reason *string
	if req.Reason != nil {
		if trimmed := strings.TrimSpace(*req.Reason); trimmed != "" {
			reason = &trimmed
		}
	}
	if err := domain.ValidateLength("reason", reason, domain.MaxCancellationReasonLength); err != nil {
		return nil, err
	}

	var (
		saved      *domain.Appointment
		from       domain.AppointmentStatus
		transition bool
	)
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			return repositoryError("Cancel", id, err)
		}
		from = current.Status

		if current.IsCancelled() {
			saved = current
			return nil
		}
		if err := current.Status.ValidateTransition(domain.AppointmentStatusCancelled); err != nil {
			return err
		}

		now := s.timeProvider.Now()
		current.Status = domain.AppointmentStatusCancelled
		current.CancelledAt = &now
		current.CancellationReason = reason
		current.UpdatedBy = req.Actor
		if reason != nil {
			current.Notes = appendCancellationNote(current.Notes, *reason)
		}
		if err := domain.ValidateLength("notes", current.Notes, domain.MaxNotesLength); err != nil {
			return err
		}

		result, err := s.appointmentRepo.Update(txCtx, current)
		if err != nil {
			return repositoryError("Cancel", id, err)
		}
		saved = result
		transition = true
		return nil
	})
	if err != nil {
		s.logger.Warn("Cancel: appointment id=%s: %v", id, err)
		return nil, repositoryError("Cancel", id, err)
	}

	if transition {
		s.metrics.RecordAppointmentTransition(string(from), string(domain.AppointmentStatusCancelled))
		s.logger.Info("Cancel: appointment id=%s cancelled", id)
	} else {
		s.logger.Info("Cancel: appointment id=%s is already cancelled", id)
	}

	return s.projector.Appointment(ctx, saved), nil
}

// Delete удаляет приём без возможности восстановления
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: appointment id=%s", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		s.logger.Warn("Delete: appointment id=%s: %v", id, err)
		return repositoryError("Delete", id, err)
	}

	s.logger.Info("Delete: appointment id=%s deleted", id)
	return nil
}

func requiresEmployee(to domain.AppointmentStatus) bool {
	return to == domain.AppointmentStatusConfirmed || to == domain.AppointmentStatusInProgress
}

func appendCancellationNote(notes *string, reason string) *string {
	line := "Cancellation reason: " + reason
	if notes == nil || strings.TrimSpace(*notes) == "" {
		return &line
	}
	joined := *notes + "\n" + line
	return &joined
}
