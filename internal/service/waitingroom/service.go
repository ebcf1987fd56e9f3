package waitingroom

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
	"github.com/m04kA/SMC-VetClinicService/internal/service/waitingroom/models"
)

// Service сервис зала ожидания: очередь, этапы приёма и статистика
type Service struct {
	waitingRoomRepo WaitingRoomRepository
	projector       Projector
	txManager       TransactionManager
	metrics         Metrics
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса зала ожидания
func NewService(
	waitingRoomRepo WaitingRoomRepository,
	projector Projector,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		waitingRoomRepo: waitingRoomRepo,
		projector:       projector,
		txManager:       txManager,
		metrics:         metrics,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Queue возвращает текущую очередь: приоритет по убыванию, затем время прихода
// Порядок вычисляется при чтении и не хранится
func (s *Service) Queue(ctx context.Context) ([]*projection.WaitingRoomEntryResponse, error) {
	entries, err := s.waitingRoomRepo.List(ctx, domain.WaitingRoomFilter{Statuses: domain.ActiveQueueStatuses})
	if err != nil {
		s.logger.Error("Queue: repository error: %v", err)
		return nil, repositoryError("Queue", uuid.Nil, err)
	}

	domain.SortQueue(entries)
	s.observeQueue(entries)

	s.logger.Info("Queue: %d active entries", len(entries))
	return s.projector.WaitingRoomEntries(ctx, entries), nil
}

// Get возвращает запись очереди по ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*projection.WaitingRoomEntryResponse, error) {
	entry, err := s.waitingRoomRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("Get: entry id=%s: %v", id, err)
		return nil, repositoryError("Get", id, err)
	}
	return s.projector.WaitingRoomEntry(ctx, entry), nil
}

// Today возвращает все записи, пришедшие сегодня, в порядке прихода
func (s *Service) Today(ctx context.Context) ([]*projection.WaitingRoomEntryResponse, error) {
	entries, err := s.waitingRoomRepo.List(ctx, s.todayFilter())
	if err != nil {
		s.logger.Error("Today: repository error: %v", err)
		return nil, repositoryError("Today", uuid.Nil, err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ArrivalTime.Before(entries[j].ArrivalTime)
	})

	return s.projector.WaitingRoomEntries(ctx, entries), nil
}

// MoveToConsultation waiting -> in_consultation, фиксирует начало консультации
func (s *Service) MoveToConsultation(ctx context.Context, id uuid.UUID, req *models.TransitionRequest) (*projection.WaitingRoomEntryResponse, error) {
	return s.transition(ctx, "MoveToConsultation", id, func(e *domain.WaitingRoomEntry, now time.Time) error {
		if err := e.Status.ValidateTransition(domain.WaitingStatusInConsultation); err != nil {
			return err
		}
		e.Status = domain.WaitingStatusInConsultation
		e.ConsultationStartedAt = &now
		e.UpdatedBy = req.Actor
		return nil
	})
}

// Complete in_consultation -> completed, фиксирует время завершения
func (s *Service) Complete(ctx context.Context, id uuid.UUID, req *models.TransitionRequest) (*projection.WaitingRoomEntryResponse, error) {
	return s.transition(ctx, "Complete", id, func(e *domain.WaitingRoomEntry, now time.Time) error {
		if err := e.Status.ValidateTransition(domain.WaitingStatusCompleted); err != nil {
			return err
		}
		e.Status = domain.WaitingStatusCompleted
		e.CompletedAt = &now
		e.UpdatedBy = req.Actor
		return nil
	})
}

// Cancel снимает запись с очереди из waiting или in_consultation
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, req *models.CancelEntryRequest) (*projection.WaitingRoomEntryResponse, error) {
	var reason *string
	if req.Reason != nil {
		if trimmed := strings.TrimSpace(*req.Reason); trimmed != "" {
			reason = &trimmed
		}
	}
	if err := domain.ValidateLength("reason", reason, domain.MaxCancellationReasonLength); err != nil {
		return nil, err
	}

	return s.transition(ctx, "Cancel", id, func(e *domain.WaitingRoomEntry, now time.Time) error {
		if err := e.Status.ValidateTransition(domain.WaitingStatusCancelled); err != nil {
			return err
		}
		e.Status = domain.WaitingStatusCancelled
		e.CancelledAt = &now
		e.CancellationReason = reason
		e.UpdatedBy = req.Actor
		return nil
	})
}

// UpdatePriority меняет приоритет, пока запись ожидает
func (s *Service) UpdatePriority(ctx context.Context, id uuid.UUID, req *models.UpdatePriorityRequest) (*projection.WaitingRoomEntryResponse, error) {
	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		s.logger.Warn("UpdatePriority: %v", err)
		return nil, err
	}

	return s.transition(ctx, "UpdatePriority", id, func(e *domain.WaitingRoomEntry, _ time.Time) error {
		if e.Status != domain.WaitingStatusWaiting {
			return domain.NewInvalidOperation("priority can only be changed while waiting, entry is " + string(e.Status))
		}
		e.Priority = priority
		e.UpdatedBy = req.Actor
		return nil
	})
}

// Statistics сводка: ожидающие, на консультации, пришедшие сегодня и среднее ожидание за день
func (s *Service) Statistics(ctx context.Context) (*projection.StatisticsResponse, error) {
	var active, today []*domain.WaitingRoomEntry

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		active, err = s.waitingRoomRepo.List(txCtx, domain.WaitingRoomFilter{Statuses: domain.ActiveQueueStatuses})
		if err != nil {
			return err
		}
		today, err = s.waitingRoomRepo.List(txCtx, s.todayFilter())
		return err
	})
	if err != nil {
		s.logger.Error("Statistics: repository error: %v", err)
		return nil, repositoryError("Statistics", uuid.Nil, err)
	}

	s.observeQueue(active)
	return projection.Statistics(domain.ComputeStatistics(active, today)), nil
}

// transition загружает запись, применяет изменение и сохраняет в одной транзакции
func (s *Service) transition(
	ctx context.Context,
	op string,
	id uuid.UUID,
	apply func(e *domain.WaitingRoomEntry, now time.Time) error,
) (*projection.WaitingRoomEntryResponse, error) {
	s.logger.Info("%s: entry id=%s", op, id)

	var saved *domain.WaitingRoomEntry
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		entry, err := s.waitingRoomRepo.GetByID(txCtx, id)
		if err != nil {
			return repositoryError(op, id, err)
		}

		if err := apply(entry, s.timeProvider.Now()); err != nil {
			return err
		}

		result, err := s.waitingRoomRepo.Update(txCtx, entry)
		if err != nil {
			return repositoryError(op, id, err)
		}
		saved = result
		return nil
	})
	if err != nil {
		s.logger.Warn("%s: entry id=%s: %v", op, id, err)
		return nil, repositoryError(op, id, err)
	}

	s.logger.Info("%s: entry id=%s is now %s", op, id, saved.Status)
	return s.projector.WaitingRoomEntry(ctx, saved), nil
}

func (s *Service) todayFilter() domain.WaitingRoomFilter {
	from := domain.StartOfDay(s.timeProvider.Now(), s.location)
	to := from.AddDate(0, 0, 1)
	return domain.WaitingRoomFilter{ArrivedFrom: &from, ArrivedTo: &to}
}

func (s *Service) observeQueue(active []*domain.WaitingRoomEntry) {
	counts := map[domain.WaitingStatus]int{}
	for _, e := range active {
		counts[e.Status]++
	}
	for _, status := range domain.ActiveQueueStatuses {
		s.metrics.SetWaitingQueueLength(string(status), counts[status])
	}
}
