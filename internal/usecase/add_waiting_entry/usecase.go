package add_waiting_entry

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/integrations/directory"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

// UseCase use case для постановки питомца в очередь зала ожидания
type UseCase struct {
	waitingRoomRepo WaitingRoomRepository
	directory       DirectoryResolver
	projector       Projector
	txManager       TransactionManager
	metrics         Metrics
	maxTextLength   int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	waitingRoomRepo WaitingRoomRepository,
	directory DirectoryResolver,
	projector Projector,
	txManager TransactionManager,
	metrics Metrics,
	maxTextLength int,
	logger Logger,
) *UseCase {
	if maxTextLength <= 0 {
		maxTextLength = domain.MaxReasonLength
	}
	return &UseCase{
		waitingRoomRepo: waitingRoomRepo,
		directory:       directory,
		projector:       projector,
		txManager:       txManager,
		metrics:         metrics,
		maxTextLength:   maxTextLength,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute ставит пару клиент-питомец в очередь
// Проверка дубликата и вставка выполняются под advisory-блокировкой пары
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*projection.WaitingRoomEntryResponse, error) {
	uc.logger.Info("AddWaitingEntry: client=%s, pet=%s, priority=%s", req.ClientID, req.PetID, req.Priority)

	// 1. Валидация входных данных
	priority, err := validateRequest(req, uc.maxTextLength)
	if err != nil {
		uc.logger.Warn("AddWaitingEntry: validation failed: %v", err)
		return nil, err
	}

	// 2. Клиент и питомец должны существовать, питомец принадлежит клиенту
	if _, err := uc.directory.ResolveClient(ctx, req.ClientID); err != nil {
		uc.logger.Warn("AddWaitingEntry: client id=%s lookup failed: %v", req.ClientID, err)
		return nil, directory.ToDomainError(err, domain.KindClient, req.ClientID)
	}
	pet, err := uc.directory.ResolvePet(ctx, req.PetID)
	if err != nil {
		uc.logger.Warn("AddWaitingEntry: pet id=%s lookup failed: %v", req.PetID, err)
		return nil, directory.ToDomainError(err, domain.KindPet, req.PetID)
	}
	if err := domain.ValidatePetOwnership(&req.ClientID, pet); err != nil {
		uc.logger.Warn("AddWaitingEntry: %v", err)
		return nil, err
	}

	entry := &domain.WaitingRoomEntry{
		ClientID:    req.ClientID,
		PetID:       req.PetID,
		ArrivalTime: uc.timeProvider.Now(),
		Status:      domain.WaitingStatusWaiting,
		Priority:    priority,
		Reason:      strings.TrimSpace(req.Reason),
		Notes:       req.Notes,
		CreatedBy:   req.Actor,
		UpdatedBy:   req.Actor,
	}

	// 3. Проверка дубликата и вставка под блокировкой пары клиент/питомец
	var created *domain.WaitingRoomEntry
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.waitingRoomRepo.LockPair(txCtx, req.ClientID, req.PetID); err != nil {
			uc.logger.Error("AddWaitingEntry: failed to lock pair: %v", err)
			return storageError("lock pair", err)
		}

		existing, err := uc.waitingRoomRepo.FindWaiting(txCtx, req.ClientID, req.PetID)
		switch {
		case err == nil:
			uc.logger.Warn("AddWaitingEntry: pet=%s is already waiting, entry id=%s", req.PetID, existing.ID)
			return &domain.DuplicateWaitingEntryError{ClientID: req.ClientID, PetID: req.PetID}
		case !isNotWaiting(err):
			uc.logger.Error("AddWaitingEntry: failed to find waiting entry: %v", err)
			return storageError("find waiting", err)
		}

		result, err := uc.waitingRoomRepo.Create(txCtx, entry)
		if err != nil {
			if isDuplicate(err) {
				uc.logger.Warn("AddWaitingEntry: unique index rejected duplicate for pet=%s", req.PetID)
				return &domain.DuplicateWaitingEntryError{ClientID: req.ClientID, PetID: req.PetID}
			}
			uc.logger.Error("AddWaitingEntry: failed to create entry: %v", err)
			return storageError("create entry", err)
		}

		created = result
		return nil
	})

	if err != nil {
		return nil, storageError("transaction", err)
	}

	uc.metrics.RecordWaitingRoomAdmission(created.Priority.String())
	uc.logger.Info("AddWaitingEntry: successfully added entry id=%s", created.ID)

	return uc.projector.WaitingRoomEntry(ctx, created), nil
}
