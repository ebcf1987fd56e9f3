package waitingroom

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VetClinicService/pkg/psqlbuilder"
)

const (
	tableName = "waiting_room_entries"

	// waitingPairIndex частичный уникальный индекс (client_id, pet_id) WHERE status = 'waiting'
	waitingPairIndex = "uq_waiting_room_waiting_pair"

	// pairLockNamespace первый ключ pg_advisory_xact_lock для блокировок пары клиент + питомец
	pairLockNamespace = 1002

	pqUniqueViolation = "23505"
)

var columns = []string{
	"id",
	"client_id",
	"pet_id",
	"arrival_time",
	"status",
	"priority",
	"reason",
	"notes",
	"consultation_started_at",
	"completed_at",
	"cancelled_at",
	"cancellation_reason",
	"created_at",
	"updated_at",
	"created_by",
	"updated_by",
}

// Repository репозиторий для работы с очередью зала ожидания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория очереди
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в очередь
// Вторая ожидающая запись для той же пары клиент + питомец отклоняется индексом (ErrDuplicateEntry)
func (r *Repository) Create(ctx context.Context, e *domain.WaitingRoomEntry) (*domain.WaitingRoomEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"client_id",
			"pet_id",
			"arrival_time",
			"status",
			"priority",
			"reason",
			"notes",
			"created_by",
			"updated_by",
		).
		Values(
			e.ID,
			e.ClientID,
			e.PetID,
			e.ArrivalTime,
			string(e.Status),
			int(e.Priority),
			e.Reason,
			e.Notes,
			e.CreatedBy,
			e.UpdatedBy,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if isWaitingPairViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return e, nil
}

// GetByID получает запись очереди по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WaitingRoomEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	e, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan entry: %v", ErrScanRow, err)
	}

	return e, nil
}

// FindWaiting возвращает ожидающую запись пары клиент + питомец
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) FindWaiting(ctx context.Context, clientID, petID uuid.UUID) (*domain.WaitingRoomEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{
			"client_id": clientID,
			"pet_id":    petID,
			"status":    string(domain.WaitingStatusWaiting),
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindWaiting - build select query: %v", ErrBuildQuery, err)
	}

	e, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindWaiting - scan entry: %v", ErrScanRow, err)
	}

	return e, nil
}

// List получает записи очереди по фильтру
// Порядок: приоритет по убыванию, время прихода по возрастанию, id
func (r *Repository) List(ctx context.Context, filter domain.WaitingRoomFilter) ([]*domain.WaitingRoomEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("priority DESC", "arrival_time ASC", "id ASC")

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statuses})
	}

	// Период прихода: [ArrivedFrom, ArrivedTo)
	if filter.ArrivedFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"arrival_time": *filter.ArrivedFrom})
	}
	if filter.ArrivedTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"arrival_time": *filter.ArrivedTo})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.WaitingRoomEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// LockPair берёт транзакционную advisory-блокировку пары клиент + питомец
func (r *Repository) LockPair(ctx context.Context, clientID, petID uuid.UUID) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockPair", ErrTransaction)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	_, err := executor.ExecContext(ctx,
		"SELECT pg_advisory_xact_lock($1, hashtext($2))",
		pairLockNamespace, clientID.String()+":"+petID.String(),
	)
	if err != nil {
		return fmt.Errorf("%w: LockPair - execute: %v", ErrExecQuery, err)
	}

	return nil
}

// Update сохраняет изменяемые поля записи
func (r *Repository) Update(ctx context.Context, e *domain.WaitingRoomEntry) (*domain.WaitingRoomEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", string(e.Status)).
		Set("priority", int(e.Priority)).
		Set("reason", e.Reason).
		Set("notes", e.Notes).
		Set("consultation_started_at", e.ConsultationStartedAt).
		Set("completed_at", e.CompletedAt).
		Set("cancelled_at", e.CancelledAt).
		Set("cancellation_reason", e.CancellationReason).
		Set("updated_by", e.UpdatedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		if isWaitingPairViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return e, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.WaitingRoomEntry, error) {
	var (
		e                                domain.WaitingRoomEntry
		status                           string
		priority                         int
		notes, cancellationReason        sql.NullString
		createdBy, updatedBy             sql.NullString
		consultationStarted, completedAt sql.NullTime
		cancelledAt                      sql.NullTime
	)

	err := row.Scan(
		&e.ID,
		&e.ClientID,
		&e.PetID,
		&e.ArrivalTime,
		&status,
		&priority,
		&e.Reason,
		&notes,
		&consultationStarted,
		&completedAt,
		&cancelledAt,
		&cancellationReason,
		&e.CreatedAt,
		&e.UpdatedAt,
		&createdBy,
		&updatedBy,
	)
	if err != nil {
		return nil, err
	}

	e.Status = domain.WaitingStatus(status)
	e.Priority = domain.Priority(priority)
	e.Notes = stringPtr(notes)
	e.CancellationReason = stringPtr(cancellationReason)
	e.CreatedBy = stringPtr(createdBy)
	e.UpdatedBy = stringPtr(updatedBy)
	e.ConsultationStartedAt = timePtr(consultationStarted)
	e.CompletedAt = timePtr(completedAt)
	e.CancelledAt = timePtr(cancelledAt)

	return &e, nil
}

// isWaitingPairViolation проверяет нарушение частичного уникального индекса ожидающих записей
func isWaitingPairViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUniqueViolation && pqErr.Constraint == waitingPairIndex
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
