package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VetClinicService/pkg/psqlbuilder"
)

const tableName = "appointments"

// employeeLockNamespace первый ключ pg_advisory_xact_lock для блокировок по сотруднику
const employeeLockNamespace = 1001

var columns = []string{
	"id",
	"title",
	"start_time",
	"end_time",
	"service_type",
	"status",
	"client_id",
	"guest_name",
	"guest_phone",
	"guest_email",
	"pet_id",
	"employee_id",
	"reason",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
	"created_by",
	"updated_by",
}

// Repository репозиторий для работы с приёмами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория приёмов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый приём
// ID генерируется заранее, если не задан
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	guestName, guestPhone, guestEmail := guestColumns(a.Guest)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"title",
			"start_time",
			"end_time",
			"service_type",
			"status",
			"client_id",
			"guest_name",
			"guest_phone",
			"guest_email",
			"pet_id",
			"employee_id",
			"reason",
			"notes",
			"created_by",
			"updated_by",
		).
		Values(
			a.ID,
			a.Title,
			a.StartTime,
			a.EndTime,
			string(a.ServiceType),
			string(a.Status),
			nullUUID(a.ClientID),
			guestName,
			guestPhone,
			guestEmail,
			nullUUID(a.PetID),
			nullUUID(a.EmployeeID),
			a.Reason,
			a.Notes,
			a.CreatedBy,
			a.UpdatedBy,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// GetByID получает приём по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
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

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// List получает приёмы по фильтру, отсортированные по времени начала
// Пустой фильтр возвращает все приёмы
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("start_time ASC", "id ASC")

	// Период задаётся по времени начала: [From, To)
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.PetID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"pet_id": *filter.PetID})
	}
	if filter.EmployeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}

	if len(filter.Statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}
	if len(filter.ExcludeStatuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": statusStrings(filter.ExcludeStatuses)})
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

	return scanAppointments(rows)
}

// FindOverlapping возвращает неотменённые приёмы сотрудника, пересекающиеся с [start, end)
// Внутри транзакции найденные строки блокируются (FOR UPDATE)
func (r *Repository) FindOverlapping(
	ctx context.Context,
	employeeID uuid.UUID,
	start, end time.Time,
	excludeID *uuid.UUID,
) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Полуоткрытые интервалы: соседние приёмы (конец = начало) не пересекаются
	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.NotEq{"status": string(domain.AppointmentStatusCancelled)}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC", "id ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// LockEmployee берёт транзакционную advisory-блокировку расписания сотрудника
// Блокировка снимается при завершении транзакции
func (r *Repository) LockEmployee(ctx context.Context, employeeID uuid.UUID) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockEmployee", ErrTransaction)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	_, err := executor.ExecContext(ctx,
		"SELECT pg_advisory_xact_lock($1, hashtext($2))",
		employeeLockNamespace, employeeID.String(),
	)
	if err != nil {
		return fmt.Errorf("%w: LockEmployee - execute: %v", ErrExecQuery, err)
	}

	return nil
}

// Update сохраняет изменяемые поля приёма
func (r *Repository) Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	guestName, guestPhone, guestEmail := guestColumns(a.Guest)

	query, args, err := psqlbuilder.Update(tableName).
		Set("title", a.Title).
		Set("start_time", a.StartTime).
		Set("end_time", a.EndTime).
		Set("service_type", string(a.ServiceType)).
		Set("status", string(a.Status)).
		Set("client_id", nullUUID(a.ClientID)).
		Set("guest_name", guestName).
		Set("guest_phone", guestPhone).
		Set("guest_email", guestEmail).
		Set("pet_id", nullUUID(a.PetID)).
		Set("employee_id", nullUUID(a.EmployeeID)).
		Set("reason", a.Reason).
		Set("notes", a.Notes).
		Set("cancellation_reason", a.CancellationReason).
		Set("cancelled_at", a.CancelledAt).
		Set("updated_by", a.UpdatedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return a, nil
}

// Delete удаляет приём (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует одну строку в доменную модель
func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a                                 domain.Appointment
		serviceType, status               string
		clientID, petID, employeeID       uuid.NullUUID
		guestName, guestPhone, guestEmail sql.NullString
		reason, notes, cancellationReason sql.NullString
		createdBy, updatedBy              sql.NullString
		cancelledAt                       sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.StartTime,
		&a.EndTime,
		&serviceType,
		&status,
		&clientID,
		&guestName,
		&guestPhone,
		&guestEmail,
		&petID,
		&employeeID,
		&reason,
		&notes,
		&cancellationReason,
		&cancelledAt,
		&a.CreatedAt,
		&a.UpdatedAt,
		&createdBy,
		&updatedBy,
	)
	if err != nil {
		return nil, err
	}

	a.ServiceType = domain.ServiceType(serviceType)
	a.Status = domain.AppointmentStatus(status)
	a.ClientID = uuidPtr(clientID)
	a.PetID = uuidPtr(petID)
	a.EmployeeID = uuidPtr(employeeID)
	a.Reason = stringPtr(reason)
	a.Notes = stringPtr(notes)
	a.CancellationReason = stringPtr(cancellationReason)
	a.CreatedBy = stringPtr(createdBy)
	a.UpdatedBy = stringPtr(updatedBy)
	if cancelledAt.Valid {
		t := cancelledAt.Time
		a.CancelledAt = &t
	}
	if guestName.Valid {
		a.Guest = &domain.GuestInfo{
			Name:  guestName.String,
			Phone: stringPtr(guestPhone),
			Email: stringPtr(guestEmail),
		}
	}

	return &a, nil
}

// scanAppointments сканирует результаты запроса в слайс приёмов
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func guestColumns(g *domain.GuestInfo) (name, phone, email *string) {
	if g == nil {
		return nil, nil, nil
	}
	n := g.Name
	return &n, g.Phone, g.Email
}

func statusStrings(statuses []domain.AppointmentStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func uuidPtr(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	v := id.UUID
	return &v
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
