// Package memory хранилище в памяти с теми же контрактами и ошибками, что и PostgreSQL репозитории
// Используется в unit-тестах usecase, сервисов и handlers
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-VetClinicService/internal/infra/storage/appointment"
	waitingRoomRepo "github.com/m04kA/SMC-VetClinicService/internal/infra/storage/waitingroom"
)

type txKey struct{}

// Store общее состояние хранилища
type Store struct {
	mu           sync.Mutex
	txMu         sync.Mutex
	appointments map[uuid.UUID]domain.Appointment
	entries      map[uuid.UUID]domain.WaitingRoomEntry
	now          func() time.Time

	// Err возвращается всеми методами репозиториев, если задан
	Err error
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		appointments: make(map[uuid.UUID]domain.Appointment),
		entries:      make(map[uuid.UUID]domain.WaitingRoomEntry),
		now:          time.Now,
	}
}

// Appointments репозиторий приёмов поверх хранилища
func (s *Store) Appointments() *Appointments {
	return &Appointments{s: s}
}

// WaitingRoom репозиторий очереди поверх хранилища
func (s *Store) WaitingRoom() *WaitingRoom {
	return &WaitingRoom{s: s}
}

// TxManager менеджер транзакций поверх хранилища
// Транзакции выполняются строго последовательно, что соответствует serializable
func (s *Store) TxManager() *TxManager {
	return &TxManager{s: s}
}

// TxManager последовательное выполнение транзакций
type TxManager struct {
	s *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	// Снимок для отката при ошибке
	m.s.mu.Lock()
	appointments := make(map[uuid.UUID]domain.Appointment, len(m.s.appointments))
	for k, v := range m.s.appointments {
		appointments[k] = v
	}
	entries := make(map[uuid.UUID]domain.WaitingRoomEntry, len(m.s.entries))
	for k, v := range m.s.entries {
		entries[k] = v
	}
	m.s.mu.Unlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.s.mu.Lock()
		m.s.appointments = appointments
		m.s.entries = entries
		m.s.mu.Unlock()
		return err
	}

	return nil
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// Appointments in-memory реализация репозитория приёмов
type Appointments struct {
	s *Store
}

func (r *Appointments) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := r.s.now()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.s.appointments[a.ID] = *a

	return a, nil
}

func (r *Appointments) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}

	a, ok := r.s.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return &a, nil
}

func (r *Appointments) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}

	result := make([]*domain.Appointment, 0)
	for _, a := range r.s.appointments {
		if !matchAppointment(a, filter) {
			continue
		}
		a := a
		result = append(result, &a)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].StartTime.Before(result[j].StartTime)
		}
		return result[i].ID.String() < result[j].ID.String()
	})

	return result, nil
}

func (r *Appointments) FindOverlapping(
	ctx context.Context,
	employeeID uuid.UUID,
	start, end time.Time,
	excludeID *uuid.UUID,
) ([]*domain.Appointment, error) {
	all, err := r.List(ctx, domain.AppointmentFilter{EmployeeID: &employeeID})
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Appointment, 0)
	for _, a := range all {
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if a.BlocksSchedule() && a.Overlaps(start, end) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *Appointments) LockEmployee(ctx context.Context, _ uuid.UUID) error {
	if !inTx(ctx) {
		return appointmentRepo.ErrTransaction
	}
	return nil
}

func (r *Appointments) Update(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}

	existing, ok := r.s.appointments[a.ID]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = r.s.now()
	r.s.appointments[a.ID] = *a

	return a, nil
}

func (r *Appointments) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.Err != nil {
		return r.s.Err
	}

	if _, ok := r.s.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(r.s.appointments, id)
	return nil
}

// Count количество сохранённых приёмов
func (r *Appointments) Count() int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.appointments)
}

func matchAppointment(a domain.Appointment, f domain.AppointmentFilter) bool {
	if f.From != nil && a.StartTime.Before(*f.From) {
		return false
	}
	if f.To != nil && !a.StartTime.Before(*f.To) {
		return false
	}
	if f.ClientID != nil && (a.ClientID == nil || *a.ClientID != *f.ClientID) {
		return false
	}
	if f.PetID != nil && (a.PetID == nil || *a.PetID != *f.PetID) {
		return false
	}
	if f.EmployeeID != nil && (a.EmployeeID == nil || *a.EmployeeID != *f.EmployeeID) {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, a.Status) {
		return false
	}
	if len(f.ExcludeStatuses) > 0 && containsStatus(f.ExcludeStatuses, a.Status) {
		return false
	}
	return true
}

func containsStatus(list []domain.AppointmentStatus, s domain.AppointmentStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// WaitingRoom in-memory реализация репозитория очереди
type WaitingRoom struct {
	s *Store
}

func (r *WaitingRoom) Create(_ context.Context, e *domain.WaitingRoomEntry) (*domain.WaitingRoomEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}

	// Аналог частичного уникального индекса
	if e.Status == domain.WaitingStatusWaiting {
		for _, existing := range r.s.entries {
			if existing.Status == domain.WaitingStatusWaiting &&
				existing.ClientID == e.ClientID && existing.PetID == e.PetID {
				return nil, waitingRoomRepo.ErrDuplicateEntry
			}
		}
	}

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := r.s.now()
	e.CreatedAt = now
	e.UpdatedAt = now
	r.s.entries[e.ID] = *e

	return e, nil
}

func (r *WaitingRoom) GetByID(_ context.Context, id uuid.UUID) (*domain.WaitingRoomEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}

	e, ok := r.s.entries[id]
	if !ok {
		return nil, waitingRoomRepo.ErrEntryNotFound
	}
	return &e, nil
}

func (r *WaitingRoom) FindWaiting(_ context.Context, clientID, petID uuid.UUID) (*domain.WaitingRoomEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}

	for _, e := range r.s.entries {
		if e.Status == domain.WaitingStatusWaiting && e.ClientID == clientID && e.PetID == petID {
			e := e
			return &e, nil
		}
	}
	return nil, waitingRoomRepo.ErrEntryNotFound
}

func (r *WaitingRoom) List(_ context.Context, filter domain.WaitingRoomFilter) ([]*domain.WaitingRoomEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}

	result := make([]*domain.WaitingRoomEntry, 0)
	for _, e := range r.s.entries {
		if len(filter.Statuses) > 0 && !containsWaitingStatus(filter.Statuses, e.Status) {
			continue
		}
		if filter.ArrivedFrom != nil && e.ArrivalTime.Before(*filter.ArrivedFrom) {
			continue
		}
		if filter.ArrivedTo != nil && !e.ArrivalTime.Before(*filter.ArrivedTo) {
			continue
		}
		e := e
		result = append(result, &e)
	}

	domain.SortQueue(result)
	return result, nil
}

func (r *WaitingRoom) LockPair(ctx context.Context, _, _ uuid.UUID) error {
	if !inTx(ctx) {
		return waitingRoomRepo.ErrTransaction
	}
	return nil
}

func (r *WaitingRoom) Update(_ context.Context, e *domain.WaitingRoomEntry) (*domain.WaitingRoomEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}

	existing, ok := r.s.entries[e.ID]
	if !ok {
		return nil, waitingRoomRepo.ErrEntryNotFound
	}
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = r.s.now()
	r.s.entries[e.ID] = *e

	return e, nil
}

// Count количество сохранённых записей очереди
func (r *WaitingRoom) Count() int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.entries)
}

func containsWaitingStatus(list []domain.WaitingStatus, s domain.WaitingStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
