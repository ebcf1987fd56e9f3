package projection

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// DirectoryResolver справочник для получения отображаемых имён
type DirectoryResolver interface {
	ResolveClient(ctx context.Context, id uuid.UUID) (*domain.ClientSummary, error)
	ResolvePet(ctx context.Context, id uuid.UUID) (*domain.PetSummary, error)
	ResolveEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeSummary, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Projector собирает ответы API из доменных моделей, подтягивая имена из справочника
// Ошибка справочника не ломает ответ: имя просто не заполняется
type Projector struct {
	directory DirectoryResolver
	logger    Logger
}

// NewProjector создает новый экземпляр проектора
func NewProjector(directory DirectoryResolver, logger Logger) *Projector {
	return &Projector{
		directory: directory,
		logger:    logger,
	}
}

// names кэш имён в рамках одного ответа
type names struct {
	clients   map[uuid.UUID]*string
	pets      map[uuid.UUID]*string
	employees map[uuid.UUID]*string
}

func newNames() *names {
	return &names{
		clients:   make(map[uuid.UUID]*string),
		pets:      make(map[uuid.UUID]*string),
		employees: make(map[uuid.UUID]*string),
	}
}

// Appointment проекция одного приёма
func (p *Projector) Appointment(ctx context.Context, a *domain.Appointment) *AppointmentResponse {
	return p.appointment(ctx, a, newNames())
}

// Appointments проекция списка приёмов с сохранением порядка
func (p *Projector) Appointments(ctx context.Context, list []*domain.Appointment) []*AppointmentResponse {
	cache := newNames()
	result := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, p.appointment(ctx, a, cache))
	}
	return result
}

// WaitingRoomEntry проекция одной записи очереди
func (p *Projector) WaitingRoomEntry(ctx context.Context, e *domain.WaitingRoomEntry) *WaitingRoomEntryResponse {
	return p.waitingRoomEntry(ctx, e, newNames())
}

// WaitingRoomEntries проекция списка записей очереди с сохранением порядка
func (p *Projector) WaitingRoomEntries(ctx context.Context, list []*domain.WaitingRoomEntry) []*WaitingRoomEntryResponse {
	cache := newNames()
	result := make([]*WaitingRoomEntryResponse, 0, len(list))
	for _, e := range list {
		result = append(result, p.waitingRoomEntry(ctx, e, cache))
	}
	return result
}

// Statistics проекция статистики зала ожидания
func Statistics(s domain.WaitingRoomStatistics) *StatisticsResponse {
	resp := &StatisticsResponse{
		Waiting:        s.Waiting,
		InConsultation: s.InConsultation,
		CreatedToday:   s.CreatedToday,
	}
	if s.AverageWait != nil {
		minutes := math.Round(s.AverageWait.Minutes()*10) / 10
		resp.AverageWaitMinutes = &minutes
	}
	return resp
}

func (p *Projector) appointment(ctx context.Context, a *domain.Appointment, cache *names) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:                   a.ID,
		Title:                a.Title,
		StartTime:            a.StartTime,
		EndTime:              a.EndTime,
		ServiceType:          string(a.ServiceType),
		Status:               string(a.Status),
		ClientID:             a.ClientID,
		PetID:                a.PetID,
		EmployeeID:           a.EmployeeID,
		Reason:               a.Reason,
		Notes:                a.Notes,
		CancellationReason:   a.CancellationReason,
		CancelledAt:          a.CancelledAt,
		Completed:            a.IsCompleted(),
		Cancelled:            a.IsCancelled(),
		HasRegisteredClient:  a.HasRegisteredClient(),
		RequiresVeterinarian: a.RequiresVeterinarian(),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
		CreatedBy:            a.CreatedBy,
		UpdatedBy:            a.UpdatedBy,
	}

	if a.Guest != nil {
		resp.Guest = &GuestResponse{
			Name:  a.Guest.Name,
			Phone: a.Guest.Phone,
			Email: a.Guest.Email,
		}
	}
	if a.ClientID != nil {
		resp.ClientName = p.clientName(ctx, *a.ClientID, cache)
	}
	if a.PetID != nil {
		resp.PetName = p.petName(ctx, *a.PetID, cache)
	}
	if a.EmployeeID != nil {
		resp.EmployeeName = p.employeeName(ctx, *a.EmployeeID, cache)
	}

	return resp
}

func (p *Projector) waitingRoomEntry(ctx context.Context, e *domain.WaitingRoomEntry, cache *names) *WaitingRoomEntryResponse {
	resp := &WaitingRoomEntryResponse{
		ID:                    e.ID,
		ClientID:              e.ClientID,
		ClientName:            p.clientName(ctx, e.ClientID, cache),
		PetID:                 e.PetID,
		PetName:               p.petName(ctx, e.PetID, cache),
		ArrivalTime:           e.ArrivalTime,
		Status:                string(e.Status),
		Priority:              e.Priority.String(),
		Reason:                e.Reason,
		Notes:                 e.Notes,
		ConsultationStartedAt: e.ConsultationStartedAt,
		CompletedAt:           e.CompletedAt,
		CancelledAt:           e.CancelledAt,
		CancellationReason:    e.CancellationReason,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}

	if wait, ok := e.WaitTime(); ok {
		minutes := int(wait.Minutes())
		resp.WaitMinutes = &minutes
	}

	return resp
}

func (p *Projector) clientName(ctx context.Context, id uuid.UUID, cache *names) *string {
	if name, ok := cache.clients[id]; ok {
		return name
	}
	var name *string
	client, err := p.directory.ResolveClient(ctx, id)
	if err != nil {
		p.logger.Warn("Projector: failed to resolve client id=%s: %v", id, err)
	} else {
		n := client.DisplayName()
		name = &n
	}
	cache.clients[id] = name
	return name
}

func (p *Projector) petName(ctx context.Context, id uuid.UUID, cache *names) *string {
	if name, ok := cache.pets[id]; ok {
		return name
	}
	var name *string
	pet, err := p.directory.ResolvePet(ctx, id)
	if err != nil {
		p.logger.Warn("Projector: failed to resolve pet id=%s: %v", id, err)
	} else {
		n := pet.DisplayName()
		name = &n
	}
	cache.pets[id] = name
	return name
}

func (p *Projector) employeeName(ctx context.Context, id uuid.UUID, cache *names) *string {
	if name, ok := cache.employees[id]; ok {
		return name
	}
	var name *string
	employee, err := p.directory.ResolveEmployee(ctx, id)
	if err != nil {
		p.logger.Warn("Projector: failed to resolve employee id=%s: %v", id, err)
	} else {
		n := employee.DisplayName()
		name = &n
	}
	cache.employees[id] = name
	return name
}
