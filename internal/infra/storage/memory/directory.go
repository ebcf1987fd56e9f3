package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/integrations/directory"
)

// Directory справочник в памяти с ошибками HTTP клиента справочника
type Directory struct {
	mu        sync.RWMutex
	clients   map[uuid.UUID]*domain.ClientSummary
	pets      map[uuid.UUID]*domain.PetSummary
	employees map[uuid.UUID]*domain.EmployeeSummary

	// Err возвращается всеми методами, если задан
	Err error
}

func NewDirectory() *Directory {
	return &Directory{
		clients:   make(map[uuid.UUID]*domain.ClientSummary),
		pets:      make(map[uuid.UUID]*domain.PetSummary),
		employees: make(map[uuid.UUID]*domain.EmployeeSummary),
	}
}

// AddClient регистрирует клиента и возвращает его ID
func (d *Directory) AddClient(firstName, lastName string) uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := uuid.New()
	d.clients[id] = &domain.ClientSummary{ID: id, Person: domain.Person{FirstName: firstName, LastName: lastName}}
	return id
}

// AddPet регистрирует питомца клиента и возвращает его ID
func (d *Directory) AddPet(ownerID uuid.UUID, name, species string) uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := uuid.New()
	d.pets[id] = &domain.PetSummary{ID: id, Name: name, Species: species, OwnerID: ownerID}
	return id
}

// AddEmployee регистрирует сотрудника и возвращает его ID
func (d *Directory) AddEmployee(firstName, lastName string, clinical bool) uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := uuid.New()
	d.employees[id] = &domain.EmployeeSummary{
		ID:              id,
		Person:          domain.Person{FirstName: firstName, LastName: lastName},
		IsClinicalStaff: clinical,
	}
	return id
}

func (d *Directory) ResolveClient(_ context.Context, id uuid.UUID) (*domain.ClientSummary, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.Err != nil {
		return nil, d.Err
	}
	c, ok := d.clients[id]
	if !ok {
		return nil, directory.ErrClientNotFound
	}
	return c, nil
}

func (d *Directory) ResolvePet(_ context.Context, id uuid.UUID) (*domain.PetSummary, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.Err != nil {
		return nil, d.Err
	}
	p, ok := d.pets[id]
	if !ok {
		return nil, directory.ErrPetNotFound
	}
	return p, nil
}

func (d *Directory) ResolveEmployee(_ context.Context, id uuid.UUID) (*domain.EmployeeSummary, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.Err != nil {
		return nil, d.Err
	}
	e, ok := d.employees[id]
	if !ok {
		return nil, directory.ErrEmployeeNotFound
	}
	return e, nil
}
