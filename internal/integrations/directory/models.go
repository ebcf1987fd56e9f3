package directory

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// Client модель клиента из справочника
type Client struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
}

// Pet модель питомца из справочника
type Pet struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Species string    `json:"species"`
	OwnerID uuid.UUID `json:"owner_id"`
}

// Employee модель сотрудника из справочника
type Employee struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Phone           *string   `json:"phone,omitempty"`
	Email           *string   `json:"email,omitempty"`
	IsClinicalStaff bool      `json:"is_clinical_staff"`
}

// ErrorResponse модель ошибки справочника
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *Client) toDomain() *domain.ClientSummary {
	return &domain.ClientSummary{
		ID: c.ID,
		Person: domain.Person{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Phone:     c.Phone,
			Email:     c.Email,
		},
	}
}

func (p *Pet) toDomain() *domain.PetSummary {
	return &domain.PetSummary{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species,
		OwnerID: p.OwnerID,
	}
}

func (e *Employee) toDomain() *domain.EmployeeSummary {
	return &domain.EmployeeSummary{
		ID: e.ID,
		Person: domain.Person{
			FirstName: e.FirstName,
			LastName:  e.LastName,
			Phone:     e.Phone,
			Email:     e.Email,
		},
		IsClinicalStaff: e.IsClinicalStaff,
	}
}
