package domain

import "github.com/google/uuid"

// Person holds contact data shared by clients and employees
type Person struct {
	FirstName string
	LastName  string
	Phone     *string
	Email     *string
}

// FullName returns "First Last" without dangling spaces
func (p Person) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// ClientSummary is a registered client as resolved from the directory
type ClientSummary struct {
	ID uuid.UUID
	Person
}

func (c *ClientSummary) DisplayName() string {
	return c.FullName()
}

// PetSummary is a registered pet as resolved from the directory
type PetSummary struct {
	ID      uuid.UUID
	Name    string
	Species string
	OwnerID uuid.UUID
}

func (p *PetSummary) DisplayName() string {
	return p.Name
}

// EmployeeSummary is a staff member as resolved from the directory
type EmployeeSummary struct {
	ID uuid.UUID
	Person
	IsClinicalStaff bool
}

func (e *EmployeeSummary) DisplayName() string {
	return e.FullName()
}
