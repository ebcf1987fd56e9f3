package projection

import (
	"time"

	"github.com/google/uuid"
)

// GuestResponse данные клиента без регистрации
type GuestResponse struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// AppointmentResponse представление приёма для API
type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	ServiceType string    `json:"serviceType"`
	Status      string    `json:"status"`

	ClientID     *uuid.UUID     `json:"clientId,omitempty"`
	ClientName   *string        `json:"clientName,omitempty"`
	Guest        *GuestResponse `json:"guest,omitempty"`
	PetID        *uuid.UUID     `json:"petId,omitempty"`
	PetName      *string        `json:"petName,omitempty"`
	EmployeeID   *uuid.UUID     `json:"employeeId,omitempty"`
	EmployeeName *string        `json:"employeeName,omitempty"`

	Reason             *string    `json:"reason,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	// Вычисляемые флаги
	Completed            bool `json:"completed"`
	Cancelled            bool `json:"cancelled"`
	HasRegisteredClient  bool `json:"hasRegisteredClient"`
	RequiresVeterinarian bool `json:"requiresVeterinarian"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
}

// WaitingRoomEntryResponse представление записи очереди для API
type WaitingRoomEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientID    uuid.UUID `json:"clientId"`
	ClientName  *string   `json:"clientName,omitempty"`
	PetID       uuid.UUID `json:"petId"`
	PetName     *string   `json:"petName,omitempty"`
	ArrivalTime time.Time `json:"arrivalTime"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Reason      string    `json:"reason"`
	Notes       *string   `json:"notes,omitempty"`

	ConsultationStartedAt *time.Time `json:"consultationStartedAt,omitempty"`
	CompletedAt           *time.Time `json:"completedAt,omitempty"`
	CancelledAt           *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason    *string    `json:"cancellationReason,omitempty"`
	// WaitMinutes время ожидания до начала консультации
	WaitMinutes *int `json:"waitMinutes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatisticsResponse сводка по залу ожидания
type StatisticsResponse struct {
	Waiting            int      `json:"waiting"`
	InConsultation     int      `json:"inConsultation"`
	CreatedToday       int      `json:"createdToday"`
	AverageWaitMinutes *float64 `json:"averageWaitMinutes,omitempty"`
}
