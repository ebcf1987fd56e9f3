package get_waiting_queue

import "github.com/m04kA/SMC-VetClinicService/internal/service/projection"

const viewToday = "today"

// WaitingQueueResponse HTTP response model
type WaitingQueueResponse struct {
	Entries []*projection.WaitingRoomEntryResponse `json:"entries"`
	Total   int                                    `json:"total"`
}
