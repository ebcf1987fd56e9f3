package models

// Request модели

// TransitionRequest запрос на перевод записи очереди по этапам приёма
type TransitionRequest struct {
	Actor *string
}

// CancelEntryRequest запрос на снятие записи с очереди
type CancelEntryRequest struct {
	Reason *string
	Actor  *string
}

// UpdatePriorityRequest запрос на изменение приоритета
type UpdatePriorityRequest struct {
	Priority string // normal | urgent | emergency (или 1..3)
	Actor    *string
}
