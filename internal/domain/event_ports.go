package domain

import "context"

// EventFilters narrows EventRepository.FindMany. Nil fields do not filter.
type EventFilters struct {
	Tags               []string
	Type               *EventType
	TicketSalesEnabled *bool
	TicketSalesStatus  *TicketSalesStatus
}

// PaginatedEvents is one page of events.
type PaginatedEvents struct {
	Data       []*Event `json:"data"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"totalPages"`
}

// EventRepository defines the interface for event storage. FindByID returns ErrNotFound
// when no event has the given ID.
type EventRepository interface {
	FindByID(ctx context.Context, id string) (*Event, error)
	Save(ctx context.Context, event *Event) error
	ExistsByURL(ctx context.Context, accountID string, url EventURL) (bool, error)
	FindByAccountID(ctx context.Context, accountID string) ([]*Event, error)
	FindMany(ctx context.Context, accountID string, filters EventFilters, page PaginationParams) (*PaginatedEvents, error)
}

// EventStatsCache stores computed stats per account. Get returns ErrCacheMiss when absent.
// Entries carry their own ValidUntil; callers must not serve an entry that is no longer fresh.
type EventStatsCache interface {
	Get(ctx context.Context, accountID string) (*CachedEventStats, error)
	Set(ctx context.Context, accountID string, entry *CachedEventStats) error
	Invalidate(ctx context.Context, accountID string) error
}

// CreateEventInput is the use-case input for creating an event.
type CreateEventInput struct {
	AccountID   string
	OwnerEmail  string
	Name        string
	Description string
	Type        EventType
	URL         EventURL
	Address     *Address
	MaxCapacity *int
	TicketSales *TicketSales
	Tags        []string
	Dates       []EventDateInput
}

// EventService defines the use cases around the event aggregate. Every method is scoped to
// the calling account; events of other accounts yield ErrForbidden.
type EventService interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*Event, error)
	GetEvent(ctx context.Context, accountID, eventID string) (*Event, error)
	ListEvents(ctx context.Context, accountID string, filters EventFilters, page PaginationParams) (*PaginatedEvents, error)
	UpdateEvent(ctx context.Context, accountID, eventID string, u EventUpdate) (*Event, error)
	DeactivateEvent(ctx context.Context, accountID, eventID string) error
	AddEventDate(ctx context.Context, accountID, eventID string, in EventDateInput) (*Event, error)
	UpdateEventDate(ctx context.Context, accountID, eventID, dateID string, p EventDatePatch) (*Event, error)
	RemoveEventDate(ctx context.Context, accountID, eventID, dateID string) (*Event, error)
	FinishEventDate(ctx context.Context, accountID, eventID, dateID string) (*Event, error)
	GetEventStats(ctx context.Context, accountID string) (*EventStats, error)
}
