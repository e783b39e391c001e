package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	maxEventNameLength = 255
	maxEventTags       = 30
)

// EventStatus is the soft lifecycle flag of an event. Active -> Inactive is the only edge.
type EventStatus string

const (
	EventStatusActive   EventStatus = "active"
	EventStatusInactive EventStatus = "inactive"
)

// NewEventParams holds everything needed to create an event.
type NewEventParams struct {
	ID          string
	AccountID   string
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

// EventUpdate lists the fields changed by Event.Update. Nil pointers and absent
// Nullable fields are left untouched; an explicit null clears Address or MaxCapacity.
type EventUpdate struct {
	Name        *string
	Description *string
	Type        *EventType
	URL         *EventURL
	Address     Nullable[Address]
	MaxCapacity Nullable[int]
	TicketSales *TicketSales
	Tags        *[]string
}

// EventSnapshot is the plain data form of an event: the wire shape and the storage shape.
type EventSnapshot struct {
	ID          string           `json:"id"`
	AccountID   string           `json:"accountId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        EventType        `json:"type"`
	URL         EventURL         `json:"url"`
	Address     *Address         `json:"address"`
	MaxCapacity *int             `json:"maxCapacity"`
	TicketSales TicketSales      `json:"ticketSales"`
	Tags        []string         `json:"tags"`
	Dates       []EventDateProps `json:"dates"`
	Status      EventStatus      `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Event is the aggregate root owning its scheduled dates. All changes go through its methods.
type Event struct {
	id          string
	accountID   string
	name        string
	description string
	eventType   EventType
	url         EventURL
	address     *Address
	maxCapacity *int
	ticketSales TicketSales
	tags        []string
	dates       []EventDate
	status      EventStatus
	createdAt   time.Time
	updatedAt   time.Time
}

// NewEvent creates an active event. Dates before the calendar day of now are rejected.
func NewEvent(p NewEventParams, now time.Time) (*Event, error) {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	ts := DefaultTicketSales()
	if p.TicketSales != nil {
		ts = *p.TicketSales
	}
	e := &Event{
		id:          id,
		accountID:   p.AccountID,
		name:        p.Name,
		description: p.Description,
		eventType:   p.Type,
		url:         p.URL,
		address:     copyPtr(p.Address),
		maxCapacity: copyPtr(p.MaxCapacity),
		ticketSales: ts,
		tags:        append([]string(nil), p.Tags...),
		status:      EventStatusActive,
		createdAt:   now,
		updatedAt:   now,
	}

	is := e.fieldIssues()
	var dateIssues issues
	today := Today(now)
	for i, in := range p.Dates {
		path := fmt.Sprintf("dates[%d]", i)
		d, err := NewEventDate(EventDateProps{Date: in.Date, StartTime: in.StartTime, EndTime: in.EndTime})
		if err != nil {
			dateIssues.addPrefixed(path, err.(*ValidationError).Issues)
			continue
		}
		if d.isBefore(today) {
			dateIssues.add(path+".date", "date must not be in the past")
			continue
		}
		e.dates = append(e.dates, d)
	}
	if len(dateIssues) > 0 {
		is = append(is, dateIssues...)
	} else {
		is = append(is, e.dateIssues()...)
	}
	if err := is.err(); err != nil {
		return nil, err
	}
	return e, nil
}

// RestoreEvent rebuilds an event from stored data. It validates the aggregate but
// does not reject past dates.
func RestoreEvent(s EventSnapshot) (*Event, error) {
	var is issues
	dates := make([]EventDate, 0, len(s.Dates))
	for i, p := range s.Dates {
		d, err := NewEventDate(p)
		if err != nil {
			is.addPrefixed(fmt.Sprintf("dates[%d]", i), err.(*ValidationError).Issues)
			continue
		}
		dates = append(dates, d)
	}
	if s.Status != EventStatusActive && s.Status != EventStatusInactive {
		is.add("status", "status must be active or inactive")
	}
	if err := is.err(); err != nil {
		return nil, err
	}
	e := &Event{
		id:          s.ID,
		accountID:   s.AccountID,
		name:        s.Name,
		description: s.Description,
		eventType:   s.Type,
		url:         s.URL,
		address:     copyPtr(s.Address),
		maxCapacity: copyPtr(s.MaxCapacity),
		ticketSales: s.TicketSales,
		tags:        append([]string(nil), s.Tags...),
		dates:       dates,
		status:      s.Status,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Event) ID() string               { return e.id }
func (e *Event) AccountID() string        { return e.accountID }
func (e *Event) Name() string             { return e.name }
func (e *Event) Description() string      { return e.description }
func (e *Event) Type() EventType          { return e.eventType }
func (e *Event) URL() EventURL            { return e.url }
func (e *Event) TicketSales() TicketSales { return e.ticketSales }
func (e *Event) Status() EventStatus      { return e.status }
func (e *Event) CreatedAt() time.Time     { return e.createdAt }
func (e *Event) UpdatedAt() time.Time     { return e.updatedAt }
func (e *Event) IsActive() bool           { return e.status == EventStatusActive }

func (e *Event) Address() *Address { return copyPtr(e.address) }
func (e *Event) MaxCapacity() *int { return copyPtr(e.maxCapacity) }
func (e *Event) Tags() []string    { return append([]string(nil), e.tags...) }

// Dates returns a copy of the dates in stored order.
func (e *Event) Dates() []EventDate {
	return append([]EventDate(nil), e.dates...)
}

// SortedDates returns a copy of the dates in presentation order.
func (e *Event) SortedDates() []EventDate {
	return SortEventDates(e.dates)
}

// FindDate returns the date with the given ID.
func (e *Event) FindDate(dateID string) (EventDate, bool) {
	i := e.indexOf(dateID)
	if i < 0 {
		return EventDate{}, false
	}
	return e.dates[i], true
}

// HasUnlimitedCapacity reports whether no capacity limit is set.
func (e *Event) HasUnlimitedCapacity() bool {
	return e.maxCapacity == nil
}

// CanSellTickets reports whether the event is active with ticket sales enabled and open.
func (e *Event) CanSellTickets() bool {
	return e.IsActive() && e.ticketSales.IsOpen()
}

// Update applies the provided fields. Duplicate tags are collapsed before the tag limit is checked.
func (e *Event) Update(now time.Time, u EventUpdate) error {
	if err := e.ensureActive(); err != nil {
		return err
	}
	if u.MaxCapacity.Valid && u.MaxCapacity.Value <= 0 {
		return ruleError(ErrInvalidInput, "maxCapacity", "maxCapacity must be a positive integer")
	}
	var tags []string
	if u.Tags != nil {
		tags = lo.Uniq(*u.Tags)
		if len(tags) > maxEventTags {
			return ruleError(ErrInvalidInput, "tags", fmt.Sprintf("at most %d tags are allowed", maxEventTags))
		}
	}

	next := e.clone()
	if u.Name != nil {
		next.name = *u.Name
	}
	if u.Description != nil {
		next.description = *u.Description
	}
	if u.Type != nil {
		next.eventType = *u.Type
	}
	if u.URL != nil {
		next.url = *u.URL
	}
	if u.Address.Present {
		next.address = u.Address.Ptr()
	}
	if u.MaxCapacity.Present {
		next.maxCapacity = u.MaxCapacity.Ptr()
	}
	if u.TicketSales != nil {
		next.ticketSales = *u.TicketSales
	}
	if u.Tags != nil {
		next.tags = tags
	}
	next.updatedAt = now
	return e.commit(next)
}

// AddDate schedules a new occurrence on or after the calendar day of now.
func (e *Event) AddDate(now time.Time, in EventDateInput) (EventDate, error) {
	if err := e.ensureActive(); err != nil {
		return EventDate{}, err
	}
	d, err := NewEventDate(EventDateProps{Date: in.Date, StartTime: in.StartTime, EndTime: in.EndTime})
	if err != nil {
		return EventDate{}, err
	}
	if d.isBefore(Today(now)) {
		return EventDate{}, pastDateError()
	}
	if dup, ok := e.duplicateOf(d, -1); ok {
		return EventDate{}, duplicateDateError(dup)
	}

	next := e.clone()
	next.dates = append(next.dates, d)
	next.updatedAt = now
	if err := e.commit(next); err != nil {
		return EventDate{}, err
	}
	return d, nil
}

// UpdateDate replaces a scheduled occurrence in place, merging unspecified fields.
func (e *Event) UpdateDate(now time.Time, dateID string, p EventDatePatch) (EventDate, error) {
	if err := e.ensureActive(); err != nil {
		return EventDate{}, err
	}
	i := e.indexOf(dateID)
	if i < 0 {
		return EventDate{}, dateNotFoundError()
	}
	current := e.dates[i]
	if current.IsFinished() {
		return EventDate{}, ruleError(ErrEventDateFinished, "dates", "cannot update finished date")
	}
	d, err := current.withPatch(p)
	if err != nil {
		return EventDate{}, err
	}
	if p.Date != nil && d.isBefore(Today(now)) {
		return EventDate{}, pastDateError()
	}
	if dup, ok := e.duplicateOf(d, i); ok {
		return EventDate{}, duplicateDateError(dup)
	}

	next := e.clone()
	next.dates[i] = d
	next.updatedAt = now
	if err := e.commit(next); err != nil {
		return EventDate{}, err
	}
	return d, nil
}

// RemoveDate drops a scheduled occurrence. The last remaining date cannot be removed.
func (e *Event) RemoveDate(now time.Time, dateID string) error {
	if err := e.ensureActive(); err != nil {
		return err
	}
	i := e.indexOf(dateID)
	if i < 0 {
		return dateNotFoundError()
	}
	if e.dates[i].IsFinished() {
		return ruleError(ErrEventDateFinished, "dates", "cannot remove finished date")
	}
	if len(e.dates) == 1 {
		return ruleError(ErrLastEventDate, "dates", "event must have at least one date")
	}

	next := e.clone()
	next.dates = append(next.dates[:i], next.dates[i+1:]...)
	next.updatedAt = now
	return e.commit(next)
}

// FinishDate marks an occurrence as finished at now.
func (e *Event) FinishDate(now time.Time, dateID string) (EventDate, error) {
	if err := e.ensureActive(); err != nil {
		return EventDate{}, err
	}
	i := e.indexOf(dateID)
	if i < 0 {
		return EventDate{}, dateNotFoundError()
	}
	d, err := e.dates[i].Finish(now)
	if err != nil {
		return EventDate{}, err
	}
	e.dates[i] = d
	e.updatedAt = now
	return d, nil
}

// Deactivate soft-deletes the event. It is terminal: every mutator fails afterwards.
func (e *Event) Deactivate(now time.Time) error {
	if err := e.ensureActive(); err != nil {
		return err
	}
	e.status = EventStatusInactive
	e.updatedAt = now
	return nil
}

// Validate checks every aggregate invariant and reports all violations at once.
func (e *Event) Validate() error {
	is := e.fieldIssues()
	is = append(is, e.dateIssues()...)
	return is.err()
}

// Snapshot returns a copy of the event's data with dates in stored order.
func (e *Event) Snapshot() EventSnapshot {
	dates := make([]EventDateProps, 0, len(e.dates))
	for _, d := range e.dates {
		dates = append(dates, d.Props())
	}
	tags := e.Tags()
	if tags == nil {
		tags = []string{}
	}
	return EventSnapshot{
		ID:          e.id,
		AccountID:   e.accountID,
		Name:        e.name,
		Description: e.description,
		Type:        e.eventType,
		URL:         e.url,
		Address:     e.Address(),
		MaxCapacity: e.MaxCapacity(),
		TicketSales: e.ticketSales,
		Tags:        tags,
		Dates:       dates,
		Status:      e.status,
		CreatedAt:   e.createdAt,
		UpdatedAt:   e.updatedAt,
	}
}

// MarshalJSON renders the wire shape with dates in presentation order.
func (e *Event) MarshalJSON() ([]byte, error) {
	s := e.Snapshot()
	s.Dates = s.Dates[:0]
	for _, d := range e.SortedDates() {
		s.Dates = append(s.Dates, d.Props())
	}
	return json.Marshal(s)
}

func (e *Event) fieldIssues() issues {
	var is issues
	if strings.TrimSpace(e.accountID) == "" {
		is.add("accountId", "accountId is required")
	}
	if strings.TrimSpace(e.name) == "" {
		is.add("name", "name is required")
	} else if utf8.RuneCountInString(e.name) > maxEventNameLength {
		is.add("name", fmt.Sprintf("name must be at most %d characters", maxEventNameLength))
	}
	if e.eventType == "" {
		is.add("type", "type is required")
	} else if !e.eventType.Valid() {
		is.add("type", fmt.Sprintf("unknown event type %q", e.eventType))
	}
	if msg := eventURLProblem(string(e.url)); msg != "" {
		is.add("url", msg)
	}
	if e.address != nil {
		is.addPrefixed("address", e.address.issues())
	}
	if e.maxCapacity != nil && *e.maxCapacity <= 0 {
		is.add("maxCapacity", "maxCapacity must be a positive integer")
	}
	if len(e.tags) > maxEventTags {
		is.add("tags", fmt.Sprintf("at most %d tags are allowed", maxEventTags))
	}
	if len(lo.Uniq(e.tags)) != len(e.tags) {
		is.add("tags", "tags must be unique")
	}
	return is
}

func (e *Event) dateIssues() issues {
	var is issues
	if len(e.dates) == 0 {
		is.add("dates", "at least one date is required")
		return is
	}
	for i, d := range e.dates {
		path := fmt.Sprintf("dates[%d]", i)
		is.addPrefixed(path, d.issues())
		for j := 0; j < i; j++ {
			if e.dates[j].HasSameDateTime(d) {
				is.add(path, fmt.Sprintf("duplicate date %s (same as dates[%d])", d, j))
				break
			}
		}
	}
	return is
}

func (e *Event) ensureActive() error {
	if e.status != EventStatusActive {
		return ruleError(ErrEventInactive, "status", "cannot mutate inactive event")
	}
	return nil
}

func (e *Event) indexOf(dateID string) int {
	for i, d := range e.dates {
		if d.id == dateID {
			return i
		}
	}
	return -1
}

// duplicateOf finds an existing date with the same triple as d, ignoring index skip.
func (e *Event) duplicateOf(d EventDate, skip int) (EventDate, bool) {
	for i, other := range e.dates {
		if i != skip && other.HasSameDateTime(d) {
			return other, true
		}
	}
	return EventDate{}, false
}

func (e *Event) clone() *Event {
	c := *e
	c.address = copyPtr(e.address)
	c.maxCapacity = copyPtr(e.maxCapacity)
	c.tags = append([]string(nil), e.tags...)
	c.dates = append([]EventDate(nil), e.dates...)
	return &c
}

// commit replaces e with next once next passes validation.
func (e *Event) commit(next *Event) error {
	if err := next.Validate(); err != nil {
		return err
	}
	*e = *next
	return nil
}

func dateNotFoundError() error {
	return ruleError(ErrEventDateNotFound, "dates", "event date not found")
}

func pastDateError() error {
	return ruleError(ErrPastEventDate, "date", "date must not be in the past")
}

func duplicateDateError(existing EventDate) error {
	return ruleError(ErrDuplicateEventDate, "dates", fmt.Sprintf("duplicate date: %s is already scheduled", existing))
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
