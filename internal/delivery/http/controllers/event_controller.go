package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/delivery/http/middleware"
	"eventmanagement/internal/domain"

	"github.com/samber/lo"
)

// AddressRequest is a postal address. All fields are required.
type AddressRequest struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
	Country string `json:"country" validate:"required"`
}

func (a AddressRequest) toDomain() domain.Address {
	return domain.Address{Street: a.Street, City: a.City, State: a.State, Zip: a.Zip, Country: a.Country}
}

// TicketSalesRequest configures ticketing. Status is open or closed.
type TicketSalesRequest struct {
	Enabled bool   `json:"enabled"`
	Status  string `json:"status" validate:"oneof=open closed"`
}

func (t *TicketSalesRequest) toDomain() *domain.TicketSales {
	if t == nil {
		return nil
	}
	return &domain.TicketSales{Enabled: t.Enabled, Status: domain.TicketSalesStatus(t.Status)}
}

// EventDateRequest is one occurrence: date YYYY-MM-DD, times HH:mm.
type EventDateRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

func (d EventDateRequest) toDomain() domain.EventDateInput {
	return domain.EventDateInput{Date: d.Date, StartTime: d.StartTime, EndTime: d.EndTime}
}

// CreateEventRequest is the request body for POST /events.
// Address is required unless the event is digital.
type CreateEventRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Type        string              `json:"type" validate:"required,oneof=digital hybrid in-person"`
	URL         string              `json:"url"`
	Address     *AddressRequest     `json:"address" validate:"required_unless=Type digital"`
	MaxCapacity *int                `json:"maxCapacity"`
	TicketSales *TicketSalesRequest `json:"ticketSales"`
	Tags        []string            `json:"tags"`
	Dates       []EventDateRequest  `json:"dates" validate:"required,min=1,dive"`
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}. Omitted fields are unchanged;
// an explicit null clears address or maxCapacity.
type UpdateEventRequest struct {
	Name        *string                         `json:"name"`
	Description *string                         `json:"description"`
	Type        *string                         `json:"type" validate:"omitempty,oneof=digital hybrid in-person"`
	URL         *string                         `json:"url"`
	Address     domain.Nullable[AddressRequest] `json:"address" validate:"-" swaggertype:"object"`
	MaxCapacity domain.Nullable[int]            `json:"maxCapacity" validate:"-" swaggertype:"integer"`
	TicketSales *TicketSalesRequest             `json:"ticketSales"`
	Tags        *[]string                       `json:"tags"`
}

func (u UpdateEventRequest) toDomain() domain.EventUpdate {
	out := domain.EventUpdate{
		Name:        u.Name,
		Description: u.Description,
		MaxCapacity: u.MaxCapacity,
		TicketSales: u.TicketSales.toDomain(),
		Tags:        u.Tags,
	}
	if u.Type != nil {
		t := domain.EventType(*u.Type)
		out.Type = &t
	}
	if u.URL != nil {
		url := domain.EventURL(strings.TrimSpace(*u.URL))
		out.URL = &url
	}
	if u.Address.Present {
		if u.Address.Valid {
			out.Address = domain.Set(u.Address.Value.toDomain())
		} else {
			out.Address = domain.Null[domain.Address]()
		}
	}
	return out
}

// UpdateEventDateRequest is the request body for PATCH /events/{eventID}/dates/{dateID}.
type UpdateEventDateRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// EventSuccessResponse is the success envelope for endpoints returning one event.
type EventSuccessResponse struct {
	Data  domain.EventSnapshot `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// EventListResponse documents the paginated list payload.
type EventListResponse struct {
	Data       []domain.EventSnapshot `json:"data"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"totalPages"`
}

// EventListSuccessResponse is the success envelope for GET /events.
type EventListSuccessResponse struct {
	Data  EventListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventStatsSuccessResponse is the success envelope for GET /events/stats.
type EventStatsSuccessResponse struct {
	Data  domain.EventStats `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeactivateEventResponse is the payload of DELETE /events/{eventID}.
type DeactivateEventResponse struct {
	Status string `json:"status"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event with at least one date for the caller's account. Address is required for in-person and hybrid events. Dates must not be in the past.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request | validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (url in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	in := domain.CreateEventInput{
		AccountID:   principal.AccountID,
		OwnerEmail:  principal.Email,
		Name:        req.Name,
		Description: req.Description,
		Type:        domain.EventType(req.Type),
		URL:         domain.EventURL(strings.TrimSpace(req.URL)),
		MaxCapacity: req.MaxCapacity,
		TicketSales: req.TicketSales.toDomain(),
		Tags:        req.Tags,
		Dates:       lo.Map(req.Dates, func(d EventDateRequest, _ int) domain.EventDateInput { return d.toDomain() }),
	}
	if req.Address != nil {
		a := req.Address.toDomain()
		in.Address = &a
	}
	event, err := c.Service.CreateEvent(r.Context(), in)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events
// @Description Returns the caller's active events, newest first. Filters combine with AND; tags match when any tag overlaps.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param tags query string false "Comma-separated tags"
// @Param type query string false "digital, hybrid or in-person"
// @Param ticketSalesEnabled query bool false "Ticket sales switch"
// @Param ticketSalesStatus query string false "open or closed"
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	filters, err := parseEventFilters(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	page, err := c.Service.ListEvents(r.Context(), principal.AccountID, filters, helpers.ParsePagination(r))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, page)
}

// GetEventStats godoc
// @Summary Event dashboard stats
// @Description Totals, distinct types, events created this month, events running now and the next upcoming date of the caller's active events.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventStatsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/stats [get]
func (c *EventController) GetEventStats(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	stats, err := c.Service.GetEventStats(r.Context(), principal.AccountID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	principal, eventID, ok := c.eventScope(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetEvent(r.Context(), principal.AccountID, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update event details
// @Description Partially updates an active event. Tags are de-duplicated. maxCapacity and address accept null to clear them.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request | validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (url in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	principal, eventID, ok := c.eventScope(w, r)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), principal.AccountID, eventID, req.toDomain())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeactivateEvent godoc
// @Summary Deactivate an event
// @Description Marks the event inactive. Inactive events reject every further change and are excluded from lists and stats.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data.status: inactive"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error (already inactive)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeactivateEvent(w http.ResponseWriter, r *http.Request) {
	principal, eventID, ok := c.eventScope(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeactivateEvent(r.Context(), principal.AccountID, eventID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeactivateEventResponse{Status: string(domain.EventStatusInactive)})
}

// AddEventDate godoc
// @Summary Add a date to an event
// @Tags event dates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body EventDateRequest true "New date"
// @Success 201 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request | validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate date)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/dates [post]
func (c *EventController) AddEventDate(w http.ResponseWriter, r *http.Request) {
	principal, eventID, ok := c.eventScope(w, r)
	if !ok {
		return
	}
	var req EventDateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.AddEventDate(r.Context(), principal.AccountID, eventID, req.toDomain())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEventDate godoc
// @Summary Reschedule a date
// @Description Changes a scheduled (not finished) date. Omitted fields are kept.
// @Tags event dates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param dateID path string true "Date ID"
// @Param body body UpdateEventDateRequest true "Fields to change"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request | validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate date)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/dates/{dateID} [patch]
func (c *EventController) UpdateEventDate(w http.ResponseWriter, r *http.Request) {
	principal, eventID, dateID, ok := c.dateScope(w, r)
	if !ok {
		return
	}
	var req UpdateEventDateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := domain.EventDatePatch{Date: req.Date, StartTime: req.StartTime, EndTime: req.EndTime}
	event, err := c.Service.UpdateEventDate(r.Context(), principal.AccountID, eventID, dateID, patch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// RemoveEventDate godoc
// @Summary Remove a date
// @Description Removes a scheduled date. Finished dates and the last remaining date cannot be removed.
// @Tags event dates
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param dateID path string true "Date ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/dates/{dateID} [delete]
func (c *EventController) RemoveEventDate(w http.ResponseWriter, r *http.Request) {
	principal, eventID, dateID, ok := c.dateScope(w, r)
	if !ok {
		return
	}
	event, err := c.Service.RemoveEventDate(r.Context(), principal.AccountID, eventID, dateID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// FinishEventDate godoc
// @Summary Finish a date
// @Description Marks a date as finished. A finished date cannot be changed or removed.
// @Tags event dates
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param dateID path string true "Date ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error (already finished)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/dates/{dateID}/finish [post]
func (c *EventController) FinishEventDate(w http.ResponseWriter, r *http.Request) {
	principal, eventID, dateID, ok := c.dateScope(w, r)
	if !ok {
		return
	}
	event, err := c.Service.FinishEventDate(r.Context(), principal.AccountID, eventID, dateID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

func (c *EventController) eventScope(w http.ResponseWriter, r *http.Request) (domain.Principal, string, bool) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return domain.Principal{}, "", false
	}
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return domain.Principal{}, "", false
	}
	return principal, eventID, true
}

func (c *EventController) dateScope(w http.ResponseWriter, r *http.Request) (domain.Principal, string, string, bool) {
	dateID := r.PathValue("dateID")
	if dateID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing dateID")
		return domain.Principal{}, "", "", false
	}
	principal, eventID, ok := c.eventScope(w, r)
	return principal, eventID, dateID, ok
}

func parseEventFilters(r *http.Request) (domain.EventFilters, error) {
	q := r.URL.Query()
	var f domain.EventFilters

	var tags []string
	for _, raw := range q["tags"] {
		tags = append(tags, strings.Split(raw, ",")...)
	}
	tags = lo.Uniq(lo.Compact(lo.Map(tags, func(t string, _ int) string { return strings.TrimSpace(t) })))
	if len(tags) > 0 {
		f.Tags = tags
	}
	if s := q.Get("type"); s != "" {
		t, err := domain.ParseEventType(s)
		if err != nil {
			return f, err
		}
		f.Type = &t
	}
	if s := q.Get("ticketSalesEnabled"); s != "" {
		enabled, err := strconv.ParseBool(s)
		if err != nil {
			return f, fmt.Errorf("%w: ticketSalesEnabled must be a boolean", domain.ErrInvalidInput)
		}
		f.TicketSalesEnabled = &enabled
	}
	if s := q.Get("ticketSalesStatus"); s != "" {
		st, err := domain.ParseTicketSalesStatus(s)
		if err != nil {
			return f, err
		}
		f.TicketSalesStatus = &st
	}
	return f, nil
}
