package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/delivery/http/middleware"
	"eventmanagement/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

var testPrincipal = domain.Principal{AccountID: "acc-1", Email: "owner@example.com"}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	event    *domain.Event
	page     *domain.PaginatedEvents
	stats    *domain.EventStats
	err      error
	lastCall string

	lastAccountID string
	lastEventID   string
	lastDateID    string
	lastCreate    domain.CreateEventInput
	lastUpdate    domain.EventUpdate
	lastDateInput domain.EventDateInput
	lastDatePatch domain.EventDatePatch
	lastFilters   domain.EventFilters
	lastPage      domain.PaginationParams
}

func (f *fakeEventService) record(call, accountID, eventID, dateID string) {
	f.lastCall, f.lastAccountID, f.lastEventID, f.lastDateID = call, accountID, eventID, dateID
}

func (f *fakeEventService) result() (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) CreateEvent(_ context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	f.record("CreateEvent", in.AccountID, "", "")
	f.lastCreate = in
	return f.result()
}

func (f *fakeEventService) GetEvent(_ context.Context, accountID, eventID string) (*domain.Event, error) {
	f.record("GetEvent", accountID, eventID, "")
	return f.result()
}

func (f *fakeEventService) ListEvents(_ context.Context, accountID string, filters domain.EventFilters, page domain.PaginationParams) (*domain.PaginatedEvents, error) {
	f.record("ListEvents", accountID, "", "")
	f.lastFilters, f.lastPage = filters, page
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, accountID, eventID string, u domain.EventUpdate) (*domain.Event, error) {
	f.record("UpdateEvent", accountID, eventID, "")
	f.lastUpdate = u
	return f.result()
}

func (f *fakeEventService) DeactivateEvent(_ context.Context, accountID, eventID string) error {
	f.record("DeactivateEvent", accountID, eventID, "")
	return f.err
}

func (f *fakeEventService) AddEventDate(_ context.Context, accountID, eventID string, in domain.EventDateInput) (*domain.Event, error) {
	f.record("AddEventDate", accountID, eventID, "")
	f.lastDateInput = in
	return f.result()
}

func (f *fakeEventService) UpdateEventDate(_ context.Context, accountID, eventID, dateID string, p domain.EventDatePatch) (*domain.Event, error) {
	f.record("UpdateEventDate", accountID, eventID, dateID)
	f.lastDatePatch = p
	return f.result()
}

func (f *fakeEventService) RemoveEventDate(_ context.Context, accountID, eventID, dateID string) (*domain.Event, error) {
	f.record("RemoveEventDate", accountID, eventID, dateID)
	return f.result()
}

func (f *fakeEventService) FinishEventDate(_ context.Context, accountID, eventID, dateID string) (*domain.Event, error) {
	f.record("FinishEventDate", accountID, eventID, dateID)
	return f.result()
}

func (f *fakeEventService) GetEventStats(_ context.Context, accountID string) (*domain.EventStats, error) {
	f.record("GetEventStats", accountID, "", "")
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

func newTestEvent(t *testing.T) *domain.Event {
	t.Helper()
	e, err := domain.NewEvent(domain.NewEventParams{
		ID:        "ev-1",
		AccountID: "acc-1",
		Name:      "GopherCon",
		Type:      domain.EventTypeDigital,
		URL:       "gophercon",
		Dates: []domain.EventDateInput{
			{Date: "2099-02-01", StartTime: "10:00", EndTime: "12:00"},
			{Date: "2099-01-01", StartTime: "10:00", EndTime: "12:00"},
		},
	}, testNow)
	require.NoError(t, err)
	return e
}

type testRequest struct {
	method string
	path   string
	body   string
	params map[string]string
	anon   bool
}

func serve(t *testing.T, handler http.HandlerFunc, tr testRequest) (*httptest.ResponseRecorder, helpers.APIResponse) {
	t.Helper()
	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	} else {
		body = http.NoBody
	}
	req := httptest.NewRequest(tr.method, "http://test"+tr.path, body)
	for k, v := range tr.params {
		req.SetPathValue(k, v)
	}
	if !tr.anon {
		req = req.WithContext(middleware.SetPrincipal(req.Context(), testPrincipal))
	}
	rr := httptest.NewRecorder()
	handler(rr, req)

	var env helpers.APIResponse
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	}
	return rr, env
}

func TestEventController_CreateEvent(t *testing.T) {
	validBody := `{"name":"GopherCon","type":"digital","url":" gophercon ","tags":["go"],
		"ticketSales":{"enabled":true,"status":"open"},
		"dates":[{"date":"2099-01-01","startTime":"10:00","endTime":"12:00"}]}`

	tests := []struct {
		name       string
		req        testRequest
		svcErr     error
		wantStatus int
		wantCode   string
		wantPaths  []string
		wantCalled bool
	}{
		{
			name:       "created",
			req:        testRequest{body: validBody},
			wantStatus: http.StatusCreated,
			wantCalled: true,
		},
		{
			name:       "unauthenticated",
			req:        testRequest{body: validBody, anon: true},
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
		{
			name: "address required for in-person",
			req: testRequest{body: `{"name":"x","type":"in-person","url":"x",
				"dates":[{"date":"2099-01-01","startTime":"10:00","endTime":"12:00"}]}`},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationError,
			wantPaths:  []string{"address"},
		},
		{
			name: "hybrid with incomplete address",
			req: testRequest{body: `{"name":"x","type":"hybrid","url":"x","address":{"street":"Main"},
				"dates":[{"date":"2099-01-01","startTime":"10:00","endTime":"12:00"}]}`},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationError,
			wantPaths:  []string{"address.city", "address.state", "address.zip", "address.country"},
		},
		{
			name:       "missing dates and bad type",
			req:        testRequest{body: `{"name":"x","type":"webinar","url":"x"}`},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationError,
			wantPaths:  []string{"type", "address", "dates"},
		},
		{
			name:       "unknown field",
			req:        testRequest{body: `{"name":"x","owner":"someone"}`},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "url taken",
			req:        testRequest{body: validBody},
			svcErr:     domain.ErrURLTaken,
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
			wantCalled: true,
		},
		{
			name:       "service error",
			req:        testRequest{body: validBody},
			svcErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{event: newTestEvent(t), err: tt.svcErr}
			c := NewEventController(testLogger, svc)
			tt.req.method, tt.req.path = http.MethodPost, "/events"

			rr, env := serve(t, c.CreateEvent, tt.req)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			assert.Equal(t, tt.wantCalled, svc.lastCall == "CreateEvent")
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
			if tt.wantPaths != nil {
				paths := make([]string, 0, len(env.Error.Details))
				for _, d := range env.Error.Details {
					paths = append(paths, d.Path)
				}
				assert.Equal(t, tt.wantPaths, paths)
			}
		})
	}

	t.Run("maps request to input", func(t *testing.T) {
		svc := &fakeEventService{event: newTestEvent(t)}
		c := NewEventController(testLogger, svc)
		rr, env := serve(t, c.CreateEvent, testRequest{method: http.MethodPost, path: "/events", body: validBody})
		require.Equal(t, http.StatusCreated, rr.Code)

		in := svc.lastCreate
		assert.Equal(t, "acc-1", in.AccountID)
		assert.Equal(t, "owner@example.com", in.OwnerEmail)
		assert.Equal(t, domain.EventURL("gophercon"), in.URL)
		assert.Nil(t, in.Address)
		assert.Equal(t, &domain.TicketSales{Enabled: true, Status: domain.TicketSalesOpen}, in.TicketSales)
		assert.Equal(t, []domain.EventDateInput{{Date: "2099-01-01", StartTime: "10:00", EndTime: "12:00"}}, in.Dates)

		data, ok := env.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ev-1", data["id"])
		dates := data["dates"].([]any)
		assert.Equal(t, "2099-01-01", dates[0].(map[string]any)["date"], "dates are presented sorted")
	})
}

func TestEventController_ListEvents(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantFilters domain.EventFilters
		wantPage    domain.PaginationParams
	}{
		{
			name:       "defaults",
			query:      "",
			wantStatus: http.StatusOK,
			wantPage:   domain.PaginationParams{Page: 1, PageSize: helpers.DefaultPageSize},
		},
		{
			name:       "all filters",
			query:      "?page=2&limit=5&tags=go,%20cloud&tags=go&type=hybrid&ticketSalesEnabled=true&ticketSalesStatus=open",
			wantStatus: http.StatusOK,
			wantFilters: domain.EventFilters{
				Tags:               []string{"go", "cloud"},
				Type:               ptr(domain.EventTypeHybrid),
				TicketSalesEnabled: ptr(true),
				TicketSalesStatus:  ptr(domain.TicketSalesOpen),
			},
			wantPage: domain.PaginationParams{Page: 2, PageSize: 5},
		},
		{name: "bad type", query: "?type=webinar", wantStatus: http.StatusBadRequest},
		{name: "bad bool", query: "?ticketSalesEnabled=maybe", wantStatus: http.StatusBadRequest},
		{name: "bad status", query: "?ticketSalesStatus=soon", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEvent(t)
			svc := &fakeEventService{page: &domain.PaginatedEvents{Data: []*domain.Event{e}, Total: 1, Page: 1, Limit: 20, TotalPages: 1}}
			c := NewEventController(testLogger, svc)

			rr, env := serve(t, c.ListEvents, testRequest{method: http.MethodGet, path: "/events" + tt.query})

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus != http.StatusOK {
				assert.Empty(t, svc.lastCall)
				assert.Equal(t, helpers.ErrCodeBadRequest, env.Error.Code)
				return
			}
			assert.Equal(t, tt.wantFilters, svc.lastFilters)
			assert.Equal(t, tt.wantPage, svc.lastPage)
			data := env.Data.(map[string]any)
			assert.EqualValues(t, 1, data["totalPages"])
			assert.Len(t, data["data"], 1)
		})
	}
}

func TestEventController_GetEventStats(t *testing.T) {
	svc := &fakeEventService{stats: &domain.EventStats{TotalEvents: 2, EventTypes: 1}}
	c := NewEventController(testLogger, svc)

	rr, env := serve(t, c.GetEventStats, testRequest{method: http.MethodGet, path: "/events/stats"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "acc-1", svc.lastAccountID)
	data := env.Data.(map[string]any)
	assert.EqualValues(t, 2, data["totalEvents"])
	assert.Nil(t, data["nextEvent"])
}

func TestEventController_EventScopedRoutes(t *testing.T) {
	eventParams := map[string]string{"eventID": "ev-1"}
	dateParams := map[string]string{"eventID": "ev-1", "dateID": "d-1"}

	tests := []struct {
		name       string
		handler    func(c *EventController) http.HandlerFunc
		req        testRequest
		svcErr     error
		wantStatus int
		wantCode   string
		wantCall   string
	}{
		{
			name:       "get",
			handler:    func(c *EventController) http.HandlerFunc { return c.GetEvent },
			req:        testRequest{method: http.MethodGet, params: eventParams},
			wantStatus: http.StatusOK,
			wantCall:   "GetEvent",
		},
		{
			name:       "get forbidden",
			handler:    func(c *EventController) http.HandlerFunc { return c.GetEvent },
			req:        testRequest{method: http.MethodGet, params: eventParams},
			svcErr:     domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantCode:   helpers.ErrCodeForbidden,
			wantCall:   "GetEvent",
		},
		{
			name:       "get not found",
			handler:    func(c *EventController) http.HandlerFunc { return c.GetEvent },
			req:        testRequest{method: http.MethodGet, params: eventParams},
			svcErr:     domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
			wantCall:   "GetEvent",
		},
		{
			name:       "get missing id",
			handler:    func(c *EventController) http.HandlerFunc { return c.GetEvent },
			req:        testRequest{method: http.MethodGet},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "get unauthenticated",
			handler:    func(c *EventController) http.HandlerFunc { return c.GetEvent },
			req:        testRequest{method: http.MethodGet, params: eventParams, anon: true},
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
		{
			name:       "update",
			handler:    func(c *EventController) http.HandlerFunc { return c.UpdateEvent },
			req:        testRequest{method: http.MethodPatch, params: eventParams, body: `{"name":"New","maxCapacity":null}`},
			wantStatus: http.StatusOK,
			wantCall:   "UpdateEvent",
		},
		{
			name:       "update bad type",
			handler:    func(c *EventController) http.HandlerFunc { return c.UpdateEvent },
			req:        testRequest{method: http.MethodPatch, params: eventParams, body: `{"type":"webinar"}`},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationError,
		},
		{
			name:       "update inactive",
			handler:    func(c *EventController) http.HandlerFunc { return c.UpdateEvent },
			req:        testRequest{method: http.MethodPatch, params: eventParams, body: `{"name":"New"}`},
			svcErr:     ruleErr(t, domain.ErrEventInactive),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationError,
			wantCall:   "UpdateEvent",
		},
		{
			name:       "deactivate",
			handler:    func(c *EventController) http.HandlerFunc { return c.DeactivateEvent },
			req:        testRequest{method: http.MethodDelete, params: eventParams},
			wantStatus: http.StatusOK,
			wantCall:   "DeactivateEvent",
		},
		{
			name:       "add date",
			handler:    func(c *EventController) http.HandlerFunc { return c.AddEventDate },
			req:        testRequest{method: http.MethodPost, params: eventParams, body: `{"date":"2099-03-01","startTime":"09:00","endTime":"10:00"}`},
			wantStatus: http.StatusCreated,
			wantCall:   "AddEventDate",
		},
		{
			name:       "add date missing times",
			handler:    func(c *EventController) http.HandlerFunc { return c.AddEventDate },
			req:        testRequest{method: http.MethodPost, params: eventParams, body: `{"date":"2099-03-01"}`},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationError,
		},
		{
			name:       "add duplicate date",
			handler:    func(c *EventController) http.HandlerFunc { return c.AddEventDate },
			req:        testRequest{method: http.MethodPost, params: eventParams, body: `{"date":"2099-01-01","startTime":"10:00","endTime":"12:00"}`},
			svcErr:     ruleErr(t, domain.ErrDuplicateEventDate),
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
			wantCall:   "AddEventDate",
		},
		{
			name:       "update date",
			handler:    func(c *EventController) http.HandlerFunc { return c.UpdateEventDate },
			req:        testRequest{method: http.MethodPatch, params: dateParams, body: `{"endTime":"13:00"}`},
			wantStatus: http.StatusOK,
			wantCall:   "UpdateEventDate",
		},
		{
			name:       "update date unknown",
			handler:    func(c *EventController) http.HandlerFunc { return c.UpdateEventDate },
			req:        testRequest{method: http.MethodPatch, params: dateParams, body: `{}`},
			svcErr:     ruleErr(t, domain.ErrEventDateNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
			wantCall:   "UpdateEventDate",
		},
		{
			name:       "remove date",
			handler:    func(c *EventController) http.HandlerFunc { return c.RemoveEventDate },
			req:        testRequest{method: http.MethodDelete, params: dateParams},
			wantStatus: http.StatusOK,
			wantCall:   "RemoveEventDate",
		},
		{
			name:       "remove date missing id",
			handler:    func(c *EventController) http.HandlerFunc { return c.RemoveEventDate },
			req:        testRequest{method: http.MethodDelete, params: eventParams},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "finish date",
			handler:    func(c *EventController) http.HandlerFunc { return c.FinishEventDate },
			req:        testRequest{method: http.MethodPost, params: dateParams},
			wantStatus: http.StatusOK,
			wantCall:   "FinishEventDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{event: newTestEvent(t), err: tt.svcErr}
			c := NewEventController(testLogger, svc)
			tt.req.path = "/events/ev-1"

			rr, env := serve(t, tt.handler(c), tt.req)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			assert.Equal(t, tt.wantCall, svc.lastCall)
			if tt.wantCall != "" {
				assert.Equal(t, "acc-1", svc.lastAccountID)
				assert.Equal(t, "ev-1", svc.lastEventID)
			}
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			} else {
				assert.Nil(t, env.Error)
			}
		})
	}
}

func TestUpdateEventRequest_ToDomain(t *testing.T) {
	var req UpdateEventRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"type":"hybrid","url":" new-url ","maxCapacity":null,
		"address":{"street":"s","city":"c","state":"st","zip":"z","country":"co"},
		"tags":["a","a"]}`), &req))

	u := req.toDomain()
	assert.Nil(t, u.Name)
	assert.Equal(t, domain.EventTypeHybrid, *u.Type)
	assert.Equal(t, domain.EventURL("new-url"), *u.URL)
	assert.Equal(t, domain.Null[int](), u.MaxCapacity)
	assert.Equal(t, domain.Set(domain.Address{Street: "s", City: "c", State: "st", Zip: "z", Country: "co"}), u.Address)
	assert.Equal(t, []string{"a", "a"}, *u.Tags)

	var cleared UpdateEventRequest
	require.NoError(t, json.Unmarshal([]byte(`{"address":null}`), &cleared))
	cu := cleared.toDomain()
	assert.Equal(t, domain.Null[domain.Address](), cu.Address)
	assert.False(t, cu.MaxCapacity.Present)
}

// ruleErr produces a real aggregate rule error wrapping sentinel.
func ruleErr(t *testing.T, sentinel error) error {
	t.Helper()
	e := newTestEvent(t)
	var err error
	switch sentinel {
	case domain.ErrEventInactive:
		require.NoError(t, e.Deactivate(testNow))
		err = e.Deactivate(testNow)
	case domain.ErrDuplicateEventDate:
		_, err = e.AddDate(testNow, domain.EventDateInput{Date: "2099-01-01", StartTime: "10:00", EndTime: "12:00"})
	case domain.ErrEventDateNotFound:
		_, err = e.FinishDate(testNow, "missing")
	}
	require.ErrorIs(t, err, sentinel)
	return err
}

func ptr[T any](v T) *T { return &v }
