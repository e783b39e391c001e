package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventmanagement/internal/domain"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const eventColumns = `id, account_id, name, description, type, url,
		address_street, address_city, address_state, address_zip, address_country,
		max_capacity, ticket_sales_enabled, ticket_sales_status, tags, status, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// Save upserts the event row and replaces its dates in one transaction.
func (r *eventRepository) Save(ctx context.Context, e *domain.Event) error {
	s := e.Snapshot()
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	street, city, state, zip, country := addressColumns(s.Address)
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			type = EXCLUDED.type,
			url = EXCLUDED.url,
			address_street = EXCLUDED.address_street,
			address_city = EXCLUDED.address_city,
			address_state = EXCLUDED.address_state,
			address_zip = EXCLUDED.address_zip,
			address_country = EXCLUDED.address_country,
			max_capacity = EXCLUDED.max_capacity,
			ticket_sales_enabled = EXCLUDED.ticket_sales_enabled,
			ticket_sales_status = EXCLUDED.ticket_sales_status,
			tags = EXCLUDED.tags,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`
	_, err = tx.ExecContext(ctx, query,
		s.ID, s.AccountID, s.Name, s.Description, string(s.Type), string(s.URL),
		street, city, state, zip, country,
		nullInt(s.MaxCapacity), s.TicketSales.Enabled, string(s.TicketSales.Status), pq.Array(s.Tags), string(s.Status),
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrURLTaken
		}
		return fmt.Errorf("upsert event: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM event_dates WHERE event_id = $1`, s.ID); err != nil {
		return fmt.Errorf("delete event dates: %w", err)
	}
	for i, d := range s.Dates {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO event_dates (id, event_id, position, date, start_time, end_time, finished, finished_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, d.ID, s.ID, i, d.Date, d.StartTime, d.EndTime, d.Finished, nullTime(d.FinishedAt))
		if err != nil {
			return fmt.Errorf("insert event date %s: %w", d.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	s, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	dates, err := r.loadDates(ctx, []string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Dates = dates[s.ID]
	return restore(s)
}

func (r *eventRepository) ExistsByURL(ctx context.Context, accountID string, url domain.EventURL) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE account_id = $1 AND url = $2)`
	if err := r.DB.QueryRowContext(ctx, query, accountID, string(url)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// FindByAccountID returns every event of the account, active or not, newest first.
func (r *eventRepository) FindByAccountID(ctx context.Context, accountID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE account_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	snaps, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}
	return r.withDates(ctx, snaps)
}

// FindMany returns one page of the account's active events matching filters, newest first.
func (r *eventRepository) FindMany(ctx context.Context, accountID string, filters domain.EventFilters, page domain.PaginationParams) (*domain.PaginatedEvents, error) {
	where := []string{"account_id = $1", "status = 'active'"}
	args := []interface{}{accountID}
	n := 2
	if len(filters.Tags) > 0 {
		where = append(where, fmt.Sprintf("tags && $%d", n))
		args = append(args, pq.Array(filters.Tags))
		n++
	}
	if filters.Type != nil {
		where = append(where, fmt.Sprintf("type = $%d", n))
		args = append(args, string(*filters.Type))
		n++
	}
	if filters.TicketSalesEnabled != nil {
		where = append(where, fmt.Sprintf("ticket_sales_enabled = $%d", n))
		args = append(args, *filters.TicketSalesEnabled)
		n++
	}
	if filters.TicketSalesStatus != nil {
		where = append(where, fmt.Sprintf("ticket_sales_status = $%d", n))
		args = append(args, string(*filters.TicketSalesStatus))
		n++
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM events WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		eventColumns, cond, n, n+1)
	rows, err := r.DB.QueryContext(ctx, query, append(args, page.PageSize, page.Offset())...)
	if err != nil {
		return nil, err
	}
	snaps, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}
	events, err := r.withDates(ctx, snaps)
	if err != nil {
		return nil, err
	}
	return &domain.PaginatedEvents{
		Data:       events,
		Total:      total,
		Page:       page.Page,
		Limit:      page.PageSize,
		TotalPages: page.TotalPages(total),
	}, nil
}

func (r *eventRepository) withDates(ctx context.Context, snaps []domain.EventSnapshot) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0, len(snaps))
	if len(snaps) == 0 {
		return events, nil
	}
	ids := make([]string, 0, len(snaps))
	for _, s := range snaps {
		ids = append(ids, s.ID)
	}
	dates, err := r.loadDates(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range snaps {
		s.Dates = dates[s.ID]
		e, err := restore(s)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// loadDates returns the dates of the given events keyed by event ID, in stored order.
func (r *eventRepository) loadDates(ctx context.Context, eventIDs []string) (map[string][]domain.EventDateProps, error) {
	query := `
		SELECT event_id, id, date, start_time, end_time, finished, finished_at
		FROM event_dates
		WHERE event_id = ANY($1)
		ORDER BY event_id, position
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(eventIDs))
	if err != nil {
		return nil, fmt.Errorf("load event dates: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]domain.EventDateProps, len(eventIDs))
	for rows.Next() {
		var (
			eventID    string
			d          domain.EventDateProps
			finishedAt sql.NullTime
		)
		if err := rows.Scan(&eventID, &d.ID, &d.Date, &d.StartTime, &d.EndTime, &d.Finished, &finishedAt); err != nil {
			return nil, err
		}
		if finishedAt.Valid {
			t := finishedAt.Time
			d.FinishedAt = &t
		}
		out[eventID] = append(out[eventID], d)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (domain.EventSnapshot, error) {
	var (
		s                                   domain.EventSnapshot
		eventType, url, salesStatus, status string
		street, city, state, zip, country   sql.NullString
		maxCapacity                         sql.NullInt64
		tags                                pq.StringArray
	)
	err := row.Scan(
		&s.ID, &s.AccountID, &s.Name, &s.Description, &eventType, &url,
		&street, &city, &state, &zip, &country,
		&maxCapacity, &s.TicketSales.Enabled, &salesStatus, &tags, &status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.EventSnapshot{}, err
	}
	s.Type = domain.EventType(eventType)
	s.URL = domain.EventURL(url)
	s.TicketSales.Status = domain.TicketSalesStatus(salesStatus)
	s.Status = domain.EventStatus(status)
	s.Tags = []string(tags)
	if street.Valid {
		s.Address = &domain.Address{
			Street:  street.String,
			City:    city.String,
			State:   state.String,
			Zip:     zip.String,
			Country: country.String,
		}
	}
	if maxCapacity.Valid {
		v := int(maxCapacity.Int64)
		s.MaxCapacity = &v
	}
	return s, nil
}

func scanEvents(rows *sql.Rows) ([]domain.EventSnapshot, error) {
	defer rows.Close()
	var out []domain.EventSnapshot
	for rows.Next() {
		s, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func restore(s domain.EventSnapshot) (*domain.Event, error) {
	e, err := domain.RestoreEvent(s)
	if err != nil {
		return nil, fmt.Errorf("restore event %s: %w", s.ID, err)
	}
	return e, nil
}

func addressColumns(a *domain.Address) (street, city, state, zip, country sql.NullString) {
	if a == nil {
		return
	}
	return sql.NullString{String: a.Street, Valid: true},
		sql.NullString{String: a.City, Valid: true},
		sql.NullString{String: a.State, Valid: true},
		sql.NullString{String: a.Zip, Valid: true},
		sql.NullString{String: a.Country, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
