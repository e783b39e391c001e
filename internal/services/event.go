package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventmanagement/internal/clock"
	"eventmanagement/internal/domain"
	"eventmanagement/internal/metrics"
)

// Operation names used for logs and the event_mutations_total metric.
const (
	opCreate     = "create"
	opUpdate     = "update"
	opDeactivate = "deactivate"
	opAddDate    = "add_date"
	opUpdateDate = "update_date"
	opRemoveDate = "remove_date"
	opFinishDate = "finish_date"
)

type eventService struct {
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	statsCache     domain.EventStatsCache
	clock          clock.Clock
	metrics        *metrics.Metrics
	logger         *slog.Logger
	statsLocale    string
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	emailService domain.EmailService,
	statsCache domain.EventStatsCache,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
	statsLocale string,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		emailService:   emailService,
		statsCache:     statsCache,
		clock:          clk,
		metrics:        m,
		logger:         logger,
		statsLocale:    statsLocale,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if in.AccountID == "" {
		return nil, fmt.Errorf("event account is required")
	}
	taken, err := s.eventRepo.ExistsByURL(ctx, in.AccountID, in.URL)
	if err != nil {
		return nil, fmt.Errorf("check event url: %w", err)
	}
	if taken {
		s.metrics.RecordMutation(opCreate, "rejected")
		return nil, domain.ErrURLTaken
	}

	event, err := domain.NewEvent(domain.NewEventParams{
		AccountID:   in.AccountID,
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		URL:         in.URL,
		Address:     in.Address,
		MaxCapacity: in.MaxCapacity,
		TicketSales: in.TicketSales,
		Tags:        in.Tags,
		Dates:       in.Dates,
	}, s.clock.Now())
	if err != nil {
		s.metrics.RecordMutation(opCreate, "rejected")
		return nil, err
	}
	if err := s.eventRepo.Save(ctx, event); err != nil {
		s.metrics.RecordMutation(opCreate, "error")
		return nil, fmt.Errorf("save event: %w", err)
	}
	s.metrics.RecordMutation(opCreate, "ok")
	s.invalidateStats(ctx, in.AccountID)
	s.logger.InfoContext(ctx, "event created", "event_id", event.ID(), "account_id", in.AccountID, "dates", len(event.Dates()))

	if in.OwnerEmail != "" {
		s.notifyCreated(ctx, in.OwnerEmail, event)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, accountID, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.loadOwned(ctx, accountID, eventID)
}

func (s *eventService) ListEvents(ctx context.Context, accountID string, filters domain.EventFilters, page domain.PaginationParams) (*domain.PaginatedEvents, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	result, err := s.eventRepo.FindMany(ctx, accountID, filters, page)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if result.Data == nil {
		result.Data = []*domain.Event{}
	}
	return result, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, accountID, eventID string, u domain.EventUpdate) (*domain.Event, error) {
	return s.mutate(ctx, opUpdate, accountID, eventID, func(ctx context.Context, e *domain.Event, now time.Time) error {
		if u.URL != nil && *u.URL != e.URL() {
			taken, err := s.eventRepo.ExistsByURL(ctx, accountID, *u.URL)
			if err != nil {
				return fmt.Errorf("check event url: %w", err)
			}
			if taken {
				return domain.ErrURLTaken
			}
		}
		return e.Update(now, u)
	})
}

func (s *eventService) DeactivateEvent(ctx context.Context, accountID, eventID string) error {
	_, err := s.mutate(ctx, opDeactivate, accountID, eventID, func(_ context.Context, e *domain.Event, now time.Time) error {
		return e.Deactivate(now)
	})
	return err
}

func (s *eventService) AddEventDate(ctx context.Context, accountID, eventID string, in domain.EventDateInput) (*domain.Event, error) {
	return s.mutate(ctx, opAddDate, accountID, eventID, func(_ context.Context, e *domain.Event, now time.Time) error {
		_, err := e.AddDate(now, in)
		return err
	})
}

func (s *eventService) UpdateEventDate(ctx context.Context, accountID, eventID, dateID string, p domain.EventDatePatch) (*domain.Event, error) {
	return s.mutate(ctx, opUpdateDate, accountID, eventID, func(_ context.Context, e *domain.Event, now time.Time) error {
		_, err := e.UpdateDate(now, dateID, p)
		return err
	})
}

func (s *eventService) RemoveEventDate(ctx context.Context, accountID, eventID, dateID string) (*domain.Event, error) {
	return s.mutate(ctx, opRemoveDate, accountID, eventID, func(_ context.Context, e *domain.Event, now time.Time) error {
		return e.RemoveDate(now, dateID)
	})
}

func (s *eventService) FinishEventDate(ctx context.Context, accountID, eventID, dateID string) (*domain.Event, error) {
	return s.mutate(ctx, opFinishDate, accountID, eventID, func(_ context.Context, e *domain.Event, now time.Time) error {
		_, err := e.FinishDate(now, dateID)
		return err
	})
}

// GetEventStats serves the account's stats from the cache, computing and storing them on a miss.
func (s *eventService) GetEventStats(ctx context.Context, accountID string) (*domain.EventStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.clock.Now()
	cached, err := s.statsCache.Get(ctx, accountID)
	switch {
	case err == nil && cached.FreshAt(now):
		s.metrics.RecordStatsCache("hit")
		stats := cached.Stats
		return &stats, nil
	case err == nil:
		s.metrics.RecordStatsCache("stale")
	case errors.Is(err, domain.ErrCacheMiss):
		s.metrics.RecordStatsCache("miss")
	default:
		s.metrics.RecordStatsCache("error")
		s.logger.WarnContext(ctx, "stats cache read failed", "account_id", accountID, "err", err)
	}

	events, err := s.eventRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list account events: %w", err)
	}
	stats := domain.ComputeEventStats(events, now, s.statsLocale)
	entry := &domain.CachedEventStats{Stats: stats, ValidUntil: domain.StatsValidUntil(events, stats, now)}
	if err := s.statsCache.Set(ctx, accountID, entry); err != nil {
		s.logger.WarnContext(ctx, "stats cache write failed", "account_id", accountID, "err", err)
	}
	return &stats, nil
}

// mutate loads the caller's event, applies fn and saves the result. The event is not saved when fn fails.
func (s *eventService) mutate(ctx context.Context, op, accountID, eventID string, fn func(context.Context, *domain.Event, time.Time) error) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.loadOwned(ctx, accountID, eventID)
	if err != nil {
		return nil, err
	}
	if err := fn(ctx, event, s.clock.Now()); err != nil {
		s.metrics.RecordMutation(op, resultOf(err))
		return nil, err
	}
	if err := s.eventRepo.Save(ctx, event); err != nil {
		s.metrics.RecordMutation(op, "error")
		return nil, fmt.Errorf("save event: %w", err)
	}
	s.metrics.RecordMutation(op, "ok")
	s.invalidateStats(ctx, accountID)
	s.logger.InfoContext(ctx, "event changed", "operation", op, "event_id", eventID, "account_id", accountID)
	return event, nil
}

func (s *eventService) loadOwned(ctx context.Context, accountID, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.AccountID() != accountID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func (s *eventService) invalidateStats(ctx context.Context, accountID string) {
	if err := s.statsCache.Invalidate(ctx, accountID); err != nil {
		s.logger.WarnContext(ctx, "stats cache invalidation failed", "account_id", accountID, "err", err)
	}
}

func (s *eventService) notifyCreated(ctx context.Context, email string, event *domain.Event) {
	dates := event.SortedDates()
	data := &domain.EventCreatedEmailData{
		Email:     email,
		EventName: event.Name(),
		EventURL:  event.URL().String(),
		EventType: string(event.Type()),
		DateCount: len(dates),
	}
	if len(dates) > 0 {
		data.FirstDate = dates[0].String()
	}
	if err := s.emailService.SendEventCreated(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "event created email failed", "event_id", event.ID(), "err", err)
	}
}

func resultOf(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) || errors.Is(err, domain.ErrURLTaken) {
		return "rejected"
	}
	return "error"
}
