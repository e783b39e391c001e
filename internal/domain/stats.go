package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"
)

const msPerDay = 86_400_000

var monthAbbreviations = map[string][12]string{
	"en":    {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"pt-BR": {"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
	"es":    {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
}

// EventStats summarises the active events of one account.
type EventStats struct {
	TotalEvents      int            `json:"totalEvents"`
	EventTypes       int            `json:"eventTypes"`
	CreatedThisMonth int            `json:"createdThisMonth"`
	ActiveEvents     int            `json:"activeEvents"`
	NextEvent        *UpcomingEvent `json:"nextEvent"`
}

// UpcomingEvent is the soonest scheduled occurrence across an account's events.
type UpcomingEvent struct {
	EventID   string    `json:"eventId"`
	EventName string    `json:"eventName"`
	DateID    string    `json:"dateId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	StartsAt  time.Time `json:"startsAt"`
	DaysUntil int       `json:"daysUntil"`
	Label     string    `json:"label"`
}

// ComputeEventStats scans events at now. Dates are composed as wall-clock time in now's location.
// Inactive events are ignored. locale picks the month abbreviation of the label ("en" by default).
func ComputeEventStats(events []*Event, now time.Time, locale string) EventStats {
	loc := now.Location()
	active := lo.Filter(events, func(e *Event, _ int) bool { return e.IsActive() })

	stats := EventStats{
		TotalEvents: len(active),
		EventTypes:  len(lo.Uniq(lo.Map(active, func(e *Event, _ int) EventType { return e.eventType }))),
	}

	var (
		next      *EventDate
		nextEvent *Event
		nextStart time.Time
	)
	for _, e := range active {
		created := e.createdAt.In(loc)
		if created.Year() == now.Year() && created.Month() == now.Month() {
			stats.CreatedThisMonth++
		}
		if HasActiveDate(e, now) {
			stats.ActiveEvents++
		}
		d, ok := NextUpcomingDate(e, now)
		if !ok {
			continue
		}
		start := d.Start(loc)
		if next == nil || start.Before(nextStart) {
			next, nextEvent, nextStart = &d, e, start
		}
	}

	if next != nil {
		stats.NextEvent = &UpcomingEvent{
			EventID:   nextEvent.id,
			EventName: nextEvent.name,
			DateID:    next.id,
			Date:      next.date,
			StartTime: next.startTime,
			EndTime:   next.endTime,
			StartsAt:  nextStart,
			DaysUntil: DaysUntil(nextStart, now),
			Label:     DateLabel(nextStart, locale),
		}
	}
	return stats
}

// CachedEventStats is a stats value together with the instant it stops describing the present.
type CachedEventStats struct {
	Stats      EventStats `json:"stats"`
	ValidUntil time.Time  `json:"validUntil"`
}

// FreshAt reports whether the cached value still equals a fresh computation at now.
func (c CachedEventStats) FreshAt(now time.Time) bool {
	return now.Before(c.ValidUntil)
}

// StatsValidUntil returns the first instant after now at which ComputeEventStats may give a
// different result although no event changed: a scheduled date starts or its window closes,
// the day count of the next event ticks down, or a new month begins.
func StatsValidUntil(events []*Event, stats EventStats, now time.Time) time.Time {
	loc := now.Location()
	until := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, loc)
	consider := func(t time.Time) {
		if t.After(now) && t.Before(until) {
			until = t
		}
	}
	for _, e := range events {
		if !e.IsActive() {
			continue
		}
		for _, d := range e.dates {
			if d.IsFinished() {
				continue
			}
			consider(d.Start(loc))
			// HasActiveDate includes the end instant, so the window closes just after it.
			consider(d.End(loc).Add(time.Nanosecond))
		}
	}
	if n := stats.NextEvent; n != nil && n.DaysUntil > 1 {
		consider(n.StartsAt.Add(-time.Duration(n.DaysUntil-1) * 24 * time.Hour))
	}
	return until
}

// HasActiveDate reports whether now falls within [start, end] of a scheduled date of e.
func HasActiveDate(e *Event, now time.Time) bool {
	loc := now.Location()
	return lo.SomeBy(e.dates, func(d EventDate) bool {
		if d.IsFinished() {
			return false
		}
		return !now.Before(d.Start(loc)) && !now.After(d.End(loc))
	})
}

// NextUpcomingDate returns the earliest scheduled date of e starting strictly after now.
// On equal start the date seen first wins.
func NextUpcomingDate(e *Event, now time.Time) (EventDate, bool) {
	loc := now.Location()
	var (
		best      EventDate
		bestStart time.Time
		found     bool
	)
	for _, d := range e.dates {
		if d.IsFinished() {
			continue
		}
		start := d.Start(loc)
		if !start.After(now) {
			continue
		}
		if !found || start.Before(bestStart) {
			best, bestStart, found = d, start, true
		}
	}
	return best, found
}

// DaysUntil is the number of started days between now and target, rounded up.
func DaysUntil(target, now time.Time) int {
	ms := target.Sub(now).Milliseconds()
	return int(math.Ceil(float64(ms) / msPerDay))
}

// DateLabel renders "<day> <month>" with a three-letter month in the given locale.
func DateLabel(t time.Time, locale string) string {
	months, ok := monthAbbreviations[locale]
	if !ok {
		months = monthAbbreviations["en"]
	}
	return fmt.Sprintf("%d %s", t.Day(), months[t.Month()-1])
}
