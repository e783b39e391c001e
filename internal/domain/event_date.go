package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// DateState is the lifecycle state of an EventDate. Scheduled -> Finished is the only edge.
type DateState int

const (
	DateScheduled DateState = iota
	DateFinished
)

func (s DateState) String() string {
	if s == DateFinished {
		return "finished"
	}
	return "scheduled"
}

// EventDateProps is the flat form of an EventDate, used for construction, storage and the wire.
type EventDateProps struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	Finished   bool       `json:"finished"`
	FinishedAt *time.Time `json:"finishedAt"`
}

// EventDateInput is a new occurrence to schedule.
type EventDateInput struct {
	Date      string
	StartTime string
	EndTime   string
}

// EventDatePatch changes some fields of a scheduled occurrence. Nil fields are kept.
type EventDatePatch struct {
	Date      *string
	StartTime *string
	EndTime   *string
}

// EventDate is one scheduled occurrence of an event. It is immutable: changes produce a new value.
type EventDate struct {
	id         string
	date       string
	startTime  string
	endTime    string
	state      DateState
	finishedAt time.Time
}

// NewEventDate validates p and returns the occurrence. An empty ID is generated.
// Every violated field is reported in the returned *ValidationError.
func NewEventDate(p EventDateProps) (EventDate, error) {
	var is issues
	if !validDate(p.Date) {
		is.add("date", "date must be a valid YYYY-MM-DD day")
	}
	startOK := timePattern.MatchString(p.StartTime)
	if !startOK {
		is.add("startTime", "startTime must be HH:mm")
	}
	endOK := timePattern.MatchString(p.EndTime)
	if !endOK {
		is.add("endTime", "endTime must be HH:mm")
	}
	if startOK && endOK && minutesOf(p.StartTime) >= minutesOf(p.EndTime) {
		is.add("endTime", "endTime must be after startTime")
	}
	if p.Finished && p.FinishedAt == nil {
		is.add("finishedAt", "finishedAt is required when the date is finished")
	}
	if !p.Finished && p.FinishedAt != nil {
		is.add("finishedAt", "finishedAt must be empty when the date is not finished")
	}
	if err := is.err(); err != nil {
		return EventDate{}, err
	}

	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	d := EventDate{
		id:        id,
		date:      p.Date,
		startTime: p.StartTime,
		endTime:   p.EndTime,
		state:     DateScheduled,
	}
	if p.Finished {
		d.state = DateFinished
		d.finishedAt = *p.FinishedAt
	}
	return d, nil
}

// Finish returns the finished form of d. A finished date cannot be finished again.
func (d EventDate) Finish(now time.Time) (EventDate, error) {
	if d.state == DateFinished {
		return EventDate{}, ruleError(ErrEventDateAlreadyFinished, "finished", "event date already finished")
	}
	d.state = DateFinished
	d.finishedAt = now
	return d, nil
}

// withPatch builds the replacement for a scheduled date, keeping its ID.
func (d EventDate) withPatch(p EventDatePatch) (EventDate, error) {
	props := d.Props()
	if p.Date != nil {
		props.Date = *p.Date
	}
	if p.StartTime != nil {
		props.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		props.EndTime = *p.EndTime
	}
	return NewEventDate(props)
}

func (d EventDate) ID() string        { return d.id }
func (d EventDate) Date() string      { return d.date }
func (d EventDate) StartTime() string { return d.startTime }
func (d EventDate) EndTime() string   { return d.endTime }
func (d EventDate) State() DateState  { return d.state }
func (d EventDate) IsFinished() bool  { return d.state == DateFinished }

// FinishedAt returns the finishing instant, or nil while scheduled.
func (d EventDate) FinishedAt() *time.Time {
	if d.state != DateFinished {
		return nil
	}
	t := d.finishedAt
	return &t
}

// HasSameDateTime compares the (date, startTime, endTime) triple, ignoring ID and state.
func (d EventDate) HasSameDateTime(other EventDate) bool {
	return d.date == other.date && d.startTime == other.startTime && d.endTime == other.endTime
}

// Equals is identity equality.
func (d EventDate) Equals(other EventDate) bool {
	return d.id == other.id
}

// Start composes the date and start time as wall-clock time in loc.
func (d EventDate) Start(loc *time.Location) time.Time {
	return d.at(d.startTime, loc)
}

// End composes the date and end time as wall-clock time in loc.
func (d EventDate) End(loc *time.Location) time.Time {
	return d.at(d.endTime, loc)
}

func (d EventDate) at(hhmm string, loc *time.Location) time.Time {
	day, _ := time.Parse(dateLayout, d.date)
	m := minutesOf(hhmm)
	return time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, loc)
}

// isBefore reports whether the calendar day of d is strictly before today.
func (d EventDate) isBefore(today string) bool {
	return d.date < today
}

// Props returns the flat form of d.
func (d EventDate) Props() EventDateProps {
	return EventDateProps{
		ID:         d.id,
		Date:       d.date,
		StartTime:  d.startTime,
		EndTime:    d.endTime,
		Finished:   d.state == DateFinished,
		FinishedAt: d.FinishedAt(),
	}
}

func (d EventDate) String() string {
	return fmt.Sprintf("%s %s-%s", d.date, d.startTime, d.endTime)
}

// issues re-checks the invariants of an already built date.
func (d EventDate) issues() issues {
	var is issues
	if d.id == "" {
		is.add("id", "id is required")
	}
	if _, err := NewEventDate(d.Props()); err != nil {
		if ve, ok := err.(*ValidationError); ok {
			is = append(is, ve.Issues...)
		}
	}
	return is
}

func validDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// minutesOf converts a well-formed HH:mm value to minutes since midnight.
func minutesOf(hhmm string) int {
	h, _ := strconv.Atoi(hhmm[:2])
	m, _ := strconv.Atoi(hhmm[3:])
	return h*60 + m
}

// Today returns the calendar day of now in its own location.
func Today(now time.Time) string {
	return now.Format(dateLayout)
}
