package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const maxEventURLLength = 255

var eventURLPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// EventURL is the account-scoped slug of an event.
type EventURL string

// NewEventURL trims s and checks it against the slug charset.
func NewEventURL(s string) (EventURL, error) {
	s = strings.TrimSpace(s)
	if msg := eventURLProblem(s); msg != "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, msg)
	}
	return EventURL(s), nil
}

func (u EventURL) String() string { return string(u) }

func eventURLProblem(s string) string {
	switch {
	case s == "":
		return "url is required"
	case len(s) > maxEventURLLength:
		return fmt.Sprintf("url must be at most %d characters", maxEventURLLength)
	case !eventURLPattern.MatchString(s):
		return "url may only contain letters, digits, '-' and '_'"
	}
	return ""
}
