package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services, repositories and delivery.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrURLTaken     = errors.New("event url already in use")
	ErrCacheMiss    = errors.New("cache miss")
)

// Sentinel errors for event aggregate rules. They are always returned wrapped in a
// *ValidationError carrying a single issue.
var (
	ErrEventInactive            = errors.New("cannot mutate inactive event")
	ErrEventDateNotFound        = errors.New("event date not found")
	ErrEventDateFinished        = errors.New("event date is finished")
	ErrEventDateAlreadyFinished = errors.New("event date already finished")
	ErrLastEventDate            = errors.New("event must keep at least one date")
	ErrPastEventDate            = errors.New("event date is in the past")
	ErrDuplicateEventDate       = errors.New("duplicate event date")
)

// ValidationIssue is one violated rule. Path names the offending field, e.g. "dates[1].startTime".
type ValidationIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError carries every violation detected by one call.
type ValidationError struct {
	Issues []ValidationIssue
	cause  error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.Path+": "+is.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap returns the rule sentinel for single-issue rule errors, nil otherwise.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// ruleError builds the single-issue error used for domain-rule failures.
func ruleError(cause error, path, message string) *ValidationError {
	return &ValidationError{
		Issues: []ValidationIssue{{Path: path, Message: message}},
		cause:  cause,
	}
}

// issues accumulates validation issues.
type issues []ValidationIssue

func (is *issues) add(path, message string) {
	*is = append(*is, ValidationIssue{Path: path, Message: message})
}

func (is *issues) addPrefixed(prefix string, more []ValidationIssue) {
	for _, m := range more {
		is.add(prefix+"."+m.Path, m.Message)
	}
}

func (is issues) err() error {
	if len(is) == 0 {
		return nil
	}
	return &ValidationError{Issues: is}
}
