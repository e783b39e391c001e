package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventmanagement/internal/domain"
)

// WriteServiceError maps an error returned by a domain service to its HTTP response.
// Unexpected errors are logged and reported as 500 without leaking the cause.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrEventDateNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "event date not found")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrURLTaken):
		WriteJSONErrorDetails(w, http.StatusConflict, ErrCodeConflict, err.Error(),
			[]domain.ValidationIssue{{Path: "url", Message: "url is already in use"}})
	case errors.Is(err, domain.ErrDuplicateEventDate) && errors.As(err, &ve):
		WriteJSONErrorDetails(w, http.StatusConflict, ErrCodeConflict, ve.Issues[0].Message, ve.Issues)
	case errors.As(err, &ve):
		WriteJSONErrorDetails(w, http.StatusBadRequest, ErrCodeValidationError, "validation failed", ve.Issues)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
