package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"green-link/internal/shared_kernel/domain"
)

type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors"`
}

// ReplyWithDomainError maps the service error taxonomy onto status codes.
// Anything outside the taxonomy is reported as fallback with a 500.
func ReplyWithDomainError(w http.ResponseWriter, err error, fallback string) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		ReplyJSONResponse(w, http.StatusBadRequest, ValidationErrorResponse{
			Message: domain.ErrValidation.Error(),
			Errors:  validationErr.Fields,
		})
	case errors.As(err, &notFoundErr):
		ReplyWithError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &conflictErr):
		ReplyWithError(w, http.StatusBadRequest, conflictErr.Error())
	case errors.Is(err, ErrMalformedBody):
		ReplyWithError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(fallback, slog.String("error", err.Error()))
		ReplyWithError(w, http.StatusInternalServerError, fallback)
	}
}
