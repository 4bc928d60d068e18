package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondError maps the domain error taxonomy onto HTTP status codes.
// Logical errors surface verbatim; only 503 is worth a client retry.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrDecisionNotFound),
		errors.Is(err, domain.ErrPhotoNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrSelfSwipe),
		errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrDecisionExists),
		errors.Is(err, domain.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrPreferencesNotSet):
		status = http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	if status == http.StatusServiceUnavailable {
		message = domain.ErrStorageUnavailable.Error()
	}

	c.JSON(status, ErrorResponse{Error: message})
}

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (int, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	id, ok := value.(int)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	return id, true
}
