package response

import (
	"errors"
	"net/http"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/checklist"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/location"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/patrol"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/user"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/platform"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Request-shape validation errors
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Submission pipeline failures carry a single operator-facing message
	var pipelineErr patrol.ValidationError
	if errors.As(err, &pipelineErr) {
		UnprocessableEntity(w, pipelineErr.Message)
		return
	}

	// Platform transport errors surface the upstream message
	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		BadGateway(w, apiErr.Message)
		return
	}

	switch {
	// Patrol domain errors
	case errors.Is(err, patrol.ErrDraftNotFound):
		NotFound(w, "Patrolling draft not found")
	case errors.Is(err, patrol.ErrQuestionNotFound):
		NotFound(w, "Question not found")
	case errors.Is(err, patrol.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, patrol.ErrCheckpointNotFound):
		NotFound(w, "Checkpoint not found")
	case errors.Is(err, patrol.ErrSubmitInProgress):
		Conflict(w, "Submission already in progress for this draft")

	// Reference data errors
	case errors.Is(err, checklist.ErrChecklistNotFound):
		NotFound(w, "Checklist not found")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, location.ErrUnknownLevel):
		BadRequest(w, "Unknown location level", nil)
	case errors.Is(err, location.ErrInvalidParentID):
		BadRequest(w, "Invalid parent location id", nil)

	// Platform configuration
	case errors.Is(err, platform.ErrNotConfigured):
		ServiceUnavailable(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
