package response

import (
	"errors"
	"net/http"

	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	"github.com/talentia-hr/attendance-engine/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrSyntheticRecord):
		UnprocessableEntity(w, "Synthetic absence records cannot be deleted")
	case errors.Is(err, attendance.ErrRefreshInProgress):
		Conflict(w, "A refresh is already running; retry shortly")
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
