package v1

import (
	"errors"
	"net/http"

	"github.com/pocketplan/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errBudgetIDParameter  = errors.New("the budgetId parameter must be set")
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
)

// Allocation preview errors
var (
	errPreviewModeInvalid = errors.New("the specified allocation mode is invalid")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
