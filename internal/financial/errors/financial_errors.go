package financialerrors

import (
	"go-recruit/internal/shared/apperror"
	"net/http"
)

var (
	ErrNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"Financial API not configured",
		http.StatusServiceUnavailable,
	)
	ErrSyncFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Financial sync failed",
		http.StatusBadGateway,
	)
	ErrApplicantNotHired = apperror.New(
		apperror.CodeInvalidState,
		"Only hired applicants can be synced",
		http.StatusBadRequest,
	)
)
