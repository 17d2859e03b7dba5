package interviewerrors

import (
	"go-recruit/internal/shared/apperror"
	"net/http"
)

var (
	ErrInterviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Interview not found",
		http.StatusNotFound,
	)
	ErrApplicantEmailMissing = apperror.New(
		apperror.CodeInvalidState,
		"Applicant email not found",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid interview date, expected YYYY-MM-DD",
		http.StatusUnprocessableEntity,
	)
	ErrAlreadyCompleted = apperror.New(
		apperror.CodeInvalidState,
		"Interview is already completed",
		http.StatusConflict,
	)
	ErrInvitationSendFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Failed to send invitation",
		http.StatusServiceUnavailable,
	)
)
