package applicanterrors

import (
	"go-recruit/internal/shared/apperror"
	"net/http"
)

var (
	ErrApplicantNotFound = apperror.New(
		apperror.CodeNotFound,
		"Applicant not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Applicant with the same email already exists",
		http.StatusConflict,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusConflict,
	)
	ErrInvalidApplicantID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid applicant ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid applicant status",
		http.StatusUnprocessableEntity,
	)
)
