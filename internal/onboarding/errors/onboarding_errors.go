package onboardingerrors

import (
	"go-recruit/internal/shared/apperror"
	"net/http"
)

var (
	ErrChecklistNotFound = apperror.New(
		apperror.CodeNotFound,
		"Onboarding checklist not found",
		http.StatusNotFound,
	)
	ErrChecklistAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Onboarding checklist already exists for this applicant",
		http.StatusConflict,
	)
	ErrChecklistLocked = apperror.New(
		apperror.CodeConflict,
		"Checklist is already completed and can no longer be modified",
		http.StatusConflict,
	)
	ErrInvalidChecklistID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid checklist id",
		http.StatusBadRequest,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid start date, expected YYYY-MM-DD",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownItem = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown checklist item",
		http.StatusUnprocessableEntity,
	)
)
