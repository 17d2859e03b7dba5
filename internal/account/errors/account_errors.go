package accounterrors

import (
	"go-recruit/internal/shared/apperror"
	"net/http"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"User account not found",
		http.StatusNotFound,
	)
	ErrAccountAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User account already exists for this applicant",
		http.StatusConflict,
	)
	ErrAccountEmailExists = apperror.New(
		apperror.CodeConflict,
		"Email is already used by another account",
		http.StatusConflict,
	)
)
