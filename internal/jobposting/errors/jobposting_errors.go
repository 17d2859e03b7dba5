package jobpostingerrors

import (
	"go-recruit/internal/shared/apperror"
	"net/http"
)

var (
	ErrJobPostingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job posting not found",
		http.StatusNotFound,
	)
	ErrInvalidDeadline = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid application deadline, expected YYYY-MM-DD",
		http.StatusUnprocessableEntity,
	)
)
