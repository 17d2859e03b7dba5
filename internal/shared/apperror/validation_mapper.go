package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName: applicant_id -> Applicant Id
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError menerjemahkan error binding Gin menjadi AppError.
// Error pertama menjadi headline message, semua field yang gagal masuk ke
// Details sebagai map field -> pesan; field name sudah berupa nama json
// berkat RegisterTagNameFunc di Init.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := make(map[string]string, len(errs))
		for _, e := range errs {
			if e.Tag() == "required" {
				details[e.Field()] = formatFieldName(e.Field()) + " is required"
			} else {
				details[e.Field()] = formatFieldName(e.Field()) + " is invalid"
			}
		}

		first := errs[0]
		var appErr *AppError
		if first.Tag() == "required" {
			appErr = RequiredField(formatFieldName(first.Field()))
		} else {
			appErr = InvalidField(formatFieldName(first.Field()))
		}
		appErr.Details = details
		return appErr
	}

	// bukan ValidationErrors: JSON rusak, tipe salah, body kosong
	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
