package applicant

import (
	"errors"
	"strings"

	applicanterrors "go-recruit/internal/applicant/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return applicanterrors.ErrApplicantNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_applicants_email":
				return applicanterrors.ErrEmailAlreadyExists
			case "uq_applicants_employee_code":
				return applicanterrors.ErrEmployeeCodeAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_applicants_email") {
		return applicanterrors.ErrEmailAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_applicants_employee_code") {
		return applicanterrors.ErrEmployeeCodeAlreadyExists
	}

	return err
}
