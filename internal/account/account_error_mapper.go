package account

import (
	"errors"
	"strings"

	accounterrors "go-recruit/internal/account/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return accounterrors.ErrAccountNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_user_accounts_applicant":
				return accounterrors.ErrAccountAlreadyExists
			case "uq_user_accounts_email":
				return accounterrors.ErrAccountEmailExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_user_accounts_applicant") {
		return accounterrors.ErrAccountAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_user_accounts_email") {
		return accounterrors.ErrAccountEmailExists
	}

	return err
}
