package onboarding

import (
	"errors"
	"strings"

	onboardingerrors "go-recruit/internal/onboarding/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return onboardingerrors.ErrChecklistNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_onboarding_checklists_applicant" {
			return onboardingerrors.ErrChecklistAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_onboarding_checklists_applicant") {
		return onboardingerrors.ErrChecklistAlreadyExists
	}

	return err
}
