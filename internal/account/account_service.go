package account

import (
	"context"
	"errors"
	"time"

	accounterrors "go-recruit/internal/account/errors"
	"go-recruit/internal/applicant"
	applicanterrors "go-recruit/internal/applicant/errors"
	"go-recruit/internal/onboarding"
	"go-recruit/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=account_service.go -destination=mock/account_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	GetByApplicant(ctx context.Context, applicantID string) (AccountResponse, error)
	Check(ctx context.Context, applicantID string) (CheckAccountResponse, error)
	Update(ctx context.Context, id string, req UpdateAccountRequest) (AccountResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db         *gorm.DB
	repo       Repository
	applicants applicant.Repository
	checklists onboarding.Repository
	logger     *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	applicantRepo applicant.Repository,
	checklistRepo onboarding.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("account.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		applicants: applicantRepo,
		checklists: checklistRepo,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create account requested",
		zap.String("request_id", rid),
		zap.String("applicant_id", req.ApplicantID),
	)

	a, err := s.applicants.FindByID(ctx, req.ApplicantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, applicanterrors.ErrApplicantNotFound
		}
		return AccountResponse{}, err
	}

	exists, err := s.repo.ExistsByApplicantID(ctx, req.ApplicantID)
	if err != nil {
		return AccountResponse{}, err
	}
	if exists {
		return AccountResponse{}, accounterrors.ErrAccountAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AccountResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}

	ua := &UserAccount{
		ID:           uuid.New(),
		ApplicantID:  a.ID,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	var allCompleted bool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, ua); err != nil {
			return err
		}

		// Pembuatan akun menyelesaikan item documents_admin pada checklist,
		// dalam transaksi yang sama supaya progres tidak pernah setengah jadi.
		clRepo := s.checklists.WithTx(tx)
		cl, err := clRepo.FindByApplicantID(ctx, a.ID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		now := time.Now()
		cl.SetItemAuto(onboarding.ItemDocumentsAdmin, onboarding.AccountCreatedActor, now)
		allCompleted = cl.RunCompletionCheck(now)

		if err := clRepo.Update(ctx, cl); err != nil {
			return err
		}

		if allCompleted {
			if err := s.applicants.WithTx(tx).UpdateStatus(ctx, a.ID.String(), applicant.StatusHired); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("create account failed", zap.String("request_id", rid), zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	ua.Applicant = &AccountApplicant{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		EmployeeCode: a.EmployeeCode,
		JobTitle:     a.JobTitle,
		Status:       string(a.Status),
	}

	s.logger.Info("create account success",
		zap.String("request_id", rid),
		zap.String("account_id", ua.ID.String()),
		zap.String("applicant_id", a.ID.String()),
		zap.Bool("all_completed", allCompleted),
	)
	return mapToResponse(*ua), nil
}

func (s *service) GetByApplicant(ctx context.Context, applicantID string) (AccountResponse, error) {
	s.logger.Debug("get account by applicant requested", zap.String("applicant_id", applicantID))

	ua, err := s.repo.FindByApplicantID(ctx, applicantID)
	if err != nil {
		s.logger.Error("get account by applicant failed", zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*ua), nil
}

func (s *service) Check(ctx context.Context, applicantID string) (CheckAccountResponse, error) {
	s.logger.Debug("check account requested", zap.String("applicant_id", applicantID))

	ua, err := s.repo.FindByApplicantID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CheckAccountResponse{HasAccount: false}, nil
		}
		s.logger.Error("check account failed", zap.Error(err))
		return CheckAccountResponse{}, mapRepositoryError(err)
	}

	resp := mapToResponse(*ua)
	return CheckAccountResponse{HasAccount: true, Account: &resp}, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAccountRequest) (AccountResponse, error) {
	s.logger.Debug("update account requested", zap.String("account_id", id))

	ua, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}

	if req.Email != nil {
		ua.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return AccountResponse{}, err
		}
		ua.PasswordHash = string(hash)
	}
	if req.Role != nil {
		ua.Role = *req.Role
	}

	if err := s.repo.Update(ctx, ua); err != nil {
		s.logger.Error("update account failed", zap.String("account_id", id), zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update account success", zap.String("account_id", id))
	return mapToResponse(*ua), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete account requested",
		zap.String("request_id", rid),
		zap.String("account_id", id),
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		ua, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		if err := qtx.Delete(ctx, ua.ID.String()); err != nil {
			return mapRepositoryError(err)
		}

		// Rollback: tanpa akun, item documents_admin tidak lagi terpenuhi
		// dan checklist kembali belum complete.
		clRepo := s.checklists.WithTx(tx)
		cl, err := clRepo.FindByApplicantID(ctx, ua.ApplicantID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		cl.RollbackDocumentsAdmin()
		return clRepo.Update(ctx, cl)
	})
	if err != nil {
		s.logger.Error("delete account failed",
			zap.String("request_id", rid),
			zap.String("account_id", id),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("delete account success",
		zap.String("request_id", rid),
		zap.String("account_id", id),
	)
	return nil
}

func mapToResponse(ua UserAccount) AccountResponse {
	resp := AccountResponse{
		ID:          ua.ID.String(),
		ApplicantID: ua.ApplicantID.String(),
		Email:       ua.Email,
		Role:        ua.Role,
		CreatedAt:   ua.CreatedAt.Format(time.RFC3339),
	}
	if ua.Applicant != nil {
		resp.ApplicantName = ua.Applicant.Name
		resp.EmployeeCode = ua.Applicant.EmployeeCode
		resp.JobTitle = ua.Applicant.JobTitle
		resp.ApplicantStatus = ua.Applicant.Status
	}
	return resp
}
