package onboarding

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-recruit/internal/applicant"
	applicanterrors "go-recruit/internal/applicant/errors"
	onboardingerrors "go-recruit/internal/onboarding/errors"
	"go-recruit/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=checklist_service.go -destination=mock/checklist_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateChecklistRequest) (ChecklistResponse, error)
	GetAll(ctx context.Context) ([]ChecklistResponse, error)
	GetByApplicant(ctx context.Context, applicantID string) (ChecklistResponse, error)
	UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (ChecklistResponse, error)
	AutoCheck(ctx context.Context, req AutoCheckRequest) (ChecklistResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db         *gorm.DB
	repo       Repository
	applicants applicant.Repository
	logger     *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	applicantRepo applicant.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		applicants: applicantRepo,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, req CreateChecklistRequest) (ChecklistResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create checklist requested",
		zap.String("request_id", rid),
		zap.String("applicant_id", req.ApplicantID),
	)

	startDate := time.Now()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return ChecklistResponse{}, onboardingerrors.ErrInvalidStartDate
		}
		startDate = parsed
	}

	a, err := s.applicants.FindByID(ctx, req.ApplicantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ChecklistResponse{}, applicanterrors.ErrApplicantNotFound
		}
		return ChecklistResponse{}, err
	}

	cl := &Checklist{
		ID:          uuid.New(),
		ApplicantID: a.ID,
		StartDate:   startDate,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, cl); err != nil {
			return err
		}

		// Membuka checklist berarti applicant masuk fase onboarding.
		if a.Status != applicant.StatusOnboarding && a.Status != applicant.StatusHired {
			if err := s.applicants.WithTx(tx).UpdateStatus(ctx, a.ID.String(), applicant.StatusOnboarding); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("create checklist failed", zap.String("request_id", rid), zap.Error(err))
		return ChecklistResponse{}, mapRepositoryError(err)
	}

	cl.Applicant = &ChecklistApplicant{
		ID:       a.ID,
		Name:     a.Name,
		Email:    a.Email,
		Phone:    a.Phone,
		JobTitle: a.JobTitle,
	}

	s.logger.Info("create checklist success",
		zap.String("request_id", rid),
		zap.String("checklist_id", cl.ID.String()),
		zap.String("applicant_id", a.ID.String()),
	)
	return mapToResponse(*cl), nil
}

func (s *service) GetAll(ctx context.Context) ([]ChecklistResponse, error) {
	s.logger.Debug("get all checklists requested")

	checklists, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all checklists failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ChecklistResponse, len(checklists))
	for i, cl := range checklists {
		res[i] = mapToResponse(cl)
	}
	return res, nil
}

func (s *service) GetByApplicant(ctx context.Context, applicantID string) (ChecklistResponse, error) {
	s.logger.Debug("get checklist by applicant requested", zap.String("applicant_id", applicantID))

	cl, err := s.repo.FindByApplicantID(ctx, applicantID)
	if err != nil {
		s.logger.Error("get checklist by applicant failed", zap.Error(err))
		return ChecklistResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*cl), nil
}

func (s *service) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (ChecklistResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update checklist item requested",
		zap.String("request_id", rid),
		zap.String("checklist_id", id),
		zap.String("item_key", req.ItemKey),
	)

	var (
		updated   Checklist
		completed bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		cl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		// Checklist yang sudah complete tidak boleh dimundurkan: transisi
		// all_completed bersifat sekali jalan dan sudah men-cascade hired.
		if cl.AllCompleted && !*req.Completed {
			return onboardingerrors.ErrChecklistLocked
		}

		now := time.Now()
		if !cl.SetItem(req.ItemKey, *req.Completed, req.CompletedBy, now) {
			return onboardingerrors.ErrUnknownItem
		}
		completed = cl.RunCompletionCheck(now)

		if err := qtx.Update(ctx, cl); err != nil {
			return mapRepositoryError(err)
		}

		if completed {
			if err := s.applicants.WithTx(tx).UpdateStatus(ctx, cl.ApplicantID.String(), applicant.StatusHired); err != nil {
				return err
			}
		}

		updated = *cl
		return nil
	})
	if err != nil {
		s.logger.Error("update checklist item failed",
			zap.String("request_id", rid),
			zap.String("checklist_id", id),
			zap.Error(err),
		)
		return ChecklistResponse{}, err
	}

	s.logger.Info("update checklist item success",
		zap.String("request_id", rid),
		zap.String("checklist_id", id),
		zap.String("item_key", req.ItemKey),
		zap.Bool("all_completed", completed),
	)
	return mapToResponse(updated), nil
}

func (s *service) AutoCheck(ctx context.Context, req AutoCheckRequest) (ChecklistResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("auto check requested",
		zap.String("request_id", rid),
		zap.String("applicant_id", req.ApplicantID),
		zap.String("department", req.Department),
	)

	itemKey, ok := DepartmentItemKey(req.Department)
	if !ok {
		return ChecklistResponse{}, onboardingerrors.ErrUnknownItem
	}

	by := req.CompletedBy
	if by == "" {
		by = strings.ToUpper(req.Department) + " System"
	}

	var (
		updated   Checklist
		completed bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		cl, err := qtx.FindByApplicantID(ctx, req.ApplicantID)
		if err != nil {
			return mapRepositoryError(err)
		}

		now := time.Now()
		cl.SetItemAuto(itemKey, by, now)
		completed = cl.RunCompletionCheck(now)

		if err := qtx.Update(ctx, cl); err != nil {
			return mapRepositoryError(err)
		}

		if completed {
			if err := s.applicants.WithTx(tx).UpdateStatus(ctx, cl.ApplicantID.String(), applicant.StatusHired); err != nil {
				return err
			}
		}

		updated = *cl
		return nil
	})
	if err != nil {
		s.logger.Error("auto check failed",
			zap.String("request_id", rid),
			zap.String("applicant_id", req.ApplicantID),
			zap.Error(err),
		)
		return ChecklistResponse{}, err
	}

	s.logger.Info("auto check success",
		zap.String("request_id", rid),
		zap.String("applicant_id", req.ApplicantID),
		zap.String("item_key", itemKey),
		zap.Bool("all_completed", completed),
	)
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete checklist requested", zap.String("checklist_id", id))

	// Menghapus checklist tidak menyentuh status applicant: riwayat
	// onboarding/hired yang sudah terjadi tetap berlaku.
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete checklist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete checklist success", zap.String("checklist_id", id))
	return nil
}

func mapToResponse(cl Checklist) ChecklistResponse {
	resp := ChecklistResponse{
		ID:                   cl.ID.String(),
		ApplicantID:          cl.ApplicantID.String(),
		StartDate:            cl.StartDate.Format("2006-01-02"),
		ChecklistItems:       cl.Items(),
		CompletionPercentage: cl.CompletionPercentage(),
		AllCompleted:         cl.AllCompleted,
		CreatedAt:            cl.CreatedAt.Format(time.RFC3339),
	}
	if cl.CompletedAt != nil {
		resp.CompletedAt = cl.CompletedAt.Format(time.RFC3339)
	}
	if cl.Applicant != nil {
		resp.ApplicantName = cl.Applicant.Name
		resp.ApplicantEmail = cl.Applicant.Email
		resp.ApplicantPhone = cl.Applicant.Phone
		resp.JobTitle = cl.Applicant.JobTitle
	}
	return resp
}
