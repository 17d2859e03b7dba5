package interview

import (
	"context"
	"errors"
	"time"

	"go-recruit/internal/applicant"
	applicanterrors "go-recruit/internal/applicant/errors"
	interviewerrors "go-recruit/internal/interview/errors"
	"go-recruit/internal/mailer"
	"go-recruit/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interview_service.go -destination=mock/interview_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateInterviewRequest) (ScheduleResult, error)
	GetAll(ctx context.Context, q string) ([]InterviewResponse, error)
	GetByID(ctx context.Context, id string) (InterviewResponse, error)
	Update(ctx context.Context, id string, req UpdateInterviewRequest) (ScheduleResult, error)
	Complete(ctx context.Context, id string, req CompleteInterviewRequest) (InterviewResponse, error)
	MarkDone(ctx context.Context, id string) (InterviewResponse, error)
	Delete(ctx context.Context, id string) error
	ResendInvitation(ctx context.Context, id string) (string, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	applicants applicant.Repository
	mail       mailer.Mailer
	logger     *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	applicantRepo applicant.Repository,
	mail mailer.Mailer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("interview.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("interview.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		applicants: applicantRepo,
		mail:       mail,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, req CreateInterviewRequest) (ScheduleResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create interview requested",
		zap.String("request_id", rid),
		zap.String("applicant_id", req.ApplicantID),
	)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ScheduleResult{}, interviewerrors.ErrInvalidDate
	}

	a, err := s.applicants.FindByID(ctx, req.ApplicantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleResult{}, applicanterrors.ErrApplicantNotFound
		}
		return ScheduleResult{}, err
	}

	iv := &Interview{
		ID:          uuid.New(),
		ApplicantID: a.ID,
		Date:        date,
		Time:        req.Time,
		Type:        req.Type,
		Address:     req.Address,
		Notes:       req.Notes,
		Status:      StatusScheduled,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, iv); err != nil {
			return err
		}

		// Penjadwalan interview menggeser applicant pending -> interviewed.
		// Dulu dilakukan oleh frontend; sekarang ditegakkan di server.
		if a.Status == applicant.StatusPending {
			if err := s.applicants.WithTx(tx).UpdateStatus(ctx, a.ID.String(), applicant.StatusInterviewed); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("create interview failed", zap.String("request_id", rid), zap.Error(err))
		return ScheduleResult{}, mapRepositoryError(err)
	}

	iv.Applicant = &InterviewApplicant{
		ID:       a.ID,
		Name:     a.Name,
		Email:    a.Email,
		JobTitle: a.JobTitle,
	}

	// Email undangan bersifat best-effort: kegagalan hanya dicatat,
	// tidak pernah membatalkan penjadwalan.
	sendEmail := req.SendEmail == nil || *req.SendEmail
	emailSent := false
	if sendEmail && a.Email != "" {
		emailSent = s.sendInvitation(ctx, iv)
	}

	s.logger.Info("create interview success",
		zap.String("request_id", rid),
		zap.String("interview_id", iv.ID.String()),
		zap.Bool("email_sent", emailSent),
	)

	return ScheduleResult{
		Interview: mapToResponse(*iv, time.Now()),
		EmailSent: emailSent,
	}, nil
}

func (s *service) GetAll(ctx context.Context, q string) ([]InterviewResponse, error) {
	s.logger.Debug("get all interviews requested", zap.String("q", q))
	interviews, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all interviews failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	now := time.Now()
	res := make([]InterviewResponse, len(interviews))
	for i, iv := range interviews {
		res[i] = mapToResponse(iv, now)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (InterviewResponse, error) {
	s.logger.Debug("get interview by id requested", zap.String("interview_id", id))
	iv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get interview by id failed", zap.Error(err))
		return InterviewResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*iv, time.Now()), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateInterviewRequest) (ScheduleResult, error) {
	s.logger.Debug("update interview requested", zap.String("interview_id", id))

	var (
		updated     Interview
		dateChanged bool
		timeChanged bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		iv, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		if req.Date != nil {
			date, err := time.Parse("2006-01-02", *req.Date)
			if err != nil {
				return interviewerrors.ErrInvalidDate
			}
			dateChanged = !date.Equal(iv.Date)
			iv.Date = date
		}
		if req.Time != nil {
			timeChanged = *req.Time != iv.Time
			iv.Time = *req.Time
		}
		if req.Type != nil {
			iv.Type = *req.Type
		}
		if req.Address != nil {
			iv.Address = *req.Address
		}
		if req.Notes != nil {
			iv.Notes = *req.Notes
		}

		if err := qtx.Update(ctx, iv); err != nil {
			return mapRepositoryError(err)
		}

		updated = *iv
		return nil
	})
	if err != nil {
		s.logger.Error("update interview failed", zap.String("interview_id", id), zap.Error(err))
		return ScheduleResult{}, err
	}

	// Kirim ulang undangan hanya jika jadwal berubah dan diminta eksplisit.
	sendEmail := req.SendEmail != nil && *req.SendEmail
	emailSent := false
	if sendEmail && (dateChanged || timeChanged) && updated.Applicant != nil && updated.Applicant.Email != "" {
		emailSent = s.sendInvitation(ctx, &updated)
	}

	s.logger.Info("update interview success",
		zap.String("interview_id", id),
		zap.Bool("email_sent", emailSent),
	)

	return ScheduleResult{
		Interview: mapToResponse(updated, time.Now()),
		EmailSent: emailSent,
	}, nil
}

func (s *service) Complete(ctx context.Context, id string, req CompleteInterviewRequest) (InterviewResponse, error) {
	s.logger.Debug("complete interview requested",
		zap.String("interview_id", id),
		zap.String("result", req.Result),
	)

	var updated Interview
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		iv, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		if iv.Status == StatusCompleted && iv.Result != "" {
			return interviewerrors.ErrAlreadyCompleted
		}

		now := time.Now()
		iv.Status = StatusCompleted
		iv.Result = Result(req.Result)
		iv.CompletedDate = &now

		if err := qtx.Update(ctx, iv); err != nil {
			return mapRepositoryError(err)
		}

		// Hasil interview menggerakkan status applicant dalam transaksi yang sama.
		next := applicant.StatusApproved
		if iv.Result == ResultRejected {
			next = applicant.StatusRejected
		}
		if err := s.applicants.WithTx(tx).UpdateStatus(ctx, iv.ApplicantID.String(), next); err != nil {
			return err
		}

		updated = *iv
		return nil
	})
	if err != nil {
		s.logger.Error("complete interview failed", zap.String("interview_id", id), zap.Error(err))
		return InterviewResponse{}, err
	}

	s.logger.Info("complete interview success",
		zap.String("interview_id", id),
		zap.String("result", req.Result),
	)
	return mapToResponse(updated, time.Now()), nil
}

func (s *service) MarkDone(ctx context.Context, id string) (InterviewResponse, error) {
	s.logger.Debug("mark interview done requested", zap.String("interview_id", id))

	var updated Interview
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		iv, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		// Hasil dicatat belakangan; interview ini akan tampil sebagai pending.
		now := time.Now()
		iv.Status = StatusCompleted
		iv.CompletedDate = &now

		if err := qtx.Update(ctx, iv); err != nil {
			return mapRepositoryError(err)
		}

		updated = *iv
		return nil
	})
	if err != nil {
		s.logger.Error("mark interview done failed", zap.String("interview_id", id), zap.Error(err))
		return InterviewResponse{}, err
	}

	s.logger.Info("mark interview done success", zap.String("interview_id", id))
	return mapToResponse(updated, time.Now()), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete interview requested", zap.String("interview_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete interview failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete interview success", zap.String("interview_id", id))
	return nil
}

func (s *service) ResendInvitation(ctx context.Context, id string) (string, error) {
	s.logger.Debug("resend invitation requested", zap.String("interview_id", id))

	iv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", mapRepositoryError(err)
	}

	if iv.Applicant == nil || iv.Applicant.Email == "" {
		return "", interviewerrors.ErrApplicantEmailMissing
	}

	if !s.sendInvitation(ctx, iv) {
		return "", interviewerrors.ErrInvitationSendFailed
	}

	s.logger.Info("resend invitation success",
		zap.String("interview_id", id),
		zap.String("sent_to", iv.Applicant.Email),
	)
	return iv.Applicant.Email, nil
}

func (s *service) sendInvitation(ctx context.Context, iv *Interview) bool {
	if s.mail == nil || iv.Applicant == nil || iv.Applicant.Email == "" {
		return false
	}

	msg, err := mailer.BuildInvitation(iv.Applicant.Email, mailer.InvitationData{
		ApplicantName: iv.Applicant.Name,
		InterviewDate: iv.Date.Format("2006-01-02"),
		InterviewTime: iv.Time,
		InterviewType: iv.Type,
		JobTitle:      iv.Applicant.JobTitle,
		Address:       iv.Address,
	})
	if err != nil {
		s.logger.Warn("build invitation failed",
			zap.String("interview_id", iv.ID.String()),
			zap.Error(err),
		)
		return false
	}

	if err := s.mail.Send(ctx, msg); err != nil {
		s.logger.Warn("send invitation failed",
			zap.String("interview_id", iv.ID.String()),
			zap.String("to", iv.Applicant.Email),
			zap.Error(err),
		)
		return false
	}
	return true
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return interviewerrors.ErrInterviewNotFound
	}
	return err
}

func mapToResponse(iv Interview, now time.Time) InterviewResponse {
	resp := InterviewResponse{
		ID:            iv.ID.String(),
		ApplicantID:   iv.ApplicantID.String(),
		Date:          iv.Date.Format("2006-01-02"),
		Time:          iv.Time,
		Type:          iv.Type,
		Address:       iv.Address,
		Notes:         iv.Notes,
		Status:        string(iv.Status),
		DisplayStatus: iv.DisplayStatus(now),
		Result:        string(iv.Result),
		CreatedAt:     iv.CreatedAt.Format(time.RFC3339),
	}
	if iv.CompletedDate != nil {
		resp.CompletedDate = iv.CompletedDate.Format("2006-01-02")
	}
	if iv.Applicant != nil {
		resp.ApplicantName = iv.Applicant.Name
		resp.ApplicantEmail = iv.Applicant.Email
		resp.JobTitle = iv.Applicant.JobTitle
	}
	return resp
}
