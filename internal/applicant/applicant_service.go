package applicant

import (
	"context"
	"fmt"
	"time"

	applicanterrors "go-recruit/internal/applicant/errors"
	"go-recruit/internal/shared/contextutil"
	"go-recruit/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=applicant_service.go -destination=mock/applicant_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterApplicantRequest) (ApplicantResponse, error)
	GetAll(ctx context.Context) ([]ApplicantResponse, error)
	GetByID(ctx context.Context, id string) (ApplicantResponse, error)
	Update(ctx context.Context, id string, req UpdateApplicantRequest) (ApplicantResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("applicant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("applicant.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		logger:  l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterApplicantRequest) (ApplicantResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register applicant requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return ApplicantResponse{}, applicanterrors.ErrInvalidDate
	}
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return ApplicantResponse{}, applicanterrors.ErrInvalidDate
	}
	probationEnd, err := parseDate(req.ProbationEnd)
	if err != nil {
		return ApplicantResponse{}, applicanterrors.ErrInvalidDate
	}

	if req.EmployeeCode == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_code")
		if err != nil {
			s.logger.Error("register applicant generate code failed", zap.Error(err))
			return ApplicantResponse{}, err
		}
		req.EmployeeCode = fmt.Sprintf("EMP-%06d", nextVal)
	}

	a := &Applicant{
		ID:                      uuid.New(),
		EmployeeCode:            req.EmployeeCode,
		FirstName:               req.FirstName,
		LastName:                req.LastName,
		Name:                    req.Name,
		Email:                   req.Email,
		Phone:                   req.Phone,
		Status:                  ParseStatus(req.Status),
		Job:                     req.Job,
		JobTitle:                req.JobTitle,
		Department:              req.Department,
		DateOfBirth:             dob,
		HireDate:                hireDate,
		ProbationEnd:            probationEnd,
		Salary:                  req.Salary,
		EmploymentType:          req.EmploymentType,
		EmployeeType:            req.EmployeeType,
		Address:                 req.Address,
		Gender:                  req.Gender,
		MaritalStatus:           req.MaritalStatus,
		Nationality:             req.Nationality,
		YearsOfExperience:       req.YearsOfExperience,
		EmergencyContactName:    req.EmergencyContactName,
		EmergencyContactPhone:   req.EmergencyContactPhone,
		EmergencyContactAddress: req.EmergencyContactAddress,
		TaxID:                   req.TaxID,
		SSSNumber:               req.SSSNumber,
		PhilhealthNumber:        req.PhilhealthNumber,
		PagibigNumber:           req.PagibigNumber,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("register applicant persist failed", zap.String("request_id", rid), zap.Error(err))
		return ApplicantResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("register applicant success",
		zap.String("request_id", rid),
		zap.String("applicant_id", a.ID.String()),
		zap.String("employee_code", a.EmployeeCode),
	)

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context) ([]ApplicantResponse, error) {
	s.logger.Debug("get all applicants requested")
	applicants, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all applicants failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(applicants), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ApplicantResponse, error) {
	s.logger.Debug("get applicant by id requested", zap.String("applicant_id", id))
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get applicant by id failed", zap.Error(err))
		return ApplicantResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateApplicantRequest) (ApplicantResponse, error) {
	s.logger.Debug("update applicant requested", zap.String("applicant_id", id))

	var updated Applicant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		a, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		if err := applyUpdate(a, req); err != nil {
			return err
		}

		if err := qtx.Update(ctx, a); err != nil {
			return mapRepositoryError(err)
		}

		updated = *a
		return nil
	})
	if err != nil {
		s.logger.Error("update applicant failed", zap.String("applicant_id", id), zap.Error(err))
		return ApplicantResponse{}, err
	}

	s.logger.Info("update applicant success", zap.String("applicant_id", id))
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete applicant requested", zap.String("applicant_id", id))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.DeleteCascade(ctx, id); err != nil {
			return mapRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("delete applicant failed", zap.String("applicant_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete applicant success", zap.String("applicant_id", id))
	return nil
}

func applyUpdate(a *Applicant, req UpdateApplicantRequest) error {
	if req.EmployeeCode != nil {
		a.EmployeeCode = *req.EmployeeCode
	}
	if req.FirstName != nil {
		a.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		a.LastName = *req.LastName
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Email != nil {
		a.Email = *req.Email
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}
	if req.Status != nil {
		a.Status = ParseStatus(*req.Status)
	}
	if req.Job != nil {
		a.Job = *req.Job
	}
	if req.JobTitle != nil {
		a.JobTitle = *req.JobTitle
	}
	if req.Department != nil {
		a.Department = *req.Department
	}
	if req.DateOfBirth != nil {
		d, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return applicanterrors.ErrInvalidDate
		}
		a.DateOfBirth = d
	}
	if req.HireDate != nil {
		d, err := parseDate(*req.HireDate)
		if err != nil {
			return applicanterrors.ErrInvalidDate
		}
		a.HireDate = d
	}
	if req.ProbationEnd != nil {
		d, err := parseDate(*req.ProbationEnd)
		if err != nil {
			return applicanterrors.ErrInvalidDate
		}
		a.ProbationEnd = d
	}
	if req.Salary != nil {
		a.Salary = *req.Salary
	}
	if req.EmploymentType != nil {
		a.EmploymentType = *req.EmploymentType
	}
	if req.EmployeeType != nil {
		a.EmployeeType = *req.EmployeeType
	}
	if req.Address != nil {
		a.Address = *req.Address
	}
	if req.Gender != nil {
		a.Gender = *req.Gender
	}
	if req.MaritalStatus != nil {
		a.MaritalStatus = *req.MaritalStatus
	}
	if req.Nationality != nil {
		a.Nationality = *req.Nationality
	}
	if req.YearsOfExperience != nil {
		a.YearsOfExperience = req.YearsOfExperience
	}
	if req.EmergencyContactName != nil {
		a.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		a.EmergencyContactPhone = *req.EmergencyContactPhone
	}
	if req.EmergencyContactAddress != nil {
		a.EmergencyContactAddress = *req.EmergencyContactAddress
	}
	if req.TaxID != nil {
		a.TaxID = *req.TaxID
	}
	if req.SSSNumber != nil {
		a.SSSNumber = *req.SSSNumber
	}
	if req.PhilhealthNumber != nil {
		a.PhilhealthNumber = *req.PhilhealthNumber
	}
	if req.PagibigNumber != nil {
		a.PagibigNumber = *req.PagibigNumber
	}
	return nil
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func formatDate(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02")
}

func mapToResponse(a Applicant) ApplicantResponse {
	return ApplicantResponse{
		ID:                      a.ID.String(),
		EmployeeCode:            a.EmployeeCode,
		FirstName:               a.FirstName,
		LastName:                a.LastName,
		Name:                    a.Name,
		Email:                   a.Email,
		Phone:                   a.Phone,
		Status:                  a.Status.String(),
		Job:                     a.Job,
		JobTitle:                a.JobTitle,
		Department:              a.Department,
		DateOfBirth:             formatDate(a.DateOfBirth),
		HireDate:                formatDate(a.HireDate),
		ProbationEnd:            formatDate(a.ProbationEnd),
		Salary:                  a.Salary,
		EmploymentType:          a.EmploymentType,
		EmployeeType:            a.EmployeeType,
		Address:                 a.Address,
		Gender:                  a.Gender,
		MaritalStatus:           a.MaritalStatus,
		Nationality:             a.Nationality,
		YearsOfExperience:       a.YearsOfExperience,
		EmergencyContactName:    a.EmergencyContactName,
		EmergencyContactPhone:   a.EmergencyContactPhone,
		EmergencyContactAddress: a.EmergencyContactAddress,
		TaxID:                   a.TaxID,
		SSSNumber:               a.SSSNumber,
		PhilhealthNumber:        a.PhilhealthNumber,
		PagibigNumber:           a.PagibigNumber,
		CreatedAt:               a.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(applicants []Applicant) []ApplicantResponse {
	res := make([]ApplicantResponse, len(applicants))
	for i, a := range applicants {
		res[i] = mapToResponse(a)
	}
	return res
}
