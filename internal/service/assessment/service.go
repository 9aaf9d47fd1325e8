package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/ecnhealth/clinical-api/internal/model"
	"github.com/ecnhealth/clinical-api/internal/repository"
	apperrors "github.com/ecnhealth/clinical-api/pkg/errors"
)

const defaultListLimit = 100

type Service interface {
	CreateAssessment(ctx context.Context, req *model.CreateAssessmentRequest) (*model.Assessment, error)
	GetAssessment(ctx context.Context, id int64) (*model.Assessment, error)
	ListAssessments(ctx context.Context, skip, limit int) ([]*model.Assessment, error)
	ListPatientAssessments(ctx context.Context, patientID int64) ([]*model.Assessment, error)
	UpdateAssessment(ctx context.Context, id int64, req *model.UpdateAssessmentRequest) (*model.Assessment, error)
	DeleteAssessment(ctx context.Context, id int64) error
}

type service struct {
	repo     repository.AssessmentRepository
	patients repository.PatientRepository
}

func NewService(repo repository.AssessmentRepository, patients repository.PatientRepository) Service {
	return &service{repo: repo, patients: patients}
}

func (s *service) CreateAssessment(ctx context.Context, req *model.CreateAssessmentRequest) (*model.Assessment, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	// The referenced patient must exist at creation time. This check is not
	// transactional against a concurrent delete.
	if _, err := s.patients.Get(ctx, req.PatientID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation(fmt.Sprintf("patient %d does not exist", req.PatientID), err)
		}
		return nil, err
	}

	now := time.Now().UTC()
	assessment := &model.Assessment{
		PatientID:      req.PatientID,
		AssessmentDate: req.AssessmentDate,
		AssessmentType: req.AssessmentType,
		FmriData:       req.FmriData,
		NBackTaskScore: req.NBackTaskScore,
		WpaiScore:      req.WpaiScore,
		CrpLevel:       req.CrpLevel,
		Il6Level:       req.Il6Level,
		TnfAlphaLevel:  req.TnfAlphaLevel,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

func (s *service) GetAssessment(ctx context.Context, id int64) (*model.Assessment, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) ListAssessments(ctx context.Context, skip, limit int) ([]*model.Assessment, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	assessments, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	if assessments == nil {
		assessments = []*model.Assessment{}
	}
	return assessments, nil
}

func (s *service) ListPatientAssessments(ctx context.Context, patientID int64) ([]*model.Assessment, error) {
	assessments, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	// An unknown patient yields an empty list, not an error.
	if assessments == nil {
		assessments = []*model.Assessment{}
	}
	return assessments, nil
}

func (s *service) UpdateAssessment(ctx context.Context, id int64, req *model.UpdateAssessmentRequest) (*model.Assessment, error) {
	assessment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !applyPatch(assessment, req) {
		return assessment, nil
	}

	assessment.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

func (s *service) DeleteAssessment(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateCreate(req *model.CreateAssessmentRequest) error {
	switch {
	case req.PatientID == 0:
		return apperrors.NewValidation("patient_id is required", nil)
	case req.AssessmentDate.IsZero():
		return apperrors.NewValidation("assessment_date is required", nil)
	case req.AssessmentType == "":
		return apperrors.NewValidation("assessment_type is required", nil)
	}
	return nil
}

func applyPatch(assessment *model.Assessment, req *model.UpdateAssessmentRequest) bool {
	changed := false
	if req.AssessmentDate != nil {
		assessment.AssessmentDate = *req.AssessmentDate
		changed = true
	}
	if req.AssessmentType != nil {
		assessment.AssessmentType = *req.AssessmentType
		changed = true
	}
	if req.FmriData != nil {
		assessment.FmriData = req.FmriData
		changed = true
	}
	if req.NBackTaskScore != nil {
		assessment.NBackTaskScore = req.NBackTaskScore
		changed = true
	}
	if req.WpaiScore != nil {
		assessment.WpaiScore = req.WpaiScore
		changed = true
	}
	if req.CrpLevel != nil {
		assessment.CrpLevel = req.CrpLevel
		changed = true
	}
	if req.Il6Level != nil {
		assessment.Il6Level = req.Il6Level
		changed = true
	}
	if req.TnfAlphaLevel != nil {
		assessment.TnfAlphaLevel = req.TnfAlphaLevel
		changed = true
	}
	if req.Notes != nil {
		assessment.Notes = req.Notes
		changed = true
	}
	return changed
}
