package service

import (
	"context"

	"assessment-service/internal/irt"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

type ExamineeService struct {
	Repo *repository.ExamineeRepository
}

func NewExamineeService(repo *repository.ExamineeRepository) *ExamineeService {
	return &ExamineeService{Repo: repo}
}

// ExamineeProfile is an examinee with the classification derived from the
// carried-over ability estimate.
type ExamineeProfile struct {
	models.Examinee
	Classification string `json:"classification"`
}

func (s *ExamineeService) GetExaminee(ctx context.Context, id string) (*ExamineeProfile, error) {
	examinee, err := s.Repo.FindByID(ctx, id)
	if err != nil || examinee == nil {
		return nil, err
	}
	return &ExamineeProfile{
		Examinee:       *examinee,
		Classification: irt.Classify(examinee.CurrentAbility),
	}, nil
}
