package service

import (
	"context"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

type ResultService struct {
	Repo *repository.ResultRepository
}

func NewResultService(repo *repository.ResultRepository) *ResultService {
	return &ResultService{Repo: repo}
}

func (s *ResultService) GetResultBySession(ctx context.Context, sessionID string) (*models.AssessmentResult, error) {
	return s.Repo.FindBySession(ctx, sessionID)
}

func (s *ResultService) GetResultsByExaminee(ctx context.Context, examineeID string) ([]models.AssessmentResult, error) {
	return s.Repo.FindByExaminee(ctx, examineeID)
}
