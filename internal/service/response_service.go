package service

import (
	"context"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

type ResponseService struct {
	Repo *repository.ResponseRepository
}

func NewResponseService(repo *repository.ResponseRepository) *ResponseService {
	return &ResponseService{Repo: repo}
}

func (s *ResponseService) GetResponsesBySession(ctx context.Context, sessionID string) ([]models.ItemResponse, error) {
	return s.Repo.FindBySession(ctx, sessionID)
}
