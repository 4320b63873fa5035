package service

import (
	"context"
	"fmt"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"
	"assessment-service/internal/selection"
)

// ItemService manages the authored item pool. Calibration parameters are
// validated up front so invalid items never reach the store, and the
// cached bank is invalidated whenever the pool changes.
type ItemService struct {
	Repo        *repository.ItemRepository
	poolManager *selection.PoolManager
}

func NewItemService(repo *repository.ItemRepository, poolManager *selection.PoolManager) *ItemService {
	return &ItemService{Repo: repo, poolManager: poolManager}
}

func (s *ItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.Repo.FindAll(ctx)
}

func (s *ItemService) ListItemsByCategory(ctx context.Context, category string) ([]models.Item, error) {
	return s.Repo.FindByCategory(ctx, category)
}

func (s *ItemService) GetItem(ctx context.Context, id string) (*models.Item, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ItemService) CreateItem(ctx context.Context, item *models.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return err
	}
	s.poolManager.Invalidate()
	return nil
}

// BulkImport loads authored items, skipping any that fail calibration
// validation. Returns the number imported and the per-item rejections.
func (s *ItemService) BulkImport(ctx context.Context, items []models.Item) (int, []string, error) {
	valid := make([]models.Item, 0, len(items))
	var rejected []string
	for i := range items {
		if err := items[i].Validate(); err != nil {
			rejected = append(rejected, err.Error())
			continue
		}
		valid = append(valid, items[i])
	}
	if len(valid) == 0 {
		return 0, rejected, fmt.Errorf("no valid items to import")
	}
	inserted, err := s.Repo.CreateMany(ctx, valid)
	if err != nil {
		return 0, rejected, err
	}
	s.poolManager.Invalidate()
	return inserted, rejected, nil
}
