package selection

import (
	"context"
	"fmt"
	"log"
	"sync"

	"assessment-service/internal/bank"
	"assessment-service/internal/repository"
)

// PoolManager loads the calibrated item pool from the item store and
// caches it as an in-memory bank. Items live in Mongo but selection needs
// O(1) lookup and full pool scans per request, so the bank is rebuilt
// only when the pool changes.
type PoolManager struct {
	itemRepo *repository.ItemRepository

	mu       sync.RWMutex
	cached   *bank.Bank
	rejected int
}

// NewPoolManager creates a pool manager over the item repository.
func NewPoolManager(itemRepo *repository.ItemRepository) *PoolManager {
	return &PoolManager{itemRepo: itemRepo}
}

// Bank returns the cached item bank, loading it from the store on first
// use.
func (pm *PoolManager) Bank(ctx context.Context) (*bank.Bank, error) {
	pm.mu.RLock()
	cached := pm.cached
	pm.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}
	return pm.Reload(ctx)
}

// Reload rebuilds the bank from the item store. Called after item admin
// operations change the pool.
func (pm *PoolManager) Reload(ctx context.Context) (*bank.Bank, error) {
	items, err := pm.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load item pool: %w", err)
	}

	b, rejects := bank.New(items)
	for _, rejectErr := range rejects {
		log.Printf("item excluded from pool: %v", rejectErr)
	}

	pm.mu.Lock()
	pm.cached = b
	pm.rejected = len(rejects)
	pm.mu.Unlock()
	return b, nil
}

// Invalidate drops the cached bank so the next request reloads it.
func (pm *PoolManager) Invalidate() {
	pm.mu.Lock()
	pm.cached = nil
	pm.mu.Unlock()
}

// Info summarizes the current pool for diagnostics.
func (pm *PoolManager) Info(ctx context.Context) (*PoolInfo, error) {
	b, err := pm.Bank(ctx)
	if err != nil {
		return nil, err
	}

	pm.mu.RLock()
	rejected := pm.rejected
	pm.mu.RUnlock()

	info := &PoolInfo{
		TotalItems:     b.Size(),
		RejectedItems:  rejected,
		ByCategory:     make(map[string]int),
		DifficultyHist: make(map[string]int),
	}
	for _, cat := range b.Categories() {
		items := b.ByCategory(cat)
		info.ByCategory[cat] = len(items)
		for _, it := range items {
			info.DifficultyHist[difficultyBucket(it.Difficulty)]++
		}
	}
	return info, nil
}

func difficultyBucket(b float64) string {
	switch {
	case b < -1.0:
		return "easy"
	case b < 1.0:
		return "medium"
	default:
		return "hard"
	}
}
