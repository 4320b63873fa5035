// Package bank holds the calibrated item pool for an assessment run.
// The bank is built once from the item store and is read-only afterwards,
// so it can be shared across sessions without locking.
package bank

import (
	"sort"

	"assessment-service/internal/models"
)

// Bank indexes calibrated items by id and by category.
type Bank struct {
	items      map[string]*models.Item
	byCategory map[string][]*models.Item
	ordered    []*models.Item
}

// New builds a bank from authored items. Items failing calibration
// validation (non-positive discrimination, malformed guessing, unknown
// category) are excluded from the pool and returned as rejects; a bad
// item is fatal for that item only, never for the bank.
func New(items []models.Item) (*Bank, []error) {
	b := &Bank{
		items:      make(map[string]*models.Item, len(items)),
		byCategory: make(map[string][]*models.Item),
	}
	var rejected []error

	for i := range items {
		it := items[i]
		if err := it.Validate(); err != nil {
			rejected = append(rejected, err)
			continue
		}
		if _, exists := b.items[it.ID]; exists {
			continue
		}
		b.items[it.ID] = &it
		b.byCategory[it.Category] = append(b.byCategory[it.Category], &it)
		b.ordered = append(b.ordered, &it)
	}

	// Stable id order makes selection tie-breaks reproducible.
	sort.Slice(b.ordered, func(i, j int) bool { return b.ordered[i].ID < b.ordered[j].ID })
	for _, cat := range b.byCategory {
		sort.Slice(cat, func(i, j int) bool { return cat[i].ID < cat[j].ID })
	}
	return b, rejected
}

// Get returns the item with the given id.
func (b *Bank) Get(id string) (*models.Item, bool) {
	it, ok := b.items[id]
	return it, ok
}

// ByCategory returns all items of a category, in id order.
func (b *Bank) ByCategory(category string) []*models.Item {
	return b.byCategory[category]
}

// Unadministered returns the items not in excludeIDs, restricted to a
// category when one is given, in id order.
func (b *Bank) Unadministered(excludeIDs []string, category string) []*models.Item {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	pool := b.ordered
	if category != "" {
		pool = b.byCategory[category]
	}

	eligible := make([]*models.Item, 0, len(pool))
	for _, it := range pool {
		if !excluded[it.ID] {
			eligible = append(eligible, it)
		}
	}
	return eligible
}

// Size returns the number of calibrated items in the pool.
func (b *Bank) Size() int {
	return len(b.ordered)
}

// Categories returns the categories present in the pool, in sorted order.
func (b *Bank) Categories() []string {
	cats := make([]string, 0, len(b.byCategory))
	for cat := range b.byCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
