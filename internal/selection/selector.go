package selection

import (
	"errors"

	"assessment-service/internal/bank"
	"assessment-service/internal/irt"
	"assessment-service/internal/models"
)

// ErrExhaustedPool is returned when no eligible items remain. The session
// controller treats it as an implicit stopping condition, not a crash.
var ErrExhaustedPool = errors.New("no eligible items remain in the pool")

// MaxInfoSelector picks the next item by maximum Fisher information at
// the current ability estimate: the standard adaptive-testing heuristic
// that minimizes the number of items needed to reach target precision.
type MaxInfoSelector struct{}

// NewMaxInfoSelector creates a new selector.
func NewMaxInfoSelector() *MaxInfoSelector {
	return &MaxInfoSelector{}
}

// SelectNext returns the unadministered item with the highest information
// at theta, optionally restricted to one category. Ties break on lowest
// item id (the candidate pool is scanned in id order), which keeps
// selection deterministic and the next-item query safely repeatable.
func (s *MaxInfoSelector) SelectNext(
	b *bank.Bank,
	theta float64,
	administeredIDs []string,
	category string,
) (*models.Item, error) {
	candidates := b.Unadministered(administeredIDs, category)
	if len(candidates) == 0 {
		return nil, ErrExhaustedPool
	}

	var best *models.Item
	maxInfo := -1.0
	for _, it := range candidates {
		if info := irt.Information(theta, it); info > maxInfo {
			maxInfo = info
			best = it
		}
	}
	return best, nil
}

// RankByInformation returns the candidate pool with each item's
// information at theta, in descending information order. Used by the pool
// diagnostics endpoint.
func (s *MaxInfoSelector) RankByInformation(
	b *bank.Bank,
	theta float64,
	administeredIDs []string,
	category string,
	limit int,
) []RankedItem {
	candidates := b.Unadministered(administeredIDs, category)
	ranked := make([]RankedItem, 0, len(candidates))
	for _, it := range candidates {
		ranked = append(ranked, RankedItem{Item: it, Information: irt.Information(theta, it)})
	}
	sortRanked(ranked)
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

func sortRanked(ranked []RankedItem) {
	// Insertion sort; pools are small and already in id order, which
	// preserves the lowest-id-first tie-break.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Information > ranked[j-1].Information; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
}
