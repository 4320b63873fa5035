package selection

import "assessment-service/internal/models"

// RankedItem pairs a candidate item with its Fisher information at the
// ability estimate used for ranking.
type RankedItem struct {
	Item        *models.Item `json:"item"`
	Information float64      `json:"information"`
}

// PoolInfo describes the calibrated pool for diagnostics and preload
// validation.
type PoolInfo struct {
	TotalItems     int            `json:"total_items"`
	RejectedItems  int            `json:"rejected_items"`
	ByCategory     map[string]int `json:"by_category"`
	DifficultyHist map[string]int `json:"difficulty_histogram"`
}
