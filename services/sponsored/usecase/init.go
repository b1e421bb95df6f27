package usecase

import (
	"github.com/farmchain/backend/services/sponsored"
)

// PlacementUC implements sponsored.PlacementUC
type PlacementUC struct {
	repo sponsored.PlacementRepo
}

// NewPlacementUC creates the placement usecase
func NewPlacementUC(repo sponsored.PlacementRepo) *PlacementUC {
	return &PlacementUC{repo: repo}
}
