package usecase

import (
	"github.com/farmchain/backend/services/schemes"
)

// SchemeUC implements schemes.SchemeUC
type SchemeUC struct {
	repo schemes.SchemeRepo
}

// NewSchemeUC creates the scheme usecase
func NewSchemeUC(repo schemes.SchemeRepo) *SchemeUC {
	return &SchemeUC{repo: repo}
}
