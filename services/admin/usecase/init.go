package usecase

import (
	"github.com/farmchain/backend/services/admin"
)

// AdminUC implements admin.AdminUC
type AdminUC struct {
	repo admin.DashboardRepo
}

// NewAdminUC creates the admin dashboard usecase
func NewAdminUC(repo admin.DashboardRepo) *AdminUC {
	return &AdminUC{repo: repo}
}
