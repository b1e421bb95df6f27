package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/models"
)

var (
	// ErrPlacementNotFound is returned when the id resolves to nothing
	ErrPlacementNotFound = errors.New("placement not found")
	// ErrNotOwner is returned when a supplier touches another supplier's placement
	ErrNotOwner = errors.New("placement belongs to another supplier")
)

// ListPublic returns the live placements for a slot, best bid first
func (uc *PlacementUC) ListPublic(ctx context.Context, placement string) ([]models.SponsoredPlacement, error) {
	return uc.repo.ListActive(ctx, placement)
}

// ListMine returns the supplier's own placements regardless of status
func (uc *PlacementUC) ListMine(ctx context.Context, supplierID string) ([]models.SponsoredPlacement, error) {
	return uc.repo.ListBySupplier(ctx, supplierID)
}

// Create books a new placement. Status defaults to draft so the slot
// never goes live before the supplier confirms it.
func (uc *PlacementUC) Create(ctx context.Context, supplierID string, req *models.CreatePlacementRequest) (*models.SponsoredPlacement, error) {
	supplierOID, err := primitive.ObjectIDFromHex(supplierID)
	if err != nil {
		return nil, fmt.Errorf("invalid supplier id: %w", err)
	}
	productOID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.PlacementDraft
	}

	p := &models.SponsoredPlacement{
		SupplierID: supplierOID,
		ProductID:  productOID,
		Title:      req.Title,
		ImageURL:   req.ImageURL,
		TargetURL:  req.TargetURL,
		Placement:  req.Placement,
		Budget:     req.Budget,
		CPC:        req.CPC,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		Status:     status,
		Metadata:   req.Metadata,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update edits a placement after checking ownership
func (uc *PlacementUC) Update(ctx context.Context, supplierID, id string, req *models.UpdatePlacementRequest) (*models.SponsoredPlacement, error) {
	if err := uc.checkOwnership(ctx, supplierID, id); err != nil {
		return nil, err
	}
	p, err := uc.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPlacementNotFound
	}
	return p, nil
}

// Delete removes a placement after checking ownership
func (uc *PlacementUC) Delete(ctx context.Context, supplierID, id string) error {
	if err := uc.checkOwnership(ctx, supplierID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *PlacementUC) checkOwnership(ctx context.Context, supplierID, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPlacementNotFound
	}
	if p.SupplierID.Hex() != supplierID {
		return ErrNotOwner
	}
	return nil
}
