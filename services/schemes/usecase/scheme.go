package usecase

import (
	"context"
	"errors"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/models"
)

// ErrSchemeNotFound is returned when the id resolves to nothing
var ErrSchemeNotFound = errors.New("scheme not found")

// List returns the active schemes matching the filter. The listing is
// public: farmers browse schemes before they ever sign in.
func (uc *SchemeUC) List(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error) {
	return uc.repo.ListActive(ctx, filter)
}

// Create publishes a new scheme
func (uc *SchemeUC) Create(ctx context.Context, req *models.CreateSchemeRequest) (*models.Scheme, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	s := &models.Scheme{
		Title:             req.Title,
		Description:       req.Description,
		Department:        req.Department,
		Category:          req.Category,
		Benefits:          emptyIfNil(req.Benefits),
		Eligibility:       emptyIfNil(req.Eligibility),
		DocumentsRequired: emptyIfNil(req.DocumentsRequired),
		URL:               req.URL,
		ActiveFrom:        req.ActiveFrom,
		ActiveTo:          req.ActiveTo,
		IsActive:          active,
		States:            emptyIfNil(req.States),
		Districts:         emptyIfNil(req.Districts),
		Tags:              emptyIfNil(req.Tags),
		Metadata:          req.Metadata,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	logger.Info("Scheme created",
		logger.String("scheme_id", s.ID.Hex()),
		logger.String("title", s.Title))
	return s, nil
}

// Update edits an existing scheme
func (uc *SchemeUC) Update(ctx context.Context, id string, req *models.UpdateSchemeRequest) (*models.Scheme, error) {
	s, err := uc.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrSchemeNotFound
	}
	return s, nil
}

// Delete removes a scheme
func (uc *SchemeUC) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrSchemeNotFound
	}
	return nil
}

// emptyIfNil keeps list fields as [] in stored documents so clients
// never see null arrays
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
