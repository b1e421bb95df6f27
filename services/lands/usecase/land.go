package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmcloughlin/geohash"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/constants"
	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/auth"
	"github.com/farmchain/backend/services/lands"
)

// Geohash precision bounds for the nearby query. Precision 5 cells are
// roughly 5km across, a sensible default for rural parcels.
const (
	defaultNearbyPrecision = 5
	storedGeohashPrecision = 9
)

// ErrLandNotFound marks a lookup that matched no parcel
var ErrLandNotFound = errors.New("land not found")

// LandUC implements the land parcel usecase
type LandUC struct {
	repo     lands.LandRepo
	eventsGW auth.EventsGW
}

// NewLandUC creates a new land usecase instance
func NewLandUC(repo lands.LandRepo, eventsGW auth.EventsGW) *LandUC {
	return &LandUC{repo: repo, eventsGW: eventsGW}
}

// Register records a new parcel for the farmer. Parcels start
// unverified and enter the admin review queue.
func (uc *LandUC) Register(ctx context.Context, farmerID string, req *models.RegisterLandRequest) (*models.Land, error) {
	oid, err := primitive.ObjectIDFromHex(farmerID)
	if err != nil {
		return nil, fmt.Errorf("invalid farmer id: %w", err)
	}

	land := &models.Land{
		FarmerID:     oid,
		SurveyNumber: req.SurveyNumber,
		AreaAcres:    req.AreaAcres,
		Location: models.GeoPoint{
			Type:        "Point",
			Coordinates: []float64{req.Longitude, req.Latitude},
		},
		Geohash:    geohash.EncodeWithPrecision(req.Latitude, req.Longitude, storedGeohashPrecision),
		Address:    req.Address,
		IsVerified: false,
		IsActive:   true,
	}

	if err := uc.repo.Create(ctx, land); err != nil {
		return nil, err
	}

	logger.Info("Land registered",
		logger.String("land_id", land.ID.Hex()),
		logger.String("farmer_id", farmerID),
		logger.String("geohash", land.Geohash))
	return land, nil
}

// ListMine returns the farmer's own parcels
func (uc *LandUC) ListMine(ctx context.Context, farmerID string) ([]models.Land, error) {
	return uc.repo.ListByFarmer(ctx, farmerID)
}

// Nearby returns verified parcels around a point. The point is encoded
// at the requested precision and matched as a geohash prefix together
// with the cell's eight neighbors: a parcel just across a cell boundary
// hashes to an adjacent prefix, so the center cell alone would miss it.
func (uc *LandUC) Nearby(ctx context.Context, query models.NearbyLandsQuery) ([]models.Land, error) {
	precision := query.Precision
	if precision == 0 {
		precision = defaultNearbyPrecision
	}

	prefix := geohash.EncodeWithPrecision(query.Latitude, query.Longitude, precision)
	prefixes := append([]string{prefix}, geohash.Neighbors(prefix)...)
	return uc.repo.ListByGeohashPrefixes(ctx, prefixes, 50)
}

// ListPending returns the admin review queue
func (uc *LandUC) ListPending(ctx context.Context, page, limit int) ([]models.Land, int64, error) {
	return uc.repo.ListPending(ctx, page, limit)
}

// Review applies an admin decision to a parcel
func (uc *LandUC) Review(ctx context.Context, adminID, landID string, req *models.ReviewLandRequest) (*models.Land, error) {
	adminOID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return nil, fmt.Errorf("invalid admin id: %w", err)
	}

	note := models.VerificationNote{
		Note:       req.Note,
		Status:     req.Action,
		VerifiedBy: adminOID,
		VerifiedAt: time.Now(),
	}

	land, err := uc.repo.ApplyReview(ctx, landID, req.Action == "APPROVED", note)
	if err != nil {
		return nil, err
	}
	if land == nil {
		return nil, ErrLandNotFound
	}

	if err := uc.eventsGW.Publish(constants.TopicLandReviewed, map[string]interface{}{
		"land_id":   land.ID.Hex(),
		"farmer_id": land.FarmerID.Hex(),
		"action":    req.Action,
	}); err != nil {
		logger.Warn("Failed to publish review event", logger.Err(err))
	}

	logger.Info("Land reviewed",
		logger.String("land_id", land.ID.Hex()),
		logger.String("action", req.Action))
	return land, nil
}
