package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON point, coordinates ordered [longitude, latitude]
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// LandAddress locates a parcel administratively
type LandAddress struct {
	Village  string `json:"village,omitempty" bson:"village,omitempty"`
	Taluk    string `json:"taluk,omitempty" bson:"taluk,omitempty"`
	District string `json:"district,omitempty" bson:"district,omitempty"`
	State    string `json:"state,omitempty" bson:"state,omitempty"`
	Pincode  string `json:"pincode,omitempty" bson:"pincode,omitempty"`
}

// VerificationNote records one admin review action on a parcel
type VerificationNote struct {
	Note       string             `json:"note" bson:"note"`
	Status     string             `json:"status" bson:"status"` // APPROVED or REJECTED
	VerifiedBy primitive.ObjectID `json:"verifiedBy" bson:"verified_by"`
	VerifiedAt time.Time          `json:"verifiedAt" bson:"verified_at"`
}

// Land represents a registered land parcel. Geohash is derived from
// Location at write time and indexed for prefix-based nearby queries.
type Land struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FarmerID          primitive.ObjectID `json:"farmerId" bson:"farmer_id"`
	SurveyNumber      string             `json:"surveyNumber" bson:"survey_number"`
	AreaAcres         float64            `json:"areaAcres" bson:"area_acres"`
	Location          GeoPoint           `json:"location" bson:"location"`
	Geohash           string             `json:"geohash" bson:"geohash"`
	Address           LandAddress        `json:"address" bson:"address"`
	IsVerified        bool               `json:"isVerified" bson:"is_verified"`
	IsActive          bool               `json:"isActive" bson:"is_active"`
	VerificationNotes []VerificationNote `json:"verificationNotes,omitempty" bson:"verification_notes,omitempty"`
	CreatedAt         time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updated_at"`
}

// RegisterLandRequest is the payload for POST /lands
type RegisterLandRequest struct {
	SurveyNumber string      `json:"surveyNumber" validate:"required,min=1,max=60"`
	AreaAcres    float64     `json:"areaAcres" validate:"required,gt=0"`
	Latitude     float64     `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude    float64     `json:"longitude" validate:"required,gte=-180,lte=180"`
	Address      LandAddress `json:"address"`
}

// ReviewLandRequest is the payload for admin land review
type ReviewLandRequest struct {
	Action string `json:"action" validate:"required,oneof=APPROVED REJECTED"`
	Note   string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// NearbyLandsQuery narrows the public nearby-parcels lookup
type NearbyLandsQuery struct {
	Latitude  float64 `query:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `query:"lng" validate:"gte=-180,lte=180"`
	Precision uint    `query:"precision" validate:"omitempty,gte=3,lte=8"`
}
