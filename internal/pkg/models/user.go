package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role identifies the partition a user belongs to. A farmer and a
// supplier with the same phone number are distinct records in
// different logical databases.
type Role string

const (
	RoleFarmer   Role = "farmer"
	RoleSupplier Role = "supplier"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the closed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}

// User represents a user within a single role partition
type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Role          Role               `json:"role" bson:"role"`
	Name          string             `json:"name" bson:"name"`
	Phone         string             `json:"phone" bson:"phone"`
	PhoneVerified bool               `json:"phoneVerified" bson:"phone_verified"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`
	EmailVerified bool               `json:"emailVerified" bson:"email_verified"`
	PasswordHash  string             `json:"-" bson:"password_hash,omitempty"`
	ProfilePic    string             `json:"profilePic,omitempty" bson:"profile_pic,omitempty"`
	Company       *Company           `json:"company,omitempty" bson:"company,omitempty"`
	LastLogin     *time.Time         `json:"lastLogin,omitempty" bson:"last_login,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updated_at"`
}

// Company holds supplier-specific profile fields
type Company struct {
	Name      string          `json:"name,omitempty" bson:"name,omitempty"`
	GSTNumber string          `json:"gstNumber,omitempty" bson:"gst_number,omitempty"`
	Address   *CompanyAddress `json:"address,omitempty" bson:"address,omitempty"`
}

// CompanyAddress is the postal address of a supplier company
type CompanyAddress struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Pincode string `json:"pincode,omitempty" bson:"pincode,omitempty"`
}

// ProfileHints carries the optional fields a client may attach to an
// OTP verification. Absent fields never overwrite existing values.
type ProfileHints struct {
	Name    string
	Email   string
	Company *Company
}

// UpdateProfileRequest is the payload for PUT /users/me
type UpdateProfileRequest struct {
	Name       string   `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Email      string   `json:"email,omitempty" validate:"omitempty,email"`
	ProfilePic string   `json:"profilePic,omitempty" validate:"omitempty,url"`
	Company    *Company `json:"company,omitempty"`
}
