package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farmchain/backend/internal/pkg/database"
	"github.com/farmchain/backend/internal/pkg/models"
)

// UserRepo persists users in their role partitions
type UserRepo struct {
	db *database.MongoClient
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.MongoClient) *UserRepo {
	return &UserRepo{db: db}
}

// GetByID fetches a user from the given role partition. Returns
// (nil, nil) when the id is well formed but no document matches.
func (r *UserRepo) GetByID(ctx context.Context, role models.Role, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	coll, err := r.db.Users(role)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Role = role
	return &user, nil
}

// GetByPhone fetches a user by normalized phone from the role partition
func (r *UserRepo) GetByPhone(ctx context.Context, role models.Role, phone string) (*models.User, error) {
	coll, err := r.db.Users(role)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by phone: %w", err)
	}

	user.Role = role
	return &user, nil
}

// Create inserts a user into its role partition and backfills the
// generated id on the passed struct
func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	coll, err := r.db.Users(user.Role)
	if err != nil {
		return err
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update applies a partial profile update and returns the new document
func (r *UserRepo) Update(ctx context.Context, role models.Role, id string, req *models.UpdateProfileRequest) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	coll, err := r.db.Users(role)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Email != "" {
		set["email"] = req.Email
		set["email_verified"] = false
	}
	if req.ProfilePic != "" {
		set["profile_pic"] = req.ProfilePic
	}
	if req.Company != nil {
		set["company"] = req.Company
	}

	var user models.User
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.Role = role
	return &user, nil
}

// RecordLogin stamps last_login and fills any profile fields the user
// has not set yet. Hints never overwrite existing values: a returning
// user's saved name wins over whatever the client sent along.
func (r *UserRepo) RecordLogin(ctx context.Context, role models.Role, id string, hints models.ProfileHints) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	coll, err := r.db.Users(role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"last_login": now,
			"updated_at": now,
		},
	}

	var user models.User
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %s not found in %s partition", id, role)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	fill := loginBackfill(&user, hints)
	if len(fill) > 0 {
		if _, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fill}); err != nil {
			return nil, fmt.Errorf("failed to backfill profile: %w", err)
		}
	}

	user.Role = role
	return &user, nil
}

// loginBackfill computes the fields a login stamps beyond the
// timestamps, mutating the passed user to match. Hints fill absent
// profile fields only, and phone verification is only recorded on
// accounts that actually carry a phone: the bootstrap admin logs in by
// password and has none.
func loginBackfill(user *models.User, hints models.ProfileHints) bson.M {
	fill := bson.M{}
	if user.Phone != "" && !user.PhoneVerified {
		fill["phone_verified"] = true
		user.PhoneVerified = true
	}
	if user.Name == "" && hints.Name != "" {
		fill["name"] = hints.Name
		user.Name = hints.Name
	}
	if user.Email == "" && hints.Email != "" {
		fill["email"] = hints.Email
		user.Email = hints.Email
	}
	if user.Company == nil && hints.Company != nil {
		fill["company"] = hints.Company
		user.Company = hints.Company
	}
	return fill
}

// EnsureAdmin returns the bootstrap admin user, creating it on first
// login
func (r *UserRepo) EnsureAdmin(ctx context.Context, email string) (*models.User, error) {
	coll, err := r.db.Users(models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == nil {
		user.Role = models.RoleAdmin
		return &user, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	now := time.Now()
	admin := &models.User{
		ID:            primitive.NewObjectID(),
		Role:          models.RoleAdmin,
		Name:          "Administrator",
		Email:         email,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := coll.InsertOne(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	return admin, nil
}
