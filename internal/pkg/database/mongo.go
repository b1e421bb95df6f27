package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/farmchain/backend/internal/pkg/models"
)

// MongoClient wraps one Mongo connection and the role-sharded logical
// databases. Users are partitioned per role: a farmer and a supplier
// with the same phone number are distinct documents in distinct
// databases. The role->database mapping is resolved once here and
// passed to repositories explicitly; there is no global registry.
type MongoClient struct {
	client     *mongo.Client
	partitions map[models.Role]*mongo.Database
}

// NewMongoClient connects to MongoDB and binds the per-role databases
func NewMongoClient(cfg models.MongoConfig) (*MongoClient, error) {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoClient{
		client: client,
		partitions: map[models.Role]*mongo.Database{
			models.RoleFarmer:   client.Database(cfg.FarmerDB),
			models.RoleSupplier: client.Database(cfg.SupplierDB),
			models.RoleAdmin:    client.Database(cfg.AdminDB),
		},
	}, nil
}

// Partition returns the logical database for a role
func (m *MongoClient) Partition(role models.Role) (*mongo.Database, error) {
	db, ok := m.partitions[role]
	if !ok {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return db, nil
}

// Users returns the users collection of a role partition
func (m *MongoClient) Users(role models.Role) (*mongo.Collection, error) {
	db, err := m.Partition(role)
	if err != nil {
		return nil, err
	}
	return db.Collection("users"), nil
}

// Domain collections live in a fixed partition each, mirroring the
// ownership of the data: land parcels belong to farmers, products and
// commerce to suppliers, platform-wide content to the admin database.

// Lands returns the land parcels collection
func (m *MongoClient) Lands() *mongo.Collection {
	return m.partitions[models.RoleFarmer].Collection("lands")
}

// Products returns the products collection
func (m *MongoClient) Products() *mongo.Collection {
	return m.partitions[models.RoleSupplier].Collection("products")
}

// Orders returns the orders collection
func (m *MongoClient) Orders() *mongo.Collection {
	return m.partitions[models.RoleSupplier].Collection("orders")
}

// Placements returns the sponsored placements collection
func (m *MongoClient) Placements() *mongo.Collection {
	return m.partitions[models.RoleSupplier].Collection("sponsored_placements")
}

// Announcements returns the announcements collection
func (m *MongoClient) Announcements() *mongo.Collection {
	return m.partitions[models.RoleAdmin].Collection("announcements")
}

// Schemes returns the government schemes collection
func (m *MongoClient) Schemes() *mongo.Collection {
	return m.partitions[models.RoleAdmin].Collection("schemes")
}

// Messages returns the direct messages collection
func (m *MongoClient) Messages() *mongo.Collection {
	return m.partitions[models.RoleAdmin].Collection("messages")
}

// Ping verifies the connection is still alive
func (m *MongoClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client
func (m *MongoClient) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the repositories rely on:
// unique phone per role partition, geohash prefix lookups, product
// text search, the message thread ordering and scheme search.
func (m *MongoClient) EnsureIndexes(ctx context.Context) error {
	for role := range m.partitions {
		users, err := m.Users(role)
		if err != nil {
			return err
		}
		_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to create phone index for %s: %w", role, err)
		}
	}

	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{m.Lands(), mongo.IndexModel{Keys: bson.D{{Key: "geohash", Value: 1}}}},
		{m.Lands(), mongo.IndexModel{Keys: bson.D{{Key: "farmer_id", Value: 1}}}},
		{m.Products(), mongo.IndexModel{Keys: bson.D{{Key: "supplier_id", Value: 1}}}},
		{m.Messages(), mongo.IndexModel{Keys: bson.D{{Key: "thread_id", Value: 1}, {Key: "created_at", Value: -1}}}},
		{m.Schemes(), mongo.IndexModel{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}}}},
		{m.Schemes(), mongo.IndexModel{Keys: bson.D{{Key: "tags", Value: 1}}}},
	}
	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.coll.Name(), err)
		}
	}

	return nil
}
