package main

import (
	"context"
	"log"
	"time"

	"tripcraft/internal/config"
	"tripcraft/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Plan template indexes
	createIndex(ctx, db, "plan_templates", bson.D{{Key: "destination", Value: 1}}, nil)
	createIndex(ctx, db, "plan_templates", bson.D{{Key: "tags", Value: 1}}, nil)
	createIndex(ctx, db, "plan_templates", bson.D{
		{Key: "isPublic", Value: 1},
		{Key: "rating", Value: -1},
	}, nil)
	createIndex(ctx, db, "plan_templates", bson.D{{Key: "created_at", Value: -1}}, nil)

	// Trip indexes
	createIndex(ctx, db, "trips", bson.D{{Key: "creator_id", Value: 1}}, nil)
	createIndex(ctx, db, "trips", bson.D{{Key: "members.userId", Value: 1}}, nil)
	createIndex(ctx, db, "trips", bson.D{{Key: "plan_id", Value: 1}}, nil)
	createIndex(ctx, db, "trips", bson.D{
		{Key: "publish_status", Value: 1},
		{Key: "created_at", Value: -1},
	}, nil)

	// Share invitation indexes. The unique code index backs collision retries
	// at creation time.
	createIndex(ctx, db, "share_invitations", bson.D{{Key: "invitation_code", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "share_invitations", bson.D{{Key: "trip_id", Value: 1}}, nil)
	createIndex(ctx, db, "share_invitations", bson.D{{Key: "expires_at", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
