package main

import (
	"context"
	"log"
	"time"

	"tripcraft/internal/config"
	"tripcraft/internal/database"
	"tripcraft/internal/models"
	"tripcraft/pkg/invitecode"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	planIDs := seedPlanTemplates(ctx, mongoDB.Database)
	tripIDs := seedTrips(ctx, mongoDB.Database, planIDs)
	seedInvitations(ctx, mongoDB.Database, tripIDs)

	log.Println("Seed completed successfully!")
}

func dateAt(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedPlanTemplates(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("plan_templates")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear plan templates: %v", err)
	}

	now := time.Now().UTC()

	plans := []interface{}{
		models.PlanTemplate{
			Name:        "Sanya 5-day family trip",
			Origin:      "Beijing",
			Destination: "Sanya",
			StartDate:   dateAt(2026, 6, 1),
			EndDate:     dateAt(2026, 6, 5),
			Days: []models.PlanDay{
				{
					DayNumber: 1,
					Date:      dateAt(2026, 6, 1),
					Title:     "Arrival and beach",
					Activities: []models.Activity{
						{ID: "a1", Title: "Check in at hotel", StartTime: "14:00", Type: "logistics"},
						{ID: "a2", Title: "Sunset at Yalong Bay", Location: "Yalong Bay", StartTime: "17:30", Type: "sightseeing"},
					},
				},
				{
					DayNumber: 2,
					Date:      dateAt(2026, 6, 2),
					Title:     "Island hopping",
					Activities: []models.Activity{
						{ID: "a3", Title: "Wuzhizhou Island ferry", StartTime: "09:00", Type: "sightseeing", Cost: 168},
					},
				},
			},
			Tags:        []string{"beach", "family"},
			Description: "A relaxed island itinerary for families with kids.",
			CoverImage:  "covers/sanya-family.jpg",
			Rating:      4.7,
			ReviewCount: 132,
			UseCount:    211,
			IsPublic:    true,
			IsFeatured:  true,
			CreatedAt:   now.Add(-72 * time.Hour),
			UpdatedAt:   now.Add(-72 * time.Hour),
		},
		models.PlanTemplate{
			Name:        "Chengdu food weekend",
			Origin:      "Shanghai",
			Destination: "Chengdu",
			StartDate:   dateAt(2026, 9, 12),
			EndDate:     dateAt(2026, 9, 14),
			Days: []models.PlanDay{
				{DayNumber: 1, Date: dateAt(2026, 9, 12), Title: "Hotpot crawl", Activities: []models.Activity{}},
				{DayNumber: 2, Date: dateAt(2026, 9, 13), Title: "Panda base and teahouses", Activities: []models.Activity{}},
				{DayNumber: 3, Date: dateAt(2026, 9, 14), Title: "Markets and departure", Activities: []models.Activity{}},
			},
			Tags:        []string{"food", "city"},
			Description: "Eat your way through Chengdu in three days.",
			CoverImage:  "covers/chengdu-food.jpg",
			Rating:      4.5,
			ReviewCount: 87,
			UseCount:    96,
			IsPublic:    true,
			CreatedAt:   now.Add(-48 * time.Hour),
			UpdatedAt:   now.Add(-48 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, plans)
	if err != nil {
		log.Fatalf("Failed to seed plan templates: %v", err)
	}

	log.Printf("Seeded %d plan templates", len(result.InsertedIDs))

	var planIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		planIDs = append(planIDs, id.(primitive.ObjectID))
	}

	return planIDs
}

func seedTrips(ctx context.Context, db *mongo.Database, planIDs []primitive.ObjectID) []primitive.ObjectID {
	collection := db.Collection("trips")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear trips: %v", err)
	}

	now := time.Now().UTC()

	trips := []interface{}{
		models.Trip{
			PlanID:      &planIDs[0],
			CreatorID:   "u-8f2d1c",
			Name:        "Our Sanya trip",
			Destination: "Sanya",
			StartDate:   dateAt(2026, 6, 1),
			EndDate:     dateAt(2026, 6, 5),
			Tags:        []string{"beach", "family"},
			Members: []models.TripMember{
				{UserID: "u-8f2d1c", Name: "Alice", Role: models.RoleOwner},
				{UserID: "u-41ac99", Name: "Bob", Role: models.RoleEdit},
			},
			PublishStatus: models.PublishDraft,
			TravelStatus:  models.TravelPlanning,
			Messages: []models.TripMessage{
				{ID: "m1", SenderID: "u-8f2d1c", Content: "Booked the hotel!", Type: "text", Timestamp: now.Add(-20 * time.Hour)},
			},
			Tickets:   []models.TripTicket{},
			Notes:     []models.TripNote{},
			Feeds:     []models.TripFeedEntry{},
			CreatedAt: now.Add(-36 * time.Hour),
			UpdatedAt: now.Add(-20 * time.Hour),
		},
		models.Trip{
			CreatorID:     "u-41ac99",
			Name:          "Chengdu eating tour",
			Destination:   "Chengdu",
			Tags:          []string{"food"},
			Members:       []models.TripMember{{UserID: "u-41ac99", Name: "Bob", Role: models.RoleOwner}},
			PublishStatus: models.PublishPublished,
			TravelStatus:  models.TravelCompleted,
			Messages:      []models.TripMessage{},
			Tickets:       []models.TripTicket{},
			Notes:         []models.TripNote{},
			Feeds:         []models.TripFeedEntry{},
			CreatedAt:     now.Add(-240 * time.Hour),
			UpdatedAt:     now.Add(-120 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, trips)
	if err != nil {
		log.Fatalf("Failed to seed trips: %v", err)
	}

	log.Printf("Seeded %d trips", len(result.InsertedIDs))

	var tripIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		tripIDs = append(tripIDs, id.(primitive.ObjectID))
	}

	return tripIDs
}

func seedInvitations(ctx context.Context, db *mongo.Database, tripIDs []primitive.ObjectID) {
	collection := db.Collection("share_invitations")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear share invitations: %v", err)
	}

	code, err := invitecode.Generate()
	if err != nil {
		log.Fatalf("Failed to generate invitation code: %v", err)
	}

	now := time.Now().UTC()

	invitations := []interface{}{
		models.ShareInvitation{
			TripID:       tripIDs[0],
			Code:         code,
			SenderUserID: "u-8f2d1c",
			SenderName:   "Alice",
			Role:         models.RoleEdit,
			Status:       models.InvitationPending,
			CreatedAt:    now,
			ExpiresAt:    now.AddDate(0, 0, models.InvitationExpiryDays),
		},
	}

	result, err := collection.InsertMany(ctx, invitations)
	if err != nil {
		log.Fatalf("Failed to seed share invitations: %v", err)
	}

	log.Printf("Seeded %d share invitations (code %s)", len(result.InsertedIDs), code)
}
