package repository

import (
	"context"
	"errors"
	"time"

	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_trip_repository.go -package=mocks tripcraft/internal/repository TripRepository

// TripRepository defines the interface for trip data operations, including
// read-time population of the referenced plan template.
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error)
	FindByIDPopulated(ctx context.Context, id primitive.ObjectID) (*models.TripWithPlan, error)
	FindByUser(ctx context.Context, userID string, limit, skip int64, populate bool) ([]models.TripWithPlan, error)
	FindPublished(ctx context.Context, filter PlanTemplateFilter, limit, skip int64, sortBy string, populate bool) ([]models.TripWithPlan, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateTripRequest) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByPlanID(ctx context.Context, planID primitive.ObjectID) (int64, error)
	FindMember(ctx context.Context, tripID primitive.ObjectID, userID string) (*models.TripMember, error)
	AddMember(ctx context.Context, tripID primitive.ObjectID, member *models.TripMember) error
	AddMessage(ctx context.Context, tripID primitive.ObjectID, message *models.TripMessage) error
	AddTicket(ctx context.Context, tripID primitive.ObjectID, ticket *models.TripTicket) error
	AddNote(ctx context.Context, tripID primitive.ObjectID, note *models.TripNote) error
	AddFeedEntry(ctx context.Context, tripID primitive.ObjectID, entry *models.TripFeedEntry) error
}

// tripRepository implements TripRepository using MongoDB.
type tripRepository struct {
	collection *mongo.Collection
}

// planTemplatesCollection is the lookup target for population.
const planTemplatesCollection = "plan_templates"

// NewTripRepository creates a new TripRepository.
func NewTripRepository(db *mongo.Database) TripRepository {
	return &tripRepository{
		collection: db.Collection("trips"),
	}
}

// Create inserts a new trip. The creator id is a hard precondition.
// Statuses default to draft/planning and all sub-collections are
// normalized to empty slices. Template content is never copied implicitly;
// a trip may reference a template and store nothing else.
func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) error {
	if trip.CreatorID == "" {
		return apperrors.ErrCreatorRequired
	}

	trip.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if trip.PublishStatus == "" {
		trip.PublishStatus = models.PublishDraft
	}
	if trip.TravelStatus == "" {
		trip.TravelStatus = models.TravelPlanning
	}

	if trip.Members == nil {
		trip.Members = []models.TripMember{}
	}
	if trip.Messages == nil {
		trip.Messages = []models.TripMessage{}
	}
	if trip.Tickets == nil {
		trip.Tickets = []models.TripTicket{}
	}
	if trip.Notes == nil {
		trip.Notes = []models.TripNote{}
	}
	if trip.Feeds == nil {
		trip.Feeds = []models.TripFeedEntry{}
	}

	_, err := r.collection.InsertOne(ctx, trip)
	return err
}

// FindByID retrieves a trip by ID without population.
func (r *tripRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	var trip models.Trip
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, err
	}

	return &trip, nil
}

// FindByIDPopulated retrieves a trip and merges its referenced template
// under plan_details. A dangling or absent reference leaves plan_details
// empty; the fetch still succeeds.
func (r *tripRepository) FindByIDPopulated(ctx context.Context, id primitive.ObjectID) (*models.TripWithPlan, error) {
	trip, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &models.TripWithPlan{Trip: *trip}
	if trip.PlanID == nil {
		return result, nil
	}

	var plan models.PlanTemplate
	err = r.collection.Database().Collection(planTemplatesCollection).
		FindOne(ctx, bson.M{"_id": *trip.PlanID}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result, nil
		}
		return nil, err
	}

	result.PlanDetails = &plan
	return result, nil
}

// populateStages is the batched left-outer-join: one $lookup for the whole
// page instead of a query per trip.
func populateStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         planTemplatesCollection,
			"localField":   "plan_id",
			"foreignField": "_id",
			"as":           "plan_details_array",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"plan_details": bson.M{"$arrayElemAt": bson.A{"$plan_details_array", 0}},
		}}},
		{{Key: "$project", Value: bson.M{"plan_details_array": 0}}},
	}
}

func (r *tripRepository) aggregateTrips(ctx context.Context, match bson.M, sort bson.D, limit, skip int64, populate bool) ([]models.TripWithPlan, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: sort}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: limit}},
	}
	if populate {
		pipeline = append(pipeline, populateStages()...)
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trips []models.TripWithPlan
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}

	if trips == nil {
		trips = []models.TripWithPlan{}
	}

	return trips, nil
}

// FindByUser returns trips the user created or belongs to, newest first.
func (r *tripRepository) FindByUser(ctx context.Context, userID string, limit, skip int64, populate bool) ([]models.TripWithPlan, error) {
	match := bson.M{
		"$or": bson.A{
			bson.M{"creator_id": userID},
			bson.M{"members.userId": userID},
		},
	}
	return r.aggregateTrips(ctx, match, listSort(""), limit, skip, populate)
}

// FindPublished returns published trips for marketplace browsing. The
// destination/tag filters match the template listing semantics.
func (r *tripRepository) FindPublished(ctx context.Context, filter PlanTemplateFilter, limit, skip int64, sortBy string, populate bool) ([]models.TripWithPlan, error) {
	match := filter.listFilter()
	match["publish_status"] = models.PublishPublished
	return r.aggregateTrips(ctx, match, listSort(sortBy), limit, skip, populate)
}

// Update applies a merge patch. Identity and the template reference are
// not patchable; updated_at is always stamped.
func (r *tripRepository) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateTripRequest) (bool, error) {
	set := bson.M{"updated_at": time.Now().UTC()}

	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Destination != nil {
		set["destination"] = *req.Destination
	}
	if req.StartDate != nil {
		set["startDate"] = models.ParseDateOnly(*req.StartDate)
	}
	if req.EndDate != nil {
		set["endDate"] = models.ParseDateOnly(*req.EndDate)
	}
	if req.Days != nil {
		set["days"] = models.DaysFromInput(*req.Days)
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.PublishStatus != nil {
		set["publish_status"] = *req.PublishStatus
	}
	if req.TravelStatus != nil {
		set["travel_status"] = *req.TravelStatus
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}

	if result.MatchedCount == 0 {
		return false, apperrors.ErrTripNotFound
	}

	return result.ModifiedCount > 0, nil
}

// Delete removes a trip.
func (r *tripRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTripNotFound
	}

	return nil
}

// CountByPlanID returns how many trips reference a template. Used to
// enforce referential integrity before template deletion.
func (r *tripRepository) CountByPlanID(ctx context.Context, planID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"plan_id": planID})
}

// FindMember returns the membership entry for a user on a trip.
func (r *tripRepository) FindMember(ctx context.Context, tripID primitive.ObjectID, userID string) (*models.TripMember, error) {
	filter := bson.M{"_id": tripID, "members.userId": userID}
	opts := options.FindOne().SetProjection(bson.M{"members.$": 1})

	var doc struct {
		Members []models.TripMember `bson:"members"`
	}
	err := r.collection.FindOne(ctx, filter, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotTripMember
		}
		return nil, err
	}

	if len(doc.Members) == 0 {
		return nil, apperrors.ErrNotTripMember
	}

	return &doc.Members[0], nil
}

// push appends an element to one of the trip's sub-collections and stamps
// updated_at in the same atomic update, so concurrent appends to different
// arrays on one trip never lose each other.
func (r *tripRepository) push(ctx context.Context, tripID primitive.ObjectID, field string, element interface{}) error {
	update := bson.M{
		"$push": bson.M{field: element},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": tripID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTripNotFound
	}

	return nil
}

// AddMember appends a member. Duplicate user-id rejection happens at the
// service layer before this call.
func (r *tripRepository) AddMember(ctx context.Context, tripID primitive.ObjectID, member *models.TripMember) error {
	return r.push(ctx, tripID, "members", member)
}

// AddMessage appends a message, assigning id and timestamp if absent.
func (r *tripRepository) AddMessage(ctx context.Context, tripID primitive.ObjectID, message *models.TripMessage) error {
	if message.ID == "" {
		message.ID = primitive.NewObjectID().Hex()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}
	return r.push(ctx, tripID, "messages", message)
}

// AddTicket appends a ticket, assigning an id if absent.
func (r *tripRepository) AddTicket(ctx context.Context, tripID primitive.ObjectID, ticket *models.TripTicket) error {
	if ticket.ID == "" {
		ticket.ID = primitive.NewObjectID().Hex()
	}
	return r.push(ctx, tripID, "tickets", ticket)
}

// AddNote appends a note, assigning id and timestamp if absent.
func (r *tripRepository) AddNote(ctx context.Context, tripID primitive.ObjectID, note *models.TripNote) error {
	if note.ID == "" {
		note.ID = primitive.NewObjectID().Hex()
	}
	if note.Timestamp.IsZero() {
		note.Timestamp = time.Now().UTC()
	}
	return r.push(ctx, tripID, "notes", note)
}

// AddFeedEntry appends a feed entry, assigning id and timestamp if absent.
func (r *tripRepository) AddFeedEntry(ctx context.Context, tripID primitive.ObjectID, entry *models.TripFeedEntry) error {
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	return r.push(ctx, tripID, "feeds", entry)
}
