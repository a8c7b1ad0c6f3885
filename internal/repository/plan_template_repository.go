// Package repository provides data access over the MongoDB document store.
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

//go:generate mockgen -destination=mocks/mock_plan_template_repository.go -package=mocks tripcraft/internal/repository PlanTemplateRepository

// PlanTemplateFilter holds the supported listing filters.
type PlanTemplateFilter struct {
	// Destination matches as a case-insensitive substring.
	Destination string
	// Tags matches templates carrying any of the given tags.
	Tags []string
}

// PlanTemplateRepository defines the interface for plan template data operations.
type PlanTemplateRepository interface {
	Create(ctx context.Context, plan *models.PlanTemplate) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PlanTemplate, error)
	Find(ctx context.Context, filter PlanTemplateFilter, limit, skip int64, sortBy string) ([]models.PlanTemplate, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.UpdatePlanTemplateRequest) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// planTemplateRepository implements PlanTemplateRepository using MongoDB.
type planTemplateRepository struct {
	collection *mongo.Collection
}

// NewPlanTemplateRepository creates a new PlanTemplateRepository.
func NewPlanTemplateRepository(db *mongo.Database) PlanTemplateRepository {
	return &planTemplateRepository{
		collection: db.Collection("plan_templates"),
	}
}

// Create inserts a new plan template. Identity and timestamps are assigned
// here; date normalization has already produced UTC-midnight values or nil.
func (r *planTemplateRepository) Create(ctx context.Context, plan *models.PlanTemplate) error {
	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	if plan.Days == nil {
		plan.Days = []models.PlanDay{}
	}
	if plan.Tags == nil {
		plan.Tags = []string{}
	}

	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

// FindByID retrieves a plan template by ID.
func (r *planTemplateRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PlanTemplate, error) {
	var plan models.PlanTemplate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPlanTemplateNotFound
		}
		return nil, err
	}

	return &plan, nil
}

// listFilter builds the query document shared by template and trip listings.
func (f PlanTemplateFilter) listFilter() bson.M {
	filter := bson.M{}
	if f.Destination != "" {
		filter["destination"] = bson.M{"$regex": f.Destination, "$options": "i"}
	}
	if len(f.Tags) > 0 {
		filter["tags"] = bson.M{"$in": f.Tags}
	}
	return filter
}

// listSort maps a sort key to sort criteria. Default is most recently
// updated first; rating sorts by rating with recency as tiebreaker.
func listSort(sortBy string) bson.D {
	if sortBy == models.SortRating {
		return bson.D{{Key: "rating", Value: -1}, {Key: "updated_at", Value: -1}}
	}
	return bson.D{{Key: "updated_at", Value: -1}}
}

// Find returns a filtered, sorted page of plan templates.
func (r *planTemplateRepository) Find(ctx context.Context, filter PlanTemplateFilter, limit, skip int64, sortBy string) ([]models.PlanTemplate, error) {
	opts := options.Find().
		SetSort(listSort(sortBy)).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter.listFilter(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.PlanTemplate
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}

	if plans == nil {
		plans = []models.PlanTemplate{}
	}

	return plans, nil
}

// Update applies a merge patch. The identity field is never part of the
// patch; date fields present in the patch go through the same YYYY-MM-DD
// normalization as creation, with malformed values stored as null.
// updated_at is always stamped. Returns whether any field actually changed.
func (r *planTemplateRepository) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdatePlanTemplateRequest) (bool, error) {
	set := bson.M{"updated_at": time.Now().UTC()}

	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Origin != nil {
		set["origin"] = *req.Origin
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
	if req.CoverImage != nil {
		set["coverImage"] = *req.CoverImage
	}
	if req.IsPublic != nil {
		set["isPublic"] = *req.IsPublic
	}
	if req.IsFeatured != nil {
		set["isFeatured"] = *req.IsFeatured
	}
	if req.Rating != nil {
		set["rating"] = *req.Rating
	}
	if req.ReviewCount != nil {
		set["reviewCount"] = *req.ReviewCount
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}

	if result.MatchedCount == 0 {
		return false, apperrors.ErrPlanTemplateNotFound
	}

	return result.ModifiedCount > 0, nil
}

// Delete removes a plan template. Referential integrity against trips is
// the caller's responsibility; the store has no foreign-key constraints.
func (r *planTemplateRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrPlanTemplateNotFound
	}

	return nil
}
