package service

import (
	"context"
	"log"
	"time"

	"tripcraft/internal/cache"
	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/models"
	"tripcraft/internal/repository"
	"tripcraft/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// PlanCacheTTL is how long a plan template document stays cached.
	PlanCacheTTL = 10 * time.Minute
	// CoverUploadExpiry is the validity window of a cover upload URL.
	CoverUploadExpiry = 15 * time.Minute
	// coverContentTypeDefault is used when the caller gives no content type.
	coverContentTypeDefault = "image/jpeg"
)

// PlanTemplateService handles business logic for plan template operations.
type PlanTemplateService struct {
	planRepo repository.PlanTemplateRepository
	tripRepo repository.TripRepository
	cache    cache.Cache
	storage  storage.Storage
}

// NewPlanTemplateService creates a new PlanTemplateService.
func NewPlanTemplateService(
	planRepo repository.PlanTemplateRepository,
	tripRepo repository.TripRepository,
	cacheClient cache.Cache,
	storageClient storage.Storage,
) *PlanTemplateService {
	return &PlanTemplateService{
		planRepo: planRepo,
		tripRepo: tripRepo,
		cache:    cacheClient,
		storage:  storageClient,
	}
}

// CreatePlan creates a new plan template from caller input. Date strings are
// normalized to UTC midnight; malformed day dates become absent.
func (s *PlanTemplateService) CreatePlan(ctx context.Context, req *models.CreatePlanTemplateRequest) (*models.PlanTemplate, error) {
	if !models.ValidateDayNumbers(req.Days) {
		return nil, apperrors.ErrInvalidDayNumbers
	}

	plan := &models.PlanTemplate{
		Name:        req.Name,
		Origin:      req.Origin,
		Destination: req.Destination,
		StartDate:   models.ParseDateOnly(req.StartDate),
		EndDate:     models.ParseDateOnly(req.EndDate),
		Days:        models.DaysFromInput(req.Days),
		Tags:        req.Tags,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		IsPublic:    req.IsPublic,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// GetPlan retrieves a plan template, serving from cache when possible.
func (s *PlanTemplateService) GetPlan(ctx context.Context, id primitive.ObjectID) (*models.PlanTemplate, error) {
	key := cache.PlanCacheKey(id.Hex())

	var cached models.PlanTemplate
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("Cache lookup failed for plan %s: %v", id.Hex(), err)
	}
	if found {
		return &cached, nil
	}

	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, plan, PlanCacheTTL); err != nil {
		log.Printf("Cache store failed for plan %s: %v", id.Hex(), err)
	}

	return plan, nil
}

// ListPlans returns a filtered, sorted page of plan templates.
func (s *PlanTemplateService) ListPlans(ctx context.Context, filter repository.PlanTemplateFilter, page, limit int, sortBy string) (*models.PlanTemplateListResponse, error) {
	limit, skip := normalizePage(page, limit)

	plans, err := s.planRepo.Find(ctx, filter, int64(limit), int64(skip), sortBy)
	if err != nil {
		return nil, err
	}

	return &models.PlanTemplateListResponse{
		Items: plans,
		Pagination: models.Pagination{
			Limit:      limit,
			Skip:       skip,
			TotalItems: len(plans),
		},
	}, nil
}

// UpdatePlan applies a merge patch and returns the fresh document. The cache
// entry is dropped whether or not the patch changed anything.
func (s *PlanTemplateService) UpdatePlan(ctx context.Context, id primitive.ObjectID, req *models.UpdatePlanTemplateRequest) (*models.PlanTemplate, error) {
	if req.Days != nil && !models.ValidateDayNumbers(*req.Days) {
		return nil, apperrors.ErrInvalidDayNumbers
	}

	if _, err := s.planRepo.Update(ctx, id, req); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, cache.PlanCacheKey(id.Hex())); err != nil {
		log.Printf("Cache invalidation failed for plan %s: %v", id.Hex(), err)
	}

	return s.planRepo.FindByID(ctx, id)
}

// DeletePlan removes a plan template unless any trip still references it.
func (s *PlanTemplateService) DeletePlan(ctx context.Context, id primitive.ObjectID) error {
	count, err := s.tripRepo.CountByPlanID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrPlanTemplateInUse
	}

	if err := s.planRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, cache.PlanCacheKey(id.Hex())); err != nil {
		log.Printf("Cache invalidation failed for plan %s: %v", id.Hex(), err)
	}

	return nil
}

// CoverUploadURL issues a pre-signed PUT URL for the template's cover image
// and records the object key on the template.
func (s *PlanTemplateService) CoverUploadURL(ctx context.Context, id primitive.ObjectID, contentType string) (*models.CoverUploadResponse, error) {
	// Only issue upload URLs for templates that exist
	if _, err := s.planRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if contentType == "" {
		contentType = coverContentTypeDefault
	}

	key := storage.CoverImageKey(id.Hex(), extensionFor(contentType))
	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, contentType, CoverUploadExpiry)
	if err != nil {
		return nil, err
	}

	coverImage := key
	if _, err := s.planRepo.Update(ctx, id, &models.UpdatePlanTemplateRequest{CoverImage: &coverImage}); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, cache.PlanCacheKey(id.Hex())); err != nil {
		log.Printf("Cache invalidation failed for plan %s: %v", id.Hex(), err)
	}

	return &models.CoverUploadResponse{
		UploadURL:  uploadURL,
		CoverImage: coverImage,
	}, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// normalizePage converts page/limit into a bounded limit and skip.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return limit, (page - 1) * limit
}
