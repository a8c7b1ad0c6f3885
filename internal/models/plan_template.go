package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateOnlyLayout is the calendar-date format accepted for plan dates.
const DateOnlyLayout = "2006-01-02"

// ParseDateOnly normalizes a YYYY-MM-DD string into UTC midnight of that day.
// A malformed string yields nil, which is stored as an explicit absent marker
// rather than being silently dropped or kept as text.
func ParseDateOnly(s string) *time.Time {
	t, err := time.ParseInLocation(DateOnlyLayout, s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

// Activity is a single scheduled entry within a plan day. Activities are
// ordered by start time for display purposes only; the server does not
// enforce ordering.
type Activity struct {
	ID        string  `json:"id" bson:"id" example:"507f1f77bcf86cd799439011"`
	Title     string  `json:"title" bson:"title" example:"Visit Yalong Bay"`
	Location  string  `json:"location,omitempty" bson:"location,omitempty" example:"Yalong Bay, Sanya"`
	StartTime string  `json:"startTime,omitempty" bson:"startTime,omitempty" example:"09:00"`
	EndTime   string  `json:"endTime,omitempty" bson:"endTime,omitempty" example:"11:30"`
	Type      string  `json:"type,omitempty" bson:"type,omitempty" example:"sightseeing"`
	Note      string  `json:"note,omitempty" bson:"note,omitempty"`
	Cost      float64 `json:"cost,omitempty" bson:"cost,omitempty" example:"120"`
}

// PlanDay is one day of an itinerary skeleton.
type PlanDay struct {
	DayNumber  int        `json:"dayNumber" bson:"dayNumber" example:"1"`
	Date       *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Title      string     `json:"title,omitempty" bson:"title,omitempty" example:"Arrival and beach"`
	Activities []Activity `json:"activities" bson:"activities"`
}

// PlanTemplate is a reusable, author-curated trip skeleton available for
// instantiation or marketplace browsing.
type PlanTemplate struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name        string             `json:"name" bson:"name" example:"Sanya 5-day family trip"`
	Origin      string             `json:"origin" bson:"origin" example:"Beijing"`
	Destination string             `json:"destination" bson:"destination" example:"Sanya"`
	StartDate   *time.Time         `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate     *time.Time         `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Days        []PlanDay          `json:"days" bson:"days"`
	Tags        []string           `json:"tags" bson:"tags" example:"beach,family"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CoverImage  string             `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	Rating      float64            `json:"rating" bson:"rating" example:"4.7"`
	ReviewCount int                `json:"reviewCount" bson:"reviewCount" example:"132"`
	SaleCount   int                `json:"saleCount" bson:"saleCount" example:"58"`
	UseCount    int                `json:"useCount" bson:"useCount" example:"211"`
	IsPublic    bool               `json:"isPublic" bson:"isPublic"`
	IsFeatured  bool               `json:"isFeatured" bson:"isFeatured"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at" example:"2025-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at" example:"2025-01-15T09:30:00Z"`
}

// ActivityInput is the caller-supplied form of an activity.
type ActivityInput struct {
	ID        string  `json:"id" binding:"omitempty"`
	Title     string  `json:"title" binding:"required,min=1,max=200"`
	Location  string  `json:"location" binding:"omitempty,max=200"`
	StartTime string  `json:"startTime" binding:"omitempty"`
	EndTime   string  `json:"endTime" binding:"omitempty"`
	Type      string  `json:"type" binding:"omitempty,max=50"`
	Note      string  `json:"note" binding:"omitempty,max=2000"`
	Cost      float64 `json:"cost" binding:"omitempty,gte=0"`
}

// PlanDayInput is the caller-supplied form of a plan day. The date is a
// calendar-date string; malformed values are normalized to absent.
type PlanDayInput struct {
	DayNumber  int             `json:"dayNumber" binding:"required,gte=1"`
	Date       string          `json:"date" binding:"omitempty"`
	Title      string          `json:"title" binding:"omitempty,max=200"`
	Activities []ActivityInput `json:"activities" binding:"omitempty,dive"`
}

// CreatePlanTemplateRequest is the payload for creating a plan template.
type CreatePlanTemplateRequest struct {
	Name        string         `json:"name" binding:"required,min=1,max=200" example:"Sanya 5-day family trip"`
	Origin      string         `json:"origin" binding:"required,min=1,max=100" example:"Beijing"`
	Destination string         `json:"destination" binding:"required,min=1,max=100" example:"Sanya"`
	StartDate   string         `json:"startDate" binding:"required,dateonly" example:"2025-06-01"`
	EndDate     string         `json:"endDate" binding:"required,dateonly" example:"2025-06-05"`
	Days        []PlanDayInput `json:"days" binding:"omitempty,dive"`
	Tags        []string       `json:"tags" binding:"omitempty,max=20"`
	Description string         `json:"description" binding:"omitempty,max=5000"`
	CoverImage  string         `json:"coverImage" binding:"omitempty,max=500"`
	IsPublic    bool           `json:"isPublic"`
}

// UpdatePlanTemplateRequest is the merge patch for a plan template. Only
// non-nil fields are applied; date strings are re-normalized on the way in.
type UpdatePlanTemplateRequest struct {
	Name        *string         `json:"name" binding:"omitempty,min=1,max=200"`
	Origin      *string         `json:"origin" binding:"omitempty,min=1,max=100"`
	Destination *string         `json:"destination" binding:"omitempty,min=1,max=100"`
	StartDate   *string         `json:"startDate" binding:"omitempty"`
	EndDate     *string         `json:"endDate" binding:"omitempty"`
	Days        *[]PlanDayInput `json:"days" binding:"omitempty,dive"`
	Tags        *[]string       `json:"tags" binding:"omitempty,max=20"`
	Description *string         `json:"description" binding:"omitempty,max=5000"`
	CoverImage  *string         `json:"coverImage" binding:"omitempty,max=500"`
	IsPublic    *bool           `json:"isPublic"`
	IsFeatured  *bool           `json:"isFeatured"`
	Rating      *float64        `json:"rating" binding:"omitempty,gte=0,lte=5"`
	ReviewCount *int            `json:"reviewCount" binding:"omitempty,gte=0"`
}

// PlanTemplateListResponse is the response for listing plan templates.
type PlanTemplateListResponse struct {
	Items      []PlanTemplate `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

// CoverUploadResponse carries a pre-signed upload URL for a cover image.
type CoverUploadResponse struct {
	UploadURL  string `json:"uploadUrl"`
	CoverImage string `json:"coverImage"`
}

// DaysFromInput converts caller-supplied days, normalizing each date string.
func DaysFromInput(inputs []PlanDayInput) []PlanDay {
	if inputs == nil {
		return nil
	}
	days := make([]PlanDay, 0, len(inputs))
	for _, in := range inputs {
		day := PlanDay{
			DayNumber:  in.DayNumber,
			Date:       ParseDateOnly(in.Date),
			Title:      in.Title,
			Activities: activitiesFromInput(in.Activities),
		}
		days = append(days, day)
	}
	return days
}

func activitiesFromInput(inputs []ActivityInput) []Activity {
	activities := make([]Activity, 0, len(inputs))
	for _, in := range inputs {
		activities = append(activities, Activity{
			ID:        in.ID,
			Title:     in.Title,
			Location:  in.Location,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Type:      in.Type,
			Note:      in.Note,
			Cost:      in.Cost,
		})
	}
	return activities
}

// ValidateDayNumbers checks that day numbers are unique and contiguous
// starting at 1.
func ValidateDayNumbers(days []PlanDayInput) bool {
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if d.DayNumber < 1 || d.DayNumber > len(days) || seen[d.DayNumber] {
			return false
		}
		seen[d.DayNumber] = true
	}
	return true
}
