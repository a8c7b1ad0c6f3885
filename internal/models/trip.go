package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip role constants. The creator always holds the owner role; invited
// collaborators typically hold edit.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleEdit   = "edit"
	RoleViewer = "viewer"
)

// PublishStatus is the marketplace visibility state of a trip.
type PublishStatus string

const (
	PublishDraft         PublishStatus = "draft"
	PublishPendingReview PublishStatus = "pending_review"
	PublishPublished     PublishStatus = "published"
	PublishRejected      PublishStatus = "rejected"
	PublishArchived      PublishStatus = "archived"
)

// publishTransitions is the one-directional publish lifecycle. The only
// backward edge is rejected -> draft (resubmission).
var publishTransitions = map[PublishStatus][]PublishStatus{
	PublishDraft:         {PublishPendingReview},
	PublishPendingReview: {PublishPublished, PublishRejected},
	PublishPublished:     {PublishArchived},
	PublishRejected:      {PublishDraft},
	PublishArchived:      {},
}

// CanTransitionTo reports whether the publish status may move to next.
func (s PublishStatus) CanTransitionTo(next PublishStatus) bool {
	for _, allowed := range publishTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TravelStatus is the execution state of a trip. Transitions are free.
type TravelStatus string

const (
	TravelPlanning  TravelStatus = "planning"
	TravelTraveling TravelStatus = "traveling"
	TravelCompleted TravelStatus = "completed"
)

// TripMember is a user associated with a trip via a role.
type TripMember struct {
	UserID    string `json:"userId" bson:"userId" binding:"required" example:"u-8f2d1c"`
	Name      string `json:"name" bson:"name" binding:"required,min=1,max=100" example:"Alice"`
	AvatarURL string `json:"avatarUrl" bson:"avatarUrl" binding:"omitempty,max=500" example:"https://cdn.example.com/a.png"`
	Role      string `json:"role" bson:"role" binding:"omitempty,triprole" example:"edit"`
}

// TripMessage is an append-only chat entry on a trip.
type TripMessage struct {
	ID        string    `json:"id" bson:"id"`
	SenderID  string    `json:"senderId" bson:"senderId"`
	Content   string    `json:"content" bson:"content"`
	Type      string    `json:"type" bson:"type" example:"text"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// TicketDetails holds the structured fields of a ticket. All fields are
// optional; which ones apply depends on the ticket type.
type TicketDetails struct {
	Carrier  string     `json:"carrier,omitempty" bson:"carrier,omitempty" example:"CA1389"`
	Number   string     `json:"number,omitempty" bson:"number,omitempty"`
	Seat     string     `json:"seat,omitempty" bson:"seat,omitempty" example:"23A"`
	Venue    string     `json:"venue,omitempty" bson:"venue,omitempty"`
	DepartAt *time.Time `json:"departAt,omitempty" bson:"departAt,omitempty"`
	ArriveAt *time.Time `json:"arriveAt,omitempty" bson:"arriveAt,omitempty"`
	Price    float64    `json:"price,omitempty" bson:"price,omitempty"`
}

// TripTicket is an append-only booking record on a trip.
type TripTicket struct {
	ID      string        `json:"id" bson:"id"`
	Type    string        `json:"type" bson:"type" example:"flight"`
	Title   string        `json:"title" bson:"title" example:"Beijing to Sanya"`
	Details TicketDetails `json:"details" bson:"details"`
}

// TripNote is an append-only free-text note on a trip.
type TripNote struct {
	ID        string    `json:"id" bson:"id"`
	Content   string    `json:"content" bson:"content"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// TripFeedEntry is an append-only activity-feed entry on a trip.
type TripFeedEntry struct {
	ID        string    `json:"id" bson:"id"`
	Content   string    `json:"content" bson:"content"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// Trip is a user-owned, independently editable trip instance, optionally
// derived from a PlanTemplate. Fields seeded from a template at creation
// time are owned by the trip and never re-synced.
type Trip struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	PlanID        *primitive.ObjectID `json:"plan_id,omitempty" bson:"plan_id,omitempty"`
	CreatorID     string              `json:"creator_id" bson:"creator_id" example:"u-8f2d1c"`
	Name          string              `json:"name" bson:"name" example:"Our Sanya trip"`
	Destination   string              `json:"destination,omitempty" bson:"destination,omitempty" example:"Sanya"`
	StartDate     *time.Time          `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate       *time.Time          `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Days          []PlanDay           `json:"days,omitempty" bson:"days,omitempty"`
	Tags          []string            `json:"tags,omitempty" bson:"tags,omitempty"`
	Description   string              `json:"description,omitempty" bson:"description,omitempty"`
	PublishStatus PublishStatus       `json:"publish_status" bson:"publish_status" example:"draft"`
	TravelStatus  TravelStatus        `json:"travel_status" bson:"travel_status" example:"planning"`
	Members       []TripMember        `json:"members" bson:"members"`
	Messages      []TripMessage       `json:"messages" bson:"messages"`
	Tickets       []TripTicket        `json:"tickets" bson:"tickets"`
	Notes         []TripNote          `json:"notes" bson:"notes"`
	Feeds         []TripFeedEntry     `json:"feeds" bson:"feeds"`
	CreatedAt     time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at" bson:"updated_at"`
}

// Member returns the member entry for the given user id, or nil.
func (t *Trip) Member(userID string) *TripMember {
	for i := range t.Members {
		if t.Members[i].UserID == userID {
			return &t.Members[i]
		}
	}
	return nil
}

// TripWithPlan is a trip with its referenced template populated at read
// time. PlanDetails is absent when the trip has no template reference or
// the template no longer exists; that is not an error.
type TripWithPlan struct {
	Trip        `bson:",inline"`
	PlanDetails *PlanTemplate `json:"plan_details,omitempty" bson:"plan_details,omitempty"`
}

// CreateTripRequest is the payload for creating a trip. The creator is
// taken from the authenticated context, never from the body. Template
// content is copied by the caller at creation time if desired; referencing
// a template alone is enough for read-time population.
type CreateTripRequest struct {
	PlanID      string         `json:"plan_id" binding:"omitempty"`
	Name        string         `json:"name" binding:"required,min=1,max=200" example:"Our Sanya trip"`
	Destination string         `json:"destination" binding:"omitempty,max=100"`
	StartDate   string         `json:"startDate" binding:"omitempty"`
	EndDate     string         `json:"endDate" binding:"omitempty"`
	Days        []PlanDayInput `json:"days" binding:"omitempty,dive"`
	Tags        []string       `json:"tags" binding:"omitempty,max=20"`
	Description string         `json:"description" binding:"omitempty,max=5000"`
	Members     []TripMember   `json:"members" binding:"omitempty,dive"`
}

// UpdateTripRequest is the merge patch for a trip. Identity and template
// reference are not patchable.
type UpdateTripRequest struct {
	Name          *string         `json:"name" binding:"omitempty,min=1,max=200"`
	Destination   *string         `json:"destination" binding:"omitempty,max=100"`
	StartDate     *string         `json:"startDate" binding:"omitempty"`
	EndDate       *string         `json:"endDate" binding:"omitempty"`
	Days          *[]PlanDayInput `json:"days" binding:"omitempty,dive"`
	Tags          *[]string       `json:"tags" binding:"omitempty,max=20"`
	Description   *string         `json:"description" binding:"omitempty,max=5000"`
	PublishStatus *PublishStatus  `json:"publish_status" binding:"omitempty,oneof=draft pending_review published rejected archived"`
	TravelStatus  *TravelStatus   `json:"travel_status" binding:"omitempty,oneof=planning traveling completed"`
}

// AddMemberRequest is the payload for adding a trip member directly.
type AddMemberRequest struct {
	UserID    string `json:"userId" binding:"required" example:"u-41ac99"`
	Name      string `json:"name" binding:"required,min=1,max=100" example:"Bob"`
	AvatarURL string `json:"avatarUrl" binding:"omitempty,max=500"`
	Role      string `json:"role" binding:"omitempty,oneof=admin edit viewer" example:"edit"`
}

// AddMessageRequest is the payload for appending a message.
type AddMessageRequest struct {
	ID      string `json:"id" binding:"omitempty"`
	Content string `json:"content" binding:"required,min=1,max=5000"`
	Type    string `json:"type" binding:"required,max=50" example:"text"`
}

// AddTicketRequest is the payload for appending a ticket.
type AddTicketRequest struct {
	ID      string        `json:"id" binding:"omitempty"`
	Type    string        `json:"type" binding:"required,max=50" example:"flight"`
	Title   string        `json:"title" binding:"required,min=1,max=200"`
	Details TicketDetails `json:"details"`
}

// AddNoteRequest is the payload for appending a note.
type AddNoteRequest struct {
	ID      string `json:"id" binding:"omitempty"`
	Content string `json:"content" binding:"required,min=1,max=10000"`
}

// AddFeedEntryRequest is the payload for appending a feed entry.
type AddFeedEntryRequest struct {
	ID      string `json:"id" binding:"omitempty"`
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// TripListResponse is the response for listing trips.
type TripListResponse struct {
	Items      []TripWithPlan `json:"items"`
	Pagination Pagination     `json:"pagination"`
}
