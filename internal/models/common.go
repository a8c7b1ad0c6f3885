// Package models defines data structures for the application.
package models

// Sort keys supported by listing operations.
const (
	SortRecency = "recency"
	SortRating  = "rating"
)

// Actor is the authenticated caller as supplied by the identity collaborator.
// The user id is opaque; this core never issues or verifies credentials.
type Actor struct {
	ID        string `json:"userId"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// Pagination contains pagination metadata.
type Pagination struct {
	Limit      int `json:"limit" example:"20"`
	Skip       int `json:"skip" example:"0"`
	TotalItems int `json:"totalItems" example:"42"`
}
