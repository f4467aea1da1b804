package models

import "time"

// Category is an ordered grouping of menu items within a café.
// Inactive categories never reach the public page.
type Category struct {
	ID          string    `json:"id"`
	CafeID      string    `json:"cafeId"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
