package models

import "time"

// MenuItem is a single dish or drink. CafeID is denormalized from the
// category so café-wide listings need no join.
type MenuItem struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	CafeID      string `json:"cafeId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"` // zero means no discount display
	ImageURL      string  `json:"imageUrl,omitempty"`
	Calories      int     `json:"calories,omitempty"`

	IsVegan      bool `json:"isVegan"`
	IsVegetarian bool `json:"isVegetarian"`
	IsGlutenFree bool `json:"isGlutenFree"`
	IsSpicy      bool `json:"isSpicy"`
	IsBestseller bool `json:"isBestseller"`
	IsPopular    bool `json:"isPopular"`
	IsNew        bool `json:"isNew"`

	IsAvailable bool `json:"isAvailable"`
	SortOrder   int  `json:"sortOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
