package models

import "time"

// Activity is an audit log entry recorded against a café.
type Activity struct {
	ID        string    `json:"id"`
	CafeID    string    `json:"cafeId"`
	UserID    string    `json:"userId,omitempty"`
	Action    string    `json:"action"` // e.g. "cafe.created", "menu.deployed"
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
