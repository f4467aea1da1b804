package models

import "time"

// Cafe is a tenant: one owner-managed menu with its own slug, branding and
// publication state.
type Cafe struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline,omitempty"`
	Description string `json:"description,omitempty"`

	LogoURL       string `json:"logoUrl,omitempty"`
	CoverImageURL string `json:"coverImageUrl,omitempty"`

	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`

	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`

	CurrencySymbol  string `json:"currencySymbol,omitempty"`
	PrimaryColor    string `json:"primaryColor,omitempty"`
	SecondaryColor  string `json:"secondaryColor,omitempty"`
	AccentColor     string `json:"accentColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`

	IsPublished bool   `json:"isPublished"`
	IsDeployed  bool   `json:"isDeployed"`
	DeployedURL string `json:"deployedUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
