// Package render turns a café's branding and menu data into a complete,
// self-contained HTML document. Rendering is a pure projection: it performs
// no I/O, never mutates its inputs, and produces byte-identical output for
// identical input.
package render

// CafeView is the read-only café projection consumed by Render.
// Name and Slug are required; every other field is optional and falls back
// to a documented default or is omitted from the page.
type CafeView struct {
	Name        string
	Slug        string
	Tagline     string
	Description string

	LogoURL       string
	CoverImageURL string

	Phone   string
	Email   string
	Address string
	Website string

	Instagram string
	Facebook  string

	Currency string
	Theme    Theme
}

// CategoryView carries a category and its already-filtered, already-ordered
// items. The caller is responsible for excluding inactive categories and
// unavailable items before rendering.
type CategoryView struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Items       []ItemView
}

// ItemView is a single menu item as displayed on the page.
type ItemView struct {
	Name        string
	Description string

	Price         float64
	OriginalPrice float64 // zero means no strike-through display
	ImageURL      string
	Calories      int

	IsVegan      bool
	IsVegetarian bool
	IsGlutenFree bool
	IsSpicy      bool
	IsBestseller bool
	IsNew        bool
}
