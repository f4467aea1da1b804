package render

// Theme is the five-color palette driving a café's page styling.
type Theme struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Text       string
}

// Default theme colors. Every color field has a safe default so the page
// never carries an undefined CSS custom property.
const (
	DefaultPrimary    = "#6F4E37"
	DefaultSecondary  = "#A67B5B"
	DefaultAccent     = "#E8B04B"
	DefaultBackground = "#FAF6F0"
	DefaultText       = "#2D2A26"

	// DefaultCurrency is used when a café has no currency symbol set.
	DefaultCurrency = "$"

	// Placeholder glyphs shown in place of a missing logo or item image.
	logoPlaceholder  = "☕"
	imagePlaceholder = "🍽️"
)

// withDefaults fills any unset color with its default literal.
func (t Theme) withDefaults() Theme {
	if t.Primary == "" {
		t.Primary = DefaultPrimary
	}
	if t.Secondary == "" {
		t.Secondary = DefaultSecondary
	}
	if t.Accent == "" {
		t.Accent = DefaultAccent
	}
	if t.Background == "" {
		t.Background = DefaultBackground
	}
	if t.Text == "" {
		t.Text = DefaultText
	}
	return t
}
