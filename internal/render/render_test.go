package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testCafe() CafeView {
	return CafeView{
		Name: "Café Verde",
		Slug: "cafe-verde",
	}
}

func TestRender_Deterministic(t *testing.T) {
	cafe := testCafe()
	cafe.Tagline = "Fresh every day"
	cats := []CategoryView{
		{
			ID:   "c1",
			Name: "Drinks",
			Icon: "☕",
			Items: []ItemView{
				{Name: "Latte", Price: 4, IsVegan: true},
				{Name: "Mocha", Price: 4.5, Calories: 280},
			},
		},
	}

	first, err := Render(cafe, cats)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := Render(cafe, cats)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if first != second {
		t.Error("expected byte-identical output for identical inputs")
	}
}

func TestRender_MissingIdentity(t *testing.T) {
	tests := []struct {
		name    string
		cafe    CafeView
		wantErr error
	}{
		{"missing name", CafeView{Slug: "cafe-verde"}, ErrMissingName},
		{"blank name", CafeView{Name: "   ", Slug: "cafe-verde"}, ErrMissingName},
		{"missing slug", CafeView{Name: "Café Verde"}, ErrMissingSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.cafe, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRender_EscapesUserContent(t *testing.T) {
	cafe := testCafe()
	cafe.Name = `<script>alert("x")</script>`

	doc, err := Render(cafe, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(doc, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;") {
		t.Error("expected escaped café name in output")
	}

	// The only <script> in the document must be the static nav wiring.
	stripped := strings.Replace(doc, renderScript(), "", 1)
	if strings.Contains(stripped, "<script>") {
		t.Error("raw <script> leaked outside the document's own script block")
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`Tom & Jerry's`, "Tom &amp; Jerry&#039;s"},
		{`<b>"hi"</b>`, "&lt;b&gt;&quot;hi&quot;&lt;/b&gt;"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := escape(tt.in); got != tt.want {
			t.Errorf("escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRender_EmptyCategories(t *testing.T) {
	doc, err := Render(testCafe(), nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(doc, "Menu coming soon") {
		t.Error("expected the coming-soon empty state")
	}
	if strings.Contains(doc, `class="category-nav"`) {
		t.Error("expected no category navigation for zero categories")
	}
}

func TestRender_EmptyCategorySection(t *testing.T) {
	cats := []CategoryView{{ID: "c1", Name: "Desserts", Icon: "🍰"}}

	doc, err := Render(testCafe(), cats)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(doc, "No items in this category yet.") {
		t.Error("expected the per-category no-items placeholder")
	}
	if !strings.Contains(doc, `class="category-nav"`) {
		t.Error("expected the nav bar to still list the empty category")
	}
	if strings.Contains(doc, "Menu coming soon") {
		t.Error("document-level empty state must not fire with one category present")
	}
}

func TestRender_BadgeOrder(t *testing.T) {
	cats := []CategoryView{{
		ID:   "c1",
		Name: "Mains",
		Items: []ItemView{
			{Name: "Bowl", Price: 9, IsVegan: true, IsNew: true, IsBestseller: true},
		},
	}}

	doc, err := Render(testCafe(), cats)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	iBest := strings.Index(doc, ">Bestseller<")
	iNew := strings.Index(doc, ">New<")
	iVegan := strings.Index(doc, ">Vegan<")
	if iBest == -1 || iNew == -1 || iVegan == -1 {
		t.Fatal("expected bestseller, new and vegan badges in the output")
	}
	if !(iBest < iNew && iNew < iVegan) {
		t.Errorf("badges out of priority order: bestseller=%d new=%d vegan=%d", iBest, iNew, iVegan)
	}
}

func TestRender_BadgeSubset(t *testing.T) {
	cats := []CategoryView{{
		ID:    "c1",
		Name:  "Mains",
		Items: []ItemView{{Name: "Steak", Price: 22}},
	}}

	doc, err := Render(testCafe(), cats)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if strings.Contains(doc, `class="badge-row"`) {
		t.Error("expected no badge row when every flag is false")
	}
}

func TestRender_PriceFormatting(t *testing.T) {
	cafe := testCafe()
	cafe.Currency = "€"
	cats := []CategoryView{{
		ID:   "c1",
		Name: "Drinks",
		Items: []ItemView{
			{Name: "Flat White", Price: 3.5},
			{Name: "Cold Brew", Price: 3, OriginalPrice: 5},
			{Name: "Water", Price: 0},
		},
	}}

	doc, err := Render(cafe, cats)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(doc, "€3.50") {
		t.Error("expected price 3.5 rendered as €3.50")
	}
	if !strings.Contains(doc, `<s class="price-original">€5.00</s>`) {
		t.Error("expected the original price struck through")
	}
	if !strings.Contains(doc, "€3.00") {
		t.Error("expected the discounted price alongside the original")
	}
	if !strings.Contains(doc, "€0.00") {
		t.Error("expected a zero price rendered as €0.00, not omitted")
	}
}

func TestRender_DefaultTheme(t *testing.T) {
	doc, err := Render(testCafe(), nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	defaults := []string{
		"--color-primary: " + DefaultPrimary,
		"--color-secondary: " + DefaultSecondary,
		"--color-accent: " + DefaultAccent,
		"--color-bg: " + DefaultBackground,
		"--color-text: " + DefaultText,
	}
	for _, want := range defaults {
		if !strings.Contains(doc, want) {
			t.Errorf("expected default theme property %q in output", want)
		}
	}
	if strings.Contains(doc, ": ;") {
		t.Error("found an empty CSS custom property value")
	}
}

func TestRender_CustomTheme(t *testing.T) {
	cafe := testCafe()
	cafe.Theme = Theme{Primary: "#112233"}

	doc, err := Render(cafe, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(doc, "--color-primary: #112233") {
		t.Error("expected the custom primary color")
	}
	if !strings.Contains(doc, "--color-secondary: "+DefaultSecondary) {
		t.Error("expected unset colors to keep their defaults")
	}
}

func TestRender_ContactBar(t *testing.T) {
	tests := []struct {
		name     string
		cafe     CafeView
		contains []string
		excludes []string
	}{
		{
			name: "all channels",
			cafe: CafeView{
				Name: "A", Slug: "a",
				Phone: "+1 555 0100", Email: "hi@a.test", Website: "https://a.test",
			},
			contains: []string{`href="tel:+1 555 0100"`, `href="mailto:hi@a.test"`, "Email Us", `href="https://a.test"`},
		},
		{
			name:     "phone only",
			cafe:     CafeView{Name: "A", Slug: "a", Phone: "+1 555 0100"},
			contains: []string{"tel:"},
			excludes: []string{"mailto:", "Email Us"},
		},
		{
			name:     "no channels",
			cafe:     CafeView{Name: "A", Slug: "a"},
			excludes: []string{`class="contact-bar"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Render(tt.cafe, nil)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(doc, want) {
					t.Errorf("expected %q in output", want)
				}
			}
			for _, not := range tt.excludes {
				if strings.Contains(doc, not) {
					t.Errorf("did not expect %q in output", not)
				}
			}
		})
	}
}

func TestRender_CafeVerdeScenario(t *testing.T) {
	cafe := CafeView{Name: "Café Verde", Slug: "cafe-verde"}
	cats := []CategoryView{{
		ID:    "drinks",
		Name:  "Drinks",
		Icon:  "☕",
		Items: []ItemView{{Name: "Latte", Price: 4, IsVegan: true}},
	}}

	doc, err := Render(cafe, cats)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(doc, `class="logo logo-placeholder"`) {
		t.Error("expected a logo placeholder glyph")
	}
	if strings.Contains(doc, `class="logo" src=`) {
		t.Error("expected no <img> logo when none is set")
	}
	if !strings.Contains(doc, `data-target="cat-drinks">☕ Drinks</button>`) {
		t.Error("expected one nav button labeled with icon and name")
	}
	if !strings.Contains(doc, "<h3>Latte</h3>") {
		t.Error("expected the item name in a card heading")
	}
	if strings.Count(doc, `<span class="badge `) != 1 || !strings.Contains(doc, ">Vegan<") {
		t.Error("expected a single vegan badge")
	}
	if !strings.Contains(doc, "4.00") {
		t.Error("expected price text ending in 4.00")
	}
}

func TestRender_FooterAndSocials(t *testing.T) {
	cafe := testCafe()
	cafe.Address = "12 Main St"
	cafe.Instagram = "cafeverde"

	doc, err := Render(cafe, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(doc, "12 Main St") {
		t.Error("expected the address in the footer")
	}
	if !strings.Contains(doc, "https://instagram.com/cafeverde") {
		t.Error("expected the instagram link")
	}
	if strings.Contains(doc, "facebook.com") {
		t.Error("expected no facebook link when the handle is absent")
	}
	if !strings.Contains(doc, "Powered by QR Café Menu") {
		t.Error("expected the powered-by attribution")
	}
}

func TestRender_CaloriesLine(t *testing.T) {
	cats := []CategoryView{{
		ID:   "c1",
		Name: "Drinks",
		Items: []ItemView{
			{Name: "Mocha", Price: 4.5, Calories: 280},
			{Name: "Espresso", Price: 2.5},
		},
	}}

	doc, err := Render(testCafe(), cats)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(doc, "280 cal") {
		t.Error("expected the calories line for Mocha")
	}
	if strings.Count(doc, " cal</p>") != 1 {
		t.Error("expected exactly one calories line")
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		currency string
		price    float64
		want     string
	}{
		{"$", 3.5, "$3.50"},
		{"€", 3, "€3.00"},
		{"$", 0, "$0.00"},
		{"₹", 199.999, "₹200.00"},
	}

	for _, tt := range tests {
		if got := formatPrice(tt.currency, tt.price); got != tt.want {
			t.Errorf("formatPrice(%q, %v) = %q, want %q", tt.currency, tt.price, got, tt.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	root := t.TempDir()

	doc, err := Render(testCafe(), nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	path, err := WriteFile(root, "cafe-verde", doc)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}

	want := filepath.Join(root, "cafe-verde", "index.html")
	if path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != doc {
		t.Error("written document does not match rendered document")
	}
}
