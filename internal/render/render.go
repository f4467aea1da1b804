package render

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingName = errors.New("cafe name is required")
	ErrMissingSlug = errors.New("cafe slug is required")
)

// Render produces the complete standalone menu page for a café.
//
// The document is assembled from independently rendered sections (head and
// theme, header, contact bar, category nav, category sections, footer,
// behavior script) so every text insertion point goes through the one
// escape transform. Missing optional fields degrade to omission or a
// documented default; the only errors are a missing name or slug.
func Render(cafe CafeView, categories []CategoryView) (string, error) {
	if strings.TrimSpace(cafe.Name) == "" {
		return "", ErrMissingName
	}
	if strings.TrimSpace(cafe.Slug) == "" {
		return "", ErrMissingSlug
	}

	theme := cafe.Theme.withDefaults()
	currency := cafe.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	sections := []string{
		renderHead(cafe, theme),
		"<body>\n",
		renderHeader(cafe),
		renderContactBar(cafe),
		renderNav(categories),
		renderCategories(categories, currency),
		renderFooter(cafe),
		renderScript(),
		"</body>\n</html>\n",
	}

	var b strings.Builder
	for _, s := range sections {
		b.WriteString(s)
	}
	return b.String(), nil
}

func renderHead(cafe CafeView, theme Theme) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")

	b.WriteString("<title>" + escape(cafe.Name) + " · Menu</title>\n")
	if cafe.Tagline != "" {
		b.WriteString("<meta name=\"description\" content=\"" + escape(cafe.Tagline) + "\">\n")
	}

	b.WriteString("<style>\n:root {\n")
	b.WriteString("  --color-primary: " + theme.Primary + ";\n")
	b.WriteString("  --color-secondary: " + theme.Secondary + ";\n")
	b.WriteString("  --color-accent: " + theme.Accent + ";\n")
	b.WriteString("  --color-bg: " + theme.Background + ";\n")
	b.WriteString("  --color-text: " + theme.Text + ";\n")
	b.WriteString("}\n")
	b.WriteString(stylesheet)
	b.WriteString("</style>\n</head>\n")

	return b.String()
}

func renderHeader(cafe CafeView) string {
	var b strings.Builder

	if cafe.CoverImageURL != "" {
		b.WriteString("<header class=\"hero\" style=\"background-image: url('" + cafe.CoverImageURL + "')\">\n")
	} else {
		b.WriteString("<header class=\"hero\">\n")
	}

	if cafe.LogoURL != "" {
		b.WriteString("<img class=\"logo\" src=\"" + cafe.LogoURL + "\" alt=\"" + escape(cafe.Name) + "\">\n")
	} else {
		b.WriteString("<div class=\"logo logo-placeholder\">" + logoPlaceholder + "</div>\n")
	}

	b.WriteString("<h1>" + escape(cafe.Name) + "</h1>\n")
	if cafe.Tagline != "" {
		b.WriteString("<p class=\"tagline\">" + escape(cafe.Tagline) + "</p>\n")
	}
	b.WriteString("</header>\n")

	return b.String()
}

func renderContactBar(cafe CafeView) string {
	var links []string

	if cafe.Phone != "" {
		links = append(links, "<a class=\"contact-link\" href=\"tel:"+cafe.Phone+"\">"+escape(cafe.Phone)+"</a>")
	}
	if cafe.Email != "" {
		links = append(links, "<a class=\"contact-link\" href=\"mailto:"+cafe.Email+"\">Email Us</a>")
	}
	if cafe.Website != "" {
		links = append(links, "<a class=\"contact-link\" href=\""+cafe.Website+"\" target=\"_blank\" rel=\"noopener\">Website</a>")
	}

	if len(links) == 0 {
		return ""
	}
	return "<div class=\"contact-bar\">\n" + strings.Join(links, "\n") + "\n</div>\n"
}

func renderNav(categories []CategoryView) string {
	if len(categories) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<nav class=\"category-nav\">\n")
	for i, cat := range categories {
		class := "nav-btn"
		if i == 0 {
			class = "nav-btn active"
		}
		b.WriteString("<button class=\"" + class + "\" data-target=\"cat-" + cat.ID + "\">" +
			categoryIcon(cat) + " " + escape(cat.Name) + "</button>\n")
	}
	b.WriteString("</nav>\n")
	return b.String()
}

func renderCategories(categories []CategoryView, currency string) string {
	if len(categories) == 0 {
		return renderEmptyState()
	}

	var b strings.Builder
	b.WriteString("<main class=\"menu\">\n")
	for _, cat := range categories {
		b.WriteString(renderCategorySection(cat, currency))
	}
	b.WriteString("</main>\n")
	return b.String()
}

func renderEmptyState() string {
	return `<main class="menu">
<div class="empty-state">
<div class="empty-icon">` + logoPlaceholder + `</div>
<h2>Menu coming soon</h2>
<p>This café is still setting up its menu. Check back shortly.</p>
</div>
</main>
`
}

func renderCategorySection(cat CategoryView, currency string) string {
	var b strings.Builder

	b.WriteString("<section class=\"category-section\" id=\"cat-" + cat.ID + "\">\n")
	b.WriteString("<h2><span class=\"category-icon\">" + categoryIcon(cat) + "</span> " + escape(cat.Name) + "</h2>\n")
	if cat.Description != "" {
		b.WriteString("<p class=\"category-description\">" + escape(cat.Description) + "</p>\n")
	}

	if len(cat.Items) == 0 {
		b.WriteString("<p class=\"no-items\">No items in this category yet.</p>\n")
	} else {
		b.WriteString("<div class=\"item-grid\">\n")
		for _, item := range cat.Items {
			b.WriteString(renderItemCard(item, currency))
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</section>\n")
	return b.String()
}

func renderItemCard(item ItemView, currency string) string {
	var b strings.Builder

	b.WriteString("<article class=\"item-card\">\n")

	if item.ImageURL != "" {
		b.WriteString("<img class=\"item-image\" src=\"" + item.ImageURL + "\" alt=\"" + escape(item.Name) + "\">\n")
	} else {
		b.WriteString("<div class=\"item-image item-image-placeholder\">" + imagePlaceholder + "</div>\n")
	}

	b.WriteString("<div class=\"item-body\">\n")
	b.WriteString("<div class=\"item-top\">\n")
	b.WriteString("<h3>" + escape(item.Name) + "</h3>\n")
	b.WriteString(renderPrice(item, currency))
	b.WriteString("</div>\n")

	if badges := renderBadges(item); badges != "" {
		b.WriteString(badges)
	}

	if item.Description != "" {
		b.WriteString("<p class=\"item-description\">" + escape(item.Description) + "</p>\n")
	}
	if item.Calories > 0 {
		b.WriteString(fmt.Sprintf("<p class=\"item-calories\">%d cal</p>\n", item.Calories))
	}

	b.WriteString("</div>\n</article>\n")
	return b.String()
}

func renderPrice(item ItemView, currency string) string {
	if item.OriginalPrice > 0 {
		return "<div class=\"item-price\"><s class=\"price-original\">" + formatPrice(currency, item.OriginalPrice) +
			"</s> <span class=\"price\">" + formatPrice(currency, item.Price) + "</span></div>\n"
	}
	return "<div class=\"item-price\"><span class=\"price\">" + formatPrice(currency, item.Price) + "</span></div>\n"
}

// renderBadges emits an item's dietary and promotional badges in a fixed
// priority order, independent of how the flags were set.
func renderBadges(item ItemView) string {
	type badge struct {
		on    bool
		class string
		label string
	}
	badges := []badge{
		{item.IsBestseller, "badge-bestseller", "Bestseller"},
		{item.IsNew, "badge-new", "New"},
		{item.IsVegan, "badge-vegan", "Vegan"},
		{item.IsVegetarian, "badge-vegetarian", "Vegetarian"},
		{item.IsSpicy, "badge-spicy", "Spicy"},
		{item.IsGlutenFree, "badge-gluten-free", "Gluten-Free"},
	}

	var parts []string
	for _, bd := range badges {
		if bd.on {
			parts = append(parts, "<span class=\"badge "+bd.class+"\">"+bd.label+"</span>")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "<div class=\"badge-row\">" + strings.Join(parts, "") + "</div>\n"
}

func renderFooter(cafe CafeView) string {
	var b strings.Builder

	b.WriteString("<footer>\n")
	b.WriteString("<p class=\"footer-name\">" + escape(cafe.Name) + "</p>\n")
	if cafe.Address != "" {
		b.WriteString("<p class=\"footer-address\">" + escape(cafe.Address) + "</p>\n")
	}

	var socials []string
	if cafe.Instagram != "" {
		socials = append(socials, "<a class=\"social-link\" href=\"https://instagram.com/"+cafe.Instagram+"\" target=\"_blank\" rel=\"noopener\">Instagram</a>")
	}
	if cafe.Facebook != "" {
		socials = append(socials, "<a class=\"social-link\" href=\"https://facebook.com/"+cafe.Facebook+"\" target=\"_blank\" rel=\"noopener\">Facebook</a>")
	}
	if len(socials) > 0 {
		b.WriteString("<div class=\"social-row\">" + strings.Join(socials, " ") + "</div>\n")
	}

	b.WriteString("<p class=\"powered-by\">Powered by QR Café Menu</p>\n")
	b.WriteString("</footer>\n")
	return b.String()
}

func categoryIcon(cat CategoryView) string {
	if cat.Icon == "" {
		return imagePlaceholder
	}
	return cat.Icon
}

// renderScript emits the category navigation wiring: clicking a nav button
// scrolls its section into view, and a section crossing 30% visibility marks
// its button active.
func renderScript() string {
	return `<script>
(function () {
  var buttons = document.querySelectorAll('.nav-btn');
  var sections = document.querySelectorAll('.category-section');

  function setActive(id) {
    buttons.forEach(function (b) {
      b.classList.toggle('active', b.dataset.target === id);
    });
  }

  buttons.forEach(function (btn) {
    btn.addEventListener('click', function () {
      var target = document.getElementById(btn.dataset.target);
      if (target) {
        target.scrollIntoView({ behavior: 'smooth', block: 'start' });
      }
      setActive(btn.dataset.target);
    });
  });

  var observer = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (entry.isIntersecting) {
        setActive(entry.target.id);
      }
    });
  }, { threshold: 0.3 });

  sections.forEach(function (s) { observer.observe(s); });
})();
</script>
`
}
