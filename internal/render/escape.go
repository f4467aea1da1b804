package render

import (
	"strconv"
	"strings"
)

// escape is the single HTML-escaping transform applied at every point where
// user-controlled text is inserted into markup. The replacement order
// matters: ampersand first, so already-produced entities are never
// double-escaped.
//
// Fields inserted into URL/attribute position (logo src, website href,
// tel: links) deliberately bypass this transform; validating those is the
// admin input layer's responsibility.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#039;")
	return s
}

// formatPrice renders a price as the currency symbol followed by the amount
// with exactly two decimals. A zero price still renders as "0.00"; there is
// no "call for price" state.
func formatPrice(currency string, price float64) string {
	return currency + strconv.FormatFloat(price, 'f', 2, 64)
}
