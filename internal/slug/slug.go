// Package slug derives unique, URL-safe identifiers for café menu pages.
package slug

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/bits-and-blooms/bloom/v3"
)

// reserved are path segments that can never become café slugs because the
// server routes them itself.
var reserved = []string{
	"api", "m", "health", "admin", "static", "assets", "preview",
}

// filter sizing: comfortably above any realistic tenant count.
const (
	filterCapacity = 100_000
	filterFPRate   = 0.01
)

// ExistsFunc reports whether a slug is already taken in storage.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Generator hands out unique slugs. A bloom filter seeded with reserved
// words and known slugs answers most availability checks without touching
// storage; only a "maybe taken" answer falls through to the authoritative
// ExistsFunc.
type Generator struct {
	mu     sync.Mutex
	filter *bloom.BloomFilter
}

// NewGenerator seeds the filter with the reserved words and any slugs
// already present in storage.
func NewGenerator(existing []string) *Generator {
	f := bloom.NewWithEstimates(filterCapacity, filterFPRate)
	for _, w := range reserved {
		f.AddString(w)
	}
	for _, s := range existing {
		f.AddString(s)
	}
	return &Generator{filter: f}
}

// Make normalizes a display name into a URL-safe slug: lowercase ASCII
// letters, digits and single hyphens. Diacritics are stripped where a plain
// ASCII fold exists; everything else is dropped.
func Make(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		case unicode.IsLetter(r):
			if folded := asciiFold(r); folded != 0 {
				b.WriteByte(folded)
				lastHyphen = false
			}
		}
	}

	s := strings.TrimRight(b.String(), "-")
	if s == "" {
		return "cafe"
	}
	return s
}

// Reserve returns a free slug based on name, suffixing -2, -3, ... on
// collision, and records the result so later calls see it as taken.
func (g *Generator) Reserve(ctx context.Context, name string, exists ExistsFunc) (string, error) {
	base := Make(name)

	for i := 1; ; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}

		free, err := g.available(ctx, candidate, exists)
		if err != nil {
			return "", err
		}
		if free {
			g.mu.Lock()
			g.filter.AddString(candidate)
			g.mu.Unlock()
			return candidate, nil
		}
	}
}

func (g *Generator) available(ctx context.Context, candidate string, exists ExistsFunc) (bool, error) {
	g.mu.Lock()
	maybe := g.filter.TestString(candidate)
	g.mu.Unlock()

	// A negative filter answer is definitive: the slug is free.
	if !maybe {
		return true, nil
	}

	taken, err := exists(ctx, candidate)
	if err != nil {
		return false, fmt.Errorf("check slug %q: %w", candidate, err)
	}
	if taken {
		return false, nil
	}

	// False positive from the filter, or a reserved word that storage does
	// not know about.
	for _, w := range reserved {
		if candidate == w {
			return false, nil
		}
	}
	return true, nil
}

// asciiFold maps common accented letters to their plain ASCII form.
func asciiFold(r rune) byte {
	switch r {
	case 'à', 'á', 'â', 'ã', 'ä', 'å':
		return 'a'
	case 'ç':
		return 'c'
	case 'è', 'é', 'ê', 'ë':
		return 'e'
	case 'ì', 'í', 'î', 'ï':
		return 'i'
	case 'ñ':
		return 'n'
	case 'ò', 'ó', 'ô', 'õ', 'ö':
		return 'o'
	case 'ù', 'ú', 'û', 'ü':
		return 'u'
	case 'ý', 'ÿ':
		return 'y'
	}
	return 0
}
