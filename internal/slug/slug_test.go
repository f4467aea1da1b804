package slug

import (
	"context"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Café Verde", "cafe-verde"},
		{"The Coffee  House", "the-coffee-house"},
		{"Joe's Diner!", "joes-diner"},
		{"  --Bistro_21--  ", "bistro-21"},
		{"日本茶屋", "cafe"},
		{"", "cafe"},
		{"UPPER case", "upper-case"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Make(tt.in); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func neverExists(ctx context.Context, slug string) (bool, error) {
	return false, nil
}

func TestReserve_Free(t *testing.T) {
	g := NewGenerator(nil)

	got, err := g.Reserve(context.Background(), "Café Verde", neverExists)
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if got != "cafe-verde" {
		t.Errorf("slug = %q, want cafe-verde", got)
	}
}

func TestReserve_CollisionSuffix(t *testing.T) {
	g := NewGenerator([]string{"cafe-verde", "cafe-verde-2"})
	taken := map[string]bool{"cafe-verde": true, "cafe-verde-2": true}

	exists := func(ctx context.Context, s string) (bool, error) {
		return taken[s], nil
	}

	got, err := g.Reserve(context.Background(), "Café Verde", exists)
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if got != "cafe-verde-3" {
		t.Errorf("slug = %q, want cafe-verde-3", got)
	}
}

func TestReserve_ReservedWord(t *testing.T) {
	g := NewGenerator(nil)

	got, err := g.Reserve(context.Background(), "API", neverExists)
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if got != "api-2" {
		t.Errorf("slug = %q, want api-2", got)
	}
}

func TestReserve_RemembersOwnGrants(t *testing.T) {
	g := NewGenerator(nil)
	taken := map[string]bool{}

	exists := func(ctx context.Context, s string) (bool, error) {
		return taken[s], nil
	}

	first, err := g.Reserve(context.Background(), "Latte Lab", exists)
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	taken[first] = true

	second, err := g.Reserve(context.Background(), "Latte Lab", exists)
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}

	if first == second {
		t.Errorf("expected a distinct slug, both were %q", first)
	}
	if second != "latte-lab-2" {
		t.Errorf("slug = %q, want latte-lab-2", second)
	}
}
