package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func TestMenuPage_Published(t *testing.T) {
	f := newFixture(t)
	ownerID, token := f.registerOwner(t, "owner@test.dev")
	cafe := f.createCafe(t, ownerID, "Café Verde")

	if w := f.do(t, http.MethodPost, "/api/cafes/"+cafe.ID+"/publish", token, map[string]any{"published": true}); w.Code != http.StatusOK {
		t.Fatalf("publish status = %d", w.Code)
	}

	w := f.do(t, http.MethodGet, "/m/cafe-verde", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q, want text/html", ct)
	}
	if !strings.Contains(w.Body.String(), "Café Verde") {
		t.Error("expected the café name on the page")
	}
}

func TestMenuPage_UnpublishedIs404(t *testing.T) {
	f := newFixture(t)
	ownerID, ownerToken := f.registerOwner(t, "owner@test.dev")
	_, strangerToken := f.registerOwner(t, "stranger@test.dev")
	f.createCafe(t, ownerID, "Café Verde")

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{"anonymous", "/m/cafe-verde", "", http.StatusNotFound},
		{"anonymous preview", "/m/cafe-verde?preview=1", "", http.StatusNotFound},
		{"stranger preview", "/m/cafe-verde?preview=1", strangerToken, http.StatusNotFound},
		{"owner without preview", "/m/cafe-verde", ownerToken, http.StatusNotFound},
		{"owner preview", "/m/cafe-verde?preview=1", ownerToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodGet, tt.path, tt.token, nil)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestMenuPage_UnknownSlug(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/m/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
