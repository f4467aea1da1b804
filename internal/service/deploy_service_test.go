package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/config"
	"github.com/Tanishagodhaa/qr-cafe-menu/pkg/logger"
)

func newDeployFixture(t *testing.T, published bool) (*DeployService, *menuFixture, string) {
	t.Helper()

	f := newMenuFixture(t, published)
	root := t.TempDir()
	cfg := config.DeployConfig{
		Root:          root,
		PublicBaseURL: "https://menus.example.com",
	}
	svc := NewDeployService(f.cafes, f.menu, nil, cfg, logger.New("error"))
	return svc, f, root
}

func TestDeploy(t *testing.T) {
	svc, f, root := newDeployFixture(t, true)
	f.addCategory(t, "c1", 0, true)
	f.addItem(t, "i1", "c1", true)

	result, err := svc.Deploy(context.Background(), "owner-1", "cafe-1")
	if err != nil {
		t.Fatalf("deploy failed: %v", err)
	}

	if result.URL != "https://menus.example.com/m/cafe-verde" {
		t.Errorf("url = %q", result.URL)
	}

	wantPath := filepath.Join(root, "cafe-verde", "index.html")
	if result.Path != wantPath {
		t.Errorf("path = %q, want %q", result.Path, wantPath)
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Errorf("deployed page missing: %v", err)
	}

	cafe, err := f.cafes.GetByID(context.Background(), "cafe-1")
	if err != nil {
		t.Fatalf("reload cafe: %v", err)
	}
	if !cafe.IsDeployed {
		t.Error("expected the deployed flag set")
	}
	if cafe.DeployedURL != result.URL {
		t.Errorf("deployed url = %q, want %q", cafe.DeployedURL, result.URL)
	}
}

func TestDeploy_Idempotent(t *testing.T) {
	svc, f, _ := newDeployFixture(t, true)
	f.addCategory(t, "c1", 0, true)

	first, err := svc.Deploy(context.Background(), "owner-1", "cafe-1")
	if err != nil {
		t.Fatalf("deploy failed: %v", err)
	}
	firstDoc, err := os.ReadFile(first.Path)
	if err != nil {
		t.Fatalf("read first deploy: %v", err)
	}

	second, err := svc.Deploy(context.Background(), "owner-1", "cafe-1")
	if err != nil {
		t.Fatalf("redeploy failed: %v", err)
	}
	secondDoc, err := os.ReadFile(second.Path)
	if err != nil {
		t.Fatalf("read second deploy: %v", err)
	}

	if string(firstDoc) != string(secondDoc) {
		t.Error("redeploy with unchanged data must produce identical content")
	}
	if first.URL != second.URL {
		t.Errorf("urls differ: %q vs %q", first.URL, second.URL)
	}
}

func TestDeploy_RequiresPublished(t *testing.T) {
	svc, _, _ := newDeployFixture(t, false)

	_, err := svc.Deploy(context.Background(), "owner-1", "cafe-1")
	if !errors.Is(err, ErrNotPublished) {
		t.Errorf("err = %v, want ErrNotPublished", err)
	}
}

func TestDeploy_Ownership(t *testing.T) {
	svc, _, _ := newDeployFixture(t, true)

	_, err := svc.Deploy(context.Background(), "intruder", "cafe-1")
	if !errors.Is(err, ErrNotOwner) {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}
}

func TestPublicURL(t *testing.T) {
	svc, _, _ := newDeployFixture(t, true)

	if got := svc.PublicURL("cafe-verde"); got != "https://menus.example.com/m/cafe-verde" {
		t.Errorf("url = %q", got)
	}
}
