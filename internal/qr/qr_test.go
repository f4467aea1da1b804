package qr

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestPNG(t *testing.T) {
	png, err := PNG("https://menus.example.com/m/cafe-verde", 256)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("expected PNG bytes")
	}

	// PNG magic header
	if !bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("output is not a PNG")
	}
}

func TestPNG_DefaultSize(t *testing.T) {
	png, err := PNG("https://menus.example.com/m/cafe-verde", 0)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("expected PNG bytes with the default size")
	}
}

func TestBundle(t *testing.T) {
	png, err := PNG("https://menus.example.com/m/cafe-verde", 128)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Bundle(&buf, "<html>menu</html>", png); err != nil {
		t.Fatalf("bundle failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	if !names["index.html"] || !names["menu-qr.png"] {
		t.Errorf("missing zip entries, got %v", names)
	}
}
