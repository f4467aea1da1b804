package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes a rendered document to <root>/<slug>/index.html,
// creating the per-café directory as needed. It is a thin convenience
// around Render's output, not part of the rendering contract.
func WriteFile(root, slug, doc string) (string, error) {
	dir := filepath.Join(root, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create deploy directory: %w", err)
	}

	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("write menu page: %w", err)
	}

	return path, nil
}
