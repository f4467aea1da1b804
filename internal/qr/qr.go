// Package qr synthesizes the print assets for a café: the QR code image
// pointing at its public menu URL and a downloadable zip bundle.
package qr

import (
	"archive/zip"
	"fmt"
	"io"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the QR image edge length in pixels.
const DefaultSize = 512

// PNG encodes url into a QR code PNG.
func PNG(url string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}

// Bundle writes a zip archive containing the rendered menu page and its QR
// code, ready for a café owner to download and print.
func Bundle(w io.Writer, doc string, qrPNG []byte) error {
	zw := zip.NewWriter(w)

	page, err := zw.Create("index.html")
	if err != nil {
		return fmt.Errorf("create zip entry: %w", err)
	}
	if _, err := page.Write([]byte(doc)); err != nil {
		return fmt.Errorf("write menu page entry: %w", err)
	}

	img, err := zw.Create("menu-qr.png")
	if err != nil {
		return fmt.Errorf("create zip entry: %w", err)
	}
	if _, err := img.Write(qrPNG); err != nil {
		return fmt.Errorf("write qr entry: %w", err)
	}

	return zw.Close()
}
