// Package imgio loads and saves images for the fastblur command line tool.
// Format support: PNG, JPEG, and GIF from the standard library; BMP, TIFF,
// and WebP via golang.org/x/image (WebP is decode-only upstream).
package imgio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Decode-only format.
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when the output extension does not map
// to a supported encoder.
var ErrUnsupportedFormat = errors.New("imgio: unsupported format")

// Load reads an image from path, auto-detecting the format from content.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imgio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imgio: decode: %w", err)
	}
	return img, nil
}

// Save writes img to path, choosing the encoder from the file extension.
// quality applies to JPEG only (1-100).
func Save(path string, img image.Image, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imgio: create file: %w", err)
	}

	if err := encode(f, img, filepath.Ext(path), quality); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func encode(f *os.File, img image.Image, ext string, quality int) error {
	switch strings.ToLower(ext) {
	case ".png":
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("imgio: encode PNG: %w", err)
		}
	case ".jpg", ".jpeg":
		if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("imgio: encode JPEG: %w", err)
		}
	case ".gif":
		if err := gif.Encode(f, img, nil); err != nil {
			return fmt.Errorf("imgio: encode GIF: %w", err)
		}
	case ".bmp":
		if err := bmp.Encode(f, img); err != nil {
			return fmt.Errorf("imgio: encode BMP: %w", err)
		}
	case ".tif", ".tiff":
		if err := tiff.Encode(f, img, nil); err != nil {
			return fmt.Errorf("imgio: encode TIFF: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}
