package fastblur

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewImageValidation(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, channels int
		wantErr                 error
	}{
		{name: "zero width", width: 0, height: 4, channels: 3, wantErr: ErrInvalidDimensions},
		{name: "negative height", width: 4, height: -1, channels: 3, wantErr: ErrInvalidDimensions},
		{name: "zero channels", width: 4, height: 4, channels: 0, wantErr: ErrInvalidChannels},
		{name: "valid", width: 4, height: 4, channels: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage(tt.width, tt.height, tt.channels)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewImage error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && len(img.Pix()) != tt.width*tt.height*tt.channels {
				t.Errorf("pixel buffer has %d bytes", len(img.Pix()))
			}
		})
	}
}

func TestImageFromPix(t *testing.T) {
	pix := make([]uint8, 2*3*4)
	img, err := ImageFromPix(pix, 2, 3, 4)
	if err != nil {
		t.Fatalf("ImageFromPix failed: %v", err)
	}

	// The image wraps, not copies.
	img.SetAt(1, 2, 3, 255)
	if pix[(2*2+1)*4+3] != 255 {
		t.Error("mutation through the image is not visible in the wrapped buffer")
	}

	if _, err := ImageFromPix(make([]uint8, 10), 2, 3, 4); !errors.Is(err, ErrPixSizeMismatch) {
		t.Errorf("short buffer error = %v, want ErrPixSizeMismatch", err)
	}
}

func TestImageAtSetAt(t *testing.T) {
	img, err := NewImage(3, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	img.SetAt(2, 1, 1, 99)
	if got := img.At(2, 1, 1); got != 99 {
		t.Errorf("At(2,1,1) = %d, want 99", got)
	}
	if got := img.At(2, 1, 0); got != 0 {
		t.Errorf("At(2,1,0) = %d, want 0", got)
	}
}

func TestImageClone(t *testing.T) {
	img := randomImage(t, 5, 4, 3, 11)
	clone := img.Clone()

	if !bytes.Equal(img.Pix(), clone.Pix()) {
		t.Fatal("clone differs from original")
	}

	clone.SetAt(0, 0, 0, img.At(0, 0, 0)+1)
	if img.At(0, 0, 0) == clone.At(0, 0, 0) {
		t.Error("clone shares storage with the original")
	}
}

func TestPlaneRoundTrip(t *testing.T) {
	img := randomImage(t, 6, 5, 3, 12)
	orig := img.Clone()

	plane := make([]uint8, 6*5)
	for c := 0; c < 3; c++ {
		img.readPlane(c, plane)
		for y := 0; y < 5; y++ {
			for x := 0; x < 6; x++ {
				if plane[y*6+x] != img.At(x, y, c) {
					t.Fatalf("channel %d: plane[%d,%d] = %d, want %d",
						c, x, y, plane[y*6+x], img.At(x, y, c))
				}
			}
		}
		img.writePlane(c, plane)
	}

	if !bytes.Equal(img.Pix(), orig.Pix()) {
		t.Error("read+write plane round trip changed the pixel buffer")
	}
}

func TestFromStdImageNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	src.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	img, err := FromStdImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if img.Channels() != 4 || img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("converted to %dx%d/%d", img.Width(), img.Height(), img.Channels())
	}
	if img.At(2, 1, 0) != 10 || img.At(2, 1, 3) != 40 {
		t.Error("sample values lost in conversion")
	}

	// No aliasing: the conversion copies.
	src.SetNRGBA(2, 1, color.NRGBA{})
	if img.At(2, 1, 0) != 10 {
		t.Error("converted image aliases the source")
	}
}

func TestFromStdImageGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 3))
	src.Pix[4] = 200 // center

	img, err := FromStdImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if img.Channels() != 1 {
		t.Fatalf("gray converted to %d channels", img.Channels())
	}
	if img.At(1, 1, 0) != 200 {
		t.Errorf("center = %d, want 200", img.At(1, 1, 0))
	}
}

func TestFromStdImageFallback(t *testing.T) {
	// RGBA64 has no direct path and goes through the NRGBA conversion.
	src := image.NewRGBA64(image.Rect(0, 0, 2, 2))

	img, err := FromStdImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if img.Channels() != 4 || img.Width() != 2 || img.Height() != 2 {
		t.Errorf("fallback converted to %dx%d/%d", img.Width(), img.Height(), img.Channels())
	}
}

func TestNRGBARoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 5, 4))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7)
	}

	img, err := FromNRGBA(src)
	if err != nil {
		t.Fatal(err)
	}
	back, err := img.ToNRGBA()
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(src.Pix, back.Pix) {
		t.Error("NRGBA round trip changed pixel data")
	}
}

func TestToNRGBAChannelMismatch(t *testing.T) {
	img, err := NewImage(2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := img.ToNRGBA(); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("ToNRGBA on 3 channels = %v, want ErrChannelMismatch", err)
	}
	if _, err := img.ToGray(); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("ToGray on 3 channels = %v, want ErrChannelMismatch", err)
	}
}
