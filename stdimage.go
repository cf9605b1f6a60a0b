package fastblur

import (
	"errors"
	"image"
	"image/draw"
)

// ErrChannelMismatch is returned when exporting an image whose channel
// count does not match the requested standard format.
var ErrChannelMismatch = errors.New("fastblur: channel count does not match target format")

// FromStdImage converts a standard library image into a blurable Image.
// *image.NRGBA, *image.RGBA, and *image.Gray are copied directly; any other
// type goes through an NRGBA conversion first. The result never aliases
// the source.
func FromStdImage(src image.Image) (*Image, error) {
	switch img := src.(type) {
	case *image.NRGBA:
		return fromInterleaved(img.Pix, img.Stride, img.Rect, 4)
	case *image.RGBA:
		return fromInterleaved(img.Pix, img.Stride, img.Rect, 4)
	case *image.Gray:
		return fromInterleaved(img.Pix, img.Stride, img.Rect, 1)
	}

	b := src.Bounds()
	tmp := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(tmp, tmp.Bounds(), src, b.Min, draw.Src)
	return fromInterleaved(tmp.Pix, tmp.Stride, tmp.Rect, 4)
}

// FromNRGBA converts a non-premultiplied RGBA image into a 4-channel Image.
func FromNRGBA(src *image.NRGBA) (*Image, error) {
	return fromInterleaved(src.Pix, src.Stride, src.Rect, 4)
}

// FromRGBA converts a premultiplied RGBA image into a 4-channel Image.
// Blurring premultiplied samples is safe: averaging preserves the
// premultiplication invariant R,G,B <= A.
func FromRGBA(src *image.RGBA) (*Image, error) {
	return fromInterleaved(src.Pix, src.Stride, src.Rect, 4)
}

// FromGray converts a grayscale image into a 1-channel Image.
func FromGray(src *image.Gray) (*Image, error) {
	return fromInterleaved(src.Pix, src.Stride, src.Rect, 1)
}

// fromInterleaved copies a strided standard-library pixel buffer into a
// tightly packed Image.
func fromInterleaved(pix []uint8, stride int, rect image.Rectangle, channels int) (*Image, error) {
	w, h := rect.Dx(), rect.Dy()
	m, err := NewImage(w, h, channels)
	if err != nil {
		return nil, err
	}
	rowBytes := w * channels
	for y := 0; y < h; y++ {
		copy(m.pix[y*rowBytes:(y+1)*rowBytes], pix[y*stride:y*stride+rowBytes])
	}
	return m, nil
}

// ToNRGBA exports a 4-channel image as *image.NRGBA.
func (m *Image) ToNRGBA() (*image.NRGBA, error) {
	if m.channels != 4 {
		return nil, ErrChannelMismatch
	}
	out := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	copyRows(out.Pix, out.Stride, m)
	return out, nil
}

// ToRGBA exports a 4-channel image as *image.RGBA.
func (m *Image) ToRGBA() (*image.RGBA, error) {
	if m.channels != 4 {
		return nil, ErrChannelMismatch
	}
	out := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	copyRows(out.Pix, out.Stride, m)
	return out, nil
}

// ToGray exports a 1-channel image as *image.Gray.
func (m *Image) ToGray() (*image.Gray, error) {
	if m.channels != 1 {
		return nil, ErrChannelMismatch
	}
	out := image.NewGray(image.Rect(0, 0, m.width, m.height))
	copyRows(out.Pix, out.Stride, m)
	return out, nil
}

func copyRows(dst []uint8, stride int, m *Image) {
	rowBytes := m.width * m.channels
	for y := 0; y < m.height; y++ {
		copy(dst[y*stride:y*stride+rowBytes], m.pix[y*rowBytes:(y+1)*rowBytes])
	}
}
