package fastblur

import "errors"

// Image errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("fastblur: invalid dimensions")

	// ErrInvalidChannels is returned when the channel count is non-positive.
	ErrInvalidChannels = errors.New("fastblur: invalid channel count")

	// ErrPixSizeMismatch is returned when a caller-supplied pixel buffer
	// does not hold exactly width*height*channels bytes.
	ErrPixSizeMismatch = errors.New("fastblur: pixel buffer size mismatch")
)

// Image is a raster with an arbitrary fixed number of interleaved channels:
// width*height pixels, row-major, one byte per channel per pixel.
//
// The pixel buffer is owned by the caller. Blur mutates it in place and
// requires exclusive access for the duration of the call; Image performs
// no locking of its own.
type Image struct {
	width    int
	height   int
	channels int
	pix      []uint8
}

// NewImage allocates an image of the given dimensions and channel count,
// with all samples zero.
func NewImage(width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	return &Image{
		width:    width,
		height:   height,
		channels: channels,
		pix:      make([]uint8, width*height*channels),
	}, nil
}

// ImageFromPix wraps an existing interleaved pixel buffer without copying.
// The buffer must hold exactly width*height*channels bytes; mutations made
// through the returned image are visible in pix and vice versa.
func ImageFromPix(pix []uint8, width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(pix) != width*height*channels {
		return nil, ErrPixSizeMismatch
	}
	return &Image{
		width:    width,
		height:   height,
		channels: channels,
		pix:      pix,
	}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Channels returns the number of interleaved channels per pixel.
func (m *Image) Channels() int { return m.channels }

// Pix returns the underlying interleaved pixel buffer. The slice aliases
// the image's storage; it is not a copy.
func (m *Image) Pix() []uint8 { return m.pix }

// At returns the sample for channel c of the pixel at (x, y).
func (m *Image) At(x, y, c int) uint8 {
	return m.pix[(y*m.width+x)*m.channels+c]
}

// SetAt sets the sample for channel c of the pixel at (x, y).
func (m *Image) SetAt(x, y, c int, v uint8) {
	m.pix[(y*m.width+x)*m.channels+c] = v
}

// Clone returns a deep copy of the image with its own pixel buffer.
func (m *Image) Clone() *Image {
	pix := make([]uint8, len(m.pix))
	copy(pix, m.pix)
	return &Image{
		width:    m.width,
		height:   m.height,
		channels: m.channels,
		pix:      pix,
	}
}

// readPlane de-interleaves channel c into dst, which must hold
// width*height bytes.
func (m *Image) readPlane(c int, dst []uint8) {
	if m.channels == 1 {
		copy(dst, m.pix)
		return
	}
	n := m.width * m.height
	ch := m.channels
	for i, j := 0, c; i < n; i, j = i+1, j+ch {
		dst[i] = m.pix[j]
	}
}

// writePlane re-interleaves src back into channel c of the pixel buffer.
// src must hold width*height bytes.
func (m *Image) writePlane(c int, src []uint8) {
	if m.channels == 1 {
		copy(m.pix, src)
		return
	}
	n := m.width * m.height
	ch := m.channels
	for i, j := 0, c; i < n; i, j = i+1, j+ch {
		m.pix[j] = src[i]
	}
}
