// Package fastblur approximates a Gaussian blur over interleaved byte
// rasters in time linear in the pixel count, independent of the blur radius.
//
// # Overview
//
// A true Gaussian convolution costs O(w*h*sigma). fastblur instead converts
// the radius into three box-filter widths whose stacked variance matches the
// target Gaussian, then applies each box as a horizontal and a vertical
// sliding-window pass with O(1) work per output sample. The trade is
// exactness for a cost that never grows with the radius.
//
// # Quick Start
//
//	import "github.com/rasterfx/fastblur"
//
//	img, _ := fastblur.NewImage(1920, 1080, 4) // RGBA
//	// ... fill img.Pix() ...
//
//	r, err := fastblur.NewRadius(8.5)
//	if err != nil {
//	    // sigma was negative, NaN, or infinite
//	}
//	fastblur.Blur(img, r)
//
// Raw byte buffers can be blurred directly with BlurBytes, and standard
// library images converted with FromStdImage / ToNRGBA and friends.
//
// # Channels
//
// Images carry any fixed number of interleaved one-byte channels: 1 for
// luminance, 3 for RGB, 4 for RGBA. Channels blur independently; with
// multiple CPU cores available, BlurWorkers runs the per-channel pipelines
// in parallel with identical results.
//
// # Concurrency
//
// A blur call is a single bounded synchronous computation. The caller owns
// the pixel buffer and must not access it during the call; the package does
// no locking of its own.
package fastblur

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
