// Package filter implements the core blur primitives: the box plan that
// approximates a Gaussian kernel, and the 1D sliding-window box passes.
//
// Three successive box blurs converge on a Gaussian (central limit theorem),
// and each box blur is separable into a horizontal and a vertical pass. Every
// pass maintains a running window sum that is updated in O(1) per output
// sample, so a full blur costs O(w*h) per channel regardless of sigma, where
// direct Gaussian convolution would cost O(w*h*sigma).
//
// All functions operate on single-channel planes: w*h bytes, row-major.
// Channel interleaving is the caller's concern.
package filter
