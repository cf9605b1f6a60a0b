package filter

import "math"

// BoxesForGauss converts a Gaussian standard deviation into a sequence of n
// box-filter half-widths. Applying the boxes in order approximates a Gaussian
// blur of that sigma.
//
// The derivation follows the standard ideal-width construction: a box of odd
// width w has variance (w²−1)/12, so n boxes of width near
// wIdeal = sqrt(12σ²/n + 1) stack up to variance σ². Since wIdeal is rarely
// an odd integer, the plan mixes m boxes of the nearest odd width below
// (wl) with n−m boxes of the next odd width above (wu = wl+2), choosing m so
// the combined variance lands closest to the target.
//
// The returned half-widths are non-decreasing in sigma for a fixed n, and
// sigma = 0 yields all zeros (every pass is an identity copy).
//
// The caller must guarantee sigma is non-negative and finite, and n >= 1.
func BoxesForGauss(sigma float64, n int) []int {
	nf := float64(n)

	wIdeal := math.Sqrt(12*sigma*sigma/nf + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2

	wlf := float64(wl)
	mIdeal := (12*sigma*sigma - nf*wlf*wlf - 4*nf*wlf - 3*nf) / (-4*wlf - 4)
	m := int(math.Round(mIdeal))
	if m < 0 {
		m = 0
	} else if m > n {
		m = n
	}

	halves := make([]int, n)
	for i := range halves {
		w := wu
		if i < m {
			w = wl
		}
		halves[i] = (w - 1) / 2
	}
	return halves
}
