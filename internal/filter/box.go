package filter

// The box passes below use the classic three-phase sliding window. For each
// line, the window sum is primed for the first output sample, then each step
// adds the sample entering the window and subtracts the one leaving it.
// Samples outside the line are clamped to the nearest edge value, so the
// lead-in phase (left edge still inside the window) and the tail phase
// (right edge inside the window) substitute the edge value where needed,
// while the body phase runs with no bounds checks at all. The body is the
// hot loop; its equivalence to the clamped reference is covered by tests.
//
// Output samples are rounded half-up: (sum + r) / (2r+1). The same rounding
// is used in both axes so repeated passes do not accumulate a directional
// bias.

// BoxBlurHorizontal applies a 1D moving average of half-width r along each
// row of src, writing into dst. src and dst are w*h planes and must not
// overlap. r = 0 degenerates to a copy. src is never modified.
func BoxBlurHorizontal(src, dst []uint8, width, height, r int) {
	if r <= 0 {
		copy(dst[:width*height], src[:width*height])
		return
	}
	window := 2*r + 1

	for y := 0; y < height; y++ {
		rowStart := y * width
		rowEnd := rowStart + width - 1
		fv := int(src[rowStart]) // clamped value left of the row
		lv := int(src[rowEnd])   // clamped value right of the row

		ti := rowStart     // next output index
		li := rowStart     // sample leaving the window
		ri := rowStart + r // sample entering the window

		// Prime the sum for the window centered on the first sample:
		// r+1 copies of the left edge cover indices -r..0, the rest are
		// in-row samples, edge-extended when the window is wider than
		// the row. The first lead iteration swaps one fv for the sample
		// at index r, completing the initial window.
		sum := (r + 1) * fv
		prime := r
		if prime > width {
			prime = width
		}
		for j := 0; j < prime; j++ {
			sum += int(src[rowStart+j])
		}
		if r > width {
			sum += (r - width) * lv
		}

		lead := r + 1
		if lead > width {
			lead = width
		}
		for k := 0; k < lead; k++ {
			enter := lv
			if ri <= rowEnd {
				enter = int(src[ri])
			}
			ri++
			sum += enter - fv
			dst[ti] = uint8((sum + r) / window)
			ti++
		}

		for k := r + 1; k < width-r; k++ {
			sum += int(src[ri]) - int(src[li])
			ri++
			li++
			dst[ti] = uint8((sum + r) / window)
			ti++
		}

		tail := r
		if width-r-1 < tail {
			tail = width - r - 1
		}
		for k := 0; k < tail; k++ {
			sum += lv - int(src[li])
			li++
			dst[ti] = uint8((sum + r) / window)
			ti++
		}
	}
}

// BoxBlurVertical is the column-axis counterpart of BoxBlurHorizontal:
// the same sliding window walking each column with a stride of width.
func BoxBlurVertical(src, dst []uint8, width, height, r int) {
	if r <= 0 {
		copy(dst[:width*height], src[:width*height])
		return
	}
	window := 2*r + 1

	for x := 0; x < width; x++ {
		colStart := x
		colEnd := x + width*(height-1)
		fv := int(src[colStart])
		lv := int(src[colEnd])

		ti := colStart
		li := colStart
		ri := colStart + r*width

		sum := (r + 1) * fv
		prime := r
		if prime > height {
			prime = height
		}
		for j := 0; j < prime; j++ {
			sum += int(src[colStart+j*width])
		}
		if r > height {
			sum += (r - height) * lv
		}

		lead := r + 1
		if lead > height {
			lead = height
		}
		for k := 0; k < lead; k++ {
			enter := lv
			if ri <= colEnd {
				enter = int(src[ri])
			}
			ri += width
			sum += enter - fv
			dst[ti] = uint8((sum + r) / window)
			ti += width
		}

		for k := r + 1; k < height-r; k++ {
			sum += int(src[ri]) - int(src[li])
			ri += width
			li += width
			dst[ti] = uint8((sum + r) / window)
			ti += width
		}

		tail := r
		if height-r-1 < tail {
			tail = height - r - 1
		}
		for k := 0; k < tail; k++ {
			sum += lv - int(src[li])
			li += width
			dst[ti] = uint8((sum + r) / window)
			ti += width
		}
	}
}

// GaussPlane runs the full blur pipeline over one channel plane: for each
// half-width in halves, a horizontal pass from plane into scratch followed
// by a vertical pass from scratch back into plane. Pass order matters; the
// final result is left in plane. plane and scratch are w*h bytes each and
// must not overlap.
func GaussPlane(plane, scratch []uint8, width, height int, halves []int) {
	for _, r := range halves {
		BoxBlurHorizontal(plane, scratch, width, height, r)
		BoxBlurVertical(scratch, plane, width, height, r)
	}
}
