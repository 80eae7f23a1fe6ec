package signal

import "math"

// fft runs an in-place iterative radix-2 Cooley-Tukey transform over the
// real/imaginary pair. Length must be a power of two.
func fft(re, im []float64) {
	n := len(re)
	if n < 2 {
		return
	}

	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	for width := 2; width <= n; width <<= 1 {
		angle := -2 * math.Pi / float64(width)
		stepRe := math.Cos(angle)
		stepIm := math.Sin(angle)
		half := width >> 1

		for start := 0; start < n; start += width {
			twRe, twIm := 1.0, 0.0
			for k := start; k < start+half; k++ {
				evenRe, evenIm := re[k], im[k]
				oddRe := re[k+half]*twRe - im[k+half]*twIm
				oddIm := re[k+half]*twIm + im[k+half]*twRe

				re[k], im[k] = evenRe+oddRe, evenIm+oddIm
				re[k+half], im[k+half] = evenRe-oddRe, evenIm-oddIm

				twRe, twIm = twRe*stepRe-twIm*stepIm, twRe*stepIm+twIm*stepRe
			}
		}
	}
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
