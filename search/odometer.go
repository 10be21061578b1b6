package search

import "github.com/coregx/lstar/alphabet"

// odometer enumerates all fixed-length sequences over a |Σ|-ary digit
// alphabet in increasing numeric order, which is exactly the
// length-then-lexicographic order spec §4.4 requires for a given length
// (spec §9: "represent the length-ℓ enumeration as an odometer over
// symbol indices; this is restartable and bounded").
type odometer struct {
	digits   []int
	alphaLen int
}

// newOdometer creates an odometer over words of the given length, starting
// at the all-Σ[0] word (the lexicographically least word of that length).
func newOdometer(alphaLen, length int) *odometer {
	return &odometer{digits: make([]int, length), alphaLen: alphaLen}
}

// word renders the odometer's current digit vector as a Σ-symbol sequence.
func (o *odometer) word(alpha alphabet.Alphabet) []string {
	w := make([]string, len(o.digits))
	for i, d := range o.digits {
		w[i] = alpha.Symbol(d)
	}
	return w
}

// advance increments the odometer to the next word of the same length, in
// order, carrying from the rightmost (least significant) digit. Returns
// false once every word of this length has been produced.
func (o *odometer) advance() bool {
	for i := len(o.digits) - 1; i >= 0; i-- {
		o.digits[i]++
		if o.digits[i] < o.alphaLen {
			return true
		}
		o.digits[i] = 0
	}
	return false
}
