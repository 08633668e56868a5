// Package checked holds overflow-checked arithmetic on raw token amounts.
package checked

import "math/bits"

// Add returns a+b and false if the sum overflows.
func Add(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// Sub returns a-b and false if b exceeds a.
func Sub(a, b uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(a, b, 0)
	return diff, borrow == 0
}
