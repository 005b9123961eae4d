// Package lsb implements the 16-bit parity predicate
package lsb

// IsEven reports whether the least significant bit of value is clear.
func IsEven(value uint16) bool {
	return value&1 == 0
}

// IsOdd is the negation of IsEven.
func IsOdd(value uint16) bool {
	return !IsEven(value)
}
