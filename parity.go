// Package parity implements even and odd checks for unsigned integers
package parity

import "github.com/neurlang/parity/internal/lsb"

// IsU16Even reports whether a 16-bit value is even.
var IsU16Even = lsb.IsEven

// IsU16Odd reports whether a 16-bit value is odd.
var IsU16Odd = lsb.IsOdd

// Parity is implemented by integer types which can tell their own parity
type Parity interface {

	// IsEven reports whether the value is divisible by two.
	IsEven() bool

	// IsOdd reports whether the value is not divisible by two.
	IsOdd() bool
}

// IsEven reports whether value is even
func IsEven[T Parity](value T) bool {
	return value.IsEven()
}

// IsOdd reports whether value is odd
func IsOdd[T Parity](value T) bool {
	return value.IsOdd()
}
