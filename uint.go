package parity

import "github.com/neurlang/parity/internal/lsb"

// Uint8 is an 8-bit unsigned integer implementing Parity
type Uint8 uint8

// Uint16 is a 16-bit unsigned integer implementing Parity
type Uint16 uint16

func (v Uint8) IsEven() bool {
	return lsb.IsEven(uint16(v))
}

func (v Uint8) IsOdd() bool {
	return lsb.IsOdd(uint16(v))
}

func (v Uint16) IsEven() bool {
	return lsb.IsEven(uint16(v))
}

func (v Uint16) IsOdd() bool {
	return lsb.IsOdd(uint16(v))
}

// Unsigned is the set of integer types Even and Odd accept directly.
type Unsigned interface {
	~uint8 | ~uint16
}

// Even reports whether value is even. Unlike IsEven, it takes plain
// uint8 and uint16 values, zero extending them to 16 bits.
func Even[T Unsigned](value T) bool {
	return lsb.IsEven(uint16(value))
}

// Odd reports whether value is odd, see Even.
func Odd[T Unsigned](value T) bool {
	return lsb.IsOdd(uint16(value))
}
