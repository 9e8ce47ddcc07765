// Package gf implements the GF(2^8) arithmetic used to compute QR
// Reed-Solomon error correction codewords.
package gf

import (
	"errors"
	"fmt"
)

// Primitive is the reducing polynomial x^8 + x^4 + x^3 + x^2 + 1.
const Primitive = 0x11d

// order of the multiplicative group.
const order = 255

// ErrLogZero is returned when taking the logarithm of a value outside 1..255.
var ErrLogZero = errors.New("gf: logarithm of non-positive value")

var expTable, logTable = buildTables()

func buildTables() (exp [256]byte, log [256]int) {
	x := 1
	for i := 0; i < 256; i++ {
		exp[i] = byte(x)
		if i < order {
			log[x] = i
		}
		x <<= 1
		if x&0x100 != 0 {
			x ^= Primitive
		}
	}
	return exp, log
}

// Exp returns the generator raised to n. Any integer is accepted, the
// exponent is reduced modulo 255 first.
func Exp(n int) byte {
	n %= order
	if n < 0 {
		n += order
	}
	return expTable[n]
}

// Log returns i such that Exp(i) == n.
func Log(n int) (int, error) {
	if n < 1 || n > 255 {
		return 0, fmt.Errorf("%w: %d", ErrLogZero, n)
	}
	return logTable[n], nil
}

// Mul multiplies two field elements.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(logTable[a]+logTable[b])%order]
}
