package gf

// Polynomial is a polynomial over GF(2^8), highest degree term first.
// Values are immutable, every operation returns a new Polynomial.
type Polynomial struct {
	num []byte
}

// NewPolynomial strips the leading zero coefficients of num and appends
// shift zero coefficients, i.e. it multiplies by x^shift.
func NewPolynomial(num []byte, shift int) Polynomial {
	offset := 0
	for offset < len(num) && num[offset] == 0 {
		offset++
	}
	p := Polynomial{num: make([]byte, len(num)-offset+shift)}
	copy(p.num, num[offset:])
	return p
}

// Len returns the number of coefficients.
func (p Polynomial) Len() int {
	return len(p.num)
}

// At returns the coefficient at index i, counted from the highest degree term.
func (p Polynomial) At(i int) byte {
	return p.num[i]
}

// Coefficients returns a copy of the coefficients.
func (p Polynomial) Coefficients() []byte {
	return append([]byte(nil), p.num...)
}

// Multiply returns p * other.
func (p Polynomial) Multiply(other Polynomial) Polynomial {
	if p.Len() == 0 || other.Len() == 0 {
		return Polynomial{}
	}
	num := make([]byte, p.Len()+other.Len()-1)
	for i, a := range p.num {
		if a == 0 {
			continue
		}
		for j, b := range other.num {
			if b == 0 {
				continue
			}
			num[i+j] ^= expTable[(logTable[a]+logTable[b])%order]
		}
	}
	return NewPolynomial(num, 0)
}

// Mod returns the remainder of p divided by divisor. Each step cancels the
// leading coefficient, so the dividend shrinks until it is shorter than
// the divisor.
func (p Polynomial) Mod(divisor Polynomial) Polynomial {
	if divisor.Len() == 0 {
		panic("gf: remainder by zero polynomial")
	}
	rem := p
	for rem.Len() >= divisor.Len() {
		ratio := logTable[rem.num[0]] - logTable[divisor.num[0]]
		num := rem.Coefficients()
		for i, c := range divisor.num {
			if c == 0 {
				continue
			}
			num[i] ^= Exp(logTable[c] + ratio)
		}
		rem = NewPolynomial(num, 0)
	}
	return rem
}

// Generator returns the Reed-Solomon generator polynomial for length error
// correction codewords: the product of (x - a^i) for i in [0, length).
func Generator(length int) Polynomial {
	g := NewPolynomial([]byte{1}, 0)
	for i := 0; i < length; i++ {
		g = g.Multiply(NewPolynomial([]byte{1, Exp(i)}, 0))
	}
	return g
}

// Remainder computes the length error correction codewords for data.
// The result always holds exactly length bytes, left padded with zeros.
func Remainder(data []byte, length int) []byte {
	gen := Generator(length)
	mod := NewPolynomial(data, gen.Len()-1).Mod(gen)
	ec := make([]byte, gen.Len()-1)
	for i := range ec {
		if idx := i + mod.Len() - len(ec); idx >= 0 {
			ec[i] = mod.At(idx)
		}
	}
	return ec
}
