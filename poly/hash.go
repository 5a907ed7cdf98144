package poly

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a hash of the degree and the coefficients in order. Polynomials
// that are Equal hash to the same value.
func (p *Polynomial) Hash() uint64 {
	buf := make([]byte, 8*(p.degree+2))
	binary.LittleEndian.PutUint64(buf, uint64(p.degree))

	for i := 0; i <= p.degree; i++ {
		c := p.coeffs[i]
		if c == 0 {
			c = 0 // -0 == 0, so both must hash alike.
		}

		binary.LittleEndian.PutUint64(buf[8*(i+1):], math.Float64bits(c))
	}

	return xxhash.Sum64(buf)
}
