package poly

import (
	"github.com/cwbudde/algo-vecmath"
)

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	out := p.padded(max(p.degree, q.degree) + 1)
	vecmath.AddBlockInPlace(out[:q.degree+1], q.coeffs[:q.degree+1])

	return fromOwned(out)
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	out := p.padded(max(p.degree, q.degree) + 1)

	// a + (-b) rounds exactly like a - b.
	neg := make([]float64, q.degree+1)
	vecmath.ScaleBlock(neg, q.coeffs[:q.degree+1], -1)
	vecmath.AddBlockInPlace(out[:q.degree+1], neg)

	return fromOwned(out)
}

// AddScalar returns p + x, where x is added to the constant term.
func (p *Polynomial) AddScalar(x float64) *Polynomial {
	out := p.ToSlice()
	out[0] += x

	return fromOwned(out)
}

// Multiply returns p * x. Multiplying by 0 gives the zero polynomial.
func (p *Polynomial) Multiply(x float64) *Polynomial {
	out := make([]float64, p.degree+1)
	vecmath.ScaleBlock(out, p.coeffs[:p.degree+1], x)

	return fromOwned(out)
}

// ScalarMul returns x * p.
func ScalarMul(x float64, p *Polynomial) *Polynomial {
	return p.Multiply(x)
}

// padded copies the significant coefficients of p into a fresh slice of
// length n >= p.degree+1.
func (p *Polynomial) padded(n int) []float64 {
	out := make([]float64, n)
	copy(out, p.coeffs[:p.degree+1])

	return out
}
