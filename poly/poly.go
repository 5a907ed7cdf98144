// Package poly implements a univariate polynomial with real coefficients.
//
// A Polynomial is kept in canonical form: either its degree is 0, or the
// coefficient at its degree is non-zero. Arithmetic returns new values; the
// only in-place mutation is SetCoeff, which re-normalizes afterwards.
package poly

// Polynomial is a sum of coefficient * x^power terms with float64 coefficients.
type Polynomial struct {
	degree int
	// coeffs[i] is the coefficient of x^i, len(coeffs) == degree+1.
	coeffs []float64
}

// New returns the zero polynomial.
func New() *Polynomial {
	return &Polynomial{
		degree: 0,
		coeffs: []float64{0},
	}
}

// NewOfDegree returns a polynomial of the given degree with all n+1
// coefficients set to zero. The result is not normalized.
func NewOfDegree(n int) (*Polynomial, error) {
	if n < 0 {
		return nil, ErrNegativeDegree
	}

	return &Polynomial{
		degree: n,
		coeffs: make([]float64, n+1),
	}, nil
}

/*
NewPolynomial expects the coefficients ordered from lowest to highest
degree (e.g. [1, 2, 3] is 1 + 2x + 3x^2). The slice is copied, so the
caller may keep using it.

Trailing zero coefficients are dropped: [1, 2, 0, 0] has degree 1.
*/
func NewPolynomial(coeffs []float64) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyCoefficients
	}

	inner := make([]float64, len(coeffs))
	copy(inner, coeffs)

	p := &Polynomial{
		degree: len(inner) - 1,
		coeffs: inner,
	}
	p.removeLeadingZeroes()

	return p, nil
}

// FromNumber returns the constant polynomial x.
func FromNumber(x float64) *Polynomial {
	return &Polynomial{
		degree: 0,
		coeffs: []float64{x},
	}
}

// fromOwned wraps a non-empty slice the caller hands over.
func fromOwned(inner []float64) *Polynomial {
	p := &Polynomial{
		degree: len(inner) - 1,
		coeffs: inner,
	}
	p.removeLeadingZeroes()

	return p
}

// Copy returns a polynomial with its own copy of the coefficients.
func (p *Polynomial) Copy() *Polynomial {
	innercopy := make([]float64, len(p.coeffs))
	copy(innercopy, p.coeffs)

	return &Polynomial{
		degree: p.degree,
		coeffs: innercopy,
	}
}

// Degree is the highest power with a significant coefficient.
func (p *Polynomial) Degree() int {
	return p.degree
}

// Coeff returns the coefficient of x^power. Powers outside [0, Degree()]
// have coefficient 0.
func (p *Polynomial) Coeff(power int) float64 {
	if power < 0 || power > p.degree {
		return 0
	}

	return p.coeffs[power]
}

// SetCoeff assigns the coefficient of x^power, growing the polynomial when
// power is above the current degree. Setting the leading coefficient to 0
// lowers the degree.
func (p *Polynomial) SetCoeff(power int, value float64) error {
	if power < 0 {
		return ErrNegativePower
	}

	if power > p.degree {
		ensureLen(p, power+1)
		p.degree = power
	}

	p.coeffs[power] = value
	p.removeLeadingZeroes()

	return nil
}

// Eval returns the value of p at x.
func (p *Polynomial) Eval(x float64) float64 {
	result := p.coeffs[p.degree]

	// horner's rule, seeded with the leading coefficient so that a constant
	// never multiplies x:
	for i := p.degree - 1; i >= 0; i-- {
		result = p.coeffs[i] + x*result
	}

	return result
}

// IsZero reports whether p is the constant 0. A polynomial built by
// NewOfDegree(n) with n > 0 is not considered zero until it is normalized.
func (p *Polynomial) IsZero() bool {
	return p.degree == 0 && p.coeffs[0] == 0
}

// Equals reports whether p and q have the same degree and exactly equal
// coefficients. A nil polynomial only equals nil.
func (p *Polynomial) Equals(q *Polynomial) bool {
	if p == q {
		return true
	}

	if p == nil || q == nil {
		return false
	}

	if p.degree != q.degree {
		return false
	}

	for i := 0; i <= p.degree; i++ {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}

	return true
}

// Equal is the function form of a.Equals(b).
func Equal(a, b *Polynomial) bool {
	return a.Equals(b)
}

// ToSlice returns a copy of the coefficients, lowest degree first.
func (p *Polynomial) ToSlice() []float64 {
	list := make([]float64, len(p.coeffs))
	copy(list, p.coeffs)

	return list
}

// ensureLen grows c to n coefficients. New entries are zero.
func ensureLen(c *Polynomial, n int) {
	if len(c.coeffs) < n {
		tmp := make([]float64, n)
		copy(tmp, c.coeffs)
		c.coeffs = tmp
	}
}

func (p *Polynomial) removeLeadingZeroes() {
	for p.degree > 0 && p.coeffs[p.degree] == 0 {
		p.degree--
	}

	p.coeffs = p.coeffs[:p.degree+1]
}
