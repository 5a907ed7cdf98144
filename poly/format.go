package poly

import (
	"strconv"
	"strings"
)

// String renders p highest power first, e.g. "3x^2 + 2x + 1". Zero terms are
// skipped and signs are not folded, so [1, -2] renders as "-2x + 1" and
// [-1, 2] as "2x + -1".
func (p *Polynomial) String() string {
	parts := make([]string, 0, p.degree+1)

	for i := p.degree; i >= 0; i-- {
		if p.coeffs[i] == 0 {
			continue
		}

		bldr := strings.Builder{}
		bldr.WriteString(strconv.FormatFloat(p.coeffs[i], 'f', -1, 64))

		switch {
		case i == 1:
			bldr.WriteString("x")
		case i > 1:
			bldr.WriteString("x^")
			bldr.WriteString(strconv.Itoa(i))
		}

		parts = append(parts, bldr.String())
	}

	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, " + ")
}
