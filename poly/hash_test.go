package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	a := assert.New(t)

	t.Run("equalValues", func(t *testing.T) {
		p1 := mustPoly(t, 1, 2, 3)
		p2 := mustPoly(t, 1, 2, 3, 0)
		a.Equal(p1.Hash(), p2.Hash())
		a.Equal(p1.Hash(), p1.Copy().Hash())
	})

	t.Run("negativeZero", func(t *testing.T) {
		p1 := mustPoly(t, 0, 1)
		p2 := mustPoly(t, math.Copysign(0, -1), 1)
		a.True(p1.Equals(p2))
		a.Equal(p1.Hash(), p2.Hash())
	})

	t.Run("orderMatters", func(t *testing.T) {
		a.NotEqual(mustPoly(t, 1, 2).Hash(), mustPoly(t, 2, 1).Hash())
	})

	t.Run("degreeMatters", func(t *testing.T) {
		sized, err := NewOfDegree(1)
		a.NoError(err)
		a.NotEqual(New().Hash(), sized.Hash())
	})

	t.Run("mapKey", func(t *testing.T) {
		seen := map[uint64]*Polynomial{}
		for _, p := range []*Polynomial{mustPoly(t, 1, 2, 3), mustPoly(t, 0, 1, 1), mustPoly(t, 1, 2, 3)} {
			if q, ok := seen[p.Hash()]; ok {
				a.True(q.Equals(p))
				continue
			}
			seen[p.Hash()] = p
		}
		a.Len(seen, 2)
	})
}
