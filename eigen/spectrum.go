// SPDX-License-Identifier: MIT

package eigen

import "github.com/katalvlaran/drumhead/domain"

// Spectrum is an ordered set of eigenpairs: Values[i] belongs to Fields[i],
// ascending by magnitude.
type Spectrum struct {
	Values []float64
	Fields []*Field
}

// newSpectrum converts filtered pairs into normalized fields on g.
func newSpectrum(g *domain.Grid, pairs []pair) *Spectrum {
	s := &Spectrum{
		Values: make([]float64, len(pairs)),
		Fields: make([]*Field, len(pairs)),
	}
	for i, p := range pairs {
		s.Values[i] = real(p.value)
		s.Fields[i] = normalize(g, p.entry)
	}

	return s
}

// Len returns the number of eigenpairs.
func (s *Spectrum) Len() int { return len(s.Values) }

// Mode returns the i-th eigenpair.
func (s *Spectrum) Mode(i int) (float64, *Field) {
	return s.Values[i], s.Fields[i]
}
