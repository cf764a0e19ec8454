// SPDX-License-Identifier: MIT

package eigen

import (
	"math/cmplx"
	"sort"
)

// pair is one eigenpair produced by a decomposition. entry returns component
// i of the eigenvector, so a decomposition never has to materialize vectors
// the filter rejects.
type pair struct {
	value complex128
	entry func(i int) complex128
}

// zeroPair stands in for every kept zero eigenvalue. The null space of the
// masked operator comes from its empty non-domain rows and has no physical
// mode, so the value is exactly 0 and the field is identically zero whichever
// decomposition produced it.
var zeroPair = pair{value: 0, entry: func(int) complex128 { return 0 }}

// filterStats records how many pairs each stage removed.
type filterStats struct {
	zeros, complexValues, complexVectors int
}

// selectReal applies the real-pair filter to pairs and keeps at most k.
//
// Stages, in order: ascending |λ| (stable); near-zero λ dropped unless
// keepZeros, in which case they are kept as zeroPair; λ with a
// non-negligible Im(λ)/|λ| dropped; eigenvectors with any entry whose
// Im(v)/|v| is non-negligible dropped (entries of negligible magnitude count
// as magnitude 1). Filtering stops as soon as k pairs survive; every stage
// preserves order, so this equals filtering everything then truncating.
//
// n is the eigenvector length.
func selectReal(pairs []pair, n, k int, o Options) ([]pair, filterStats) {
	var st filterStats
	mags := make([]float64, len(pairs))
	order := make([]int, len(pairs))
	for i := range pairs {
		mags[i] = cmplx.Abs(pairs[i].value)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return mags[order[a]] < mags[order[b]] })

	out := make([]pair, 0, k)
	for _, idx := range order {
		if len(out) == k {
			break
		}
		p, mag := pairs[idx], mags[idx]
		if o.Negligible(mag) {
			if !o.keepZeros {
				st.zeros++
				continue
			}
			out = append(out, zeroPair)
			continue
		}
		if !o.Negligible(imag(p.value) / mag) {
			st.complexValues++
			continue
		}
		if !realVector(p.entry, n, o) {
			st.complexVectors++
			continue
		}
		out = append(out, p)
	}

	return out, st
}

// realVector reports whether every entry has a negligible Im(v)/|v|.
func realVector(entry func(i int) complex128, n int, o Options) bool {
	for i := 0; i < n; i++ {
		v := entry(i)
		if imag(v) == 0 {
			continue
		}
		mag := cmplx.Abs(v)
		if o.Negligible(mag) {
			mag = 1
		}
		if !o.Negligible(imag(v) / mag) {
			return false
		}
	}

	return true
}
