// SPDX-License-Identifier: MIT

package eigen

import (
	"math"
	"testing"

	"github.com/katalvlaran/drumhead/domain"
	"github.com/stretchr/testify/require"
)

func constVector(v complex128) func(int) complex128 {
	return func(int) complex128 { return v }
}

func TestSelectReal(t *testing.T) {
	realVec := constVector(1)
	pairs := []pair{
		{value: -3, entry: realVec},                    // 0
		{value: complex(-1, 0.5), entry: realVec},      // 1: complex value
		{value: 1e-12, entry: realVec},                 // 2: zero
		{value: -2, entry: constVector(complex(1, 1))}, // 3: complex vector
		{value: complex(-2, 1e-9), entry: realVec},     // 4: negligible imaginary part
		{value: 5, entry: realVec},                     // 5
		{value: complex(0, 1e-10), entry: realVec},     // 6: zero with tiny imaginary part
	}

	o := gatherOptions()
	kept, st := selectReal(pairs, 3, 10, o)
	require.Len(t, kept, 3)
	require.Equal(t, complex(-2, 1e-9), kept[0].value)
	require.Equal(t, complex(-3, 0), kept[1].value)
	require.Equal(t, complex(5, 0), kept[2].value)
	require.Equal(t, filterStats{zeros: 2, complexValues: 1, complexVectors: 1}, st)

	// truncation keeps the smallest magnitudes
	kept, _ = selectReal(pairs, 3, 2, o)
	require.Len(t, kept, 2)
	require.Equal(t, complex(-3, 0), kept[1].value)

	// zeros survive with keep-zeros as exact zero values with zero vectors
	o = gatherOptions(WithKeepZeros())
	kept, st = selectReal(pairs, 3, 3, o)
	require.Len(t, kept, 3)
	for _, z := range kept[:2] {
		require.Equal(t, complex(0, 0), z.value)
		for i := 0; i < 3; i++ {
			require.Equal(t, complex(0, 0), z.entry(i))
		}
	}
	require.Equal(t, complex(-2, 1e-9), kept[2].value)
	require.Equal(t, complex(1, 0), kept[2].entry(0))
	require.Zero(t, st.zeros)

	// nothing real
	kept, _ = selectReal(pairs[1:4], 3, 5, gatherOptions())
	require.Empty(t, kept)
}

func TestRealVector(t *testing.T) {
	o := gatherOptions()
	entries := []complex128{1, complex(1e-12, 1e-12), -0.5, complex(2, 1e-7)}
	entry := func(i int) complex128 { return entries[i] }
	// tiny entries count as magnitude 1, so their imaginary part is negligible
	require.True(t, realVector(entry, len(entries), o))

	entries[2] = complex(-0.5, 0.1)
	require.False(t, realVector(entry, len(entries), o))
}

func TestNormalize(t *testing.T) {
	g, err := domain.FromBinary([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	vec := func(vals map[int]float64) func(int) complex128 {
		return func(i int) complex128 { return complex(vals[i], 0.3) }
	}

	// peak is negative: it becomes exactly -1, signs preserved
	f := normalize(g, vec(map[int]float64{5: 1, 6: -4, 9: 2, 10: -5e-324, 0: 99}))
	require.Equal(t, -1.0, f.At(2, 1))
	require.Equal(t, 0.25, f.At(1, 1))
	require.Equal(t, 0.5, f.At(1, 2))
	// off-domain values are discarded
	require.Zero(t, f.At(0, 0))
	// underflow to -0 is snapped to +0
	require.Zero(t, f.At(2, 2))
	require.False(t, math.Signbit(f.At(2, 2)))
	require.Equal(t, 1.0, f.MaxAbs())

	// all-zero and non-finite vectors give the zero field
	require.True(t, normalize(g, vec(nil)).IsZero())
	require.True(t, normalize(g, vec(map[int]float64{5: math.NaN(), 6: 1})).IsZero())
	require.True(t, normalize(g, vec(map[int]float64{5: math.Inf(-1)})).IsZero())
}

func TestField_Accessors(t *testing.T) {
	g, err := domain.FromBinary([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	f := normalize(g, func(i int) complex128 {
		if i == 5 {
			return -2
		}
		return 1
	})
	require.Equal(t, 4, f.Rows())
	require.Equal(t, 3, f.Cols())
	require.Equal(t, []float64{0, 0, 0, 0, 0, -1, 0.5, 0, 0, 0, 0, 0}, f.Data())
	require.Zero(t, f.At(-1, 0))
	require.Zero(t, f.At(0, 3))

	data := f.Data()
	data[5] = 7
	require.Equal(t, -1.0, f.At(1, 1))
	require.Equal(t, 0.5, f.At(2, 1))

	require.Equal(t, "....\n.-+.\n....\n", f.String())
}
