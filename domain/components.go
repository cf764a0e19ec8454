// SPDX-License-Identifier: MIT

package domain

// neighborOffsets lists the 4-neighborhood used by the 5-point stencil.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Components finds the 4-connected regions of interior cells.
// Each component is a slice of flat indices in BFS order; components are
// ordered by their smallest index. A region split into several components
// has a spectrum that is the union of the components' spectra.
//
// Time:   O(M·N·4).
// Memory: O(M·N) for visited flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for k0, in := range g.cells {
		if !in || seen[k0] {
			continue
		}
		// BFS to collect component
		queue := []int{k0}
		seen[k0] = true
		for qi := 0; qi < len(queue); qi++ {
			ui, uj := g.Coordinate(queue[qi])
			for _, d := range neighborOffsets {
				vi, vj := ui+d[0], uj+d[1]
				if !g.At(vi, vj) {
					continue
				}
				v := g.Index(vi, vj)
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
