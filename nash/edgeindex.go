// SPDX-License-Identifier: MIT

package nash

// EdgeIndex maps every traversed edge to the indices (into runs) of the
// runs whose trail contains it, ascending and without repeats. Renderers
// use it to highlight edges; the polytopes themselves are never touched.
func EdgeIndex(runs []*Run) map[TrailEdge][]int {
	idx := make(map[TrailEdge][]int)
	for i, r := range runs {
		if r == nil {
			continue
		}
		for _, e := range r.Trail {
			list := idx[e]
			if len(list) > 0 && list[len(list)-1] == i {
				continue
			}
			idx[e] = append(list, i)
		}
	}

	return idx
}
