// SPDX-License-Identifier: MIT

package polytope

import "fmt"

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// Walk is the result of a breadth-first traversal of the skeleton.
type Walk struct {
	// Order lists vertex IDs in visit order.
	Order []int
	// Depth maps vertex ID → edge distance from the start (-1 if unreachable).
	Depth []int
}

// BFS traverses the skeleton graph from start following Neighbors.
// Errors: ErrUnknownVertex when start is not a vertex of p.
// Complexity: O(V + E).
func (p *Polytope) BFS(start int) (*Walk, error) {
	if start < 0 || start >= len(p.Vertices) {
		return nil, polytopeErrorf(fmt.Sprintf("BFS(%d)", start), ErrUnknownVertex)
	}
	w := &Walk{
		Order: make([]int, 0, len(p.Vertices)),
		Depth: make([]int, len(p.Vertices)),
	}
	for i := range w.Depth {
		w.Depth[i] = -1
	}

	queue := []queueItem{{id: start}}
	w.Depth[start] = 0
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		w.Order = append(w.Order, item.id)
		for _, nb := range p.Vertices[item.id].Neighbors {
			if w.Depth[nb.Vertex] >= 0 {
				continue
			}
			w.Depth[nb.Vertex] = item.depth + 1
			queue = append(queue, queueItem{id: nb.Vertex, depth: item.depth + 1})
		}
	}

	return w, nil
}

// Connected reports whether the skeleton is a single component. The graph
// of a bounded polytope always is; false points at a broken adjacency.
func (p *Polytope) Connected() bool {
	if len(p.Vertices) == 0 {
		return true
	}
	w, err := p.BFS(0)
	if err != nil {
		return false
	}

	return len(w.Order) == len(p.Vertices)
}
