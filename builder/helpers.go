// Package builder provides internal helper functions used by Constructor
// implementations to add vertices and rates with uniform error context.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/dex/core"
)

// addVertices inserts cfg.vertex(0..n-1) into g and returns them in order.
// Re-adding an existing vertex is a no-op in core.Graph.
// Complexity: O(n log V).
func addVertices(g *core.Graph, method string, n int, cfg builderConfig) ([]core.Vertex, error) {
	ids := make([]core.Vertex, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.vertex(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%q): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addRate draws the next rate and records u→v (and its reciprocal).
// The draw is validated first, so a bad RateFn or a colliding ID scheme
// surfaces as an error rather than the AddRate panic.
// Complexity: O(log V + log d).
func addRate(g *core.Graph, method string, u, v core.Vertex, cfg builderConfig) error {
	r := cfg.nextRate()
	if err := core.ValidateRate(u, v, r); err != nil {
		return fmt.Errorf("%s: AddRate(%s→%s, r=%g): %w", method, u, v, r, err)
	}
	g.AddRate(u, v, r)

	return nil
}

// prefixedID returns a vertex identifier by concatenating prefix and index.
// Example: prefixedID("R",2) → "R2".
func prefixedID(prefix string, i int) core.Vertex {
	return core.Vertex(prefix + strconv.Itoa(i))
}

// gridVertexID formats a 2D grid coordinate as "r,c".
// Example: gridVertexID(0,1) → "0,1".
func gridVertexID(r, c int) core.Vertex {
	return core.Vertex(strconv.Itoa(r) + "," + strconv.Itoa(c))
}
