// SPDX-License-Identifier: MIT

package distance2

import (
	"gonum.org/v1/gonum/graph/simple"
)

// ToGraph exports a distance-2 adjacency as a gonum undirected graph whose
// node IDs are the DOF indices. Every DOF becomes a node, isolated ones
// included, so the result can be fed to gonum's graph algorithms.
// Complexity: O(N + E).
func ToGraph(adj2 [][]int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := range adj2 {
		g.AddNode(simple.Node(int64(i)))
	}
	for i, row := range adj2 {
		for _, j := range row {
			// rows are symmetric; set each edge once from its lower end
			if j <= i {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
		}
	}

	return g
}
