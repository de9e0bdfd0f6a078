package merge

import (
	"slices"

	"go.uber.org/zap"
)

// Collect returns every node under roots (roots included) that carries mesh
// geometry, in pre-order: a node comes before its descendants, subtrees follow
// child order, and roots are walked in the order given. A node reachable more
// than once is returned at its first occurrence only.
//
// Nodes whose mesh component has no mesh or no materials are skipped with a
// warning; their children are still searched.
func (m *Merger) Collect(roots ...Source) []Source {
	var (
		result  []Source
		visited = make(map[Source]struct{})
		stack   = make([]Source, 0, len(roots))
	)

	// Reverse pushes keep pop order equal to document order.
	for _, r := range slices.Backward(roots) {
		stack = append(stack, r)
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n == nil {
			continue
		}
		if _, seen := visited[n]; seen {
			continue
		}
		visited[n] = struct{}{}

		if n.HasMesh() {
			if n.Mesh() == nil || n.Materials() == nil {
				m.log.Warn("skipping node with empty mesh component",
					zap.String("node", n.Name()),
					zap.Bool("has_mesh", n.Mesh() != nil),
					zap.Bool("has_materials", n.Materials() != nil))
			} else {
				result = append(result, n)
			}
		}

		for _, c := range slices.Backward(n.Children()) {
			stack = append(stack, c)
		}
	}

	m.log.Debug("collected mesh nodes",
		zap.Int("roots", len(roots)),
		zap.Int("nodes", len(visited)),
		zap.Int("with_geometry", len(result)))

	return result
}

// Collect is Merger.Collect with a silent logger.
func Collect(roots ...Source) []Source {
	return New().Collect(roots...)
}
