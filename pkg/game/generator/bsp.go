package generator

import (
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/logger"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/rng"
	"github.com/kosciak/ecs-rogal-sub000/pkg/engine/world"
)

const noNode = -1

// BSP split defaults
const (
	DefaultMinAspectRatio = 0.45
	maxSplitAttempts      = 50
)

// bspNode is one region of a BSP tree. Links are indices into the tree's arena.
type bspNode struct {
	region world.Rect
	parent int
	left   int
	right  int
	depth  int
}

// BSPTree is a binary space partition stored as an arena of nodes.
// The root is always node 0 and children exactly tile their parent.
type BSPTree struct {
	nodes []bspNode
}

// NewBSPTree creates a tree with a single root node covering region
func NewBSPTree(region world.Rect) *BSPTree {
	return &BSPTree{
		nodes: []bspNode{{region: region, parent: noNode, left: noNode, right: noNode}},
	}
}

// Root returns the index of the root node
func (t *BSPTree) Root() int {
	return 0
}

// Len returns the number of nodes in the tree
func (t *BSPTree) Len() int {
	return len(t.nodes)
}

// Region returns the area covered by node
func (t *BSPTree) Region(node int) world.Rect {
	return t.nodes[node].region
}

// Depth returns the number of edges between node and the root
func (t *BSPTree) Depth(node int) int {
	return t.nodes[node].depth
}

// Parent returns the parent of node, or false for the root
func (t *BSPTree) Parent(node int) (int, bool) {
	p := t.nodes[node].parent
	return p, p != noNode
}

// Children returns both children of node, or false for a leaf
func (t *BSPTree) Children(node int) (left, right int, ok bool) {
	n := t.nodes[node]
	return n.left, n.right, n.left != noNode
}

// IsLeaf reports whether node has no children
func (t *BSPTree) IsLeaf(node int) bool {
	return t.nodes[node].left == noNode
}

// Leaves returns the leaf nodes from left to right
func (t *BSPTree) Leaves() []int {
	var leaves []int
	var walk func(node int)
	walk = func(node int) {
		left, right, ok := t.Children(node)
		if !ok {
			leaves = append(leaves, node)
			return
		}
		walk(left)
		walk(right)
	}
	walk(t.Root())
	return leaves
}

// Distance returns the number of edges on the tree path between two nodes
func (t *BSPTree) Distance(a, b int) int {
	distance := 0
	for a != b {
		if t.nodes[a].depth >= t.nodes[b].depth {
			a = t.nodes[a].parent
		} else {
			b = t.nodes[b].parent
		}
		distance++
	}
	return distance
}

// split appends two children tiling node's region
func (t *BSPTree) split(node int, left, right world.Rect) (int, int) {
	depth := t.nodes[node].depth + 1
	li := len(t.nodes)
	t.nodes = append(t.nodes,
		bspNode{region: left, parent: node, left: noNode, right: noNode, depth: depth},
		bspNode{region: right, parent: node, left: noNode, right: noNode, depth: depth},
	)
	t.nodes[node].left = li
	t.nodes[node].right = li + 1
	return li, li + 1
}

// clear removes the children of node. Only the most recently split node can be
// cleared, which keeps the arena free of orphans.
func (t *BSPTree) clear(node int) {
	left := t.nodes[node].left
	if left == noNode {
		return
	}
	if left == len(t.nodes)-2 {
		t.nodes = t.nodes[:left]
	}
	t.nodes[node].left = noNode
	t.nodes[node].right = noNode
}

// BSPSplitter partitions a region into a BSP tree
type BSPSplitter struct {
	Depth          int
	MinSize        int
	MinAspectRatio float64
}

// Split partitions region level by level until Depth is reached or no node can be split
func (s BSPSplitter) Split(rnd *rng.Rand, region world.Rect) *BSPTree {
	tree := NewBSPTree(region)
	frontier := []int{tree.Root()}
	for level := 0; level < s.Depth && len(frontier) > 0; level++ {
		var next []int
		for _, node := range frontier {
			if left, right, ok := s.splitNode(rnd, tree, node); ok {
				next = append(next, left, right)
			}
		}
		frontier = next
	}
	return tree
}

func (s BSPSplitter) splitNode(rnd *rng.Rand, tree *BSPTree, node int) (int, int, bool) {
	r := tree.Region(node)
	canSplitX := r.Width >= 2*s.MinSize
	canSplitY := r.Height >= 2*s.MinSize
	if !canSplitX && !canSplitY {
		return noNode, noNode, false
	}

	for attempt := 0; attempt < maxSplitAttempts; attempt++ {
		var width, height int
		if canSplitX {
			width = rnd.Range(s.MinSize, r.Width-s.MinSize)
		}
		if canSplitY {
			height = rnd.Range(s.MinSize, r.Height-s.MinSize)
		}

		vertical := canSplitX
		if canSplitX && canSplitY {
			vertical = rnd.Bool()
		}

		var a, b world.Rect
		if vertical {
			a = world.NewRect(r.X, r.Y, width, r.Height)
			b = world.NewRect(r.X+width, r.Y, r.Width-width, r.Height)
		} else {
			a = world.NewRect(r.X, r.Y, r.Width, height)
			b = world.NewRect(r.X, r.Y+height, r.Width, r.Height-height)
		}

		left, right := tree.split(node, a, b)
		if aspectRatio(a) >= s.MinAspectRatio && aspectRatio(b) >= s.MinAspectRatio {
			return left, right, true
		}
		tree.clear(node)
	}

	logger.Debug("BSP node left unsplit", "region", r.String(), "attempts", maxSplitAttempts)
	return noNode, noNode, false
}

// aspectRatio returns the short side divided by the long side
func aspectRatio(r world.Rect) float64 {
	if r.Empty() {
		return 0
	}
	short, long := r.Width, r.Height
	if short > long {
		short, long = long, short
	}
	return float64(short) / float64(long)
}
