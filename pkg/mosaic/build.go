package mosaic

import "math/bits"

// BuildBalanced creates a near-complete binary tree over leaves so that panes
// receive areas as equal as possible. Leaf order is preserved left to right
// and every leaf ends up within one level of every other.
//
// Construction runs in two independent passes: [pairUp] joins adjacent nodes
// round by round, then [AlternateDirection] labels directions level by level
// starting from start.
//
// An empty input yields nil; a single leaf is returned unwrapped.
func BuildBalanced(leaves []Leaf, start Direction) Node {
	if len(leaves) == 0 {
		return nil
	}
	nodes := make([]Node, len(leaves))
	for i, l := range leaves {
		nodes[i] = l
	}
	return AlternateDirection(pairUp(nodes), start)
}

// pairUp joins adjacent nodes into row parents until one node remains.
//
// The first round pairs only the surplus over the largest power of two; the
// remaining nodes pass through unpaired. Every later round then has an even
// count, so no node is carried past more than one round.
func pairUp(nodes []Node) Node {
	if surplus := len(nodes) - 1<<(bits.Len(uint(len(nodes)))-1); surplus > 0 {
		nodes = pairRound(nodes, 2*surplus)
	}
	for len(nodes) > 1 {
		nodes = pairRound(nodes, len(nodes))
	}
	return nodes[0]
}

// pairRound joins adjacent pairs among the first n nodes and carries the rest
// over in order.
func pairRound(nodes []Node, n int) []Node {
	next := make([]Node, 0, len(nodes)-n/2)
	for i := 0; i+1 < n; i += 2 {
		next = append(next, Parent{Direction: Row, First: nodes[i], Second: nodes[i+1]})
	}
	return append(next, nodes[n-n%2:]...)
}

// AlternateDirection returns a copy of node whose parents alternate direction
// with depth, starting with direction at the root. Split percentages are
// dropped; the result uses default splits throughout.
func AlternateDirection(node Node, direction Direction) Node {
	p, ok := node.(Parent)
	if !ok {
		return node
	}
	next := direction.Other()
	return Parent{
		Direction: direction,
		First:     AlternateDirection(p.First, next),
		Second:    AlternateDirection(p.Second, next),
	}
}
