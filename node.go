package digitbin

import (
	"math/big"

	"github.com/digitbin/digitbin/internal/sparse"
)

// fanOut is the fixed number of child slots per internal node: one per
// decimal digit, 0 through 9.
const fanOut = 10

// node is one level of the radix-over-decimal-digits tree. An internal
// node (reached after consuming fewer than P digits) holds child slots; a
// leaf node (reached after consuming exactly P digits) holds a bin
// instead. A node never holds both: every path in this tree has exactly
// depth P, so there is no notion of a route terminating early.
type node struct {
	count int
	acc   *big.Int // sum of quantized-weight units in this subtree

	children *sparse.Array[*node] // nil at a leaf
	leaf     *bin                 // nil at an internal node
}

func newInternalNode() *node {
	return &node{
		acc:      new(big.Int),
		children: sparse.New[*node](fanOut),
	}
}

func newLeafNode() *node {
	return &node{
		acc:  new(big.Int),
		leaf: newBin(),
	}
}

func (n *node) isLeaf() bool {
	return n.leaf != nil
}

// isEmpty reports whether the subtree rooted here has no items left.
func (n *node) isEmpty() bool {
	return n.count == 0
}

// update adjusts this node's aggregates by the given deltas.
func (n *node) update(deltaCount int, deltaAcc *big.Int) {
	n.count += deltaCount
	n.acc.Add(n.acc, deltaAcc)
}

// childAt returns the child at the given digit, or (nil, false).
func (n *node) childAt(digit uint8) (*node, bool) {
	return n.children.Get(uint(digit))
}

// attach installs child at the given digit slot.
func (n *node) attach(digit uint8, child *node) {
	n.children.InsertAt(uint(digit), child)
}

// detach removes the child at the given digit slot, if present.
func (n *node) detach(digit uint8) {
	n.children.DeleteAt(uint(digit))
}

// orderedChildren returns the digits of all existing children in
// ascending order, so two runs given the same random stream visit
// children in the same order.
func (n *node) orderedChildren() []uint8 {
	slots := n.children.AllSlots()
	digits := make([]uint8, len(slots))
	for i, s := range slots {
		digits[i] = uint8(s)
	}
	return digits
}
