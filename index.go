package digitbin

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/digitbin/digitbin/internal/decimalx"
	"github.com/digitbin/digitbin/internal/rng"
)

// noCopy is embedded by Index so `go vet -copylocks` flags accidental
// copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Index is a Digit-Bin Index: a dynamic collection of weighted items
// supporting weighted sampling with removal. The zero value is not
// ready to use; construct with New.
//
// Index is not safe for concurrent writers; concurrent readers are only
// safe if there is no concurrent writer.
type Index struct {
	_ noCopy

	precision int
	root      *node
	ids       map[uint64]digitPath
	rnd       rng.Source
}

// Option configures an Index at construction.
type Option func(*Index)

// WithRandSource injects an alternative random source.
func WithRandSource(src rng.Source) Option {
	return func(idx *Index) { idx.rnd = src }
}

// WithSeed seeds the default random source deterministically, for
// reproducible sampling across runs.
func WithSeed(seed1, seed2 uint64) Option {
	return func(idx *Index) { idx.rnd = rng.New(seed1, seed2) }
}

// New constructs an Index at the given precision P (1..=18).
func New(precision int, opts ...Option) (*Index, error) {
	if precision < 1 || precision > 18 {
		return nil, fmt.Errorf("digitbin.New(%d): %w", precision, ErrInvalidPrecision)
	}

	idx := &Index{
		precision: precision,
		root:      newInternalNode(),
		ids:       make(map[uint64]digitPath),
		rnd:       rng.NewDefault(),
	}

	for _, opt := range opts {
		opt(idx)
	}

	return idx, nil
}

// Count returns the number of live items.
func (idx *Index) Count() int {
	return idx.root.count
}

// TotalWeight returns the sum of quantized weights of all live items.
func (idx *Index) TotalWeight() decimal.Decimal {
	return decimalx.UnitsToDecimal(idx.root.acc, idx.precision)
}

// Contains reports whether id is present.
func (idx *Index) Contains(id uint64) bool {
	_, ok := idx.ids[id]
	return ok
}

// Precision returns the configured precision P.
func (idx *Index) Precision() int {
	return idx.precision
}

// Add inserts id with the given weight, quantized to the index's
// precision. Fails with ErrDuplicateID if id is already present, or
// ErrInvalidWeight if weight is not finite and in [0,1].
func (idx *Index) Add(id uint64, weight float64) error {
	if _, exists := idx.ids[id]; exists {
		return fmt.Errorf("digitbin.Add(%d): %w", id, ErrDuplicateID)
	}

	path, units, err := quantize(weight, idx.precision)
	if err != nil {
		return fmt.Errorf("digitbin.Add(%d): %w", id, err)
	}

	n := idx.root
	n.update(1, units)

	for depth, digit := range path {
		child, ok := n.childAt(digit)
		if !ok {
			if depth == len(path)-1 {
				child = newLeafNode()
			} else {
				child = newInternalNode()
			}
			n.attach(digit, child)
		}
		child.update(1, units)
		n = child
	}

	n.leaf.insert(id)
	idx.ids[id] = path

	return nil
}

// Remove deletes id and returns its quantized weight. Fails with
// ErrNotFound if id is not present.
func (idx *Index) Remove(id uint64) (decimal.Decimal, error) {
	path, exists := idx.ids[id]
	if !exists {
		return decimal.Decimal{}, fmt.Errorf("digitbin.Remove(%d): %w", id, ErrNotFound)
	}

	units := unitsFromDigits(path)
	idx.removeFromTree(path, units, id)
	delete(idx.ids, id)

	return decimalx.UnitsToDecimal(units, idx.precision), nil
}

// removeFromTree walks path from the root, removes id from the leaf bin,
// decrements count/acc on every node along the path by (1, units), and
// collapses any node whose count drops to zero — detach from parent,
// free the node — walked bottom-up via the chain collected on the way
// down.
func (idx *Index) removeFromTree(path digitPath, units *big.Int, id uint64) {
	chain := make([]*node, len(path)+1)
	chain[0] = idx.root

	n := idx.root
	for i, digit := range path {
		child, ok := n.childAt(digit)
		if !ok {
			panicOutOfRange("removeFromTree", int(digit))
		}
		chain[i+1] = child
		n = child
	}

	leaf := chain[len(chain)-1]
	leaf.leaf.remove(id)

	idx.collapseChain(chain, path, 1, units)
}

// collapseChain decrements every node in chain by (deltaCount, deltaAcc)
// and detaches any node whose count reaches zero from its parent,
// walking from the leaf back up to the root.
func (idx *Index) collapseChain(chain []*node, path digitPath, deltaCount int, deltaAcc *big.Int) {
	negAcc := new(big.Int).Neg(deltaAcc)

	for i := len(chain) - 1; i >= 0; i-- {
		chain[i].update(-deltaCount, negAcc)

		if i == 0 {
			continue // root is never detached
		}

		if chain[i].isEmpty() {
			chain[i-1].detach(path[i-1])
		}
	}
}
