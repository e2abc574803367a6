package digitbin

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// SelectAndRemove performs one weighted draw with removal — sequential,
// Wallenius-style sampling. Returns ok=false if the index is empty; it
// is never an error to draw from an empty index.
func (idx *Index) SelectAndRemove() (id uint64, weight decimal.Decimal, ok bool) {
	if idx.root.count == 0 || idx.root.acc.Sign() == 0 {
		return 0, decimal.Decimal{}, false
	}

	id = idx.drawOne()

	weight, err := idx.Remove(id)
	if err != nil {
		// invariant: id was drawn from the live tree a moment ago.
		panic(err)
	}

	return id, weight, true
}

// drawOne performs the top-down weighted descent without mutating the
// tree, returning the chosen id. Precondition: the index is non-empty.
func (idx *Index) drawOne() uint64 {
	u := idx.rnd.BigN(idx.root.acc)

	n := idx.root
	for !n.isLeaf() {
		child, rem := descendByWeight(n, u)
		n = child
		u = rem
	}

	// every item at a leaf shares one quantized weight: acc == count*unit.
	unit := new(big.Int).Quo(n.acc, big.NewInt(int64(n.count)))
	rank := new(big.Int).Quo(u, unit).Int64()
	if rank >= int64(n.count) {
		rank = int64(n.count) - 1 // guard the exact-boundary draw case
	}

	return n.leaf.selectRank(int(rank))
}

// descendByWeight enumerates n's children in ascending digit order,
// maintaining a running prefix sum, and returns the child that u falls
// into along with u rebased to that child's local range. Ascending
// digit order keeps the descent deterministic given the same random
// stream.
func descendByWeight(n *node, u *big.Int) (*node, *big.Int) {
	digits := n.orderedChildren()

	s := new(big.Int)
	var lastChild *node

	for _, d := range digits {
		child, _ := n.childAt(d)
		lastChild = child

		next := new(big.Int).Add(s, child.acc)
		if u.Cmp(next) < 0 {
			return child, new(big.Int).Sub(u, s)
		}
		s = next
	}

	// Overshoot only observable if u equals the final boundary exactly;
	// descend into the last non-empty child in that case.
	if lastChild == nil {
		panicOutOfRange("descendByWeight", 0)
	}

	return lastChild, new(big.Int).Sub(u, new(big.Int).Sub(s, lastChild.acc))
}

// SelectManyAndRemove draws k distinct items and removes them atomically
// — simultaneous, Fisher-style sampling. Returns ok=false (never a
// partial set) if the current population is below k, or if fewer than k
// items carry a nonzero quantized weight (zero-weight items are never
// drawn).
func (idx *Index) SelectManyAndRemove(k int) (ids []uint64, ok bool) {
	if k == 0 {
		return []uint64{}, true
	}

	population := idx.root.count
	if population < k {
		return nil, false
	}

	// Every zero-weight item sits in the all-zeros leaf.
	zeros := idx.root
	for i := 0; i < idx.precision && zeros != nil; i++ {
		zeros, _ = zeros.childAt(0)
	}
	if zeros != nil && population-zeros.count < k {
		return nil, false
	}

	picked := make(map[uint64]struct{}, k)
	for len(picked) < k {
		need := k - len(picked)
		remaining := population - len(picked)
		if remaining < 1 {
			remaining = 1
		}

		oversample := (need*population + remaining - 1) / remaining // ceil(need*N/remaining)
		if oversample < need {
			oversample = need
		}
		if oversample > 2*k {
			oversample = 2 * k // bound memory to <= 2k per batch
		}

		for i := 0; i < oversample && len(picked) < k; i++ {
			id := idx.drawOne()
			if _, dup := picked[id]; dup {
				continue // resample on collision
			}
			picked[id] = struct{}{}
		}
	}

	ids = make([]uint64, 0, k)
	for id := range picked {
		ids = append(ids, id)
	}

	idx.bulkRemove(ids)

	return ids, true
}

// bulkRemove removes every id in ids in a single ancestor-aware pass:
// ids are grouped by their shared digit path, each group's bin gets one
// set-difference removal, and each ancestor on that path receives one
// aggregated decrement.
func (idx *Index) bulkRemove(ids []uint64) {
	type group struct {
		path digitPath
		ids  []uint64
	}

	groups := make(map[string]*group, len(ids))
	for _, id := range ids {
		path := idx.ids[id]
		key := string(path)
		g, ok := groups[key]
		if !ok {
			g = &group{path: path}
			groups[key] = g
		}
		g.ids = append(g.ids, id)
	}

	for _, g := range groups {
		chain := idx.chainForPath(g.path)
		leaf := chain[len(chain)-1]

		removed := leaf.leaf.removeMany(g.ids)
		if removed == 0 {
			continue
		}

		unit := new(big.Int).Quo(leaf.acc, big.NewInt(int64(leaf.count)))
		deltaAcc := new(big.Int).Mul(unit, big.NewInt(int64(removed)))

		idx.collapseChain(chain, g.path, removed, deltaAcc)
	}

	for _, id := range ids {
		delete(idx.ids, id)
	}
}

// chainForPath walks path from the root and returns the full chain of
// nodes visited, root first.
func (idx *Index) chainForPath(path digitPath) []*node {
	chain := make([]*node, len(path)+1)
	chain[0] = idx.root

	n := idx.root
	for i, digit := range path {
		child, ok := n.childAt(digit)
		if !ok {
			panicOutOfRange("chainForPath", int(digit))
		}
		chain[i+1] = child
		n = child
	}

	return chain
}
