package digitbin

import (
	"math/big"
	"testing"
)

// checkInvariants walks the whole tree and re-derives its aggregates
// independently after every mutation, rather than trusting the
// structure under test.
func checkInvariants(t *testing.T, idx *Index) {
	t.Helper()

	gotCount, gotAcc := walkAndSum(t, idx.root, 0, idx.precision, new(big.Int))

	if gotCount != idx.root.count {
		t.Fatalf("root.count = %d, but subtree sums to %d", idx.root.count, gotCount)
	}
	if gotAcc.Cmp(idx.root.acc) != 0 {
		t.Fatalf("root.acc = %v, but subtree sums to %v", idx.root.acc, gotAcc)
	}

	if idx.root.count != len(idx.ids) {
		t.Fatalf("root.count = %d, but len(idTable) = %d", idx.root.count, len(idx.ids))
	}

	wantTotal := new(big.Int)
	for _, path := range idx.ids {
		wantTotal.Add(wantTotal, unitsFromDigits(path))
	}
	if wantTotal.Cmp(idx.root.acc) != 0 {
		t.Fatalf("root.acc = %v, but sum over idTable = %v", idx.root.acc, wantTotal)
	}
}

// walkAndSum recursively verifies that every internal node's aggregates
// equal the sum of its children's, and every leaf's aggregates equal its
// bin's cardinality and per-item quantized weight. It returns the
// subtree's own (count, acc) so the caller can check it against the
// parent's stored aggregate. prefix is the unit value of the digits
// consumed on the way down to n.
func walkAndSum(t *testing.T, n *node, depth, precision int, prefix *big.Int) (int, *big.Int) {
	t.Helper()

	if n.isLeaf() {
		if n.count != n.leaf.len() {
			t.Fatalf("leaf at depth %d: count = %d, bin.len() = %d", depth, n.count, n.leaf.len())
		}
		wantAcc := new(big.Int).Mul(prefix, big.NewInt(int64(n.count)))
		if n.acc.Cmp(wantAcc) != 0 {
			t.Fatalf("leaf at depth %d: acc = %v, want count*weight = %v", depth, n.acc, wantAcc)
		}
		return n.count, new(big.Int).Set(n.acc)
	}

	sumCount := 0
	sumAcc := new(big.Int)

	for _, digit := range n.orderedChildren() {
		child, ok := n.childAt(digit)
		if !ok {
			t.Fatalf("orderedChildren returned digit %d with no child", digit)
		}

		childPrefix := new(big.Int).Mul(prefix, big.NewInt(10))
		childPrefix.Add(childPrefix, big.NewInt(int64(digit)))

		cCount, cAcc := walkAndSum(t, child, depth+1, precision, childPrefix)
		if cCount != child.count {
			t.Fatalf("child at depth %d digit %d: count = %d, subtree sums to %d", depth+1, digit, child.count, cCount)
		}
		if cAcc.Cmp(child.acc) != 0 {
			t.Fatalf("child at depth %d digit %d: acc = %v, subtree sums to %v", depth+1, digit, child.acc, cAcc)
		}
		if child.isEmpty() {
			t.Fatalf("empty child at depth %d digit %d was not collapsed", depth+1, digit)
		}

		sumCount += cCount
		sumAcc.Add(sumAcc, cAcc)
	}

	return sumCount, sumAcc
}
