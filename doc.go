// Copyright (c) 2025 digitbin authors
// SPDX-License-Identifier: MIT

// Package digitbin implements a Digit-Bin Index: an in-memory index over a
// dynamic collection of weighted items, supporting two weighted-sampling
// primitives with removal:
//
//   - SelectAndRemove: one weighted draw (sequential, Wallenius-style).
//   - SelectManyAndRemove: k distinct items drawn as one atomic operation
//     (simultaneous, Fisher-style).
//
// The index is a radix tree over the decimal digits of each item's
// quantized weight: a weight in [0,1] is truncated toward zero to P
// fractional digits, and items sharing the same P-digit path live in the
// same leaf bin. Every internal node has a fixed fan-out of 10 (one slot
// per digit) and is popcount-compressed the way a 256-way route trie
// compresses its child slots: a bitset marks occupied slots, and a
// parallel slice holds only the occupied values.
//
// All aggregation uses exact integer arithmetic (quantized weights are
// tracked as integer counts of 10^-P units, via math/big) — there is no
// floating point anywhere in the traversal or comparison path, only at
// the float64 boundary of the weight a caller supplies to Add.
//
// An Index is built for populations from 10^5 to 10^7 items where
// probabilities are empirical; it intentionally does not preserve more
// precision than the configured P, does not persist across process
// restarts, and is not safe for concurrent writers.
package digitbin
