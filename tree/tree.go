// Package tree folds flat, join-produced row sequences into nested values.
//
// Rows must arrive ordered by parent key and then by child key. Fold makes a
// single forward pass holding one open parent at a time; Run tracks the last
// child key under that parent so repeated rows for the same child, produced
// by deeper joins, collapse into one entry.
package tree

import "iter"

// Fold groups consecutive rows with equal parent keys into one parent each.
// open builds the parent from the first row of a run, attach is then called
// with every row of the run, including the first. Parents come out in the
// order their first row was seen. An empty sequence yields an empty, non-nil
// slice.
//
// Iteration stops at the first error from seq; parents folded so far are
// discarded.
func Fold[R any, P any, K comparable](
	seq iter.Seq2[R, error],
	key func(R) K,
	open func(R) P,
	attach func(*P, R),
) ([]P, error) {
	out := []P{}
	var (
		cur     P
		curKey  K
		hasOpen bool
	)
	for row, err := range seq {
		if err != nil {
			return nil, err
		}
		k := key(row)
		if !hasOpen || k != curKey {
			if hasOpen {
				out = append(out, cur)
			}
			cur, curKey, hasOpen = open(row), k, true
		}
		attach(&cur, row)
	}
	if hasOpen {
		out = append(out, cur)
	}
	return out, nil
}

// Rows adapts an in-memory slice to the sequence Fold consumes.
func Rows[R any](rows []R) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for _, r := range rows {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Run remembers the last child key appended under the current parent.
// The zero value is ready to use.
type Run[K comparable] struct {
	last K
	set  bool
}

// Next reports whether a row carrying key k starts a new child. A row whose
// child columns are null (valid is false) never does, and neither does a row
// repeating the previous key. Non-adjacent repeats are not detected.
func (r *Run[K]) Next(k K, valid bool) bool {
	if !valid {
		return false
	}
	if r.set && r.last == k {
		return false
	}
	r.last, r.set = k, true
	return true
}

// Reset forgets the last key; call it whenever the enclosing parent changes.
func (r *Run[K]) Reset() {
	var zero K
	r.last, r.set = zero, false
}
