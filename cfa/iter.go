package cfa

import (
	"github.com/stackmech/cfakit/cfa/pool"
)

// Iterator is a single-pass, read-only cursor over the rules visible at
// the depth that was current when it was constructed. The table must not
// be mutated while an Iterator is live; doing so leaves the traversal
// unspecified (though never out of bounds).
type Iterator struct {
	t      *Table
	depth  uint8
	bucket int
	cur    pool.Ref
}

// Rules returns an iterator over the current depth's rules. The iterator
// is a value and allocates nothing.
func (t *Table) Rules() Iterator {
	return Iterator{t: t, depth: t.depth, cur: pool.Invalid}
}

// Next returns the next rule, visiting buckets in increasing index order
// and each chain in insertion order. It reports false once the rules are
// exhausted, and keeps reporting false on further calls.
func (it *Iterator) Next() (RegRule, bool) {
	t := it.t

	// Step within the current chain; on reaching its end, move to the
	// next bucket.
	if it.cur != pool.Invalid {
		it.cur = t.entries.At(it.cur).Next
		if it.cur == pool.Invalid {
			it.bucket++
		}
	}

	// First call, or the previous chain ended: scan for the next
	// non-empty bucket.
	if it.cur == pool.Invalid {
		for ; it.bucket < BucketCount; it.bucket++ {
			if head := t.buckets[it.depth][it.bucket]; head != pool.Invalid {
				it.cur = head
				break
			}
		}
		if it.cur == pool.Invalid {
			return RegRule{}, false
		}
	}

	e := t.entries.At(it.cur)
	return RegRule{RegNum: e.RegNum, Rule: Rule(e.Rule), Value: e.Value}, true
}
