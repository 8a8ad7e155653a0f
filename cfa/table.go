package cfa

import (
	"github.com/stackmech/cfakit/cfa/pool"
)

const (
	// MaxStates is the maximum save/restore nesting depth, including the
	// always-present depth 0. Bounds PushState failures.
	MaxStates = 6

	// MaxRegisters is the total entry-pool capacity across all open
	// depths. Bounds SetRegister failures.
	MaxRegisters = pool.Capacity

	// BucketCount is the hash width of each depth's table. Wider buckets
	// trade per-depth memory for shorter chains; there is no rehashing.
	BucketCount = 32
)

// Table maps DWARF register numbers to recovery rules, one mapping per
// save/restore depth. All storage is inline; a Table never allocates after
// construction and is safe to drive from a signal handler. The zero value
// is not ready for use: call New, or embed a Table and call Reset.
type Table struct {
	entries pool.Pool
	buckets [MaxStates][BucketCount]pool.Ref
	counts  [MaxStates]uint8
	depth   uint8
}

// New returns a Table ready for use at depth 0 with no rules set. This is
// the only allocation the table ever performs.
func New() *Table {
	t := new(Table)
	t.Reset()
	return t
}

// Reset returns the table to its freshly constructed state: depth 0, no
// rules, every pool slot free. This is the only operation that reclaims
// entries stranded by PopState, and it must be called before a Table is
// reused for an unrelated call-frame program.
func (t *Table) Reset() {
	t.entries.Init()
	t.depth = 0
	t.counts[0] = 0
	clearBuckets(&t.buckets[0])
}

// clearBuckets resets one depth's bucket heads to empty.
func clearBuckets(b *[BucketCount]pool.Ref) {
	for i := range b {
		b[i] = pool.Invalid
	}
}

// SetRegister sets the rule for regnum at the current depth. An existing
// entry is overwritten in place; otherwise a pool slot is acquired and
// appended at the tail of its bucket chain. Returns ErrNoSpace when the
// pool is exhausted, leaving the current depth untouched.
func (t *Table) SetRegister(regnum uint32, rule Rule, value int64) error {
	bucket := regnum % BucketCount

	// Walk the chain for an existing entry, remembering the tail so a new
	// entry can chain off it.
	var parent *pool.Entry
	for ref := t.buckets[t.depth][bucket]; ref != pool.Invalid; ref = parent.Next {
		parent = t.entries.At(ref)

		if parent.RegNum == regnum {
			parent.Rule = uint8(rule)
			parent.Value = value
			return nil
		}

		if parent.Next == pool.Invalid {
			break
		}
	}

	ref, ok := t.entries.Acquire()
	if !ok {
		return ErrNoSpace
	}

	e := t.entries.At(ref)
	e.RegNum = regnum
	e.Rule = uint8(rule)
	e.Value = value
	e.Next = pool.Invalid

	// parent is nil only when the bucket was empty.
	if parent == nil {
		t.buckets[t.depth][bucket] = ref
	} else {
		parent.Next = ref
	}

	t.counts[t.depth]++
	return nil
}

// RegisterRule looks up regnum at the current depth. Rules set at other
// depths are invisible.
func (t *Table) RegisterRule(regnum uint32) (Rule, int64, bool) {
	bucket := regnum % BucketCount

	for ref := t.buckets[t.depth][bucket]; ref != pool.Invalid; {
		e := t.entries.At(ref)
		if e.RegNum == regnum {
			return Rule(e.Rule), e.Value, true
		}
		ref = e.Next
	}

	return 0, 0, false
}

// RemoveRegister removes regnum's rule at the current depth, returning its
// slot to the pool. Removing an absent register is a no-op, not an error.
// The walk deliberately continues past a match: uniqueness within a chain
// is maintained by SetRegister's upsert, not assumed here.
func (t *Table) RemoveRegister(regnum uint32) {
	bucket := regnum % BucketCount

	var prev *pool.Entry
	for ref := t.buckets[t.depth][bucket]; ref != pool.Invalid; {
		e := t.entries.At(ref)
		next := e.Next

		if e.RegNum != regnum {
			prev = e
			ref = next
			continue
		}

		// Splice around the entry and free its slot.
		if prev != nil {
			prev.Next = next
		} else {
			t.buckets[t.depth][bucket] = next
		}
		t.entries.Release(ref)
		t.counts[t.depth]--

		ref = next
	}
}

// RegisterCount returns the number of rules set at the current depth. O(1).
func (t *Table) RegisterCount() int {
	return int(t.counts[t.depth])
}

// Depth returns the current save/restore depth. Depth 0 always exists.
func (t *Table) Depth() int {
	return int(t.depth)
}

// Stats reports table occupancy.
type Stats struct {
	// Depth is the current save/restore depth.
	Depth int

	// Live counts allocated pool entries at every depth, including
	// entries stranded above the current depth by PopState.
	Live int

	// Free is the free-list length. Live + Free == MaxRegisters always.
	Free int

	MaxStates    int
	MaxRegisters int
	BucketCount  int
}

// Stats returns an occupancy snapshot. O(MaxRegisters); meant for
// diagnostics and tests, not the unwind path.
func (t *Table) Stats() Stats {
	free := t.entries.FreeLen()
	return Stats{
		Depth:        int(t.depth),
		Live:         MaxRegisters - free,
		Free:         free,
		MaxStates:    MaxStates,
		MaxRegisters: MaxRegisters,
		BucketCount:  BucketCount,
	}
}
