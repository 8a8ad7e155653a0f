package pool

// Ref is an index into the entry pool. Refs thread both hash-bucket chains
// and the free list; Invalid terminates either.
type Ref uint8

// Invalid is the chain terminator. It is strictly greater than every valid
// pool index.
const Invalid Ref = ^Ref(0)

// Capacity is the total number of pool slots: the maximum number of
// distinct register rules live across all open table depths combined.
const Capacity = 100

// Every valid index must sit below the Invalid sentinel.
var _ [int(Invalid) - Capacity]struct{}

// Entry is a single register-rule record. RegNum is the DWARF register
// number, Rule the recovery-rule tag, and Value the rule's operand. Next
// links the entry into a bucket chain while live and into the free list
// while free.
type Entry struct {
	RegNum uint32
	Rule   uint8
	Value  int64
	Next   Ref
}

// Pool is a fixed arena of entries plus the free-list head. The zero value
// is not ready for use; call Init first.
type Pool struct {
	entries  [Capacity]Entry
	freeHead Ref
}

// Init links all slots onto the free list (0 -> 1 -> ... -> Capacity-1) and
// resets the head. Any prior contents are forgotten, so Init doubles as the
// pool's re-initialization path.
func (p *Pool) Init() {
	for i := 0; i < Capacity-1; i++ {
		p.entries[i].Next = Ref(i + 1)
	}
	p.entries[Capacity-1].Next = Invalid
	p.freeHead = 0
}

// Acquire pops a slot off the free list. It reports false when the pool is
// exhausted, with no other side effect.
func (p *Pool) Acquire() (Ref, bool) {
	if p.freeHead == Invalid {
		return Invalid, false
	}
	ref := p.freeHead
	p.freeHead = p.entries[ref].Next
	return ref, true
}

// Release pushes ref back onto the free list. The caller must have already
// unlinked ref from any bucket chain; the pool does not check this.
func (p *Pool) Release(ref Ref) {
	p.entries[ref].Next = p.freeHead
	p.freeHead = ref
}

// At returns the slot for ref. ref must be a valid index, not Invalid.
func (p *Pool) At(ref Ref) *Entry {
	return &p.entries[ref]
}

// FreeLen walks the free list and returns its length. O(Capacity); meant
// for stats and invariant checks, not hot paths.
func (p *Pool) FreeLen() int {
	n := 0
	for ref := p.freeHead; ref != Invalid; ref = p.entries[ref].Next {
		n++
	}
	return n
}
