package cfa

// PushState saves the current register mapping and exposes a fresh, empty
// one, mirroring DW_CFA_remember_state. Rules set before the push are not
// inherited; they become visible again only after the matching PopState.
// Returns ErrStatesFull, with the depth unchanged, when MaxStates
// generations are already open.
func (t *Table) PushState() error {
	if int(t.depth)+1 == MaxStates {
		return ErrStatesFull
	}

	t.depth++
	t.counts[t.depth] = 0
	clearBuckets(&t.buckets[t.depth])
	return nil
}

// PopState discards the current mapping and restores the one saved by the
// matching PushState, exactly as it was, mirroring DW_CFA_restore_state.
// Returns ErrStatesEmpty at depth 0.
//
// Pop does not reclaim: entries live only at the discarded depth remain
// allocated in the pool until Reset. Dropping them here would make pop
// O(entries); the pool is sized so a single frame's CFA program fits
// without reclamation.
func (t *Table) PopState() error {
	if t.depth == 0 {
		return ErrStatesEmpty
	}

	t.depth--
	return nil
}
