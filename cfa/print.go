package cfa

import (
	"fmt"
	"io"

	"github.com/stackmech/cfakit/dwarfreg"
)

// DumpRules writes every rule visible at t's current depth to w, one line
// per register in iteration order, resolving register names for arch:
//
//	r6 (rbp): offset(-16)
//	r16 (rip): offset(-8)
//
// Unknown register numbers print with a "?" name. This is a diagnostic
// aid: it formats and writes, so it must not be called from the signal
// path.
func DumpRules(w io.Writer, t *Table, arch dwarfreg.Arch) error {
	it := t.Rules()
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		name, known := dwarfreg.Name(arch, r.RegNum)
		if !known {
			name = "?"
		}
		if _, err := fmt.Fprintf(w, "r%d (%s): %s(%d)\n", r.RegNum, name, r.Rule, r.Value); err != nil {
			return fmt.Errorf("dump rules: %w", err)
		}
	}
	return nil
}
