// Package cfa implements the register-rule table driven by a DWARF
// call-frame-information program during stack unwinding.
//
// # Overview
//
// A CFA program tells the unwinder, register by register, how to recover a
// frame's saved values: "rbp is at CFA-16", "x30 is unchanged", and so on.
// This package tracks those rules in a hash table keyed by DWARF register
// number, with one table generation per DW_CFA_remember_state /
// DW_CFA_restore_state nesting level. Saving and restoring a whole
// generation is O(1): push exposes a fresh empty mapping, pop makes the
// saved one visible again exactly as it was.
//
// The table is built to run where the unwinder runs - possibly inside a
// signal handler on behalf of a crashed thread - so it never allocates
// after construction, never locks, and reports every failure through a
// return value. Capacity is fixed at compile time (MaxStates nesting
// levels, MaxRegisters total rules); a program that exceeds it gets an
// error, not a resize.
//
// # Key Types
//
//   - Table: the scope-stacked register-rule table
//   - Rule: how a register's prior value is recovered
//   - RegRule: one (register, rule, value) triple, as produced by iteration
//   - Iterator: read-only cursor over the rules visible at the current depth
//
// # Usage
//
// The driving interpreter upserts and removes rules at the current depth
// and pushes/pops around save/restore regions:
//
//	t := cfa.New()
//	t.SetRegister(6, cfa.RuleOffset, -16) // rbp at CFA-16
//	t.PushState()                         // DW_CFA_remember_state
//	t.SetRegister(6, cfa.RuleSameValue, 0)
//	t.PopState()                          // DW_CFA_restore_state
//	rule, value, ok := t.RegisterRule(6)  // RuleOffset, -16, true
//
// To materialize a final unwind context, walk the visible rules:
//
//	it := t.Rules()
//	for r, ok := it.Next(); ok; r, ok = it.Next() {
//	    apply(r.RegNum, r.Rule, r.Value)
//	}
//
// # Pop Does Not Reclaim
//
// PopState restores the saved generation by decrementing the depth; entries
// that were live only at the popped depth stay allocated in the pool,
// unreachable until Reset. This is what makes pop O(1) and it is part of
// the contract: the pool is sized for a single frame's worth of CFA-program
// execution, and the table must be Reset before being reused for another.
//
// # Concurrency
//
// A Table has exactly one logical owner; there is no internal locking.
// Mutating it while an Iterator is live leaves iteration unspecified.
package cfa
