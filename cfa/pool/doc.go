// Package pool provides the fixed-capacity entry store backing the CFA
// register-rule table.
//
// # Overview
//
// The pool is a static array of register-rule entries threaded by integer
// indices. Unused slots form a singly-linked free list through the same Next
// field that live entries use for hash-bucket chaining, so a slot is always
// on exactly one list. Nothing here touches the heap: the pool is embedded
// by value in its owner and acquire/release are pointer-free index swaps,
// which keeps the store usable from a signal handler.
//
// # Slot Lifecycle
//
// Init links every slot onto the free list. Acquire pops the head; Release
// pushes a slot back. The pool never verifies that a released slot has been
// unlinked from its chain first - that is the caller's invariant.
//
// Exhaustion is reported through Acquire's second result, never a panic:
// capacity is a compile-time constant and running out of slots is an
// expected outcome when a call-frame program touches more registers than
// the pool was sized for.
package pool
