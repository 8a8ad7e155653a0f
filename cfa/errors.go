package cfa

import "errors"

var (
	// ErrNoSpace indicates the entry pool has no free slot for a new
	// register rule. Resolved only by the caller using fewer distinct
	// registers across open depths, or by Reset.
	ErrNoSpace = errors.New("cfa: register-rule pool exhausted")

	// ErrStatesFull indicates a push would exceed the maximum save/restore
	// nesting depth.
	ErrStatesFull = errors.New("cfa: state stack full")

	// ErrStatesEmpty indicates a pop with no saved state to restore.
	ErrStatesEmpty = errors.New("cfa: no saved state to pop")
)
