// Package dwarfreg maps DWARF register numbers to architecture register
// names.
//
// DWARF numbering is ABI-specific: on x86-64 the System V psABI assigns
// 0=rax, 6=rbp, 7=rsp, 16=rip; on ARM64 the AAPCS64 assigns 0-30 to
// x0-x30 and 31 to sp. Integer registers resolve through golang.org/x/arch
// so names track the disassembler's canonical spelling.
//
// This package exists for diagnostics - rendering a register-rule table in
// terms a human recognizes. It plays no part in unwinding itself.
package dwarfreg
