package dwarfreg

import (
	"fmt"
	"strings"

	"golang.org/x/arch/arm64/arm64asm"
	"golang.org/x/arch/x86/x86asm"
)

// Arch represents a CPU architecture.
type Arch string

// Supported architectures.
const (
	AMD64 Arch = "amd64"
	ARM64 Arch = "arm64"
)

// amd64Regs is the System V x86-64 psABI DWARF register number mapping
// (Figure 3.36) for the integer registers and the return address column.
var amd64Regs = [...]x86asm.Reg{
	0:  x86asm.RAX,
	1:  x86asm.RDX,
	2:  x86asm.RCX,
	3:  x86asm.RBX,
	4:  x86asm.RSI,
	5:  x86asm.RDI,
	6:  x86asm.RBP,
	7:  x86asm.RSP,
	8:  x86asm.R8,
	9:  x86asm.R9,
	10: x86asm.R10,
	11: x86asm.R11,
	12: x86asm.R12,
	13: x86asm.R13,
	14: x86asm.R14,
	15: x86asm.R15,
	16: x86asm.RIP,
}

// Name returns the conventional name for a DWARF register number on arch.
// It reports false for numbers outside the mapped ranges or for an
// unsupported architecture.
func Name(arch Arch, regnum uint32) (string, bool) {
	switch arch {
	case AMD64:
		return amd64Name(regnum)
	case ARM64:
		return arm64Name(regnum)
	}
	return "", false
}

func amd64Name(regnum uint32) (string, bool) {
	switch {
	case int(regnum) < len(amd64Regs):
		return strings.ToLower(amd64Regs[regnum].String()), true
	case regnum >= 17 && regnum <= 32:
		// 17-32 are the SSE registers. x86asm spells these X0-X15;
		// DWARF consumers expect the xmm names.
		return fmt.Sprintf("xmm%d", regnum-17), true
	}
	return "", false
}

func arm64Name(regnum uint32) (string, bool) {
	switch {
	case regnum <= 30:
		// AAPCS64 numbers the general registers identically to their
		// index, so x0-x30 map directly.
		return strings.ToLower((arm64asm.X0 + arm64asm.Reg(regnum)).String()), true
	case regnum == 31:
		return "sp", true
	case regnum >= 64 && regnum <= 95:
		// 64-95 are the SIMD registers v0-v31.
		return fmt.Sprintf("v%d", regnum-64), true
	}
	return "", false
}
