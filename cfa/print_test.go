package cfa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackmech/cfakit/dwarfreg"
)

func TestDumpRules_AMD64(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.SetRegister(6, RuleOffset, -16))
	require.NoError(t, tbl.SetRegister(16, RuleOffset, -8))

	var sb strings.Builder
	require.NoError(t, DumpRules(&sb, tbl, dwarfreg.AMD64))

	require.Equal(t, "r6 (rbp): offset(-16)\nr16 (rip): offset(-8)\n", sb.String())
}

func TestDumpRules_UnknownRegister(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.SetRegister(200, RuleSameValue, 0))

	var sb strings.Builder
	require.NoError(t, DumpRules(&sb, tbl, dwarfreg.ARM64))

	require.Equal(t, "r200 (?): same-value(0)\n", sb.String())
}

func TestDumpRules_EmptyTable(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, DumpRules(&sb, New(), dwarfreg.AMD64))
	require.Empty(t, sb.String())
}
