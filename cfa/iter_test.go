package cfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator_EmptyTable(t *testing.T) {
	tbl := New()

	it := tbl.Rules()
	_, ok := it.Next()
	require.False(t, ok)

	// Exhausted iterators stay exhausted.
	_, ok = it.Next()
	require.False(t, ok)
}

func TestIterator_BucketThenChainOrder(t *testing.T) {
	tbl := New()

	// Buckets: 2 -> {2}, 5 -> {5, 37}, 6 -> {70}. Within bucket 5 the
	// chain keeps insertion order (37 was added after 5).
	for _, r := range []uint32{5, 37, 2, 70} {
		require.NoError(t, tbl.SetRegister(r, RuleOffset, int64(r)))
	}

	var order []uint32
	it := tbl.Rules()
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		order = append(order, r.RegNum)
		require.Equal(t, int64(r.RegNum), r.Value)
	}

	require.Equal(t, []uint32{2, 5, 37, 70}, order)
}

func TestIterator_SinglePass(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.SetRegister(1, RuleOffset, -8))

	it := tbl.Rules()
	_, ok := it.Next()
	require.True(t, ok)
	_, ok = it.Next()
	require.False(t, ok)

	// No wrap-around.
	for i := 0; i < 3; i++ {
		_, ok = it.Next()
		require.False(t, ok)
	}
}

func TestIterator_SeesOnlyConstructionDepth(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.SetRegister(1, RuleOffset, -8))
	require.NoError(t, tbl.PushState())
	require.NoError(t, tbl.SetRegister(2, RuleRegister, 1))

	it := tbl.Rules()
	r, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, uint32(2), r.RegNum)
	_, ok = it.Next()
	require.False(t, ok)

	// After popping, a fresh iterator sees the restored depth.
	require.NoError(t, tbl.PopState())
	it = tbl.Rules()
	r, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, uint32(1), r.RegNum)
}

func TestIterator_FullTable(t *testing.T) {
	tbl := New()
	for i := 0; i < MaxRegisters; i++ {
		require.NoError(t, tbl.SetRegister(uint32(i), RuleOffset, int64(i)))
	}

	seen := map[uint32]bool{}
	it := tbl.Rules()
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		require.False(t, seen[r.RegNum])
		seen[r.RegNum] = true
	}
	require.Len(t, seen, MaxRegisters)
}
