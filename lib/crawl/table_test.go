package crawl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableInsertionOrder(t *testing.T) {
	table := NewTable[string, int]()
	table.Put("c", 1)
	table.Put("a", 2)
	table.Put("b", 3)

	require.Equal(t, 3, table.Len())
	require.Equal(t, []string{"c", "a", "b"}, table.Keys())

	var values []int
	table.Each(func(_ string, v int) {
		values = append(values, v)
	})
	require.Equal(t, []int{1, 2, 3}, values)
}

func TestTableLastWriteWins(t *testing.T) {
	table := NewTable[string, string]()
	table.Put("42", "first")
	table.Put("43", "other")
	table.Put("42", "second")

	require.Equal(t, 2, table.Len())
	v, ok := table.Get("42")
	require.True(t, ok)
	require.Equal(t, "second", v)
	// the re-inserted id keeps its original position
	require.Equal(t, []string{"42", "43"}, table.Keys())
}

func TestTableGetMissing(t *testing.T) {
	table := NewTable[int, string]()
	_, ok := table.Get(7)
	require.False(t, ok)
}
