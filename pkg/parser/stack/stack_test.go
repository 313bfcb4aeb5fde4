package stack_test

import (
	"bantamc/pkg/parser/stack"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := stack.NewStack("a", "b")
	require.Equal(t, 2, s.Size())

	s.Push("c")
	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, "c", top)
	require.Equal(t, []string{"a", "b", "c"}, s.Array())

	for _, want := range []string{"c", "b", "a"} {
		got, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok = s.Pop()
	require.False(t, ok)
	_, ok = s.Peek()
	require.False(t, ok)
	require.Zero(t, s.Size())
}
