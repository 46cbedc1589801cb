package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newStackWith(items ...[]byte) *stack {
	s := &stack{}
	for _, it := range items {
		s.PushByteArray(it)
	}
	return s
}

func TestStackDupSwapRot(t *testing.T) {
	s := newStackWith([]byte{1}, []byte{2}, []byte{3})
	require.NoError(t, s.RotN(1))
	require.Equal(t, [][]byte{{2}, {3}, {1}}, s.stk)

	s2 := newStackWith([]byte{1}, []byte{2})
	require.NoError(t, s2.SwapN(1))
	require.Equal(t, [][]byte{{2}, {1}}, s2.stk)

	s3 := newStackWith([]byte{1})
	require.NoError(t, s3.DupN(1))
	require.Equal(t, [][]byte{{1}, {1}}, s3.stk)
}

func TestStackOverAndTuck(t *testing.T) {
	s := newStackWith([]byte{1}, []byte{2})
	require.NoError(t, s.OverN(1))
	require.Equal(t, [][]byte{{1}, {2}, {1}}, s.stk)

	s2 := newStackWith([]byte{1}, []byte{2})
	require.NoError(t, s2.Tuck())
	require.Equal(t, [][]byte{{2}, {1}, {2}}, s2.stk)
}

func TestStackPickRoll(t *testing.T) {
	s := newStackWith([]byte{10}, []byte{20}, []byte{30})
	require.NoError(t, s.PickN(1))
	require.Equal(t, [][]byte{{10}, {20}, {30}, {20}}, s.stk)

	s2 := newStackWith([]byte{10}, []byte{20}, []byte{30})
	require.NoError(t, s2.RollN(1))
	require.Equal(t, [][]byte{{10}, {30}, {20}}, s2.stk)
}

func TestStackUnderflow(t *testing.T) {
	s := &stack{}
	_, err := s.PopByteArray()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrInvalidStackOperation))
}

func TestAsBoolNegativeZero(t *testing.T) {
	require.False(t, asBool([]byte{0x80}))
	require.False(t, asBool(nil))
	require.True(t, asBool([]byte{0x01}))
	require.False(t, asBool([]byte{0x00, 0x80}))
	require.True(t, asBool([]byte{0x01, 0x80}))
}
