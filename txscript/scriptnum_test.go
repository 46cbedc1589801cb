package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScriptNumRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, 128, -128, 255, 256, -256,
		32767, 32768, -32768, 2147483647, -2147483647}
	for _, v := range values {
		n := scriptNum(v)
		decoded, err := makeScriptNum(n.Bytes(), true, 5)
		require.NoError(t, err)
		require.Equal(t, n, decoded)
	}
}

func TestScriptNumZeroIsEmpty(t *testing.T) {
	require.Empty(t, scriptNum(0).Bytes())
}

func TestScriptNumRejectsOversizedEncoding(t *testing.T) {
	_, err := makeScriptNum(make([]byte, 5), true, defaultScriptNumLen)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrNumberTooBig))
}

func TestScriptNumMinimalEncodingEnforced(t *testing.T) {
	// 0x00 0x80 is a non-minimal encoding of -0; a minimal encoder
	// would produce the empty byte string instead.
	_, err := makeScriptNum([]byte{0x00, 0x80}, true, defaultScriptNumLen)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrMinimalData))
}

func TestScriptNumToleratesNonMinimalWhenNotRequired(t *testing.T) {
	n, err := makeScriptNum([]byte{0x00, 0x80}, false, defaultScriptNumLen)
	require.NoError(t, err)
	require.Equal(t, scriptNum(0), n)
}
