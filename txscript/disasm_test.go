package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisasmStringWellFormed(t *testing.T) {
	script := []byte{OP_DUP, OP_HASH160, 0x02, 0xab, 0xcd, OP_EQUALVERIFY, OP_CHECKSIG}
	got := DisasmString(script)
	require.Equal(t, "OP_DUP OP_HASH160 abcd OP_EQUALVERIFY OP_CHECKSIG", got)
}

func TestDisasmStringTruncatedPush(t *testing.T) {
	script := []byte{OP_DUP, 0x05, 0x01, 0x02}
	got := DisasmString(script)
	require.Contains(t, got, "[error]")
}
