package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyPubKeyHash(t *testing.T) {
	script := []byte{OP_DUP, OP_HASH160}
	script = append(script, 20)
	script = append(script, make([]byte, 20)...)
	script = append(script, OP_EQUALVERIFY, OP_CHECKSIG)

	pk, err := ParseScriptPubKey(script)
	require.NoError(t, err)
	require.Equal(t, PubKeyHashTy, pk.Class())

	hash, ok := pk.PubKeyHash()
	require.True(t, ok)
	require.Len(t, hash, 20)
}

func TestClassifyScriptHash(t *testing.T) {
	script := []byte{OP_HASH160, 20}
	script = append(script, make([]byte, 20)...)
	script = append(script, OP_EQUAL)

	require.Equal(t, ScriptHashTy, GetScriptClass(script))
}

func TestClassifyMultiSig(t *testing.T) {
	pk1 := make([]byte, 33)
	pk1[0] = 0x02
	pk2 := make([]byte, 33)
	pk2[0] = 0x03

	script, err := NewScriptBuilder().
		AddOp(OP_2).
		AddData(pk1).
		AddData(pk2).
		AddOp(OP_2).
		AddOp(OP_CHECKMULTISIG).
		Script()
	require.NoError(t, err)

	pk, err := ParseScriptPubKey(script)
	require.NoError(t, err)
	require.Equal(t, MultiSigTy, pk.Class())

	m, n, ok := pk.MultiSigMandN()
	require.True(t, ok)
	require.Equal(t, 2, m)
	require.Equal(t, 2, n)
}

func TestClassifyWitnessV0(t *testing.T) {
	script := []byte{OP_0, 20}
	script = append(script, make([]byte, 20)...)
	require.Equal(t, WitnessV0PubKeyHashTy, GetScriptClass(script))

	script32 := []byte{OP_0, 32}
	script32 = append(script32, make([]byte, 32)...)
	require.Equal(t, WitnessV0ScriptHashTy, GetScriptClass(script32))
}

func TestIsPushOnlyScript(t *testing.T) {
	pushOnly, err := NewScriptBuilder().AddData([]byte("sig")).AddData([]byte("pubkey")).Script()
	require.NoError(t, err)
	require.True(t, IsPushOnlyScript(pushOnly))

	notPushOnly := []byte{OP_1, OP_CHECKSIG}
	require.False(t, IsPushOnlyScript(notPushOnly))
}

func TestIsUnspendable(t *testing.T) {
	require.True(t, IsUnspendable([]byte{OP_RETURN}))
	require.False(t, IsUnspendable([]byte{OP_1}))
}
