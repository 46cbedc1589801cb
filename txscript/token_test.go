package txscript

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeSerializeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		script []byte
	}{
		{"empty", []byte{}},
		{"op0", []byte{OP_0}},
		{"direct push", []byte{0x01, 0xab}},
		{"pushdata1", append([]byte{OP_PUSHDATA1, 0x4c}, make([]byte, 0x4c)...)},
		{"small ints", []byte{OP_1, OP_2, OP_16, OP_1NEGATE}},
		{"p2pkh template", mustHex("76a914" + "0000000000000000000000000000000000000000" + "88ac")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Tokenize(tc.script)
			require.NoError(t, err)
			out, err := Serialize(tokens)
			require.NoError(t, err)
			require.Equal(t, tc.script, out)
		})
	}
}

func TestTokenizeTruncatedPush(t *testing.T) {
	_, err := Tokenize([]byte{0x05, 0x01, 0x02})
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrMalformedPush))
}

func TestCalculatePushOpMinimal(t *testing.T) {
	tests := []struct {
		data     []byte
		wantKind tokenKind
	}{
		{nil, tokenNumber},
		{[]byte{5}, tokenNumber},
		{make([]byte, 75), tokenPushLength},
		{make([]byte, 76), tokenOp},
		{make([]byte, 256), tokenOp},
	}
	for _, tc := range tests {
		toks := calculatePushOp(tc.data)
		require.Equal(t, tc.wantKind, toks[0].kind)
	}
}

func TestScenarioS1MultisigRedeemScript(t *testing.T) {
	// A signature script carrying two DER signatures and an
	// OP_PUSHDATA1-encoded 2-of-3 redeem script, per §8 S1.
	pk := make([]byte, 33)
	pk[0] = 0x02
	redeem, err := NewScriptBuilder().
		AddOp(OP_2).
		AddData(pk).
		AddData(pk).
		AddData(pk).
		AddOp(OP_3).
		AddOp(OP_CHECKMULTISIG).
		Script()
	require.NoError(t, err)

	sig1 := append([]byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01}, 0x01)
	sig2 := append([]byte{0x30, 0x06, 0x02, 0x01, 0x02, 0x02, 0x01, 0x02}, 0x01)

	sigScript, err := NewScriptBuilder().
		AddOp(OP_0).
		AddData(sig1).
		AddData(sig2).
		AddData(redeem).
		Script()
	require.NoError(t, err)

	tokens, err := Tokenize(sigScript)
	require.NoError(t, err)

	require.Len(t, tokens, 7)

	require.True(t, tokens[0].IsNumber())
	require.Equal(t, 0, tokens[0].Number())

	// Both signature pushes use a direct-length push (9 bytes each, well
	// under the 76-byte OP_PUSHDATA1 threshold).
	require.True(t, tokens[1].IsPushLength())
	require.Equal(t, len(sig1), tokens[1].PushLength())
	require.True(t, tokens[2].IsConstant())
	require.Equal(t, sig1, tokens[2].Constant())

	require.True(t, tokens[3].IsPushLength())
	require.Equal(t, len(sig2), tokens[3].PushLength())
	require.True(t, tokens[4].IsConstant())
	require.Equal(t, sig2, tokens[4].Constant())

	// The 105-byte redeem script exceeds the direct-push range and must
	// be carried by an explicit OP_PUSHDATA1 marker.
	require.Len(t, redeem, 105)
	require.True(t, tokens[5].IsOp())
	require.Equal(t, byte(OP_PUSHDATA1), tokens[5].Op())
	require.True(t, tokens[6].IsConstant())
	require.Equal(t, redeem, tokens[6].Constant())

	out, err := Serialize(tokens)
	require.NoError(t, err)
	require.Equal(t, sigScript, out)
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
