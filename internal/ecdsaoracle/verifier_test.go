package ecdsaoracle

import (
	"crypto/sha256"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/require"
)

type fixedSighasher struct {
	digest []byte
}

func (f fixedSighasher) Sighash(hashType byte) ([]byte, error) {
	return f.digest, nil
}

func TestVerifierAcceptsValidSignature(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	msg := sha256.Sum256([]byte("verify me"))
	sig := ecdsa.Sign(priv, msg[:])
	der := sig.Serialize()
	sigWithHashType := append(append([]byte(nil), der...), 0x01)

	v := New(fixedSighasher{digest: msg[:]})
	ok, err := v.VerifySignature(sigWithHashType, priv.PubKey().SerializeCompressed())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifierRejectsWrongKey(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	other, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	msg := sha256.Sum256([]byte("verify me"))
	sig := ecdsa.Sign(priv, msg[:])
	sigWithHashType := append(append([]byte(nil), sig.Serialize()...), 0x01)

	v := New(fixedSighasher{digest: msg[:]})
	ok, err := v.VerifySignature(sigWithHashType, other.PubKey().SerializeCompressed())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifierRejectsMalformedSig(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	v := New(fixedSighasher{digest: make([]byte, 32)})
	ok, err := v.VerifySignature([]byte{0x00, 0x01}, priv.PubKey().SerializeCompressed())
	require.NoError(t, err)
	require.False(t, ok)
}
