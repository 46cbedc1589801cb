// Package ecdsaoracle provides a concrete, secp256k1-backed
// implementation of txscript.SigVerifier. It exists outside the core
// txscript package deliberately: §1 places elliptic-curve operations
// out of the interpreter's scope, consumed only through the
// SigVerifier oracle interface, so the curve math lives here instead
// and the core package never imports a curve library directly.
package ecdsaoracle

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"
)

// Sighasher computes the digest a signature is checked against, given
// the raw signature bytes' trailing hash-type byte. Real callers wire
// this to their transaction's actual sighash algorithm; it is kept
// abstract here because transaction structure and sighash computation
// are out of the core's scope (§1).
type Sighasher interface {
	Sighash(hashType byte) ([]byte, error)
}

// Verifier implements txscript.SigVerifier using
// github.com/decred/dcrd/dcrec/secp256k1/v4's ECDSA verification.
type Verifier struct {
	sighasher Sighasher
}

// New returns a Verifier that derives its sighash from sighasher for
// every VerifySignature call.
func New(sighasher Sighasher) *Verifier {
	return &Verifier{sighasher: sighasher}
}

// VerifySignature implements txscript.SigVerifier. sig is a DER
// signature with a trailing sighash-type byte; pubKey is a compressed
// or uncompressed SEC1 public key.
func (v *Verifier) VerifySignature(sig, pubKey []byte) (bool, error) {
	if len(sig) < 1 {
		return false, errors.New("empty signature")
	}
	hashType := sig[len(sig)-1]
	derSig := sig[:len(sig)-1]

	parsedSig, err := ecdsa.ParseDERSignature(derSig)
	if err != nil {
		return false, nil
	}

	parsedPubKey, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false, nil
	}

	digest, err := v.sighasher.Sighash(hashType)
	if err != nil {
		return false, errors.Wrap(err, "computing sighash")
	}

	return parsedSig.Verify(digest, parsedPubKey), nil
}
