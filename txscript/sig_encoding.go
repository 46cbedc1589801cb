package txscript

import "fmt"

// halfOrder is half the secp256k1 group order, used by the LOW_S
// malleability check. It is a plain constant here (not curve math);
// the core never touches elliptic-curve internals (§1).
var halfOrder = [32]byte{
	0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x5d,
	0x57, 0x6e, 0x73, 0x57, 0xa4, 0x50, 0x1d, 0xdf,
	0xe9, 0x2f, 0x46, 0x68, 0x1b, 0x20, 0xa0, 0xe0,
}

// checkSignatureEncoding validates the DER structure of a signature
// (with its trailing sighash-type byte) per BIP66/BIP62, grounded on
// the pack's own checkSignatureEncoding implementations. It never
// interprets the signature's numeric value beyond the raw bytes
// needed for the low-S comparison.
func checkSignatureEncoding(sig []byte, flags ScriptFlags) error {
	// hashtype byte plus the minimal DER encoding of an all-zero
	// r,s pair is 9 bytes; anything shorter cannot be a signature.
	if len(sig) < 9 {
		return scriptError(ErrSigTooShort, fmt.Sprintf("malformed signature: too short: %d < 9", len(sig)))
	}
	if len(sig) > 72 {
		return scriptError(ErrSigTooLong, fmt.Sprintf("malformed signature: too long: %d > 72", len(sig)))
	}
	if sig[0] != 0x30 {
		return scriptError(ErrSigInvalidSeqID, fmt.Sprintf("malformed signature: format has wrong type: 0x%x", sig[0]))
	}
	if int(sig[1]) != len(sig)-3 {
		return scriptError(ErrSigInvalidDataLen, "malformed signature: bad length")
	}

	rLen := int(sig[3])
	if 5+rLen > len(sig) {
		return scriptError(ErrSigInvalidDataLen, "malformed signature: S type indicator missing")
	}
	if sig[2] != 0x02 {
		return scriptError(ErrSigInvalidRIntID, fmt.Sprintf("malformed signature: R integer marker: 0x%x", sig[2]))
	}
	if rLen == 0 {
		return scriptError(ErrSigZeroRLen, "malformed signature: R length is zero")
	}
	rBytes := sig[4 : 4+rLen]
	if rBytes[0]&0x80 != 0 {
		return scriptError(ErrSigNegativeR, "malformed signature: R is negative")
	}
	if rLen > 1 && rBytes[0] == 0 && rBytes[1]&0x80 == 0 {
		return scriptError(ErrSigTooMuchRPadding, "malformed signature: R value has too much padding")
	}

	sTypeOffset := 4 + rLen
	if sTypeOffset+1 > len(sig) {
		return scriptError(ErrSigMissingSTypeID, "malformed signature: S type indicator missing")
	}
	if sig[sTypeOffset] != 0x02 {
		return scriptError(ErrSigInvalidSIntID, fmt.Sprintf("malformed signature: S integer marker: 0x%x", sig[sTypeOffset]))
	}
	sLenOffset := sTypeOffset + 1
	if sLenOffset+1 > len(sig) {
		return scriptError(ErrSigMissingSLen, "malformed signature: S length missing")
	}
	sLen := int(sig[sLenOffset])
	sOffset := sLenOffset + 1
	if sOffset+sLen != len(sig)-1 {
		return scriptError(ErrSigInvalidSLen, "malformed signature: S length mismatch")
	}
	if sLen == 0 {
		return scriptError(ErrSigZeroSLen, "malformed signature: S length is zero")
	}
	sBytes := sig[sOffset : sOffset+sLen]
	if sBytes[0]&0x80 != 0 {
		return scriptError(ErrSigNegativeS, "malformed signature: S is negative")
	}
	if sLen > 1 && sBytes[0] == 0 && sBytes[1]&0x80 == 0 {
		return scriptError(ErrSigTooMuchSPadding, "malformed signature: S value has too much padding")
	}

	if flags&ScriptVerifyLowS != 0 {
		if sLen > 32 {
			return scriptError(ErrSigHighS, "signature S value out of range")
		}
		var padded [32]byte
		copy(padded[32-sLen:], sBytes)
		for i := 0; i < 32; i++ {
			if padded[i] < halfOrder[i] {
				break
			}
			if padded[i] > halfOrder[i] {
				return scriptError(ErrSigHighS, "signature S value is higher than the half order")
			}
		}
	}

	return nil
}

// checkPubKeyEncoding accepts the three consensus-recognized public
// key encodings: compressed (33 bytes, 0x02/0x03 prefix) and
// uncompressed (65 bytes, 0x04 prefix), per STRICTENC.
func checkPubKeyEncoding(pubKey []byte) error {
	switch {
	case len(pubKey) == 33 && (pubKey[0] == 0x02 || pubKey[0] == 0x03):
		return nil
	case len(pubKey) == 65 && pubKey[0] == 0x04:
		return nil
	default:
		return scriptError(ErrPubKeyType, "unsupported public key type")
	}
}
