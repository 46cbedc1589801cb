// Package address implements the Base58Check and Bech32 (BIP173)
// codecs that map between a script hash or witness program and its
// text form (§4.6), plus the Address tagged variant (§3) that ties a
// decoded address to its network. An Address does not hold or build
// its scriptPubKey; txscript.PayToAddrScript does that.
package address

import "math/big"

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Radix = big.NewInt(58)
var base58AlphabetIndex [256]int8

func init() {
	for i := range base58AlphabetIndex {
		base58AlphabetIndex[i] = -1
	}
	for i, c := range base58Alphabet {
		base58AlphabetIndex[c] = int8(i)
	}
}

// base58Encode encodes b as a Base58 string, preserving leading zero
// bytes as leading '1' characters the way the reference alphabet
// requires.
func base58Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)

	answer := make([]byte, 0, len(b)*136/100+1)
	mod := new(big.Int)
	for x.Sign() > 0 {
		x.DivMod(x, base58Radix, mod)
		answer = append(answer, base58Alphabet[mod.Int64()])
	}

	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, base58Alphabet[0])
	}

	reverse(answer)
	return string(answer)
}

// base58Decode reverses base58Encode. It returns an error for any
// character outside the 58-character alphabet.
func base58Decode(s string) ([]byte, error) {
	answer := big.NewInt(0)
	scratch := new(big.Int)
	for _, c := range s {
		if c > 255 || base58AlphabetIndex[c] == -1 {
			return nil, ErrBadBase58
		}
		scratch.SetInt64(int64(base58AlphabetIndex[c]))
		answer.Mul(answer, base58Radix)
		answer.Add(answer, scratch)
	}

	decoded := answer.Bytes()
	numZeros := 0
	for numZeros < len(s) && s[numZeros] == base58Alphabet[0] {
		numZeros++
	}

	out := make([]byte, numZeros+len(decoded))
	copy(out[numZeros:], decoded)
	return out, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
