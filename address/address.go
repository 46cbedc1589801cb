package address

import (
	"github.com/btcforge/txscript/chaincfg"
)

// addressKind discriminates the Address tagged variant of §3.
type addressKind int

const (
	addressPubKeyHash addressKind = iota
	addressScriptHash
	addressWitness
)

// Address is the tagged variant of §3: P2PKH, P2SH (both Base58Check),
// or a Bech32Witness (segwit v0+) value. Construct one with
// NewPubKeyHashAddress / NewScriptHashAddress / NewWitnessAddress, or
// recover one from text with DecodeBase58 / DecodeBech32 / DecodeAny.
type Address struct {
	kind    addressKind
	params  *chaincfg.Params
	hash    []byte // pubkey hash or script hash, always 20 bytes
	version byte   // witness version, addressWitness only
	program []byte // witness program, addressWitness only
}

func NewPubKeyHashAddress(hash []byte, params *chaincfg.Params) (Address, error) {
	if len(hash) != 20 {
		return Address{}, ErrInvalidPayloadLen
	}
	return Address{kind: addressPubKeyHash, params: params, hash: append([]byte(nil), hash...)}, nil
}

func NewScriptHashAddress(hash []byte, params *chaincfg.Params) (Address, error) {
	if len(hash) != 20 {
		return Address{}, ErrInvalidPayloadLen
	}
	return Address{kind: addressScriptHash, params: params, hash: append([]byte(nil), hash...)}, nil
}

func NewWitnessAddress(version byte, program []byte, params *chaincfg.Params) (Address, error) {
	if err := checkWitnessProgramLength(version, len(program)); err != nil {
		return Address{}, err
	}
	return Address{
		kind:    addressWitness,
		params:  params,
		version: version,
		program: append([]byte(nil), program...),
	}, nil
}

func (a Address) IsPubKeyHash() bool { return a.kind == addressPubKeyHash }
func (a Address) IsScriptHash() bool { return a.kind == addressScriptHash }
func (a Address) IsWitness() bool    { return a.kind == addressWitness }

func (a Address) Params() *chaincfg.Params { return a.params }

// Hash160 returns the 20-byte hash for a PubKeyHash/ScriptHash
// address; it is only meaningful when IsPubKeyHash/IsScriptHash.
func (a Address) Hash160() []byte { return a.hash }

// WitnessProgram returns the witness version and program for a
// witness address; only meaningful when IsWitness.
func (a Address) WitnessProgram() (version byte, program []byte) {
	return a.version, a.program
}

// String renders the address in its canonical text form: Base58Check
// for P2PKH/P2SH, Bech32 for witness addresses.
func (a Address) String() string {
	switch a.kind {
	case addressPubKeyHash:
		return base58CheckEncode(a.params.PubKeyHashAddrID, a.hash)
	case addressScriptHash:
		return base58CheckEncode(a.params.ScriptHashAddrID, a.hash)
	case addressWitness:
		s, err := EncodeSegWitAddress(a.params.Bech32HRPSegwit, a.version, a.program)
		if err != nil {
			return ""
		}
		return s
	default:
		return ""
	}
}

// Equal reports whether two addresses render to the same non-empty
// text form. Networks that share version bytes and HRP (testnet and
// regtest) are not told apart.
func (a Address) Equal(b Address) bool {
	return a.String() != "" && a.String() == b.String()
}

// DecodeBase58 parses a Base58Check-encoded P2PKH/P2SH address string,
// classifying it against every registered network's version bytes.
func DecodeBase58(s string) (Address, error) {
	version, payload, err := base58CheckDecode(s)
	if err != nil {
		return Address{}, err
	}
	if len(payload) != 20 {
		return Address{}, ErrInvalidPayloadLen
	}

	if params, ok := chaincfg.IsPubKeyHashAddrID(version); ok {
		return NewPubKeyHashAddress(payload, params)
	}
	if params, ok := chaincfg.IsScriptHashAddrID(version); ok {
		return NewScriptHashAddress(payload, params)
	}
	return Address{}, ErrUnknownVersion
}

// DecodeBech32 parses a Bech32-encoded segwit address string against
// the HRPs of MainNetParams, TestNetParams and RegressionNetParams, in
// that order; networks added later with chaincfg.Register are not
// consulted.
func DecodeBech32(s string) (Address, error) {
	hrp, version, program, err := DecodeSegWitAddress(s)
	if err != nil {
		return Address{}, err
	}

	var params *chaincfg.Params
	for _, candidate := range []*chaincfg.Params{&chaincfg.MainNetParams, &chaincfg.TestNetParams, &chaincfg.RegressionNetParams} {
		if candidate.Bech32HRPSegwit == hrp {
			params = candidate
			break
		}
	}
	if params == nil {
		return Address{}, ErrHrpUnknown
	}
	return NewWitnessAddress(version, program, params)
}

// DecodeAny tries Base58Check first, then Bech32, and returns
// ErrUnsupportedAddress if both fail (the individual decoders' errors
// are not passed on). This is a supplemented
// convenience (SPEC_FULL §3): most callers know which encoding they
// expect, but CLI/wallet-style callers accepting arbitrary user input
// don't.
func DecodeAny(s string) (Address, error) {
	if addr, err := DecodeBase58(s); err == nil {
		return addr, nil
	}
	addr, err := DecodeBech32(s)
	if err != nil {
		return Address{}, ErrUnsupportedAddress
	}
	return addr, nil
}
