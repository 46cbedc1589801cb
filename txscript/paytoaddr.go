package txscript

import (
	"github.com/btcforge/txscript/address"
	"github.com/btcforge/txscript/chaincfg"
)

// PayToAddrScript builds the canonical scriptPubKey for addr, per the
// byte-exact templates of §6. This is the L1/L3 cross-link §3
// describes as "each provides its canonical extraction"; the reverse
// direction is ExtractPkScriptAddr.
func PayToAddrScript(addr address.Address) ([]byte, error) {
	switch {
	case addr.IsPubKeyHash():
		return NewScriptBuilder().
			AddOp(OP_DUP).
			AddOp(OP_HASH160).
			AddData(addr.Hash160()).
			AddOp(OP_EQUALVERIFY).
			AddOp(OP_CHECKSIG).
			Script()

	case addr.IsScriptHash():
		return NewScriptBuilder().
			AddOp(OP_HASH160).
			AddData(addr.Hash160()).
			AddOp(OP_EQUAL).
			Script()

	case addr.IsWitness():
		version, program := addr.WitnessProgram()
		return NewScriptBuilder().
			AddInt64(int64(version)).
			AddData(program).
			Script()

	default:
		return nil, scriptError(ErrUnsupportedAddress, "address has no recognized scriptPubKey template")
	}
}

// ExtractPkScriptAddr recovers the Address a standard scriptPubKey
// pays to, the reverse of PayToAddrScript. Non-standard scripts (and
// standard ones with no natural address form, like NullData or a bare
// Multisig) return ErrUnsupportedAddress.
func ExtractPkScriptAddr(script []byte, params *chaincfg.Params) (address.Address, error) {
	pk, err := ParseScriptPubKey(script)
	if err != nil {
		return address.Address{}, err
	}

	switch pk.Class() {
	case PubKeyHashTy:
		hash, _ := pk.PubKeyHash()
		return address.NewPubKeyHashAddress(hash, params)

	case ScriptHashTy:
		hash, _ := pk.ScriptHash()
		return address.NewScriptHashAddress(hash, params)

	case WitnessV0PubKeyHashTy, WitnessV0ScriptHashTy, WitnessUnknownTy:
		program, _ := pk.WitnessProgram()
		version := pk.Tokens()[0].Number()
		return address.NewWitnessAddress(byte(version), program, params)

	default:
		return address.Address{}, scriptError(ErrUnsupportedAddress, "scriptPubKey has no corresponding address")
	}
}
