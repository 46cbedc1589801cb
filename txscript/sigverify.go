package txscript

// SigVerifier is the oracle the interpreter consults for every
// OP_CHECKSIG/OP_CHECKMULTISIG variant. §1 places elliptic-curve
// operations and signature-hash computation out of the core's scope;
// this interface is the seam. A caller wires a concrete
// implementation (see internal/ecdsaoracle for a reference one) that
// knows how to derive the sighash for the spending transaction, input
// index, amount, and script code, then checks sig against pubkey.
//
// The oracle is expected to be a pure, deterministic function of its
// inputs and may be memoized by the caller (§6).
type SigVerifier interface {
	// VerifySignature reports whether sig is a valid signature by the
	// key encoded in pubKey over the sighash this verifier's context
	// implies for the given hash type byte (the last byte of sig in
	// the legacy DER+hashtype encoding).
	VerifySignature(sig, pubKey []byte) (bool, error)
}

// LockTimeContext supplies the enclosing transaction fields
// OP_CHECKLOCKTIMEVERIFY and OP_CHECKSEQUENCEVERIFY compare against
// (§4.4), keeping transaction structure itself out of the core.
type LockTimeContext interface {
	// TxLockTime is the spending transaction's nLockTime field.
	TxLockTime() int64
	// TxSequence is the current input's nSequence field.
	TxSequence() int64
}

// noopLockTimeContext satisfies LockTimeContext for callers that
// never intend to exercise OP_CHECKLOCKTIMEVERIFY/OP_CHECKSEQUENCEVERIFY.
// It reports a zero nLockTime and nSequence, so with it either opcode
// fails for any nonzero lock requirement (an OP_CHECKSEQUENCEVERIFY
// argument with its disable flag set still passes).
type noopLockTimeContext struct{}

func (noopLockTimeContext) TxLockTime() int64 { return 0 }
func (noopLockTimeContext) TxSequence() int64 { return 0 }
