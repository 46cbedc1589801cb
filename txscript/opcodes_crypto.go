package txscript

import (
	"crypto/sha1"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/ripemd160"
)

// isCryptoOpcode reports whether op is one of the §4.4 hashing,
// signature-checking, or locktime opcodes dispatched by
// execCryptoOpcode.
func isCryptoOpcode(op byte) bool {
	switch op {
	case OP_RIPEMD160, OP_SHA1, OP_SHA256, OP_HASH160, OP_HASH256,
		OP_CHECKSIG, OP_CHECKSIGVERIFY, OP_CHECKMULTISIG,
		OP_CHECKMULTISIGVERIFY, OP_CHECKLOCKTIMEVERIFY,
		OP_CHECKSEQUENCEVERIFY:
		return true
	default:
		return false
	}
}

func hash160(b []byte) []byte {
	sha := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

func hash256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

func (e *Engine) execCryptoOpcode(op byte) error {
	switch op {
	case OP_RIPEMD160:
		v, err := e.dstack.PopByteArray()
		if err != nil {
			return err
		}
		h := ripemd160.New()
		h.Write(v)
		e.dstack.PushByteArray(h.Sum(nil))
		return nil

	case OP_SHA1:
		v, err := e.dstack.PopByteArray()
		if err != nil {
			return err
		}
		h := sha1.Sum(v)
		e.dstack.PushByteArray(h[:])
		return nil

	case OP_SHA256:
		v, err := e.dstack.PopByteArray()
		if err != nil {
			return err
		}
		h := sha256.Sum256(v)
		e.dstack.PushByteArray(h[:])
		return nil

	case OP_HASH160:
		v, err := e.dstack.PopByteArray()
		if err != nil {
			return err
		}
		e.dstack.PushByteArray(hash160(v))
		return nil

	case OP_HASH256:
		v, err := e.dstack.PopByteArray()
		if err != nil {
			return err
		}
		e.dstack.PushByteArray(hash256(v))
		return nil

	case OP_CHECKSIG, OP_CHECKSIGVERIFY:
		return e.execCheckSig(op == OP_CHECKSIGVERIFY)

	case OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY:
		return e.execCheckMultiSig(op == OP_CHECKMULTISIGVERIFY)

	case OP_CHECKLOCKTIMEVERIFY:
		return e.execCheckLockTimeVerify()

	case OP_CHECKSEQUENCEVERIFY:
		return e.execCheckSequenceVerify()

	default:
		return scriptError(ErrInternal, fmt.Sprintf("execCryptoOpcode called with %s", opName(op)))
	}
}

func (e *Engine) execCheckSig(verify bool) error {
	pubKey, err := e.dstack.PopByteArray()
	if err != nil {
		return err
	}
	sig, err := e.dstack.PopByteArray()
	if err != nil {
		return err
	}

	ok, err := e.verifySignature(sig, pubKey)
	if err != nil {
		return err
	}

	if verify {
		if !ok {
			return scriptError(ErrCheckSigVerify, "OP_CHECKSIGVERIFY failed")
		}
		return nil
	}
	e.dstack.PushBool(ok)
	return nil
}

// verifySignature validates encoding per STRICTENC/LOW_S before
// delegating to the SigVerifier oracle, and enforces NULLFAIL when
// the check fails.
func (e *Engine) verifySignature(sig, pubKey []byte) (bool, error) {
	if len(sig) == 0 {
		return false, nil
	}
	if e.flags&ScriptVerifyStrictEncoding != 0 {
		if err := checkSignatureEncoding(sig, e.flags); err != nil {
			return false, err
		}
		if err := checkPubKeyEncoding(pubKey); err != nil {
			return false, err
		}
	} else if e.flags&ScriptVerifyLowS != 0 {
		if err := checkSignatureEncoding(sig, e.flags); err != nil {
			return false, err
		}
	}

	if e.sigVerifier == nil {
		return false, scriptError(ErrInternal, "OP_CHECKSIG executed without a configured SigVerifier")
	}
	ok, err := e.sigVerifier.VerifySignature(sig, pubKey)
	if err != nil {
		return false, err
	}
	if !ok && e.flags&ScriptVerifyNullFail != 0 && len(sig) != 0 {
		return false, scriptError(ErrNullFail, "signature not empty on failed checksig")
	}
	return ok, nil
}

// execCheckMultiSig implements §4.4's OP_CHECKMULTISIG semantics,
// including the off-by-one dummy-element pop.
func (e *Engine) execCheckMultiSig(verify bool) error {
	nRaw, err := e.dstack.PopInt()
	if err != nil {
		return err
	}
	n := nRaw.Int()
	if n < 0 || n > MaxPubKeysPerMultiSig {
		return scriptError(ErrInvalidPubKeyCount, fmt.Sprintf("invalid pubkey count %d", n))
	}
	e.numOps += n
	if e.numOps > MaxOpsPerScript {
		return scriptError(ErrTooManyOperations, fmt.Sprintf(
			"exceeded max operation limit of %d", MaxOpsPerScript))
	}

	pubKeys := make([][]byte, n)
	for i := n - 1; i >= 0; i-- {
		pk, err := e.dstack.PopByteArray()
		if err != nil {
			return err
		}
		pubKeys[i] = pk
	}

	mRaw, err := e.dstack.PopInt()
	if err != nil {
		return err
	}
	m := mRaw.Int()
	if m < 0 || m > n {
		return scriptError(ErrInvalidSignatureCount, fmt.Sprintf("invalid signature count %d", m))
	}

	sigs := make([][]byte, m)
	for i := m - 1; i >= 0; i-- {
		sig, err := e.dstack.PopByteArray()
		if err != nil {
			return err
		}
		sigs[i] = sig
	}

	// The infamous off-by-one: an extra element is always consumed.
	dummy, err := e.dstack.PopByteArray()
	if err != nil {
		return err
	}
	if e.flags&ScriptVerifyNullDummy != 0 && len(dummy) != 0 {
		return scriptError(ErrSigNullDummy, "OP_CHECKMULTISIG dummy value is not the empty byte string")
	}

	success := true
	sigIdx, pubKeyIdx := 0, 0
	for sigIdx < len(sigs) {
		if len(sigs)-sigIdx > len(pubKeys)-pubKeyIdx {
			success = false
			break
		}
		ok, err := e.verifySignature(sigs[sigIdx], pubKeys[pubKeyIdx])
		if err != nil {
			return err
		}
		if ok {
			sigIdx++
		}
		pubKeyIdx++
	}
	if sigIdx < len(sigs) {
		success = false
	}

	if verify {
		if !success {
			return scriptError(ErrCheckMultiSigVerify, "OP_CHECKMULTISIGVERIFY failed")
		}
		return nil
	}
	e.dstack.PushBool(success)
	return nil
}

// execCheckLockTimeVerify implements BIP65: without
// ScriptVerifyCheckLockTimeVerify the opcode is a plain no-op (OP_NOP2),
// matching the soft-fork's backward-compatible activation.
func (e *Engine) execCheckLockTimeVerify() error {
	if e.flags&ScriptVerifyCheckLockTimeVerify == 0 {
		if e.flags&ScriptVerifyDiscourageUpgradableNops != 0 {
			return scriptError(ErrDiscourageUpgradableNOPs, "OP_NOP2 reserved for soft-fork upgrades")
		}
		return nil
	}

	raw, err := e.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	lockTime, err := makeScriptNum(raw, e.dstack.verifyMinimalData, 5)
	if err != nil {
		return err
	}
	if lockTime < 0 {
		return scriptError(ErrNegativeLockTime, "negative lock time")
	}

	const lockTimeThreshold = 500000000
	txLockTime := e.lockTimeCtx.TxLockTime()
	if (int64(lockTime) < lockTimeThreshold) != (txLockTime < lockTimeThreshold) {
		return scriptError(ErrUnsatisfiedLockTime, "mismatched locktime types")
	}
	if int64(lockTime) > txLockTime {
		return scriptError(ErrUnsatisfiedLockTime, "locktime requirement not satisfied")
	}
	if e.lockTimeCtx.TxSequence() == 0xffffffff {
		return scriptError(ErrUnsatisfiedLockTime, "transaction input is finalized")
	}
	return nil
}

// execCheckSequenceVerify implements BIP112 analogously to
// execCheckLockTimeVerify.
func (e *Engine) execCheckSequenceVerify() error {
	if e.flags&ScriptVerifyCheckSequenceVerify == 0 {
		if e.flags&ScriptVerifyDiscourageUpgradableNops != 0 {
			return scriptError(ErrDiscourageUpgradableNOPs, "OP_NOP3 reserved for soft-fork upgrades")
		}
		return nil
	}

	raw, err := e.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	sequence, err := makeScriptNum(raw, e.dstack.verifyMinimalData, 5)
	if err != nil {
		return err
	}
	if sequence < 0 {
		return scriptError(ErrNegativeLockTime, "negative sequence")
	}

	const sequenceLockTimeDisableFlag = 1 << 31
	if int64(sequence)&sequenceLockTimeDisableFlag != 0 {
		return nil
	}

	txSequence := e.lockTimeCtx.TxSequence()
	const sequenceLockTimeTypeFlag = 1 << 22
	const sequenceLockTimeMask = 0x0000ffff
	if txSequence&sequenceLockTimeDisableFlag != 0 {
		return scriptError(ErrUnsatisfiedLockTime, "transaction sequence has disable flag set")
	}
	if (int64(sequence) & sequenceLockTimeTypeFlag) != (txSequence & sequenceLockTimeTypeFlag) {
		return scriptError(ErrUnsatisfiedLockTime, "mismatched sequence lock types")
	}
	if int64(sequence)&sequenceLockTimeMask > txSequence&sequenceLockTimeMask {
		return scriptError(ErrUnsatisfiedLockTime, "sequence lock time requirement not satisfied")
	}
	return nil
}
