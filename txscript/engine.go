package txscript

import (
	"fmt"

	"github.com/btcforge/txscript/infrastructure/logger"
)

// ScriptFlags is a bitmask of consensus/policy verification flags
// (§3 ScriptProgram.flags) that alter individual opcode semantics
// without changing the interpreter's control structure.
type ScriptFlags uint32

const (
	// ScriptVerifyStrictEncoding rejects non-DER signatures and
	// pubkeys not in one of the recognized encodings.
	ScriptVerifyStrictEncoding ScriptFlags = 1 << iota

	// ScriptVerifyMinimalData requires the shortest possible push
	// encoding, both in the script body and for arithmetic operands.
	ScriptVerifyMinimalData

	// ScriptVerifyLowS requires the S component of a signature to be
	// at most the curve order's half (BIP62 malleability rule).
	ScriptVerifyLowS

	// ScriptVerifyNullDummy requires the dummy element consumed by
	// OP_CHECKMULTISIG to be the empty byte string.
	ScriptVerifyNullDummy

	// ScriptVerifyCheckLockTimeVerify enables OP_CHECKLOCKTIMEVERIFY
	// (BIP65); without it the opcode behaves as OP_NOP2.
	ScriptVerifyCheckLockTimeVerify

	// ScriptVerifyCheckSequenceVerify enables OP_CHECKSEQUENCEVERIFY
	// (BIP112); without it the opcode behaves as OP_NOP3.
	ScriptVerifyCheckSequenceVerify

	// ScriptVerifyWitness enables segwit-aware validation of witness
	// programs recognized in a scriptPubKey.
	ScriptVerifyWitness

	// ScriptVerifyCleanStack requires exactly one item remain on the
	// stack after execution, and that it be truthy.
	ScriptVerifyCleanStack

	// ScriptVerifySigPushOnly requires a signature script to contain
	// only data pushes (the P2SH rule).
	ScriptVerifySigPushOnly

	// ScriptVerifyDiscourageUpgradableNops flags reserved OP_NOP1/
	// OP_NOP4-10 opcodes as errors, guarding against silently
	// tolerating an as-yet-undefined soft fork.
	ScriptVerifyDiscourageUpgradableNops

	// ScriptVerifyMinimalIf requires OP_IF/OP_NOTIF's operand to be
	// exactly an empty vector or the single byte 0x01.
	ScriptVerifyMinimalIf

	// ScriptVerifyNullFail requires all signature arguments to
	// OP_CHECKSIG/OP_CHECKMULTISIG be the empty byte string when the
	// signature check fails.
	ScriptVerifyNullFail
)

// Resource bounds fatal when exceeded (§5).
const (
	MaxOpsPerScript    = 201
	MaxStackSize       = 1000
	MaxPubKeysPerMultiSig = 20
)

// Engine holds ScriptProgram state (§3) and drives the control loop
// of §4.1. Unlike a literal functional port, the interpreter mutates
// one owned Engine value in place — the "owned mutable state behind
// one owner" alternative §9 explicitly allows — rather than allocating
// a new program on every step, while preserving the same observable
// semantics.
type Engine struct {
	tokens      []ScriptToken
	pc          int
	dstack      stack
	astack      stack
	condStack   []bool
	numOps      int
	flags       ScriptFlags
	sigVerifier SigVerifier
	lockTimeCtx LockTimeContext

	scriptCode []byte
}

// NewEngine constructs an Engine ready to execute script under the
// given flags. sigVerifier may be nil if the script is known not to
// exercise CHECKSIG/CHECKMULTISIG; lockTimeCtx may be nil similarly
// for CHECKLOCKTIMEVERIFY/CHECKSEQUENCEVERIFY.
func NewEngine(script []byte, flags ScriptFlags, sigVerifier SigVerifier, lockTimeCtx LockTimeContext) (*Engine, error) {
	if len(script) > MaxScriptSize {
		return nil, scriptError(ErrScriptTooBig, fmt.Sprintf(
			"script size %d is larger than max allowed size %d", len(script), MaxScriptSize))
	}
	tokens, err := Tokenize(script)
	if err != nil {
		return nil, err
	}
	if flags&ScriptVerifySigPushOnly != 0 && !IsPushOnlyScript(script) {
		return nil, scriptError(ErrNotPushOnly, "signature script is not push only")
	}

	ltc := lockTimeCtx
	if ltc == nil {
		ltc = noopLockTimeContext{}
	}

	e := &Engine{
		tokens:      tokens,
		flags:       flags,
		sigVerifier: sigVerifier,
		lockTimeCtx: ltc,
		scriptCode:  script,
	}
	minimal := flags&ScriptVerifyMinimalData != 0
	e.dstack.verifyMinimalData = minimal
	e.astack.verifyMinimalData = minimal
	return e, nil
}

// SetStack seeds the data stack, letting callers exercise a script
// against a pre-populated stack (as scenario S3 in §8 does for
// OP_CHECKMULTISIG) without going through a preceding scriptSig.
func (e *Engine) SetStack(items [][]byte) {
	e.dstack.stk = append([][]byte(nil), items...)
}

// isBranchExecuting reports whether the current conditional context
// permits execution, per §3's "execution is enabled iff every entry
// is true" rule.
func (e *Engine) isBranchExecuting() bool {
	for _, b := range e.condStack {
		if !b {
			return false
		}
	}
	return true
}

// Execute drives the control loop of §4.1 to completion and reports
// the final verdict: true for success, an error otherwise. Success
// requires the script to run out of tokens with a non-empty, truthy
// top-of-stack and a balanced conditional stack.
func (e *Engine) Execute() (bool, error) {
	for e.pc < len(e.tokens) {
		if err := e.Step(); err != nil {
			return false, err
		}
	}

	if len(e.condStack) != 0 {
		return false, scriptError(ErrUnbalancedConditional, "unbalanced conditional at script end")
	}

	if e.flags&ScriptVerifyCleanStack != 0 && e.dstack.Depth() != 1 {
		return false, scriptError(ErrCleanStack, fmt.Sprintf(
			"stack contains %d unexpected items", e.dstack.Depth()-1))
	}

	if e.dstack.Depth() < 1 {
		return false, scriptError(ErrEmptyStack, "stack empty at end of script execution")
	}
	top, err := e.dstack.PeekBool(0)
	if err != nil {
		return false, err
	}
	if !top {
		return false, scriptError(ErrEarlyReturn, "false top-of-stack at script end")
	}
	return true, nil
}

// Step executes a single token per §4.1, advancing pc. It is exported
// for callers (such as debuggers) that want to observe intermediate
// program states; Execute is the ordinary entry point.
func (e *Engine) Step() error {
	t := e.tokens[e.pc]

	log.Tracef("%s", logger.NewLogClosure(func() string {
		return fmt.Sprintf("stepping pc=%d stack=\n%s", e.pc, e.dstack.String())
	}))

	// §4.1 step 2: opcodes in a disabled branch are skipped, except
	// the conditional-stack manipulators themselves.
	if !e.isBranchExecuting() && !(t.IsOp() && isConditionalOpcode(t.Op())) {
		// Still enforce the disabled-opcode rule inside a skipped
		// branch (§4.1 step 3, S6 in §8).
		if t.IsOp() && isDisabledOpcode(t.Op()) {
			return scriptError(ErrDisabledOpcode, fmt.Sprintf("attempt to execute disabled opcode %s", opName(t.Op())))
		}
		e.pc++
		return nil
	}

	if t.IsOp() && isDisabledOpcode(t.Op()) {
		return scriptError(ErrDisabledOpcode, fmt.Sprintf("attempt to execute disabled opcode %s", opName(t.Op())))
	}

	if t.IsOp() && !isConditionalOpcode(t.Op()) {
		e.numOps++
		if e.numOps > MaxOpsPerScript {
			return scriptError(ErrTooManyOperations, fmt.Sprintf(
				"exceeded max operation limit of %d", MaxOpsPerScript))
		}
	}

	if err := e.dispatch(t); err != nil {
		return err
	}

	if e.dstack.Depth()+e.astack.Depth() > MaxStackSize {
		return scriptError(ErrStackOverflow, fmt.Sprintf(
			"combined stack size exceeded max of %d", MaxStackSize))
	}

	e.pc++
	return nil
}

// dispatch routes a single token to its family handler. Pushes
// (Number/PushLength+Constant/PUSHDATA) are handled inline; named
// opcodes fan out to the opcodes_*.go handler tables.
func (e *Engine) dispatch(t ScriptToken) error {
	switch {
	case t.IsNumber():
		// Number tokens are always the minimal encoding by
		// construction (Tokenize only emits them for OP_0/1-16/
		// 1NEGATE), so ScriptVerifyMinimalData has nothing to check.
		e.dstack.PushInt(scriptNum(t.Number()))
		return nil

	case t.IsPushLength():
		data, err := e.nextConstant()
		if err != nil {
			return err
		}
		if e.flags&ScriptVerifyMinimalData != 0 && !isMinimalPush(t, data) {
			return scriptError(ErrMinimalData, "not minimal push encoding")
		}
		e.dstack.PushByteArray(data)
		return nil

	case t.IsOp() && (t.Op() == OP_PUSHDATA1 || t.Op() == OP_PUSHDATA2 || t.Op() == OP_PUSHDATA4):
		data, err := e.nextConstant()
		if err != nil {
			return err
		}
		if e.flags&ScriptVerifyMinimalData != 0 && !isMinimalPush(t, data) {
			return scriptError(ErrMinimalData, "not minimal push encoding")
		}
		e.dstack.PushByteArray(data)
		return nil

	case t.IsOp():
		return e.executeOpcode(t.Op())

	default:
		return scriptError(ErrInternal, "encountered a bare Constant token without a preceding push marker")
	}
}

// nextConstant returns the Constant token immediately following the
// current pc (a PushLength or PUSHDATA marker's payload) and advances
// pc past it so the caller's own pc++ lands on the next real token.
func (e *Engine) nextConstant() ([]byte, error) {
	if e.pc+1 >= len(e.tokens) || !e.tokens[e.pc+1].IsConstant() {
		return nil, scriptError(ErrMalformedPush, "push marker not followed by constant data")
	}
	e.pc++
	return e.tokens[e.pc].Constant(), nil
}

// isMinimalPush reports whether the push marker actually used (t, a
// PushLength or PUSHDATA1/2/4 opcode) matches the minimal encoding
// calculatePushOp would have chosen for the same data, enforcing
// ScriptVerifyMinimalData against every push form (Number tokens are
// minimal by construction and never reach this check).
func isMinimalPush(t ScriptToken, data []byte) bool {
	minimal := calculatePushOp(data)
	if len(minimal) == 0 {
		return false
	}
	head := minimal[0]
	switch {
	case head.IsNumber():
		return false
	case head.IsPushLength():
		return t.IsPushLength() && t.PushLength() == head.PushLength()
	case head.IsOp():
		return t.IsOp() && t.Op() == head.Op()
	default:
		return false
	}
}

// executeOpcode fans a named opcode out to its family handler.
func (e *Engine) executeOpcode(op byte) error {
	switch {
	case isStackOpcode(op):
		return e.execStackOpcode(op)
	case isFlowOpcode(op):
		return e.execFlowOpcode(op)
	case isArithOpcode(op):
		return e.execArithOpcode(op)
	case isSpliceOpcode(op):
		return e.execSpliceOpcode(op)
	case isCryptoOpcode(op):
		return e.execCryptoOpcode(op)
	default:
		return e.execMiscOpcode(op)
	}
}

// execMiscOpcode handles reserved/NOP opcodes that don't belong to
// any of the other families.
func (e *Engine) execMiscOpcode(op byte) error {
	switch op {
	case OP_NOP:
		return nil
	case OP_RESERVED, OP_RESERVED1, OP_RESERVED2, OP_VER, OP_VERIF, OP_VERNOTIF:
		return scriptError(ErrReservedOpcode, fmt.Sprintf("attempt to execute reserved opcode %s", opName(op)))
	case OP_NOP1, OP_NOP4, OP_NOP5, OP_NOP6, OP_NOP7, OP_NOP8, OP_NOP9, OP_NOP10:
		if e.flags&ScriptVerifyDiscourageUpgradableNops != 0 {
			return scriptError(ErrDiscourageUpgradableNOPs, fmt.Sprintf("%s reserved for soft-fork upgrades", opName(op)))
		}
		return nil
	case OP_CODESEPARATOR:
		return nil
	default:
		return scriptError(ErrBadOpcode, fmt.Sprintf("attempt to execute invalid opcode %s", opName(op)))
	}
}
