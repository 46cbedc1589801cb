package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSigVerifier lets tests pick which (sig, pubKey) pairs verify,
// exercising OP_CHECKMULTISIG without depending on real curve math
// (curve math lives behind internal/ecdsaoracle, §1).
type fakeSigVerifier struct {
	accept map[string]bool
}

func (f fakeSigVerifier) VerifySignature(sig, pubKey []byte) (bool, error) {
	return f.accept[string(sig)+"|"+string(pubKey)], nil
}

func TestScenarioS2OpDup(t *testing.T) {
	e, err := NewEngine([]byte{OP_DUP}, 0, nil, nil)
	require.NoError(t, err)
	e.SetStack([][]byte{{0xAB}})

	ok, err := e.Execute()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, [][]byte{{0xAB}, {0xAB}}, e.dstack.stk)
}

func TestScenarioS3CheckMultiSigOneOfTwo(t *testing.T) {
	sig1 := []byte("sig1")
	pk1 := []byte("pk1")
	pk2 := []byte("pk2")

	verifier := fakeSigVerifier{accept: map[string]bool{
		"sig1|pk2": true,
	}}

	e, err := NewEngine([]byte{OP_CHECKMULTISIG}, 0, verifier, nil)
	require.NoError(t, err)
	// Stack bottom to top: dummy, sig1, m=1, pk1, pk2, n=2.
	e.SetStack([][]byte{
		{},
		sig1,
		{1},
		pk1,
		pk2,
		{2},
	})

	ok, err := e.Execute()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, [][]byte{{1}}, e.dstack.stk)
}

func TestScenarioS6DisabledOpcodeInDeadBranch(t *testing.T) {
	script, err := NewScriptBuilder().
		AddOp(OP_0).
		AddOp(OP_IF).
		AddInt64(0).
		AddOp(OP_CAT).
		AddOp(OP_ENDIF).
		Script()
	require.NoError(t, err)

	e, err := NewEngine(script, 0, nil, nil)
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrDisabledOpcode))
}

func TestUnbalancedConditionalFails(t *testing.T) {
	e, err := NewEngine([]byte{OP_1, OP_IF, OP_1}, 0, nil, nil)
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrUnbalancedConditional))
}

func TestScriptTooBigRejected(t *testing.T) {
	big := make([]byte, MaxScriptSize+1)
	_, err := NewEngine(big, 0, nil, nil)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrScriptTooBig))
}

func TestOpCountLimitEnforced(t *testing.T) {
	script := make([]byte, MaxOpsPerScript+2)
	for i := range script {
		script[i] = OP_NOP
	}
	e, err := NewEngine(script, 0, nil, nil)
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrTooManyOperations))
}

func TestStackOverflowEnforced(t *testing.T) {
	// Push MaxStackSize+1 single-byte elements.
	b := NewScriptBuilder()
	for i := 0; i < MaxStackSize+1; i++ {
		b.AddInt64(1)
	}
	script, err := b.Script()
	require.NoError(t, err)

	e, err := NewEngine(script, 0, nil, nil)
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrStackOverflow))
}

func TestOpReturnFailsExecutedBranch(t *testing.T) {
	e, err := NewEngine([]byte{OP_RETURN}, 0, nil, nil)
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrEarlyReturn))
}

type fakeLockTimeContext struct {
	lockTime int64
	sequence int64
}

func (f fakeLockTimeContext) TxLockTime() int64 { return f.lockTime }
func (f fakeLockTimeContext) TxSequence() int64 { return f.sequence }

func TestCheckLockTimeVerifyLeavesArgumentOnStack(t *testing.T) {
	script, err := NewScriptBuilder().
		AddInt64(500).
		AddOp(OP_CHECKLOCKTIMEVERIFY).
		Script()
	require.NoError(t, err)

	e, err := NewEngine(script, ScriptVerifyCheckLockTimeVerify, nil,
		fakeLockTimeContext{lockTime: 600, sequence: 0})
	require.NoError(t, err)

	ok, err := e.Execute()
	require.NoError(t, err)
	require.True(t, ok)
	// OP_CHECKLOCKTIMEVERIFY must not consume its argument (BIP65):
	// the final stack still holds the pushed locktime.
	require.Equal(t, [][]byte{{500 & 0xff, 500 >> 8}}, e.dstack.stk)
}

func TestCheckLockTimeVerifyRejectsUnsatisfied(t *testing.T) {
	script, err := NewScriptBuilder().
		AddInt64(700).
		AddOp(OP_CHECKLOCKTIMEVERIFY).
		Script()
	require.NoError(t, err)

	e, err := NewEngine(script, ScriptVerifyCheckLockTimeVerify, nil,
		fakeLockTimeContext{lockTime: 600, sequence: 0})
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrUnsatisfiedLockTime))
}

func TestNonMinimalArithmeticToleratedWithoutFlag(t *testing.T) {
	// A non-minimal push (0x02 0x00) representing zero, followed by
	// OP_1ADD, must be tolerated when ScriptVerifyMinimalData isn't
	// set even though makeScriptNum would reject it under the flag.
	e, err := NewEngine([]byte{0x02, 0x00, 0x00, OP_1ADD}, 0, nil, nil)
	require.NoError(t, err)

	ok, err := e.Execute()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, [][]byte{{1}}, e.dstack.stk)
}

func TestNonMinimalArithmeticRejectedWithFlag(t *testing.T) {
	e, err := NewEngine([]byte{0x02, 0x00, 0x00, OP_1ADD}, ScriptVerifyMinimalData, nil, nil)
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
}

func TestInvalidOpcodeRejected(t *testing.T) {
	e, err := NewEngine([]byte{OP_INVALIDOPCODE}, 0, nil, nil)
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrBadOpcode))
}

func TestFromAltStackUnderflowIsAltStackError(t *testing.T) {
	e, err := NewEngine([]byte{OP_FROMALTSTACK}, 0, nil, nil)
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrInvalidAltStackOperation))
}

func TestSigPushOnlyFlagRejectsNonPushScript(t *testing.T) {
	_, err := NewEngine([]byte{OP_1, OP_DUP}, ScriptVerifySigPushOnly, nil, nil)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrNotPushOnly))
}

func TestSigPushOnlyFlagAcceptsPushOnlyScript(t *testing.T) {
	e, err := NewEngine([]byte{OP_1, OP_2}, ScriptVerifySigPushOnly, nil, nil)
	require.NoError(t, err)

	ok, err := e.Execute()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifOpcodeRejectedWhenReached(t *testing.T) {
	e, err := NewEngine([]byte{OP_VERIF}, 0, nil, nil)
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrReservedOpcode))
}

func TestVerifOpcodeSkippedInDeadBranch(t *testing.T) {
	// OP_VERIF sits in the not-taken branch, so it must be skipped like
	// any other non-conditional opcode rather than rejected up front:
	// unlike a disabled opcode, it is only illegal once actually
	// dispatched.
	script, err := NewScriptBuilder().
		AddOp(OP_0).
		AddOp(OP_IF).
		AddOp(OP_VERIF).
		AddOp(OP_ENDIF).
		AddInt64(1).
		Script()
	require.NoError(t, err)

	e, err := NewEngine(script, 0, nil, nil)
	require.NoError(t, err)

	ok, err := e.Execute()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifOpcodeDoesNotPreemptEarlierFailure(t *testing.T) {
	// OP_DROP on an empty stack fails before pc ever reaches OP_VERIF,
	// so the reported error must be the stack underflow, not
	// ErrReservedOpcode from a construction-time pre-scan.
	e, err := NewEngine([]byte{OP_DROP, OP_VERIF}, 0, nil, nil)
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
	require.False(t, IsErrorCode(err, ErrReservedOpcode))
}

func TestCleanStackFlag(t *testing.T) {
	script, err := NewScriptBuilder().AddInt64(1).AddInt64(1).Script()
	require.NoError(t, err)

	e, err := NewEngine(script, ScriptVerifyCleanStack, nil, nil)
	require.NoError(t, err)

	_, err = e.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrCleanStack))
}
