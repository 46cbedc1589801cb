package txscript

import (
	"bytes"
	"fmt"
)

// isSpliceOpcode reports whether op is one of the enabled byte-string
// opcodes of §4.3's bitwise section. The disabled splice/bitwise
// opcodes (OP_CAT, OP_SUBSTR, OP_LEFT, OP_RIGHT, OP_INVERT, OP_AND,
// OP_OR, OP_XOR, and the disabled arithmetic ones) never reach here:
// isDisabledOpcode rejects them earlier in the control loop regardless
// of dispatch family.
func isSpliceOpcode(op byte) bool {
	switch op {
	case OP_EQUAL, OP_EQUALVERIFY, OP_SIZE:
		return true
	default:
		return false
	}
}

// execSpliceOpcode implements OP_EQUAL/OP_EQUALVERIFY (exact byte
// comparison) and OP_SIZE (push operand length without popping it).
func (e *Engine) execSpliceOpcode(op byte) error {
	switch op {
	case OP_EQUAL, OP_EQUALVERIFY:
		a, err := e.dstack.PopByteArray()
		if err != nil {
			return err
		}
		b, err := e.dstack.PopByteArray()
		if err != nil {
			return err
		}
		equal := bytes.Equal(a, b)
		if op == OP_EQUALVERIFY {
			if !equal {
				return scriptError(ErrEqualVerify, "OP_EQUALVERIFY failed")
			}
			return nil
		}
		e.dstack.PushBool(equal)
		return nil

	case OP_SIZE:
		v, err := e.dstack.PeekByteArray(0)
		if err != nil {
			return scriptError(ErrInvalidStackOperation, "OP_SIZE requires a non-empty stack")
		}
		e.dstack.PushInt(scriptNum(len(v)))
		return nil

	default:
		return scriptError(ErrInternal, fmt.Sprintf("execSpliceOpcode called with %s", opName(op)))
	}
}
