package txscript

import "fmt"

// isFlowOpcode reports whether op is one of the control-flow opcodes
// of §4.4 dispatched by execFlowOpcode. isConditionalOpcode in
// opcode.go covers the subset (IF/NOTIF/ELSE/ENDIF) that must run even
// inside a currently-disabled branch; VERIFY/RETURN never do.
func isFlowOpcode(op byte) bool {
	return isConditionalOpcode(op) || op == OP_VERIFY || op == OP_RETURN
}

// execFlowOpcode implements §4.4's control-flow opcodes and the
// conditional-stack state machine of §3/§9.
func (e *Engine) execFlowOpcode(op byte) error {
	switch op {
	case OP_IF, OP_NOTIF:
		cond := false
		if e.isBranchExecuting() {
			v, err := e.dstack.PopByteArray()
			if err != nil {
				return scriptError(ErrUnbalancedConditional, "stack empty before OP_IF/OP_NOTIF")
			}
			if e.flags&ScriptVerifyMinimalIf != 0 {
				if len(v) > 1 || (len(v) == 1 && v[0] != 1) {
					return scriptError(ErrMinimalIf, "OP_IF/OP_NOTIF argument must be minimally encoded")
				}
			}
			cond = asBool(v)
			if op == OP_NOTIF {
				cond = !cond
			}
		}
		e.condStack = append(e.condStack, cond)
		return nil

	case OP_ELSE:
		if len(e.condStack) == 0 {
			return scriptError(ErrUnbalancedConditional, "OP_ELSE without matching OP_IF")
		}
		e.condStack[len(e.condStack)-1] = !e.condStack[len(e.condStack)-1]
		return nil

	case OP_ENDIF:
		if len(e.condStack) == 0 {
			return scriptError(ErrUnbalancedConditional, "OP_ENDIF without matching OP_IF")
		}
		e.condStack = e.condStack[:len(e.condStack)-1]
		return nil

	case OP_VERIFY:
		v, err := e.dstack.PopBool()
		if err != nil {
			return err
		}
		if !v {
			return scriptError(ErrVerify, "OP_VERIFY failed")
		}
		return nil

	case OP_RETURN:
		return scriptError(ErrEarlyReturn, "OP_RETURN executed")

	default:
		return scriptError(ErrInternal, fmt.Sprintf("execFlowOpcode called with %s", opName(op)))
	}
}
