package txscript

// isStackOpcode reports whether op is one of the §4.2 stack/alt-stack
// manipulators dispatched by execStackOpcode.
func isStackOpcode(op byte) bool {
	switch op {
	case OP_TOALTSTACK, OP_FROMALTSTACK, OP_2DROP, OP_2DUP, OP_3DUP,
		OP_2OVER, OP_2ROT, OP_2SWAP, OP_IFDUP, OP_DEPTH, OP_DROP,
		OP_DUP, OP_NIP, OP_OVER, OP_PICK, OP_ROLL, OP_ROT, OP_SWAP,
		OP_TUCK:
		return true
	default:
		return false
	}
}

// execStackOpcode implements the schemas of §4.2. Top of stack is the
// rightmost element in each schema comment, matching the spec's
// notation.
func (e *Engine) execStackOpcode(op byte) error {
	switch op {
	case OP_TOALTSTACK:
		v, err := e.dstack.PopByteArray()
		if err != nil {
			return err
		}
		e.astack.PushByteArray(v)
		return nil

	case OP_FROMALTSTACK:
		if e.astack.Depth() < 1 {
			return scriptError(ErrInvalidAltStackOperation, "alt stack empty for OP_FROMALTSTACK")
		}
		v, err := e.astack.PopByteArray()
		if err != nil {
			return err
		}
		e.dstack.PushByteArray(v)
		return nil

	case OP_2DROP:
		return e.dstack.DropN(2)

	case OP_2DUP:
		return e.dstack.DupN(2)

	case OP_3DUP:
		return e.dstack.DupN(3)

	case OP_2OVER:
		return e.dstack.OverN(2)

	case OP_2ROT:
		return e.dstack.RotN(2)

	case OP_2SWAP:
		return e.dstack.SwapN(2)

	case OP_IFDUP:
		v, err := e.dstack.PeekByteArray(0)
		if err != nil {
			return err
		}
		if asBool(v) {
			e.dstack.PushByteArray(v)
		}
		return nil

	case OP_DEPTH:
		// §9 Open Question: follow Bitcoin Core semantics (push the
		// current data-stack depth), not the excerpted source's
		// literal "script.size >= 1" check.
		e.dstack.PushInt(scriptNum(e.dstack.Depth()))
		return nil

	case OP_DROP:
		return e.dstack.DropN(1)

	case OP_DUP:
		return e.dstack.DupN(1)

	case OP_NIP:
		_, err := e.dstack.nipN(1)
		return err

	case OP_OVER:
		return e.dstack.OverN(1)

	case OP_PICK, OP_ROLL:
		n, err := e.dstack.PopInt()
		if err != nil {
			return err
		}
		idx := n.Int()
		if idx < 0 || idx >= e.dstack.Depth() {
			return scriptError(ErrInvalidStackOperation, "pick/roll index out of range")
		}
		if op == OP_PICK {
			return e.dstack.PickN(idx)
		}
		return e.dstack.RollN(idx)

	case OP_ROT:
		return e.dstack.RotN(1)

	case OP_SWAP:
		return e.dstack.SwapN(1)

	case OP_TUCK:
		return e.dstack.Tuck()

	default:
		return scriptError(ErrInternal, "execStackOpcode called with a non-stack opcode")
	}
}
