package txscript

import "fmt"

// isArithOpcode reports whether op is one of the §4.3 numeric
// opcodes dispatched by execArithOpcode.
func isArithOpcode(op byte) bool {
	switch op {
	case OP_1ADD, OP_1SUB, OP_NEGATE, OP_ABS, OP_NOT, OP_0NOTEQUAL,
		OP_ADD, OP_SUB, OP_BOOLAND, OP_BOOLOR, OP_NUMEQUAL,
		OP_NUMEQUALVERIFY, OP_NUMNOTEQUAL, OP_LESSTHAN, OP_GREATERTHAN,
		OP_LESSTHANOREQUAL, OP_GREATERTHANOREQUAL, OP_MIN, OP_MAX,
		OP_WITHIN:
		return true
	default:
		return false
	}
}

// execArithOpcode implements §4.3's unary, binary, and ternary
// numeric opcodes. Operands are decoded as 4-byte-max ScriptNumbers;
// results are pushed back in the canonical minimal encoding.
func (e *Engine) execArithOpcode(op byte) error {
	switch op {
	case OP_1ADD, OP_1SUB, OP_NEGATE, OP_ABS, OP_NOT, OP_0NOTEQUAL:
		n, err := e.dstack.PopInt()
		if err != nil {
			return err
		}
		var result scriptNum
		switch op {
		case OP_1ADD:
			result = n + 1
		case OP_1SUB:
			result = n - 1
		case OP_NEGATE:
			result = -n
		case OP_ABS:
			if n < 0 {
				result = -n
			} else {
				result = n
			}
		case OP_NOT:
			if n == 0 {
				result = 1
			}
		case OP_0NOTEQUAL:
			if n != 0 {
				result = 1
			}
		}
		e.dstack.PushInt(result)
		return nil

	case OP_ADD, OP_SUB, OP_BOOLAND, OP_BOOLOR, OP_NUMEQUAL,
		OP_NUMEQUALVERIFY, OP_NUMNOTEQUAL, OP_LESSTHAN, OP_GREATERTHAN,
		OP_LESSTHANOREQUAL, OP_GREATERTHANOREQUAL, OP_MIN, OP_MAX:
		b, err := e.dstack.PopInt()
		if err != nil {
			return err
		}
		a, err := e.dstack.PopInt()
		if err != nil {
			return err
		}

		var result scriptNum
		switch op {
		case OP_ADD:
			result = a + b
		case OP_SUB:
			result = a - b
		case OP_BOOLAND:
			result = boolScriptNum(a != 0 && b != 0)
		case OP_BOOLOR:
			result = boolScriptNum(a != 0 || b != 0)
		case OP_NUMEQUAL, OP_NUMEQUALVERIFY:
			result = boolScriptNum(a == b)
		case OP_NUMNOTEQUAL:
			result = boolScriptNum(a != b)
		case OP_LESSTHAN:
			result = boolScriptNum(a < b)
		case OP_GREATERTHAN:
			result = boolScriptNum(a > b)
		case OP_LESSTHANOREQUAL:
			result = boolScriptNum(a <= b)
		case OP_GREATERTHANOREQUAL:
			result = boolScriptNum(a >= b)
		case OP_MIN:
			if a < b {
				result = a
			} else {
				result = b
			}
		case OP_MAX:
			if a > b {
				result = a
			} else {
				result = b
			}
		}

		if op == OP_NUMEQUALVERIFY {
			if result == 0 {
				return scriptError(ErrNumEqualVerify, "OP_NUMEQUALVERIFY failed")
			}
			return nil
		}
		e.dstack.PushInt(result)
		return nil

	case OP_WITHIN:
		max, err := e.dstack.PopInt()
		if err != nil {
			return err
		}
		min, err := e.dstack.PopInt()
		if err != nil {
			return err
		}
		x, err := e.dstack.PopInt()
		if err != nil {
			return err
		}
		e.dstack.PushBool(x >= min && x < max)
		return nil

	default:
		return scriptError(ErrInternal, fmt.Sprintf("execArithOpcode called with %s", opName(op)))
	}
}

func boolScriptNum(b bool) scriptNum {
	if b {
		return 1
	}
	return 0
}
