package txscript

import "fmt"

// defaultScriptNumLen is the maximum number of bytes a script number may
// occupy on the stack for ordinary arithmetic opcodes, per §4.5.
const defaultScriptNumLen = 4

// scriptNum represents a numeric value interpreted from, or destined
// for, the stack using the signed-magnitude little-endian encoding
// described in §4.5: the value's magnitude is stored little-endian in
// the minimum number of bytes, and the most significant bit of the
// last byte is the sign flag. Because it fits in an int64 well past
// the sizes any consensus opcode ever manipulates, arithmetic is done
// in ordinary Go int64 space and only converted at the encoding
// boundary.
type scriptNum int64

// makeScriptNum interprets the bytes in v as a script number, enforcing
// the maximal length that opcode allows (arithmetic inputs are capped at
// 4 bytes by default; OP_CHECKLOCKTIMEVERIFY-style callers pass 5) and,
// when requireMinimal is set, that the encoding is the shortest one
// possible for the value (the MINIMALDATA-adjacent rule described in
// §4.5's "Decoding" bullet).
func makeScriptNum(v []byte, requireMinimal bool, scriptNumLen int) (scriptNum, error) {
	if len(v) > scriptNumLen {
		return 0, scriptError(ErrNumberTooBig, fmt.Sprintf(
			"numeric value encoded as %d bytes, max allowed is %d", len(v), scriptNumLen))
	}
	if requireMinimal && len(v) > 0 {
		// The last byte, masked off the sign bit, must be nonzero:
		// otherwise the value could have been encoded in one byte
		// fewer, unless doing so would have made the top bit of the
		// second-to-last byte look like a sign bit already in use.
		if v[len(v)-1]&0x7f == 0 {
			if len(v) == 1 || v[len(v)-2]&0x80 == 0 {
				return 0, scriptError(ErrMinimalData, "numeric value encoded with a stray trailing zero byte")
			}
		}
	}

	if len(v) == 0 {
		return 0, nil
	}

	var result int64
	for i, b := range v {
		result |= int64(b) << uint8(8*i)
	}

	// The top bit of the last byte is the sign flag, not part of the
	// magnitude; strip it before applying the sign.
	if v[len(v)-1]&0x80 != 0 {
		result &= ^(int64(0x80) << uint8(8*(len(v)-1)))
		return scriptNum(-result), nil
	}
	return scriptNum(result), nil
}

// Bytes serializes n back into the signed-magnitude little-endian form
// described in §4.5. Zero always serializes to the empty byte slice.
func (n scriptNum) Bytes() []byte {
	if n == 0 {
		return nil
	}

	isNegative := n < 0
	m := int64(n)
	if isNegative {
		m = -m
	}

	var result []byte
	for m > 0 {
		result = append(result, byte(m&0xff))
		m >>= 8
	}

	// If the most significant byte already has its high bit set, an
	// extra zero (or 0x80) byte is needed so the sign bit doesn't
	// collide with the magnitude.
	if result[len(result)-1]&0x80 != 0 {
		extra := byte(0x00)
		if isNegative {
			extra = 0x80
		}
		result = append(result, extra)
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}
	return result
}

// Int32 clamps n to the int32 range, matching consensus behavior for
// opcodes (OP_PICK/OP_ROLL indices, CHECKMULTISIG counts) that only
// ever need small values regardless of what a script pushed.
func (n scriptNum) Int32() int32 {
	if int64(n) > int64(2147483647) {
		return 2147483647
	}
	if int64(n) < int64(-2147483648) {
		return -2147483648
	}
	return int32(n)
}

func (n scriptNum) Int() int {
	return int(n.Int32())
}

func (n scriptNum) Bool() bool {
	return n != 0
}
