package txscript

// MaxScriptSize is the consensus limit on total serialized script
// length (§5).
const MaxScriptSize = 10000

// MaxScriptElementSize is the consensus limit on a single pushed
// element (§5).
const MaxScriptElementSize = 520

// tokenKind discriminates the four ScriptToken variants of §3.
type tokenKind int

const (
	tokenOp tokenKind = iota
	tokenPushLength
	tokenConstant
	tokenNumber
)

// ScriptToken is the tagged variant described in §3: one of an Op, a
// PushLength marker, a Constant byte string, or a minimally-encoded
// small Number. Construct one via the NewXToken constructors rather
// than the zero value; the exported accessors report which variant is
// populated.
type ScriptToken struct {
	kind     tokenKind
	op       byte
	pushLen  int
	constant []byte
	number   int
}

func NewOpToken(op byte) ScriptToken            { return ScriptToken{kind: tokenOp, op: op} }
func NewPushLengthToken(n int) ScriptToken      { return ScriptToken{kind: tokenPushLength, pushLen: n} }
func NewConstantToken(b []byte) ScriptToken     { return ScriptToken{kind: tokenConstant, constant: b} }
func NewNumberToken(n int) ScriptToken          { return ScriptToken{kind: tokenNumber, number: n} }

func (t ScriptToken) IsOp() bool         { return t.kind == tokenOp }
func (t ScriptToken) IsPushLength() bool { return t.kind == tokenPushLength }
func (t ScriptToken) IsConstant() bool   { return t.kind == tokenConstant }
func (t ScriptToken) IsNumber() bool     { return t.kind == tokenNumber }

func (t ScriptToken) Op() byte          { return t.op }
func (t ScriptToken) PushLength() int   { return t.pushLen }
func (t ScriptToken) Constant() []byte  { return t.constant }
func (t ScriptToken) Number() int       { return t.number }

// Tokenize parses a raw script byte string into its ScriptToken
// sequence per §4.5's reverse direction. It fails on truncated pushes
// (a length byte or PUSHDATA header whose promised data runs past the
// end of the script) and on pushes exceeding MaxScriptElementSize.
func Tokenize(script []byte) ([]ScriptToken, error) {
	var tokens []ScriptToken
	i := 0
	for i < len(script) {
		b := script[i]
		switch {
		case b == OP_0:
			tokens = append(tokens, NewNumberToken(0))
			i++

		case b >= 0x01 && b <= 0x4b:
			n := int(b)
			if i+1+n > len(script) {
				return nil, scriptError(ErrMalformedPush, "push data extends past end of script")
			}
			if n > MaxScriptElementSize {
				return nil, scriptError(ErrElementTooBig, "element size exceeds max allowed size")
			}
			tokens = append(tokens, NewPushLengthToken(n))
			data := make([]byte, n)
			copy(data, script[i+1:i+1+n])
			tokens = append(tokens, NewConstantToken(data))
			i += 1 + n

		case b == OP_PUSHDATA1:
			if i+2 > len(script) {
				return nil, scriptError(ErrMalformedPush, "OP_PUSHDATA1 missing length byte")
			}
			n := int(script[i+1])
			if i+2+n > len(script) {
				return nil, scriptError(ErrMalformedPush, "OP_PUSHDATA1 data extends past end of script")
			}
			if n > MaxScriptElementSize {
				return nil, scriptError(ErrElementTooBig, "element size exceeds max allowed size")
			}
			tokens = append(tokens, NewOpToken(OP_PUSHDATA1))
			data := make([]byte, n)
			copy(data, script[i+2:i+2+n])
			tokens = append(tokens, NewConstantToken(data))
			i += 2 + n

		case b == OP_PUSHDATA2:
			if i+3 > len(script) {
				return nil, scriptError(ErrMalformedPush, "OP_PUSHDATA2 missing length bytes")
			}
			n := int(script[i+1]) | int(script[i+2])<<8
			if i+3+n > len(script) {
				return nil, scriptError(ErrMalformedPush, "OP_PUSHDATA2 data extends past end of script")
			}
			if n > MaxScriptElementSize {
				return nil, scriptError(ErrElementTooBig, "element size exceeds max allowed size")
			}
			tokens = append(tokens, NewOpToken(OP_PUSHDATA2))
			data := make([]byte, n)
			copy(data, script[i+3:i+3+n])
			tokens = append(tokens, NewConstantToken(data))
			i += 3 + n

		case b == OP_PUSHDATA4:
			if i+5 > len(script) {
				return nil, scriptError(ErrMalformedPush, "OP_PUSHDATA4 missing length bytes")
			}
			n := int(script[i+1]) | int(script[i+2])<<8 | int(script[i+3])<<16 | int(script[i+4])<<24
			if i+5+n > len(script) || n < 0 {
				return nil, scriptError(ErrMalformedPush, "OP_PUSHDATA4 data extends past end of script")
			}
			if n > MaxScriptElementSize {
				return nil, scriptError(ErrElementTooBig, "element size exceeds max allowed size")
			}
			tokens = append(tokens, NewOpToken(OP_PUSHDATA4))
			data := make([]byte, n)
			copy(data, script[i+5:i+5+n])
			tokens = append(tokens, NewConstantToken(data))
			i += 5 + n

		case b == OP_1NEGATE:
			tokens = append(tokens, NewNumberToken(-1))
			i++

		case b >= OP_1 && b <= OP_16:
			tokens = append(tokens, NewNumberToken(int(b)-int(OP_1)+1))
			i++

		default:
			tokens = append(tokens, NewOpToken(b))
			i++
		}
	}
	return tokens, nil
}

// Serialize renders a token sequence back into wire bytes per §4.5's
// forward direction. It is the exact inverse of Tokenize for any
// sequence Tokenize itself produced (P1 in §8), and additionally
// accepts PushLength/Constant pairs built by hand as long as the
// PushLength value matches the Constant's length.
func Serialize(tokens []ScriptToken) ([]byte, error) {
	out := []byte{}
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch {
		case t.IsNumber():
			switch {
			case t.Number() == 0:
				out = append(out, OP_0)
			case t.Number() == -1:
				out = append(out, OP_1NEGATE)
			case t.Number() >= 1 && t.Number() <= 16:
				out = append(out, byte(OP_1+t.Number()-1))
			default:
				return nil, scriptError(ErrInternal, "Number token out of small-int range")
			}

		case t.IsPushLength():
			if i+1 >= len(tokens) || !tokens[i+1].IsConstant() {
				return nil, scriptError(ErrInternal, "PushLength token not followed by Constant")
			}
			data := tokens[i+1].Constant()
			if len(data) != t.PushLength() {
				return nil, scriptError(ErrInternal, "PushLength value does not match Constant length")
			}
			out = append(out, byte(t.PushLength()))
			out = append(out, data...)
			i++

		case t.IsOp() && (t.Op() == OP_PUSHDATA1 || t.Op() == OP_PUSHDATA2 || t.Op() == OP_PUSHDATA4):
			if i+1 >= len(tokens) || !tokens[i+1].IsConstant() {
				return nil, scriptError(ErrInternal, "PUSHDATA opcode not followed by Constant")
			}
			data := tokens[i+1].Constant()
			out = append(out, t.Op())
			switch t.Op() {
			case OP_PUSHDATA1:
				out = append(out, byte(len(data)))
			case OP_PUSHDATA2:
				out = append(out, byte(len(data)), byte(len(data)>>8))
			case OP_PUSHDATA4:
				out = append(out, byte(len(data)), byte(len(data)>>8), byte(len(data)>>16), byte(len(data)>>24))
			}
			out = append(out, data...)
			i++

		case t.IsOp():
			out = append(out, t.Op())

		default:
			return nil, scriptError(ErrInternal, "Constant token encountered without a preceding push marker")
		}
	}
	return out, nil
}

// calculatePushOp picks the minimal push encoding for data, per
// §4.5's calculatePushOp rule, and returns the token sequence a
// ScriptBuilder should emit to push it.
func calculatePushOp(data []byte) []ScriptToken {
	n := len(data)
	switch {
	case n == 0:
		return []ScriptToken{NewNumberToken(0)}
	case n == 1 && data[0] >= 1 && data[0] <= 16:
		return []ScriptToken{NewNumberToken(int(data[0]))}
	case n == 1 && data[0] == 0x81:
		return []ScriptToken{NewNumberToken(-1)}
	case n <= 75:
		return []ScriptToken{NewPushLengthToken(n), NewConstantToken(data)}
	case n <= 255:
		return []ScriptToken{NewOpToken(OP_PUSHDATA1), NewConstantToken(data)}
	case n <= 65535:
		return []ScriptToken{NewOpToken(OP_PUSHDATA2), NewConstantToken(data)}
	default:
		return []ScriptToken{NewOpToken(OP_PUSHDATA4), NewConstantToken(data)}
	}
}
