package txscript

import "fmt"

// ScriptBuilder assembles a script one token at a time, always
// choosing the minimal push encoding via calculatePushOp. Grounded on
// the pack's own ScriptBuilder idiom (kaspad's sign.go builds
// signature scripts as `NewScriptBuilder().AddData(sig).AddData(pk).
// Script()` call chains); AddOp/AddData/AddInt64 mirror that surface.
type ScriptBuilder struct {
	tokens []ScriptToken
	err    error
}

func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{}
}

// AddOp appends op as a single opcode byte, without checking what kind
// of opcode it is. The builder records ErrScriptTooBig once the
// assembled script exceeds MaxScriptSize, matching the resource bound
// in §5.
func (b *ScriptBuilder) AddOp(op byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	b.tokens = append(b.tokens, NewOpToken(op))
	return b.checkSize()
}

// AddData appends the minimal-length push encoding for data (§4.5's
// calculatePushOp), rejecting data larger than MaxScriptElementSize.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	if len(data) > MaxScriptElementSize {
		b.err = scriptError(ErrElementTooBig, fmt.Sprintf(
			"adding %d-byte data exceeds max allowed element size", len(data)))
		return b
	}
	b.tokens = append(b.tokens, calculatePushOp(data)...)
	return b.checkSize()
}

// AddInt64 appends the minimal Number/PushLength encoding for n.
func (b *ScriptBuilder) AddInt64(n int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	switch {
	case n == -1 || (n >= 1 && n <= 16):
		b.tokens = append(b.tokens, NewNumberToken(int(n)))
	case n == 0:
		b.tokens = append(b.tokens, NewNumberToken(0))
	default:
		b.tokens = append(b.tokens, calculatePushOp(scriptNum(n).Bytes())...)
	}
	return b.checkSize()
}

func (b *ScriptBuilder) checkSize() *ScriptBuilder {
	script, err := Serialize(b.tokens)
	if err != nil {
		b.err = err
		return b
	}
	if len(script) > MaxScriptSize {
		b.err = scriptError(ErrScriptTooBig, fmt.Sprintf(
			"script size %d exceeds max allowed size %d", len(script), MaxScriptSize))
	}
	return b
}

// Script returns the assembled bytes, or any error recorded during
// construction.
func (b *ScriptBuilder) Script() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return Serialize(b.tokens)
}

// Reset clears the builder back to its initial empty state.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.tokens = nil
	b.err = nil
	return b
}
