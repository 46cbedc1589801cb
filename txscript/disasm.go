package txscript

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// DisasmString renders script as a human-readable opcode listing
// (space-separated mnemonics, push data as hex), the debug-diagnostics
// surface §7 calls for ("the remaining program snapshot for
// diagnostics"). Malformed input still renders as much as parses,
// with a trailing "[error]" marker, matching the pack's own
// best-effort disassembler behavior.
func DisasmString(script []byte) string {
	tokens, err := Tokenize(script)
	if err != nil {
		partial, _ := tokensToAsm(bestEffortTokenize(script))
		if partial != "" {
			return partial + " [error]"
		}
		return "[error]"
	}
	asm, _ := tokensToAsm(tokens)
	return asm
}

func tokensToAsm(tokens []ScriptToken) (string, error) {
	var parts []string
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch {
		case t.IsNumber():
			parts = append(parts, strconv.Itoa(t.Number()))
		case t.IsPushLength():
			if i+1 < len(tokens) && tokens[i+1].IsConstant() {
				parts = append(parts, hex.EncodeToString(tokens[i+1].Constant()))
				i++
			}
		case t.IsOp() && (t.Op() == OP_PUSHDATA1 || t.Op() == OP_PUSHDATA2 || t.Op() == OP_PUSHDATA4):
			if i+1 < len(tokens) && tokens[i+1].IsConstant() {
				parts = append(parts, opName(t.Op())+" "+hex.EncodeToString(tokens[i+1].Constant()))
				i++
			}
		case t.IsOp():
			parts = append(parts, opName(t.Op()))
		}
	}
	return strings.Join(parts, " "), nil
}

// bestEffortTokenize tokenizes as much of script as parses cleanly,
// stopping at the first malformed push instead of failing outright.
func bestEffortTokenize(script []byte) []ScriptToken {
	for end := len(script); end > 0; end-- {
		if tokens, err := Tokenize(script[:end]); err == nil {
			return tokens
		}
	}
	return nil
}
