package txscript

// ScriptClass identifies the standard template a ScriptPubKey matches,
// mirroring the ScriptPubKey tagged variant of §3. Grounded on the
// pack's ScriptType enum idiom (name table + sentinel + String method)
// rather than a bare int constant block.
type ScriptClass int

const (
	NonStandardTy ScriptClass = iota
	PubKeyTy
	PubKeyHashTy
	ScriptHashTy
	MultiSigTy
	NullDataTy
	WitnessV0PubKeyHashTy
	WitnessV0ScriptHashTy
	WitnessUnknownTy
	EmptyTy

	numScriptClasses
)

var scriptClassToName = [numScriptClasses]string{
	NonStandardTy:         "nonstandard",
	PubKeyTy:              "pubkey",
	PubKeyHashTy:          "pubkeyhash",
	ScriptHashTy:          "scripthash",
	MultiSigTy:            "multisig",
	NullDataTy:            "nulldata",
	WitnessV0PubKeyHashTy: "witness_v0_keyhash",
	WitnessV0ScriptHashTy: "witness_v0_scripthash",
	WitnessUnknownTy:      "witness_unknown",
	EmptyTy:               "empty",
}

func (c ScriptClass) String() string {
	if c < 0 || c >= numScriptClasses {
		return "invalid"
	}
	return scriptClassToName[c]
}

// ScriptPubKey wraps a raw output script together with its parsed
// token view and classification, per §3's ScriptPubKey tagged
// variant. The token view is Tokenize's output with the PushLength
// marker in front of each direct push dropped, so a pushed value sits
// at one index as a Constant. Extraction helpers (PubKeyHash,
// ScriptHash, ...) return their zero value plus false when Class()
// doesn't match.
type ScriptPubKey struct {
	script []byte
	tokens []ScriptToken
	class  ScriptClass
}

func (s ScriptPubKey) Script() []byte      { return s.script }
func (s ScriptPubKey) Tokens() []ScriptToken { return s.tokens }
func (s ScriptPubKey) Class() ScriptClass  { return s.class }

// ParseScriptPubKey classifies a raw output script against the
// byte-exact templates of §6.
func ParseScriptPubKey(script []byte) (ScriptPubKey, error) {
	tokens, err := Tokenize(script)
	if err != nil {
		return ScriptPubKey{}, err
	}
	view := make([]ScriptToken, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsPushLength() {
			view = append(view, t)
		}
	}
	return ScriptPubKey{
		script: script,
		tokens: view,
		class:  classifyScript(script, view),
	}, nil
}

func classifyScript(script []byte, tokens []ScriptToken) ScriptClass {
	switch {
	case len(script) == 0:
		return EmptyTy
	case isPubKeyHashScript(tokens):
		return PubKeyHashTy
	case isScriptHashScript(tokens):
		return ScriptHashTy
	case isPubKeyScript(tokens):
		return PubKeyTy
	case isMultiSigScript(tokens):
		return MultiSigTy
	case isNullDataScript(tokens):
		return NullDataTy
	case isWitnessPubKeyHashScript(tokens):
		return WitnessV0PubKeyHashTy
	case isWitnessScriptHashScript(tokens):
		return WitnessV0ScriptHashTy
	case isWitnessUnknownScript(tokens):
		return WitnessUnknownTy
	default:
		return NonStandardTy
	}
}

// isPubKeyHashScript matches OP_DUP OP_HASH160 <20 bytes>
// OP_EQUALVERIFY OP_CHECKSIG.
func isPubKeyHashScript(t []ScriptToken) bool {
	return len(t) == 5 &&
		opAt(t, 0, OP_DUP) && opAt(t, 1, OP_HASH160) &&
		t[2].IsConstant() && len(t[2].Constant()) == 20 &&
		opAt(t, 3, OP_EQUALVERIFY) && opAt(t, 4, OP_CHECKSIG)
}

// PubKeyHash returns the 20-byte hash for a PubKeyHashTy script.
func (s ScriptPubKey) PubKeyHash() ([]byte, bool) {
	if s.class != PubKeyHashTy {
		return nil, false
	}
	return s.tokens[2].Constant(), true
}

// isScriptHashScript matches OP_HASH160 <20 bytes> OP_EQUAL.
func isScriptHashScript(t []ScriptToken) bool {
	return len(t) == 3 &&
		opAt(t, 0, OP_HASH160) &&
		t[1].IsConstant() && len(t[1].Constant()) == 20 &&
		opAt(t, 2, OP_EQUAL)
}

func (s ScriptPubKey) ScriptHash() ([]byte, bool) {
	if s.class != ScriptHashTy {
		return nil, false
	}
	return s.tokens[1].Constant(), true
}

// isPubKeyScript matches <33|65 bytes> OP_CHECKSIG.
func isPubKeyScript(t []ScriptToken) bool {
	return len(t) == 2 &&
		t[0].IsConstant() && (len(t[0].Constant()) == 33 || len(t[0].Constant()) == 65) &&
		opAt(t, 1, OP_CHECKSIG)
}

func (s ScriptPubKey) PubKey() ([]byte, bool) {
	if s.class != PubKeyTy {
		return nil, false
	}
	return s.tokens[0].Constant(), true
}

// isMultiSigScript matches <m> <pk_1>…<pk_n> <n> OP_CHECKMULTISIG
// where m and n are small-int Number tokens and 0 <= m <= n <= 20.
func isMultiSigScript(t []ScriptToken) bool {
	if len(t) < 4 {
		return false
	}
	if !t[len(t)-1].IsOp() || t[len(t)-1].Op() != OP_CHECKMULTISIG {
		return false
	}
	nTok := t[len(t)-2]
	if !nTok.IsNumber() {
		return false
	}
	n := nTok.Number()
	if n < 0 || n > MaxPubKeysPerMultiSig {
		return false
	}
	if len(t) != n+3 {
		return false
	}
	mTok := t[0]
	if !mTok.IsNumber() {
		return false
	}
	m := mTok.Number()
	if m < 0 || m > n {
		return false
	}
	for i := 1; i <= n; i++ {
		if !t[i].IsConstant() {
			return false
		}
		l := len(t[i].Constant())
		if l != 33 && l != 65 {
			return false
		}
	}
	return true
}

func (s ScriptPubKey) MultiSigMandN() (m, n int, ok bool) {
	if s.class != MultiSigTy {
		return 0, 0, false
	}
	return s.tokens[0].Number(), s.tokens[len(s.tokens)-2].Number(), true
}

// isNullDataScript matches OP_RETURN optionally followed by a single push.
func isNullDataScript(t []ScriptToken) bool {
	if len(t) == 0 || !opAt(t, 0, OP_RETURN) {
		return false
	}
	if len(t) == 1 {
		return true
	}
	return len(t) == 2 && (t[1].IsConstant() || t[1].IsNumber())
}

// isWitnessPubKeyHashScript matches OP_0 <20 bytes>.
func isWitnessPubKeyHashScript(t []ScriptToken) bool {
	return len(t) == 2 && t[0].IsNumber() && t[0].Number() == 0 &&
		t[1].IsConstant() && len(t[1].Constant()) == 20
}

func (s ScriptPubKey) WitnessProgram() ([]byte, bool) {
	if s.class != WitnessV0PubKeyHashTy && s.class != WitnessV0ScriptHashTy && s.class != WitnessUnknownTy {
		return nil, false
	}
	return s.tokens[1].Constant(), true
}

// isWitnessScriptHashScript matches OP_0 <32 bytes>.
func isWitnessScriptHashScript(t []ScriptToken) bool {
	return len(t) == 2 && t[0].IsNumber() && t[0].Number() == 0 &&
		t[1].IsConstant() && len(t[1].Constant()) == 32
}

// isWitnessUnknownScript matches a future witness version (1..16)
// with a 2..40 byte program (§4.6 program length rules).
func isWitnessUnknownScript(t []ScriptToken) bool {
	if len(t) != 2 || !t[0].IsNumber() {
		return false
	}
	v := t[0].Number()
	if v < 1 || v > 16 {
		return false
	}
	if !t[1].IsConstant() {
		return false
	}
	l := len(t[1].Constant())
	return l >= 2 && l <= 40
}

func opAt(t []ScriptToken, idx int, op byte) bool {
	return idx < len(t) && t[idx].IsOp() && t[idx].Op() == op
}

// IsPushOnlyScript reports whether every token in script is a push
// (Number, PushLength+Constant, or PUSHDATA), the P2SH scriptSig rule
// enforced under ScriptVerifySigPushOnly.
func IsPushOnlyScript(script []byte) bool {
	tokens, err := Tokenize(script)
	if err != nil {
		return false
	}
	for _, t := range tokens {
		if t.IsOp() && t.Op() != OP_PUSHDATA1 && t.Op() != OP_PUSHDATA2 && t.Op() != OP_PUSHDATA4 {
			return false
		}
	}
	return true
}

// IsUnspendable reports whether script can never be satisfied: either
// an OP_RETURN template or a script whose tokenization fails.
func IsUnspendable(script []byte) bool {
	tokens, err := Tokenize(script)
	if err != nil {
		return true
	}
	return len(tokens) > 0 && tokens[0].IsOp() && tokens[0].Op() == OP_RETURN
}

// GetScriptClass is a convenience wrapper returning just the
// classification for a raw script.
func GetScriptClass(script []byte) ScriptClass {
	pk, err := ParseScriptPubKey(script)
	if err != nil {
		return NonStandardTy
	}
	return pk.class
}
