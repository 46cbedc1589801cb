package txscript

import "fmt"

// stack is the LIFO byte-slice stack shared by both the main data stack
// and the alt stack (§3). Every element is an opaque byte slice; a
// numeric or boolean interpretation is applied by the caller (via
// makeScriptNum / asBool) rather than by the stack itself, matching how
// the pack's own engines keep the stack representation-agnostic.
type stack struct {
	stk [][]byte

	// verifyMinimalData mirrors the engine's ScriptVerifyMinimalData
	// flag so PopInt/PeekInt can enforce (or tolerate) non-minimal
	// numeric encodings without threading the flag through every call
	// site.
	verifyMinimalData bool
}

func (s *stack) Depth() int {
	return len(s.stk)
}

func (s *stack) PushByteArray(so []byte) {
	s.stk = append(s.stk, so)
}

func (s *stack) PushInt(n scriptNum) {
	s.PushByteArray(n.Bytes())
}

func (s *stack) PushBool(b bool) {
	if b {
		s.PushByteArray([]byte{1})
	} else {
		s.PushByteArray(nil)
	}
}

// PopByteArray pops the top element off the stack.
func (s *stack) PopByteArray() ([]byte, error) {
	return s.nipN(0)
}

func (s *stack) PopInt() (scriptNum, error) {
	return s.popIntWithLen(defaultScriptNumLen)
}

func (s *stack) popIntWithLen(scriptNumLen int) (scriptNum, error) {
	v, err := s.PopByteArray()
	if err != nil {
		return 0, err
	}
	return makeScriptNum(v, s.verifyMinimalData, scriptNumLen)
}

func (s *stack) PopBool() (bool, error) {
	v, err := s.PopByteArray()
	if err != nil {
		return false, err
	}
	return asBool(v), nil
}

// PeekByteArray returns the Nth item on the stack without removing it,
// where 0 is the top of stack.
func (s *stack) PeekByteArray(idx int) ([]byte, error) {
	sz := len(s.stk)
	if idx < 0 || idx >= sz {
		return nil, scriptError(ErrInvalidStackOperation, "stack index out of range")
	}
	return s.stk[sz-idx-1], nil
}

func (s *stack) PeekInt(idx int) (scriptNum, error) {
	v, err := s.PeekByteArray(idx)
	if err != nil {
		return 0, err
	}
	return makeScriptNum(v, s.verifyMinimalData, defaultScriptNumLen)
}

func (s *stack) PeekBool(idx int) (bool, error) {
	v, err := s.PeekByteArray(idx)
	if err != nil {
		return false, err
	}
	return asBool(v), nil
}

// nipN removes the Nth item from the stack (0 being the top) and
// returns it, shifting everything above it down by one.
func (s *stack) nipN(idx int) ([]byte, error) {
	sz := len(s.stk)
	if idx < 0 || idx >= sz {
		return nil, scriptError(ErrInvalidStackOperation, "stack index out of range")
	}
	so := s.stk[sz-idx-1]
	if idx == 0 {
		s.stk = s.stk[:sz-1]
		return so, nil
	}
	copy(s.stk[sz-idx-1:], s.stk[sz-idx:])
	s.stk = s.stk[:sz-1]
	return so, nil
}

// Tuck copies the top item on the stack and inserts the copy below the
// second-from-top item (… a b → … b a b).
func (s *stack) Tuck() error {
	so2, err := s.PopByteArray()
	if err != nil {
		return err
	}
	so1, err := s.PopByteArray()
	if err != nil {
		return err
	}
	s.PushByteArray(so2)
	s.PushByteArray(so1)
	s.PushByteArray(so2)
	return nil
}

// DropN removes the top N items from the stack.
func (s *stack) DropN(n int) error {
	if n < 1 {
		return scriptError(ErrInvalidStackOperation, "attempt to drop fewer than one item")
	}
	for ; n > 0; n-- {
		if _, err := s.PopByteArray(); err != nil {
			return err
		}
	}
	return nil
}

// DupN duplicates the top N items on the stack, preserving order.
func (s *stack) DupN(n int) error {
	if n < 1 {
		return scriptError(ErrInvalidStackOperation, "attempt to dup fewer than one item")
	}
	for i := n; i > 0; i-- {
		so, err := s.PeekByteArray(n - 1)
		if err != nil {
			return err
		}
		s.PushByteArray(so)
	}
	return nil
}

// RotN rotates the top 3N items on the stack left by N.
func (s *stack) RotN(n int) error {
	if n < 1 {
		return scriptError(ErrInvalidStackOperation, "attempt to rotate fewer than one item")
	}
	entry := 3*n - 1
	for i := n; i > 0; i-- {
		so, err := s.nipN(entry)
		if err != nil {
			return err
		}
		s.PushByteArray(so)
	}
	return nil
}

// SwapN swaps the top N items on the stack with the second-from-top N
// items.
func (s *stack) SwapN(n int) error {
	if n < 1 {
		return scriptError(ErrInvalidStackOperation, "attempt to swap fewer than one item")
	}
	for i := n; i > 0; i-- {
		so, err := s.nipN(n*2 - 1)
		if err != nil {
			return err
		}
		s.PushByteArray(so)
	}
	return nil
}

// OverN copies N items N items back to the top of the stack.
func (s *stack) OverN(n int) error {
	if n < 1 {
		return scriptError(ErrInvalidStackOperation, "attempt to perform OVER on fewer than one item")
	}
	entry := 2*n - 1
	for ; n > 0; n-- {
		so, err := s.PeekByteArray(entry)
		if err != nil {
			return err
		}
		s.PushByteArray(so)
	}
	return nil
}

// PickN copies the item N items back in the stack to the top.
func (s *stack) PickN(n int) error {
	so, err := s.PeekByteArray(n)
	if err != nil {
		return err
	}
	s.PushByteArray(so)
	return nil
}

// RollN moves the item N items back in the stack to the top.
func (s *stack) RollN(n int) error {
	so, err := s.nipN(n)
	if err != nil {
		return err
	}
	s.PushByteArray(so)
	return nil
}

// String renders the stack top-to-bottom for debug logging, matching
// the compact hex-dump style used by disassembler-adjacent code paths.
func (s *stack) String() string {
	var result string
	for i := len(s.stk) - 1; i >= 0; i-- {
		result += fmt.Sprintf("%02d: %x\n", len(s.stk)-i-1, s.stk[i])
	}
	return result
}

// asBool interprets a raw stack element as the boolean truth value
// consensus scripts use: any nonzero byte other than a negative zero
// (0x80 as the sole or trailing byte) is true, everything else false.
func asBool(v []byte) bool {
	for i := range v {
		if v[i] != 0 {
			if i == len(v)-1 && v[i] == 0x80 {
				return false
			}
			return true
		}
	}
	return false
}

// fromBool encodes the boolean truth value the way OP_1/OP_0-style
// results are pushed back onto the stack.
func fromBool(b bool) []byte {
	if b {
		return []byte{1}
	}
	return nil
}
