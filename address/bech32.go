package address

import "strings"

const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var bech32CharsetIndex [256]int8

func init() {
	for i := range bech32CharsetIndex {
		bech32CharsetIndex[i] = -1
	}
	for i, c := range bech32Charset {
		bech32CharsetIndex[c] = int8(i)
	}
}

// bech32Polymod computes the BCH-code polymod used by both checksum
// generation and verification, over the five generator constants of
// §4.6.
func bech32Polymod(values []byte) uint32 {
	generators := [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generators[i]
			}
		}
	}
	return chk
}

// bech32HRPExpand implements hrpExpand(hrp) from §4.6.
func bech32HRPExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

func bech32VerifyChecksum(hrp string, data []byte) bool {
	values := append(bech32HRPExpand(hrp), data...)
	return bech32Polymod(values) == 1
}

func bech32CreateChecksum(hrp string, data []byte) []byte {
	values := append(bech32HRPExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := bech32Polymod(values) ^ 1
	checksum := make([]byte, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return checksum
}

// bech32Encode assembles hrp + "1" + data + checksum, lowercased, per
// §4.6. data must already be 5-bit symbol values (0..31).
func bech32Encode(hrp string, data []byte) (string, error) {
	if len(hrp) < 1 {
		return "", ErrHrpUnknown
	}
	hrp = strings.ToLower(hrp)
	combined := append(data, bech32CreateChecksum(hrp, data)...)

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, b := range combined {
		if int(b) >= len(bech32Charset) {
			return "", ErrBadBech32Charset
		}
		sb.WriteByte(bech32Charset[b])
	}

	out := sb.String()
	if len(out) < 8 || len(out) > 90 {
		return "", ErrInvalidLength
	}
	return out, nil
}

// bech32Decode reverses bech32Encode, enforcing the case, length, and
// checksum rules of §4.6/P6/P7.
func bech32Decode(s string) (hrp string, data []byte, err error) {
	if len(s) < 8 || len(s) > 90 {
		return "", nil, ErrInvalidLength
	}

	lower := strings.ToLower(s)
	upper := strings.ToUpper(s)
	if s != lower && s != upper {
		return "", nil, ErrMixedCase
	}
	s = lower

	sepIdx := strings.LastIndexByte(s, '1')
	if sepIdx < 1 || sepIdx+7 > len(s) {
		return "", nil, ErrNoSeparator
	}

	hrp = s[:sepIdx]
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return "", nil, ErrHrpUnknown
		}
	}

	dataPart := s[sepIdx+1:]
	data = make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		v := bech32CharsetIndex[dataPart[i]]
		if v == -1 {
			return "", nil, ErrBadBech32Charset
		}
		data[i] = byte(v)
	}

	if !bech32VerifyChecksum(hrp, data) {
		return "", nil, ErrBadBech32Checksum
	}

	return hrp, data[:len(data)-6], nil
}

// convertBits regroups a slice of fromBits-wide values into a slice of
// toBits-wide values, used to move between the 8-bit witness program
// bytes and bech32's 5-bit symbols. pad controls whether a final
// under-full group is emitted (true on encode) or must be all-zero and
// dropped (false on decode).
func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	var acc uint32
	var bits uint
	var out []byte
	maxVal := uint32(1)<<toBits - 1

	for _, value := range data {
		if uint32(value)>>fromBits != 0 {
			return nil, ErrBadBech32Charset
		}
		acc = (acc << fromBits) | uint32(value)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte((acc>>bits)&maxVal))
		}
	}

	if pad {
		if bits > 0 {
			out = append(out, byte((acc<<(toBits-bits))&maxVal))
		}
	} else if bits >= fromBits || (acc<<(toBits-bits))&maxVal != 0 {
		return nil, ErrInvalidLength
	}

	return out, nil
}

// EncodeSegWitAddress encodes a witness version and program as a
// bech32 address string under hrp, enforcing the v0 program-length
// restriction of §4.6 (an Open Question the source left unenforced).
func EncodeSegWitAddress(hrp string, witnessVersion byte, program []byte) (string, error) {
	if witnessVersion > 16 {
		return "", ErrWitnessVersionOutOfRange
	}
	if err := checkWitnessProgramLength(witnessVersion, len(program)); err != nil {
		return "", err
	}

	converted, err := convertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}

	data := make([]byte, 0, 1+len(converted))
	data = append(data, witnessVersion)
	data = append(data, converted...)
	return bech32Encode(hrp, data)
}

// DecodeSegWitAddress reverses EncodeSegWitAddress.
func DecodeSegWitAddress(s string) (hrp string, witnessVersion byte, program []byte, err error) {
	hrp, data, err := bech32Decode(s)
	if err != nil {
		return "", 0, nil, err
	}
	if len(data) < 1 {
		return "", 0, nil, ErrInvalidLength
	}
	witnessVersion = data[0]
	if witnessVersion > 16 {
		return "", 0, nil, ErrWitnessVersionOutOfRange
	}

	program, err = convertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", 0, nil, err
	}
	if err := checkWitnessProgramLength(witnessVersion, len(program)); err != nil {
		return "", 0, nil, err
	}
	return hrp, witnessVersion, program, nil
}

// checkWitnessProgramLength enforces §4.6's program length rules:
// exactly 20 or 32 bytes for witness version 0, 2..40 otherwise.
func checkWitnessProgramLength(version byte, length int) error {
	if version == 0 {
		if length != 20 && length != 32 {
			return ErrProgramLength
		}
		return nil
	}
	if length < 2 || length > 40 {
		return ErrProgramLength
	}
	return nil
}
