package address

import "crypto/sha256"

const checksumLen = 4

func doubleSHA256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

func checksum(data []byte) [checksumLen]byte {
	var cksum [checksumLen]byte
	copy(cksum[:], doubleSHA256(data)[:checksumLen])
	return cksum
}

// base58CheckEncode encodes payload with the given version byte and an
// appended 4-byte double-SHA256 checksum, per §4.6.
func base58CheckEncode(version byte, payload []byte) string {
	data := make([]byte, 0, 1+len(payload)+checksumLen)
	data = append(data, version)
	data = append(data, payload...)
	cksum := checksum(data)
	data = append(data, cksum[:]...)
	return base58Encode(data)
}

// base58CheckDecode reverses base58CheckEncode, verifying the trailing
// checksum and returning the version byte and payload separately.
func base58CheckDecode(s string) (version byte, payload []byte, err error) {
	decoded, err := base58Decode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) < 1+checksumLen {
		return 0, nil, ErrBadBase58
	}

	body := decoded[:len(decoded)-checksumLen]
	var wantSum [checksumLen]byte
	copy(wantSum[:], decoded[len(decoded)-checksumLen:])
	if checksum(body) != wantSum {
		return 0, nil, ErrBadChecksum
	}

	return body[0], body[1:], nil
}
