package address

import "github.com/pkg/errors"

// Sentinel errors surfaced by address decoding, matching the taxonomy
// in spec §7. Callers branch on these with errors.Is.
var (
	ErrBadBase58              = errors.New("bad base58 string")
	ErrBadChecksum            = errors.New("checksum mismatch")
	ErrUnknownVersion         = errors.New("unknown base58 version byte")
	ErrInvalidPayloadLen      = errors.New("payload is not 20 bytes")
	ErrBadBech32Charset       = errors.New("invalid bech32 character")
	ErrBadBech32Checksum      = errors.New("bech32 checksum mismatch")
	ErrMixedCase              = errors.New("bech32 string mixes upper and lower case")
	ErrHrpUnknown             = errors.New("unrecognized bech32 human-readable part")
	ErrProgramLength          = errors.New("witness program has an invalid length")
	ErrWitnessVersionOutOfRange = errors.New("witness version out of range")
	ErrNoSeparator            = errors.New("bech32 string missing separator character")
	ErrInvalidLength          = errors.New("bech32 string has invalid overall length")
	ErrUnsupportedAddress     = errors.New("address string is neither valid base58check nor valid bech32")
)
