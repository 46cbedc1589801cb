package address

import (
	"encoding/hex"
	"testing"

	"github.com/btcforge/txscript/chaincfg"
	"github.com/stretchr/testify/require"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestScenarioS5PubKeyHashBase58(t *testing.T) {
	hash := mustHex("62e907b15cbf27d5425399ebf6f0fb50ebb88f18")
	addr, err := NewPubKeyHashAddress(hash, &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", addr.String())

	decoded, err := DecodeBase58(addr.String())
	require.NoError(t, err)
	require.True(t, decoded.IsPubKeyHash())
	require.Equal(t, hash, decoded.Hash160())
}

func TestBase58CheckRoundTripAndTamperDetection(t *testing.T) {
	hash := mustHex("000000000000000000000000000000000000000a")
	addr, err := NewScriptHashAddress(hash, &chaincfg.TestNetParams)
	require.NoError(t, err)

	s := addr.String()
	decoded, err := DecodeBase58(s)
	require.NoError(t, err)
	require.True(t, decoded.IsScriptHash())
	require.Equal(t, hash, decoded.Hash160())

	tampered := []byte(s)
	tampered[len(tampered)-1] ^= 0x01
	_, err = DecodeBase58(string(tampered))
	require.Error(t, err)
}

func TestScenarioS4Bech32MainnetP2WPKH(t *testing.T) {
	program := mustHex("751e76e8199196d454941c45d1b3a323f1433bd6")
	s, err := EncodeSegWitAddress("bc", 0, program)
	require.NoError(t, err)
	require.Equal(t, "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", s)

	hrp, version, decodedProgram, err := DecodeSegWitAddress(s)
	require.NoError(t, err)
	require.Equal(t, "bc", hrp)
	require.Equal(t, byte(0), version)
	require.Equal(t, program, decodedProgram)
}

func TestBech32CaseLaw(t *testing.T) {
	program := mustHex("751e76e8199196d454941c45d1b3a323f1433bd6")
	s, err := EncodeSegWitAddress("bc", 0, program)
	require.NoError(t, err)

	upper := toUpper(s)
	_, _, _, err = DecodeSegWitAddress(upper)
	require.NoError(t, err)

	mixed := s[:len(s)/2] + toUpper(s[len(s)/2:])
	_, _, _, err = DecodeSegWitAddress(mixed)
	require.Error(t, err)
}

func toUpper(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'z' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}

func TestWitnessV0ProgramLengthEnforced(t *testing.T) {
	_, err := EncodeSegWitAddress("bc", 0, make([]byte, 21))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrProgramLength)

	_, err = EncodeSegWitAddress("bc", 0, make([]byte, 32))
	require.NoError(t, err)
}

func TestDecodeAnyTriesBothEncodings(t *testing.T) {
	hash := mustHex("62e907b15cbf27d5425399ebf6f0fb50ebb88f18")
	addr, _ := NewPubKeyHashAddress(hash, &chaincfg.MainNetParams)
	decoded, err := DecodeAny(addr.String())
	require.NoError(t, err)
	require.True(t, decoded.IsPubKeyHash())

	program := mustHex("751e76e8199196d454941c45d1b3a323f1433bd6")
	bechAddr, _ := NewWitnessAddress(0, program, &chaincfg.MainNetParams)
	decoded2, err := DecodeAny(bechAddr.String())
	require.NoError(t, err)
	require.True(t, decoded2.IsWitness())

	_, err = DecodeAny("not-an-address-at-all")
	require.Error(t, err)
}
