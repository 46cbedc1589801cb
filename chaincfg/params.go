// Package chaincfg defines the network parameters (version bytes and
// bech32 human-readable parts) that the address package's codecs are
// parameterized over, grounded on the pack's own Params/Register
// pattern (kaspad's dagconfig.Params, indexed by a Prefix field per
// network) generalized here to Bitcoin's Base58/Bech32 pair.
package chaincfg

// Params describes one Bitcoin-style network's address parameters.
type Params struct {
	Name string

	PubKeyHashAddrID byte
	ScriptHashAddrID byte

	Bech32HRPSegwit string
}

// MainNetParams are the parameters for the production Bitcoin network.
var MainNetParams = Params{
	Name:             "mainnet",
	PubKeyHashAddrID: 0x00,
	ScriptHashAddrID: 0x05,
	Bech32HRPSegwit:  "bc",
}

// TestNetParams are the parameters for the public test network.
var TestNetParams = Params{
	Name:             "testnet",
	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0xc4,
	Bech32HRPSegwit:  "tb",
}

// RegressionNetParams are the parameters for a local regression test
// network; it shares testnet's address parameters.
var RegressionNetParams = Params{
	Name:             "regtest",
	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0xc4,
	Bech32HRPSegwit:  "tb",
}

// registeredParams holds every network registered via Register, by
// name, for ParamsByName lookups.
var registeredParams = map[string]*Params{}

// registrationOrder holds the same networks in registration order, so
// that a version byte shared by more than one network (testnet and
// regtest both use 0x6f/0xc4) always resolves to the same network
// regardless of Go's randomized map iteration order.
var registrationOrder []*Params

// Register adds p to the set of known networks. Networks are
// registered in the order below, and that order breaks any tie
// between networks that share a version byte.
func Register(p *Params) {
	registeredParams[p.Name] = p
	registrationOrder = append(registrationOrder, p)
}

func init() {
	Register(&MainNetParams)
	Register(&TestNetParams)
	Register(&RegressionNetParams)
}

// ParamsByName looks up a registered network's Params by name.
func ParamsByName(name string) (*Params, bool) {
	p, ok := registeredParams[name]
	return p, ok
}

// IsPubKeyHashAddrID reports whether id is a recognized P2PKH version
// byte across all registered networks, and if so which one. Ties are
// broken by registration order.
func IsPubKeyHashAddrID(id byte) (*Params, bool) {
	for _, p := range registrationOrder {
		if p.PubKeyHashAddrID == id {
			return p, true
		}
	}
	return nil, false
}

// IsScriptHashAddrID reports whether id is a recognized P2SH version
// byte across all registered networks, and if so which one. Ties are
// broken by registration order.
func IsScriptHashAddrID(id byte) (*Params, bool) {
	for _, p := range registrationOrder {
		if p.ScriptHashAddrID == id {
			return p, true
		}
	}
	return nil, false
}
