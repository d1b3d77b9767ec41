// Package model defines domain models for burn-claim verification and settlement.
package model

import "fmt"

// Network identifies the foreign chain network a burn must target.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)

// Burn metadata carries the target network as a single byte. Two encodings
// are accepted per network: a numeric tag and an ASCII-letter tag.
var networkTags = map[Network][2]byte{
	Mainnet: {0x01, 'M'},
	Testnet: {0x02, 'T'},
	Regtest: {0x03, 'R'},
}

// Valid reports whether n names a known network.
func (n Network) Valid() bool {
	_, ok := networkTags[n]
	return ok
}

// MatchesTag reports whether tag is a recognized encoding of the network.
func (n Network) MatchesTag(tag byte) bool {
	tags, ok := networkTags[n]
	if !ok {
		return false
	}
	return tag == tags[0] || tag == tags[1]
}

// Tag returns the canonical numeric tag for the network.
func (n Network) Tag() (byte, error) {
	tags, ok := networkTags[n]
	if !ok {
		return 0, fmt.Errorf("unsupported network %q", n)
	}
	return tags[0], nil
}
