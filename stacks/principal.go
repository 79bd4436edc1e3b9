// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stacks

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	// Hash160Length length of the principal's public key hash in bytes.
	Hash160Length = 20
	// PrincipalLength length of a serialized standard principal in bytes.
	PrincipalLength = Hash160Length + 1
)

// Address version bytes of standard principals.
const (
	VersionMainnetSingleSig byte = 22 // 'P'
	VersionMainnetMultiSig  byte = 20 // 'M'
	VersionTestnetSingleSig byte = 26 // 'T'
	VersionTestnetMultiSig  byte = 21 // 'N'
)

// Principal identifies a standard principal: one address version byte
// followed by the hash160 of its public key(s).
type Principal [PrincipalLength]byte

var (
	_ json.Marshaler   = (*Principal)(nil)
	_ json.Unmarshaler = (*Principal)(nil)
)

// NewPrincipal assembles a principal from a version byte and hash160.
func NewPrincipal(version byte, hash160 []byte) (Principal, error) {
	if version >= 32 {
		return Principal{}, errors.New("principal version byte out of range")
	}
	if len(hash160) != Hash160Length {
		return Principal{}, errors.Errorf("hash160 must be %d bytes", Hash160Length)
	}
	var p Principal
	p[0] = version
	copy(p[1:], hash160)
	return p, nil
}

// ParsePrincipal decodes a c32check address string into a Principal.
func ParsePrincipal(s string) (Principal, error) {
	if len(s) < 6 || s[0] != 'S' {
		return Principal{}, errors.New("invalid principal string")
	}
	if s[1] >= 128 || c32Values[s[1]] < 0 {
		return Principal{}, errors.New("invalid principal version character")
	}
	version := c32Values[s[1]]
	payload, err := c32Decode(s[2:], Hash160Length+4)
	if err != nil {
		return Principal{}, err
	}
	h160, sum := payload[:Hash160Length], payload[Hash160Length:]
	if !bytes.Equal(sum, c32Checksum(byte(version), h160)) {
		return Principal{}, errors.New("principal checksum mismatch")
	}
	return NewPrincipal(byte(version), h160)
}

// MustParsePrincipal is like ParsePrincipal but panics on malformed input.
// Intended for tests and hard-coded addresses.
func MustParsePrincipal(s string) Principal {
	p, err := ParsePrincipal(s)
	if err != nil {
		panic(err)
	}
	return p
}

// BytesToPrincipal converts a byte slice into a Principal.
// If b is larger than principal length, b will be cropped (from the left).
// If b is smaller than principal length, b will be extended (from the left).
func BytesToPrincipal(b []byte) Principal {
	var p Principal
	if len(b) > PrincipalLength {
		b = b[len(b)-PrincipalLength:]
	}
	copy(p[PrincipalLength-len(b):], b)
	return p
}

// Version returns the address version byte.
func (p Principal) Version() byte {
	return p[0]
}

// Hash160 returns the 20-byte public key hash.
func (p Principal) Hash160() []byte {
	return p[1:]
}

// Bytes returns byte slice form of the principal.
func (p Principal) Bytes() []byte {
	return p[:]
}

// IsZero returns if the principal has all zero bytes.
func (p Principal) IsZero() bool {
	return p == Principal{}
}

// IsMainnet reports whether the version byte is a mainnet one.
func (p Principal) IsMainnet() bool {
	return p[0] == VersionMainnetSingleSig || p[0] == VersionMainnetMultiSig
}

// IsTestnet reports whether the version byte is a testnet one.
func (p Principal) IsTestnet() bool {
	return p[0] == VersionTestnetSingleSig || p[0] == VersionTestnetMultiSig
}

// String implements the stringer interface, rendering the c32check form.
func (p Principal) String() string {
	payload := append(append([]byte{}, p.Hash160()...), c32Checksum(p[0], p.Hash160())...)
	return "S" + string(c32Alphabet[p[0]]) + c32Encode(payload)
}

// MarshalJSON implements json.Marshaler.
func (p *Principal) MarshalJSON() ([]byte, error) {
	if p == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Principal) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePrincipal(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
