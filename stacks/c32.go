// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stacks

import (
	"crypto/sha256"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// c32 is the Crockford-style base32 variant used by c32check addresses.
// The alphabet drops I, L, O and U to avoid transcription mistakes.
const c32Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var c32Values = func() [128]int8 {
	var v [128]int8
	for i := range v {
		v[i] = -1
	}
	for i, c := range c32Alphabet {
		v[c] = int8(i)
	}
	// homoglyphs accepted on decode
	v['O'] = 0
	v['L'] = 1
	v['I'] = 1
	return v
}()

// c32Encode encodes data 5 bits at a time, least significant bits first.
// Each leading zero byte of data is preserved as a leading '0' digit.
func c32Encode(data []byte) string {
	n := new(big.Int).SetBytes(data)
	bits := len(data) * 8

	var sb strings.Builder
	mask := big.NewInt(0x1f)
	d := new(big.Int)
	for i := 0; i < (bits+4)/5; i++ {
		d.And(n, mask)
		sb.WriteByte(c32Alphabet[d.Uint64()])
		n.Rsh(n, 5)
	}

	// reverse and normalize leading zeros
	raw := []byte(sb.String())
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}
	enc := strings.TrimLeft(string(raw), "0")
	lead := 0
	for _, b := range data {
		if b != 0 {
			break
		}
		lead++
	}
	return strings.Repeat("0", lead) + enc
}

// c32Decode decodes a c32 string into exactly size bytes.
func c32Decode(s string, size int) ([]byte, error) {
	n := new(big.Int)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 128 || c32Values[c] < 0 {
			return nil, errors.Errorf("invalid c32 character %q", s[i])
		}
		n.Lsh(n, 5)
		n.Or(n, big.NewInt(int64(c32Values[c])))
	}
	if n.BitLen() > size*8 {
		return nil, errors.New("c32 payload overflows expected size")
	}
	return n.FillBytes(make([]byte, size)), nil
}

// c32Checksum is the first 4 bytes of sha256(sha256(version || payload)).
func c32Checksum(version byte, payload []byte) []byte {
	first := sha256.Sum256(append([]byte{version}, payload...))
	second := sha256.Sum256(first[:])
	return second[:4]
}
