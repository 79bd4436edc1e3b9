// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stacks

import (
	"encoding/hex"
	"fmt"
)

// PoxAddr describes where PoX rewards should be paid on the burn chain.
// It is carried opaquely by the delegation ledger; structural validation
// against the set of supported burn-chain address formats happens in the
// stacking logic, not here.
type PoxAddr struct {
	Version   byte
	HashBytes []byte
}

// String implements the stringer interface.
func (a *PoxAddr) String() string {
	return fmt.Sprintf("%#x:%s", a.Version, hex.EncodeToString(a.HashBytes))
}

// Copy returns a deep copy, so holders cannot alias the ledger's bytes.
func (a *PoxAddr) Copy() *PoxAddr {
	if a == nil {
		return nil
	}
	return &PoxAddr{
		Version:   a.Version,
		HashBytes: append([]byte{}, a.HashBytes...),
	}
}

// Equal reports whether two reward addresses are byte-wise identical.
func (a *PoxAddr) Equal(b *PoxAddr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Version != b.Version || len(a.HashBytes) != len(b.HashBytes) {
		return false
	}
	for i := range a.HashBytes {
		if a.HashBytes[i] != b.HashBytes[i] {
			return false
		}
	}
	return true
}
