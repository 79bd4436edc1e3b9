// Copyright (c) 2026 The Stacks PoX developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package delegation

import (
	"math/big"

	"github.com/CAGS295/stacks-core/stacks"
)

// Delegation is the active delegation record of one delegator. The ledger
// keeps at most one per delegator; a record exists exactly while the
// delegation episode is active.
type Delegation struct {
	DelegatedTo stacks.Principal // the operator authorized to stack on the delegator's behalf
	AmountUstx  *big.Int
	PoxAddr     *stacks.PoxAddr `rlp:"nil"` // reward address constraint, nil when the operator may choose
	UntilBurnHt *uint64         `rlp:"nil"` // expiration burn height, nil means no expiration
}

// IsEmpty returns whether the entry can be treated as empty.
func (d *Delegation) IsEmpty() bool {
	return d.DelegatedTo.IsZero() && d.AmountUstx == nil
}

// Expired reports whether the delegation lapsed at the given burn height.
// Enforcement happens in the stacking logic; this is a display helper.
func (d *Delegation) Expired(burnHeight uint64) bool {
	if d.UntilBurnHt == nil {
		return false
	}
	return *d.UntilBurnHt <= burnHeight
}

// Copy returns a deep copy, detached from the ledger's storage.
func (d *Delegation) Copy() *Delegation {
	if d == nil {
		return nil
	}
	cpy := &Delegation{DelegatedTo: d.DelegatedTo}
	if d.AmountUstx != nil {
		cpy.AmountUstx = new(big.Int).Set(d.AmountUstx)
	}
	cpy.PoxAddr = d.PoxAddr.Copy()
	if d.UntilBurnHt != nil {
		ht := *d.UntilBurnHt
		cpy.UntilBurnHt = &ht
	}
	return cpy
}

// Equal reports whether two records carry the same fields.
func (d *Delegation) Equal(o *Delegation) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.DelegatedTo != o.DelegatedTo {
		return false
	}
	if (d.AmountUstx == nil) != (o.AmountUstx == nil) {
		return false
	}
	if d.AmountUstx != nil && d.AmountUstx.Cmp(o.AmountUstx) != 0 {
		return false
	}
	if !d.PoxAddr.Equal(o.PoxAddr) {
		return false
	}
	if (d.UntilBurnHt == nil) != (o.UntilBurnHt == nil) {
		return false
	}
	return d.UntilBurnHt == nil || *d.UntilBurnHt == *o.UntilBurnHt
}
