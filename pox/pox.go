// Copyright (c) 2026 The Stacks PoX developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pox

import (
	"math/big"

	"github.com/CAGS295/stacks-core/clarity"
	"github.com/CAGS295/stacks-core/log"
	"github.com/CAGS295/stacks-core/metrics"
	"github.com/CAGS295/stacks-core/pox/delegation"
	"github.com/CAGS295/stacks-core/pox/reverts"
	"github.com/CAGS295/stacks-core/stacks"
	"github.com/CAGS295/stacks-core/state"
)

// Error codes of the delegation operations, as enumerated by the contract.
const (
	// CodeDelegationAlreadyRevoked is returned by revoke-delegate-stx when
	// the caller has no active delegation, covering both "never delegated"
	// and "already revoked".
	CodeDelegationAlreadyRevoked uint32 = 33
)

var (
	logger = log.WithContext("pkg", "pox")

	metricOps = metrics.LazyLoadCounterVec("delegation_ops_total", []string{"op", "outcome"})
)

func SetLogger(l log.Logger) {
	logger = l
}

// PoX implements the delegation operations of the PoX boot contract.
// All records live in the hosting state; the PoX value itself only carries
// the handles plus the events of the current batch. It is not safe for
// concurrent use: operations of one batch are applied strictly in order.
type PoX struct {
	addr  stacks.Principal
	state *state.State

	delegations *delegation.Service

	events []*Event
}

// New creates an instance bound to the boot contract address over the
// given state. charger may be nil when execution cost is not metered.
func New(addr stacks.Principal, state *state.State, charger clarity.UseCostFunc) *PoX {
	cctx := clarity.NewContext(addr, state, charger)
	return &PoX{
		addr:        addr,
		state:       state,
		delegations: delegation.New(cctx),
	}
}

// BootContract returns the address hosting the PoX contract on the
// given network: the zero hash160 under the network's version byte.
func BootContract(mainnet bool) stacks.Principal {
	version := stacks.VersionTestnetSingleSig
	if mainnet {
		version = stacks.VersionMainnetSingleSig
	}
	p, _ := stacks.NewPrincipal(version, make([]byte, stacks.Hash160Length))
	return p
}

//
// Getters - no state change
//

// GetDelegationInfo returns the caller's active delegation record,
// nil when there is none. It never reverts.
func (p *PoX) GetDelegationInfo(delegator stacks.Principal) (*delegation.Delegation, error) {
	return p.delegations.Get(delegator)
}

//
// Setters - state change
//

// DelegateStx creates or replaces the caller's delegation record.
// Re-delegating never fails: the prior record, if any, is overwritten.
// Amount and reward address plausibility are checked by the stacking
// operations that later consume the record, not here.
func (p *PoX) DelegateStx(
	delegator stacks.Principal,
	amountUstx *big.Int,
	delegatedTo stacks.Principal,
	poxAddr *stacks.PoxAddr,
	untilBurnHt *uint64,
) (bool, error) {
	logger.Debug("delegate-stx",
		"delegator", delegator,
		"amount", amountUstx,
		"delegatedTo", delegatedTo,
	)

	checkpoint := p.state.NewCheckpoint()
	record := &delegation.Delegation{
		DelegatedTo: delegatedTo,
		AmountUstx:  new(big.Int).Set(amountUstx),
		PoxAddr:     poxAddr.Copy(),
	}
	if untilBurnHt != nil {
		ht := *untilBurnHt
		record.UntilBurnHt = &ht
	}

	if err := p.delegations.Upsert(delegator, record); err != nil {
		p.state.RevertTo(checkpoint)
		metricOps().AddWithLabel(1, map[string]string{"op": "delegate", "outcome": "error"})
		return false, err
	}

	p.emit(EventDelegateStx, delegator, record)
	metricOps().AddWithLabel(1, map[string]string{"op": "delegate", "outcome": "ok"})
	logger.Info("delegated stake",
		"delegator", delegator,
		"amount", amountUstx,
		"delegatedTo", delegatedTo,
	)
	return true, nil
}

// RevokeDelegateStx removes the caller's delegation record and returns a
// snapshot of what was revoked. It reverts with CodeDelegationAlreadyRevoked
// when no active record exists; the state is left untouched in that case.
func (p *PoX) RevokeDelegateStx(delegator stacks.Principal) (*delegation.Delegation, error) {
	logger.Debug("revoke-delegate-stx", "delegator", delegator)

	checkpoint := p.state.NewCheckpoint()
	removed, err := p.delegations.Remove(delegator)
	if err != nil {
		p.state.RevertTo(checkpoint)
		metricOps().AddWithLabel(1, map[string]string{"op": "revoke", "outcome": "error"})
		return nil, err
	}
	if removed == nil {
		p.state.RevertTo(checkpoint)
		metricOps().AddWithLabel(1, map[string]string{"op": "revoke", "outcome": "already-revoked"})
		logger.Debug("nothing to revoke", "delegator", delegator)
		return nil, reverts.New(CodeDelegationAlreadyRevoked, "delegation already revoked")
	}

	p.emit(EventRevokeDelegateStx, delegator, removed)
	metricOps().AddWithLabel(1, map[string]string{"op": "revoke", "outcome": "ok"})
	logger.Info("revoked delegation",
		"delegator", delegator,
		"amount", removed.AmountUstx,
		"delegatedTo", removed.DelegatedTo,
	)
	return removed, nil
}
