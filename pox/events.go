// Copyright (c) 2026 The Stacks PoX developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pox

import (
	"github.com/CAGS295/stacks-core/pox/delegation"
	"github.com/CAGS295/stacks-core/stacks"
)

// Event names emitted by the delegation operations.
const (
	EventDelegateStx       = "delegate-stx"
	EventRevokeDelegateStx = "revoke-delegate-stx"
)

// Event is one contract event produced while executing an operation.
// Data holds the delegation record the event is about: the created record
// for delegate-stx, the removed one for revoke-delegate-stx.
type Event struct {
	Name      string
	Delegator stacks.Principal
	Data      *delegation.Delegation
}

func (p *PoX) emit(name string, delegator stacks.Principal, data *delegation.Delegation) {
	p.events = append(p.events, &Event{
		Name:      name,
		Delegator: delegator,
		Data:      data.Copy(),
	})
}

// DrainEvents hands out the events collected since the last drain.
// The host writes them to the event log at the block-commit boundary.
func (p *PoX) DrainEvents() []*Event {
	events := p.events
	p.events = nil
	return events
}
