// Copyright (c) 2026 The Stacks PoX developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package clarity

import (
	"github.com/CAGS295/stacks-core/stacks"
	"github.com/CAGS295/stacks-core/state"
)

// UseCostFunc charges execution cost units against the caller's budget.
type UseCostFunc func(cost uint64)

// Context binds a contract's data space to its hosting state,
// with an optional cost charger.
type Context struct {
	address stacks.Principal
	state   *state.State
	charger UseCostFunc
}

func NewContext(address stacks.Principal, state *state.State, charger UseCostFunc) *Context {
	return &Context{
		address: address,
		state:   state,
		charger: charger,
	}
}

func (c *Context) Address() stacks.Principal {
	return c.address
}

func (c *Context) State() *state.State {
	return c.state
}

func (c *Context) UseCost(cost uint64) {
	if c.charger != nil {
		c.charger(cost)
	}
}
