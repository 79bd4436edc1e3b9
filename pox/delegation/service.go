// Copyright (c) 2026 The Stacks PoX developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package delegation

import (
	"github.com/pkg/errors"

	"github.com/CAGS295/stacks-core/clarity"
	"github.com/CAGS295/stacks-core/stacks"
)

var slotDelegations = stacks.BytesToBytes32([]byte("pox-delegation-state"))

// Service persists delegation records in the hosting contract's data space,
// keyed by the delegator principal.
type Service struct {
	delegations *clarity.DataMap[stacks.Principal, *Delegation]
}

func New(cctx *clarity.Context) *Service {
	return &Service{
		delegations: clarity.NewDataMap[stacks.Principal, *Delegation](cctx, slotDelegations),
	}
}

// Get retrieves the delegator's active record, nil when there is none.
func (s *Service) Get(delegator stacks.Principal) (*Delegation, error) {
	has, err := s.delegations.Has(delegator)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check delegation")
	}
	if !has {
		return nil, nil
	}
	d, err := s.delegations.Get(delegator)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get delegation")
	}
	return d, nil
}

// Upsert creates or replaces the delegator's record.
func (s *Service) Upsert(delegator stacks.Principal, d *Delegation) error {
	has, err := s.delegations.Has(delegator)
	if err != nil {
		return errors.Wrap(err, "failed to check delegation")
	}
	if err := s.delegations.Set(delegator, d, !has); err != nil {
		return errors.Wrap(err, "failed to set delegation")
	}
	return nil
}

// Remove deletes the delegator's record and returns what was removed,
// nil when there was nothing to remove.
func (s *Service) Remove(delegator stacks.Principal) (*Delegation, error) {
	prior, err := s.Get(delegator)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, nil
	}
	if err := s.delegations.Delete(delegator); err != nil {
		return nil, errors.Wrap(err, "failed to delete delegation")
	}
	return prior, nil
}
