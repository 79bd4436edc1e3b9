// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"
	lru "github.com/hashicorp/golang-lru"

	"github.com/CAGS295/stacks-core/kvdb"
)

// Stage is the set of final data changes of a state,
// ready to be persisted at the block-commit boundary.
type Stage struct {
	putter  kvdb.Putter
	changes map[dataKey]rlp.RawValue
	cache   *lru.Cache
}

// Len returns the number of changed entries.
func (stg *Stage) Len() int {
	return len(stg.changes)
}

// Commit writes all changes into the backing store in one batch.
func (stg *Stage) Commit() error {
	batch := stg.putter.NewBatch()
	for k, raw := range stg.changes {
		if len(raw) == 0 {
			if err := batch.Delete(storageKey(k)); err != nil {
				return &Error{err}
			}
		} else {
			if err := batch.Put(storageKey(k), raw); err != nil {
				return &Error{err}
			}
		}
	}
	if err := batch.Write(); err != nil {
		return &Error{err}
	}
	// keep the read cache coherent with what was just persisted
	for k, raw := range stg.changes {
		stg.cache.Add(k, raw)
	}
	return nil
}
