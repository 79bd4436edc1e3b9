// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	lru "github.com/hashicorp/golang-lru"

	"github.com/CAGS295/stacks-core/kvdb"
	"github.com/CAGS295/stacks-core/stackedmap"
	"github.com/CAGS295/stacks-core/stacks"
)

const readCacheSize = 2048

// Error is the error caused by accessing the backing store.
type Error struct {
	err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.err)
}

// dataKey locates one entry of a contract's data space.
type dataKey struct {
	addr stacks.Principal
	key  stacks.Bytes32
}

// State manages contract data spaces over a key/value snapshot.
// All mutations are journaled and stay in memory until staged for commit.
type State struct {
	db    kvdb.Getter
	cache *lru.Cache // dataKey -> rlp.RawValue, read-through over db
	sm    *stackedmap.StackedMap[dataKey, rlp.RawValue]
}

// New creates a state over the given snapshot.
func New(db kvdb.Getter) *State {
	cache, _ := lru.New(readCacheSize)
	s := &State{db: db, cache: cache}
	s.sm = stackedmap.New(s.load)
	s.sm.Push() // base layer holding uncheckpointed writes
	return s
}

// load reads one entry through the cache from the backing store.
func (s *State) load(k dataKey) (rlp.RawValue, bool, error) {
	if v, ok := s.cache.Get(k); ok {
		return v.(rlp.RawValue), true, nil
	}
	raw, err := s.db.Get(storageKey(k))
	if err != nil {
		if s.db.IsNotFound(err) {
			s.cache.Add(k, rlp.RawValue(nil))
			return nil, true, nil
		}
		return nil, false, &Error{err}
	}
	s.cache.Add(k, rlp.RawValue(raw))
	return raw, true, nil
}

func storageKey(k dataKey) []byte {
	return append(append([]byte{}, k.addr.Bytes()...), k.key.Bytes()...)
}

// GetRawData returns the RLP encoded data value, nil if unset.
func (s *State) GetRawData(addr stacks.Principal, key stacks.Bytes32) (rlp.RawValue, error) {
	raw, _, err := s.sm.Get(dataKey{addr, key})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// SetRawData sets the RLP encoded data value. A nil raw deletes the entry.
func (s *State) SetRawData(addr stacks.Principal, key stacks.Bytes32, raw rlp.RawValue) {
	s.sm.Put(dataKey{addr, key}, raw)
}

// EncodeData sets data value encoded by the given enc callback.
// The entry is deleted when enc returns nil bytes.
func (s *State) EncodeData(addr stacks.Principal, key stacks.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return err
	}
	s.SetRawData(addr, key, raw)
	return nil
}

// DecodeData decodes data value by the given dec callback.
// dec receives nil bytes when the entry is unset.
func (s *State) DecodeData(addr stacks.Principal, key stacks.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawData(addr, key)
	if err != nil {
		return err
	}
	return dec(raw)
}

// NewCheckpoint makes a checkpoint of the current state.
// It returns the checkpoint to be passed to RevertTo.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo reverts the state to the given checkpoint.
// Panics if the checkpoint is invalid.
func (s *State) RevertTo(checkpoint int) {
	s.sm.PopTo(checkpoint)
}

// Stage collects all journaled changes into a commitable stage.
func (s *State) Stage(putter kvdb.Putter) *Stage {
	final := make(map[dataKey]rlp.RawValue)
	s.sm.Journal(func(k dataKey, v rlp.RawValue) bool {
		final[k] = v
		return true
	})
	return &Stage{putter: putter, changes: final, cache: s.cache}
}
