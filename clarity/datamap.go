// Copyright (c) 2026 The Stacks PoX developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package clarity

import (
	"reflect"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/CAGS295/stacks-core/stacks"
)

// per-word cost charged against the execution budget
const (
	wordReadCost  uint64 = 200
	wordSetCost   uint64 = 5000
	wordResetCost uint64 = 800
)

type Key interface {
	Bytes() []byte
}

// DataMap is a named key/value storage abstraction for boot contracts,
// the Go rendering of a Clarity `define-map`. Entries live in the hosting
// state under blake2b(key, basePos) and hold the RLP encoding of V.
type DataMap[K Key, V any] struct {
	context *Context
	basePos stacks.Bytes32
}

func NewDataMap[K Key, V any](context *Context, pos stacks.Bytes32) *DataMap[K, V] {
	return &DataMap[K, V]{context: context, basePos: pos}
}

// Get fetches the entry at key. For pointer-typed V the zero entry decodes
// to a freshly allocated value, so callers always get a usable pointer.
func (m *DataMap[K, V]) Get(key K) (value V, err error) {
	position := stacks.Blake2b(key.Bytes(), m.basePos.Bytes())
	err = m.context.state.DecodeData(m.context.address, position, func(raw []byte) error {
		if reflect.ValueOf(value).Kind() == reflect.Ptr {
			value = reflect.New(reflect.TypeOf(value).Elem()).Interface().(V)
		}
		if len(raw) == 0 {
			return nil
		}
		words := (uint64(len(raw)) + 31) / 32
		m.context.UseCost(words * wordReadCost)
		return rlp.DecodeBytes(raw, &value)
	})
	return
}

// Has reports whether an entry exists at key without decoding it.
func (m *DataMap[K, V]) Has(key K) (bool, error) {
	position := stacks.Blake2b(key.Bytes(), m.basePos.Bytes())
	raw, err := m.context.state.GetRawData(m.context.address, position)
	if err != nil {
		return false, err
	}
	return len(raw) > 0, nil
}

// Set stores the entry at key. newValue hints whether the slot is being
// written for the first time, which charges the higher cost.
func (m *DataMap[K, V]) Set(key K, value V, newValue bool) error {
	position := stacks.Blake2b(key.Bytes(), m.basePos.Bytes())
	return m.context.state.EncodeData(m.context.address, position, func() ([]byte, error) {
		val, err := rlp.EncodeToBytes(value)
		if err != nil {
			return nil, err
		}
		words := (uint64(len(val)) + 31) / 32
		if newValue {
			m.context.UseCost(words * wordSetCost)
		} else {
			m.context.UseCost(words * wordResetCost)
		}
		return val, nil
	})
}

// Delete removes the entry at key.
func (m *DataMap[K, V]) Delete(key K) error {
	position := stacks.Blake2b(key.Bytes(), m.basePos.Bytes())
	m.context.UseCost(wordResetCost)
	return m.context.state.EncodeData(m.context.address, position, func() ([]byte, error) {
		return nil, nil
	})
}
