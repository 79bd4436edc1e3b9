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

// DataVar is a single-slot storage value, the Go rendering of a Clarity
// `define-data-var`.
type DataVar[T any] struct {
	context *Context
	pos     stacks.Bytes32
}

func NewDataVar[T any](context *Context, pos stacks.Bytes32) *DataVar[T] {
	return &DataVar[T]{context: context, pos: pos}
}

// Get fetches the stored value. An unset slot yields the zero value
// (a nil pointer stays nil, unlike DataMap.Get).
func (v *DataVar[T]) Get() (value T, err error) {
	err = v.context.state.DecodeData(v.context.address, v.pos, func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		if reflect.ValueOf(value).Kind() == reflect.Ptr {
			value = reflect.New(reflect.TypeOf(value).Elem()).Interface().(T)
		}
		words := (uint64(len(raw)) + 31) / 32
		v.context.UseCost(words * wordReadCost)
		return rlp.DecodeBytes(raw, &value)
	})
	return
}

// Upsert stores the value.
func (v *DataVar[T]) Upsert(value T) error {
	return v.context.state.EncodeData(v.context.address, v.pos, func() ([]byte, error) {
		val, err := rlp.EncodeToBytes(value)
		if err != nil {
			return nil, err
		}
		words := (uint64(len(val)) + 31) / 32
		v.context.UseCost(words * wordSetCost)
		return val, nil
	})
}
