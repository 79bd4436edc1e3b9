// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CAGS295/stacks-core/kvdb"
	"github.com/CAGS295/stacks-core/stacks"
)

var testContract = stacks.MustParsePrincipal("SP3X6QWWETNBZWGBK6DRGTR1KX50S74D3433WDGJY")

func slot(name string) stacks.Bytes32 {
	return stacks.BytesToBytes32([]byte(name))
}

func TestStateRawData(t *testing.T) {
	db, err := kvdb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	st := New(db)

	raw, err := st.GetRawData(testContract, slot("k"))
	require.NoError(t, err)
	assert.Nil(t, raw)

	st.SetRawData(testContract, slot("k"), rlp.RawValue{0x01})
	raw, err = st.GetRawData(testContract, slot("k"))
	require.NoError(t, err)
	assert.Equal(t, rlp.RawValue{0x01}, raw)
}

func TestStateCheckpointRevert(t *testing.T) {
	db, err := kvdb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	st := New(db)
	st.SetRawData(testContract, slot("k"), rlp.RawValue{0x01})

	cp := st.NewCheckpoint()
	st.SetRawData(testContract, slot("k"), rlp.RawValue{0x02})
	st.SetRawData(testContract, slot("k2"), rlp.RawValue{0x03})
	st.RevertTo(cp)

	raw, err := st.GetRawData(testContract, slot("k"))
	require.NoError(t, err)
	assert.Equal(t, rlp.RawValue{0x01}, raw)

	raw, err = st.GetRawData(testContract, slot("k2"))
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestStateEncodeDecode(t *testing.T) {
	db, err := kvdb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	st := New(db)

	require.NoError(t, st.EncodeData(testContract, slot("n"), func() ([]byte, error) {
		return rlp.EncodeToBytes(uint64(42))
	}))

	var n uint64
	require.NoError(t, st.DecodeData(testContract, slot("n"), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &n)
	}))
	assert.Equal(t, uint64(42), n)
}

func TestStageCommit(t *testing.T) {
	db, err := kvdb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	st := New(db)
	st.SetRawData(testContract, slot("a"), rlp.RawValue{0x01})
	st.SetRawData(testContract, slot("a"), rlp.RawValue{0x02}) // overwrite
	st.SetRawData(testContract, slot("b"), rlp.RawValue{0x03})

	stage := st.Stage(db)
	assert.Equal(t, 2, stage.Len())
	require.NoError(t, stage.Commit())

	// a fresh state over the same db sees the committed values
	st2 := New(db)
	raw, err := st2.GetRawData(testContract, slot("a"))
	require.NoError(t, err)
	assert.Equal(t, rlp.RawValue{0x02}, raw)

	// deletion round-trips too
	st2.SetRawData(testContract, slot("b"), nil)
	require.NoError(t, st2.Stage(db).Commit())

	st3 := New(db)
	raw, err = st3.GetRawData(testContract, slot("b"))
	require.NoError(t, err)
	assert.Nil(t, raw)
}
