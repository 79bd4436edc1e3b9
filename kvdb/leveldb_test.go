// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kvdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *LevelDB {
	db, err := NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLevelDB(t *testing.T) {
	db := newTestDB(t)

	key := []byte("key")
	value := []byte("value")

	_, err := db.Get(key)
	assert.True(t, db.IsNotFound(err))

	require.NoError(t, db.Put(key, value))

	got, err := db.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, got)

	has, err := db.Has(key)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, db.Delete(key))
	has, err = db.Has(key)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestLevelDBBatch(t *testing.T) {
	db := newTestDB(t)

	batch := db.NewBatch()
	require.NoError(t, batch.Put([]byte("k1"), []byte("v1")))
	require.NoError(t, batch.Put([]byte("k2"), []byte("v2")))
	assert.Equal(t, 2, batch.Len())

	// nothing visible before Write
	has, err := db.Has([]byte("k1"))
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, batch.Write())

	v, err := db.Get([]byte("k2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}

func TestLevelDBIterator(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Put([]byte("a1"), []byte("1")))
	require.NoError(t, db.Put([]byte("a2"), []byte("2")))
	require.NoError(t, db.Put([]byte("b1"), []byte("3")))

	it := db.NewIterator(Range{From: []byte("a"), To: []byte("b")})
	defer it.Release()

	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Key()))
	}
	require.NoError(t, it.Error())
	assert.Equal(t, []string{"a1", "a2"}, keys)
}

func TestBucket(t *testing.T) {
	db := newTestDB(t)

	b1 := Bucket("b1-").NewGetPutter(db)
	b2 := Bucket("b2-").NewGetPutter(db)

	require.NoError(t, b1.Put([]byte("k"), []byte("v1")))
	require.NoError(t, b2.Put([]byte("k"), []byte("v2")))

	v, err := b1.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	v, err = b2.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)

	_, err = b1.Get([]byte("missing"))
	assert.True(t, b1.IsNotFound(err))

	it := b1.NewIterator(Range{})
	defer it.Release()
	require.True(t, it.Next())
	assert.Equal(t, []byte("k"), it.Key())
	assert.False(t, it.Next())

	batch := b2.NewBatch()
	require.NoError(t, batch.Delete([]byte("k")))
	require.NoError(t, batch.Write())
	has, err := b2.Has([]byte("k"))
	require.NoError(t, err)
	assert.False(t, has)
}
