package eventdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CAGS295/stacks-core/stacks"
)

var (
	alice = stacks.MustParsePrincipal("STB44HYPYAT2BB2QE513NSP81HTMYWBJP02HPGK6")
	bob   = stacks.MustParsePrincipal("SP3X6QWWETNBZWGBK6DRGTR1KX50S74D3433WDGJY")
)

func newTestDB(t *testing.T) *EventDB {
	db, err := NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seed(t *testing.T, db *EventDB) {
	require.NoError(t, db.Insert([]*Event{
		{BurnHeight: 100, Index: 0, Origin: alice, Name: "delegate-stx", Data: []byte{0x01}},
		{BurnHeight: 100, Index: 1, Origin: bob, Name: "delegate-stx", Data: []byte{0x02}},
		{BurnHeight: 101, Index: 0, Origin: alice, Name: "revoke-delegate-stx", Data: []byte{0x03}},
	}))
}

func TestInsertAndFilterAll(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)

	events, err := db.Filter(nil)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, uint64(100), events[0].BurnHeight)
	assert.Equal(t, alice, events[0].Origin)
	assert.Equal(t, []byte{0x01}, events[0].Data)
}

func TestFilterByOrigin(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)

	events, err := db.Filter(&Filter{Origin: &bob})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, bob, events[0].Origin)
}

func TestFilterByName(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)

	events, err := db.Filter(&Filter{Name: "revoke-delegate-stx"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(101), events[0].BurnHeight)
}

func TestFilterRangeAndOrder(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)

	events, err := db.Filter(&Filter{
		Range: &Range{From: 100, To: 100},
	})
	require.NoError(t, err)
	assert.Len(t, events, 2)

	events, err = db.Filter(&Filter{Order: DESC})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, uint64(101), events[0].BurnHeight)
}

func TestFilterOptions(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)

	events, err := db.Filter(&Filter{
		Options: &Options{Offset: 1, Limit: 1},
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint32(1), events[0].Index)
}
