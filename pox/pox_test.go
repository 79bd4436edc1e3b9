// Copyright (c) 2026 The Stacks PoX developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pox

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CAGS295/stacks-core/kvdb"
	"github.com/CAGS295/stacks-core/pox/reverts"
	"github.com/CAGS295/stacks-core/stacks"
	"github.com/CAGS295/stacks-core/state"
)

var (
	alice = stacks.MustParsePrincipal("STB44HYPYAT2BB2QE513NSP81HTMYWBJP02HPGK6")
	bob   = testPrincipal(0xb0)
	carol = testPrincipal(0xca)
)

func testPrincipal(fill byte) stacks.Principal {
	p, err := stacks.NewPrincipal(stacks.VersionTestnetSingleSig, bytes.Repeat([]byte{fill}, stacks.Hash160Length))
	if err != nil {
		panic(err)
	}
	return p
}

func newTestPoX(t *testing.T) *PoX {
	db, err := kvdb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(BootContract(false), state.New(db), nil)
}

func TestBootContract(t *testing.T) {
	assert.Equal(t, "SP000000000000000000002Q6VF78", BootContract(true).String())
	assert.True(t, BootContract(true).IsMainnet())
	assert.True(t, BootContract(false).IsTestnet())
}

func TestDelegateThenGet(t *testing.T) {
	p := newTestPoX(t)

	ok, err := p.DelegateStx(alice, big.NewInt(10000), bob, nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	info, err := p.GetDelegationInfo(alice)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, bob, info.DelegatedTo)
	assert.Equal(t, big.NewInt(10000), info.AmountUstx)
	assert.Nil(t, info.PoxAddr)
	assert.Nil(t, info.UntilBurnHt)

	// other delegators are unaffected
	info, err = p.GetDelegationInfo(bob)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestRevokeReturnsPriorRecord(t *testing.T) {
	p := newTestPoX(t)

	ht := uint64(3000)
	poxAddr := &stacks.PoxAddr{Version: 0x01, HashBytes: bytes.Repeat([]byte{0x7f}, 20)}
	_, err := p.DelegateStx(alice, big.NewInt(10000), bob, poxAddr, &ht)
	require.NoError(t, err)

	removed, err := p.RevokeDelegateStx(alice)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, bob, removed.DelegatedTo)
	assert.Equal(t, big.NewInt(10000), removed.AmountUstx)
	assert.True(t, poxAddr.Equal(removed.PoxAddr))
	require.NotNil(t, removed.UntilBurnHt)
	assert.Equal(t, ht, *removed.UntilBurnHt)

	info, err := p.GetDelegationInfo(alice)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestRevokeWithoutDelegation(t *testing.T) {
	p := newTestPoX(t)

	removed, err := p.RevokeDelegateStx(alice)
	assert.Nil(t, removed)
	require.Error(t, err)

	assert.True(t, reverts.IsRevertErr(err))
	code, ok := reverts.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeDelegationAlreadyRevoked, code)

	// failure leaves no trace
	info, err := p.GetDelegationInfo(alice)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestDoubleRevoke(t *testing.T) {
	p := newTestPoX(t)

	_, err := p.DelegateStx(alice, big.NewInt(10000), bob, nil, nil)
	require.NoError(t, err)

	removed, err := p.RevokeDelegateStx(alice)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(10000), removed.AmountUstx)

	_, err = p.RevokeDelegateStx(alice)
	require.Error(t, err)
	code, ok := reverts.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, uint32(33), code)
}

func TestRedelegationReplaces(t *testing.T) {
	p := newTestPoX(t)

	_, err := p.DelegateStx(alice, big.NewInt(10000), bob, nil, nil)
	require.NoError(t, err)
	_, err = p.DelegateStx(alice, big.NewInt(5000), carol, nil, nil)
	require.NoError(t, err)

	info, err := p.GetDelegationInfo(alice)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, carol, info.DelegatedTo)
	assert.Equal(t, big.NewInt(5000), info.AmountUstx)

	// a single revoke ends the episode; the bob record is long gone
	removed, err := p.RevokeDelegateStx(alice)
	require.NoError(t, err)
	assert.Equal(t, carol, removed.DelegatedTo)

	_, err = p.RevokeDelegateStx(alice)
	assert.True(t, reverts.IsRevertErr(err))
}

func TestDelegationEpisodesAreReentrant(t *testing.T) {
	p := newTestPoX(t)

	for i := int64(1); i <= 3; i++ {
		ok, err := p.DelegateStx(alice, big.NewInt(i*1000), bob, nil, nil)
		require.NoError(t, err)
		assert.True(t, ok)

		removed, err := p.RevokeDelegateStx(alice)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(i*1000), removed.AmountUstx)
	}

	_, err := p.RevokeDelegateStx(alice)
	assert.True(t, reverts.IsRevertErr(err))
}

func TestSelfDelegationAllowed(t *testing.T) {
	p := newTestPoX(t)

	ok, err := p.DelegateStx(alice, big.NewInt(1), alice, nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	info, err := p.GetDelegationInfo(alice)
	require.NoError(t, err)
	assert.Equal(t, alice, info.DelegatedTo)
}

func TestDelegateRevokeWithinOneBatch(t *testing.T) {
	// a revoke right after a delegate in the same batch must observe the
	// just-created record
	p := newTestPoX(t)

	_, err := p.DelegateStx(alice, big.NewInt(42), bob, nil, nil)
	require.NoError(t, err)
	removed, err := p.RevokeDelegateStx(alice)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(42), removed.AmountUstx)
}

func TestEvents(t *testing.T) {
	p := newTestPoX(t)

	_, err := p.DelegateStx(alice, big.NewInt(10000), bob, nil, nil)
	require.NoError(t, err)
	_, err = p.RevokeDelegateStx(alice)
	require.NoError(t, err)

	// the failed revoke emits nothing
	_, err = p.RevokeDelegateStx(alice)
	require.Error(t, err)

	events := p.DrainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, EventDelegateStx, events[0].Name)
	assert.Equal(t, alice, events[0].Delegator)
	assert.Equal(t, bob, events[0].Data.DelegatedTo)
	assert.Equal(t, EventRevokeDelegateStx, events[1].Name)
	assert.Equal(t, big.NewInt(10000), events[1].Data.AmountUstx)

	assert.Empty(t, p.DrainEvents())
}

func TestSnapshotDetachedFromLedger(t *testing.T) {
	p := newTestPoX(t)

	_, err := p.DelegateStx(alice, big.NewInt(10000), bob, nil, nil)
	require.NoError(t, err)

	info, err := p.GetDelegationInfo(alice)
	require.NoError(t, err)
	info.AmountUstx.SetInt64(1)

	again, err := p.GetDelegationInfo(alice)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(10000), again.AmountUstx)
}

func TestPersistsAcrossStates(t *testing.T) {
	db, err := kvdb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	st := state.New(db)
	p := New(BootContract(false), st, nil)
	_, err = p.DelegateStx(alice, big.NewInt(777), bob, nil, nil)
	require.NoError(t, err)
	require.NoError(t, st.Stage(db).Commit())

	// a fresh state over the same db sees the committed delegation
	p2 := New(BootContract(false), state.New(db), nil)
	info, err := p2.GetDelegationInfo(alice)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, big.NewInt(777), info.AmountUstx)

	removed, err := p2.RevokeDelegateStx(alice)
	require.NoError(t, err)
	assert.Equal(t, bob, removed.DelegatedTo)
}
