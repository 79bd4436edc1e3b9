// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stacks

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrincipal(t *testing.T) {
	tests := []struct {
		addr    string
		version byte
		hash160 string
	}{
		{"STB44HYPYAT2BB2QE513NSP81HTMYWBJP02HPGK6", VersionTestnetSingleSig, "164247d6f2b425ac5771423ae6c80c754f7172b0"},
		{"SP3X6QWWETNBZWGBK6DRGTR1KX50S74D3433WDGJY", VersionMainnetSingleSig, "fa6bf38ed557fe417333710d6033e9419391a320"},
	}

	for _, tt := range tests {
		p, err := ParsePrincipal(tt.addr)
		require.NoError(t, err)
		assert.Equal(t, tt.version, p.Version())
		assert.Equal(t, tt.hash160, hex.EncodeToString(p.Hash160()))
		assert.Equal(t, tt.addr, p.String())
	}
}

func TestParsePrincipalErrors(t *testing.T) {
	_, err := ParsePrincipal("")
	assert.Error(t, err)

	_, err = ParsePrincipal("XB44HYPYAT2BB2QE513NSP81HTMYWBJP02HPGK6")
	assert.Error(t, err)

	// flipped checksum digit
	_, err = ParsePrincipal("STB44HYPYAT2BB2QE513NSP81HTMYWBJP02HPGK7")
	assert.Error(t, err)
}

func TestNewPrincipal(t *testing.T) {
	h160 := make([]byte, Hash160Length)
	_, err := NewPrincipal(32, h160)
	assert.Error(t, err, "version byte must stay below 32")

	_, err = NewPrincipal(VersionMainnetSingleSig, h160[:19])
	assert.Error(t, err)

	p, err := NewPrincipal(VersionMainnetSingleSig, h160)
	require.NoError(t, err)
	assert.True(t, p.IsMainnet())
	assert.False(t, p.IsTestnet())
}

func TestPrincipalNetworks(t *testing.T) {
	testnet := MustParsePrincipal("STB44HYPYAT2BB2QE513NSP81HTMYWBJP02HPGK6")
	assert.True(t, testnet.IsTestnet())
	assert.False(t, testnet.IsMainnet())

	mainnet := MustParsePrincipal("SP3X6QWWETNBZWGBK6DRGTR1KX50S74D3433WDGJY")
	assert.True(t, mainnet.IsMainnet())
	assert.False(t, mainnet.IsTestnet())
}

func TestPrincipalJSON(t *testing.T) {
	p := MustParsePrincipal("SP3X6QWWETNBZWGBK6DRGTR1KX50S74D3433WDGJY")

	data, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.Equal(t, `"SP3X6QWWETNBZWGBK6DRGTR1KX50S74D3433WDGJY"`, string(data))

	var decoded Principal
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p, decoded)
}

func TestBytesToPrincipal(t *testing.T) {
	p := BytesToPrincipal([]byte{1, 2, 3})
	assert.Equal(t, byte(3), p[PrincipalLength-1])
	assert.True(t, BytesToPrincipal(nil).IsZero())
}
