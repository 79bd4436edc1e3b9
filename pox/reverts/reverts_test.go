// Copyright (c) 2026 The Stacks PoX developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_Reverts(t *testing.T) {
	revert := New(33, "delegation already revoked")
	assert.Equal(t, "delegation already revoked (err u33)", revert.Error())
	assert.Equal(t, uint32(33), revert.Code())

	assert.True(t, IsRevertErr(revert))
	assert.False(t, IsRevertErr(nil))
	assert.False(t, IsRevertErr(fmt.Errorf("test")))
	assert.False(t, IsRevertErr(big.NewInt(0)))
}

func Test_CodeOf(t *testing.T) {
	revert := New(33, "delegation already revoked")

	code, ok := CodeOf(revert)
	assert.True(t, ok)
	assert.Equal(t, uint32(33), code)

	// survives wrapping
	code, ok = CodeOf(errors.Wrap(revert, "revoke"))
	assert.True(t, ok)
	assert.Equal(t, uint32(33), code)

	_, ok = CodeOf(errors.New("plain"))
	assert.False(t, ok)
}
