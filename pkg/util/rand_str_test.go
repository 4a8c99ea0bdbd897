package util

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandStr(t *testing.T) {
	s := RandStr(10)
	assert.Len(t, s, 10)

	for _, r := range s {
		assert.Contains(t, charset, string(r))
	}
}

func TestGenerateToken(t *testing.T) {
	tok, err := GenerateToken(10)
	require.NoError(t, err)
	assert.Len(t, tok, 20)

	_, err = hex.DecodeString(tok)
	assert.NoError(t, err)

	other, err := GenerateToken(10)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}
