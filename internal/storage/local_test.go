package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRoundTrip(t *testing.T) {
	ctx := context.Background()
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, l.Put(ctx, "abc.txt", strings.NewReader("hello"), 5, "text/plain"))

	b, err := ReadAll(ctx, l, "abc.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	require.NoError(t, l.Delete(ctx, "abc.txt"))

	_, err = l.Open(ctx, "abc.txt")
	assert.ErrorIs(t, err, ErrNotExist)

	assert.NoError(t, l.Delete(ctx, "abc.txt"))
}

func TestLocalRejectsTraversal(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../etc/passwd", `a\b`} {
		_, err := l.Open(context.Background(), key)
		assert.Error(t, err, key)
	}
}
