package unidiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeUnifiedDiff(t *testing.T) {
	assert.Equal(t, "@@ -1,2 +1,2 @@\n-hello\n+bye\n world\n", ComputeUnifiedDiff("hello\nworld\n", "bye\nworld\n", DefaultContext))
	assert.Equal(t, "", ComputeUnifiedDiff("a\nb\nc\n", "a\nb\nc\n", DefaultContext))
	assert.Equal(t, "@@ -1,1 +1,2 @@\n a\n+b\n", ComputeUnifiedDiff("a\n", "a\nb\n", DefaultContext))
}

func TestBytes(t *testing.T) {
	got, err := Bytes([]byte("a\n"), []byte("a\nb\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, "@@ -1,0 +2,1 @@\n+b\n", string(got))

	_, err = Bytes([]byte("a\n"), []byte("\xfe\n"), 3)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}
