package vectorstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainmentFilter(t *testing.T) {
	got, err := containmentFilter(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = containmentFilter(map[string]any{"source": "upload", "page": 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"page":2,"source":"upload"}`, got)

	_, err = containmentFilter(map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
}

func TestNonNilMetadata(t *testing.T) {
	assert.Equal(t, map[string]any{}, nonNilMetadata(nil))
	assert.Equal(t, map[string]any{"a": 1}, nonNilMetadata(map[string]any{"a": 1}))
}

func TestEnsureIndex_RejectsNonPositiveDimension(t *testing.T) {
	s := NewPgVectorStore(nil)
	assert.ErrorIs(t, s.EnsureIndex(context.Background(), "idx", 0), ErrInvalidDimension)
}

func TestQuery_ZeroTopKReturnsEmpty(t *testing.T) {
	s := NewPgVectorStore(nil)
	got, err := s.Query(context.Background(), "idx", []float32{0.1}, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
