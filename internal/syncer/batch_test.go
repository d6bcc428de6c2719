package syncer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	items := make([]int, 1050)
	for i := range items {
		items[i] = i + 1
	}

	chunks, err := Chunk(items, 500)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 50)

	var joined []int
	for _, chunk := range chunks {
		joined = append(joined, chunk...)
	}
	assert.Equal(t, items, joined)
}

func TestChunkExactMultiple(t *testing.T) {
	chunks, err := Chunk([]string{"a", "b", "c", "d"}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, chunks)
}

func TestChunkEmpty(t *testing.T) {
	chunks, err := Chunk([]int(nil), 10)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestChunkInvalidSize(t *testing.T) {
	_, err := Chunk([]int{1, 2, 3}, 0)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)

	_, err = Chunk([]int{1, 2, 3}, -5)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}
