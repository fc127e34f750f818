package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedSplitter_Empty(t *testing.T) {
	f := fixedSplitter{chunkSize: 100, overlap: 20}
	assert.Empty(t, f.split(""))
}

func TestFixedSplitter_ContentFitsOneChunk(t *testing.T) {
	f := fixedSplitter{chunkSize: 100, overlap: 20}

	for _, content := range []string{
		"short",
		"two\nlines with a newline",
		strings.Repeat("a", 100),
	} {
		chunks := f.split(content)
		require.Len(t, chunks, 1)
		assert.Equal(t, content, chunks[0])
	}
}

func TestFixedSplitter_OverlapWindows(t *testing.T) {
	// 250 chars with no natural break points: windows advance by
	// chunkSize - overlap and the final chunk absorbs the remainder.
	content := strings.Repeat("A", 250)
	f := fixedSplitter{chunkSize: 100, overlap: 20}

	chunks := f.split(content)
	require.Len(t, chunks, 3)
	assert.Equal(t, content[0:100], chunks[0])
	assert.Equal(t, content[80:180], chunks[1])
	assert.Equal(t, content[160:250], chunks[2])
}

func TestFixedSplitter_SnapsToNewline(t *testing.T) {
	// A newline at offset 185 falls inside the second window's break-search
	// region [180, 200); the cut snaps to just after it.
	content := strings.Repeat("a", 185) + "\n" + strings.Repeat("b", 114)
	f := fixedSplitter{chunkSize: 100, overlap: 0}

	chunks := f.split(content)
	require.GreaterOrEqual(t, len(chunks), 3)
	assert.Equal(t, content[0:100], chunks[0], "first chunk is never snapped")
	assert.Equal(t, content[100:186], chunks[1])
	assert.True(t, strings.HasSuffix(chunks[1], "\n"))
}

func TestFixedSplitter_SnapsToSentenceBreak(t *testing.T) {
	// No newline in the search region, so the last ". " wins instead.
	content := strings.Repeat("a", 183) + ". " + strings.Repeat("b", 115)
	f := fixedSplitter{chunkSize: 100, overlap: 0}

	chunks := f.split(content)
	require.GreaterOrEqual(t, len(chunks), 3)
	assert.Equal(t, content[100:185], chunks[1])
	assert.True(t, strings.HasSuffix(chunks[1], ". "))
}

func TestFixedSplitter_DegradedOverlapStillTerminates(t *testing.T) {
	// overlap >= chunkSize would stall without the forced-progress guard.
	content := strings.Repeat("z", 120)
	f := fixedSplitter{chunkSize: 50, overlap: 50}

	chunks := f.split(content)
	require.Len(t, chunks, 3)
	assert.Equal(t, content[0:50], chunks[0])
	assert.Equal(t, content[50:100], chunks[1])
	assert.Equal(t, content[100:120], chunks[2])
}

func TestFixedSplitter_CoversContentInOrder(t *testing.T) {
	content := strings.Repeat("m", 523)
	f := fixedSplitter{chunkSize: 64, overlap: 16}

	chunks := f.split(content)
	require.NotEmpty(t, chunks)

	// Every chunk is a verbatim substring and the concatenation without
	// overlap reproduces the source left to right.
	covered := 0
	for i, chunk := range chunks {
		assert.Contains(t, content, chunk)
		advance := len(chunk)
		if i > 0 {
			advance -= f.overlap
		}
		covered += advance
	}
	assert.Equal(t, len(content), covered)
}
