package chunker

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryThresholds(t *testing.T) {
	// These heuristics are part of the chunking contract; a change here
	// changes which spans survive partitioning.
	assert.Equal(t, 50, minBoundarySpan)
	assert.Equal(t, 100, minLeadingPrefix)
	assert.Equal(t, 5, breakSearchDivisor)
}

func TestMatchOffsets_SortedAndDeduped(t *testing.T) {
	content := "foo bar foo baz"
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`foo`),
		regexp.MustCompile(`f\w+`), // overlaps with the first pattern
		regexp.MustCompile(`baz`),
	}

	offsets := matchOffsets(content, patterns)
	assert.Equal(t, []int{0, 8, 12}, offsets)
}

func TestMatchOffsets_NoMatches(t *testing.T) {
	offsets := matchOffsets("nothing here", []*regexp.Regexp{regexp.MustCompile(`zzz`)})
	assert.Nil(t, offsets)
}

func TestSplitByBoundaries_NoMatchesSmallContent(t *testing.T) {
	content := "short content without any boundary"
	patterns := []*regexp.Regexp{regexp.MustCompile(`zzz`)}

	chunks := splitByBoundaries(content, patterns, 100, 0)
	require.Len(t, chunks, 1)
	assert.Equal(t, content, chunks[0])
}

func TestSplitByBoundaries_NoMatchesLargeContentUsesFixed(t *testing.T) {
	content := strings.Repeat("q", 250)
	patterns := []*regexp.Regexp{regexp.MustCompile(`zzz`)}

	chunks := splitByBoundaries(content, patterns, 100, 20)
	require.Len(t, chunks, 3)
	assert.Equal(t, content[0:100], chunks[0])
}

func TestSplitByBoundaries_LeadingPrefix(t *testing.T) {
	boundary := regexp.MustCompile(`BOUNDARY`)
	span := "BOUNDARY " + strings.Repeat("s", 60)

	// Prefix longer than the threshold is kept as its own chunk.
	longPrefix := strings.Repeat("p", 120)
	chunks := splitByBoundaries(longPrefix+span, []*regexp.Regexp{boundary}, 500, 0)
	require.Len(t, chunks, 2)
	assert.Equal(t, longPrefix, chunks[0])

	// Shorter prefixes are dropped, not merged.
	shortPrefix := strings.Repeat("p", 40)
	chunks = splitByBoundaries(shortPrefix+span, []*regexp.Regexp{boundary}, 500, 0)
	require.Len(t, chunks, 1)
	assert.True(t, strings.HasPrefix(chunks[0], "BOUNDARY"))
}

func TestSplitByBoundaries_TinySpansDropped(t *testing.T) {
	boundary := regexp.MustCompile(`(?m)^X`)
	// Three boundary spans: 60, 10, and 70 chars. The 10-char span vanishes.
	content := "X" + strings.Repeat("a", 59) + "\nX" + strings.Repeat("b", 8) + "\nX" + strings.Repeat("c", 69)

	chunks := splitByBoundaries(content, []*regexp.Regexp{boundary}, 500, 0)
	require.Len(t, chunks, 2)
	assert.True(t, strings.HasPrefix(chunks[0], "Xaaaa"))
	assert.NotContains(t, strings.Join(chunks, ""), "bbb")
}

func TestSplitByBoundaries_OversizedSpanResplit(t *testing.T) {
	boundary := regexp.MustCompile(`(?m)^X`)
	content := "X" + strings.Repeat("a", 300)

	chunks := splitByBoundaries(content, []*regexp.Regexp{boundary}, 100, 0)
	require.GreaterOrEqual(t, len(chunks), 3)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 100)
	}
}
