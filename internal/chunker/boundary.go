package chunker

import (
	"regexp"
	"sort"
)

const (
	// minBoundarySpan is the smallest boundary-delimited span worth keeping.
	// Shorter spans are dropped outright, not merged into neighbors.
	minBoundarySpan = 50

	// minLeadingPrefix is the smallest content-before-first-boundary worth
	// emitting as its own chunk. Smaller prefixes are dropped.
	minLeadingPrefix = 100
)

// matchOffsets collects the start offsets of every match of every pattern,
// sorted ascending with duplicates removed. Offsets mark the start of a
// structural unit and are not retained after partitioning.
func matchOffsets(content string, patterns []*regexp.Regexp) []int {
	var offsets []int
	for _, re := range patterns {
		for _, loc := range re.FindAllStringIndex(content, -1) {
			offsets = append(offsets, loc[0])
		}
	}
	if len(offsets) == 0 {
		return nil
	}

	sort.Ints(offsets)
	deduped := offsets[:1]
	for _, off := range offsets[1:] {
		if off != deduped[len(deduped)-1] {
			deduped = append(deduped, off)
		}
	}
	return deduped
}

// splitByBoundaries partitions content at the match offsets of the given
// boundary patterns. Every span between consecutive offsets (and from the
// final offset to end of content) is a candidate chunk: spans shorter than
// minBoundarySpan are dropped, spans longer than chunkSize are re-split with
// the fixed splitter and spliced in place. With no matches at all, content
// that fits in one chunk is returned whole and anything larger goes to the
// fixed splitter.
func splitByBoundaries(content string, patterns []*regexp.Regexp, chunkSize, overlap int) []string {
	fixed := fixedSplitter{chunkSize: chunkSize, overlap: overlap}

	offsets := matchOffsets(content, patterns)
	if len(offsets) == 0 {
		if len(content) <= chunkSize {
			return []string{content}
		}
		return fixed.split(content)
	}

	var chunks []string
	if prefix := content[:offsets[0]]; len(prefix) > minLeadingPrefix {
		chunks = append(chunks, prefix)
	}

	for i, off := range offsets {
		end := len(content)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		span := content[off:end]
		if len(span) < minBoundarySpan {
			continue
		}
		if len(span) > chunkSize {
			chunks = append(chunks, fixed.split(span)...)
			continue
		}
		chunks = append(chunks, span)
	}
	return chunks
}
