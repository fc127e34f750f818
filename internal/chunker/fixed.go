package chunker

import "strings"

// breakSearchDivisor bounds the natural-break search to the last 20% of the
// window (chunkSize / breakSearchDivisor characters before the cut).
const breakSearchDivisor = 5

// fixedSplitter slides a character window of chunkSize across the content,
// overlapping consecutive windows by overlap characters. Cuts that fall
// mid-content snap back to a nearby newline or sentence break when one exists.
//
// Break detection recognizes only ASCII '\n' and ". "; Unicode sentence
// boundaries are out of scope.
type fixedSplitter struct {
	chunkSize int
	overlap   int
}

func (f fixedSplitter) split(content string) []string {
	if content == "" {
		return nil
	}

	var chunks []string
	start := 0
	for start < len(content) {
		end := start + f.chunkSize
		if end > len(content) {
			end = len(content)
		}

		// Neither the first nor the final cut is snapped: the first window
		// has no preceding context to rebalance, and the final one already
		// ends at the content boundary.
		if end < len(content) && start > 0 {
			end = f.snapToBreak(content, start, end)
		}

		chunks = append(chunks, content[start:end])
		if end >= len(content) {
			break
		}

		next := end - f.overlap
		if next <= start {
			// Degraded config (overlap >= chunkSize) would stall here.
			// Force forward progress instead of erroring.
			next = end
		}
		start = next
	}
	return chunks
}

// snapToBreak moves the cut point back to just after the last newline in the
// trailing search window, or failing that just after the last ". ". Returns
// end unchanged when no break exists in the window.
func (f fixedSplitter) snapToBreak(content string, start, end int) int {
	searchFrom := end - f.chunkSize/breakSearchDivisor
	if searchFrom < start {
		searchFrom = start
	}

	window := content[searchFrom:end]
	if i := strings.LastIndexByte(window, '\n'); i >= 0 {
		return searchFrom + i + 1
	}
	if i := strings.LastIndex(window, ". "); i >= 0 {
		return searchFrom + i + 2
	}
	return end
}
