package chunker

import (
	"regexp"
	"strings"
)

// charsPerToken is the character-count heuristic for one token.
const charsPerToken = 4

var whitespaceRuns = regexp.MustCompile(`\s+`)

// EstimateTokens approximates the token count of text from its normalized
// character length. It is a cheap proxy, not a tokenizer: whitespace runs
// collapse to single spaces before counting, and the result is floored at 1,
// including for the empty string. Length is measured in bytes, so multi-byte
// UTF-8 text estimates slightly high.
func EstimateTokens(text string) int {
	normalized := strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
	n := len(normalized) / charsPerToken
	if n < 1 {
		return 1
	}
	return n
}
