package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens_EmptyString(t *testing.T) {
	// The floor applies even to empty input.
	assert.Equal(t, 1, EstimateTokens(""))
}

func TestEstimateTokens_ShortInput(t *testing.T) {
	assert.Equal(t, 1, EstimateTokens("ab"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcdefgh"))
}

func TestEstimateTokens_WhitespaceCollapses(t *testing.T) {
	// Runs of whitespace count as a single space after normalization.
	assert.Equal(t, EstimateTokens("alpha beta"), EstimateTokens("alpha \t\n   beta"))
	assert.Equal(t, 1, EstimateTokens("   \n\t  "))
}

func TestEstimateTokens_Monotonic(t *testing.T) {
	prev := 0
	for n := 0; n <= 64; n++ {
		got := EstimateTokens(strings.Repeat("x", n))
		assert.GreaterOrEqual(t, got, 1)
		assert.GreaterOrEqual(t, got, prev, "estimate must not decrease with length %d", n)
		prev = got
	}
}

func TestEstimateTokens_ProportionalToLength(t *testing.T) {
	text := strings.Repeat("a", 400)
	assert.Equal(t, 100, EstimateTokens(text))
}
