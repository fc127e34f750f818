package chunker

import (
	"regexp"
	"strings"
)

// paragraphJoin separates paragraphs packed into the same chunk.
const paragraphJoin = "\n\n"

var blankLines = regexp.MustCompile(`\n\s*\n`)

// paragraphSplitter splits content on blank lines and greedily packs
// consecutive paragraphs into chunks of at most chunkSize characters.
// A single paragraph larger than chunkSize is emitted as-is; oversizing is
// tolerated at this level rather than splitting inside a paragraph.
type paragraphSplitter struct {
	chunkSize int
}

func (p paragraphSplitter) split(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var chunks []string
	var current strings.Builder
	for _, para := range blankLines.Split(content, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if current.Len() == 0 {
			current.WriteString(para)
			continue
		}
		if current.Len()+len(paragraphJoin)+len(para) > p.chunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
			current.WriteString(para)
			continue
		}
		current.WriteString(paragraphJoin)
		current.WriteString(para)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
