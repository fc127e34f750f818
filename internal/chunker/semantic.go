package chunker

import (
	"regexp"
	"strings"
)

var (
	// Markdown ATX headings: "# Title" through "###### Title".
	atxHeading = regexp.MustCompile(`(?m)^#{1,6}[ \t]+\S.*$`)
	// Setext headings: a text line underlined with = or - characters.
	setextHeading = regexp.MustCompile(`(?m)^[^\n]+\n(?:=+|-+)[ \t]*$`)
)

// semanticSplitter partitions content into sections at heading boundaries.
// Oversized sections are re-split with the paragraph splitter in place;
// content with no headings falls back to the paragraph splitter entirely,
// and the fixed splitter is the last resort when nothing else produced a
// chunk.
type semanticSplitter struct {
	chunkSize int
	overlap   int
}

func (s semanticSplitter) split(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	para := paragraphSplitter{chunkSize: s.chunkSize}
	offsets := matchOffsets(content, []*regexp.Regexp{atxHeading, setextHeading})
	if len(offsets) == 0 {
		return para.split(content)
	}

	var chunks []string
	if lead := strings.TrimSpace(content[:offsets[0]]); lead != "" {
		chunks = append(chunks, lead)
	}

	for i, off := range offsets {
		end := len(content)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		section := strings.TrimSpace(content[off:end])
		if section == "" {
			continue
		}
		if len(section) > s.chunkSize {
			chunks = append(chunks, para.split(section)...)
			continue
		}
		chunks = append(chunks, section)
	}

	if len(chunks) == 0 {
		return fixedSplitter{chunkSize: s.chunkSize, overlap: s.overlap}.split(content)
	}
	return chunks
}
