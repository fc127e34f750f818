package chunker

import (
	"path/filepath"
	"regexp"
	"strings"
)

// languageRules is an ordered boundary rule set for one language family.
// New languages are added here by data; the splitting machinery never
// special-cases a language.
type languageRules struct {
	name       string
	boundaries []*regexp.Regexp

	// paragraphFallback retries the paragraph splitter when the boundary
	// rules produce too few chunks to be useful. Only the generic rule set
	// wants this: its keyword heuristics misfire on prose.
	paragraphFallback bool
}

var (
	pythonRules = &languageRules{
		name: "python",
		boundaries: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^(?:[ \t]*@[\w.]+(?:\(.*\))?[ \t]*\n)*[ \t]*class[ \t]+\w+`),
			regexp.MustCompile(`(?m)^(?:[ \t]*@[\w.]+(?:\(.*\))?[ \t]*\n)*[ \t]*(?:async[ \t]+)?def[ \t]+\w+[ \t]*\(`),
		},
	}

	javascriptRules = &languageRules{
		name: "javascript",
		boundaries: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*(?:export[ \t]+)?(?:default[ \t]+)?(?:abstract[ \t]+)?class[ \t]+\w+`),
			regexp.MustCompile(`(?m)^[ \t]*(?:export[ \t]+)?(?:async[ \t]+)?function[ \t]*\*?[ \t]*\w*[ \t]*\(`),
			regexp.MustCompile(`(?m)^[ \t]*(?:export[ \t]+)?(?:const|let|var)[ \t]+\w+\s*=\s*(?:async[ \t]+)?(?:function\b|\([^)\n]*\)\s*=>|\w+\s*=>)`),
			regexp.MustCompile(`(?m)^[ \t]*(?:import|export)[ \t]+`),
		},
	}

	javaRules = &languageRules{
		name: "java",
		boundaries: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*(?:public|private|protected|internal)[ \t]+(?:(?:static|abstract|sealed|final|partial)[ \t]+)*(?:class|interface|enum|record)[ \t]+\w+`),
			regexp.MustCompile(`(?m)^[ \t]*(?:public|private|protected|internal)[ \t]+(?:(?:static|final|async|override|virtual|abstract)[ \t]+)*[\w<>\[\],. \t]+\w+[ \t]*\(`),
		},
	}

	cRules = &languageRules{
		name: "c",
		boundaries: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*(?:typedef[ \t]+)?(?:class|struct|enum|union)[ \t]+\w+`),
			regexp.MustCompile(`(?m)^[A-Za-z_][\w \t*&:<>,~]*\([^;{}]*\)[ \t]*\{`),
		},
	}

	genericRules = &languageRules{
		name:              "generic",
		paragraphFallback: true,
		boundaries: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*(?:export[ \t]+)?(?:pub[ \t]+)?(?:class|interface|struct|enum|trait|impl|module)[ \t]+\w+`),
			regexp.MustCompile(`(?m)^[ \t]*(?:func|fn|function|def|sub)[ \t]+[\w(]`),
			regexp.MustCompile(`(?m)^[ \t]*type[ \t]+\w+`),
			// Comment lines opening with a capitalized word read as section markers.
			regexp.MustCompile(`(?m)^[ \t]*(?://|#|--)[ \t]*[A-Z][a-z]+`),
			regexp.MustCompile(`(?m)^[ \t]*(?:import|#?include|require|use|from)[ \t]+`),
		},
	}
)

// rulesByExtension maps a lowercased file extension to its boundary rules.
// Extensions absent from this table get the generic rule set.
var rulesByExtension = map[string]*languageRules{
	".py":    pythonRules,
	".pyi":   pythonRules,
	".js":    javascriptRules,
	".jsx":   javascriptRules,
	".mjs":   javascriptRules,
	".cjs":   javascriptRules,
	".ts":    javascriptRules,
	".tsx":   javascriptRules,
	".java":  javaRules,
	".cs":    javaRules,
	".c":     cRules,
	".h":     cRules,
	".cc":    cRules,
	".cpp":   cRules,
	".cxx":   cRules,
	".hpp":   cRules,
	".hh":    cRules,
	".go":    genericRules,
	".rs":    genericRules,
	".rb":    genericRules,
	".php":   genericRules,
	".swift": genericRules,
	".kt":    genericRules,
	".scala": genericRules,
}

// rulesForPath returns the boundary rules for a file path's extension,
// defaulting to the generic rule set.
func rulesForPath(path string) *languageRules {
	if rules, ok := rulesByExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return rules
	}
	return genericRules
}

// isCodePath reports whether the path's extension identifies a known code
// file. The hybrid cascade only tries code-block splitting for these.
func isCodePath(path string) bool {
	_, ok := rulesByExtension[strings.ToLower(filepath.Ext(path))]
	return ok
}

// codeSplitter partitions source code at structural boundaries defined by a
// language rule set, via the shared boundary core.
type codeSplitter struct {
	rules     *languageRules
	chunkSize int
	overlap   int
}

func (c codeSplitter) split(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	chunks := splitByBoundaries(content, c.rules.boundaries, c.chunkSize, c.overlap)
	if c.rules.paragraphFallback && len(chunks) <= 2 {
		return paragraphSplitter{chunkSize: c.chunkSize}.split(content)
	}
	return chunks
}
