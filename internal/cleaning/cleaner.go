// Package cleaning normalises raw extracted text before chunking.
//
// Extraction output is messy in format-specific ways: PDFs carry page
// numbers and hard-wrapped lines, DOCX exports carry non-breaking
// spaces, scans carry OCR artefacts. Cleaning flattens all of that into
// plain paragraphs separated by blank lines, which is the shape the
// chunking engine expects.
package cleaning

import (
	"regexp"
	"strings"
)

var (
	spaceRun = regexp.MustCompile(`[ \t]+`)
	blankRun = regexp.MustCompile(`\n{3,}`)

	// Page furniture left behind by PDF extraction. Matching is strict:
	// only whole lines, so short headings survive.
	noisePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\s*page\s+\d+\s*$`),
		regexp.MustCompile(`(?i)^\s*page\s+\d+\s+of\s+\d+\s*$`),
		regexp.MustCompile(`^\s*\d+\s*$`),
	}

	characterReplacer = strings.NewReplacer(
		"“", `"`, // left double quotation mark
		"”", `"`, // right double quotation mark
		"‘", "'", // left single quotation mark
		"’", "'", // right single quotation mark
		"•", "-", // bullet
		"●", "-", // black circle
	)
)

// Clean normalises raw extracted text: whitespace first, then noise
// lines, then character substitutions, then a final trim. Empty input
// returns the empty string.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = normaliseWhitespace(text)
	text = removeNoiseLines(text)
	text = normaliseCharacters(text)

	return strings.TrimSpace(text)
}

// normaliseWhitespace flattens spacing while preserving paragraph
// boundaries: non-breaking spaces become plain spaces, line endings
// become LF, each line has internal space runs collapsed and is
// trimmed, and runs of three or more newlines collapse to the standard
// two-newline paragraph break.
func normaliseWhitespace(text string) string {
	text = strings.ReplaceAll(text, " ", " ")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")

	return blankRun.ReplaceAllString(text, "\n\n")
}

// removeNoiseLines drops whole lines that are page numbers or "page N
// of M" footers. Anything else passes through untouched; losing real
// content is worse than keeping the odd stray number in a heading.
func removeNoiseLines(text string) string {
	lines := strings.Split(text, "\n")

	kept := lines[:0]
	for _, line := range lines {
		if isNoiseLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isNoiseLine(line string) bool {
	for _, pattern := range noisePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

// normaliseCharacters maps typographic quotes to their ASCII
// equivalents and bullet glyphs to a plain dash.
func normaliseCharacters(text string) string {
	return characterReplacer.Replace(text)
}
