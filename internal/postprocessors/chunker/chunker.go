// Package chunker splits cleaned document text into word-bounded,
// overlapping chunks along paragraph and sentence boundaries.
//
// The assembler accumulates paragraphs against a word-count target,
// finalising a chunk when the next paragraph would push it over. The
// trailing words of each finalised chunk are repeated at the head of the
// next one so context is not severed at chunk boundaries. A paragraph
// that alone exceeds the target is subdivided at sentence boundaries;
// the target is a soft ceiling enforced at sentence granularity, so a
// single sentence longer than the target still comes through whole.
package chunker

import (
	"strings"
	"unicode"
)

// SplitFunc breaks a block of text into sentence-sized units.
// The default is SplitSentences; stricter or locale-aware splitters can
// be injected via WithSentenceSplitter.
type SplitFunc func(text string) []string

// SplitSentences splits text at sentence-terminal punctuation (., !, ?)
// followed by whitespace. The terminal stays attached to the preceding
// sentence and the whitespace run is consumed as the delimiter. Pieces
// are trimmed; empty pieces are dropped.
//
// This is a deliberate heuristic: abbreviations, decimal numbers and
// quoted punctuation are not special-cased. Output boundaries are stable
// across versions, which downstream deduplication relies on.
func SplitSentences(text string) []string {
	runes := []rune(text)

	var sentences []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isSentenceTerminal(runes[i]) || i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if piece := strings.TrimSpace(string(runes[start : i+1])); piece != "" {
			sentences = append(sentences, piece)
		}
		// Consume the whitespace run as the delimiter.
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(runes) {
		if piece := strings.TrimSpace(string(runes[start:])); piece != "" {
			sentences = append(sentences, piece)
		}
	}
	return sentences
}

func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// tailOverlap returns the trailing words of a finalised chunk, used to
// seed the next chunk's buffer. A text of overlapWords words or fewer is
// returned unchanged, internal structure intact - the whole prior chunk
// is duplicated at the head of the next one. The truncating path joins
// with single spaces, flattening any embedded newlines.
func tailOverlap(text string, overlapWords int) string {
	if text == "" {
		return ""
	}
	words := strings.Fields(text)
	if len(words) <= overlapWords {
		return text
	}
	return strings.Join(words[len(words)-overlapWords:], " ")
}

// splitLargeParagraph subdivides a paragraph whose word count exceeds
// target into sentence-bounded sub-chunks, each seeded with the tail
// overlap of the previous one. A single sentence longer than target is
// appended whole, pushing that sub-chunk over the nominal budget.
// Returns at least one sub-chunk for non-empty input; every sub-chunk is
// space-joined (paragraph-internal newlines do not survive).
func splitLargeParagraph(text string, target, overlap int, split SplitFunc) []string {
	sentences := split(text)

	var subChunks []string
	var buf []string
	bufWords := 0

	for _, sent := range sentences {
		w := wordCount(sent)
		if bufWords+w > target && len(buf) > 0 {
			sub := strings.Join(buf, " ")
			subChunks = append(subChunks, sub)

			buf = nil
			bufWords = 0
			if seed := tailOverlap(sub, overlap); seed != "" {
				buf = append(buf, seed)
				bufWords = wordCount(seed)
			}
		}
		buf = append(buf, sent)
		bufWords += w
	}

	if len(buf) > 0 {
		subChunks = append(subChunks, strings.Join(buf, " "))
	}
	return subChunks
}

// chunkText partitions cleaned text into chunks. Paragraphs are split at
// double line-breaks; blank paragraphs are dropped, kept ones untrimmed.
// The fit check is strict: a paragraph exactly filling the remaining
// budget is accepted, not deferred.
//
// Oversized paragraphs finalise every sub-chunk they produce, including
// the last, whereas the outer loop leaves its trailing buffer open. That
// asymmetry is intentional and changing it would move chunk boundaries
// for any document with an oversized paragraph followed by more content.
func chunkText(text string, target, overlap int, split SplitFunc) []string {
	if text == "" {
		return nil
	}

	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	var chunks []string
	var buf []string
	bufWords := 0
	// True while the buffer holds nothing beyond a reseeded overlap. A
	// trailing seed-only buffer is an echo of an already emitted chunk's
	// tail and must not be flushed as a chunk of its own.
	seedOnly := false

	reseed := func(seed string) {
		buf = nil
		bufWords = 0
		seedOnly = false
		if seed != "" {
			buf = append(buf, seed)
			bufWords = wordCount(seed)
			seedOnly = true
		}
	}

	for _, para := range paragraphs {
		w := wordCount(para)

		if bufWords+w <= target {
			buf = append(buf, para)
			bufWords += w
			seedOnly = false
			continue
		}

		if len(buf) > 0 {
			chunk := strings.Join(buf, "\n\n")
			chunks = append(chunks, chunk)
			reseed(tailOverlap(chunk, overlap))
		}

		if w > target {
			subChunks := splitLargeParagraph(para, target, overlap, split)
			if len(buf) > 0 {
				// Pending seed merges into the first sub-chunk rather
				// than standing as a chunk of its own.
				subChunks[0] = buf[0] + " " + subChunks[0]
			}
			chunks = append(chunks, subChunks...)
			reseed(tailOverlap(subChunks[len(subChunks)-1], overlap))
			continue
		}

		buf = append(buf, para)
		bufWords += w
		seedOnly = false
	}

	if len(buf) > 0 && !seedOnly {
		chunks = append(chunks, strings.Join(buf, "\n\n"))
	}
	return chunks
}

// wordCount counts whitespace-delimited tokens. Size is measured in
// words, not characters, and tokenisation is not locale-aware.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
