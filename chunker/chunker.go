package chunker

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/doniyor117/AdvoAi/core"
)

// Chunk size settings in characters (~4 chars per token).
const (
	// TargetChunkSize is the preferred chunk size (~512 tokens).
	TargetChunkSize = 2048
	// MaxChunkSize is the hard upper bound on pre-overlap chunk text (~800 tokens).
	MaxChunkSize = 3200
	// MinChunkSize is the minimum size for a preamble to survive as its own
	// article (~50 tokens).
	MinChunkSize = 200
	// OverlapSize is the amount of trailing context carried into the next
	// chunk (~100 tokens).
	OverlapSize = 400
)

// Article marker patterns, tried in order. Earlier patterns win on overlap.
var articlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*[-–—]\s*(?:modda|Modda|MODDA)`), // "1-modda"
	regexp.MustCompile(`(?:Modda|MODDA)\s+(\d+)`),               // "Modda 1"
	regexp.MustCompile(`(?m)^(\d+)\.\s+\S`),                     // "1. Belgilash..." at line start
}

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	newlineRuns    = regexp.MustCompile(`\n{3,}`)
)

// Chunker splits Uzbek/Russian legal documents along article boundaries.
type Chunker struct {
	targetSize int
	overlap    int
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithTargetSize sets the preferred chunk size in characters.
// Default is TargetChunkSize.
func WithTargetSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.targetSize = size
		}
	}
}

// WithOverlap sets the overlap size in characters.
// Default is OverlapSize.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap > 0 {
			c.overlap = overlap
		}
	}
}

// New creates a Chunker with default sizes, then applies options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		targetSize: TargetChunkSize,
		overlap:    OverlapSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// article is an intermediate unit between marker detection and chunk emission.
type article struct {
	name string
	text string
}

// Chunk splits a document into ordered chunks. Empty or whitespace-only
// input yields nil. Indices are contiguous starting at zero and follow
// source article order.
func (c *Chunker) Chunk(text, documentID, title string, metadata map[string]string) []core.Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	text = cleanText(text)
	articles := splitByArticles(text)

	var chunks []core.Chunk
	emit := func(segment, articleName string, chunkType core.ChunkType) {
		chunks = append(chunks, core.Chunk{
			Text:       segment,
			Index:      len(chunks),
			DocumentID: documentID,
			Article:    articleName,
			Type:       chunkType,
			Metadata:   chunkMetadata(metadata, documentID, title, articleName),
		})
	}

	for _, art := range articles {
		if len(art.text) <= c.targetSize {
			emit(art.text, art.name, core.ChunkFullArticle)
			continue
		}
		for _, section := range c.splitBySections(art.text) {
			if len(section) <= c.targetSize {
				emit(section, art.name, core.ChunkSection)
				continue
			}
			for _, sub := range c.recursiveSplit(section) {
				emit(sub, art.name, core.ChunkSubSection)
			}
		}
	}

	return c.addOverlap(chunks)
}

// cleanText normalizes whitespace runs to single spaces and collapses
// excessive newlines.
func cleanText(text string) string {
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = newlineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

type marker struct {
	start   int
	end     int
	pattern int
	number  string
}

// findArticleMarkers locates article markers with all patterns and resolves
// overlaps: earlier position wins, then earlier pattern.
func findArticleMarkers(text string) []marker {
	var found []marker
	for pi, pattern := range articlePatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(text, -1) {
			if loc[2] < 0 {
				continue
			}
			found = append(found, marker{
				start:   loc[0],
				end:     loc[1],
				pattern: pi,
				number:  text[loc[2]:loc[3]],
			})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].start != found[j].start {
			return found[i].start < found[j].start
		}
		return found[i].pattern < found[j].pattern
	})

	var kept []marker
	lastEnd := -1
	for _, m := range found {
		if m.start < lastEnd {
			continue
		}
		kept = append(kept, m)
		lastEnd = m.end
	}
	return kept
}

// splitByArticles splits text at article markers. When no marker is found,
// the whole text becomes a single "general" article. Text before the first
// marker is kept as a "preamble" article only when it is longer than
// MinChunkSize; shorter preambles are dropped.
func splitByArticles(text string) []article {
	markers := findArticleMarkers(text)
	if len(markers) == 0 {
		return []article{{name: "general", text: text}}
	}

	var articles []article
	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1].start
		}
		articleText := strings.TrimSpace(text[m.start:end])
		if articleText != "" {
			articles = append(articles, article{name: m.number + "-modda", text: articleText})
		}
	}

	if markers[0].start > MinChunkSize {
		preamble := strings.TrimSpace(text[:markers[0].start])
		if preamble != "" {
			articles = append([]article{{name: "preamble", text: preamble}}, articles...)
		}
	}

	return articles
}

// splitBySections packs blank-line paragraphs greedily into segments up to
// the target size. Text without paragraph breaks is returned whole.
func (c *Chunker) splitBySections(text string) []string {
	paragraphs := strings.Split(text, "\n\n")
	if len(paragraphs) <= 1 {
		return []string{text}
	}

	var sections []string
	var current []string
	currentLen := 0

	for _, para := range paragraphs {
		if currentLen+len(para) <= c.targetSize {
			current = append(current, para)
			currentLen += len(para)
			continue
		}
		if len(current) > 0 {
			sections = append(sections, strings.Join(current, "\n\n"))
		}
		current = []string{para}
		currentLen = len(para)
	}
	if len(current) > 0 {
		sections = append(sections, strings.Join(current, "\n\n"))
	}

	return sections
}

// recursiveSplit breaks oversized text using a priority list of separators,
// greedily packing tokens up to the target size at the first separator that
// yields a split. Falls back to fixed-length slicing when no separator helps.
func (c *Chunker) recursiveSplit(text string) []string {
	separators := []string{"\n\n", "\n", ". ", ", ", " "}

	for _, sep := range separators {
		if !strings.Contains(text, sep) {
			continue
		}

		parts := strings.Split(text, sep)
		var result []string
		var current []string
		currentLen := 0

		for _, part := range parts {
			partLen := len(part) + len(sep)
			if currentLen+partLen <= c.targetSize {
				current = append(current, part)
				currentLen += partLen
				continue
			}
			if len(current) > 0 {
				result = append(result, strings.Join(current, sep))
			}
			current = []string{part}
			currentLen = partLen
		}
		if len(current) > 0 {
			result = append(result, strings.Join(current, sep))
		}

		if len(result) > 0 {
			return result
		}
	}

	return c.hardSplit(text)
}

// hardSplit slices text into target-size pieces, aligned to rune boundaries.
func (c *Chunker) hardSplit(text string) []string {
	var pieces []string
	for len(text) > 0 {
		if len(text) <= c.targetSize {
			pieces = append(pieces, text)
			break
		}
		cut := c.targetSize
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		pieces = append(pieces, text[:cut])
		text = text[cut:]
	}
	return pieces
}

// addOverlap prepends trailing context from each chunk's predecessor. The
// overlap is always taken from the predecessor's pre-overlap text, trimmed
// to a word boundary and marked with an ellipsis. The first chunk is never
// prefixed; predecessors shorter than the overlap size contribute nothing.
func (c *Chunker) addOverlap(chunks []core.Chunk) []core.Chunk {
	if len(chunks) <= 1 {
		return chunks
	}

	originals := make([]string, len(chunks))
	for i := range chunks {
		originals[i] = chunks[i].Text
	}

	for i := 1; i < len(chunks); i++ {
		prev := originals[i-1]
		if len(prev) <= c.overlap {
			continue
		}
		overlapText := prev[len(prev)-c.overlap:]
		for len(overlapText) > 0 && !utf8.RuneStart(overlapText[0]) {
			overlapText = overlapText[1:]
		}
		// Start the overlap at a word boundary
		if idx := strings.Index(overlapText, " "); idx > 0 {
			overlapText = overlapText[idx+1:]
		}
		chunks[i].Text = "..." + overlapText + "\n\n" + chunks[i].Text
	}

	return chunks
}

// chunkMetadata builds the per-chunk metadata map from the base metadata.
func chunkMetadata(base map[string]string, documentID, title, articleName string) map[string]string {
	metadata := make(map[string]string, len(base)+3)
	for k, v := range base {
		metadata[k] = v
	}
	metadata["document_id"] = documentID
	metadata["title"] = title
	metadata["article"] = articleName
	return metadata
}
