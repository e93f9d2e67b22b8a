package core

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities, generated by content-based
// hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b
// hashing. Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ChunkType classifies how a chunk was produced by the chunker.
type ChunkType string

const (
	// ChunkFullArticle is an article that fit within the target size.
	ChunkFullArticle ChunkType = "full_article"
	// ChunkSection is a paragraph-packed segment of an oversized article.
	ChunkSection ChunkType = "section"
	// ChunkSubSection is a segment produced by recursive separator splitting.
	ChunkSubSection ChunkType = "sub_section"
)

// Chunk is a bounded segment of legal text produced by the chunker.
// Chunks are created once per document and are immutable after creation;
// ownership transfers to the vector store on insert.
type Chunk struct {
	Text       string
	Index      int
	DocumentID string
	Article    string // article marker such as "1-modda", or "general"/"preamble"
	Type       ChunkType
	Metadata   map[string]string
}

// StoreID returns the vector-store id for the chunk, "<document_id>_<index>".
func (c *Chunk) StoreID() string {
	return fmt.Sprintf("%s_%d", c.DocumentID, c.Index)
}

// CandidateDocument is a search hit that may be judged and ingested.
// Candidates are transient and live only within one discovery cycle.
type CandidateDocument struct {
	URL      string
	Title    string
	Snippet  string
	DecreeID string // canonical identifier such as "PQ-60", empty if unknown
}

// Source describes a retrieved document backing a chat answer.
type Source struct {
	Title          string  `json:"title"`
	DocumentID     string  `json:"document_id"`
	URL            string  `json:"url,omitempty"`
	RelevanceScore float64 `json:"relevance_score"`
	Excerpt        string  `json:"excerpt"`
}

// BusinessContext carries optional business attributes used to personalise
// privilege matching. Nil pointer fields mean "not provided".
type BusinessContext struct {
	Industry         string   `json:"industry,omitempty"`
	EmployeeCount    *int     `json:"employee_count,omitempty"`
	AnnualRevenue    *float64 `json:"annual_revenue,omitempty"`
	Region           string   `json:"region,omitempty"`
	YearsInOperation *int     `json:"years_in_operation,omitempty"`
}

// ScoutReport is the final tally of one discovery cycle.
type ScoutReport struct {
	Ingested int `json:"ingested"`
	Checked  int `json:"checked"`
}

// Job tracks one execution of the discovery pipeline.
type Job struct {
	ID      string
	Started time.Time
}
