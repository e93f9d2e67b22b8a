package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/doniyor117/AdvoAi/chunker"
	"github.com/doniyor117/AdvoAi/store"
)

// Report summarizes one seeding run.
type Report struct {
	Documents int
	Chunks    int
}

// Seed chunks the sample decrees and upserts them into the store.
// Re-running replaces existing chunks under the same ids.
func Seed(ctx context.Context, st store.Store, documents []Document) (Report, error) {
	var report Report

	if st == nil {
		return report, fmt.Errorf("vector store is required")
	}
	if len(documents) == 0 {
		documents = SampleDocuments
	}

	logger := slog.Default().With("component", "seed")
	c := chunker.New()

	for _, document := range documents {
		chunks := c.Chunk(document.Content, document.ID, document.Title, map[string]string{
			"source_url":    document.URL,
			"document_type": "sample",
		})
		if len(chunks) == 0 {
			logger.Warn("no chunks generated", "document_id", document.ID)
			continue
		}

		texts := make([]string, len(chunks))
		metadatas := make([]map[string]string, len(chunks))
		ids := make([]string, len(chunks))
		for i := range chunks {
			texts[i] = chunks[i].Text
			metadatas[i] = chunks[i].Metadata
			ids[i] = chunks[i].StoreID()
		}

		if err := st.Add(ctx, texts, metadatas, ids); err != nil {
			return report, fmt.Errorf("seeding %s: %w", document.ID, err)
		}

		report.Documents++
		report.Chunks += len(chunks)
		logger.Info("seeded document", "document_id", document.ID, "chunks", len(chunks))
	}

	return report, nil
}
