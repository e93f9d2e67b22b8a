// Package scout discovers and ingests new legal documents.
//
// A discovery cycle runs four stages in strict order:
//
//  1. SEARCH: query the web for each keyword, site-scoped to lex.uz,
//     then deduplicate hits by URL (first occurrence wins).
//  2. JUDGE: for every candidate not already indexed, ask the relevance
//     judge about the title alone. Judge failures fail open so unknown
//     documents are not silently lost.
//  3. INGEST: scrape each relevant page, extract the main content, chunk
//     it and upsert the chunks into the vector store.
//  4. COMPLETE: report the final {ingested, checked} tally.
//
// Item failures inside a stage are reported as error status events and the
// stage continues with the next item; only the surrounding job wrapper
// turns an error into a terminal event.
//
// Cycles run as detached jobs owned by the Manager, which enforces
// single-flight admission control and publishes progress to a per-job
// status queue.
package scout
