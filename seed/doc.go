// Package seed pre-populates the vector store with sample decrees.
//
// The samples are excerpts from real Uzbek decrees on entrepreneur
// privileges, enough for the chat endpoint to give useful demo answers
// before the scout has discovered anything. Seeding is idempotent: chunk
// ids are derived from document id and chunk index, and the store
// overwrites on duplicate ids.
package seed
