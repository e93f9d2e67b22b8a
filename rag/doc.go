// Package rag answers user questions against the indexed legal corpus.
//
// The engine retrieves the nearest passages for a query, converts vector
// distances to bounded relevance scores, assembles a context block and
// asks the generation model for an Uzbek answer with source attribution.
//
// Failure handling follows a structural/content split: a failing vector
// store is surfaced to the caller as an error, while a failing generation
// model degrades to a deterministic apology embedded in the answer body.
package rag
