// Package chunker splits legal document text into bounded, overlapping
// segments that respect the natural structure of Uzbek decrees and
// resolutions.
//
// The splitting hierarchy is:
//   - Articles ("modda" markers) first
//   - Paragraph packing within oversized articles
//   - Recursive separator splitting for sections that remain too large
//
// Chunking is deterministic and side-effect-free: identical input always
// yields identical output.
package chunker
