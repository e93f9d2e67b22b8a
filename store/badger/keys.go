package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/doniyor117/AdvoAi/core"
)

// Key prefixes for different data types
const (
	chunkRecordPrefix = "chkrec"
	sourceURLPrefix   = "chkurl"
)

// makeRecordKey generates a key for a chunk record by store id.
func makeRecordKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", chunkRecordPrefix, id))
}

// makeSourceURLKey generates a composite key for the source_url index.
// Format: prefix:urlhash:recordID
func makeSourceURLKey(url, recordID string) []byte {
	prefix := sourceURLPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 + 1 + len(recordID)
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(core.IDFromContent(url)))
	offset += 8
	buf[offset] = ':'
	offset++
	copy(buf[offset:], []byte(recordID))
	return buf
}

// makePartialSourceURLKey generates a partial key for existence scans.
// Format: prefix:urlhash
func makePartialSourceURLKey(url string) []byte {
	prefix := sourceURLPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(core.IDFromContent(url)))
	return buf
}
