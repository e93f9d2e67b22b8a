package store

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Record is the unit of storage: one passage with its metadata and
// embedding vector.
type Record struct {
	ID       string
	Document string
	Metadata map[string]string
	Vector   []float32
}

var (
	vectorSer   = ord.NewSliceSer[float32](varint.Float32)
	metadataSer = ord.NewMapSer[string, string](ord.String, ord.String)
)

// RecordMUS serializes Record values in MUS format.
var RecordMUS = recordMUS{}

type recordMUS struct{}

func (recordMUS) Marshal(r Record, bs []byte) (n int) {
	n = ord.String.Marshal(r.ID, bs)
	n += ord.String.Marshal(r.Document, bs[n:])
	n += metadataSer.Marshal(r.Metadata, bs[n:])
	n += vectorSer.Marshal(r.Vector, bs[n:])
	return n
}

func (recordMUS) Unmarshal(bs []byte) (r Record, n int, err error) {
	var n1 int
	r.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	r.Document, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Metadata, n1, err = metadataSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Vector, n1, err = vectorSer.Unmarshal(bs[n:])
	n += n1
	return
}

func (recordMUS) Size(r Record) (size int) {
	size = ord.String.Size(r.ID)
	size += ord.String.Size(r.Document)
	size += metadataSer.Size(r.Metadata)
	size += vectorSer.Size(r.Vector)
	return size
}

func (recordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = metadataSer.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = vectorSer.Skip(bs[n:])
	n += n1
	return
}

// MarshalRecord serializes a Record to bytes.
func MarshalRecord(r *Record) []byte {
	buf := make([]byte, RecordMUS.Size(*r))
	RecordMUS.Marshal(*r, buf)
	return buf
}

// UnmarshalRecord deserializes a Record from bytes.
func UnmarshalRecord(data []byte) (*Record, error) {
	r, _, err := RecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &r, nil
}
