package ember

import (
	"github.com/google/uuid"
)

// DocID is the 128-bit identifier every document is addressed by. It is
// stable for the life of the document and, once deleted, never reused.
type DocID uuid.UUID

// NewDocID generates a fresh random DocID. Callers that need a
// deterministic id (tests, replay) construct one directly from bytes via
// DocIDFromBytes.
func NewDocID() DocID {
	return DocID(uuid.New())
}

// DocIDFromBytes interprets 16 raw bytes as a DocID, matching the on-disk
// layout's "doc_id is 16 raw bytes" rule.
func DocIDFromBytes(b []byte) (DocID, error) {
	if len(b) != 16 {
		return DocID{}, wrapParse("doc id", errLen16)
	}
	var id DocID
	copy(id[:], b)
	return id, nil
}

// Bytes returns the 16 raw bytes backing the id, little-endian per field as
// uuid.UUID already lays them out.
func (d DocID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, d[:])
	return b
}

func (d DocID) String() string {
	return uuid.UUID(d).String()
}

// Less orders two DocIDs by their raw bytes, the ordering PostingList and
// the Document Segment Store both rely on.
func (d DocID) Less(other DocID) bool {
	for i := 0; i < 16; i++ {
		if d[i] != other[i] {
			return d[i] < other[i]
		}
	}
	return false
}

// Compare returns -1, 0, or 1 the way bytes.Compare does, for code that
// wants three-way comparisons (skip list search, DAAT seek).
func (d DocID) Compare(other DocID) int {
	for i := 0; i < 16; i++ {
		if d[i] != other[i] {
			if d[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

var errLen16 = docIDLenError{}

type docIDLenError struct{}

func (docIDLenError) Error() string { return "doc id must be exactly 16 bytes" }
