package badger

import "encoding/binary"

// Key prefix for indexed assessment documents
const documentPrefix = "asmdoc"

// makeDocumentKey generates a key for a document by its catalog position.
// Positions are written in BigEndian order so lexicographic iteration
// visits documents in catalog order.
func makeDocumentKey(position int) []byte {
	prefix := documentPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(position))
	return buf
}
