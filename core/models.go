package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities, generated from content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces an identical ID; the catalog loader uses
// this for URL-based de-duplication.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SupportFlag is a closed Yes/No enumeration used for the remote and
// adaptive support attributes of an assessment.
type SupportFlag string

const (
	// SupportYes indicates the assessment supports the capability.
	SupportYes SupportFlag = "Yes"
	// SupportNo indicates the assessment does not support the capability.
	SupportNo SupportFlag = "No"
)

// Category is a closed enumeration of assessment categories.
type Category string

const (
	CategoryTechnical    Category = "Technical"
	CategoryCognitive    Category = "Cognitive"
	CategoryPersonality  Category = "Personality/Behavioral"
	CategoryLeadership   Category = "Leadership"
	CategoryRoleSpecific Category = "Role-specific"
	CategoryGeneral      Category = "General"
)

// DurationNotSpecified is the sentinel duration value for assessments
// whose catalog entry carries no duration information.
const DurationNotSpecified = "Not specified"

// AssessmentRecord is one catalog entry. Records are immutable once loaded;
// the catalog is replaced wholesale, never mutated in place.
type AssessmentRecord struct {
	Name            string
	URL             string // canonical identifier, used for de-duplication
	Description     string
	Duration        string // free text, first integer token = minutes, or "Not specified"
	RemoteSupport   SupportFlag
	AdaptiveSupport SupportFlag
	Category        Category
}

// ID returns the content-based identity of the record, derived from its URL.
func (r *AssessmentRecord) ID() ID {
	return IDFromContent(r.URL)
}

// AssessmentDocument is the indexed form of an AssessmentRecord: a synthesized
// text blob used for embedding, the embedding vector, and a metadata copy of
// the source record for result reconstruction. Position is the record's index
// in the catalog and is the document's stable identity in the store.
type AssessmentDocument struct {
	Position int
	Text     string
	Record   AssessmentRecord
	Vector   []float32
}

// DocumentMatch is a document returned by vector similarity search,
// together with its similarity score.
type DocumentMatch struct {
	Document *AssessmentDocument
	Score    float32
}

// QueryConstraints is the structured set of hard and soft constraints
// extracted from a free-text query. Every field is optional; the zero value
// means "unconstrained". Constraints are constructed fresh per query.
type QueryConstraints struct {
	MaxDuration     int  // minutes, inclusive upper bound; meaningful only when HasMaxDuration
	HasMaxDuration  bool
	RemoteSupport   SupportFlag // "" = unconstrained
	AdaptiveSupport SupportFlag // "" = unconstrained
	Skills          []string    // lower-cased, insertion order preserved
	TestTypes       []Category  // insertion order preserved
	Roles           []string    // lower-cased, insertion order preserved
}

// IsZero reports whether no constraint was extracted at all.
func (c QueryConstraints) IsZero() bool {
	return !c.HasMaxDuration &&
		c.RemoteSupport == "" &&
		c.AdaptiveSupport == "" &&
		len(c.Skills) == 0 &&
		len(c.TestTypes) == 0 &&
		len(c.Roles) == 0
}
