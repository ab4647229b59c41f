package gc

import "fmt"

// WordSize is the machine word size in bytes. Headers and fields are both
// one word wide.
const WordSize = 8

// Word is an untyped machine word: conventionally either a pointer to a
// managed object (a Word produced by Alloc or read back out of a field) or
// unmanaged mutator data. The collector never inspects a Word's meaning
// beyond whether it falls inside a half-space.
type Word uint64

// Tag identifies the shape of a heap object. The set is closed; there is no
// extension point, matching the fixed object ABI the mutator and collector
// agree on.
type Tag uint8

const (
	TagZero Tag = iota
	TagSucc
	TagFalse
	TagTrue
	TagFn
	TagRef
	TagUnit
	TagTuple
	TagInl
	TagInr
	TagEmpty
	TagCons
)

var tagNames = [...]string{
	TagZero:  "Zero",
	TagSucc:  "Succ",
	TagFalse: "False",
	TagTrue:  "True",
	TagFn:    "Fn",
	TagRef:   "Ref",
	TagUnit:  "Unit",
	TagTuple: "Tuple",
	TagInl:   "Inl",
	TagInr:   "Inr",
	TagEmpty: "Empty",
	TagCons:  "Cons",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// Header is the word preceding an object's fields. It packs the tag in the
// low byte and the field count in the remaining bytes, reusing the
// original source's byte layout (STELLA_OBJECT_HEADER_TAG /
// STELLA_OBJECT_HEADER_FIELD_COUNT) rather than introducing a dedicated
// forwarding bit: the membership test for "has this from-space object been
// evacuated" stays the field[0]-based check in evacuate.go, so the header
// format only ever needs to answer tag/field-count queries.
type Header uint64

// MakeHeader packs a tag and field count into a Header. fieldCount must fit
// the object ABI; callers are expected to have already rejected oversized
// objects before this is called.
func MakeHeader(tag Tag, fieldCount int) Header {
	return Header(uint64(tag) | uint64(uint32(fieldCount))<<8)
}

// Tag extracts the object's tag from its header.
func (h Header) Tag() Tag {
	return Tag(h & 0xff)
}

// FieldCount extracts the object's field count from its header.
func (h Header) FieldCount() int {
	return int(h >> 8)
}

// CellSize returns the total size in bytes of an object with this header:
// one header word plus one word per field.
func (h Header) CellSize() int {
	return WordSize * (1 + h.FieldCount())
}
