package state

// TagKind enumerates the types of status tags for a field.
type TagKind int

const (
    // Stable ordering for display: Edited, External, Unbound, Numeric, Precision
    EDITED TagKind = iota
    EXTERNAL
    UNBOUND
    NUMERIC
    PRECISION
)

// Tag represents a single status chip. Value is used for numeric counters
// (e.g., precision digits). Non-numeric tags use Value = 0.
type Tag struct {
    Kind  TagKind
    Value int
}
