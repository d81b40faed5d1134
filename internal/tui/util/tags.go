package util

import (
    "cvar-tui/internal/tui/state"
)

// FieldStatus is the observable state of one cvar field.
type FieldStatus struct {
    Bound     bool // variable name resolves
    Modified  bool // display differs from the synchronized snapshot
    External  bool // variable differs from the synchronized snapshot
    Numeric   bool
    Precision int
}

// ComputeTags calculates the set of status tags for a field.
//
// The returned slice preserves a stable order:
//   Edited, External, Unbound, Numeric, Precision
//
// Rules:
// - An unbound field only ever carries Unbound (plus Numeric/Precision); the
//   modification tags compare against a variable it does not have.
// - Edited and External may both be present: a local edit in progress while
//   the variable was changed elsewhere.
// - Precision is only shown for numeric fields with fractional digits.
func ComputeTags(fs FieldStatus) []state.Tag {
    tags := make([]state.Tag, 0, 5)

    if fs.Bound && fs.Modified {
        tags = append(tags, state.Tag{Kind: state.EDITED})
    }
    if fs.Bound && fs.External {
        tags = append(tags, state.Tag{Kind: state.EXTERNAL})
    }
    if !fs.Bound {
        tags = append(tags, state.Tag{Kind: state.UNBOUND})
    }
    if fs.Numeric {
        tags = append(tags, state.Tag{Kind: state.NUMERIC})
        if fs.Precision > 0 {
            tags = append(tags, state.Tag{Kind: state.PRECISION, Value: fs.Precision})
        }
    }
    return tags
}
