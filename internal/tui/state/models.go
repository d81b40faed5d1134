package state

// EditorMode represents the form's current input mode.
type EditorMode int

const (
    CMD EditorMode = iota
    INSERT
)

// DiffMode controls how the pending-edit diff is rendered.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// UIState holds cross-widget UI state used by status bar, diff, and the form.
type UIState struct {
    // Mode & View
    Mode     EditorMode
    View     DiffMode
    ShowDiff bool
    ShowHelp bool
    Console  bool // console line has the keyboard

    // Focus
    Focus  int
    Fields int

    // Layout
    Width  int
    MinCol int

    // Count of local edits pushed to variables this session
    Edits int

    // Notices and ephemeral messages
    Notice string
}
