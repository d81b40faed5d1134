package state

// ToggleMode switches between CMD and INSERT modes and sets a brief notice.
func ToggleMode(s UIState) UIState {
    if s.Mode == CMD {
        s.Mode = INSERT
        s.Notice = "[INSERT]"
    } else {
        s.Mode = CMD
        s.Notice = "[CMD]"
    }
    return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
    if s.View == Unified {
        s.View = SideBySide
    } else {
        s.View = Unified
    }
    return s
}

// ToggleDiff shows or hides the pending-edit diff pane.
func ToggleDiff(s UIState) UIState {
    s.ShowDiff = !s.ShowDiff
    return s
}

// ToggleHelp shows or hides the key help overlay.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

// Resize updates width and sets a fallback notice if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width int) UIState {
    s.Width = width
    threshold := 2*s.MinCol + 3
    if s.View == SideBySide && s.Width < threshold {
        s.View = Unified
        s.Notice = "Narrow width: using unified view"
    }
    return s
}

// FocusNext moves focus to the next field, wrapping at the end.
func FocusNext(s UIState) UIState {
    if s.Fields == 0 {
        return s
    }
    s.Focus = (s.Focus + 1) % s.Fields
    return s
}

// FocusPrev moves focus to the previous field, wrapping at the start.
func FocusPrev(s UIState) UIState {
    if s.Fields == 0 {
        return s
    }
    s.Focus = (s.Focus - 1 + s.Fields) % s.Fields
    return s
}

// OpenConsole hands the keyboard to the console line.
func OpenConsole(s UIState) UIState {
    s.Console = true
    s.Mode = CMD
    return s
}

func CloseConsole(s UIState) UIState {
    s.Console = false
    return s
}

// RecordEdit counts a local edit and names it in the notice.
func RecordEdit(s UIState, name string) UIState {
    s.Edits++
    s.Notice = "modified " + name
    return s
}

func SetNotice(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}
