package helpoverlay

import (
    "fmt"
    "strings"

    "cvar-tui/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current mode indicated.
func (HelpOverlay) View(s state.UIState) string {
    mode := "CMD"
    if s.Mode == state.INSERT {
        mode = "INSERT"
    }
    sections := []struct{
        title string
        keys  []string
    }{
        {"Navigation", []string{"↑/↓ or k/j: move", "Tab/Shift+Tab: next/prev field (INSERT)"}},
        {"Editing", []string{"Enter or i: edit field", "Esc: leave field (uncommitted edits are dropped)", "r: reload from cvar"}},
        {"Console", []string{": open console", "set <cvar> <value>, get <cvar>, list, revert <cvar>"}},
        {"View", []string{"d: pending-edit diff", "v: toggle unified/side-by-side", "y: copy value", "s: save", "q: quit"}},
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Mode: %s)\n", mode)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.title)
        for _, k := range sec.keys {
            fmt.Fprintf(&b, "  %s\n", k)
        }
    }
    return b.String()
}
