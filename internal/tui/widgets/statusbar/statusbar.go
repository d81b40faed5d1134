package statusbar

import (
    "fmt"
    "strings"

    "cvar-tui/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state and the focused cvar.
func (StatusBar) View(s state.UIState, cvarName string) string {
    mode := "[CMD]"
    if s.Mode == state.INSERT {
        mode = "[INSERT]"
    }
    if s.Console {
        mode = "[CONSOLE]"
    }
    view := "Unified"
    if s.View == state.SideBySide {
        view = "Side-by-side"
    }
    pos := fmt.Sprintf("Field %d/%d", s.Focus+1, s.Fields)
    if s.Fields == 0 {
        pos = "No fields"
    }
    if cvarName == "" {
        cvarName = "-"
    }

    parts := []string{mode, pos, cvarName, view, fmt.Sprintf("Edits: %d", s.Edits)}
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
