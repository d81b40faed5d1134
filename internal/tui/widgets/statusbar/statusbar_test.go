package statusbar

import (
    "strings"
    "testing"

    "cvar-tui/internal/tui/state"
)

func TestStatusLine(t *testing.T) {
    out := NewStatusBar().View(state.UIState{Mode: state.INSERT, Focus: 1, Fields: 3, Notice: "modified sv_gravity"}, "sv_gravity")
    for _, w := range []string{"[INSERT]", "Field 2/3", "sv_gravity", "modified sv_gravity"} {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in %q", w, out)
        }
    }
    out = NewStatusBar().View(state.UIState{Console: true}, "")
    if !strings.Contains(out, "[CONSOLE]") || !strings.Contains(out, "No fields") {
        t.Fatalf("unexpected console status: %q", out)
    }
}
