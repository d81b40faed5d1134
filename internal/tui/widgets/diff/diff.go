package diff

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "cvar-tui/internal/tui/state"
)

var (
    delStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    addStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    eqStyle  = lipgloss.NewStyle().Faint(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the synchronized value against the displayed text with
// character-level highlights. SideBySide puts them in two columns; Unified
// shows -/+ lines. With noColor, changed spans are bracketed instead of colored.
func (DiffView) View(s state.UIState, synced, display string, noColor bool) string {
    if strings.EqualFold(synced, display) {
        return "No pending edit\n"
    }
    left, right := spans(synced, display, noColor)
    if s.View == state.SideBySide {
        return sideBySide(left, right, s)
    }
    var b strings.Builder
    b.WriteString("SYNCED vs DISPLAY (Unified)\n")
    fmt.Fprintf(&b, "- %s\n", left)
    fmt.Fprintf(&b, "+ %s\n", right)
    return b.String()
}

func spans(before, after string, noColor bool) (string, string) {
    d := dmp.New()
    diffs := d.DiffMain(before, after, false)
    d.DiffCleanupSemantic(diffs)
    var l, r strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            l.WriteString(mark(df.Text, "[-", "-]", delStyle, noColor))
        case dmp.DiffInsert:
            r.WriteString(mark(df.Text, "{+", "+}", addStyle, noColor))
        case dmp.DiffEqual:
            l.WriteString(mark(df.Text, "", "", eqStyle, noColor))
            r.WriteString(mark(df.Text, "", "", eqStyle, noColor))
        }
    }
    return l.String(), r.String()
}

func mark(text, open, close string, style lipgloss.Style, noColor bool) string {
    if noColor {
        return open + text + close
    }
    return style.Render(text)
}

func sideBySide(left, right string, s state.UIState) string {
    const sep = " │ "
    // Compute column width from total width if provided
    colWidth := 30
    if s.Width > 0 {
        colWidth = (s.Width - len(sep)) / 2
        if colWidth < 10 {
            colWidth = 10
        }
    }
    var b strings.Builder
    fmt.Fprintf(&b, "%s%s%s\n", pad("SYNCED", colWidth), sep, "DISPLAY")
    fmt.Fprintf(&b, "%s%s%s\n", pad(left, colWidth), sep, right)
    return b.String()
}

func pad(s string, width int) string {
    if w := lipgloss.Width(s); w < width {
        return s + strings.Repeat(" ", width-w)
    }
    return s
}
