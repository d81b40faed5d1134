package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "cvar-tui/internal/tui/state"
    "cvar-tui/internal/tui/util"
)

// View renders field tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    style := chipStyle(t)
    return style.Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.EDITED:
        return "Edited"
    case state.EXTERNAL:
        return "External"
    case state.UNBOUND:
        return "Unbound"
    case state.NUMERIC:
        return "Numeric"
    case state.PRECISION:
        return fmt.Sprintf("Prec %d", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    p := util.DefaultPalette()
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
    switch t.Kind {
    case state.EDITED:
        return base.Background(p.Primary).Foreground(lipgloss.Color("#FFFFFF"))
    case state.EXTERNAL:
        return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
    case state.UNBOUND:
        return base.Background(p.Danger).Foreground(lipgloss.Color("#FFFFFF"))
    case state.NUMERIC:
        return base.Background(p.Muted).Foreground(lipgloss.Color("#FFFFFF"))
    case state.PRECISION:
        return base.Background(p.MutedDark).Foreground(lipgloss.Color("#FFFFFF"))
    default:
        return base
    }
}
