package fields

import (
    "fmt"

    "cvar-tui/internal/tui/state"
    chips "cvar-tui/internal/tui/widgets/tagchips"
)

// RenderRow lays out one form row: cursor, label, input and status chips.
func RenderRow(label, input string, tags []state.Tag, selected, noColor bool) string {
    cursor := "  "
    if selected {
        cursor = "> "
    }
    row := fmt.Sprintf("%s%-18s %s", cursor, label+":", input)
    if c := chips.View(tags, noColor); c != "" {
        row += "  " + c
    }
    return row
}
