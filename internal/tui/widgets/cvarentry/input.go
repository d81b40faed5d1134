package cvarentry

import (
    "strings"

    "github.com/charmbracelet/bubbles/textinput"
    tea "github.com/charmbracelet/bubbletea"
    "github.com/charmbracelet/lipgloss"

    "cvar-tui/internal/layout"
)

// TextInput is the editable-text capability an Entry is built on.
type TextInput interface {
    Text() string
    SetText(s string)
    MaximumCharCount() int // -1 means unlimited
    SetMaximumCharCount(n int)
    GotoTextEnd()
    NumericInputOnly() bool
    SetNumericInputOnly(on bool)

    ApplySchemeSettings(sc Scheme)
    ApplySettings(s layout.Settings)
    GetSettings(s layout.Settings)

    Focus() tea.Cmd
    Blur()
    Focused() bool
    Update(msg tea.Msg) tea.Cmd
    View() string
}

// Scheme holds the styles applied to an input.
type Scheme struct {
    Prompt      lipgloss.Style
    Text        lipgloss.Style
    Placeholder lipgloss.Style
}

const numericRunes = "0123456789.-+"

// Input implements TextInput over a bubbles textinput.
type Input struct {
    ti       textinput.Model
    maxChars int
    numeric  bool
}

func NewInput() *Input {
    ti := textinput.New()
    ti.Prompt = ""
    ti.CharLimit = 0
    return &Input{ti: ti, maxChars: -1}
}

func (in *Input) Text() string { return in.ti.Value() }
func (in *Input) SetText(s string) { in.ti.SetValue(s) }
func (in *Input) GotoTextEnd() { in.ti.CursorEnd() }
func (in *Input) Focused() bool { return in.ti.Focused() }
func (in *Input) Focus() tea.Cmd { return in.ti.Focus() }
func (in *Input) Blur() { in.ti.Blur() }
func (in *Input) View() string { return in.ti.View() }
func (in *Input) MaximumCharCount() int { return in.maxChars }

// SetMaximumCharCount limits the input length. Zero or negative means unlimited
// and is reported as -1.
func (in *Input) SetMaximumCharCount(n int) {
    if n <= 0 {
        in.maxChars = -1
        in.ti.CharLimit = 0
        return
    }
    in.maxChars = n
    in.ti.CharLimit = n
    // re-apply so an over-long value is cut to the new limit
    in.ti.SetValue(in.ti.Value())
}

func (in *Input) NumericInputOnly() bool { return in.numeric }
func (in *Input) SetNumericInputOnly(on bool) { in.numeric = on }

// SetPlaceholder sets the text shown while the input is empty.
func (in *Input) SetPlaceholder(s string) { in.ti.Placeholder = s }

func (in *Input) ApplySchemeSettings(sc Scheme) {
    in.ti.PromptStyle = sc.Prompt
    in.ti.TextStyle = sc.Text
    in.ti.PlaceholderStyle = sc.Placeholder
}

// ApplySettings reads "maxchars" and "NumericInputOnly"; absent keys keep the current value.
func (in *Input) ApplySettings(s layout.Settings) {
    in.SetMaximumCharCount(s.GetInt("maxchars", in.maxChars))
    in.numeric = s.GetBool("NumericInputOnly", in.numeric)
}

func (in *Input) GetSettings(s layout.Settings) {
    s.SetInt("maxchars", in.maxChars)
    s.SetBool("NumericInputOnly", in.numeric)
}

// Update forwards msg to the textinput. In numeric-only mode typed runes
// outside digits, sign and decimal point are dropped.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
    if k, ok := msg.(tea.KeyMsg); ok && in.numeric && k.Type == tea.KeyRunes {
        kept := make([]rune, 0, len(k.Runes))
        for _, r := range k.Runes {
            if strings.ContainsRune(numericRunes, r) {
                kept = append(kept, r)
            }
        }
        if len(kept) == 0 {
            return nil
        }
        k.Runes = kept
        msg = k
    }
    var cmd tea.Cmd
    in.ti, cmd = in.ti.Update(msg)
    return cmd
}
