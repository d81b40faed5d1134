// Package cvarentry implements a text field bound to a console variable.
//
// The field shows the variable's value, formats numeric input to a fixed
// precision, commits edits back to the variable as they are typed, and pulls
// in changes made elsewhere (console commands, other fields) on every think.
package cvarentry

import (
    "fmt"
    "math"
    "strconv"
    "strings"
    "unicode/utf8"

    tea "github.com/charmbracelet/bubbletea"

    "cvar-tui/internal/cvar"
    "cvar-tui/internal/layout"
)

// MaxCvarText bounds the text buffer, terminator included.
const MaxCvarText = 64

// SettingCvarName is the settings key holding the bound variable's name.
const SettingCvarName = "cvar_name"

// Options selects between the two commit behaviors a field can have.
type Options struct {
    // SuppressPartialNumericCommit holds back numeric text that still looks
    // mid-entry ("0", "0.", "0.0") and clamps commits to the lowest value
    // representable at the field's precision. It only applies to fields in
    // numeric-only mode; text fields commit every non-empty edit, so values
    // such as "map10" or "v1.0" are never held back.
    SuppressPartialNumericCommit bool
    // PassThroughTrailingDecimalEdit leaves numeric text ending in "." unformatted.
    PassThroughTrailingDecimalEdit bool
}

var (
    SuppressPartialCommits     = Options{SuppressPartialNumericCommit: true}
    PassThroughTrailingDecimal = Options{PassThroughTrailingDecimalEdit: true}
)

func DefaultOptions() Options { return SuppressPartialCommits }

// ParseVariant maps a layout "variant" value to Options. Empty selects the default.
func ParseVariant(name string) (Options, bool) {
    switch strings.ToLower(strings.TrimSpace(name)) {
    case "":
        return DefaultOptions(), true
    case "suppress":
        return SuppressPartialCommits, true
    case "passthrough":
        return PassThroughTrailingDecimal, true
    }
    return Options{}, false
}

// Entry is a text field mirroring one cvar.
type Entry struct {
    base TextInput
    ref  *cvar.Ref
    opts Options

    precision    int
    numberFormat string

    // text last pushed to or pulled from the variable
    startValue string

    listeners []func(*Entry)
}

// New creates a field over a bubbles text input.
func New(lookup cvar.Lookup, name string, precision int, opts Options) *Entry {
    return NewWithInput(NewInput(), lookup, name, precision, opts)
}

// NewWithInput creates a field over base. An unresolved name is not an error;
// the binding is retried whenever the field needs the variable.
func NewWithInput(base TextInput, lookup cvar.Lookup, name string, precision int, opts Options) *Entry {
    e := &Entry{base: base, ref: cvar.NewRef(lookup, name), opts: opts}
    e.SetPrecision(precision)
    if e.ref.IsValid() {
        e.Reset()
    }
    return e
}

// OnControlModified registers fn to run whenever a local edit is about to be committed.
func (e *Entry) OnControlModified(fn func(*Entry)) {
    if fn != nil {
        e.listeners = append(e.listeners, fn)
    }
}

func (e *Entry) Name() string { return e.ref.Name() }
func (e *Entry) Bound() bool { return e.ref.IsValid() }
func (e *Entry) Value() string { return e.ref.String() }
func (e *Entry) Snapshot() string { return e.startValue }
func (e *Entry) Precision() int { return e.precision }
func (e *Entry) Options() Options { return e.opts }
func (e *Entry) Input() TextInput { return e.base }
func (e *Entry) NumericInputOnly() bool { return e.base.NumericInputOnly() }

// LowestValue reports the commit floor and whether clamping is active. The
// floor follows the variable's current binding: a variable without a min
// floors at 0, any non-zero min at the smallest value the precision can show.
func (e *Entry) LowestValue() (float64, bool) {
    if !e.opts.SuppressPartialNumericCommit {
        return 0, false
    }
    if min, _ := e.ref.Min(); min != 0 {
        return 1 / math.Pow(10, float64(e.precision)), true
    }
    return 0, true
}

// Text returns the displayed text, bounded to the buffer size.
func (e *Entry) Text() string { return bound(e.base.Text()) }

// SetPrecision sets the number of fractional digits; 0 selects integer mode.
func (e *Entry) SetPrecision(precision int) {
    if precision < 0 {
        precision = 0
    }
    e.precision = precision
    if precision > 0 {
        e.numberFormat = fmt.Sprintf("%%.%df", precision)
    }
}

func (e *Entry) ApplySchemeSettings(sc Scheme) {
    e.base.ApplySchemeSettings(sc)
    if n := e.base.MaximumCharCount(); n <= 0 || n > MaxCvarText {
        e.base.SetMaximumCharCount(MaxCvarText - 1)
    }
}

// ApplySettings rebinds to the settings' cvar_name and pulls its value.
func (e *Entry) ApplySettings(s layout.Settings) {
    e.base.ApplySettings(s)
    e.ref.Init(s.GetString(SettingCvarName, ""))
    if e.ref.IsValid() {
        e.Reset()
    }
}

func (e *Entry) GetSettings(s layout.Settings) {
    e.base.GetSettings(s)
    s.SetString(SettingCvarName, e.ref.Name())
}

// SetText displays text, reformatting it first in numeric-only mode.
// Empty text leaves the display unchanged.
func (e *Entry) SetText(text string) {
    if text == "" {
        return
    }
    if !e.base.NumericInputOnly() {
        e.base.SetText(bound(text))
        return
    }
    switch {
    case e.precision == 0:
        e.base.SetText(bound(strconv.Itoa(cvar.Atoi(text))))
    case e.opts.PassThroughTrailingDecimalEdit && strings.HasSuffix(text, "."):
        e.base.SetText(bound(text))
    default:
        e.base.SetText(bound(fmt.Sprintf(e.numberFormat, cvar.Atof(text))))
    }
}

// ApplyChanges commits the displayed text to the variable.
func (e *Entry) ApplyChanges() {
    if !e.ref.IsValid() {
        return
    }
    text := e.Text()
    if text == "" {
        return
    }
    numeric := e.base.NumericInputOnly()
    if e.opts.SuppressPartialNumericCommit && numeric && !e.ShouldUpdate(text) {
        return
    }
    // snapshot first: change callbacks may re-enter OnThink
    e.startValue = text
    e.ref.SetString(text)
    if lowest, clamp := e.LowestValue(); numeric && clamp && lowest > e.ref.Float() {
        e.ref.SetFloat(lowest)
    }
}

// ShouldUpdate reports whether numeric text is complete enough to commit.
func (e *Entry) ShouldUpdate(text string) bool {
    if text == "" {
        return false
    }
    last := text[len(text)-1]
    if lowest, _ := e.LowestValue(); lowest == 0 && text == "0" {
        return true
    }
    midEntryZero := cvar.Atof(text) == 0 && last == '0'
    return !(midEntryZero || last == '.')
}

// Reset pulls the variable's value into the display.
func (e *Entry) Reset() {
    if !e.ref.IsValid() {
        return
    }
    v := e.ref.String()
    if v == "" {
        return
    }
    e.SetText(v)
    e.startValue = bound(v)
    e.base.GotoTextEnd()
}

// OnThink runs once per UI tick.
func (e *Entry) OnThink() {
    if e.HasBeenModifiedExternally() {
        e.Reset()
    }
}

// OnKillFocus drops an uncommitted or diverged edit.
func (e *Entry) OnKillFocus() {
    if !e.ref.IsValid() {
        return
    }
    text := e.Text()
    v := bound(e.ref.String())
    if text == "" || !strings.EqualFold(text, v) || !strings.EqualFold(v, e.startValue) {
        e.Reset()
    }
}

func (e *Entry) HasBeenModified() bool {
    return !strings.EqualFold(e.Text(), e.startValue)
}

func (e *Entry) HasBeenModifiedExternally() bool {
    return e.ref.IsValid() && !strings.EqualFold(bound(e.ref.String()), e.startValue)
}

// OnTextChanged is called after every edit of the displayed text.
func (e *Entry) OnTextChanged() {
    if !e.ref.IsValid() {
        return
    }
    if e.HasBeenModified() {
        for _, fn := range e.listeners {
            fn(e)
        }
        e.ApplyChanges()
    }
}

func (e *Entry) Focus() tea.Cmd { return e.base.Focus() }
func (e *Entry) Focused() bool { return e.base.Focused() }

// Blur removes focus and runs the focus-lost check.
func (e *Entry) Blur() {
    e.base.Blur()
    e.OnKillFocus()
}

// Update feeds msg to the input and fires OnTextChanged when the text changed.
func (e *Entry) Update(msg tea.Msg) tea.Cmd {
    before := e.base.Text()
    cmd := e.base.Update(msg)
    if e.base.Text() != before {
        e.OnTextChanged()
    }
    return cmd
}

func (e *Entry) View() string { return e.base.View() }

// bound cuts s to the usable buffer size on a rune boundary.
func bound(s string) string {
    if len(s) < MaxCvarText {
        return s
    }
    s = s[:MaxCvarText-1]
    for len(s) > 0 && !utf8.ValidString(s) {
        s = s[:len(s)-1]
    }
    return s
}
