package cvarentry

import (
    "strings"
    "testing"

    tea "github.com/charmbracelet/bubbletea"
    "github.com/stretchr/testify/require"

    "cvar-tui/internal/cvar"
    "cvar-tui/internal/layout"
)

func f64(f float64) *float64 { return &f }

func registry(t *testing.T, defs ...cvar.Def) *cvar.Registry {
    t.Helper()
    r := cvar.NewRegistry()
    for _, d := range defs {
        _, err := r.Register(d)
        require.NoError(t, err)
    }
    return r
}

func field(r *cvar.Registry, name string, precision int, numeric bool, opts Options) *Entry {
    in := NewInput()
    in.SetNumericInputOnly(numeric)
    return NewWithInput(in, r, name, precision, opts)
}

func value(t *testing.T, r *cvar.Registry, name string) *cvar.Var {
    t.Helper()
    v, ok := r.Find(name)
    require.True(t, ok)
    return v
}

// typeText replaces the displayed text the way an edit would and fires the text-changed hook.
func typeText(e *Entry, s string) {
    e.Input().SetText(s)
    e.OnTextChanged()
}

func TestConstructionPullsValue(t *testing.T) {
    r := registry(t, cvar.Def{Name: "sv_gravity", Default: "600"})
    e := New(r, "sv_gravity", 0, DefaultOptions())
    require.True(t, e.Bound())
    require.Equal(t, "600", e.Text())
    require.Equal(t, "600", e.Snapshot())
    require.False(t, e.HasBeenModified())
}

func TestGravityScenario(t *testing.T) {
    r := registry(t, cvar.Def{Name: "sv_gravity", Default: "600"})
    e := New(r, "sv_gravity", 0, DefaultOptions())

    typeText(e, "800")
    require.Equal(t, "800", value(t, r, "sv_gravity").String())
    require.Equal(t, "800", e.Snapshot())

    value(t, r, "sv_gravity").SetString("900")
    require.True(t, e.HasBeenModifiedExternally())
    e.OnThink()
    require.False(t, e.HasBeenModifiedExternally())
    require.Equal(t, "900", e.Text())
}

func TestResetMatchesVariable(t *testing.T) {
    r := registry(t, cvar.Def{Name: "name", Default: "Player"})
    e := New(r, "name", 0, DefaultOptions())
    e.Input().SetText("junk")
    value(t, r, "name").SetString("Gordon")
    e.Reset()
    require.Equal(t, "Gordon", e.Text())
    require.Equal(t, "Gordon", e.Snapshot())
}

func TestIntegerModeReformats(t *testing.T) {
    r := registry(t, cvar.Def{Name: "count", Default: "1"})
    e := field(r, "count", 0, true, DefaultOptions())

    e.SetText("7abc")
    require.Equal(t, "7", e.Text())
    e.OnTextChanged()
    require.Equal(t, "7", value(t, r, "count").String())

    e.SetText("")
    require.Equal(t, "7", e.Text())
}

func TestNonNumericPassesVerbatim(t *testing.T) {
    r := registry(t, cvar.Def{Name: "hostname", Default: "srv"})
    e := New(r, "hostname", 2, DefaultOptions())
    e.SetText("3.14159 lobby")
    require.Equal(t, "3.14159 lobby", e.Text())
}

func TestFractionalFormatting(t *testing.T) {
    r := registry(t, cvar.Def{Name: "scale", Default: "1"})

    e := field(r, "scale", 2, true, SuppressPartialCommits)
    require.Equal(t, "1.00", e.Text())
    e.SetText("3.14159")
    require.Equal(t, "3.14", e.Text())
    e.SetText("3.")
    require.Equal(t, "3.00", e.Text())

    p := field(r, "scale", 2, true, PassThroughTrailingDecimal)
    p.SetText("3.14159")
    require.Equal(t, "3.14", p.Text())
    p.SetText("3.")
    require.Equal(t, "3.", p.Text())
}

func TestTrailingDecimalCommittedAsIs(t *testing.T) {
    r := registry(t, cvar.Def{Name: "scale", Default: "1"})
    e := field(r, "scale", 2, true, PassThroughTrailingDecimal)

    e.SetText("3.")
    e.OnTextChanged()
    require.Equal(t, "3.", value(t, r, "scale").String())
    require.Equal(t, "3.", e.Snapshot())
}

func TestShouldUpdate(t *testing.T) {
    r := registry(t,
        cvar.Def{Name: "free", Default: "1"},
        cvar.Def{Name: "floored", Default: "1", Min: f64(0.001)},
    )
    free := field(r, "free", 2, true, SuppressPartialCommits)
    lowest, clamp := free.LowestValue()
    require.Equal(t, 0.0, lowest)
    require.True(t, clamp)

    cases := map[string]bool{
        "0":    true,
        "0.":   false,
        "0.0":  false,
        "0.00": false,
        "0.5":  true,
        "10":   true,
        "3.":   false,
        "":     false,
    }
    for in, want := range cases {
        require.Equal(t, want, free.ShouldUpdate(in), "ShouldUpdate(%q)", in)
    }

    floored := field(r, "floored", 2, true, SuppressPartialCommits)
    lowest, clamp = floored.LowestValue()
    require.InDelta(t, 0.01, lowest, 1e-12)
    require.True(t, clamp)
    require.False(t, floored.ShouldUpdate("0"))
    require.False(t, floored.ShouldUpdate("0."))
    require.True(t, floored.ShouldUpdate("0.5"))
}

func TestPartialNumericEditIsHeldBack(t *testing.T) {
    r := registry(t, cvar.Def{Name: "vol", Default: "0.25", Min: f64(0.001)})
    e := field(r, "vol", 2, true, SuppressPartialCommits)
    v := value(t, r, "vol")

    for _, partial := range []string{"0", "0.", "0.0"} {
        typeText(e, partial)
        require.Equal(t, "0.25", v.String(), "partial %q must not commit", partial)
        e.OnThink()
        require.Equal(t, partial, e.Text(), "think must keep the partial edit")
    }

    typeText(e, "0.5")
    require.Equal(t, "0.5", v.String())
}

func TestPartialNumericEditCommitsWithoutSuppression(t *testing.T) {
    r := registry(t, cvar.Def{Name: "vol", Default: "0.25", Min: f64(0.001)})
    e := field(r, "vol", 2, true, PassThroughTrailingDecimal)
    lowest, clamp := e.LowestValue()
    require.Equal(t, 0.0, lowest)
    require.False(t, clamp)

    typeText(e, "0.")
    require.Equal(t, "0.001000", value(t, r, "vol").String())
}

func TestCommitClampsToLowestRepresentable(t *testing.T) {
    r := registry(t, cvar.Def{Name: "rate", Default: "0.5", Min: f64(0.001)})
    e := field(r, "rate", 2, true, SuppressPartialCommits)
    v := value(t, r, "rate")

    typeText(e, "0.005")
    require.Equal(t, 0.01, v.Float())
    require.Equal(t, "0.005", e.Snapshot())

    e.OnThink()
    require.Equal(t, "0.01", e.Text())
    require.Equal(t, "0.010000", e.Snapshot())
}

func TestUnboundedNumericFieldFloorsAtZero(t *testing.T) {
    r := registry(t, cvar.Def{Name: "gain", Default: "3"})
    e := field(r, "gain", 0, true, SuppressPartialCommits)

    typeText(e, "-5")
    require.Equal(t, "0.000000", value(t, r, "gain").String())
    e.OnThink()
    require.Equal(t, "0", e.Text())

    // text fields are never clamped
    r2 := registry(t, cvar.Def{Name: "offset", Default: "3"})
    txt := field(r2, "offset", 0, false, SuppressPartialCommits)
    typeText(txt, "-5")
    require.Equal(t, "-5", value(t, r2, "offset").String())
}

func TestTextFieldsSkipPartialCheck(t *testing.T) {
    r := registry(t, cvar.Def{Name: "map", Default: "de_dust"})
    e := field(r, "map", 2, false, SuppressPartialCommits)
    require.False(t, e.ShouldUpdate("map0"))

    typeText(e, "map0")
    require.Equal(t, "map0", value(t, r, "map").String())
}

func TestZeroMinAllowsZero(t *testing.T) {
    r := registry(t, cvar.Def{Name: "vol", Default: "0.25", Min: f64(0)})
    e := field(r, "vol", 2, true, SuppressPartialCommits)
    typeText(e, "0")
    require.Equal(t, "0", value(t, r, "vol").String())
}

func TestEmptyTextNeverCommits(t *testing.T) {
    r := registry(t, cvar.Def{Name: "name", Default: "Player"})
    e := New(r, "name", 0, DefaultOptions())
    modified := 0
    e.OnControlModified(func(*Entry) { modified++ })

    typeText(e, "")
    require.Equal(t, 1, modified)
    require.Equal(t, "Player", value(t, r, "name").String())
}

func TestModifiedNotificationPrecedesCommit(t *testing.T) {
    r := registry(t, cvar.Def{Name: "name", Default: "Player"})
    e := New(r, "name", 0, DefaultOptions())
    var seen []string
    e.OnControlModified(func(got *Entry) {
        require.Same(t, e, got)
        seen = append(seen, got.Value())
    })

    typeText(e, "Alyx")
    require.Equal(t, []string{"Player"}, seen)
    require.Equal(t, "Alyx", value(t, r, "name").String())

    // same text again: nothing modified, nothing emitted
    e.OnTextChanged()
    require.Len(t, seen, 1)
}

func TestModificationChecksIgnoreCase(t *testing.T) {
    r := registry(t, cvar.Def{Name: "map", Default: "de_dust"})
    e := New(r, "map", 0, DefaultOptions())
    e.Input().SetText("DE_DUST")
    require.False(t, e.HasBeenModified())
    value(t, r, "map").SetString("De_Dust")
    require.False(t, e.HasBeenModifiedExternally())
}

func TestUnboundIsInert(t *testing.T) {
    r := registry(t)
    e := New(r, "missing", 0, DefaultOptions())
    require.False(t, e.Bound())
    require.Equal(t, "", e.Text())

    called := false
    e.OnControlModified(func(*Entry) { called = true })
    typeText(e, "42")
    e.ApplyChanges()
    e.Reset()
    e.OnThink()
    e.OnKillFocus()
    require.False(t, called)
    require.False(t, e.HasBeenModifiedExternally())
    require.Equal(t, "42", e.Text())
}

func TestLateRegistrationBindsLazily(t *testing.T) {
    r := registry(t)
    e := New(r, "late", 0, DefaultOptions())
    require.False(t, e.Bound())

    _, err := r.Register(cvar.Def{Name: "late", Default: "5"})
    require.NoError(t, err)
    require.True(t, e.HasBeenModifiedExternally())
    e.OnThink()
    require.Equal(t, "5", e.Text())

    rate := field(r, "rate", 2, true, SuppressPartialCommits)
    _, err = r.Register(cvar.Def{Name: "rate", Default: "0.5", Min: f64(0.001)})
    require.NoError(t, err)
    rate.OnThink()
    require.Equal(t, "0.50", rate.Text())
    lowest, clamp := rate.LowestValue()
    require.InDelta(t, 0.01, lowest, 1e-12)
    require.True(t, clamp)

    typeText(rate, "0.001")
    require.Equal(t, 0.01, value(t, r, "rate").Float())
    require.False(t, rate.ShouldUpdate("0"))
}

func TestKillFocusDiscardsDivergedEdits(t *testing.T) {
    r := registry(t,
        cvar.Def{Name: "name", Default: "Player"},
        cvar.Def{Name: "vol", Default: "0.25", Min: f64(0.001)},
    )
    name := New(r, "name", 0, DefaultOptions())
    name.Focus()
    name.Input().SetText("")
    name.Blur()
    require.False(t, name.Focused())
    require.Equal(t, "Player", name.Text())

    vol := field(r, "vol", 2, true, SuppressPartialCommits)
    typeText(vol, "0.")
    require.Equal(t, "0.", vol.Text())
    vol.OnKillFocus()
    require.Equal(t, "0.25", vol.Text())
}

func TestSchemeClampsMaxChars(t *testing.T) {
    r := registry(t, cvar.Def{Name: "name", Default: "Player"})
    e := New(r, "name", 0, DefaultOptions())
    require.Equal(t, -1, e.Input().MaximumCharCount())

    e.ApplySchemeSettings(Scheme{})
    require.Equal(t, MaxCvarText-1, e.Input().MaximumCharCount())

    e.Input().SetMaximumCharCount(MaxCvarText)
    e.ApplySchemeSettings(Scheme{})
    require.Equal(t, MaxCvarText, e.Input().MaximumCharCount())

    e.Input().SetMaximumCharCount(100)
    e.ApplySchemeSettings(Scheme{})
    require.Equal(t, MaxCvarText-1, e.Input().MaximumCharCount())

    e.Input().SetMaximumCharCount(10)
    e.ApplySchemeSettings(Scheme{})
    require.Equal(t, 10, e.Input().MaximumCharCount())

    e.ApplySettings(layout.Settings{"cvar_name": "name", "maxchars": "0"})
    require.Equal(t, -1, e.Input().MaximumCharCount())
    e.ApplySchemeSettings(Scheme{})
    require.Equal(t, MaxCvarText-1, e.Input().MaximumCharCount())
}

func TestLongValuesAreBounded(t *testing.T) {
    long := strings.Repeat("x", 80)
    r := registry(t, cvar.Def{Name: "motd", Default: long})
    e := New(r, "motd", 0, DefaultOptions())
    require.Len(t, e.Text(), MaxCvarText-1)
    require.Len(t, e.Snapshot(), MaxCvarText-1)
    require.False(t, e.HasBeenModifiedExternally())
}

func TestSettingsRebind(t *testing.T) {
    r := registry(t,
        cvar.Def{Name: "a", Default: "hello"},
        cvar.Def{Name: "b", Default: "2.5"},
    )
    e := New(r, "a", 0, DefaultOptions())

    e.ApplySettings(layout.Settings{"cvar_name": "b", "NumericInputOnly": "1", "maxchars": "5"})
    require.Equal(t, "b", e.Name())
    require.True(t, e.NumericInputOnly())
    require.Equal(t, "2", e.Text())
    require.Equal(t, "2.5", e.Snapshot())

    out := layout.Settings{}
    e.GetSettings(out)
    require.Equal(t, "b", out.GetString("cvar_name", ""))
    require.Equal(t, 5, out.GetInt("maxchars", 0))
    require.True(t, out.GetBool("NumericInputOnly", false))

    e.ApplySettings(layout.Settings{"cvar_name": "nope"})
    require.False(t, e.Bound())
    require.Equal(t, "2", e.Text())
}

func TestParseVariant(t *testing.T) {
    o, ok := ParseVariant("")
    require.True(t, ok)
    require.Equal(t, DefaultOptions(), o)
    o, ok = ParseVariant("PassThrough")
    require.True(t, ok)
    require.Equal(t, PassThroughTrailingDecimal, o)
    _, ok = ParseVariant("both")
    require.False(t, ok)
}

func TestTypingThroughInput(t *testing.T) {
    r := registry(t, cvar.Def{Name: "sv_gravity", Default: "600"})
    e := field(r, "sv_gravity", 0, true, DefaultOptions())
    e.Focus()

    for i := 0; i < 3; i++ {
        e.Update(tea.KeyMsg{Type: tea.KeyBackspace})
    }
    require.Equal(t, "", e.Text())
    for _, s := range []string{"8", "x", "0", "0"} {
        e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
    }
    require.Equal(t, "800", e.Text())
    require.Equal(t, "800", value(t, r, "sv_gravity").String())
    require.Equal(t, "800", e.Snapshot())
}
