package state

import "testing"

func TestToggleModeSetsNotice(t *testing.T) {
    s := UIState{Mode: CMD}
    s = ToggleMode(s)
    if s.Mode != INSERT || s.Notice == "" { t.Fatalf("expected INSERT mode and notice") }
    s = ToggleMode(s)
    if s.Mode != CMD || s.Notice == "" { t.Fatalf("expected CMD mode and notice") }
}

func TestToggleView(t *testing.T) {
    s := UIState{View: Unified}
    s = ToggleView(s)
    if s.View != SideBySide { t.Fatalf("expected SideBySide view") }
}

func TestResizeFallbackToUnified(t *testing.T) {
    s := UIState{View: SideBySide, MinCol: 20}
    s = Resize(s, 30) // threshold = 2*20+3 = 43; 30 < 43 => unified
    if s.View != Unified { t.Fatalf("expected Unified after resize fallback") }
    if s.Notice == "" { t.Fatalf("expected fallback notice to be set") }
}

func TestFocusWraps(t *testing.T) {
    s := UIState{Fields: 3}
    s = FocusPrev(s)
    if s.Focus != 2 { t.Fatalf("expected wrap to last field, got %d", s.Focus) }
    s = FocusNext(s)
    if s.Focus != 0 { t.Fatalf("expected wrap to first field, got %d", s.Focus) }
    empty := FocusNext(UIState{})
    if empty.Focus != 0 { t.Fatalf("expected no focus change without fields") }
}

func TestConsoleLeavesInsert(t *testing.T) {
    s := UIState{Mode: INSERT}
    s = OpenConsole(s)
    if !s.Console || s.Mode != CMD { t.Fatalf("expected console open in CMD mode") }
    s = CloseConsole(s)
    if s.Console { t.Fatalf("expected console closed") }
}

func TestRecordEdit(t *testing.T) {
    s := RecordEdit(UIState{}, "sv_gravity")
    if s.Edits != 1 || s.Notice != "modified sv_gravity" { t.Fatalf("unexpected state: %+v", s) }
}

func TestToggles(t *testing.T) {
    s := ToggleHelp(ToggleDiff(UIState{}))
    if !s.ShowDiff || !s.ShowHelp { t.Fatalf("expected diff and help shown") }
}
