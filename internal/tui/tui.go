package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cvar-tui/internal/cvar"
	"cvar-tui/internal/layout"
	"cvar-tui/internal/tui/state"
	"cvar-tui/internal/tui/util"
	"cvar-tui/internal/tui/views/fields"
	"cvar-tui/internal/tui/widgets/cvarentry"
	"cvar-tui/internal/tui/widgets/diff"
	"cvar-tui/internal/tui/widgets/helpoverlay"
	"cvar-tui/internal/tui/widgets/statusbar"
)

// thinkInterval is how often every field reconciles with its variable.
const thinkInterval = 100 * time.Millisecond

const consoleLines = 6

// Options configures the form.
type Options struct {
	NoColor bool
	// Save is called with the current layout when the user presses s.
	Save func(*layout.Layout) error
	// Copy writes to the system clipboard; nil uses atotto/clipboard.
	Copy func(string) error
}

// Run shows the cvar form until the user quits and returns the final layout.
func Run(reg *cvar.Registry, lay *layout.Layout, opts Options) (*layout.Layout, error) {
	m := newModel(reg, lay, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return m.layout(), nil
}

// ===== Model =====

type field struct {
	label    string
	settings layout.Settings
	entry    *cvarentry.Entry
}

type model struct {
	reg   *cvar.Registry
	title string
	opts  Options

	fields  []field
	ui      state.UIState
	console textinput.Model
	log     []string
}

type thinkMsg time.Time

func think() tea.Cmd {
	return tea.Tick(thinkInterval, func(t time.Time) tea.Msg { return thinkMsg(t) })
}

func newModel(reg *cvar.Registry, lay *layout.Layout, opts Options) *model {
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	opts.NoColor = util.NoColor(opts.NoColor)
	m := &model{reg: reg, title: lay.Title, opts: opts}
	if m.title == "" {
		m.title = "Console variables"
	}

	p := util.DefaultPalette()
	scheme := cvarentry.Scheme{
		Prompt:      p.Fg(p.Muted, opts.NoColor),
		Text:        lipgloss.NewStyle(),
		Placeholder: p.Fg(p.Danger, opts.NoColor),
	}
	for i, s := range lay.Fields {
		variant, ok := cvarentry.ParseVariant(s.GetString("variant", ""))
		if !ok {
			log.Printf("layout field %d: unknown variant %q, using default", i, s.GetString("variant", ""))
			variant = cvarentry.DefaultOptions()
		}
		in := cvarentry.NewInput()
		in.SetPlaceholder("<unbound>")
		name := s.GetString(cvarentry.SettingCvarName, "")
		e := cvarentry.NewWithInput(in, reg, name, s.GetInt("precision", 0), variant)
		e.ApplySettings(s)
		e.ApplySchemeSettings(scheme)
		e.OnControlModified(m.controlModified)
		if !e.Bound() {
			log.Printf("layout field %d: cvar %q not found", i, name)
		}
		label := s.GetString("label", name)
		m.fields = append(m.fields, field{label: label, settings: s, entry: e})
	}

	m.console = textinput.New()
	m.console.Prompt = "] "
	m.console.Placeholder = "set <cvar> <value>"
	m.console.CharLimit = 256

	m.ui = state.UIState{Fields: len(m.fields), MinCol: 12}
	return m
}

func (m *model) controlModified(e *cvarentry.Entry) {
	m.ui = state.RecordEdit(m.ui, e.Name())
}

func (m *model) focused() *cvarentry.Entry {
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[m.ui.Focus].entry
}

// think lets every field pull in variable changes made elsewhere.
func (m *model) think() {
	for _, f := range m.fields {
		f.entry.OnThink()
	}
}

// layout returns the form's layout with each field's settings refreshed.
func (m *model) layout() *layout.Layout {
	out := &layout.Layout{Title: m.title}
	for _, f := range m.fields {
		s := layout.Settings{}
		for k, v := range f.settings {
			s[k] = v
		}
		f.entry.GetSettings(s)
		s.SetInt("precision", f.entry.Precision())
		out.Fields = append(out.Fields, s)
	}
	return out
}

func (m *model) Init() tea.Cmd { return think() }

// Update handles all TUI interactions.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case thinkMsg:
		m.think()
		return m, think()
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch {
		case m.ui.Console:
			return m.updateConsole(msg)
		case m.ui.Mode == state.INSERT:
			return m.updateInsert(msg)
		default:
			return m.updateCmd(msg)
		}
	}

	// cursor blink and friends
	if m.ui.Console {
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		return m, cmd
	}
	if e := m.focused(); e != nil && m.ui.Mode == state.INSERT {
		return m, e.Update(msg)
	}
	return m, nil
}

func (m *model) updateCmd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.ui = state.FocusPrev(m.ui)
	case "down", "j":
		m.ui = state.FocusNext(m.ui)
	case "enter", "i":
		if e := m.focused(); e != nil {
			m.ui = state.ToggleMode(m.ui)
			return m, e.Focus()
		}
	case ":":
		m.ui = state.OpenConsole(m.ui)
		return m, m.console.Focus()
	case "y":
		if e := m.focused(); e != nil && e.Bound() {
			if err := m.opts.Copy(e.Value()); err != nil {
				m.ui = state.SetNotice(m.ui, "Copy failed: "+err.Error())
			} else {
				m.ui = state.SetNotice(m.ui, "Copied "+e.Name())
			}
		}
	case "r":
		if e := m.focused(); e != nil {
			e.Reset()
			m.ui = state.SetNotice(m.ui, "Reloaded "+e.Name())
		}
	case "d":
		m.ui = state.ToggleDiff(m.ui)
	case "v":
		m.ui = state.Resize(state.ToggleView(m.ui), m.ui.Width)
	case "?":
		m.ui = state.ToggleHelp(m.ui)
	case "s":
		if m.opts.Save == nil {
			return m, nil
		}
		if err := m.opts.Save(m.layout()); err != nil {
			m.ui = state.SetNotice(m.ui, "Save failed: "+err.Error())
		} else {
			m.ui = state.SetNotice(m.ui, "Saved")
		}
	}
	return m, nil
}

func (m *model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.focused()
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		e.Blur()
		m.ui = state.ToggleMode(m.ui)
		return m, nil
	case "tab", "shift+tab":
		e.Blur()
		if msg.String() == "tab" {
			m.ui = state.FocusNext(m.ui)
		} else {
			m.ui = state.FocusPrev(m.ui)
		}
		return m, m.focused().Focus()
	}
	return m, e.Update(msg)
}

func (m *model) updateConsole(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.console.Blur()
		m.console.Reset()
		m.ui = state.CloseConsole(m.ui)
		return m, nil
	case "enter":
		m.exec(m.console.Value())
		m.console.Reset()
		return m, nil
	}
	var cmd tea.Cmd
	m.console, cmd = m.console.Update(msg)
	return m, cmd
}

// exec runs a console line; fields pick up the change right away instead of on the next tick.
func (m *model) exec(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	m.log = append(m.log, "] "+line)
	out, err := cvar.Exec(m.reg, line)
	if err != nil {
		m.log = append(m.log, err.Error())
	}
	m.log = append(m.log, out...)
	m.think()
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n\n")
	if len(m.fields) == 0 {
		b.WriteString("No fields in layout.\n")
	}
	for i, f := range m.fields {
		e := f.entry
		tags := util.ComputeTags(util.FieldStatus{
			Bound:     e.Bound(),
			Modified:  e.HasBeenModified(),
			External:  e.HasBeenModifiedExternally(),
			Numeric:   e.NumericInputOnly(),
			Precision: e.Precision(),
		})
		b.WriteString(fields.RenderRow(f.label, e.View(), tags, i == m.ui.Focus, m.opts.NoColor) + "\n")
	}

	name := ""
	if e := m.focused(); e != nil {
		name = e.Name()
		if m.ui.ShowDiff {
			b.WriteString("\n" + diff.NewDiffView().View(m.ui, e.Snapshot(), e.Text(), m.opts.NoColor))
		}
	}

	if len(m.log) > 0 || m.ui.Console {
		b.WriteString("\n")
		start := 0
		if len(m.log) > consoleLines {
			start = len(m.log) - consoleLines
		}
		for _, l := range m.log[start:] {
			b.WriteString(faintStyle.Render(l) + "\n")
		}
		if m.ui.Console {
			b.WriteString(m.console.View() + "\n")
		}
	}

	b.WriteString("\n" + statusbar.NewStatusBar().View(m.ui, name) + "\n")
	if m.ui.ShowHelp {
		b.WriteString("\n" + helpoverlay.NewHelpOverlay().View(m.ui))
	} else {
		b.WriteString(fmt.Sprintf("%s\n", faintStyle.Render("enter: edit   :: console   d: diff   y: copy   s: save   ?: help   q: quit")))
	}
	return b.String()
}
