// Copyright
// SPDX-License-Identifier: MIT
// cvar-tui: console variables with a terminal form of bound text fields
package main

import (
    "errors"
    "flag"
    "fmt"
    "io"
    "log"
    "os"
    "strings"

    tea "github.com/charmbracelet/bubbletea"

    cfg "cvar-tui/internal/config"
    "cvar-tui/internal/cvar"
    "cvar-tui/internal/layout"
    appTUI "cvar-tui/internal/tui"
)

const Version = "0.1.0"

const (
    defaultCvars  = "cvars.json"
    defaultLayout = "layout.yaml"
)

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    var err error
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "--version":
        fmt.Println("cvar-tui", Version)
    case "init":
        err = cmdInit(os.Args[2:])
    case "list":
        err = cmdList(os.Args[2:])
    case "get":
        err = cmdGet(os.Args[2:])
    case "set":
        err = cmdSet(os.Args[2:])
    case "edit":
        err = cmdEdit(os.Args[2:])
    default:
        usage()
    }
    if err != nil {
        fmt.Fprintln(os.Stderr, "error:", err)
        os.Exit(1)
    }
}

func usage() {
    fmt.Print(`cvar-tui ` + Version + `
Console variables with a terminal form whose text fields stay in sync with them.
USAGE
  cvar-tui <command> [options]
COMMANDS
  init         Scaffold cvars.json and layout.yaml (never overwrites)
  list         List variables, optionally filtered by prefix
  get          Print one variable
  set          Assign one variable and persist it
  edit         Open the form (fields bound to variables, plus a console line)
  help         Show help (try: cvar-tui help edit)
  version      Print version
NOTES
  • All commands accept --cvars PATH (default: cvars.json).
  • Use -v to log variable changes, --log-file to send logs to a file.
`)
}

func helpTopic(name string) {
    switch name {
    case "edit":
        fmt.Print(`USAGE
  cvar-tui edit [--cvars PATH] [--layout PATH] [--no-color] [-v] [--log-file PATH]
DESCRIPTION
  Loads the variables and the form layout and opens the form. Each field shows
  one variable, commits edits while you type and picks up changes made from the
  console line (:) or other fields. Values are written back to --cvars on exit;
  's' inside the form saves both the variables and the layout right away.
LAYOUT KEYS (per field)
  label              Row label (default: cvar_name)
  cvar_name          Variable the field is bound to
  precision          Fraction digits for numeric fields (0 = integer)
  NumericInputOnly   true to accept digits, sign and decimal point only
  maxchars           Input length limit (clamped to 63)
  variant            suppress (default) | passthrough
OPTIONS
  --cvars PATH       Variables file (default: cvars.json)
  --layout PATH      Form layout (default: layout.yaml)
  --no-color         Disable colors (NO_COLOR is also honored)
  -v                 Log every variable change
  --log-file PATH    Append logs to file (created if missing)
`)
    case "set":
        fmt.Print(`USAGE
  cvar-tui set [--cvars PATH] NAME VALUE
DESCRIPTION
  Assigns VALUE (clamped to the variable's bounds) and writes the file back.
`)
    case "list", "get":
        fmt.Print(`USAGE
  cvar-tui list [--cvars PATH] [PREFIX]
  cvar-tui get  [--cvars PATH] NAME
`)
    default:
        usage()
    }
}

type common struct {
    cvars   *string
    verbose *bool
    logPath *string
}

func newFlagSet(name string) (*flag.FlagSet, common) {
    fs := flag.NewFlagSet(name, flag.ExitOnError)
    fs.Usage = func() { helpTopic(name) }
    return fs, common{
        cvars:   fs.String("cvars", defaultCvars, "Variables file"),
        verbose: fs.Bool("v", false, "Log variable changes"),
        logPath: fs.String("log-file", "", "Append logs to file (created if missing)"),
    }
}

// setupLogging routes the standard logger and returns a closer.
// Without --log-file, logs go to stderr only with -v and are discarded otherwise.
func (c common) setupLogging() (func(), error) {
    if *c.logPath != "" {
        f, err := tea.LogToFile(*c.logPath, "cvar-tui")
        if err != nil {
            return nil, fmt.Errorf("open log file: %w", err)
        }
        return func() { _ = f.Close() }, nil
    }
    if *c.verbose {
        log.SetOutput(os.Stderr)
    } else {
        log.SetOutput(io.Discard)
    }
    return func() {}, nil
}

func (c common) loadRegistry() (*cvar.Registry, error) {
    conf, err := cfg.Load(*c.cvars)
    if err != nil {
        return nil, err
    }
    reg := cvar.NewRegistry()
    if err := cfg.Register(conf, reg); err != nil {
        return nil, err
    }
    if *c.verbose {
        reg.OnChange(func(v *cvar.Var, old string) {
            log.Printf("cvar %s: %q -> %q", v.Name(), old, v.String())
        })
    }
    return reg, nil
}

func (c common) saveRegistry(reg *cvar.Registry) error {
    if err := cfg.Save(*c.cvars, cfg.FromRegistry(reg)); err != nil {
        return fmt.Errorf("write %s: %w", *c.cvars, err)
    }
    return nil
}

/* ---------- commands ---------- */

const seedCvars = `{
  "cvars": {
    "sv_gravity": {"default": "600", "help": "World gravity", "min": 0, "max": 4000},
    "sensitivity": {"default": "3.0", "help": "Mouse sensitivity", "min": 0.0001, "max": 100},
    "volume": {"default": "0.8", "help": "Master volume", "min": 0, "max": 1},
    "name": {"default": "player", "help": "Player name"}
  }
}
`

const seedLayout = `title: Options
fields:
  - label: Gravity
    cvar_name: sv_gravity
    NumericInputOnly: true
  - label: Sensitivity
    cvar_name: sensitivity
    NumericInputOnly: true
    precision: 2
  - label: Volume
    cvar_name: volume
    NumericInputOnly: true
    precision: 2
    variant: passthrough
  - label: Name
    cvar_name: name
`

func cmdInit(args []string) error {
    fs, c := newFlagSet("init")
    layoutPath := fs.String("layout", defaultLayout, "Form layout")
    _ = fs.Parse(args)

    for _, f := range []struct{ path, body string }{
        {*c.cvars, seedCvars},
        {*layoutPath, seedLayout},
    } {
        if _, err := os.Stat(f.path); !errors.Is(err, os.ErrNotExist) {
            fmt.Println(f.path, "already exists; not overwriting")
            continue
        }
        if err := os.WriteFile(f.path, []byte(f.body), 0644); err != nil {
            return err
        }
        fmt.Println("Wrote", f.path)
    }
    return nil
}

func cmdList(args []string) error {
    fs, c := newFlagSet("list")
    _ = fs.Parse(args)
    reg, err := c.loadRegistry()
    if err != nil {
        return err
    }
    line := "list"
    if fs.NArg() > 0 {
        line += " " + fs.Arg(0)
    }
    return printExec(reg, line)
}

func cmdGet(args []string) error {
    fs, c := newFlagSet("get")
    _ = fs.Parse(args)
    if fs.NArg() != 1 {
        helpTopic("get")
        return errors.New("get needs NAME")
    }
    reg, err := c.loadRegistry()
    if err != nil {
        return err
    }
    return printExec(reg, "get "+fs.Arg(0))
}

func cmdSet(args []string) error {
    fs, c := newFlagSet("set")
    _ = fs.Parse(args)
    if fs.NArg() < 2 {
        helpTopic("set")
        return errors.New("set needs NAME and VALUE")
    }
    closeLog, err := c.setupLogging()
    if err != nil {
        return err
    }
    defer closeLog()
    reg, err := c.loadRegistry()
    if err != nil {
        return err
    }
    if err := printExec(reg, "set "+fs.Arg(0)+" "+strings.Join(fs.Args()[1:], " ")); err != nil {
        return err
    }
    return c.saveRegistry(reg)
}

func cmdEdit(args []string) error {
    fs, c := newFlagSet("edit")
    layoutPath := fs.String("layout", defaultLayout, "Form layout")
    noColor := fs.Bool("no-color", false, "Disable colors")
    _ = fs.Parse(args)

    closeLog, err := c.setupLogging()
    if err != nil {
        return err
    }
    defer closeLog()
    if *c.logPath == "" {
        // stderr would draw over the alt screen
        log.SetOutput(io.Discard)
    }

    reg, err := c.loadRegistry()
    if err != nil {
        return err
    }
    lay, err := layout.Load(*layoutPath)
    if err != nil {
        return err
    }
    log.Printf("edit: %d cvars, %d fields", len(reg.Names()), len(lay.Fields))

    final, err := appTUI.Run(reg, lay, appTUI.Options{
        NoColor: *noColor,
        Save: func(l *layout.Layout) error {
            if err := c.saveRegistry(reg); err != nil {
                return err
            }
            return layout.Save(*layoutPath, l)
        },
    })
    if err != nil {
        return err
    }
    if err := c.saveRegistry(reg); err != nil {
        return err
    }
    if *c.verbose {
        fmt.Printf("Saved %s (%d fields in %s)\n", *c.cvars, len(final.Fields), *layoutPath)
    }
    return nil
}

func printExec(reg *cvar.Registry, line string) error {
    out, err := cvar.Exec(reg, line)
    if err != nil {
        return err
    }
    for _, l := range out {
        fmt.Println(l)
    }
    return nil
}
