package cvar

import (
    "errors"
    "fmt"
    "strings"
)

var ErrUnknownCvar = errors.New("unknown cvar")

// Exec runs one console line against the registry and returns the lines to print.
//
//	get <cvar>          print a value
//	set <cvar> <value>  assign a value
//	<cvar> [value]      shorthand for get/set
//	revert <cvar>       restore the default
//	list [prefix]       list variables
//	help                list commands
func Exec(r *Registry, line string) ([]string, error) {
    parts := strings.Fields(strings.TrimSpace(line))
    if len(parts) == 0 {
        return nil, nil
    }
    switch strings.ToLower(parts[0]) {
    case "get":
        if len(parts) < 2 {
            return nil, fmt.Errorf("usage: get <cvar>")
        }
        return get(r, parts[1])
    case "set":
        if len(parts) < 3 {
            return nil, fmt.Errorf("usage: set <cvar> <value>")
        }
        return set(r, parts[1], strings.Join(parts[2:], " "))
    case "revert":
        if len(parts) < 2 {
            return nil, fmt.Errorf("usage: revert <cvar>")
        }
        v, ok := r.Find(parts[1])
        if !ok {
            return nil, fmt.Errorf("%w: %s", ErrUnknownCvar, parts[1])
        }
        v.Revert()
        return []string{describe(v)}, nil
    case "list":
        prefix := ""
        if len(parts) > 1 {
            prefix = strings.ToLower(parts[1])
        }
        var out []string
        for _, name := range r.Names() {
            if !strings.HasPrefix(strings.ToLower(name), prefix) {
                continue
            }
            if v, ok := r.Find(name); ok {
                out = append(out, "  "+describe(v))
            }
        }
        if len(out) == 0 {
            return []string{"No cvars defined"}, nil
        }
        return append([]string{fmt.Sprintf("Cvars (%d):", len(out))}, out...), nil
    case "help":
        return []string{
            "Commands:",
            "  get <cvar>          - Print a variable",
            "  set <cvar> <value>  - Set a variable",
            "  <cvar> [value]      - Shorthand for get/set",
            "  revert <cvar>       - Restore the default value",
            "  list [prefix]       - List variables",
            "  help                - Show this help",
        }, nil
    }
    // bare cvar name: query or assign
    if _, ok := r.Find(parts[0]); ok {
        if len(parts) == 1 {
            return get(r, parts[0])
        }
        return set(r, parts[0], strings.Join(parts[1:], " "))
    }
    return nil, fmt.Errorf("unknown command: %s (type 'help' for commands)", parts[0])
}

func get(r *Registry, name string) ([]string, error) {
    v, ok := r.Find(name)
    if !ok {
        return nil, fmt.Errorf("%w: %s", ErrUnknownCvar, name)
    }
    out := []string{describe(v)}
    if v.Help() != "" {
        out = append(out, "  - "+v.Help())
    }
    return out, nil
}

func set(r *Registry, name, value string) ([]string, error) {
    v, ok := r.Find(name)
    if !ok {
        return nil, fmt.Errorf("%w: %s", ErrUnknownCvar, name)
    }
    v.SetString(strings.Trim(value, `"`))
    return []string{describe(v)}, nil
}

func describe(v *Var) string {
    s := fmt.Sprintf("%s = %q", v.Name(), v.String())
    if v.String() != v.Default() {
        s += fmt.Sprintf(" (def. %q)", v.Default())
    }
    return s
}
