package config

import (
    "encoding/json"
    "fmt"
    "os"
    "sort"

    "cvar-tui/internal/cvar"
)

// Seed file: {"cvars": { "name": {"value": "...", "default": "...", "help": "...", "min": 0, "max": 1}, ... }}
type Config struct {
    Cvars map[string]Cvar `json:"cvars"`
}

// Cvar is one persisted variable. Value is optional; Default seeds it when empty.
type Cvar struct {
    Value   string   `json:"value,omitempty"`
    Default string   `json:"default"`
    Help    string   `json:"help,omitempty"`
    Min     *float64 `json:"min,omitempty"`
    Max     *float64 `json:"max,omitempty"`
}

func Load(path string) (*Config, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("read config: %w", err)
    }
    var c Config
    if err := json.Unmarshal(data, &c); err != nil {
        return nil, fmt.Errorf("parse config JSON: %w", err)
    }
    if len(c.Cvars) == 0 {
        return nil, fmt.Errorf("config has no cvars")
    }
    return &c, nil
}

func Names(c *Config) []string {
    names := make([]string, 0, len(c.Cvars))
    for k := range c.Cvars {
        names = append(names, k)
    }
    sort.Strings(names)
    return names
}

// Shallow copy config (bounds are copied, not shared).
func Clone(c *Config) *Config {
    out := &Config{Cvars: make(map[string]Cvar, len(c.Cvars))}
    for k, v := range c.Cvars {
        cp := v
        if v.Min != nil {
            m := *v.Min
            cp.Min = &m
        }
        if v.Max != nil {
            m := *v.Max
            cp.Max = &m
        }
        out.Cvars[k] = cp
    }
    return out
}

// Register adds every variable to reg and applies persisted values.
func Register(c *Config, reg *cvar.Registry) error {
    for _, name := range Names(c) {
        cv := c.Cvars[name]
        v, err := reg.Register(cvar.Def{Name: name, Default: cv.Default, Help: cv.Help, Min: cv.Min, Max: cv.Max})
        if err != nil {
            return err
        }
        if cv.Value != "" {
            v.SetString(cv.Value)
        }
    }
    return nil
}

// FromRegistry snapshots the registry's current values.
func FromRegistry(reg *cvar.Registry) *Config {
    out := &Config{Cvars: map[string]Cvar{}}
    for _, name := range reg.Names() {
        v, ok := reg.Find(name)
        if !ok {
            continue
        }
        cv := Cvar{Default: v.Default(), Help: v.Help()}
        if s := v.String(); s != v.Default() {
            cv.Value = s
        }
        if m, ok := v.Min(); ok {
            cv.Min = &m
        }
        if m, ok := v.Max(); ok {
            cv.Max = &m
        }
        out.Cvars[v.Name()] = cv
    }
    return out
}

func Save(path string, c *Config) error {
    data, err := json.MarshalIndent(c, "", "  ")
    if err != nil {
        return err
    }
    return os.WriteFile(path, data, 0644)
}
