// Package cvar holds the console variable registry: named, externally mutable
// settings with string, float and int representations.
package cvar

import (
    "fmt"
    "sort"
    "strings"
    "sync"
)

// Def describes a variable at registration time.
type Def struct {
    Name    string
    Default string
    Help    string
    Min     *float64
    Max     *float64
}

// ChangeFunc is called after a variable's string value changed.
type ChangeFunc func(v *Var, old string)

// Lookup resolves a variable by name. The returned handle is never owned by the caller.
type Lookup interface {
    Find(name string) (*Var, bool)
}

// Registry is the global variable store. Names are case-insensitive.
type Registry struct {
    mu        sync.RWMutex
    vars      map[string]*Var
    listeners []ChangeFunc
}

func NewRegistry() *Registry {
    return &Registry{vars: map[string]*Var{}}
}

func key(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Register adds a variable and initializes it to its default value.
func (r *Registry) Register(d Def) (*Var, error) {
    k := key(d.Name)
    if k == "" {
        return nil, fmt.Errorf("register cvar: empty name")
    }
    if d.Min != nil && d.Max != nil && *d.Min > *d.Max {
        return nil, fmt.Errorf("register cvar %s: min %g above max %g", d.Name, *d.Min, *d.Max)
    }
    r.mu.Lock()
    defer r.mu.Unlock()
    if _, ok := r.vars[k]; ok {
        return nil, fmt.Errorf("register cvar %s: already registered", d.Name)
    }
    v := &Var{
        reg:  r,
        name: strings.TrimSpace(d.Name),
        help: d.Help,
        def:  d.Default,
        live: true,
    }
    if d.Min != nil {
        v.hasMin, v.min = true, *d.Min
    }
    if d.Max != nil {
        v.hasMax, v.max = true, *d.Max
    }
    v.setLocked(d.Default)
    r.vars[k] = v
    return v, nil
}

// Unregister removes a variable. Outstanding references see it as unbound.
func (r *Registry) Unregister(name string) bool {
    r.mu.Lock()
    defer r.mu.Unlock()
    v, ok := r.vars[key(name)]
    if !ok {
        return false
    }
    v.live = false
    delete(r.vars, key(name))
    return true
}

func (r *Registry) Find(name string) (*Var, bool) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    v, ok := r.vars[key(name)]
    return v, ok
}

// Names returns registered names sorted case-insensitively.
func (r *Registry) Names() []string {
    r.mu.RLock()
    names := make([]string, 0, len(r.vars))
    for _, v := range r.vars {
        names = append(names, v.name)
    }
    r.mu.RUnlock()
    sort.Slice(names, func(i, j int) bool { return key(names[i]) < key(names[j]) })
    return names
}

// OnChange registers a callback fired after any variable changes value.
func (r *Registry) OnChange(fn ChangeFunc) {
    if fn == nil {
        return
    }
    r.mu.Lock()
    r.listeners = append(r.listeners, fn)
    r.mu.Unlock()
}

func (r *Registry) notify(v *Var, old string) {
    r.mu.RLock()
    ls := append([]ChangeFunc(nil), r.listeners...)
    r.mu.RUnlock()
    for _, fn := range ls {
        fn(v, old)
    }
}

// Var is a single registered variable.
type Var struct {
    reg *Registry

    name string
    help string
    def  string
    live bool

    str string
    f   float64
    i   int

    hasMin bool
    min    float64
    hasMax bool
    max    float64
}

func (v *Var) Name() string    { return v.name }
func (v *Var) Help() string    { return v.help }
func (v *Var) Default() string { return v.def }

func (v *Var) String() string {
    v.reg.mu.RLock()
    defer v.reg.mu.RUnlock()
    return v.str
}

func (v *Var) Float() float64 {
    v.reg.mu.RLock()
    defer v.reg.mu.RUnlock()
    return v.f
}

func (v *Var) Int() int {
    v.reg.mu.RLock()
    defer v.reg.mu.RUnlock()
    return v.i
}

// Min reports the lower bound and whether one is declared.
func (v *Var) Min() (float64, bool) { return v.min, v.hasMin }

// Max reports the upper bound and whether one is declared.
func (v *Var) Max() (float64, bool) { return v.max, v.hasMax }

// Registered reports whether the variable is still in its registry.
func (v *Var) Registered() bool {
    v.reg.mu.RLock()
    defer v.reg.mu.RUnlock()
    return v.live
}

// SetString parses s as a number for the float/int views. A value outside
// the bounds is clamped and the string re-rendered.
func (v *Var) SetString(s string) {
    v.reg.mu.Lock()
    old := v.str
    v.setLocked(s)
    changed := old != v.str
    v.reg.mu.Unlock()
    if changed {
        v.reg.notify(v, old)
    }
}

// SetFloat stores f (clamped) and renders the string with six decimals.
func (v *Var) SetFloat(f float64) {
    v.reg.mu.Lock()
    old := v.str
    f = v.clamp(f)
    v.f, v.i, v.str = f, int(f), FormatFloat(f)
    changed := old != v.str
    v.reg.mu.Unlock()
    if changed {
        v.reg.notify(v, old)
    }
}

// SetInt stores n through the float path so bounds apply.
func (v *Var) SetInt(n int) { v.SetFloat(float64(n)) }

// Revert restores the default value.
func (v *Var) Revert() { v.SetString(v.def) }

func (v *Var) setLocked(s string) {
    f := Atof(s)
    if c := v.clamp(f); c != f {
        f = c
        s = FormatFloat(f)
    }
    v.f, v.i, v.str = f, int(f), s
}

func (v *Var) clamp(f float64) float64 {
    if v.hasMin && f < v.min {
        return v.min
    }
    if v.hasMax && f > v.max {
        return v.max
    }
    return f
}
