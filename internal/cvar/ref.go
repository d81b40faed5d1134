package cvar

// Ref is a weak, lazily resolved binding to a registry variable by name.
// It never owns the variable; when the name does not resolve every accessor
// returns a zero value and every setter is a no-op.
type Ref struct {
    lookup Lookup
    name   string
    v      *Var
}

func NewRef(lookup Lookup, name string) *Ref {
    r := &Ref{lookup: lookup}
    r.Init(name)
    return r
}

// Init rebinds the reference to name.
func (r *Ref) Init(name string) {
    r.name = name
    r.v = nil
    r.resolve()
}

func (r *Ref) Name() string { return r.name }

// IsValid reports whether the name currently resolves, retrying the lookup
// when the cached binding is missing or was unregistered.
func (r *Ref) IsValid() bool {
    return r.resolve() != nil
}

func (r *Ref) resolve() *Var {
    if r.v != nil && r.v.Registered() {
        return r.v
    }
    r.v = nil
    if r.lookup == nil || r.name == "" {
        return nil
    }
    if v, ok := r.lookup.Find(r.name); ok {
        r.v = v
    }
    return r.v
}

func (r *Ref) String() string {
    if v := r.resolve(); v != nil {
        return v.String()
    }
    return ""
}

func (r *Ref) Float() float64 {
    if v := r.resolve(); v != nil {
        return v.Float()
    }
    return 0
}

func (r *Ref) Min() (float64, bool) {
    if v := r.resolve(); v != nil {
        return v.Min()
    }
    return 0, false
}

func (r *Ref) SetString(s string) {
    if v := r.resolve(); v != nil {
        v.SetString(s)
    }
}

func (r *Ref) SetFloat(f float64) {
    if v := r.resolve(); v != nil {
        v.SetFloat(f)
    }
}
