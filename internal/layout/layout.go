// Package layout describes forms of cvar fields. Each field is a flat key-value
// settings document, the same shape a widget reads in ApplySettings and writes
// back in GetSettings.
package layout

import (
    "errors"
    "fmt"
    "os"
    "strconv"
    "strings"

    "gopkg.in/yaml.v3"
)

// Settings is a key-value settings document. Keys are case-insensitive.
type Settings map[string]string

func (s Settings) lookup(key string) (string, bool) {
    if v, ok := s[key]; ok {
        return v, true
    }
    for k, v := range s {
        if strings.EqualFold(k, key) {
            return v, true
        }
    }
    return "", false
}

func (s Settings) GetString(key, def string) string {
    if v, ok := s.lookup(key); ok {
        return v
    }
    return def
}

func (s Settings) GetInt(key string, def int) int {
    v, ok := s.lookup(key)
    if !ok {
        return def
    }
    n, err := strconv.Atoi(strings.TrimSpace(v))
    if err != nil {
        return def
    }
    return n
}

func (s Settings) GetBool(key string, def bool) bool {
    v, ok := s.lookup(key)
    if !ok {
        return def
    }
    switch strings.ToLower(strings.TrimSpace(v)) {
    case "1", "true", "yes", "on":
        return true
    case "0", "false", "no", "off":
        return false
    }
    return def
}

// SetString replaces any existing key that differs only in case.
func (s Settings) SetString(key, value string) {
    for k := range s {
        if k != key && strings.EqualFold(k, key) {
            delete(s, k)
        }
    }
    s[key] = value
}

func (s Settings) SetInt(key string, v int) { s.SetString(key, strconv.Itoa(v)) }

func (s Settings) SetBool(key string, v bool) {
    if v {
        s.SetString(key, "1")
        return
    }
    s.SetString(key, "0")
}

// Layout is a titled list of fields.
type Layout struct {
    Title  string
    Fields []Settings
}

type fileLayout struct {
    Title  string           `yaml:"title,omitempty"`
    Fields []map[string]any `yaml:"fields"`
}

type saveLayout struct {
    Title  string     `yaml:"title,omitempty"`
    Fields []Settings `yaml:"fields"`
}

// Parse decodes a YAML layout. Scalar values of any YAML type become strings.
func Parse(data []byte) (*Layout, error) {
    var fl fileLayout
    if err := yaml.Unmarshal(data, &fl); err != nil {
        return nil, fmt.Errorf("parse layout YAML: %w", err)
    }
    out := &Layout{Title: fl.Title}
    for i, f := range fl.Fields {
        s := Settings{}
        for k, v := range f {
            switch v.(type) {
            case map[string]any, []any:
                return nil, fmt.Errorf("layout field %d: key %q must be a scalar", i, k)
            case nil:
                s[k] = ""
            default:
                s[k] = fmt.Sprint(v)
            }
        }
        out.Fields = append(out.Fields, s)
    }
    return out, nil
}

func Load(path string) (*Layout, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("read layout: %w", err)
    }
    l, err := Parse(data)
    if err != nil {
        return nil, err
    }
    if len(l.Fields) == 0 {
        return nil, errors.New("layout has no fields")
    }
    return l, nil
}

func Save(path string, l *Layout) error {
    data, err := yaml.Marshal(saveLayout{Title: l.Title, Fields: l.Fields})
    if err != nil {
        return fmt.Errorf("encode layout: %w", err)
    }
    return os.WriteFile(path, data, 0644)
}
