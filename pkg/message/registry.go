package message

import "sync"

// Registry maps fully-qualified type names to message factories, letting a
// transport route a SerializedMessage payload to a fresh value of the right
// type. Decoding itself never consults the name.
type Registry struct {
    mu     sync.RWMutex
    byName map[string]func() Message
}

func NewRegistry() *Registry {
    return &Registry{byName: make(map[string]func() Message)}
}

// Register adds a factory keyed by the type name of the value it produces.
func (r *Registry) Register(fn func() Message) {
    name := fn().TypeName()
    r.mu.Lock()
    r.byName[name] = fn
    r.mu.Unlock()
}

// New returns a fresh message for name, or nil if unknown.
func (r *Registry) New(name string) Message {
    r.mu.RLock()
    fn := r.byName[name]
    r.mu.RUnlock()
    if fn == nil {
        return nil
    }
    return fn()
}

// Names lists registered type names.
func (r *Registry) Names() []string {
    r.mu.RLock()
    defer r.mu.RUnlock()
    out := make([]string, 0, len(r.byName))
    for n := range r.byName {
        out = append(out, n)
    }
    return out
}
