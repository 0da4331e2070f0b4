package service

import (
    "sync"

    "go.uber.org/zap"

    "mechlink/pkg/message"
)

// Handler consumes encoded request bytes and produces encoded response bytes.
// Rejection and other protocol outcomes travel inside the response; a handler
// never fails the exchange itself.
type Handler func(req []byte) []byte

// Mux routes encoded requests to handlers by service name. It is the
// server-side half of the service contract; the transport delivering the
// bytes is an external collaborator.
type Mux struct {
    mu       sync.RWMutex
    handlers map[string]Handler
}

func NewMux() *Mux { return &Mux{handlers: make(map[string]Handler)} }

// Handle registers h for svc. Re-registering a name replaces the handler.
func (m *Mux) Handle(svc Service, h Handler) {
    m.mu.Lock()
    m.handlers[svc.Name] = h
    m.mu.Unlock()
}

// Serve dispatches req to the handler registered under name. ok is false when
// the name is unknown.
func (m *Mux) Serve(name string, req []byte) (resp []byte, ok bool) {
    m.mu.RLock()
    h := m.handlers[name]
    m.mu.RUnlock()
    if h == nil {
        zap.L().Warn("service not registered", zap.String("service", name))
        return nil, false
    }
    return h(req), true
}

// Typed adapts a typed exchange function into a Handler: the request is
// decoded in place, fn fills the response, and the response is encoded with
// its exact computed size.
func Typed[Req any, PReq interface {
    *Req
    message.Message
}, Res any, PRes interface {
    *Res
    message.Message
}](fn func(req *Req, res *Res)) Handler {
    return func(b []byte) []byte {
        var req Req
        PReq(&req).Scan(b)
        var res Res
        fn(&req, &res)
        return message.Encode(PRes(&res))
    }
}
