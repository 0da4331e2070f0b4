// Package mem is an in-process transport over net.Pipe, used by tests and
// single-process deployments that still want the full protocol path.
package mem

import (
    "bufio"
    "context"
    "encoding/binary"
    "errors"
    "io"
    "net"
    "sync"

    "mechlink/pkg/transport"
)

type Transport struct {
    mu        sync.Mutex
    listeners map[string]*listener
}

func New() *Transport { return &Transport{listeners: make(map[string]*listener)} }

func (t *Transport) Kind() transport.Kind { return transport.KindMem }

func (t *Transport) Listen(ctx context.Context, name string) (transport.Listener, error) {
    t.mu.Lock()
    defer t.mu.Unlock()
    if _, ok := t.listeners[name]; ok {
        return nil, errors.New("mem: listener already exists")
    }
    l := &listener{name: name, newCh: make(chan *session, 8), closeCh: make(chan struct{})}
    t.listeners[name] = l
    go func() {
        <-ctx.Done()
        _ = l.Close()
        t.mu.Lock()
        delete(t.listeners, name)
        t.mu.Unlock()
    }()
    return l, nil
}

func (t *Transport) Dial(ctx context.Context, name string, peer transport.PeerInfo) (transport.Session, error) {
    t.mu.Lock()
    l := t.listeners[name]
    t.mu.Unlock()
    if l == nil {
        return nil, errors.New("mem: no such listener")
    }
    c1, c2 := net.Pipe()
    srv := newSession(transport.PeerInfo{ID: peer.ID, Addr: name}, c1)
    cli := newSession(peer, c2)
    select {
    case l.newCh <- srv:
    default:
        _ = srv.Close()
        _ = cli.Close()
        return nil, errors.New("mem: listener backlog full")
    }
    go func() { <-ctx.Done(); _ = cli.Close() }()
    return cli, nil
}

type listener struct {
    name    string
    newCh   chan *session
    closeCh chan struct{}
}

func (l *listener) Addr() net.Addr { return memAddr(l.name) }

func (l *listener) Accept(ctx context.Context) (transport.Session, error) {
    select {
    case <-ctx.Done():
        return nil, ctx.Err()
    case <-l.closeCh:
        return nil, errors.New("mem: listener closed")
    case s := <-l.newCh:
        return s, nil
    }
}

func (l *listener) Close() error {
    select {
    case <-l.closeCh:
    default:
        close(l.closeCh)
    }
    return nil
}

type memAddr string

func (a memAddr) Network() string { return "mem" }
func (a memAddr) String() string  { return string(a) }

type session struct {
    mu   sync.Mutex
    peer transport.PeerInfo
    c    net.Conn
    br   *bufio.Reader
    bw   *bufio.Writer
}

func newSession(peer transport.PeerInfo, c net.Conn) *session {
    return &session{peer: peer, c: c, br: bufio.NewReader(c), bw: bufio.NewWriter(c)}
}

func (s *session) Peer() transport.PeerInfo      { return s.peer }
func (s *session) TransportKind() transport.Kind { return transport.KindMem }
func (s *session) LocalAddr() net.Addr           { return s.c.LocalAddr() }
func (s *session) RemoteAddr() net.Addr          { return s.c.RemoteAddr() }

// One shared stream for every class: net.Pipe has no multiplexing.
func (s *session) OpenStream(_ context.Context, _ transport.StreamClass) (transport.Stream, error) {
    return s, nil
}

func (s *session) AcceptStream(_ context.Context) (transport.Stream, error) { return s, nil }

func (s *session) Close() error { return s.c.Close() }

// u32 LE length-prefixed frames
func (s *session) SendBytes(b []byte) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    var lenbuf [4]byte
    binary.LittleEndian.PutUint32(lenbuf[:], uint32(len(b)))
    if _, err := s.bw.Write(lenbuf[:]); err != nil {
        return err
    }
    if _, err := s.bw.Write(b); err != nil {
        return err
    }
    return s.bw.Flush()
}

func (s *session) RecvBytes() ([]byte, error) {
    var lenbuf [4]byte
    if _, err := io.ReadFull(s.br, lenbuf[:]); err != nil {
        return nil, err
    }
    n := int(binary.LittleEndian.Uint32(lenbuf[:]))
    if n > (1 << 24) {
        return nil, errors.New("mem: invalid frame size")
    }
    buf := make([]byte, n)
    if _, err := io.ReadFull(s.br, buf); err != nil {
        return nil, err
    }
    return buf, nil
}
