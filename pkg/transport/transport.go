// Package transport defines the link abstraction the protocol core rides on:
// sessions carrying length-prefixed envelope frames between nodes. The
// protocol layers treat everything here as an external collaborator — they
// only consume streams of frames and the channel naming convention.
package transport

import (
    "context"
    "net"
)

// Kind identifies the link type of a session.
type Kind int

const (
    KindUnknown Kind = iota
    KindTCP
    KindQUIC
    KindMem
)

func (k Kind) String() string {
    switch k {
    case KindTCP:
        return "tcp"
    case KindQUIC:
        return "quic"
    case KindMem:
        return "mem"
    default:
        return "unknown"
    }
}

// StreamClass labels multiplexed streams within a session by protocol role.
type StreamClass int

const (
    StreamService  StreamClass = iota // request/response exchanges
    StreamFeedback                    // out-of-band feedback pushes
    StreamStatus                      // goal status broadcasts
)

// PeerInfo names the remote node of a session.
type PeerInfo struct {
    ID   string // logical node name
    Addr string // transport-dependent address
}

// TempPeerID derives a provisional peer id for inbound sessions that have not
// introduced themselves yet.
func TempPeerID(k Kind, addr net.Addr) string {
    if addr == nil {
        return "temp:" + k.String()
    }
    return "temp:" + k.String() + ":" + addr.String()
}

// Stream is a bidirectional frame stream. Exactly one reader and one writer
// goroutine are expected.
type Stream interface {
    // SendBytes sends one frame as opaque bytes.
    SendBytes([]byte) error
    // RecvBytes receives the next frame.
    RecvBytes() ([]byte, error)
    Close() error
}

// Session is a connection to a peer with optional multiplexed streams.
type Session interface {
    Peer() PeerInfo
    TransportKind() Kind
    LocalAddr() net.Addr
    RemoteAddr() net.Addr

    // OpenStream opens/returns a stream of the given class. Transports
    // without multiplexing may return a single shared stream for all classes.
    OpenStream(ctx context.Context, cls StreamClass) (Stream, error)

    // AcceptStream waits for the next inbound stream (if supported).
    AcceptStream(ctx context.Context) (Stream, error)

    Close() error
}

// Listener accepts inbound sessions.
type Listener interface {
    Accept(ctx context.Context) (Session, error)
    Addr() net.Addr
    Close() error
}

// Transport provides dialing and listening for one link kind.
type Transport interface {
    Kind() Kind
    Listen(ctx context.Context, address string) (Listener, error)
    Dial(ctx context.Context, address string, peer PeerInfo) (Session, error)
}
