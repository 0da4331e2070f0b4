// Package quic is a stream transport over QUIC. Unlike tcp and mem it has
// real multiplexing: each stream class gets its own QUIC stream.
package quic

import (
    "context"
    "crypto/rand"
    "crypto/rsa"
    "crypto/tls"
    "crypto/x509"
    "crypto/x509/pkix"
    "encoding/binary"
    "encoding/pem"
    "errors"
    "io"
    "math/big"
    "net"
    "sync"
    "time"

    "github.com/quic-go/quic-go"

    "mechlink/pkg/transport"
)

const alpnProto = "mechlink/1"

type Transport struct {
    // TLS overrides the generated self-signed config when set.
    TLS *tls.Config
}

func New() *Transport { return &Transport{} }

func (t *Transport) Kind() transport.Kind { return transport.KindQUIC }

func (t *Transport) Listen(ctx context.Context, address string) (transport.Listener, error) {
    tcfg := t.TLS
    if tcfg == nil {
        var err error
        tcfg, err = selfSignedConfig()
        if err != nil {
            return nil, err
        }
    }
    ql, err := quic.ListenAddr(address, tcfg, &quic.Config{
        MaxIdleTimeout:  30 * time.Second,
        KeepAlivePeriod: 10 * time.Second,
    })
    if err != nil {
        return nil, err
    }
    l := &listener{ql: ql}
    go func() { <-ctx.Done(); _ = l.Close() }()
    return l, nil
}

func (t *Transport) Dial(ctx context.Context, address string, peer transport.PeerInfo) (transport.Session, error) {
    tcfg := t.TLS
    if tcfg == nil {
        tcfg = &tls.Config{InsecureSkipVerify: true, NextProtos: []string{alpnProto}}
    }
    conn, err := quic.DialAddr(ctx, address, tcfg, &quic.Config{
        MaxIdleTimeout:  30 * time.Second,
        KeepAlivePeriod: 10 * time.Second,
    })
    if err != nil {
        return nil, err
    }
    s := newSession(peer, conn)
    go func() { <-ctx.Done(); _ = s.Close() }()
    return s, nil
}

type listener struct {
    ql *quic.Listener
}

func (l *listener) Addr() net.Addr { return l.ql.Addr() }

func (l *listener) Accept(ctx context.Context) (transport.Session, error) {
    conn, err := l.ql.Accept(ctx)
    if err != nil {
        return nil, err
    }
    peer := transport.PeerInfo{
        ID:   transport.TempPeerID(transport.KindQUIC, conn.RemoteAddr()),
        Addr: conn.RemoteAddr().String(),
    }
    return newSession(peer, conn), nil
}

func (l *listener) Close() error { return l.ql.Close() }

type session struct {
    peer transport.PeerInfo
    conn quic.Connection

    mu      sync.Mutex
    streams map[transport.StreamClass]*stream
}

func newSession(peer transport.PeerInfo, conn quic.Connection) *session {
    return &session{peer: peer, conn: conn, streams: make(map[transport.StreamClass]*stream)}
}

func (s *session) Peer() transport.PeerInfo      { return s.peer }
func (s *session) TransportKind() transport.Kind { return transport.KindQUIC }
func (s *session) LocalAddr() net.Addr           { return s.conn.LocalAddr() }
func (s *session) RemoteAddr() net.Addr          { return s.conn.RemoteAddr() }

func (s *session) OpenStream(ctx context.Context, cls transport.StreamClass) (transport.Stream, error) {
    s.mu.Lock()
    if st, ok := s.streams[cls]; ok {
        s.mu.Unlock()
        return st, nil
    }
    s.mu.Unlock()
    qs, err := s.conn.OpenStreamSync(ctx)
    if err != nil {
        return nil, err
    }
    st := &stream{qs: qs}
    s.mu.Lock()
    s.streams[cls] = st
    s.mu.Unlock()
    return st, nil
}

func (s *session) AcceptStream(ctx context.Context) (transport.Stream, error) {
    qs, err := s.conn.AcceptStream(ctx)
    if err != nil {
        return nil, err
    }
    return &stream{qs: qs}, nil
}

func (s *session) Close() error {
    return s.conn.CloseWithError(0, "closed")
}

type stream struct {
    mu sync.Mutex
    qs quic.Stream
}

// u32 LE length-prefixed frames, same layout as the tcp transport.
func (st *stream) SendBytes(b []byte) error {
    st.mu.Lock()
    defer st.mu.Unlock()
    var lenbuf [4]byte
    binary.LittleEndian.PutUint32(lenbuf[:], uint32(len(b)))
    if _, err := st.qs.Write(lenbuf[:]); err != nil {
        return err
    }
    _, err := st.qs.Write(b)
    return err
}

func (st *stream) RecvBytes() ([]byte, error) {
    var lenbuf [4]byte
    if _, err := io.ReadFull(st.qs, lenbuf[:]); err != nil {
        return nil, err
    }
    n := int(binary.LittleEndian.Uint32(lenbuf[:]))
    if n > (1 << 24) {
        return nil, errors.New("quic: invalid frame size")
    }
    buf := make([]byte, n)
    if _, err := io.ReadFull(st.qs, buf); err != nil {
        return nil, err
    }
    return buf, nil
}

func (st *stream) Close() error { return st.qs.Close() }

// selfSignedConfig builds an ephemeral server certificate. Deployments that
// care about peer authentication supply Transport.TLS instead.
func selfSignedConfig() (*tls.Config, error) {
    key, err := rsa.GenerateKey(rand.Reader, 2048)
    if err != nil {
        return nil, err
    }
    tmpl := x509.Certificate{
        SerialNumber: big.NewInt(1),
        Subject:      pkix.Name{CommonName: "mechlink"},
        NotBefore:    time.Now().Add(-time.Hour),
        NotAfter:     time.Now().Add(365 * 24 * time.Hour),
        KeyUsage:     x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
        ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
    }
    der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
    if err != nil {
        return nil, err
    }
    certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
    keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
    cert, err := tls.X509KeyPair(certPEM, keyPEM)
    if err != nil {
        return nil, err
    }
    return &tls.Config{
        Certificates: []tls.Certificate{cert},
        NextProtos:   []string{alpnProto},
    }, nil
}
