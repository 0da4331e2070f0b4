package tcp

import (
    "bytes"
    "context"
    "testing"
    "time"

    "mechlink/pkg/transport"
)

func TestFrameRoundTripLoopback(t *testing.T) {
    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    tr := New()
    l, err := tr.Listen(ctx, "127.0.0.1:0")
    if err != nil {
        t.Fatal(err)
    }

    srvCh := make(chan transport.Session, 1)
    go func() {
        sess, err := l.Accept(ctx)
        if err != nil {
            return
        }
        srvCh <- sess
    }()

    cli, err := tr.Dial(ctx, l.Addr().String(), transport.PeerInfo{ID: "client-1"})
    if err != nil {
        t.Fatal(err)
    }
    var srv transport.Session
    select {
    case srv = <-srvCh:
    case <-time.After(time.Second):
        t.Fatal("accept never completed")
    }

    cst, err := cli.OpenStream(ctx, transport.StreamService)
    if err != nil {
        t.Fatal(err)
    }
    sst, err := srv.AcceptStream(ctx)
    if err != nil {
        t.Fatal(err)
    }

    frame := []byte("follow_trajectory goal bytes")
    if err := cst.SendBytes(frame); err != nil {
        t.Fatal(err)
    }
    got, err := sst.RecvBytes()
    if err != nil {
        t.Fatal(err)
    }
    if !bytes.Equal(got, frame) {
        t.Fatalf("frame = %q", got)
    }

    // empty frames are legal
    if err := sst.SendBytes(nil); err != nil {
        t.Fatal(err)
    }
    got, err = cst.RecvBytes()
    if err != nil {
        t.Fatal(err)
    }
    if len(got) != 0 {
        t.Fatalf("empty frame read back %d bytes", len(got))
    }
}

func TestPeerKind(t *testing.T) {
    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    tr := New()
    l, err := tr.Listen(ctx, "127.0.0.1:0")
    if err != nil {
        t.Fatal(err)
    }
    go func() { _, _ = l.Accept(ctx) }()

    sess, err := tr.Dial(ctx, l.Addr().String(), transport.PeerInfo{ID: "arm-7", Addr: l.Addr().String()})
    if err != nil {
        t.Fatal(err)
    }
    if sess.TransportKind() != transport.KindTCP {
        t.Fatalf("kind = %v", sess.TransportKind())
    }
    if sess.Peer().ID != "arm-7" {
        t.Fatalf("peer = %+v", sess.Peer())
    }
}
