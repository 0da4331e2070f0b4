package transport_test

import (
    "context"
    "testing"
    "time"

    "mechlink/pkg/message"
    "mechlink/pkg/service"
    "mechlink/pkg/transport"
    "mechlink/pkg/transport/mem"
    "mechlink/pkg/wire"
)

type echoRequest struct {
    Text string
}

func (m *echoRequest) Append(dst []byte) []byte { return wire.AppendString(dst, m.Text) }
func (m *echoRequest) Put(b []byte) []byte      { return wire.PutString(b, m.Text) }
func (m *echoRequest) Scan(b []byte) []byte     { return wire.GetString(b, &m.Text) }
func (m *echoRequest) Size() int                { return wire.SizeString(m.Text) }
func (m *echoRequest) TypeName() string         { return "mechlink::srv::Echo::Request" }

type echoResponse struct {
    Text string
}

func (m *echoResponse) Append(dst []byte) []byte { return wire.AppendString(dst, m.Text) }
func (m *echoResponse) Put(b []byte) []byte      { return wire.PutString(b, m.Text) }
func (m *echoResponse) Scan(b []byte) []byte     { return wire.GetString(b, &m.Text) }
func (m *echoResponse) Size() int                { return wire.SizeString(m.Text) }
func (m *echoResponse) TypeName() string         { return "mechlink::srv::Echo::Response" }

func echoService() service.Service {
    return service.Service{
        Name:        "mechlink::srv::Echo",
        NewRequest:  func() message.Message { return &echoRequest{} },
        NewResponse: func() message.Message { return &echoResponse{} },
    }
}

func dialPair(t *testing.T, name string) (server, client transport.Stream) {
    t.Helper()
    ctx, cancel := context.WithCancel(context.Background())
    t.Cleanup(cancel)

    tr := mem.New()
    l, err := tr.Listen(ctx, name)
    if err != nil {
        t.Fatal(err)
    }

    srvCh := make(chan transport.Stream, 1)
    go func() {
        sess, err := l.Accept(ctx)
        if err != nil {
            return
        }
        st, err := sess.OpenStream(ctx, transport.StreamService)
        if err != nil {
            return
        }
        srvCh <- st
    }()

    sess, err := tr.Dial(ctx, name, transport.PeerInfo{ID: "client-1", Addr: name})
    if err != nil {
        t.Fatal(err)
    }
    cst, err := sess.OpenStream(ctx, transport.StreamService)
    if err != nil {
        t.Fatal(err)
    }

    select {
    case sst := <-srvCh:
        return sst, cst
    case <-time.After(time.Second):
        t.Fatal("accept never completed")
        return nil, nil
    }
}

func TestCallOverMemTransport(t *testing.T) {
    sst, cst := dialPair(t, "inproc://echo")

    mux := service.NewMux()
    mux.Handle(echoService(), service.Typed(func(req *echoRequest, res *echoResponse) {
        res.Text = req.Text + "!"
    }))
    go func() { _ = transport.Serve(context.Background(), sst, mux) }()

    conn := transport.NewConn(cst)
    defer conn.Close()

    ctx, cancel := context.WithTimeout(context.Background(), time.Second)
    defer cancel()

    req := echoRequest{Text: "hello"}
    respB, err := conn.Call(ctx, "mechlink::srv::Echo", message.Encode(&req))
    if err != nil {
        t.Fatal(err)
    }
    var res echoResponse
    res.Scan(respB)
    if res.Text != "hello!" {
        t.Fatalf("Text = %q", res.Text)
    }
}

func TestConcurrentCallsCorrelate(t *testing.T) {
    sst, cst := dialPair(t, "inproc://corr")

    mux := service.NewMux()
    mux.Handle(echoService(), service.Typed(func(req *echoRequest, res *echoResponse) {
        res.Text = req.Text
    }))
    go func() { _ = transport.Serve(context.Background(), sst, mux) }()

    conn := transport.NewConn(cst)
    defer conn.Close()

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    errCh := make(chan error, 8)
    for i := 0; i < 8; i++ {
        go func(n int) {
            text := string(rune('a' + n))
            req := echoRequest{Text: text}
            respB, err := conn.Call(ctx, "mechlink::srv::Echo", message.Encode(&req))
            if err != nil {
                errCh <- err
                return
            }
            var res echoResponse
            res.Scan(respB)
            if res.Text != text {
                errCh <- &mismatchError{want: text, got: res.Text}
                return
            }
            errCh <- nil
        }(i)
    }
    for i := 0; i < 8; i++ {
        if err := <-errCh; err != nil {
            t.Fatal(err)
        }
    }
}

type mismatchError struct{ want, got string }

func (e *mismatchError) Error() string { return "response " + e.got + " for request " + e.want }

func TestPushReachesOnPush(t *testing.T) {
    sst, cst := dialPair(t, "inproc://push")

    got := make(chan string, 1)
    conn := transport.NewConn(cst)
    defer conn.Close()
    conn.OnPush = func(title string, payload []byte) {
        var fb echoResponse
        fb.Scan(payload)
        got <- title + ":" + fb.Text
    }

    fb := echoResponse{Text: "progress"}
    if err := transport.Push(sst, "counter/count_up/feedback", message.Encode(&fb)); err != nil {
        t.Fatal(err)
    }

    select {
    case s := <-got:
        if s != "counter/count_up/feedback:progress" {
            t.Fatalf("push = %q", s)
        }
    case <-time.After(time.Second):
        t.Fatal("push never arrived")
    }
}

func TestCallAfterCloseFails(t *testing.T) {
    _, cst := dialPair(t, "inproc://closed")
    conn := transport.NewConn(cst)
    conn.Close()

    ctx, cancel := context.WithTimeout(context.Background(), time.Second)
    defer cancel()
    if _, err := conn.Call(ctx, "mechlink::srv::Echo", nil); err == nil {
        t.Fatal("call on closed conn succeeded")
    }
}
