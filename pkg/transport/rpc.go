package transport

import (
    "context"
    "errors"
    "sync"
    "sync/atomic"
    "time"

    "go.uber.org/zap"

    "mechlink/pkg/message"
    "mechlink/pkg/service"
)

// Request/response and push exchange over one stream. Every frame is an
// envelope: Title routes (service name or push channel name), ID correlates a
// response to its request, Msg carries the encoded message. Push frames use
// id zero; correlation ids start at one.

// ErrConnClosed reports a call attempted on a closed exchange.
var ErrConnClosed = errors.New("transport: conn closed")

// Serve answers service requests arriving on st until the stream fails or ctx
// ends. Malformed frames and unknown services are dropped: protocol-level
// outcomes travel inside responses, transport-level damage is not recoverable
// per frame.
func Serve(ctx context.Context, st Stream, mux *service.Mux) error {
    for {
        if err := ctx.Err(); err != nil {
            return err
        }
        frame, err := st.RecvBytes()
        if err != nil {
            return err
        }
        env, err := DecodeEnvelope(frame)
        if err != nil {
            zap.L().Warn("dropping malformed frame", zap.Int("bytes", len(frame)))
            continue
        }
        resp, ok := mux.Serve(env.Title, env.Msg)
        if !ok {
            continue
        }
        out := message.SerializedMessage{
            Title:     env.Title,
            Timestamp: time.Now().UnixNano(),
            ID:        env.ID,
            Msg:       resp,
        }
        if err := st.SendBytes(message.Encode(&out)); err != nil {
            return err
        }
    }
}

// Push sends one fire-and-forget message on a named channel.
func Push(st Stream, title string, payload []byte) error {
    env := message.SerializedMessage{
        Title:     title,
        Timestamp: time.Now().UnixNano(),
        ID:        0,
        Msg:       payload,
    }
    return st.SendBytes(message.Encode(&env))
}

// Conn is the calling side of an exchange stream. One goroutine reads frames
// and routes responses to pending calls; frames with id zero go to OnPush.
type Conn struct {
    st Stream

    // OnPush receives fire-and-forget messages (feedback, status snapshots).
    // Set before the first frame arrives.
    OnPush func(title string, payload []byte)

    mu      sync.Mutex
    pending map[int32]chan []byte
    nextID  atomic.Int32
    closeCh chan struct{}
}

func NewConn(st Stream) *Conn {
    c := &Conn{st: st, pending: make(map[int32]chan []byte), closeCh: make(chan struct{})}
    go c.readLoop()
    return c
}

func (c *Conn) Close() error {
    select {
    case <-c.closeCh:
    default:
        close(c.closeCh)
    }
    return c.st.Close()
}

// Call performs one service exchange and returns the encoded response.
func (c *Conn) Call(ctx context.Context, serviceName string, req []byte) ([]byte, error) {
    id := c.nextID.Add(1)
    ch := make(chan []byte, 1)
    c.mu.Lock()
    c.pending[id] = ch
    c.mu.Unlock()
    defer func() {
        c.mu.Lock()
        delete(c.pending, id)
        c.mu.Unlock()
    }()

    env := message.SerializedMessage{
        Title:     serviceName,
        Timestamp: time.Now().UnixNano(),
        ID:        id,
        Msg:       req,
    }
    if err := c.st.SendBytes(message.Encode(&env)); err != nil {
        return nil, err
    }
    select {
    case <-ctx.Done():
        return nil, ctx.Err()
    case <-c.closeCh:
        return nil, ErrConnClosed
    case resp := <-ch:
        return resp, nil
    }
}

// Caller adapts the conn to the action layer's exchange signature.
func (c *Conn) Caller() func(ctx context.Context, serviceName string, req []byte) ([]byte, error) {
    return c.Call
}

func (c *Conn) readLoop() {
    for {
        frame, err := c.st.RecvBytes()
        if err != nil {
            select {
            case <-c.closeCh:
            default:
                close(c.closeCh)
            }
            return
        }
        env, err := DecodeEnvelope(frame)
        if err != nil {
            zap.L().Warn("dropping malformed frame", zap.Int("bytes", len(frame)))
            continue
        }
        if env.ID == 0 {
            if c.OnPush != nil {
                c.OnPush(env.Title, env.Msg)
            }
            continue
        }
        c.mu.Lock()
        ch := c.pending[env.ID]
        c.mu.Unlock()
        if ch != nil {
            ch <- env.Msg
        }
    }
}
