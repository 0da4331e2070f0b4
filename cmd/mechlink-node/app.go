package main

import (
    "context"
    "errors"
    "os"
    "os/signal"
    "path/filepath"
    "sync"
    "syscall"
    "time"

    "go.uber.org/zap"

    "mechlink/pkg/action"
    "mechlink/pkg/codec"
    "mechlink/pkg/config"
    "mechlink/pkg/msg"
    "mechlink/pkg/observability"
    "mechlink/pkg/record"
    "mechlink/pkg/service"
    "mechlink/pkg/transport"
    "mechlink/pkg/transport/mem"
    "mechlink/pkg/transport/quic"
    "mechlink/pkg/transport/tcp"
)

type followDef = action.Definition[msg.FollowTrajectoryGoal, *msg.FollowTrajectoryGoal,
    msg.FollowTrajectoryResult, *msg.FollowTrajectoryResult,
    msg.FollowTrajectoryFeedback, *msg.FollowTrajectoryFeedback]

type followHandle = action.GoalHandle[msg.FollowTrajectoryGoal, *msg.FollowTrajectoryGoal,
    msg.FollowTrajectoryResult, *msg.FollowTrajectoryResult,
    msg.FollowTrajectoryFeedback, *msg.FollowTrajectoryFeedback]

// run is the main entry point after CLI parsing.
func run(opts Options) int {
    cfg, err := config.Load(opts.ConfigPath)
    if err != nil {
        _, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
        return 1
    }

    logger, err := observability.SetupLogger(cfg.Log)
    if err != nil {
        _, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
        return 1
    }
    defer func() { _ = logger.Sync() }()

    zap.L().Info("mechlink-node started", zap.String("app", cfg.AppName), zap.String("node", cfg.NodeID))
    zap.L().Info("effective configuration", zap.Any("config", cfg))

    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    var rec *record.Recorder
    if cfg.Record.Enable {
        rec, err = openRecorder(cfg)
        if err != nil {
            zap.L().Error("failed to open recorder", zap.Error(err))
            return 1
        }
    }

    def := followDef{Name: "arm/follow_trajectory"}
    hub := newHub()

    srv := action.NewServer[msg.FollowTrajectoryGoal, *msg.FollowTrajectoryGoal,
        msg.FollowTrajectoryResult, *msg.FollowTrajectoryResult,
        msg.FollowTrajectoryFeedback, *msg.FollowTrajectoryFeedback](def, action.ServerOptions{
        ResultTTL:     cfg.Action.ResultTTL,
        StatusPeriod:  cfg.Action.StatusPeriod,
        StoreMaxBytes: uint64(cfg.Action.StoreMaxBytes),
    })
    defer srv.Close()

    ch := def.Channels()
    srv.PublishFeedback = func(b []byte) { hub.Broadcast(ch.Feedback, b) }
    srv.PublishStatus = func(b []byte) { hub.Broadcast(ch.Status, b) }
    srv.OnGoal = followTrajectory

    mux := service.NewMux()
    srv.Register(mux)

    go srv.RunStatusBroadcast(ctx)

    for _, tc := range cfg.Transports {
        tr, err := transportByKind(tc.Kind)
        if err != nil {
            zap.L().Error("unknown transport", zap.String("kind", tc.Kind), zap.Error(err))
            return 1
        }
        for _, addr := range tc.Listen {
            l, err := tr.Listen(ctx, addr)
            if err != nil {
                zap.L().Error("listen failed", zap.String("kind", tc.Kind), zap.String("addr", addr), zap.Error(err))
                return 1
            }
            zap.L().Info("listening", zap.String("kind", tc.Kind), zap.String("addr", addr))
            go acceptLoop(ctx, l, mux, hub, rec)
        }
    }

    sig := make(chan os.Signal, 1)
    signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
    s := <-sig
    zap.L().Info("shutting down", zap.String("signal", s.String()))
    return 0
}

// followTrajectory walks the goal's waypoints on their schedule, feeding back
// per-point progress. Cancellation is honored between waypoints.
func followTrajectory(h *followHandle, goal msg.FollowTrajectoryGoal) {
    if err := h.Executing(); err != nil {
        return
    }
    points := goal.Trajectory.Points
    elapsed := time.Duration(0)
    for i := range points {
        due := time.Duration(points[i].TimeFromStart.Sec)*time.Second +
            time.Duration(points[i].TimeFromStart.Nanosec)
        wait := due - elapsed
        if wait < 0 {
            wait = 0
        }
        elapsed = due
        select {
        case <-h.CancelRequested():
            _ = h.Canceled(msg.FollowTrajectoryResult{ErrorCode: -1, ErrorString: "canceled"})
            return
        case <-time.After(wait):
        }
        h.Feedback(msg.FollowTrajectoryFeedback{
            Actual:   points[i],
            Progress: float32(i+1) / float32(len(points)),
        })
    }
    _ = h.Succeed(msg.FollowTrajectoryResult{})
}

func transportByKind(kind string) (transport.Transport, error) {
    switch kind {
    case "tcp":
        return tcp.New(), nil
    case "quic":
        return quic.New(), nil
    case "mem":
        return mem.New(), nil
    }
    return nil, errors.New("unsupported transport kind: " + kind)
}

func acceptLoop(ctx context.Context, l transport.Listener, mux *service.Mux, hub *hub, rec *record.Recorder) {
    for {
        sess, err := l.Accept(ctx)
        if err != nil {
            return
        }
        zap.L().Info("session accepted",
            zap.String("peer", sess.Peer().ID), zap.String("kind", sess.TransportKind().String()))
        go func() {
            st, err := sess.AcceptStream(ctx)
            if err != nil {
                _ = sess.Close()
                return
            }
            if rec != nil {
                st = recordedStream{Stream: st, rec: rec}
            }
            hub.Add(st)
            defer hub.Remove(st)
            if err := transport.Serve(ctx, st, mux); err != nil && ctx.Err() == nil {
                zap.L().Debug("session ended", zap.String("peer", sess.Peer().ID), zap.Error(err))
            }
            _ = sess.Close()
        }()
    }
}

func openRecorder(cfg *config.Config) (*record.Recorder, error) {
    path := cfg.Record.Path
    if !filepath.IsAbs(path) {
        path = filepath.Join(cfg.DataDir, path)
    }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return nil, err
    }
    f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
    if err != nil {
        return nil, err
    }
    var c codec.Codec
    switch cfg.Record.Codec {
    case "json":
        c = codec.JSON()
    default:
        c, err = codec.CBOR()
        if err != nil {
            return nil, err
        }
    }
    zap.L().Info("recording envelopes", zap.String("path", path), zap.String("codec", c.ContentType()))
    return record.NewRecorder(f, c), nil
}

// recordedStream captures the diagnostic record of every inbound envelope.
type recordedStream struct {
    transport.Stream
    rec *record.Recorder
}

func (s recordedStream) RecvBytes() ([]byte, error) {
    b, err := s.Stream.RecvBytes()
    if err != nil {
        return b, err
    }
    if env, derr := transport.DecodeEnvelope(b); derr == nil {
        env.Timestamp = time.Now().UnixNano()
        _ = s.rec.RecordEnvelope(env)
    }
    return b, nil
}

// hub fans pushed messages out to every live session stream.
type hub struct {
    mu      sync.Mutex
    streams map[transport.Stream]struct{}
}

func newHub() *hub { return &hub{streams: make(map[transport.Stream]struct{})} }

func (h *hub) Add(st transport.Stream) {
    h.mu.Lock()
    h.streams[st] = struct{}{}
    h.mu.Unlock()
}

func (h *hub) Remove(st transport.Stream) {
    h.mu.Lock()
    delete(h.streams, st)
    h.mu.Unlock()
}

func (h *hub) Broadcast(title string, payload []byte) {
    h.mu.Lock()
    targets := make([]transport.Stream, 0, len(h.streams))
    for st := range h.streams {
        targets = append(targets, st)
    }
    h.mu.Unlock()
    for _, st := range targets {
        if err := transport.Push(st, title, payload); err != nil {
            h.Remove(st)
        }
    }
}
