package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "os"
    "time"

    "go.uber.org/zap"

    "mechlink/pkg/action"
    "mechlink/pkg/actionmsgs"
    "mechlink/pkg/msg"
    "mechlink/pkg/transport"
    "mechlink/pkg/transport/quic"
    "mechlink/pkg/transport/tcp"
)

type followClient = action.Client[msg.FollowTrajectoryGoal, *msg.FollowTrajectoryGoal,
    msg.FollowTrajectoryResult, *msg.FollowTrajectoryResult,
    msg.FollowTrajectoryFeedback, *msg.FollowTrajectoryFeedback]

func main() {
    kind := flag.String("kind", "tcp", "transport kind: tcp|quic")
    addr := flag.String("addr", "127.0.0.1:7777", "address to connect to")
    name := flag.String("name", "client-1", "logical node name")
    points := flag.Int("points", 5, "number of trajectory waypoints")
    step := flag.Duration("step", 200*time.Millisecond, "time between waypoints")
    cancelAfter := flag.Duration("cancel-after", 0, "cancel the goal after this delay (0 = never)")
    timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
    flag.Parse()

    logger, _ := zap.NewDevelopment()
    zap.ReplaceGlobals(logger)
    defer func() { _ = logger.Sync() }()

    ctx, cancel := context.WithTimeout(context.Background(), *timeout)
    defer cancel()

    tr, err := transportByKind(*kind)
    if err != nil {
        fatalf("transport: %v", err)
    }
    sess, err := tr.Dial(ctx, *addr, transport.PeerInfo{ID: *name, Addr: *addr})
    if err != nil {
        fatalf("dial: %v", err)
    }
    defer sess.Close()

    st, err := sess.OpenStream(ctx, transport.StreamService)
    if err != nil {
        fatalf("open stream: %v", err)
    }
    conn := transport.NewConn(st)
    defer conn.Close()

    def := action.Definition[msg.FollowTrajectoryGoal, *msg.FollowTrajectoryGoal,
        msg.FollowTrajectoryResult, *msg.FollowTrajectoryResult,
        msg.FollowTrajectoryFeedback, *msg.FollowTrajectoryFeedback]{Name: "arm/follow_trajectory"}
    ch := def.Channels()

    conn.OnPush = func(title string, payload []byte) {
        switch title {
        case ch.Feedback:
            var fb action.FeedbackMessage[msg.FollowTrajectoryFeedback, *msg.FollowTrajectoryFeedback]
            fb.Scan(payload)
            zap.L().Info("feedback",
                zap.String("goal", fb.ID.String()),
                zap.Float32("progress", fb.Payload.Progress))
        case ch.Status:
            var arr actionmsgs.GoalStatusArray
            arr.Scan(payload)
            for _, gs := range arr.Statuses {
                zap.L().Debug("status",
                    zap.String("goal", gs.Goal.ID.String()),
                    zap.String("state", gs.Status.String()))
            }
        }
    }

    c := &followClient{Def: def, Call: conn.Caller()}

    goal := buildGoal(*points, *step)
    info, accepted, err := c.SendGoal(ctx, goal)
    if err != nil {
        fatalf("send goal: %v", err)
    }
    if !accepted {
        fatalf("goal rejected")
    }
    zap.L().Info("goal accepted", zap.String("goal", info.ID.String()))

    if *cancelAfter > 0 {
        go func() {
            time.Sleep(*cancelAfter)
            resp, err := c.Cancel(ctx, actionmsgs.CancelGoalRequest{Goal: info})
            if err != nil {
                zap.L().Warn("cancel failed", zap.Error(err))
                return
            }
            zap.L().Info("cancel requested",
                zap.Int8("return_code", resp.ReturnCode),
                zap.Int("goals", len(resp.GoalsCanceling)))
        }()
    }

    for {
        status, result, err := c.GetResult(ctx, info.ID)
        if err != nil {
            fatalf("get result: %v", err)
        }
        if status.Terminal() {
            zap.L().Info("goal finished",
                zap.String("state", status.String()),
                zap.Int32("error_code", result.ErrorCode),
                zap.String("error", result.ErrorString))
            return
        }
        select {
        case <-ctx.Done():
            fatalf("deadline before terminal state")
        case <-time.After(200 * time.Millisecond):
        }
    }
}

func buildGoal(n int, step time.Duration) msg.FollowTrajectoryGoal {
    t := msg.Trajectory{
        Header:     msg.Header{Stamp: msg.Time{Sec: int32(time.Now().Unix())}, FrameID: "arm_base"},
        JointNames: []string{"shoulder", "elbow", "wrist"},
    }
    for i := 0; i < n; i++ {
        due := time.Duration(i) * step
        t.Points = append(t.Points, msg.TrajectoryPoint{
            Positions:  []float64{float64(i) * 0.1, float64(i) * 0.05, 0},
            Velocities: []float64{0.1, 0.05, 0},
            TimeFromStart: msg.Time{
                Sec:     int32(due / time.Second),
                Nanosec: uint32(due % time.Second),
            },
        })
    }
    return msg.FollowTrajectoryGoal{Trajectory: t}
}

func transportByKind(kind string) (transport.Transport, error) {
    switch kind {
    case "tcp":
        return tcp.New(), nil
    case "quic":
        return quic.New(), nil
    }
    return nil, errors.New("unsupported transport kind: " + kind)
}

func fatalf(format string, args ...any) {
    fmt.Fprintf(os.Stderr, format+"\n", args...)
    os.Exit(1)
}
