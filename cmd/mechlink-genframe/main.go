// mechlink-genframe writes sample wire frames for offline inspection and for
// cross-checking other implementations of the format.
package main

import (
    "encoding/hex"
    "flag"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "strings"

    "mechlink/pkg/action"
    "mechlink/pkg/actionmsgs"
    "mechlink/pkg/message"
    "mechlink/pkg/msg"
)

func main() {
    outDir := flag.String("out", "testdata/frames", "output directory for binary frames")
    flag.Parse()
    if err := os.MkdirAll(*outDir, 0o755); err != nil {
        log.Fatal(err)
    }

    // 1) Telemetry push: JointState inside an envelope, id 0
    js := msg.JointState{
        Header:   msg.Header{Stamp: msg.Time{Sec: 1700000000, Nanosec: 250000000}, FrameID: "arm_base"},
        Name:     []string{"shoulder", "elbow", "wrist"},
        Position: []float64{0.1, -0.5, 1.2},
        Velocity: []float64{0, 0, 0},
    }
    env := message.SerializedMessage{
        Title: "telemetry/joints",
        ID:    0,
        Msg:   message.Encode(&js),
    }
    writeOut(*outDir, "push_joint_state.bin", message.Encode(&env))

    // 2) SendGoal request envelope for a two-point trajectory
    goal := msg.FollowTrajectoryGoal{Trajectory: msg.Trajectory{
        Header:     msg.Header{Stamp: msg.Time{Sec: 1700000001}, FrameID: "arm_base"},
        JointNames: []string{"shoulder", "elbow"},
        Points: []msg.TrajectoryPoint{
            {Positions: []float64{0, 0}, Velocities: []float64{0, 0}},
            {Positions: []float64{0.5, 0.25}, Velocities: []float64{0.1, 0.1},
                TimeFromStart: msg.Time{Sec: 1}},
        },
    }}
    req := action.SendGoalRequest[msg.FollowTrajectoryGoal, *msg.FollowTrajectoryGoal]{
        Goal:    actionmsgs.GoalInfo{ID: actionmsgs.GoalID{0xca, 0xfe, 0xba, 0xbe}, Stamp: 1700000001000000000},
        Payload: goal,
    }
    env = message.SerializedMessage{
        Title: "arm/follow_trajectory/send_goal",
        ID:    1,
        Msg:   message.Encode(&req),
    }
    writeOut(*outDir, "call_send_goal.bin", message.Encode(&env))

    // 3) Status broadcast
    statuses := actionmsgs.GoalStatusArray{Statuses: []actionmsgs.GoalStatus{
        {Goal: req.Goal, Status: actionmsgs.StatusExecuting},
    }}
    env = message.SerializedMessage{
        Title: "arm/follow_trajectory/status",
        ID:    0,
        Msg:   message.Encode(&statuses),
    }
    writeOut(*outDir, "push_status.bin", message.Encode(&env))

    // 4) CancelGoal request, matching by stamp only
    cancel := actionmsgs.CancelGoalRequest{Goal: actionmsgs.GoalInfo{Stamp: 1700000002000000000}}
    env = message.SerializedMessage{
        Title: "arm/follow_trajectory/cancel_goal",
        ID:    2,
        Msg:   message.Encode(&cancel),
    }
    writeOut(*outDir, "call_cancel_by_stamp.bin", message.Encode(&env))

    fmt.Println("generated frames in", *outDir)
}

func writeOut(dir, name string, b []byte) {
    p := filepath.Join(dir, name)
    if err := os.WriteFile(p, b, 0o644); err != nil {
        log.Fatal(err)
    }
    fmt.Printf("%-26s %5d bytes  head: %s\n", name, len(b), shortHex(b, 48))
}

func shortHex(b []byte, n int) string {
    if len(b) == 0 {
        return ""
    }
    if n > len(b) {
        n = len(b)
    }
    enc := hex.EncodeToString(b[:n])
    var out []string
    for i := 0; i < len(enc); i += 8 {
        j := i + 8
        if j > len(enc) {
            j = len(enc)
        }
        out = append(out, enc[i:j])
    }
    s := strings.Join(out, " ")
    if len(b) > n {
        s += " ..."
    }
    return s
}
