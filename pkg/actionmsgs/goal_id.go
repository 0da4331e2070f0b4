package actionmsgs

import (
    "crypto/rand"
    "encoding/hex"
    "io"

    "mechlink/pkg/wire"
)

// GoalID identifies one goal for the lifetime of the action server that
// accepted it. Clients mint ids; the wire form is the raw 16 bytes with no
// length prefix.
type GoalID [16]byte

// NewGoalID generates a random 16-byte id.
func NewGoalID() (out GoalID, err error) {
    _, err = io.ReadFull(rand.Reader, out[:])
    return
}

func (g GoalID) String() string { return hex.EncodeToString(g[:]) }

func (g *GoalID) Append(dst []byte) []byte { return append(dst, g[:]...) }

func (g *GoalID) Put(b []byte) []byte {
    copy(b, g[:])
    return b[16:]
}

func (g *GoalID) Scan(b []byte) []byte {
    copy(g[:], b[:16])
    return b[16:]
}

func (g *GoalID) Size() int { return 16 }

func (g *GoalID) TypeName() string { return "action_msgs::msg::GoalID" }

// GoalInfo pairs a goal id with its creation stamp.
type GoalInfo struct {
    ID    GoalID
    Stamp int64 // unix nanoseconds
}

func (m *GoalInfo) Append(dst []byte) []byte {
    dst = m.ID.Append(dst)
    return wire.AppendInt64(dst, m.Stamp)
}

func (m *GoalInfo) Put(b []byte) []byte {
    b = m.ID.Put(b)
    return wire.PutInt64(b, m.Stamp)
}

func (m *GoalInfo) Scan(b []byte) []byte {
    b = m.ID.Scan(b)
    return wire.GetInt64(b, &m.Stamp)
}

func (m *GoalInfo) Size() int { return 24 }

func (m *GoalInfo) TypeName() string { return "action_msgs::msg::GoalInfo" }

func (m *GoalInfo) Equal(other *GoalInfo) bool {
    return m.ID == other.ID && m.Stamp == other.Stamp
}
