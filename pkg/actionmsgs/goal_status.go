package actionmsgs

import (
    "mechlink/pkg/message"
    "mechlink/pkg/wire"
)

// Status is the lifecycle state of a goal. Rejected, Succeeded, Canceled and
// Aborted are terminal.
type Status int8

const (
    StatusUnknown Status = iota
    StatusAccepted
    StatusExecuting
    StatusCanceling
    StatusSucceeded
    StatusCanceled
    StatusAborted
    StatusRejected
)

func (s Status) String() string {
    switch s {
    case StatusAccepted:
        return "accepted"
    case StatusExecuting:
        return "executing"
    case StatusCanceling:
        return "canceling"
    case StatusSucceeded:
        return "succeeded"
    case StatusCanceled:
        return "canceled"
    case StatusAborted:
        return "aborted"
    case StatusRejected:
        return "rejected"
    default:
        return "unknown"
    }
}

// Terminal reports whether no further transition can leave s.
func (s Status) Terminal() bool {
    switch s {
    case StatusSucceeded, StatusCanceled, StatusAborted, StatusRejected:
        return true
    }
    return false
}

// GoalStatus associates one tracked goal with its current state.
type GoalStatus struct {
    Goal   GoalInfo
    Status Status
}

func (m *GoalStatus) Append(dst []byte) []byte {
    dst = m.Goal.Append(dst)
    return wire.AppendInt8(dst, int8(m.Status))
}

func (m *GoalStatus) Put(b []byte) []byte {
    b = m.Goal.Put(b)
    return wire.PutInt8(b, int8(m.Status))
}

func (m *GoalStatus) Scan(b []byte) []byte {
    b = m.Goal.Scan(b)
    var s int8
    b = wire.GetInt8(b, &s)
    m.Status = Status(s)
    return b
}

func (m *GoalStatus) Size() int { return m.Goal.Size() + 1 }

func (m *GoalStatus) TypeName() string { return "action_msgs::msg::GoalStatus" }

func (m *GoalStatus) Equal(other *GoalStatus) bool {
    return m.Goal.Equal(&other.Goal) && m.Status == other.Status
}

// GoalStatusArray is the broadcast snapshot of every goal an action server
// currently tracks.
type GoalStatusArray struct {
    Statuses []GoalStatus
}

func (m *GoalStatusArray) Append(dst []byte) []byte {
    return message.AppendMsgVec[GoalStatus, *GoalStatus](dst, m.Statuses)
}

func (m *GoalStatusArray) Put(b []byte) []byte {
    return message.PutMsgVec[GoalStatus, *GoalStatus](b, m.Statuses)
}

func (m *GoalStatusArray) Scan(b []byte) []byte {
    return message.GetMsgVec[GoalStatus, *GoalStatus](b, &m.Statuses)
}

func (m *GoalStatusArray) Size() int {
    return message.SizeMsgVec[GoalStatus, *GoalStatus](m.Statuses)
}

func (m *GoalStatusArray) TypeName() string { return "action_msgs::msg::GoalStatusArray" }

func (m *GoalStatusArray) Equal(other *GoalStatusArray) bool {
    if len(m.Statuses) != len(other.Statuses) {
        return false
    }
    for i := range m.Statuses {
        if !m.Statuses[i].Equal(&other.Statuses[i]) {
            return false
        }
    }
    return true
}
