package actionmsgs

import (
    "mechlink/pkg/message"
    "mechlink/pkg/wire"
)

// CancelGoal return codes.
const (
    CancelAccepted      int8 = 0
    CancelRejected      int8 = 1
    CancelUnknownGoalID int8 = 2
    CancelGoalTerminal  int8 = 3
)

// CancelGoalRequest selects goals to cancel. A zero id with zero stamp cancels
// all goals; a zero id with a stamp cancels goals accepted at or before the
// stamp; a set id cancels that goal, optionally together with the stamp
// filter.
type CancelGoalRequest struct {
    Goal GoalInfo
}

func (m *CancelGoalRequest) Append(dst []byte) []byte { return m.Goal.Append(dst) }
func (m *CancelGoalRequest) Put(b []byte) []byte      { return m.Goal.Put(b) }
func (m *CancelGoalRequest) Scan(b []byte) []byte     { return m.Goal.Scan(b) }
func (m *CancelGoalRequest) Size() int                { return m.Goal.Size() }

func (m *CancelGoalRequest) TypeName() string {
    return "action_msgs::srv::CancelGoal::Request"
}

func (m *CancelGoalRequest) Equal(other *CancelGoalRequest) bool {
    return m.Goal.Equal(&other.Goal)
}

// CancelGoalResponse lists the goals that transitioned into canceling.
// Rejection is an ordinary response value, never an error.
type CancelGoalResponse struct {
    ReturnCode     int8
    GoalsCanceling []GoalInfo
}

func (m *CancelGoalResponse) Append(dst []byte) []byte {
    dst = wire.AppendInt8(dst, m.ReturnCode)
    return message.AppendMsgVec[GoalInfo, *GoalInfo](dst, m.GoalsCanceling)
}

func (m *CancelGoalResponse) Put(b []byte) []byte {
    b = wire.PutInt8(b, m.ReturnCode)
    return message.PutMsgVec[GoalInfo, *GoalInfo](b, m.GoalsCanceling)
}

func (m *CancelGoalResponse) Scan(b []byte) []byte {
    b = wire.GetInt8(b, &m.ReturnCode)
    return message.GetMsgVec[GoalInfo, *GoalInfo](b, &m.GoalsCanceling)
}

func (m *CancelGoalResponse) Size() int {
    return 1 + message.SizeMsgVec[GoalInfo, *GoalInfo](m.GoalsCanceling)
}

func (m *CancelGoalResponse) TypeName() string {
    return "action_msgs::srv::CancelGoal::Response"
}

func (m *CancelGoalResponse) Equal(other *CancelGoalResponse) bool {
    if m.ReturnCode != other.ReturnCode || len(m.GoalsCanceling) != len(other.GoalsCanceling) {
        return false
    }
    for i := range m.GoalsCanceling {
        if !m.GoalsCanceling[i].Equal(&other.GoalsCanceling[i]) {
            return false
        }
    }
    return true
}
