package action

import (
    "mechlink/pkg/actionmsgs"
    "mechlink/pkg/message"
    "mechlink/pkg/wire"
)

// Wire messages of the goal protocol, generic over the user-defined payload
// types. G/R/F are the goal, result and feedback message types; the pointer
// parameter keeps the payload addressable through the message contract.

// SendGoalRequest submits a goal payload under a client-minted id.
type SendGoalRequest[G any, PG interface {
    *G
    message.Message
}] struct {
    Goal    actionmsgs.GoalInfo
    Payload G
}

func (m *SendGoalRequest[G, PG]) Append(dst []byte) []byte {
    dst = m.Goal.Append(dst)
    return PG(&m.Payload).Append(dst)
}

func (m *SendGoalRequest[G, PG]) Put(b []byte) []byte {
    b = m.Goal.Put(b)
    return PG(&m.Payload).Put(b)
}

func (m *SendGoalRequest[G, PG]) Scan(b []byte) []byte {
    b = m.Goal.Scan(b)
    return PG(&m.Payload).Scan(b)
}

func (m *SendGoalRequest[G, PG]) Size() int {
    return m.Goal.Size() + PG(&m.Payload).Size()
}

func (m *SendGoalRequest[G, PG]) TypeName() string {
    return srvNameFor(PG(&m.Payload).TypeName(), "Goal", "SendGoal") + "::Request"
}

// SendGoalResponse reports acceptance. Rejection (duplicate id, policy) is an
// ordinary response value.
type SendGoalResponse[G any, PG interface {
    *G
    message.Message
}] struct {
    Accepted bool
    Stamp    int64
}

func (m *SendGoalResponse[G, PG]) Append(dst []byte) []byte {
    return wire.AppendValues(dst, m.Accepted, m.Stamp)
}

func (m *SendGoalResponse[G, PG]) Put(b []byte) []byte {
    b = wire.PutBool(b, m.Accepted)
    return wire.PutInt64(b, m.Stamp)
}

func (m *SendGoalResponse[G, PG]) Scan(b []byte) []byte {
    return wire.ScanValues(b, &m.Accepted, &m.Stamp)
}

func (m *SendGoalResponse[G, PG]) Size() int { return 9 }

func (m *SendGoalResponse[G, PG]) TypeName() string {
    var g G
    return srvNameFor(PG(&g).TypeName(), "Goal", "SendGoal") + "::Response"
}

// GetResultRequest asks for the stored outcome of one goal.
type GetResultRequest[R any, PR interface {
    *R
    message.Message
}] struct {
    ID actionmsgs.GoalID
}

func (m *GetResultRequest[R, PR]) Append(dst []byte) []byte { return m.ID.Append(dst) }
func (m *GetResultRequest[R, PR]) Put(b []byte) []byte      { return m.ID.Put(b) }
func (m *GetResultRequest[R, PR]) Scan(b []byte) []byte     { return m.ID.Scan(b) }
func (m *GetResultRequest[R, PR]) Size() int                { return m.ID.Size() }

func (m *GetResultRequest[R, PR]) TypeName() string {
    var r R
    return srvNameFor(PR(&r).TypeName(), "Result", "GetResult") + "::Request"
}

// GetResultResponse carries the goal's status and, once terminal, its result
// payload. Before termination the payload is the zero value.
type GetResultResponse[R any, PR interface {
    *R
    message.Message
}] struct {
    Status  actionmsgs.Status
    Payload R
}

func (m *GetResultResponse[R, PR]) Append(dst []byte) []byte {
    dst = wire.AppendInt8(dst, int8(m.Status))
    return PR(&m.Payload).Append(dst)
}

func (m *GetResultResponse[R, PR]) Put(b []byte) []byte {
    b = wire.PutInt8(b, int8(m.Status))
    return PR(&m.Payload).Put(b)
}

func (m *GetResultResponse[R, PR]) Scan(b []byte) []byte {
    var s int8
    b = wire.GetInt8(b, &s)
    m.Status = actionmsgs.Status(s)
    return PR(&m.Payload).Scan(b)
}

func (m *GetResultResponse[R, PR]) Size() int {
    return 1 + PR(&m.Payload).Size()
}

func (m *GetResultResponse[R, PR]) TypeName() string {
    return srvNameFor(PR(&m.Payload).TypeName(), "Result", "GetResult") + "::Response"
}

// FeedbackMessage is one asynchronous feedback event for an active goal,
// pushed out-of-band from the request/response exchanges.
type FeedbackMessage[F any, PF interface {
    *F
    message.Message
}] struct {
    ID      actionmsgs.GoalID
    Payload F
}

func (m *FeedbackMessage[F, PF]) Append(dst []byte) []byte {
    dst = m.ID.Append(dst)
    return PF(&m.Payload).Append(dst)
}

func (m *FeedbackMessage[F, PF]) Put(b []byte) []byte {
    b = m.ID.Put(b)
    return PF(&m.Payload).Put(b)
}

func (m *FeedbackMessage[F, PF]) Scan(b []byte) []byte {
    b = m.ID.Scan(b)
    return PF(&m.Payload).Scan(b)
}

func (m *FeedbackMessage[F, PF]) Size() int {
    return m.ID.Size() + PF(&m.Payload).Size()
}

func (m *FeedbackMessage[F, PF]) TypeName() string {
    return msgNameFor(PF(&m.Payload).TypeName(), "Message")
}
