package action

import (
    "mechlink/pkg/message"
    "mechlink/pkg/service"
)

// Definition binds the goal, result and feedback payload types of one action
// under a transport-level instance name. It produces the service descriptors
// and channel names an external transport needs to route the protocol; the
// wire traffic itself is built from the generic messages in this package.
type Definition[G any, PG interface {
    *G
    message.Message
}, R any, PR interface {
    *R
    message.Message
}, F any, PF interface {
    *F
    message.Message
}] struct {
    // Name is the instance name, e.g. "arm/follow_trajectory". Channel names
    // derive from it.
    Name string
}

// TypeName returns the fully-qualified action type name, derived from the
// goal payload ("P::msg::XGoal" → "P::action::X").
func (d Definition[G, PG, R, PR, F, PF]) TypeName() string {
    var g G
    return actionNameFor(PG(&g).TypeName())
}

// Channels returns the five channel names for this instance.
func (d Definition[G, PG, R, PR, F, PF]) Channels() Channels { return ChannelsFor(d.Name) }

// SendGoalService describes the goal submission exchange.
func (d Definition[G, PG, R, PR, F, PF]) SendGoalService() service.Service {
    var g G
    return service.Service{
        Name:        srvNameFor(PG(&g).TypeName(), "Goal", "SendGoal"),
        NewRequest:  func() message.Message { return &SendGoalRequest[G, PG]{} },
        NewResponse: func() message.Message { return &SendGoalResponse[G, PG]{} },
    }
}

// GetResultService describes the result retrieval exchange.
func (d Definition[G, PG, R, PR, F, PF]) GetResultService() service.Service {
    var r R
    return service.Service{
        Name:        srvNameFor(PR(&r).TypeName(), "Result", "GetResult"),
        NewRequest:  func() message.Message { return &GetResultRequest[R, PR]{} },
        NewResponse: func() message.Message { return &GetResultResponse[R, PR]{} },
    }
}

// CancelGoalService describes the shared cancel exchange from action_msgs.
func (d Definition[G, PG, R, PR, F, PF]) CancelGoalService() service.Service {
    return CancelGoalService()
}
