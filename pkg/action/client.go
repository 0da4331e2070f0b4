package action

import (
    "context"

    "mechlink/pkg/actionmsgs"
    "mechlink/pkg/message"
)

// Caller performs one service exchange: encoded request in, encoded response
// out. Correlation, retry and timeout live behind it, in the transport.
type Caller func(ctx context.Context, serviceName string, req []byte) ([]byte, error)

// Client is the submitting side of one action instance. It mints goal ids and
// speaks the three service exchanges through an external Caller.
type Client[G any, PG interface {
    *G
    message.Message
}, R any, PR interface {
    *R
    message.Message
}, F any, PF interface {
    *F
    message.Message
}] struct {
    Def  Definition[G, PG, R, PR, F, PF]
    Call Caller
}

// SendGoal submits goal under a fresh id and reports the server's decision.
func (c *Client[G, PG, R, PR, F, PF]) SendGoal(ctx context.Context, goal G) (actionmsgs.GoalInfo, bool, error) {
    id, err := actionmsgs.NewGoalID()
    if err != nil {
        return actionmsgs.GoalInfo{}, false, err
    }
    req := SendGoalRequest[G, PG]{Goal: actionmsgs.GoalInfo{ID: id}, Payload: goal}
    respB, err := c.Call(ctx, c.Def.SendGoalService().Name, message.Encode(&req))
    if err != nil {
        return actionmsgs.GoalInfo{}, false, err
    }
    var resp SendGoalResponse[G, PG]
    resp.Scan(respB)
    return actionmsgs.GoalInfo{ID: id, Stamp: resp.Stamp}, resp.Accepted, nil
}

// GetResult fetches the status and, once terminal, the result of id.
func (c *Client[G, PG, R, PR, F, PF]) GetResult(ctx context.Context, id actionmsgs.GoalID) (actionmsgs.Status, R, error) {
    req := GetResultRequest[R, PR]{ID: id}
    var resp GetResultResponse[R, PR]
    respB, err := c.Call(ctx, c.Def.GetResultService().Name, message.Encode(&req))
    if err != nil {
        return actionmsgs.StatusUnknown, resp.Payload, err
    }
    resp.Scan(respB)
    return resp.Status, resp.Payload, nil
}

// Cancel requests cancellation for the goals matched by req.
func (c *Client[G, PG, R, PR, F, PF]) Cancel(ctx context.Context, req actionmsgs.CancelGoalRequest) (actionmsgs.CancelGoalResponse, error) {
    var resp actionmsgs.CancelGoalResponse
    respB, err := c.Call(ctx, c.Def.CancelGoalService().Name, message.Encode(&req))
    if err != nil {
        return resp, err
    }
    resp.Scan(respB)
    return resp, nil
}
