package action

import (
    "context"
    "errors"
    "sync"
    "time"

    "go.uber.org/zap"

    "mechlink/pkg/actionmsgs"
    "mechlink/pkg/goalstore"
    "mechlink/pkg/message"
    "mechlink/pkg/service"
)

// ErrBadTransition is returned when an executor drives a goal into a state
// the lifecycle does not allow from its current one.
var ErrBadTransition = errors.New("action: illegal status transition")

// ServerOptions tunes one action server instance.
type ServerOptions struct {
    // ResultTTL bounds how long a terminal result stays retrievable. Zero
    // keeps the default of 10 minutes; results are always retained at least
    // until first retrieval within the window.
    ResultTTL time.Duration

    // StatusPeriod is the broadcast interval of the status snapshot loop.
    StatusPeriod time.Duration

    // StoreMaxBytes caps the total bytes of retained results (0 = unlimited).
    StoreMaxBytes uint64
}

func (o ServerOptions) withDefaults() ServerOptions {
    if o.ResultTTL <= 0 {
        o.ResultTTL = 10 * time.Minute
    }
    if o.StatusPeriod <= 0 {
        o.StatusPeriod = time.Second
    }
    return o
}

type goalState struct {
    info     actionmsgs.GoalInfo
    status   actionmsgs.Status
    cancelCh chan struct{}
}

// Server tracks the goals of one action instance and implements the three
// service exchanges plus the two push channels. Goal ids are client-minted;
// reusing an id that is still tracked is rejected through the response, never
// through an error. Execution itself is the caller's executor: OnGoal runs in
// its own goroutine per accepted goal and drives the handle to a terminal
// state.
type Server[G any, PG interface {
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
    opts ServerOptions

    // OnGoal executes one accepted goal. Nil leaves goals in ACCEPTED until
    // canceled; tests drive the handle directly.
    OnGoal func(h *GoalHandle[G, PG, R, PR, F, PF], goal G)

    // Accept is the acceptance policy hook. Nil accepts every well-formed
    // goal with an unused id.
    Accept func(info actionmsgs.GoalInfo, goal *G) bool

    // PublishFeedback and PublishStatus push encoded messages on the feedback
    // and status channels. Nil publishers drop.
    PublishFeedback func(b []byte)
    PublishStatus   func(b []byte)

    mu      sync.Mutex
    goals   map[actionmsgs.GoalID]*goalState
    results *goalstore.Store
    nowFn   func() time.Time
}

func NewServer[G any, PG interface {
    *G
    message.Message
}, R any, PR interface {
    *R
    message.Message
}, F any, PF interface {
    *F
    message.Message
}](def Definition[G, PG, R, PR, F, PF], opts ServerOptions) *Server[G, PG, R, PR, F, PF] {
    opts = opts.withDefaults()
    return &Server[G, PG, R, PR, F, PF]{
        Def:     def,
        opts:    opts,
        goals:   make(map[actionmsgs.GoalID]*goalState),
        results: goalstore.New(goalstore.Options{MaxBytes: opts.StoreMaxBytes}),
        nowFn:   time.Now,
    }
}

// Close stops the result store. Pending goals are not transitioned.
func (s *Server[G, PG, R, PR, F, PF]) Close() { s.results.Close() }

// Register installs the three service handlers on mux.
func (s *Server[G, PG, R, PR, F, PF]) Register(mux *service.Mux) {
    mux.Handle(s.Def.SendGoalService(), service.Typed(s.HandleSendGoal))
    mux.Handle(s.Def.GetResultService(), service.Typed(s.HandleGetResult))
    mux.Handle(s.Def.CancelGoalService(), service.Typed(s.HandleCancelGoal))
}

// HandleSendGoal accepts or rejects one goal submission.
func (s *Server[G, PG, R, PR, F, PF]) HandleSendGoal(req *SendGoalRequest[G, PG], res *SendGoalResponse[G, PG]) {
    now := s.nowFn()
    res.Stamp = now.UnixNano()

    s.mu.Lock()
    if _, dup := s.goals[req.Goal.ID]; dup {
        s.mu.Unlock()
        zap.L().Warn("duplicate goal id rejected",
            zap.String("action", s.Def.Name), zap.String("goal", req.Goal.ID.String()))
        res.Accepted = false
        return
    }
    s.mu.Unlock()

    info := req.Goal
    if info.Stamp == 0 {
        info.Stamp = now.UnixNano()
    }
    if s.Accept != nil && !s.Accept(info, &req.Payload) {
        res.Accepted = false
        return
    }

    gs := &goalState{info: info, status: actionmsgs.StatusAccepted, cancelCh: make(chan struct{})}
    s.mu.Lock()
    if _, dup := s.goals[info.ID]; dup { // re-check under lock
        s.mu.Unlock()
        res.Accepted = false
        return
    }
    s.goals[info.ID] = gs
    s.mu.Unlock()

    res.Accepted = true
    zap.L().Debug("goal accepted", zap.String("action", s.Def.Name), zap.String("goal", info.ID.String()))

    if s.OnGoal != nil {
        h := &GoalHandle[G, PG, R, PR, F, PF]{srv: s, id: info.ID}
        goal := req.Payload
        go s.OnGoal(h, goal)
    }
}

// HandleGetResult reports the goal's status and, once terminal, the stored
// result. Repeated calls after termination return byte-identical payloads for
// as long as the retention window holds. An untracked id reads as UNKNOWN.
func (s *Server[G, PG, R, PR, F, PF]) HandleGetResult(req *GetResultRequest[R, PR], res *GetResultResponse[R, PR]) {
    s.mu.Lock()
    gs, ok := s.goals[req.ID]
    var status actionmsgs.Status
    if ok {
        status = gs.status
    }
    s.mu.Unlock()

    if !ok {
        res.Status = actionmsgs.StatusUnknown
        return
    }
    res.Status = status
    if !status.Terminal() {
        return
    }
    b, ok := s.results.Get(req.ID.String())
    if !ok {
        // retention window elapsed between lookup and fetch
        res.Status = actionmsgs.StatusUnknown
        return
    }
    PR(&res.Payload).Scan(b)
}

// HandleCancelGoal requests CANCELING for the matched goals. Matching follows
// the request semantics: zero id and zero stamp match every active goal; a
// stamp matches goals accepted at or before it; a set id matches that goal.
// Only a transition request: the executor decides when, or whether, the goal
// actually reaches CANCELED.
func (s *Server[G, PG, R, PR, F, PF]) HandleCancelGoal(req *actionmsgs.CancelGoalRequest, res *actionmsgs.CancelGoalResponse) {
    var zero actionmsgs.GoalID
    byID := req.Goal.ID != zero
    byStamp := req.Goal.Stamp != 0

    s.mu.Lock()
    defer s.mu.Unlock()

    if byID {
        gs, ok := s.goals[req.Goal.ID]
        if !ok {
            res.ReturnCode = actionmsgs.CancelUnknownGoalID
            return
        }
        if gs.status.Terminal() {
            res.ReturnCode = actionmsgs.CancelGoalTerminal
            return
        }
    }

    for id, gs := range s.goals {
        match := false
        if byID && id == req.Goal.ID {
            match = true
        }
        if byStamp && gs.info.Stamp <= req.Goal.Stamp {
            match = true
        }
        if !byID && !byStamp {
            match = true
        }
        if !match || !CanTransition(gs.status, actionmsgs.StatusCanceling) {
            continue
        }
        gs.status = actionmsgs.StatusCanceling
        close(gs.cancelCh)
        res.GoalsCanceling = append(res.GoalsCanceling, gs.info)
        zap.L().Debug("goal canceling", zap.String("action", s.Def.Name), zap.String("goal", id.String()))
    }
    res.ReturnCode = actionmsgs.CancelAccepted
}

// StatusSnapshot returns the status of every tracked goal.
func (s *Server[G, PG, R, PR, F, PF]) StatusSnapshot() actionmsgs.GoalStatusArray {
    s.mu.Lock()
    defer s.mu.Unlock()
    out := actionmsgs.GoalStatusArray{Statuses: make([]actionmsgs.GoalStatus, 0, len(s.goals))}
    for _, gs := range s.goals {
        out.Statuses = append(out.Statuses, actionmsgs.GoalStatus{Goal: gs.info, Status: gs.status})
    }
    return out
}

// RunStatusBroadcast pushes status snapshots on the status channel until ctx
// ends, pruning terminal goals whose retained results have expired.
func (s *Server[G, PG, R, PR, F, PF]) RunStatusBroadcast(ctx context.Context) {
    t := time.NewTicker(s.opts.StatusPeriod)
    defer t.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-t.C:
            s.prune()
            if s.PublishStatus != nil {
                snap := s.StatusSnapshot()
                s.PublishStatus(message.Encode(&snap))
            }
        }
    }
}

// prune drops terminal goals once their results fell out of the store.
func (s *Server[G, PG, R, PR, F, PF]) prune() {
    s.mu.Lock()
    defer s.mu.Unlock()
    for id, gs := range s.goals {
        if !gs.status.Terminal() {
            continue
        }
        if _, ok := s.results.Get(id.String()); !ok {
            delete(s.goals, id)
        }
    }
}

// transition validates and applies one executor-driven status change,
// storing the encoded result when the new state is terminal.
func (s *Server[G, PG, R, PR, F, PF]) transition(id actionmsgs.GoalID, to actionmsgs.Status, result *R) error {
    var encoded []byte
    if to.Terminal() && result != nil {
        encoded = message.Encode(PR(result))
    }

    s.mu.Lock()
    gs, ok := s.goals[id]
    if !ok {
        s.mu.Unlock()
        return ErrBadTransition
    }
    if !CanTransition(gs.status, to) {
        from := gs.status
        s.mu.Unlock()
        zap.L().Warn("illegal goal transition",
            zap.String("goal", id.String()),
            zap.String("from", from.String()), zap.String("to", to.String()))
        return ErrBadTransition
    }
    // Store before publishing: a reader that observes the terminal status
    // under s.mu must find the result already retrievable.
    if encoded != nil {
        s.results.Put(id.String(), encoded, s.opts.ResultTTL)
    }
    gs.status = to
    s.mu.Unlock()
    return nil
}

// GoalHandle is the executor's view of one accepted goal.
type GoalHandle[G any, PG interface {
    *G
    message.Message
}, R any, PR interface {
    *R
    message.Message
}, F any, PF interface {
    *F
    message.Message
}] struct {
    srv *Server[G, PG, R, PR, F, PF]
    id  actionmsgs.GoalID
}

func (h *GoalHandle[G, PG, R, PR, F, PF]) ID() actionmsgs.GoalID { return h.id }

// Executing marks the goal as running.
func (h *GoalHandle[G, PG, R, PR, F, PF]) Executing() error {
    return h.srv.transition(h.id, actionmsgs.StatusExecuting, nil)
}

// CancelRequested is closed when a CancelGoal matched this goal. Cancellation
// is cooperative: the executor may honor it with Canceled, or finish anyway.
func (h *GoalHandle[G, PG, R, PR, F, PF]) CancelRequested() <-chan struct{} {
    h.srv.mu.Lock()
    defer h.srv.mu.Unlock()
    if gs, ok := h.srv.goals[h.id]; ok {
        return gs.cancelCh
    }
    closed := make(chan struct{})
    close(closed)
    return closed
}

// Feedback pushes one feedback event for this goal.
func (h *GoalHandle[G, PG, R, PR, F, PF]) Feedback(f F) {
    if h.srv.PublishFeedback == nil {
        return
    }
    fm := FeedbackMessage[F, PF]{ID: h.id, Payload: f}
    h.srv.PublishFeedback(message.Encode(&fm))
}

// Succeed finishes the goal with a result.
func (h *GoalHandle[G, PG, R, PR, F, PF]) Succeed(r R) error {
    return h.srv.transition(h.id, actionmsgs.StatusSucceeded, &r)
}

// Abort finishes the goal as failed.
func (h *GoalHandle[G, PG, R, PR, F, PF]) Abort(r R) error {
    return h.srv.transition(h.id, actionmsgs.StatusAborted, &r)
}

// Canceled finishes the goal after a cancel request was honored.
func (h *GoalHandle[G, PG, R, PR, F, PF]) Canceled(r R) error {
    return h.srv.transition(h.id, actionmsgs.StatusCanceled, &r)
}
