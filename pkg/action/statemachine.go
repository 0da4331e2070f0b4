package action

import "mechlink/pkg/actionmsgs"

// Goal lifecycle:
//
//   UNKNOWN   → ACCEPTED | REJECTED
//   ACCEPTED  → EXECUTING | CANCELING
//   EXECUTING → SUCCEEDED | ABORTED | CANCELING
//   CANCELING → CANCELED | ABORTED
//
// REJECTED, SUCCEEDED, CANCELED and ABORTED are terminal. Transitions are
// monotonic: a goal never re-enters a state it has left.

// CanTransition reports whether from → to is a legal lifecycle step.
func CanTransition(from, to actionmsgs.Status) bool {
    switch from {
    case actionmsgs.StatusUnknown:
        return to == actionmsgs.StatusAccepted || to == actionmsgs.StatusRejected
    case actionmsgs.StatusAccepted:
        return to == actionmsgs.StatusExecuting || to == actionmsgs.StatusCanceling
    case actionmsgs.StatusExecuting:
        return to == actionmsgs.StatusSucceeded || to == actionmsgs.StatusAborted ||
            to == actionmsgs.StatusCanceling
    case actionmsgs.StatusCanceling:
        return to == actionmsgs.StatusCanceled || to == actionmsgs.StatusAborted
    }
    return false
}
