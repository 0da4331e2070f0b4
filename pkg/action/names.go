// Package action composes the goal/result/feedback services and push
// channels of the asynchronous goal protocol on top of the service and
// message contracts, and owns the goal lifecycle state machine.
package action

import "strings"

// Naming is mechanical, mirroring the generated type families: an action X in
// project P has goal message `P::msg::XGoal`, result `P::msg::XResult`,
// feedback `P::msg::XFeedback`, services `P::srv::XSendGoal` and
// `P::srv::XGetResult`, and the shared `action_msgs::srv::CancelGoal`.

// srvNameFor rewrites a payload message name into its service name:
// ("P::msg::XGoal", "Goal", "SendGoal") → "P::srv::XSendGoal".
func srvNameFor(payloadType, strip, suffix string) string {
    name := strings.Replace(payloadType, "::msg::", "::srv::", 1)
    name = strings.TrimSuffix(name, strip)
    return name + suffix
}

// msgNameFor appends a suffix to a payload message name:
// ("P::msg::XFeedback", "Message") → "P::msg::XFeedbackMessage".
func msgNameFor(payloadType, suffix string) string { return payloadType + suffix }

// actionNameFor rewrites a goal payload name into the action type name:
// ("P::msg::XGoal") → "P::action::X".
func actionNameFor(goalType string) string {
    name := strings.Replace(goalType, "::msg::", "::action::", 1)
    return strings.TrimSuffix(name, "Goal")
}

// Channels are owned by the transport; this layer only fixes their names.
type Channels struct {
    SendGoal   string
    GetResult  string
    CancelGoal string
    Feedback   string
    Status     string
}

// ChannelsFor returns the channel set for an action instance name (the
// transport-level name, e.g. "arm/follow_trajectory").
func ChannelsFor(actionName string) Channels {
    return Channels{
        SendGoal:   actionName + "/send_goal",
        GetResult:  actionName + "/get_result",
        CancelGoal: actionName + "/cancel_goal",
        Feedback:   actionName + "/feedback",
        Status:     actionName + "/status",
    }
}
