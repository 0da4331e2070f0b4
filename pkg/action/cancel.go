package action

import (
    "mechlink/pkg/actionmsgs"
    "mechlink/pkg/message"
    "mechlink/pkg/service"
)

// CancelGoalService is shared by every action type.
func CancelGoalService() service.Service {
    return service.Service{
        Name:        "action_msgs::srv::CancelGoal",
        NewRequest:  func() message.Message { return &actionmsgs.CancelGoalRequest{} },
        NewResponse: func() message.Message { return &actionmsgs.CancelGoalResponse{} },
    }
}
