// Package service pairs an independently codec-compliant request and response
// message under one named unit. The layer adds no wire framing of its own:
// naming exists so an external transport can route exchanges, and
// correlation, retry and timeout stay the transport's responsibility.
package service

import "mechlink/pkg/message"

// Service describes one request/response pair. Name is the fully-qualified
// service name (`<project>::srv::<Name>`).
type Service struct {
    Name        string
    NewRequest  func() message.Message
    NewResponse func() message.Message
}

// RequestType returns the request's fully-qualified type name.
func (s Service) RequestType() string { return s.Name + "::Request" }

// ResponseType returns the response's fully-qualified type name.
func (s Service) ResponseType() string { return s.Name + "::Response" }
