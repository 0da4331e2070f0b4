// Package message defines the contract every composite message type
// implements and the envelope used to multiplex already-encoded messages over
// a shared channel. Encoding is purely positional: fields are visited in
// declared order and the type name is never consulted by the codec.
package message

import (
    "fmt"

    "mechlink/pkg/wire"
)

// Message is the composite message contract. Append grows a caller-owned
// buffer; Put writes into preallocated memory and returns the position past
// the last written byte so sequential messages pack into one contiguous
// region; Scan is the mirror of Put. Size reports the exact byte count Append
// and Put produce. TypeName is a fixed fully-qualified name used only for
// diagnostics and routing by name.
type Message interface {
    Append(dst []byte) []byte
    Put(b []byte) []byte
    Scan(b []byte) []byte
    Size() int
    TypeName() string
}

// Encode allocates an exact-size buffer and writes m into it.
func Encode(m Message) []byte {
    buf := make([]byte, m.Size())
    rest := m.Put(buf)
    if len(rest) != 0 {
        panic(fmt.Sprintf("message: %s wrote %d bytes short of Size()", m.TypeName(), len(rest)))
    }
    return buf
}

// Decode populates m from the front of b and returns the remaining bytes.
// Like every cursor decode, it trusts b to be large enough.
func Decode(m Message, b []byte) []byte { return m.Scan(b) }

// Vector and fixed-array forms over message types, mirroring the scalar
// helpers in pkg/wire. P is the pointer type of the element so value slices
// stay addressable during decode.

func AppendMsgVec[T any, P interface {
    *T
    Message
}](dst []byte, xs []T) []byte {
    dst = wire.AppendUint32(dst, uint32(len(xs)))
    for i := range xs {
        dst = P(&xs[i]).Append(dst)
    }
    return dst
}

func PutMsgVec[T any, P interface {
    *T
    Message
}](b []byte, xs []T) []byte {
    b = wire.PutUint32(b, uint32(len(xs)))
    for i := range xs {
        b = P(&xs[i]).Put(b)
    }
    return b
}

func GetMsgVec[T any, P interface {
    *T
    Message
}](b []byte, xs *[]T) []byte {
    var n uint32
    b = wire.GetUint32(b, &n)
    out := make([]T, n)
    for i := range out {
        b = P(&out[i]).Scan(b)
    }
    *xs = out
    return b
}

func SizeMsgVec[T any, P interface {
    *T
    Message
}](xs []T) int {
    n := 4
    for i := range xs {
        n += P(&xs[i]).Size()
    }
    return n
}

func AppendMsgArr[T any, P interface {
    *T
    Message
}](dst []byte, xs []T) []byte {
    for i := range xs {
        dst = P(&xs[i]).Append(dst)
    }
    return dst
}

func GetMsgArr[T any, P interface {
    *T
    Message
}](b []byte, xs []T) []byte {
    for i := range xs {
        b = P(&xs[i]).Scan(b)
    }
    return b
}

func SizeMsgArr[T any, P interface {
    *T
    Message
}](xs []T) int {
    n := 0
    for i := range xs {
        n += P(&xs[i]).Size()
    }
    return n
}
