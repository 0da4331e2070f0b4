package transport

import (
    "encoding/binary"
    "errors"

    "mechlink/pkg/message"
)

// ErrMalformedFrame reports a frame whose internal lengths disagree with its
// byte count. This is the single bounds check of the receive path: past it,
// the positional decoders trust the buffer unconditionally.
var ErrMalformedFrame = errors.New("transport: malformed frame")

// DecodeEnvelope validates the envelope layout of one inbound frame
// ([title][id][payload], all lengths u32/i32 LE) and decodes it. Payload
// bytes are validated for presence only — their interpretation belongs to the
// schema of the routed message type.
func DecodeEnvelope(frame []byte) (*message.SerializedMessage, error) {
    off := 0
    // title
    if len(frame) < off+4 {
        return nil, ErrMalformedFrame
    }
    tlen := int(binary.LittleEndian.Uint32(frame[off:]))
    off += 4 + tlen
    // id
    if len(frame) < off+4 {
        return nil, ErrMalformedFrame
    }
    off += 4
    // payload
    if len(frame) < off+4 {
        return nil, ErrMalformedFrame
    }
    plen := int(binary.LittleEndian.Uint32(frame[off:]))
    off += 4 + plen
    if len(frame) < off {
        return nil, ErrMalformedFrame
    }

    env := new(message.SerializedMessage)
    env.Scan(frame)
    return env, nil
}
