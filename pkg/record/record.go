// Package record captures diagnostic records for messages crossing a
// multiplexed channel. Records are self-describing (codec-encoded) because
// their readers are offline tools without the positional schema.
package record

import (
    "encoding/binary"
    "errors"
    "io"
    "sync"

    "mechlink/pkg/codec"
    "mechlink/pkg/message"
)

// Recorder appends length-prefixed (u32 LE) codec-encoded Information
// records to a sink. Safe for concurrent use.
type Recorder struct {
    mu sync.Mutex
    w  io.Writer
    c  codec.Codec
}

func NewRecorder(w io.Writer, c codec.Codec) *Recorder {
    return &Recorder{w: w, c: c}
}

// Record writes one diagnostic record.
func (r *Recorder) Record(info message.Information) error {
    b, err := r.c.Marshal(&info)
    if err != nil {
        return err
    }
    var lenbuf [4]byte
    binary.LittleEndian.PutUint32(lenbuf[:], uint32(len(b)))
    r.mu.Lock()
    defer r.mu.Unlock()
    if _, err := r.w.Write(lenbuf[:]); err != nil {
        return err
    }
    _, err = r.w.Write(b)
    return err
}

// RecordEnvelope captures the metadata of one envelope.
func (r *Recorder) RecordEnvelope(env *message.SerializedMessage) error {
    return r.Record(env.Info())
}

// ReadAll decodes every record from a sink written by a Recorder using the
// same codec.
func ReadAll(rd io.Reader, c codec.Codec) ([]message.Information, error) {
    var out []message.Information
    var lenbuf [4]byte
    for {
        if _, err := io.ReadFull(rd, lenbuf[:]); err != nil {
            if errors.Is(err, io.EOF) {
                return out, nil
            }
            return out, err
        }
        n := binary.LittleEndian.Uint32(lenbuf[:])
        buf := make([]byte, n)
        if _, err := io.ReadFull(rd, buf); err != nil {
            return out, err
        }
        var info message.Information
        if err := c.Unmarshal(buf, &info); err != nil {
            return out, err
        }
        out = append(out, info)
    }
}
