package message_test

import (
    "bytes"
    "testing"

    "mechlink/pkg/message"
    "mechlink/pkg/wire"
)

// sample is a hand-written composite: one scalar, one string, one vector.
type sample struct {
    ID     int32
    Label  string
    Values []float32
}

func (m *sample) Append(dst []byte) []byte {
    return wire.AppendValues(dst, m.ID, m.Label, m.Values)
}

func (m *sample) Put(b []byte) []byte {
    b = wire.PutInt32(b, m.ID)
    b = wire.PutString(b, m.Label)
    return wire.PutVec(b, m.Values, wire.PutFloat32)
}

func (m *sample) Scan(b []byte) []byte {
    return wire.ScanValues(b, &m.ID, &m.Label, &m.Values)
}

func (m *sample) Size() int { return wire.SizeValues(m.ID, m.Label, m.Values) }

func (m *sample) TypeName() string { return "mechlink::msg::Sample" }

func TestEncodeExactLayout(t *testing.T) {
    s := sample{ID: 7, Label: "go", Values: []float32{1.0, 2.0}}
    if got := s.Size(); got != 22 {
        t.Fatalf("Size() = %d, want 22", got)
    }
    want := []byte{
        0x07, 0x00, 0x00, 0x00, // id
        0x02, 0x00, 0x00, 0x00, 'g', 'o', // label
        0x02, 0x00, 0x00, 0x00, // values count
        0x00, 0x00, 0x80, 0x3f, // 1.0
        0x00, 0x00, 0x00, 0x40, // 2.0
    }
    if got := message.Encode(&s); !bytes.Equal(got, want) {
        t.Fatalf("Encode = % x, want % x", got, want)
    }
    if got := s.Append(nil); !bytes.Equal(got, want) {
        t.Fatalf("Append = % x, want % x", got, want)
    }
}

func TestDecodeRoundTrip(t *testing.T) {
    in := sample{ID: -3, Label: "left_wheel", Values: []float32{0.5}}
    b := message.Encode(&in)
    var out sample
    rest := message.Decode(&out, b)
    if len(rest) != 0 {
        t.Fatalf("Decode left %d bytes", len(rest))
    }
    if out.ID != in.ID || out.Label != in.Label || len(out.Values) != 1 || out.Values[0] != 0.5 {
        t.Fatalf("round trip mismatch: %+v", out)
    }
}

func TestPutPacksContiguously(t *testing.T) {
    a := sample{ID: 1, Label: "a"}
    b := sample{ID: 2, Label: "b"}
    buf := make([]byte, a.Size()+b.Size())
    rest := a.Put(buf)
    rest = b.Put(rest)
    if len(rest) != 0 {
        t.Fatalf("Put left %d bytes", len(rest))
    }
    var ra, rb sample
    rest = ra.Scan(buf)
    rb.Scan(rest)
    if ra.ID != 1 || ra.Label != "a" || rb.ID != 2 || rb.Label != "b" {
        t.Fatalf("sequential scan mismatch: %+v %+v", ra, rb)
    }
}

func TestSerializedMessageWire(t *testing.T) {
    inner := sample{ID: 9, Label: "x"}
    env := message.SerializedMessage{
        Title:     "telemetry/joints",
        DataType:  inner.TypeName(),
        Timestamp: 1234,
        ID:        42,
        Msg:       message.Encode(&inner),
    }
    // Only title, id and payload travel.
    if want := 4 + len(env.Title) + 4 + 4 + len(env.Msg); env.Size() != want {
        t.Fatalf("Size() = %d, want %d", env.Size(), want)
    }
    b := message.Encode(&env)

    var out message.SerializedMessage
    out.Scan(b)
    if out.Title != env.Title || out.ID != 42 || !bytes.Equal(out.Msg, env.Msg) {
        t.Fatalf("envelope mismatch: %+v", out)
    }
    if out.DataType != "" || out.Timestamp != 0 {
        t.Fatalf("diagnostic fields must not travel: %+v", out)
    }

    var payload sample
    message.Decode(&payload, out.Msg)
    if payload.ID != 9 || payload.Label != "x" {
        t.Fatalf("nested payload mismatch: %+v", payload)
    }
}

func TestInformationRoundTrip(t *testing.T) {
    env := message.SerializedMessage{
        Title:     "telemetry/joints",
        DataType:  "mechlink::msg::Sample",
        Timestamp: 987654321,
        ID:        7,
    }
    info := env.Info()
    b := message.Encode(&info)
    var out message.Information
    out.Scan(b)
    if !out.Equal(&info) {
        t.Fatalf("information mismatch: %+v vs %+v", out, info)
    }
}

func TestRegistry(t *testing.T) {
    r := message.NewRegistry()
    r.Register(func() message.Message { return &sample{} })

    m := r.New("mechlink::msg::Sample")
    if m == nil {
        t.Fatal("known name returned nil")
    }
    if _, ok := m.(*sample); !ok {
        t.Fatalf("wrong type %T", m)
    }
    if r.New("mechlink::msg::Nope") != nil {
        t.Fatal("unknown name must return nil")
    }
    if names := r.Names(); len(names) != 1 || names[0] != "mechlink::msg::Sample" {
        t.Fatalf("Names() = %v", names)
    }
}

func TestMsgVecRoundTrip(t *testing.T) {
    xs := []sample{{ID: 1, Label: "a"}, {ID: 2, Label: "bb", Values: []float32{3}}}
    size := message.SizeMsgVec[sample, *sample](xs)
    b := message.AppendMsgVec[sample, *sample](nil, xs)
    if len(b) != size {
        t.Fatalf("encoded %d bytes, SizeMsgVec said %d", len(b), size)
    }
    var out []sample
    rest := message.GetMsgVec[sample, *sample](b, &out)
    if len(rest) != 0 || len(out) != 2 || out[1].Label != "bb" || out[1].Values[0] != 3 {
        t.Fatalf("vector mismatch: %+v", out)
    }
}
