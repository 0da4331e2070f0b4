package record

import (
    "bytes"
    "sync"
    "testing"

    "mechlink/pkg/codec"
    "mechlink/pkg/message"
)

func TestRecordAndReadAll(t *testing.T) {
    var buf bytes.Buffer
    r := NewRecorder(&buf, codec.JSON())

    want := []message.Information{
        {Timestamp: 1, Title: "telemetry/joints", DataType: "mechlink::msg::JointState", ID: 0},
        {Timestamp: 2, Title: "counter/count_up/send_goal", DataType: "mechlink::srv::CountUpSendGoal::Request", ID: 1},
    }
    for _, info := range want {
        if err := r.Record(info); err != nil {
            t.Fatal(err)
        }
    }

    got, err := ReadAll(&buf, codec.JSON())
    if err != nil {
        t.Fatal(err)
    }
    if len(got) != len(want) {
        t.Fatalf("read %d records, want %d", len(got), len(want))
    }
    for i := range want {
        if !got[i].Equal(&want[i]) {
            t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
        }
    }
}

func TestRecordEnvelopeWithCBOR(t *testing.T) {
    c, err := codec.CBOR()
    if err != nil {
        t.Fatal(err)
    }
    var buf bytes.Buffer
    r := NewRecorder(&buf, c)

    env := message.SerializedMessage{
        Title:     "arm/status",
        DataType:  "action_msgs::msg::GoalStatusArray",
        Timestamp: 42,
        ID:        0,
        Msg:       []byte{1, 2, 3},
    }
    if err := r.RecordEnvelope(&env); err != nil {
        t.Fatal(err)
    }

    got, err := ReadAll(&buf, c)
    if err != nil {
        t.Fatal(err)
    }
    if len(got) != 1 || got[0].Title != "arm/status" || got[0].Timestamp != 42 {
        t.Fatalf("records = %+v", got)
    }
}

func TestReadAllTruncatedSink(t *testing.T) {
    var buf bytes.Buffer
    r := NewRecorder(&buf, codec.JSON())
    _ = r.Record(message.Information{Timestamp: 1, Title: "a"})
    _ = r.Record(message.Information{Timestamp: 2, Title: "b"})

    trunc := buf.Bytes()[:buf.Len()-3]
    got, err := ReadAll(bytes.NewReader(trunc), codec.JSON())
    if err == nil {
        t.Fatal("truncated sink read without error")
    }
    if len(got) != 1 {
        t.Fatalf("recovered %d records before the tear, want 1", len(got))
    }
}

func TestConcurrentRecords(t *testing.T) {
    var buf bytes.Buffer
    r := NewRecorder(&buf, codec.JSON())

    var wg sync.WaitGroup
    for i := 0; i < 16; i++ {
        wg.Add(1)
        go func(n int) {
            defer wg.Done()
            _ = r.Record(message.Information{Timestamp: int64(n), Title: "t"})
        }(i)
    }
    wg.Wait()

    got, err := ReadAll(&buf, codec.JSON())
    if err != nil {
        t.Fatal(err)
    }
    if len(got) != 16 {
        t.Fatalf("read %d records, want 16", len(got))
    }
}
