package transport

import (
    "testing"

    "mechlink/pkg/message"
)

func TestDecodeEnvelopeRoundTrip(t *testing.T) {
    env := message.SerializedMessage{
        Title: "counter/count_up/send_goal",
        ID:    7,
        Msg:   []byte{1, 2, 3},
    }
    out, err := DecodeEnvelope(message.Encode(&env))
    if err != nil {
        t.Fatal(err)
    }
    if out.Title != env.Title || out.ID != 7 || len(out.Msg) != 3 {
        t.Fatalf("decoded %+v", out)
    }
}

func TestDecodeEnvelopeMalformed(t *testing.T) {
    env := message.SerializedMessage{Title: "svc", ID: 1, Msg: []byte{9, 9, 9, 9}}
    good := message.Encode(&env)

    cases := map[string][]byte{
        "empty":             {},
        "short title len":   good[:2],
        "truncated title":   good[:5],
        "missing id":        good[:4+len(env.Title)+2],
        "missing payload":   good[:len(good)-5],
        "truncated payload": good[:len(good)-1],
    }
    for name, frame := range cases {
        if _, err := DecodeEnvelope(frame); err != ErrMalformedFrame {
            t.Errorf("%s: err = %v, want ErrMalformedFrame", name, err)
        }
    }
    // trailing garbage past the declared lengths is tolerated
    if _, err := DecodeEnvelope(append(append([]byte{}, good...), 0xff)); err != nil {
        t.Errorf("trailing bytes: err = %v", err)
    }
}

func TestDecodeEnvelopeOversizedTitleLength(t *testing.T) {
    frame := []byte{0xff, 0xff, 0xff, 0x7f, 'a', 'b'}
    if _, err := DecodeEnvelope(frame); err != ErrMalformedFrame {
        t.Fatalf("err = %v, want ErrMalformedFrame", err)
    }
}
