package wire

import (
    "bytes"
    "encoding/binary"
    "testing"
)

func TestScalarRoundtrip(t *testing.T) {
    var buf []byte
    buf = AppendBool(buf, true)
    buf = AppendInt8(buf, -5)
    buf = AppendUint16(buf, 0xBEEF)
    buf = AppendInt32(buf, -123456)
    buf = AppendUint64(buf, 0x1122334455667788)
    buf = AppendFloat32(buf, 1.5)
    buf = AppendFloat64(buf, -2.25)

    if len(buf) != 1+1+2+4+8+4+8 { t.Fatalf("len = %d", len(buf)) }

    var (
        b   bool
        i8  int8
        u16 uint16
        i32 int32
        u64 uint64
        f32 float32
        f64 float64
    )
    rest := buf
    rest = GetBool(rest, &b)
    rest = GetInt8(rest, &i8)
    rest = GetUint16(rest, &u16)
    rest = GetInt32(rest, &i32)
    rest = GetUint64(rest, &u64)
    rest = GetFloat32(rest, &f32)
    rest = GetFloat64(rest, &f64)
    if len(rest) != 0 { t.Fatalf("leftover %d bytes", len(rest)) }
    if !b || i8 != -5 || u16 != 0xBEEF || i32 != -123456 || u64 != 0x1122334455667788 || f32 != 1.5 || f64 != -2.25 {
        t.Fatalf("roundtrip mismatch")
    }
}

func TestCursorPutMatchesAppend(t *testing.T) {
    appended := AppendString(AppendInt32(nil, 42), "cursor")
    cur := make([]byte, len(appended))
    rest := PutInt32(cur, 42)
    rest = PutString(rest, "cursor")
    if len(rest) != 0 { t.Fatalf("cursor not fully advanced: %d left", len(rest)) }
    if !bytes.Equal(cur, appended) { t.Fatalf("put/append divergence:\n%x\n%x", cur, appended) }
}

func TestStringLayout(t *testing.T) {
    buf := AppendString(nil, "go")
    if len(buf) != 6 { t.Fatalf("len = %d", len(buf)) }
    if binary.LittleEndian.Uint32(buf) != 2 { t.Fatalf("prefix = %d", binary.LittleEndian.Uint32(buf)) }
    if buf[4] != 'g' || buf[5] != 'o' { t.Fatalf("bytes = %q", buf[4:]) }

    var s string
    rest := GetString(buf, &s)
    if s != "go" || len(rest) != 0 { t.Fatalf("decode: %q, %d left", s, len(rest)) }
}

func TestWideStringPrefixCountsBytes(t *testing.T) {
    ws := WideString("ab")
    buf := AppendWideString(nil, ws)
    // prefix is a byte count: 2 runes * 4 bytes
    if binary.LittleEndian.Uint32(buf) != 8 { t.Fatalf("prefix = %d", binary.LittleEndian.Uint32(buf)) }
    if len(buf) != 4+8 { t.Fatalf("len = %d", len(buf)) }
    if SizeWideString(ws) != len(buf) { t.Fatalf("size = %d", SizeWideString(ws)) }

    var out WideString
    rest := GetWideString(buf, &out)
    if len(rest) != 0 || string(out) != "ab" { t.Fatalf("decode: %q", string(out)) }
}

func TestBoolVectorWireShape(t *testing.T) {
    buf := AppendVec(nil, []bool{true, false, true}, AppendBool)
    if len(buf) != 4+3 { t.Fatalf("len = %d, want one full byte per element", len(buf)) }
    if binary.LittleEndian.Uint32(buf) != 3 { t.Fatalf("count = %d", binary.LittleEndian.Uint32(buf)) }
    if buf[4] != 1 || buf[5] != 0 || buf[6] != 1 { t.Fatalf("entries = %v", buf[4:]) }
}

func TestVectorRoundtrip(t *testing.T) {
    in := []float32{1, -2.5, 3.25}
    buf := AppendVec(nil, in, AppendFloat32)
    if got := SizeVec(in, func(float32) int { return 4 }); got != len(buf) {
        t.Fatalf("size %d != encoded %d", got, len(buf))
    }
    var out []float32
    rest := GetVec(buf, &out, GetFloat32)
    if len(rest) != 0 { t.Fatalf("leftover %d", len(rest)) }
    if len(out) != len(in) { t.Fatalf("count %d", len(out)) }
    for i := range in {
        if in[i] != out[i] { t.Fatalf("elem %d: %v != %v", i, in[i], out[i]) }
    }
}

func TestFixedArrayHasNoPrefix(t *testing.T) {
    arr := [4]int32{10, 20, 30, 40}
    buf := AppendArr(nil, arr[:], AppendInt32)
    if len(buf) != 16 { t.Fatalf("len = %d", len(buf)) }

    var out [4]int32
    rest := GetArr(buf, out[:], GetInt32)
    if len(rest) != 0 || out != arr { t.Fatalf("decode: %v", out) }
}

func TestBatchValues(t *testing.T) {
    var (
        id     int32 = 7
        label        = "go"
        values       = []float32{1.0, 2.0}
    )
    buf := AppendValues(nil, id, label, values)
    if SizeValues(id, label, values) != len(buf) {
        t.Fatalf("size %d != encoded %d", SizeValues(id, label, values), len(buf))
    }

    var (
        id2     int32
        label2  string
        values2 []float32
    )
    rest := ScanValues(buf, &id2, &label2, &values2)
    if len(rest) != 0 { t.Fatalf("leftover %d", len(rest)) }
    if id2 != id || label2 != label || len(values2) != 2 || values2[0] != 1.0 || values2[1] != 2.0 {
        t.Fatalf("batch roundtrip mismatch")
    }
}

func TestBatchUnsupportedTypePanics(t *testing.T) {
    defer func() {
        if recover() == nil { t.Fatalf("expected panic") }
    }()
    AppendValues(nil, struct{ X int }{1})
}
