package wire

import (
    "encoding/binary"
    "math"
)

// Cursor form. Put* writes at the front of b and returns the slice past the
// written bytes; Get* reads at the front of b into the out parameter and
// returns the slice past the consumed bytes. The caller guarantees b is large
// enough; violations panic on the slice bound.

func PutBool(b []byte, v bool) []byte {
    if v {
        b[0] = 1
    } else {
        b[0] = 0
    }
    return b[1:]
}

func PutUint8(b []byte, v uint8) []byte { b[0] = v; return b[1:] }
func PutInt8(b []byte, v int8) []byte   { b[0] = byte(v); return b[1:] }

func PutUint16(b []byte, v uint16) []byte { binary.LittleEndian.PutUint16(b, v); return b[2:] }
func PutInt16(b []byte, v int16) []byte   { return PutUint16(b, uint16(v)) }

func PutUint32(b []byte, v uint32) []byte { binary.LittleEndian.PutUint32(b, v); return b[4:] }
func PutInt32(b []byte, v int32) []byte   { return PutUint32(b, uint32(v)) }

func PutUint64(b []byte, v uint64) []byte { binary.LittleEndian.PutUint64(b, v); return b[8:] }
func PutInt64(b []byte, v int64) []byte   { return PutUint64(b, uint64(v)) }

func PutFloat32(b []byte, v float32) []byte { return PutUint32(b, math.Float32bits(v)) }
func PutFloat64(b []byte, v float64) []byte { return PutUint64(b, math.Float64bits(v)) }

func PutString(b []byte, v string) []byte {
    b = PutUint32(b, uint32(len(v)))
    copy(b, v)
    return b[len(v):]
}

func PutWideString(b []byte, v WideString) []byte {
    b = PutUint32(b, uint32(len(v)*4))
    for _, r := range v {
        b = PutUint32(b, uint32(r))
    }
    return b
}

func PutBytes(b []byte, v []byte) []byte {
    b = PutUint32(b, uint32(len(v)))
    copy(b, v)
    return b[len(v):]
}

func GetBool(b []byte, v *bool) []byte { *v = b[0] != 0; return b[1:] }

func GetUint8(b []byte, v *uint8) []byte { *v = b[0]; return b[1:] }
func GetInt8(b []byte, v *int8) []byte   { *v = int8(b[0]); return b[1:] }

func GetUint16(b []byte, v *uint16) []byte { *v = binary.LittleEndian.Uint16(b); return b[2:] }
func GetInt16(b []byte, v *int16) []byte   { *v = int16(binary.LittleEndian.Uint16(b)); return b[2:] }

func GetUint32(b []byte, v *uint32) []byte { *v = binary.LittleEndian.Uint32(b); return b[4:] }
func GetInt32(b []byte, v *int32) []byte   { *v = int32(binary.LittleEndian.Uint32(b)); return b[4:] }

func GetUint64(b []byte, v *uint64) []byte { *v = binary.LittleEndian.Uint64(b); return b[8:] }
func GetInt64(b []byte, v *int64) []byte   { *v = int64(binary.LittleEndian.Uint64(b)); return b[8:] }

func GetFloat32(b []byte, v *float32) []byte {
    *v = math.Float32frombits(binary.LittleEndian.Uint32(b))
    return b[4:]
}

func GetFloat64(b []byte, v *float64) []byte {
    *v = math.Float64frombits(binary.LittleEndian.Uint64(b))
    return b[8:]
}

func GetString(b []byte, v *string) []byte {
    var n uint32
    b = GetUint32(b, &n)
    *v = string(b[:n])
    return b[n:]
}

func GetWideString(b []byte, v *WideString) []byte {
    var nbytes uint32
    b = GetUint32(b, &nbytes)
    count := int(nbytes / 4)
    out := make(WideString, count)
    for i := 0; i < count; i++ {
        var r uint32
        b = GetUint32(b, &r)
        out[i] = rune(r)
    }
    *v = out
    return b
}

func GetBytes(b []byte, v *[]byte) []byte {
    var n uint32
    b = GetUint32(b, &n)
    *v = append((*v)[:0], b[:n]...)
    return b[n:]
}
