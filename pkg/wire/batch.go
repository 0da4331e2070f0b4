package wire

import "fmt"

// Batch forms. A composite type can hand its fields to one call, front to
// back, instead of chaining per-field encoders. Dispatch is a type switch over
// the supported shapes; an unsupported shape is a programming error and
// panics, matching the compile-time failure of a generated type whose field
// list drifted from the codec.

// Packable is a value that knows how to append and size itself; every
// composite message satisfies it.
type Packable interface {
    Append(dst []byte) []byte
    Size() int
}

// Scannable is a value that knows how to decode itself from a cursor.
type Scannable interface {
    Scan(b []byte) []byte
}

// AppendValues encodes vals in order into dst.
func AppendValues(dst []byte, vals ...any) []byte {
    for _, v := range vals {
        dst = appendValue(dst, v)
    }
    return dst
}

// ScanValues decodes into the pointed-to dsts in order and returns the rest.
func ScanValues(b []byte, dsts ...any) []byte {
    for _, v := range dsts {
        b = scanValue(b, v)
    }
    return b
}

// SizeValues sums the encoded sizes of vals.
func SizeValues(vals ...any) int {
    n := 0
    for _, v := range vals {
        n += sizeValue(v)
    }
    return n
}

func appendValue(dst []byte, v any) []byte {
    switch x := v.(type) {
    case bool:
        return AppendBool(dst, x)
    case uint8:
        return AppendUint8(dst, x)
    case int8:
        return AppendInt8(dst, x)
    case uint16:
        return AppendUint16(dst, x)
    case int16:
        return AppendInt16(dst, x)
    case uint32:
        return AppendUint32(dst, x)
    case int32:
        return AppendInt32(dst, x)
    case uint64:
        return AppendUint64(dst, x)
    case int64:
        return AppendInt64(dst, x)
    case float32:
        return AppendFloat32(dst, x)
    case float64:
        return AppendFloat64(dst, x)
    case string:
        return AppendString(dst, x)
    case WideString:
        return AppendWideString(dst, x)
    case []byte:
        return AppendBytes(dst, x)
    case []bool:
        return AppendVec(dst, x, AppendBool)
    case []int16:
        return AppendVec(dst, x, AppendInt16)
    case []uint16:
        return AppendVec(dst, x, AppendUint16)
    case []int32:
        return AppendVec(dst, x, AppendInt32)
    case []uint32:
        return AppendVec(dst, x, AppendUint32)
    case []int64:
        return AppendVec(dst, x, AppendInt64)
    case []uint64:
        return AppendVec(dst, x, AppendUint64)
    case []float32:
        return AppendVec(dst, x, AppendFloat32)
    case []float64:
        return AppendVec(dst, x, AppendFloat64)
    case []string:
        return AppendVec(dst, x, AppendString)
    case Packable:
        return x.Append(dst)
    }
    panic(fmt.Sprintf("wire: unsupported value type %T", v))
}

func scanValue(b []byte, v any) []byte {
    switch x := v.(type) {
    case *bool:
        return GetBool(b, x)
    case *uint8:
        return GetUint8(b, x)
    case *int8:
        return GetInt8(b, x)
    case *uint16:
        return GetUint16(b, x)
    case *int16:
        return GetInt16(b, x)
    case *uint32:
        return GetUint32(b, x)
    case *int32:
        return GetInt32(b, x)
    case *uint64:
        return GetUint64(b, x)
    case *int64:
        return GetInt64(b, x)
    case *float32:
        return GetFloat32(b, x)
    case *float64:
        return GetFloat64(b, x)
    case *string:
        return GetString(b, x)
    case *WideString:
        return GetWideString(b, x)
    case *[]byte:
        return GetBytes(b, x)
    case *[]bool:
        return GetVec(b, x, GetBool)
    case *[]int16:
        return GetVec(b, x, GetInt16)
    case *[]uint16:
        return GetVec(b, x, GetUint16)
    case *[]int32:
        return GetVec(b, x, GetInt32)
    case *[]uint32:
        return GetVec(b, x, GetUint32)
    case *[]int64:
        return GetVec(b, x, GetInt64)
    case *[]uint64:
        return GetVec(b, x, GetUint64)
    case *[]float32:
        return GetVec(b, x, GetFloat32)
    case *[]float64:
        return GetVec(b, x, GetFloat64)
    case *[]string:
        return GetVec(b, x, GetString)
    case Scannable:
        return x.Scan(b)
    }
    panic(fmt.Sprintf("wire: unsupported scan target %T", v))
}

func sizeValue(v any) int {
    switch x := v.(type) {
    case bool, uint8, int8:
        return 1
    case uint16, int16:
        return 2
    case uint32, int32, float32:
        return 4
    case uint64, int64, float64:
        return 8
    case string:
        return SizeString(x)
    case WideString:
        return SizeWideString(x)
    case []byte:
        return SizeBytes(x)
    case []bool:
        return 4 + len(x)
    case []int16:
        return 4 + 2*len(x)
    case []uint16:
        return 4 + 2*len(x)
    case []int32:
        return 4 + 4*len(x)
    case []uint32:
        return 4 + 4*len(x)
    case []float32:
        return 4 + 4*len(x)
    case []int64:
        return 4 + 8*len(x)
    case []uint64:
        return 4 + 8*len(x)
    case []float64:
        return 4 + 8*len(x)
    case []string:
        return SizeVec(x, SizeString)
    case Packable:
        return x.Size()
    }
    panic(fmt.Sprintf("wire: unsupported value type %T", v))
}
