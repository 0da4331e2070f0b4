// Package wire implements the primitive serialization algebra: append-form
// encoders over a growable buffer and cursor-form encoders/decoders over
// caller-owned memory. Every composite message type builds its encode/decode/
// size out of these functions, visiting its fields in declared order.
//
// Layout rules:
//   - fixed-width scalars: little-endian, no padding
//   - strings: u32 byte count, then raw bytes (no terminator)
//   - wide strings: u32 BYTE count (4 per rune), then raw runes
//   - vectors: u32 element count, then elements encoded recursively
//   - vector of bool: one full byte per element, never bit-packed
//   - fixed arrays: no prefix, exactly N elements
//
// Cursor-form decode performs no bounds checking: reading past the end of the
// supplied slice is a contract violation and panics. The single length check
// belongs at the transport ingress, not here.
package wire

import (
    "encoding/binary"
    "math"
)

// WideString is a wide-character string. Its wire length prefix counts bytes
// (4 per rune), unlike the narrow string prefix which counts bytes directly.
type WideString []rune

// ---- append form: grow dst and return it ----

func AppendBool(dst []byte, v bool) []byte {
    if v {
        return append(dst, 1)
    }
    return append(dst, 0)
}

func AppendUint8(dst []byte, v uint8) []byte { return append(dst, v) }
func AppendInt8(dst []byte, v int8) []byte   { return append(dst, byte(v)) }

func AppendUint16(dst []byte, v uint16) []byte { return binary.LittleEndian.AppendUint16(dst, v) }
func AppendInt16(dst []byte, v int16) []byte   { return binary.LittleEndian.AppendUint16(dst, uint16(v)) }

func AppendUint32(dst []byte, v uint32) []byte { return binary.LittleEndian.AppendUint32(dst, v) }
func AppendInt32(dst []byte, v int32) []byte   { return binary.LittleEndian.AppendUint32(dst, uint32(v)) }

func AppendUint64(dst []byte, v uint64) []byte { return binary.LittleEndian.AppendUint64(dst, v) }
func AppendInt64(dst []byte, v int64) []byte   { return binary.LittleEndian.AppendUint64(dst, uint64(v)) }

func AppendFloat32(dst []byte, v float32) []byte {
    return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
}

func AppendFloat64(dst []byte, v float64) []byte {
    return binary.LittleEndian.AppendUint64(dst, math.Float64bits(v))
}

func AppendString(dst []byte, v string) []byte {
    dst = AppendUint32(dst, uint32(len(v)))
    return append(dst, v...)
}

func AppendWideString(dst []byte, v WideString) []byte {
    dst = AppendUint32(dst, uint32(len(v)*4))
    for _, r := range v {
        dst = AppendUint32(dst, uint32(r))
    }
    return dst
}

// AppendBytes writes a u32 byte count followed by raw bytes. Shares the
// vector layout for the common []byte payload case.
func AppendBytes(dst []byte, v []byte) []byte {
    dst = AppendUint32(dst, uint32(len(v)))
    return append(dst, v...)
}

// ---- size ----

func SizeString(v string) int         { return 4 + len(v) }
func SizeWideString(v WideString) int { return 4 + 4*len(v) }
func SizeBytes(v []byte) int          { return 4 + len(v) }
