package wire

// Generic sequence helpers. A vector is a u32 element count followed by the
// elements; a fixed array is the elements alone. Element handling is supplied
// by the caller so nested composites reuse the same dispatch as standalone
// values.

// AppendFunc appends one element to dst and returns the grown slice.
type AppendFunc[T any] func(dst []byte, v T) []byte

// PutFunc writes one element at the front of b and returns the advanced slice.
type PutFunc[T any] func(b []byte, v T) []byte

// GetFunc reads one element from the front of b and returns the rest.
type GetFunc[T any] func(b []byte, v *T) []byte

// SizeFunc reports the encoded size of one element.
type SizeFunc[T any] func(v T) int

func AppendVec[T any](dst []byte, xs []T, fn AppendFunc[T]) []byte {
    dst = AppendUint32(dst, uint32(len(xs)))
    for i := range xs {
        dst = fn(dst, xs[i])
    }
    return dst
}

func PutVec[T any](b []byte, xs []T, fn PutFunc[T]) []byte {
    b = PutUint32(b, uint32(len(xs)))
    for i := range xs {
        b = fn(b, xs[i])
    }
    return b
}

func GetVec[T any](b []byte, xs *[]T, fn GetFunc[T]) []byte {
    var n uint32
    b = GetUint32(b, &n)
    out := make([]T, n)
    for i := range out {
        b = fn(b, &out[i])
    }
    *xs = out
    return b
}

// Fixed-array forms: no count prefix, the caller passes arr[:] and the element
// count is fixed by the array type.

func AppendArr[T any](dst []byte, xs []T, fn AppendFunc[T]) []byte {
    for i := range xs {
        dst = fn(dst, xs[i])
    }
    return dst
}

func PutArr[T any](b []byte, xs []T, fn PutFunc[T]) []byte {
    for i := range xs {
        b = fn(b, xs[i])
    }
    return b
}

func GetArr[T any](b []byte, xs []T, fn GetFunc[T]) []byte {
    for i := range xs {
        b = fn(b, &xs[i])
    }
    return b
}

func SizeVec[T any](xs []T, fn SizeFunc[T]) int {
    n := 4
    for i := range xs {
        n += fn(xs[i])
    }
    return n
}

func SizeArr[T any](xs []T, fn SizeFunc[T]) int {
    n := 0
    for i := range xs {
        n += fn(xs[i])
    }
    return n
}
