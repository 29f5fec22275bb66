// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bit

import (
	"fmt"
	"math/bits"
)

// Unsigned is the set of storage location value types.
// Inline type set instead of x/exp constraints, keeping the module
// dependency-free.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// masks returns the select and clear masks for offset in T.
// Panics when offset is not strictly less than T's width, the Go
// rendering of the original instantiation-time range check: generators
// validate once at construction so accessor calls stay check-free.
func masks[T Unsigned](offset uint) (maskBit, maskClear T) {
	if width := uint(bits.OnesCount64(uint64(^T(0)))); offset >= width {
		panic(fmt.Sprintf("bit: offset %d out of range for %d-bit storage", offset, width))
	}
	maskBit = T(1) << offset
	return maskBit, ^maskBit
}

// StaticWriter returns the default write accessor for a bit of the
// variable at reg. Each call performs exactly one load and one store of
// the storage word: the read-modify-write goes through a local, so
// storage with access side effects is touched once per kind of access
// regardless of value.
func StaticWriter[T Unsigned](reg *T, offset uint) WriteFunc {
	maskBit, maskClear := masks[T](offset)
	return func(value bool) {
		cleared := *reg & maskClear
		if value {
			cleared |= maskBit
		}
		*reg = cleared
	}
}

// StaticReader returns the default read accessor for a bit of the
// variable at reg. Each call performs exactly one load of the storage
// word.
func StaticReader[T Unsigned](reg *T, offset uint) ReadFunc {
	maskBit, _ := masks[T](offset)
	return func() bool {
		return *reg&maskBit != 0
	}
}

// DynamicWriter returns the default write accessor for a bit of the
// variable *reg points at. The pointer variable is dereferenced on every
// call, so its target may change between calls; the masked
// one-load-one-store discipline is the same as [StaticWriter]'s.
func DynamicWriter[T Unsigned](reg **T, offset uint) WriteFunc {
	maskBit, maskClear := masks[T](offset)
	return func(value bool) {
		cleared := **reg & maskClear
		if value {
			cleared |= maskBit
		}
		**reg = cleared
	}
}

// DynamicReader returns the default read accessor for a bit of the
// variable *reg points at, dereferencing the pointer variable on every
// call.
func DynamicReader[T Unsigned](reg **T, offset uint) ReadFunc {
	maskBit, _ := masks[T](offset)
	return func() bool {
		return **reg&maskBit != 0
	}
}

// NopWrite discards the value. It is the write accessor of read-only
// handles: writing a read-only bit is defined as a silent no-op so the
// one handle interface serves mutable and immutable storage alike.
func NopWrite(bool) {}
