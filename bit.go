// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bit

// WriteFunc stores a bool into the bit a handle is bound to.
// The target storage location and bit offset are already baked into the
// function value at construction; the call carries only the new value.
type WriteFunc func(value bool)

// ReadFunc reports the current value of the bit a handle is bound to.
type ReadFunc func() bool

// Bit is a handle to a single bit of some storage location, exposed as a
// boolean-like value object. A handle holds an accessor pair — one
// [WriteFunc] and one [ReadFunc] — and nothing else; it never owns the
// storage the pair points at.
//
// The zero value is an unbound handle. Reading or writing an unbound
// handle panics (nil function call); a handle becomes bound via [New],
// one of the factory constructors ([Static], [StaticReadOnly], [Dynamic],
// [DynamicReadOnly]), or [Bit.SameAs].
//
// Plain struct assignment b = a copies a's accessor pair into b, so b
// aliases the same storage bit as a afterwards. That is rebinding, not
// value transfer; use [Bit.SameAs] to say it explicitly, or [Bit.CopyFrom]
// when the intent is to copy the boolean value between two differently
// bound handles.
type Bit struct {
	write WriteFunc
	read  ReadFunc
}

// New binds a handle to the given accessor pair.
// Both functions must be non-nil for the handle to be usable; New performs
// no validation.
func New(write WriteFunc, read ReadFunc) Bit {
	return Bit{write: write, read: read}
}

// Read reports the current value of the bound bit.
// The returned value is the point of the call: reading a hardware register
// through a handle may still have device-level effects (clear-on-read and
// the like), which this abstraction does not hide.
func (b Bit) Read() bool {
	return b.read()
}

// Write stores value into the bound bit and returns the handle, so a
// write can be chained with a following read.
func (b Bit) Write(value bool) Bit {
	b.write(value)
	return b
}

// Set writes true into the bound bit.
func (b Bit) Set() {
	b.write(true)
}

// Clear writes false into the bound bit.
func (b Bit) Clear() {
	b.write(false)
}

// SameAs replaces the receiver's accessor pair with other's.
// Afterwards both handles observe and mutate the same storage bit. No
// value is transferred; other and its storage are left untouched.
func (b *Bit) SameAs(other Bit) {
	b.write = other.write
	b.read = other.read
}

// CopyFrom reads other's current value and writes it through the
// receiver's own accessors. It copies the value, not the binding: the
// receiver stays bound to its own storage bit.
//
// The receiver must already be bound — CopyFrom writes through it at call
// time and panics on an unbound handle. This makes the operation depend on
// the destination's state as well as the source's, which can surprise;
// bind the destination first, always.
func (b Bit) CopyFrom(other Bit) {
	b.write(other.read())
}
