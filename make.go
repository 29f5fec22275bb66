// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bit

// Option overrides one half of a factory-built handle's accessor pair,
// standing in for the original's defaulted accessor parameters. An
// override replaces the default wholesale; a fully custom pair is better
// built with [New] directly.
type Option func(*Bit)

// WithWriter substitutes w for the default write accessor.
func WithWriter(w WriteFunc) Option {
	return func(b *Bit) {
		b.write = w
	}
}

// WithReader substitutes r for the default read accessor.
func WithReader(r ReadFunc) Option {
	return func(b *Bit) {
		b.read = r
	}
}

// Static returns a handle bound to bit offset of the variable at reg.
// Panics when offset is not less than the bit width of T.
func Static[T Unsigned](reg *T, offset uint, opts ...Option) Bit {
	return apply(New(StaticWriter(reg, offset), StaticReader(reg, offset)), opts)
}

// StaticReadOnly returns a handle bound to bit offset of the variable at
// reg whose writes are silent no-ops. Panics when offset is not less than
// the bit width of T.
func StaticReadOnly[T Unsigned](reg *T, offset uint, opts ...Option) Bit {
	return apply(New(NopWrite, StaticReader(reg, offset)), opts)
}

// Dynamic returns a handle bound to bit offset of whichever variable
// *reg points at when the handle is used. The pointer variable itself
// must outlive the handle; its target may change freely between
// accesses. Panics when offset is not less than the bit width of T.
func Dynamic[T Unsigned](reg **T, offset uint, opts ...Option) Bit {
	return apply(New(DynamicWriter(reg, offset), DynamicReader(reg, offset)), opts)
}

// DynamicReadOnly is [Dynamic] with writes as silent no-ops.
// Panics when offset is not less than the bit width of T.
func DynamicReadOnly[T Unsigned](reg **T, offset uint, opts ...Option) Bit {
	return apply(New(NopWrite, DynamicReader(reg, offset)), opts)
}

func apply(b Bit, opts []Option) Bit {
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
