// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bit treats a single bit of an integer variable as a standalone
// boolean object.
//
// The core type [Bit] is a handle holding an accessor pair — one
// [WriteFunc], one [ReadFunc] — bound at construction to one bit of one
// storage location. Calling code uses the handle as a boolean-like value
// (read, write, set, clear) while every access compiles down to a direct
// masked load/store of the underlying word. The intended use is
// bare-metal style register and flag manipulation, where the storage is a
// memory-mapped register or a packed flag word and the bit's identity is
// fixed at build time.
//
// # Design Philosophy
//
// bit provides:
//   - A minimal value-object interface over one bit of external storage
//   - Monomorphized generic accessor generators: storage type and bit
//     offset are baked in at construction, so strategy selection costs
//     nothing at the call site
//   - Allocation-free accesses (constructing a handle allocates its two
//     closures; using it never allocates)
//
// # Binding Model
//
// A handle is bound to storage in one of two shapes:
//
//   - Static: the storage is a named variable whose address is fixed.
//     [Static] and [StaticReadOnly] bind to a *T.
//   - Dynamic: the storage is reached through a pointer variable whose
//     own address is fixed but whose target may change at runtime.
//     [Dynamic] and [DynamicReadOnly] bind to a **T and dereference it on
//     every access, so retargeting the pointer moves the handle's effect
//     to the new word.
//
// Each shape has a read-only variant whose write accessor is [NopWrite]:
// writing a read-only bit is a defined silent no-op, kept so one handle
// interface serves mutable and immutable storage uniformly.
//
// The four constructors accept [WithWriter] and [WithReader] overrides
// for substituting a custom accessor — extra side effects, atomic
// access, platform-specific I/O — while keeping the same handle
// interface. [New] builds a handle from a fully custom pair.
//
// # Value vs Binding
//
// Two handles can relate in two different ways, and the API forces the
// caller to say which one is meant:
//
//   - [Bit.SameAs] rebinds: the receiver adopts the other handle's
//     accessor pair and aliases the same storage bit from then on.
//   - [Bit.CopyFrom] copies the value: the other handle's current bool is
//     written through the receiver's own accessors. The receiver must
//     already be bound, so this operation depends on destination state —
//     see the method documentation.
//
// Plain struct assignment duplicates the accessor pair (a rebind in
// effect); there is deliberately no operation that "assigns" one handle
// to another, since that phrasing hides which of the two meanings is
// wanted.
//
// # Errors and Contracts
//
// There is no runtime error channel. Contract violations are caught as
// early as the language allows:
//
//   - An out-of-range bit offset (offset ≥ storage width) panics at
//     generator construction, never at access time.
//   - Using an unbound (zero value) handle panics on the nil accessor.
//
// Accessor calls themselves perform no checks and complete in bounded
// constant time.
//
// # Hardware Registers
//
// Go has no volatile qualifier. The default generators keep the access
// count predictable instead: a write performs exactly one load and one
// store of the storage word (the read-modify-write goes through a
// local), and a read performs exactly one load. Reads are not hidden —
// a register with clear-on-read semantics is still cleared by
// [Bit.Read]. Storage that needs a stronger access discipline than plain
// Go loads and stores should be bound through custom accessors.
//
// # Concurrency
//
// None is provided. The default write is a non-atomic read-modify-write:
// concurrent writers to bits of the same word can corrupt neighboring
// bits. Callers needing concurrent access supply synchronizing accessors
// via the constructor overrides, for example:
//
//	var flags atomic.Uint32
//	b := bit.New(
//	    func(v bool) {
//	        if v {
//	            flags.Or(1 << 3)
//	        } else {
//	            flags.And(^uint32(1 << 3))
//	        }
//	    },
//	    func() bool { return flags.Load()&(1<<3) != 0 },
//	)
//
// # Example
//
//	var portA uint8
//
//	led := bit.Static(&portA, 3)
//	led.Set()         // portA == 0b0000_1000
//	on := led.Read()  // true
//	led.Clear()       // portA == 0b0000_0000
package bit
