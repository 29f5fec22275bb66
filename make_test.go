// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bit_test

import (
	"testing"

	"code.hybscloud.com/bit"
)

func TestStaticDefaults(t *testing.T) {
	var store uint8
	b := bit.Static(&store, 3)

	b.Write(true)
	if store != 0b0000_1000 {
		t.Fatalf("store = %#08b, want %#08b", store, 0b0000_1000)
	}
	if !b.Read() {
		t.Fatal("Read() = false, want true")
	}

	b.Write(false)
	if store != 0 {
		t.Fatalf("store = %#08b, want 0", store)
	}
}

func TestStaticReadOnlyWriteIsNoop(t *testing.T) {
	var store uint8 = 0b0101_0101
	set := bit.StaticReadOnly(&store, 0)
	clr := bit.StaticReadOnly(&store, 1)

	// Any number of writes leaves the observable value untouched.
	set.Clear()
	set.Write(false).Write(false)
	clr.Set()
	clr.Write(true)

	if store != 0b0101_0101 {
		t.Fatalf("store = %#08b, want unchanged", store)
	}
	if !set.Read() {
		t.Fatal("bit 0 reads false, want the initial true")
	}
	if clr.Read() {
		t.Fatal("bit 1 reads true, want the initial false")
	}
}

func TestDynamicFactory(t *testing.T) {
	var x, y uint32
	reg := &x

	b := bit.Dynamic(&reg, 20)
	b.Set()
	if x != 1<<20 {
		t.Fatalf("x = %#x, want bit 20 set", x)
	}

	reg = &y
	b.Set()
	if y != 1<<20 {
		t.Fatalf("y = %#x, want bit 20 set", y)
	}
	if x != 1<<20 {
		t.Fatalf("x = %#x, want untouched after retarget", x)
	}
}

func TestDynamicReadOnly(t *testing.T) {
	var x uint8 = 1 << 2
	reg := &x

	b := bit.DynamicReadOnly(&reg, 2)
	b.Clear()
	if x != 1<<2 {
		t.Fatalf("x = %#08b, want unchanged by read-only write", x)
	}
	if !b.Read() {
		t.Fatal("Read() = false, want true")
	}
}

func TestWithWriterOverride(t *testing.T) {
	var store uint8
	var log []bool

	b := bit.Static(&store, 0, bit.WithWriter(func(v bool) {
		log = append(log, v)
	}))

	b.Set()
	b.Write(false)
	b.Clear()

	if len(log) != 3 || !log[0] || log[1] || log[2] {
		t.Fatalf("override writer saw %v, want [true false false]", log)
	}
	if store != 0 {
		t.Fatalf("store = %#08b, want untouched by overridden writes", store)
	}
}

func TestWithReaderOverride(t *testing.T) {
	var store uint8
	b := bit.Static(&store, 0, bit.WithReader(func() bool { return true }))

	if !b.Read() {
		t.Fatal("overridden reader ignored")
	}

	// The default writer is still in place.
	b.Set()
	if store != 1 {
		t.Fatalf("store = %#08b, want bit 0 set", store)
	}
}

func TestWithBothOverrides(t *testing.T) {
	var backing bool
	var store uint8

	b := bit.Static(&store, 4,
		bit.WithWriter(func(v bool) { backing = v }),
		bit.WithReader(func() bool { return backing }),
	)

	b.Set()
	if !b.Read() {
		t.Fatal("round trip through overridden pair failed")
	}
	if store != 0 {
		t.Fatalf("store = %#08b, want untouched", store)
	}
}

func TestFactoryOffsetPanics(t *testing.T) {
	var v uint16
	reg := &v

	cases := []struct {
		name  string
		build func()
	}{
		{"Static", func() { bit.Static(&v, 16) }},
		{"StaticReadOnly", func() { bit.StaticReadOnly(&v, 16) }},
		{"Dynamic", func() { bit.Dynamic(&reg, 16) }},
		{"DynamicReadOnly", func() { bit.DynamicReadOnly(&reg, 16) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected out-of-range panic")
				}
			}()
			tc.build()
		})
	}
}
