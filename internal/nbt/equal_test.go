package nbt

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Tag
		want bool
	}{
		{name: "same_int", a: Int(1), b: Int(1), want: true},
		{name: "different_int", a: Int(1), b: Int(2)},
		{name: "kind_mismatch", a: Int(1), b: Long(1)},
		{name: "byte_array", a: ByteArray{1, 2}, b: ByteArray{1, 2}, want: true},
		{name: "array_length", a: IntArray{1, 2}, b: IntArray{1, 2, 3}},
		{name: "string", a: String("x"), b: String("x"), want: true},
		{name: "nan_double", a: Double(math.NaN()), b: Double(math.NaN()), want: true},
		{name: "nan_float", a: Float(math.NaN()), b: Float(math.NaN()), want: true},
		{name: "nan_and_number", a: Double(math.NaN()), b: Double(1)},
		{name: "nan_kind_mismatch", a: Float(math.NaN()), b: Double(math.NaN())},
		{name: "nil_pair", want: true},
		{name: "nil_and_tag", a: Int(1)},
		{
			name: "list_order_matters",
			a:    NewList(Int(1), Int(2)),
			b:    NewList(Int(2), Int(1)),
		},
		{
			name: "compound_order_ignored",
			a:    NewCompound().Set("a", Int(1)).Set("b", Int(2)),
			b:    NewCompound().Set("b", Int(2)).Set("a", Int(1)),
			want: true,
		},
		{
			name: "compound_extra_key",
			a:    NewCompound().Set("a", Int(1)),
			b:    NewCompound().Set("a", Int(1)).Set("b", Int(2)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestArrayIndexBoxes(t *testing.T) {
	t.Parallel()

	if got := (ByteArray{7}).Index(0); got != Byte(7) {
		t.Errorf("ByteArray.Index = %#v, want Byte(7)", got)
	}
	if got := (IntArray{7}).Index(0); got != Int(7) {
		t.Errorf("IntArray.Index = %#v, want Int(7)", got)
	}
	if got := (LongArray{7}).Index(0); got != Long(7) {
		t.Errorf("LongArray.Index = %#v, want Long(7)", got)
	}

	var n int
	for range (LongArray{1, 2, 3}).All() {
		n++
	}
	if n != 3 {
		t.Errorf("LongArray.All yielded %d tags, want 3", n)
	}
}

func TestCompoundSetKeepsPosition(t *testing.T) {
	t.Parallel()

	c := NewCompound().Set("a", Int(1)).Set("b", Int(2)).Set("a", Int(3))
	names := c.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("Names() = %v, want [a b]", names)
	}
	if got, _ := c.Get("a"); got != Int(3) {
		t.Errorf("Get(a) = %v, want 3", got)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if KindCompound.String() != "compound" {
		t.Errorf("KindCompound.String() = %q", KindCompound.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Kind(99).String() = %q", Kind(99).String())
	}
	if !KindIntArray.IsArray() || KindList.IsArray() {
		t.Error("IsArray classification wrong")
	}
}
