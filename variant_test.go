package genopack

import (
	"errors"
	"testing"
)

func TestPackVariantKnownWord(t *testing.T) {
	// The layout is [chromosome:12][position:28][ref:2][alt:2][flags:20],
	// so this record occupies exactly the documented bit positions.
	v := Variant{Chromosome: 2, Position: 12345, Ref: BaseA, Alt: BaseT}
	w, err := PackVariant(v)
	if err != nil {
		t.Fatal(err)
	}

	want := uint64(2)<<52 | uint64(12345)<<24 | uint64(1)<<20
	if uint64(w) != want {
		t.Errorf("Got %#x, expected %#x", uint64(w), want)
	}

	if got := w.Unpack(); got != v {
		t.Errorf("Got %+v, expected %+v", got, v)
	}
}

func TestVariantRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		v    Variant
	}{
		{"zero", Variant{}},
		{"typical", Variant{Chromosome: 7, Position: 55174262, Ref: BaseG, Alt: BaseC, Flags: 0x1f}},
		{"x chromosome", Variant{Chromosome: 23, Position: 1, Ref: BaseT, Alt: BaseA}},
		{"all maxima", Variant{Chromosome: MaxChromosome, Position: MaxPosition, Ref: BaseC, Alt: BaseC, Flags: MaxFlags}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := PackVariant(tc.v)
			if err != nil {
				t.Fatal(err)
			}
			if got := w.Unpack(); got != tc.v {
				t.Errorf("Got %+v, expected %+v", got, tc.v)
			}
		})
	}
}

func TestPackedVariantAccessors(t *testing.T) {
	v := Variant{Chromosome: 22, Position: 50807, Ref: BaseC, Alt: BaseG, Flags: 0xabcde}
	w, err := PackVariant(v)
	if err != nil {
		t.Fatal(err)
	}

	if got := w.Chromosome(); got != v.Chromosome {
		t.Errorf("Chromosome() = %d, expected %d", got, v.Chromosome)
	}
	if got := w.Position(); got != v.Position {
		t.Errorf("Position() = %d, expected %d", got, v.Position)
	}
	if got := w.Ref(); got != v.Ref {
		t.Errorf("Ref() = %v, expected %v", got, v.Ref)
	}
	if got := w.Alt(); got != v.Alt {
		t.Errorf("Alt() = %v, expected %v", got, v.Alt)
	}
	if got := w.Flags(); got != v.Flags {
		t.Errorf("Flags() = %#x, expected %#x", got, v.Flags)
	}
}

func TestPackedVariantEveryPatternDecodes(t *testing.T) {
	// Every 64-bit pattern is structurally a valid record; the all-ones
	// word decodes to the maxima of each field.
	v := PackedVariant(^uint64(0)).Unpack()
	want := Variant{Chromosome: MaxChromosome, Position: MaxPosition, Ref: BaseC, Alt: BaseC, Flags: MaxFlags}
	if v != want {
		t.Errorf("Got %+v, expected %+v", v, want)
	}
}

func TestPackVariantOverflow(t *testing.T) {
	cases := []struct {
		name  string
		v     Variant
		field string
		value int64
		max   int64
	}{
		{"chromosome", Variant{Chromosome: MaxChromosome + 1}, "chromosome", MaxChromosome + 1, MaxChromosome},
		{"position", Variant{Position: MaxPosition + 1}, "position", MaxPosition + 1, MaxPosition},
		{"flags", Variant{Flags: MaxFlags + 1}, "flags", MaxFlags + 1, MaxFlags},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := PackVariant(tc.v)
			ovErr := &OverflowError{}
			if !errors.As(err, &ovErr) {
				t.Fatalf("Got %v, expected an OverflowError", err)
			}
			if ovErr.Field != tc.field || ovErr.Value != tc.value || ovErr.Max != tc.max {
				t.Errorf("Got %v, expected field %q value %d max %d", ovErr, tc.field, tc.value, tc.max)
			}
			if w != 0 {
				t.Errorf("A failed pack must return a zero word, got %#x", uint64(w))
			}
		})
	}
}

func TestPackVariantInvalidBases(t *testing.T) {
	for _, v := range []Variant{
		{Chromosome: 1, Position: 100, Ref: Base(4), Alt: BaseT},
		{Chromosome: 1, Position: 100, Ref: BaseA, Alt: Base(9)},
	} {
		_, err := PackVariant(v)
		symErr := &SymbolError{}
		if !errors.As(err, &symErr) {
			t.Fatalf("Got %v, expected a SymbolError", err)
		}
		if symErr.Alphabet != AlphabetNucleotide {
			t.Errorf("SymbolError reported alphabet %s, expected nucleotide", symErr.Alphabet)
		}
	}
}

func TestPackedVariantString(t *testing.T) {
	w, err := PackVariant(Variant{Chromosome: 2, Position: 12345, Ref: BaseA, Alt: BaseT, Flags: 3})
	if err != nil {
		t.Fatal(err)
	}
	want := "[chrom:2 pos:12345 ref:A alt:T flags:0x3]"
	if got := w.String(); got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}
}
