package genopack

import (
	"bytes"
	"testing"
)

func TestSequenceBlockRoundTrip(t *testing.T) {
	// Lengths straddling the word boundaries are the interesting ones.
	for _, n := range []int{0, 1, 31, 32, 33, 64, 65, 100} {
		bases := testBases(n)
		block, err := packSequenceBlock(bases)
		if err != nil {
			t.Fatalf("packing %d bases: %v", n, err)
		}

		wantLen := (n + BasesPerWord - 1) / BasesPerWord * bytesPerWord
		if len(block) != wantLen {
			t.Fatalf("length %d packed to %d bytes, expected %d", n, len(block), wantLen)
		}

		got, err := unpackSequenceBlock(block, n)
		if err != nil {
			t.Fatalf("unpacking %d bases: %v", n, err)
		}
		for i := range bases {
			if got[i] != bases[i] {
				t.Fatalf("length %d: base %d round-tripped to %v, expected %v", n, i, got[i], bases[i])
			}
		}
	}
}

func TestSequenceBlockIsLittleEndian(t *testing.T) {
	// One word of ATCG packs to 30; the block stores the word's bytes
	// least significant first.
	block, err := packSequenceBlock([]Base{BaseA, BaseT, BaseC, BaseG})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{30, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(block, want) {
		t.Errorf("Got %v, expected %v", block, want)
	}
}

func TestUnpackSequenceBlockBounds(t *testing.T) {
	block, err := packSequenceBlock(testBases(32))
	if err != nil {
		t.Fatal(err)
	}

	// 33 bases need a second word that this block does not have.
	if _, err := unpackSequenceBlock(block, 33); err == nil {
		t.Error("unpacking 33 bases from a one-word block should fail")
	}
	if _, err := unpackSequenceBlock(block, -1); err == nil {
		t.Error("unpacking a negative count should fail")
	}
	if _, err := unpackSequenceBlock(nil, 1); err == nil {
		t.Error("unpacking from an empty block should fail")
	}

	// A short count against a long block is fine; the tail words are
	// simply ignored.
	got, err := unpackSequenceBlock(block, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Errorf("Got %d bases, expected 5", len(got))
	}
}

func TestGenotypeBlockRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 32, 33, 487} {
		calls := testCalls(n)
		block, err := packGenotypeBlock(calls)
		if err != nil {
			t.Fatalf("packing %d calls: %v", n, err)
		}
		got, err := unpackGenotypeBlock(block, n)
		if err != nil {
			t.Fatalf("unpacking %d calls: %v", n, err)
		}
		for i := range calls {
			if got[i] != calls[i] {
				t.Fatalf("length %d: call %d round-tripped to %v, expected %v", n, i, got[i], calls[i])
			}
		}
	}
}

func TestPackBlockRejectsInvalidSymbols(t *testing.T) {
	if _, err := packSequenceBlock([]Base{BaseA, Base(5)}); err == nil {
		t.Error("packing an out-of-alphabet base should fail")
	}
	if _, err := packGenotypeBlock([]Genotype{Genotype(200)}); err == nil {
		t.Error("packing an out-of-alphabet call should fail")
	}
}
