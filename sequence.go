package genopack

// PackedSequence is a 64-bit word holding up to BasesPerWord nucleotide
// bases at 2 bits each, first base in the most significant used bits. The
// word does not record how many bases it holds; whoever stores one must
// keep the count alongside it.
type PackedSequence uint64

// PackSequence packs bases into a single word. The first base ends up in
// the most significant used bits and the last in the low 2 bits, so packing
// order is part of the wire contract: reversing the input yields a
// different, equally valid looking word.
//
// capacityBits bounds the packed size. Packing fails with a CapacityError
// when the bases need more than capacityBits bits, and with a SymbolError
// when any base is outside the alphabet. All validation happens before any
// packing, so a non-nil error always comes with a zero word.
func PackSequence(bases []Base, capacityBits int) (PackedSequence, error) {
	if capacityBits < 0 || capacityBits > WordBits {
		return 0, &OverflowError{Field: "capacity", Value: int64(capacityBits), Max: WordBits}
	}
	if len(bases)*bitsPerSymbol > capacityBits {
		return 0, &CapacityError{Count: len(bases), CapacityBits: capacityBits}
	}
	for _, b := range bases {
		if !b.valid() {
			return 0, &SymbolError{Alphabet: AlphabetNucleotide, Value: uint64(b)}
		}
	}

	var w PackedSequence
	for _, b := range bases {
		w = w<<bitsPerSymbol | PackedSequence(b)
	}
	return w, nil
}

// Unpack returns the n bases the word was packed from, first base first.
// n must match the count supplied at pack time: the word does not
// self-describe its length, and a shorter n silently yields the trailing n
// bases. Unpack fails only when n is negative or exceeds BasesPerWord.
func (w PackedSequence) Unpack(n int) ([]Base, error) {
	if n < 0 || n > BasesPerWord {
		return nil, &OverflowError{Field: "length", Value: int64(n), Max: BasesPerWord}
	}

	bases := make([]Base, n)
	for i := n - 1; i >= 0; i-- {
		bases[i] = Base(w & symbolMask)
		w >>= bitsPerSymbol
	}
	return bases, nil
}
