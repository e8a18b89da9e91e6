package genopack

// PackedGenotypes is a 64-bit word holding up to CallsPerWord genotype
// calls at 2 bits each, one call per sample position, first call in the
// most significant used bits. Like PackedSequence it carries no length of
// its own.
type PackedGenotypes uint64

// PackGenotypes packs per-sample calls into a single word with the same
// conventions as PackSequence: MSB-first insertion, capacityBits bounding
// the packed size, and validation of every call before any packing.
func PackGenotypes(calls []Genotype, capacityBits int) (PackedGenotypes, error) {
	if capacityBits < 0 || capacityBits > WordBits {
		return 0, &OverflowError{Field: "capacity", Value: int64(capacityBits), Max: WordBits}
	}
	if len(calls)*bitsPerSymbol > capacityBits {
		return 0, &CapacityError{Count: len(calls), CapacityBits: capacityBits}
	}
	for _, g := range calls {
		if !g.valid() {
			return 0, &SymbolError{Alphabet: AlphabetGenotype, Value: uint64(g)}
		}
	}

	var w PackedGenotypes
	for _, g := range calls {
		w = w<<bitsPerSymbol | PackedGenotypes(g)
	}
	return w, nil
}

// Unpack returns the n calls the word was packed from, first call first.
// As with PackedSequence.Unpack, n is the caller's responsibility; a wrong
// n yields a wrong but plausible call vector with no error.
func (w PackedGenotypes) Unpack(n int) ([]Genotype, error) {
	if n < 0 || n > CallsPerWord {
		return nil, &OverflowError{Field: "length", Value: int64(n), Max: CallsPerWord}
	}

	calls := make([]Genotype, n)
	for i := n - 1; i >= 0; i-- {
		calls[i] = Genotype(w & symbolMask)
		w >>= bitsPerSymbol
	}
	return calls, nil
}
