package genopack

import (
	"encoding/binary"
	"fmt"
)

// A block is the storage form of a symbol vector longer than one word can
// hold: the vector is chunked BasesPerWord at a time, each chunk packed
// into one word, and the words laid out little-endian. The block does not
// embed the symbol count; the store keeps it in the row's length column.

const bytesPerWord = WordBits / 8

func packSequenceBlock(bases []Base) ([]byte, error) {
	nWords := (len(bases) + BasesPerWord - 1) / BasesPerWord
	block := make([]byte, nWords*bytesPerWord)
	for i := 0; i < nWords; i++ {
		start := i * BasesPerWord
		end := start + BasesPerWord
		if end > len(bases) {
			end = len(bases)
		}
		w, err := PackSequence(bases[start:end], WordBits)
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint64(block[i*bytesPerWord:], uint64(w))
	}
	return block, nil
}

func unpackSequenceBlock(block []byte, n int) ([]Base, error) {
	if n < 0 || len(block) < (n+BasesPerWord-1)/BasesPerWord*bytesPerWord {
		return nil, fmt.Errorf("block of %d bytes cannot hold %d bases", len(block), n)
	}

	bases := make([]Base, 0, n)
	for i := 0; len(bases) < n; i++ {
		w := PackedSequence(binary.LittleEndian.Uint64(block[i*bytesPerWord:]))
		count := n - len(bases)
		if count > BasesPerWord {
			count = BasesPerWord
		}
		chunk, err := w.Unpack(count)
		if err != nil {
			return nil, err
		}
		bases = append(bases, chunk...)
	}
	return bases, nil
}

func packGenotypeBlock(calls []Genotype) ([]byte, error) {
	nWords := (len(calls) + CallsPerWord - 1) / CallsPerWord
	block := make([]byte, nWords*bytesPerWord)
	for i := 0; i < nWords; i++ {
		start := i * CallsPerWord
		end := start + CallsPerWord
		if end > len(calls) {
			end = len(calls)
		}
		w, err := PackGenotypes(calls[start:end], WordBits)
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint64(block[i*bytesPerWord:], uint64(w))
	}
	return block, nil
}

func unpackGenotypeBlock(block []byte, n int) ([]Genotype, error) {
	if n < 0 || len(block) < (n+CallsPerWord-1)/CallsPerWord*bytesPerWord {
		return nil, fmt.Errorf("block of %d bytes cannot hold %d calls", len(block), n)
	}

	calls := make([]Genotype, 0, n)
	for i := 0; len(calls) < n; i++ {
		w := PackedGenotypes(binary.LittleEndian.Uint64(block[i*bytesPerWord:]))
		count := n - len(calls)
		if count > CallsPerWord {
			count = CallsPerWord
		}
		chunk, err := w.Unpack(count)
		if err != nil {
			return nil, err
		}
		calls = append(calls, chunk...)
	}
	return calls, nil
}
