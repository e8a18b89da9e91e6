package genopack

// Alphabet identifies which closed 2-bit symbol set a packed word was built
// from. Words themselves do not carry this tag: decoding a genotype word
// with the nucleotide alphabet produces wrong but plausible symbols with no
// error, so anything that stores words must track their Alphabet out of
// band.
type Alphabet uint32

const (
	AlphabetNucleotide Alphabet = iota
	AlphabetGenotype
)

func (a Alphabet) String() string {
	switch a {
	case AlphabetNucleotide:
		return "nucleotide"
	case AlphabetGenotype:
		return "genotype"

	default:
		return "Illegal selection"
	}
}
