// Package genopack packs genomic records into fixed-width integer words:
// nucleotide sequences and diploid genotype calls at 2 bits per symbol, and
// single-nucleotide variant records as one 64-bit word with fixed field
// boundaries. The packed forms are bit-exact wire contracts; two
// implementations that agree on them can exchange words freely.
//
// Packed words carry no length or alphabet tag of their own. The Store type
// persists words together with the out-of-band descriptors needed to unpack
// them safely.
package genopack

// WordBits is the bit width of every packed word produced by this package.
const WordBits = 64

const (
	bitsPerSymbol = 2
	symbolMask    = 1<<bitsPerSymbol - 1
)

// BasesPerWord is the maximum number of nucleotide bases one PackedSequence
// can hold.
const BasesPerWord = WordBits / bitsPerSymbol

// CallsPerWord is the maximum number of genotype calls one PackedGenotypes
// can hold.
const CallsPerWord = WordBits / bitsPerSymbol
