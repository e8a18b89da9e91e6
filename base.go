package genopack

// Base is one nucleotide base. The numeric value of a Base is also its
// 2-bit wire code: A=00b, T=01b, G=10b, C=11b. The mapping is a bijection
// over the four bases, so every 2-bit pattern decodes to exactly one Base.
type Base uint8

const (
	BaseA Base = iota
	BaseT
	BaseG
	BaseC
)

func (b Base) valid() bool {
	return b <= BaseC
}

func (b Base) String() string {
	switch b {
	case BaseA:
		return "A"
	case BaseT:
		return "T"
	case BaseG:
		return "G"
	case BaseC:
		return "C"

	default:
		return "invalid"
	}
}

// Byte returns the upper-case ASCII character for b. Bases outside the
// alphabet return 0.
func (b Base) Byte() byte {
	if !b.valid() {
		return 0
	}
	return [...]byte{'A', 'T', 'G', 'C'}[b]
}

// ParseBase maps an ASCII nucleotide character to its Base. Lower case is
// accepted. Anything outside ATGC, including IUPAC ambiguity codes such as
// N, is a SymbolError; unrecognized characters are never skipped.
func ParseBase(c byte) (Base, error) {
	switch c {
	case 'A', 'a':
		return BaseA, nil
	case 'T', 't':
		return BaseT, nil
	case 'G', 'g':
		return BaseG, nil
	case 'C', 'c':
		return BaseC, nil
	}

	return 0, &SymbolError{Alphabet: AlphabetNucleotide, Value: uint64(c)}
}
