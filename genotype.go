package genopack

// Genotype is one diploid genotype call. The numeric value of a Genotype is
// also its 2-bit wire code: HOM_REF=00b, HET=01b, HOM_ALT=10b,
// INCOMPLETE=11b. The genotype alphabet shares its shape with the
// nucleotide alphabet but the two are deliberately distinct types; a call
// vector packed here cannot be handed to the sequence codec without an
// explicit conversion.
type Genotype uint8

const (
	GenotypeHomRef     Genotype = iota // homozygous for the reference allele
	GenotypeHet                        // heterozygous
	GenotypeHomAlt                     // homozygous for the alternate allele
	GenotypeIncomplete                 // missing or partial call
)

func (g Genotype) valid() bool {
	return g <= GenotypeIncomplete
}

func (g Genotype) String() string {
	switch g {
	case GenotypeHomRef:
		return "HOM_REF"
	case GenotypeHet:
		return "HET"
	case GenotypeHomAlt:
		return "HOM_ALT"
	case GenotypeIncomplete:
		return "INCOMPLETE"

	default:
		return "invalid"
	}
}
