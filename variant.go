package genopack

import "fmt"

// Bit-field layout of a packed variant, most significant field first:
// [chromosome:12][position:28][ref:2][alt:2][flags:20], 64 bits in total.
const (
	chromBits = 12
	posBits   = 28
	flagBits  = 20

	altShift   = flagBits                 // 20
	refShift   = altShift + bitsPerSymbol // 22
	posShift   = refShift + bitsPerSymbol // 24
	chromShift = posShift + posBits       // 52

	chromMask = 1<<chromBits - 1
	posMask   = 1<<posBits - 1
	flagMask  = 1<<flagBits - 1
)

// Largest field values that fit the packed variant layout.
const (
	MaxChromosome = chromMask // 4095
	MaxPosition   = posMask   // 268435455
	MaxFlags      = flagMask  // 1048575
)

// Variant is one single-nucleotide variant record. Flags carries 20 bits
// of caller-defined data that the codec passes through unchanged; its
// internal subdivision belongs to the calling layer.
type Variant struct {
	Chromosome uint16
	Position   uint32
	Ref        Base
	Alt        Base
	Flags      uint32
}

// PackedVariant is a Variant packed into one 64-bit word with the layout
// [chromosome:12][position:28][ref:2][alt:2][flags:20], bit 63 first. This
// exact field order and width set is the wire contract. Every 64-bit
// pattern is structurally a valid record, so unpacking never fails.
type PackedVariant uint64

// PackVariant validates each field against its bit width and packs the
// record into a single word. A field out of range produces an
// OverflowError naming the field; a ref or alt base outside the alphabet
// produces a SymbolError. No bits are packed unless every field passes.
func PackVariant(v Variant) (PackedVariant, error) {
	if v.Chromosome > MaxChromosome {
		return 0, &OverflowError{Field: "chromosome", Value: int64(v.Chromosome), Max: MaxChromosome}
	}
	if v.Position > MaxPosition {
		return 0, &OverflowError{Field: "position", Value: int64(v.Position), Max: MaxPosition}
	}
	if !v.Ref.valid() {
		return 0, &SymbolError{Alphabet: AlphabetNucleotide, Value: uint64(v.Ref)}
	}
	if !v.Alt.valid() {
		return 0, &SymbolError{Alphabet: AlphabetNucleotide, Value: uint64(v.Alt)}
	}
	if v.Flags > MaxFlags {
		return 0, &OverflowError{Field: "flags", Value: int64(v.Flags), Max: MaxFlags}
	}

	return PackedVariant(v.Chromosome)<<chromShift |
		PackedVariant(v.Position)<<posShift |
		PackedVariant(v.Ref)<<refShift |
		PackedVariant(v.Alt)<<altShift |
		PackedVariant(v.Flags), nil
}

// Chromosome returns the chromosome id field.
func (w PackedVariant) Chromosome() uint16 {
	return uint16(w >> chromShift & chromMask)
}

// Position returns the genomic position field.
func (w PackedVariant) Position() uint32 {
	return uint32(w >> posShift & posMask)
}

// Ref returns the reference base field.
func (w PackedVariant) Ref() Base {
	return Base(w >> refShift & symbolMask)
}

// Alt returns the alternate base field.
func (w PackedVariant) Alt() Base {
	return Base(w >> altShift & symbolMask)
}

// Flags returns the auxiliary flags field.
func (w PackedVariant) Flags() uint32 {
	return uint32(w & flagMask)
}

// Unpack expands the word back into its Variant fields. The widths bound
// every field, so no re-validation is needed and Unpack cannot fail.
func (w PackedVariant) Unpack() Variant {
	return Variant{
		Chromosome: w.Chromosome(),
		Position:   w.Position(),
		Ref:        w.Ref(),
		Alt:        w.Alt(),
		Flags:      w.Flags(),
	}
}

// String returns a human readable description of the packed record.
func (w PackedVariant) String() string {
	return fmt.Sprintf("[chrom:%d pos:%d ref:%s alt:%s flags:%#x]", w.Chromosome(), w.Position(), w.Ref(), w.Alt(), w.Flags())
}
