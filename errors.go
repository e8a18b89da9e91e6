package genopack

import "fmt"

// CapacityError reports a symbol vector that cannot fit the word capacity
// requested at pack time. Packing is all-or-nothing: no partial word is
// ever produced alongside a CapacityError.
type CapacityError struct {
	Count        int // symbols supplied
	CapacityBits int // capacity requested at pack time
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%d symbols need %d bits but the capacity is %d", e.Count, e.Count*bitsPerSymbol, e.CapacityBits)
}

// OverflowError reports a field or parameter whose value does not fit its
// fixed bit width.
type OverflowError struct {
	Field string
	Value int64
	Max   int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s %d exceeds the maximum of %d", e.Field, e.Value, e.Max)
}

// SymbolError reports a value outside a closed 2-bit alphabet.
type SymbolError struct {
	Alphabet Alphabet
	Value    uint64
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%d is not a valid %s symbol", e.Value, e.Alphabet)
}
