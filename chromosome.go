package genopack

import (
	"fmt"
	"strconv"
)

// ChromosomeName takes a numeric chromosome id and returns its standard
// string translation: "01" through "22" for the autosomes, then the 0X,
// 0Y, XY and MT specials. Ids without a name translate to "NA".
func ChromosomeName(chr uint16) string {
	switch {
	case chr >= 1 && chr <= 22:
		return fmt.Sprintf("%02d", chr)
	case chr == 23:
		return "0X"
	case chr == 24:
		return "0Y"
	case chr == 253:
		return "XY"
	case chr == 254:
		return "MT"
	}

	return "NA"
}

// ChromosomeID is the inverse of ChromosomeName. Unlike the display
// direction there is no catch-all value: a name that is neither a known
// special nor a number in range is an error, so malformed input cannot
// flow into a packed record unnoticed.
func ChromosomeID(name string) (uint16, error) {
	switch name {
	case "X", "0X":
		return 23, nil
	case "Y", "0Y":
		return 24, nil
	case "XY":
		return 253, nil
	case "MT", "M":
		return 254, nil
	}

	n, err := strconv.ParseUint(name, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unknown chromosome name %q", name)
	}
	if n > MaxChromosome {
		return 0, &OverflowError{Field: "chromosome", Value: int64(n), Max: MaxChromosome}
	}
	return uint16(n), nil
}
