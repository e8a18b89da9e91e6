package genopack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Compression indicates how (and whether) a stored block of packed words is
// compressed.
type Compression uint32

const (
	CompressionDisabled Compression = iota
	CompressionZLIB
	CompressionZStandard
)

func (c Compression) String() string {
	switch c {
	case CompressionDisabled:
		return "Disabled"
	case CompressionZLIB:
		return "ZLIB"
	case CompressionZStandard:
		return "ZStandard"

	default:
		return "Illegal selection"
	}
}

// compressBlock squeezes a serialized word block for storage. Disabled
// passes the block through unchanged.
func compressBlock(c Compression, raw []byte) ([]byte, error) {
	switch c {
	case CompressionDisabled:
		return raw, nil

	case CompressionZLIB:
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(raw); err != nil {
			return nil, fmt.Errorf("writing compressed block: %v", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("closing compressed block: %v", err)
		}
		return buf.Bytes(), nil

	case CompressionZStandard:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), nil
	}

	return nil, fmt.Errorf("Compression choice %s is not supported", c)
}

// decompressBlock reverses compressBlock.
func decompressBlock(c Compression, blob []byte) ([]byte, error) {
	switch c {
	case CompressionDisabled:
		return blob, nil

	case CompressionZLIB:
		zr, err := zlib.NewReader(bytes.NewReader(blob))
		if err != nil {
			return nil, fmt.Errorf("initializing zlib reader: %v", err)
		}
		defer zr.Close()
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, zr); err != nil {
			return nil, fmt.Errorf("decompressing block: %v", err)
		}
		return buf.Bytes(), nil

	case CompressionZStandard:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(blob, nil)
	}

	return nil, fmt.Errorf("Compression choice %s is not supported", c)
}
