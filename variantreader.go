package genopack

import (
	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// VariantReader streams every variant in a Store in (chromosome, position)
// order without loading the whole table. Read returns nil once the scan is
// exhausted or fails; check Error after the loop.
type VariantReader struct {
	VariantsSeen uint32
	rows         *sqlx.Rows
	err          error
}

func (s *Store) NewVariantReader() *VariantReader {
	vr := &VariantReader{}

	rows, err := s.DB.Queryx("SELECT word FROM Variant ORDER BY chromosome ASC, position ASC")
	if err != nil {
		vr.err = pfx.Err(err)
		return vr
	}
	vr.rows = rows

	return vr
}

func (vr *VariantReader) Error() error {
	return vr.err
}

// Close releases the scan early. Closing an exhausted reader is a no-op.
func (vr *VariantReader) Close() error {
	if vr.rows == nil {
		return nil
	}
	rows := vr.rows
	vr.rows = nil
	return rows.Close()
}

func (vr *VariantReader) Read() *Variant {
	if vr.rows == nil {
		return nil
	}

	if !vr.rows.Next() {
		if err := vr.rows.Err(); err != nil {
			vr.err = pfx.Err(err)
		}
		vr.Close()
		return nil
	}

	var w int64
	if err := vr.rows.Scan(&w); err != nil {
		vr.err = pfx.Err(err)
		vr.Close()
		return nil
	}

	vr.VariantsSeen++
	v := PackedVariant(w).Unpack()

	return &v
}
