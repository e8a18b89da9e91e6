package genopack

import (
	"github.com/carbocation/pfx"
)

// Sample names one column of every genotype block. Idx is the sample's
// zero-based position, so calls[s.Idx] is that sample's call in any block
// read back from the same store.
type Sample struct {
	Idx      int    `db:"idx"`
	SampleID string `db:"sample_id"`
}

// PutSamples replaces the store's sample roster with ids, assigning
// positions in slice order. Blocks written against the old roster keep
// their old column order, so replace the roster before writing calls.
func (s *Store) PutSamples(ids []string) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return pfx.Err(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM Sample"); err != nil {
		return pfx.Err(err)
	}

	stmt, err := tx.Preparex("INSERT INTO Sample (idx, sample_id) VALUES (?, ?)")
	if err != nil {
		return pfx.Err(err)
	}
	defer stmt.Close()

	for i, id := range ids {
		if _, err := stmt.Exec(i, id); err != nil {
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// ReadSamples returns the sample roster in block column order.
func (s *Store) ReadSamples() ([]Sample, error) {
	samples := []Sample{}
	if err := s.DB.Select(&samples, "SELECT * FROM Sample ORDER BY idx ASC"); err != nil {
		return nil, pfx.Err(err)
	}
	return samples, nil
}
