package genopack

import (
	"github.com/carbocation/pfx"
)

// sequenceRow conforms to the rows of the Sequence table. The length
// column is the descriptor that makes the block decodable: without it a
// trailing A run is indistinguishable from padding.
type sequenceRow struct {
	ID          int64       `db:"id"`
	Name        string      `db:"name"`
	Length      int         `db:"length"`
	Compression Compression `db:"compression"`
	Block       []byte      `db:"block"`
}

func (r *sequenceRow) bases() ([]Base, error) {
	raw, err := decompressBlock(r.Compression, r.Block)
	if err != nil {
		return nil, err
	}
	return unpackSequenceBlock(raw, r.Length)
}

// genotypeRow conforms to the rows of the GenotypeBlock table.
type genotypeRow struct {
	VariantID   int64       `db:"variant_id"`
	Calls       int         `db:"calls"`
	Compression Compression `db:"compression"`
	Block       []byte      `db:"block"`
}

func (r *genotypeRow) genotypes() ([]Genotype, error) {
	raw, err := decompressBlock(r.Compression, r.Block)
	if err != nil {
		return nil, err
	}
	return unpackGenotypeBlock(raw, r.Calls)
}

// PutSequence packs bases into a word block, compresses it with c, and
// stores it under name, returning the sequence's store id.
func (s *Store) PutSequence(name string, bases []Base, c Compression) (int64, error) {
	raw, err := packSequenceBlock(bases)
	if err != nil {
		return 0, err
	}
	blob, err := compressBlock(c, raw)
	if err != nil {
		return 0, err
	}

	res, err := s.DB.Exec(
		"INSERT INTO Sequence (name, length, compression, block) VALUES (?, ?, ?, ?)",
		name, len(bases), c, blob,
	)
	if err != nil {
		return 0, pfx.Err(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, pfx.Err(err)
	}
	return id, nil
}

// Sequence loads and unpacks the sequence with the given store id.
func (s *Store) Sequence(id int64) ([]Base, error) {
	r := sequenceRow{}
	if err := s.DB.Get(&r, "SELECT * FROM Sequence WHERE id = ?", id); err != nil {
		return nil, pfx.Err(err)
	}
	return r.bases()
}

// SequenceByName loads and unpacks the sequence stored under name.
func (s *Store) SequenceByName(name string) ([]Base, error) {
	r := sequenceRow{}
	if err := s.DB.Get(&r, "SELECT * FROM Sequence WHERE name = ?", name); err != nil {
		return nil, pfx.Err(err)
	}
	return r.bases()
}

// PutGenotypeCalls packs one call per sample for the variant with store id
// variantID, replacing any block already stored for that variant.
func (s *Store) PutGenotypeCalls(variantID int64, calls []Genotype, c Compression) error {
	raw, err := packGenotypeBlock(calls)
	if err != nil {
		return err
	}
	blob, err := compressBlock(c, raw)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec(
		"INSERT OR REPLACE INTO GenotypeBlock (variant_id, calls, compression, block) VALUES (?, ?, ?, ?)",
		variantID, len(calls), c, blob,
	)
	if err != nil {
		return pfx.Err(err)
	}
	return nil
}

// GenotypeCalls loads and unpacks the genotype calls stored for the
// variant with store id variantID.
func (s *Store) GenotypeCalls(variantID int64) ([]Genotype, error) {
	r := genotypeRow{}
	if err := s.DB.Get(&r, "SELECT * FROM GenotypeBlock WHERE variant_id = ?", variantID); err != nil {
		return nil, pfx.Err(err)
	}
	return r.genotypes()
}
