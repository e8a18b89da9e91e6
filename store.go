package genopack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// storeSchemaVersion is written into new stores and checked on open.
const storeSchemaVersion = 1

const storeSchema = `
CREATE TABLE IF NOT EXISTS Metadata (
	schema_version INTEGER NOT NULL,
	word_bits      INTEGER NOT NULL,
	created_time   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS Variant (
	chromosome INTEGER NOT NULL,
	position   INTEGER NOT NULL,
	word       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS VariantLocus ON Variant (chromosome, position);
CREATE TABLE IF NOT EXISTS Sequence (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	length      INTEGER NOT NULL,
	compression INTEGER NOT NULL,
	block       BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS GenotypeBlock (
	variant_id  INTEGER PRIMARY KEY,
	calls       INTEGER NOT NULL,
	compression INTEGER NOT NULL,
	block       BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS Sample (
	idx       INTEGER PRIMARY KEY,
	sample_id TEXT NOT NULL
);
`

// Store persists packed words in a SQLite database together with the
// out-of-band descriptors the words themselves do not carry: the alphabet
// of a block is fixed by the table it lives in, and its symbol count by the
// row's length column. Variants additionally keep decoded locus columns so
// range queries never have to unpack a word.
type Store struct {
	DB       *sqlx.DB
	Metadata *StoreMetadata
}

// StoreMetadata conforms to the single row of the store's Metadata table.
type StoreMetadata struct {
	SchemaVersion int  `db:"schema_version"`
	WordBits      int  `db:"word_bits"`
	CreatedTime   Time `db:"created_time"`
}

// initStore creates the schema if needed and loads (or writes) the
// metadata row. Both OpenStore variants funnel through here.
func initStore(db *sqlx.DB) (*Store, error) {
	s := &Store{
		DB:       db,
		Metadata: &StoreMetadata{},
	}

	if _, err := db.Exec(storeSchema); err != nil {
		return nil, pfx.Err(err)
	}

	err := db.Get(s.Metadata, "SELECT * FROM Metadata LIMIT 1")
	switch {
	case err == sql.ErrNoRows:
		s.Metadata = &StoreMetadata{
			SchemaVersion: storeSchemaVersion,
			WordBits:      WordBits,
			CreatedTime:   Time(time.Now()),
		}
		if _, err := db.Exec(
			"INSERT INTO Metadata (schema_version, word_bits, created_time) VALUES (?, ?, ?)",
			s.Metadata.SchemaVersion, s.Metadata.WordBits, s.Metadata.CreatedTime.Time().Unix(),
		); err != nil {
			return nil, pfx.Err(err)
		}
	case err != nil:
		return nil, pfx.Err(err)
	default:
		if s.Metadata.SchemaVersion != storeSchemaVersion {
			return nil, pfx.Err(fmt.Errorf("The store reports schema version %d; this package reads version %d", s.Metadata.SchemaVersion, storeSchemaVersion))
		}
		if s.Metadata.WordBits != WordBits {
			return nil, pfx.Err(fmt.Errorf("The store was written with %d-bit words; this package packs %d-bit words", s.Metadata.WordBits, WordBits))
		}
	}

	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}

// PutVariant packs v and stores it alongside its decoded locus columns,
// returning the variant's store id for use with PutGenotypeCalls.
func (s *Store) PutVariant(v Variant) (int64, error) {
	w, err := PackVariant(v)
	if err != nil {
		return 0, err
	}

	// SQLite integers are signed; the cast preserves the bit pattern.
	res, err := s.DB.Exec(
		"INSERT INTO Variant (chromosome, position, word) VALUES (?, ?, ?)",
		v.Chromosome, v.Position, int64(w),
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

// PutVariants stores a batch of variants in one transaction. Any
// validation or database failure rolls the whole batch back.
func (s *Store) PutVariants(vs []Variant) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return pfx.Err(err)
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex("INSERT INTO Variant (chromosome, position, word) VALUES (?, ?, ?)")
	if err != nil {
		return pfx.Err(err)
	}
	defer stmt.Close()

	for _, v := range vs {
		w, err := PackVariant(v)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(v.Chromosome, v.Position, int64(w)); err != nil {
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// VariantsInRange returns every variant on chromosome chrom with
// start <= position <= end, ordered by position.
func (s *Store) VariantsInRange(chrom uint16, start, end uint32) ([]Variant, error) {
	var words []int64
	err := s.DB.Select(&words,
		"SELECT word FROM Variant WHERE chromosome = ? AND position BETWEEN ? AND ? ORDER BY position ASC",
		chrom, start, end,
	)
	if err != nil {
		return nil, pfx.Err(err)
	}

	variants := make([]Variant, len(words))
	for i, w := range words {
		variants[i] = PackedVariant(w).Unpack()
	}
	return variants, nil
}
