package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/jacobbierstedt/genopack"
)

const demoSequence = "ATTGCGCATAGGCCTTACGATCAGGCTAACGTGGTACCAT"

func main() {
	path := flag.String("store", "", "Filename of the store to create or open")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No store path given")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(err)
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	s, err := genopack.OpenStore(*path)
	if err != nil {
		log.Fatalln(err)
	}
	defer s.Close()

	log.Println("SQLite driver:", genopack.WhichSQLiteDriver())
	log.Printf("Store metadata: %+v\n", s.Metadata)

	// Samples first: genotype blocks are ordered by the roster.
	if err := s.PutSamples([]string{"NA12878", "NA12891", "NA12892"}); err != nil {
		log.Fatalln(err)
	}

	if err := s.PutVariants([]genopack.Variant{
		{Chromosome: 2, Position: 500, Ref: genopack.BaseG, Alt: genopack.BaseC},
		{Chromosome: 2, Position: 12345, Ref: genopack.BaseA, Alt: genopack.BaseT},
		{Chromosome: 23, Position: 7777, Ref: genopack.BaseT, Alt: genopack.BaseA, Flags: 1},
	}); err != nil {
		log.Fatalln(err)
	}

	id, err := s.PutVariant(genopack.Variant{Chromosome: 4, Position: 42, Ref: genopack.BaseA, Alt: genopack.BaseC})
	if err != nil {
		log.Fatalln(err)
	}
	calls := []genopack.Genotype{genopack.GenotypeHomRef, genopack.GenotypeHet, genopack.GenotypeIncomplete}
	if err := s.PutGenotypeCalls(id, calls, genopack.CompressionZStandard); err != nil {
		log.Fatalln(err)
	}

	bases := make([]genopack.Base, len(demoSequence))
	for i := 0; i < len(demoSequence); i++ {
		b, err := genopack.ParseBase(demoSequence[i])
		if err != nil {
			log.Fatalln(err)
		}
		bases[i] = b
	}
	if _, err := s.PutSequence("demo", bases, genopack.CompressionZLIB); err != nil {
		log.Fatalln(err)
	}

	// Read everything back.
	inRange, err := s.VariantsInRange(2, 0, genopack.MaxPosition)
	if err != nil {
		log.Fatalln(err)
	}
	for i, v := range inRange {
		fmt.Printf("%d) chr%s %+v\n", i, genopack.ChromosomeName(v.Chromosome), v)
	}

	vr := s.NewVariantReader()
	for v := vr.Read(); v != nil; v = vr.Read() {
		w, err := genopack.PackVariant(*v)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Println(w)
	}
	if vr.Error() != nil {
		log.Fatalln("VR error:", vr.Error())
	}
	log.Println("Saw", vr.VariantsSeen, "variants")

	samples, err := s.ReadSamples()
	if err != nil {
		log.Fatalln(err)
	}
	got, err := s.GenotypeCalls(id)
	if err != nil {
		log.Fatalln(err)
	}
	for _, sample := range samples {
		fmt.Println(sample.SampleID, got[sample.Idx])
	}

	back, err := s.SequenceByName("demo")
	if err != nil {
		log.Fatalln(err)
	}
	text := make([]byte, len(back))
	for i, b := range back {
		text[i] = b.Byte()
	}
	log.Println("Sequence round-tripped:", string(text) == demoSequence)
}
