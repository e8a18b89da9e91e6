package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/carbocation/pfx"
	"github.com/jacobbierstedt/genopack"
)

func main() {
	path := flag.String("store", "", "Filename of the store to scan")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No store found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	s, err := genopack.OpenStore(*path)
	if err != nil {
		log.Fatalln(err)
	}
	defer s.Close()

	variants := make(chan genopack.Variant)
	output := make(chan AlleleCounter)

	// Each worker keeps a local counter and reports it once when the work
	// channel closes.
	var wg sync.WaitGroup
	log.Println("Launching", runtime.NumCPU(), "workers")
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Worker(variants, output)
		}()
	}

	accumulated := make(chan AlleleCounter)
	go func() {
		accumulator := AlleleCounter{}
		for o := range output {
			accumulator.A += o.A
			accumulator.C += o.C
			accumulator.T += o.T
			accumulator.G += o.G
		}
		accumulated <- accumulator
	}()

	vr := s.NewVariantReader()
	for v := vr.Read(); v != nil; v = vr.Read() {
		if vr.VariantsSeen%1000 == 0 {
			log.Println("Processed", vr.VariantsSeen, "variants")
		}
		variants <- *v
	}
	close(variants)
	if vr.Error() != nil {
		log.Fatalln(vr.Error())
	}

	wg.Wait()
	close(output)

	log.Println("Final accumulated stats for", vr.VariantsSeen, "variants")
	log.Printf("%+v\n", <-accumulated)
}

type AlleleCounter struct {
	A, C, T, G int64
}

func (a *AlleleCounter) Add(b genopack.Base) error {
	switch b {
	case genopack.BaseA:
		a.A++
	case genopack.BaseC:
		a.C++
	case genopack.BaseT:
		a.T++
	case genopack.BaseG:
		a.G++
	default:
		return pfx.Err(fmt.Errorf("%s is not recognized", b))
	}

	return nil
}

// Worker tallies the ref and alt alleles of every variant it receives.
func Worker(variants <-chan genopack.Variant, output chan<- AlleleCounter) {
	ac := AlleleCounter{}
	for v := range variants {
		if err := ac.Add(v.Ref); err != nil {
			log.Println(err)
		}
		if err := ac.Add(v.Alt); err != nil {
			log.Println(err)
		}
	}

	output <- ac
}
