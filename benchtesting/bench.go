package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/kpfaulkner/cct-go/cct"
	"github.com/kpfaulkner/cct-go/color"
	"github.com/kpfaulkner/cct-go/testcommon"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	loops := flag.Int("n", 200000, "conversions per method")
	mem := flag.Bool("mem", false, "memory profile instead of cpu")
	flag.Parse()

	if *mem {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	} else {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	points := testcommon.CrossCheckPoints()
	uvs := make([]color.CIEUV, 0, len(points))
	for _, p := range points {
		c, err := cct.CCTToUV(p.CCT, p.Duv)
		if err != nil {
			log.Fatalf("building input for %v: %v", p, err)
		}
		uvs = append(uvs, c.UV)
	}

	timeIt("UVToCCT", *loops, func(i int) error {
		_, err := cct.UVToCCT(uvs[i%len(uvs)])
		return err
	})
	timeIt("UVToCCTLegacy", *loops, func(i int) error {
		_, err := cct.UVToCCTLegacy(uvs[i%len(uvs)])
		return err
	})
	timeIt("CCTToUV", *loops, func(i int) error {
		p := points[i%len(points)]
		_, err := cct.CCTToUV(p.CCT, p.Duv)
		return err
	})
}

func timeIt(name string, loops int, f func(i int) error) {
	start := time.Now()
	for i := 0; i < loops; i++ {
		if err := f(i); err != nil {
			log.Errorf("%s failed on iteration %d: %v", name, i, err)
			return
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("%s: %d conversions took %d ms (%.1f ns/op)\n", name, loops, elapsed.Milliseconds(),
		float64(elapsed.Nanoseconds())/float64(loops))
}
