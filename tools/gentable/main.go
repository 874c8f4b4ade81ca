package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"

	"github.com/kpfaulkner/cct-go/cct"
	log "github.com/sirupsen/logrus"
)

// gentable regenerates cct/sector_table_gen.go from the embedded JIS Z8725
// reference table.
func main() {
	outfile := flag.String("o", "", "output file, stdout if empty")
	verbose := flag.Bool("v", false, "log every generated sector")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	table, err := cct.GenerateSectorTable(cct.ReferenceTable())
	if err != nil {
		log.Fatalf("generating sector table: %v", err)
	}

	src, err := render(table)
	if err != nil {
		log.Fatalf("formatting source: %v", err)
	}

	if err := writeOutput(*outfile, os.Stdout, src); err != nil {
		log.Fatalf("writing table: %v", err)
	}
	if *outfile != "" {
		log.Infof("wrote %d sectors to %s", table.Len(), *outfile)
	}
}

// writeOutput writes src to outfile, or to stdout when outfile is empty.
func writeOutput(outfile string, stdout io.Writer, src []byte) error {
	if outfile == "" {
		_, err := stdout.Write(src)
		return err
	}
	return os.WriteFile(outfile, src, 0666)
}

func render(table cct.SectorTable) ([]byte, error) {
	var buf bytes.Buffer
	writeTable(&buf, table)
	return format.Source(buf.Bytes())
}

func writeTable(w io.Writer, table cct.SectorTable) {
	fmt.Fprintf(w, "// Code generated by tools/gentable. DO NOT EDIT.\n\n")
	fmt.Fprintf(w, "package cct\n\n")
	fmt.Fprintf(w, "import \"github.com/kpfaulkner/cct-go/util\"\n\n")
	fmt.Fprintf(w, "var defaultSectors = []Sector{\n")
	for _, s := range table.Sectors {
		if s.IsTerminal() {
			fmt.Fprintf(w, "\t{RT: %v, Angle: %v},\n", s.RT, s.Angle)
			continue
		}
		fmt.Fprintf(w, "\t{RT: %v, Angle: %v, Center: &util.Point{X: %v, Y: %v}, Radius: %v},\n",
			s.RT, s.Angle, s.Center.X, s.Center.Y, s.Radius)
	}
	fmt.Fprintf(w, "}\n")
}
