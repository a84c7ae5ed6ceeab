// Command schemagen is invoked via go:generate from the matroska
// package to regenerate its constructor/accessor table from the
// package's declarative ebml.Def list.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/luispater/ebml-go/internal/schemagen"
	"github.com/luispater/ebml-go/matroska"
)

func main() {
	out := flag.String("out", "schema_gen.go", "output file path")
	flag.Parse()

	src, err := schemagen.Generate("matroska", matroska.Defs)
	if err != nil {
		log.Fatalf("schemagen: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("schemagen: writing %s: %v", *out, err)
	}
}
