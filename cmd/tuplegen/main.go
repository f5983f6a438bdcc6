// Command tuplegen rewrites the generated source files of the tupl
// module: the tuple types with their per-arity operations, and the
// tuplefunc converters. It is normally run through go generate at the
// module root.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/Dragoteryx/tupl/internal/gen"
)

var cli struct {
	Dir      string `help:"Module root to write the generated files into." default:"." type:"existingdir"`
	MaxArity int    `help:"Largest tuple arity to define." default:"50"`
	FnArity  int    `help:"Largest argument or return count covered by the tuplefunc converters." default:"4"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tuplegen: ")
	kctx := kong.Parse(&cli,
		kong.Name("tuplegen"),
		kong.Description("Regenerate the arity-indexed source of the tupl module."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	files, err := gen.Generate(gen.Config{
		MaxArity: cli.MaxArity,
		FnArity:  cli.FnArity,
	})
	if err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(cli.Dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Source, 0o644); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}
