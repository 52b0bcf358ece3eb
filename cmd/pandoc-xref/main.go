// Package main provides the pandoc-xref CLI, a pandoc JSON filter that
// resolves @#identifier cross-reference markers against anchors declared
// in the same document (headings, labeled display equations, captioned
// figures, identified tables).
//
// Usage:
//
//	pandoc --filter pandoc-xref ...          (pandoc passes the output format)
//	pandoc -t json ... | pandoc-xref | pandoc -f json ...
//
// The filter reads the document JSON on stdin and writes the rewritten
// document on stdout. Warnings go to stderr; document-level problems never
// abort the run. Only HTML (and native) output is supported; other formats
// pass the document through unchanged.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pandoc-xref/internal/config"
	"pandoc-xref/internal/diag"
	"pandoc-xref/internal/plural"
	"pandoc-xref/internal/refs"
	"pandoc-xref/internal/resolve"
)

// Config captures the parsed command line.
type Config struct {
	format       string // output format pandoc passes as the first argument
	prefixesPath string
}

// parseFlags parses args (without the program name) into a Config.
func parseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("pandoc-xref", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [output-format]\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	prefixesPath := fs.String("prefixes", "", "YAML file overriding prefix words (section/equation/figure/table)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{prefixesPath: *prefixesPath}
	switch fs.NArg() {
	case 0:
		// Called via pipes; no format argument.
	case 1:
		cfg.format = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("expected at most one output format argument, got %d", fs.NArg())
	}
	return cfg, nil
}

// compatibleFormat reports whether the output format is supported. The
// empty format means the filter was called via pipes rather than by
// pandoc's --filter option.
func compatibleFormat(format string) bool {
	switch format {
	case "", "html", "native":
		return true
	}
	return false
}

// run reads the document from in, resolves cross-references, and writes
// the result to out. Incompatible output formats produce a warning and an
// unmodified document.
func run(cfg Config, in io.Reader, out io.Writer, rep *diag.Reporter) error {
	dec := json.NewDecoder(in)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	if !compatibleFormat(cfg.format) {
		rep.Warnf("pandoc-xref does not work with output format %s!", cfg.format)
		return writeDoc(out, doc)
	}

	prefixes := config.Default()
	if cfg.prefixesPath != "" {
		p, err := config.Load(cfg.prefixesPath)
		if err != nil {
			return err
		}
		prefixes = p
	}

	// Pass 1 and the uniqueness filter must complete before pass 2 starts;
	// pass 2 reads a registry that is only correct post-filter.
	reg := refs.Collect(doc)
	reg.Dedupe(rep)

	res := resolve.New(reg, prefixes, plural.NewService(), rep)
	return writeDoc(out, res.Apply(doc))
}

func writeDoc(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := run(cfg, os.Stdin, os.Stdout, diag.New(nil)); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
