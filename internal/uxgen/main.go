// Command uxgen writes the per-width integer types of package ux.
//
// Every type is rendered from the single template in template.go; the
// arithmetic itself lives in generic helpers in package ux, so the generated
// methods are one-line forwards that cannot drift apart.
//
// Usage:
//
//	go run ./internal/uxgen -out .
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var out, pkg string
	flag.StringVar(&out, "out", ".", "Directory to write the generated files to")
	flag.StringVar(&pkg, "pkg", "ux", "Package name of the generated files")
	flag.Parse()

	tpl, err := template.New("ux").Parse(fileTemplate)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, f := range plan(pkg) {
		f := f
		g.Go(func() error {
			src, err := render(tpl, f)
			if err != nil {
				return err
			}
			path := filepath.Join(out, f.Name)
			if err := os.WriteFile(path, src, 0644); err != nil {
				return err
			}
			log.Printf("uxgen: wrote %s (%d types)", path, len(f.Types))
			return nil
		})
	}
	return g.Wait()
}

func render(tpl *template.Template, f file) ([]byte, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("uxgen: render %s: %w", f.Name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("uxgen: format %s: %w\n%s", f.Name, err, buf.Bytes())
	}
	return src, nil
}
