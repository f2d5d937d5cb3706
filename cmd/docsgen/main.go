package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/kingdom/internal/catalog"
)

func main() {
	var catalogPath string
	var outDir string

	flag.StringVar(&catalogPath, "f", "cards.json", "card catalog JSON file")
	flag.StringVar(&outDir, "o", filepath.Join("docs", "reference", "sets"), "output directory")
	flag.Parse()

	cat, err := catalog.Load(catalogPath, nil)
	if err != nil {
		fatal(err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fatal(err)
	}

	files := generateSetDocs(cat)
	for _, f := range files {
		path := filepath.Join(outDir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	indexPath := filepath.Join(outDir, "README.md")
	if err := os.WriteFile(indexPath, []byte(generateIndex(files)), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
