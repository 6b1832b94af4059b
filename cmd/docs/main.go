package main

import (
	"flag"
	"log"
	"os"

	"github.com/funcdemo/intake/pkg/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	var target string
	var kind string
	flag.StringVar(&target, "target", "/tmp", "Target directory for generated docs")
	flag.StringVar(&kind, "kind", "markdown", "Kind of docs to generate (supported: man, markdown)")
	flag.Parse()

	if err := os.MkdirAll(target, 0o755); err != nil {
		log.Fatalf("Error creating %s: %v\n", target, err)
	}

	log.Printf("Generating files into %s\n", target)

	root := cli.New()

	switch kind {
	case "markdown":
		if err := doc.GenMarkdownTree(root, target); err != nil {
			log.Fatalf("Error generating markdown: %v\n", err)
		}
	case "man":
		header := &doc.GenManHeader{Title: "INTAKE", Section: "1"}
		if err := doc.GenManTree(root, header, target); err != nil {
			log.Fatalf("Error generating man: %v\n", err)
		}
	default:
		log.Fatalf("invalid docs kind : %s", kind)
	}
}
