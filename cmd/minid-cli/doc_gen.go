//go:build ignore
// +build ignore

package main

import (
	"log"
	"os"

	minid "github.com/mithrel/minid/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := minid.NewRootCmd()

	for _, dir := range []string{"./docs/markdown", "./docs/man"} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}
	if err := doc.GenMarkdownTree(root, "./docs/markdown"); err != nil {
		log.Fatal(err)
	}

	header := &doc.GenManHeader{
		Title:   "MINID-CLI",
		Section: "1",
	}
	if err := doc.GenManTree(root, header, "./docs/man"); err != nil {
		log.Fatal(err)
	}
}
