package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/linkgen/internal/cli"
	"github.com/arthur-debert/linkgen/internal/version"
)

func main() {
	if err := generate(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

func generate(w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "LINKGEN",
		Section: "1",
		Source:  "linkgen " + version.Version,
		Manual:  "linkgen manual",
	}
	return doc.GenMan(cli.NewRootCmd(), header, w)
}
