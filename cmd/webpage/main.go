// Command webpage extracts metadata from web pages, fetched over HTTP
// or read from local files, and prints it as JSON.
package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	parser := kong.Parse(&cli,
		kong.Name("webpage"),
		kong.Description("Extract metadata (title, OpenGraph, Schema.org, links) from web pages."),
		kong.UsageOnError(),
	)

	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	parser.FatalIfErrorf(parser.Run(deps))
}
