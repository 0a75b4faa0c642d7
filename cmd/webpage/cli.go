package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/webpage"
	"github.com/fwojciec/webpage/client"
	"github.com/fwojciec/webpage/http"
	wslog "github.com/fwojciec/webpage/slog"
)

// Dependencies holds the context and writers for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch FetchCmd `cmd:"" help:"Fetch a URL and print the extracted metadata as JSON"`
	Parse ParseCmd `cmd:"" help:"Parse a local HTML file and print the extracted metadata as JSON"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL          string        `arg:"" help:"URL to fetch"`
	Timeout      time.Duration `default:"30s" help:"Total request deadline"`
	Insecure     bool          `help:"Accept invalid TLS certificates"`
	AllowPrivate bool          `help:"Disable SSRF protection"`
	UserAgent    string        `help:"Override the User-Agent header"`
	Verbose      bool          `short:"v" help:"Log requests to stderr"`
}

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	opts := webpage.DefaultHTTPOptions()
	opts.Timeout = c.Timeout
	opts.AllowInsecure = c.Insecure
	opts.BlockPrivateIPs = !c.AllowPrivate
	if c.UserAgent != "" {
		opts.UserAgent = c.UserAgent
	}

	var fetcher webpage.Fetcher = http.NewFetcher()
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		fetcher = wslog.NewLoggingFetcher(fetcher, logger)
	}

	cl := client.New(client.WithFetcher(fetcher), client.WithHTTPOptions(opts))
	info, err := cl.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return err
	}
	return printJSON(deps.Stdout, info)
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Path string `arg:"" type:"existingfile" help:"HTML file to parse"`
	Base string `short:"b" help:"Base URL for resolving relative links"`
}

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	info, err := client.FromFile(c.Path, c.Base)
	if err != nil {
		return err
	}
	return printJSON(deps.Stdout, info)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
