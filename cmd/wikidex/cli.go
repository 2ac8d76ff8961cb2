package main

import (
	"context"
	"io"

	"github.com/wikidex/wikidex"
	"github.com/wikidex/wikidex/scrape"
	"github.com/wikidex/wikidex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	DB           *sqlite.DB
	Records      wikidex.RecordService
	Scraper      *scrape.Scraper
	Asker        wikidex.Asker
	TokenCounter wikidex.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Parse  ParseCmd  `cmd:"" help:"Parse a MediaWiki SQL dump into the record store"`
	Import ImportCmd `cmd:"" help:"Import a MediaWiki XML export into the record store"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape a live wiki over its web API"`
	Export ExportCmd `cmd:"" help:"Export stored records to a JSON file"`
	List   ListCmd   `cmd:"" help:"List stored records"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about the wiki content"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Dump    string `arg:"" help:"Path to the SQL dump file"`
	BaseURL string `name:"base-url" help:"Wiki base URL used to build page links"`
	Plain   bool   `help:"Render wikitext to plain text before storing"`
	Out     string `short:"o" help:"Also write records to a JSON file"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File    string `arg:"" help:"Path to the XML export file"`
	BaseURL string `name:"base-url" help:"Wiki base URL used to build page links"`
	Plain   bool   `help:"Render wikitext to plain text before storing"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL         string  `arg:"" help:"Wiki base URL"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64 `default:"1" help:"Max requests per second per host"`
	Extractor   string  `enum:"text,readability,trafilatura" default:"text" help:"Content extractor (text, readability, trafilatura)"`
	Markdown    bool    `help:"Store page content as Markdown instead of plain text"`
	Out         string  `short:"o" help:"Also write records to a JSON file"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Out string `arg:"" help:"Destination JSON file"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Title string `help:"Filter by exact title"`
	Full  bool   `help:"Show full record content"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the wiki"`
}
