package main

import (
	"context"
	"io"

	"github.com/fwojciec/linkdrop"
	"github.com/fwojciec/linkdrop/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Analyzer   linkdrop.Analyzer
	Gate       linkdrop.QuotaGate
	Cache      linkdrop.AnalysisCache
	Summarizer linkdrop.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze one or more URLs (or free text) into typed records"`
	Status  StatusCmd  `cmd:"" help:"Show rate-limit status for gated sources"`
	Cache   CacheCmd   `cmd:"" help:"Manage the analysis cache"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Inputs      []string `arg:"" optional:"" help:"URLs or text to analyze"`
	Input       string   `short:"i" help:"File with one URL per line (# comments allowed)"`
	JSON        bool     `help:"Emit results as JSON"`
	Summarize   bool     `help:"Summarize long content with Gemini (requires GEMINI_API_KEY)"`
	Browser     bool     `short:"b" help:"Fetch pages with a headless browser (for JavaScript-rendered sites)"`
	Readability bool     `help:"Use the readability extractor instead of trafilatura"`
	NoCache     bool     `help:"Bypass the analysis cache"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent analysis limit"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}

// CacheCmd groups cache maintenance subcommands.
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove all cached analyses"`
}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct{}
