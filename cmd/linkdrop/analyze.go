package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fwojciec/linkdrop"
	"github.com/fwojciec/linkdrop/pipeline"
)

// summarizeMinChars is the content length below which summarization is
// skipped; short bodies are their own summary.
const summarizeMinChars = 600

// analysisRecord pairs an input string with its analysis for output.
type analysisRecord struct {
	Input string `json:"input"`
	*linkdrop.AnalysisResult
}

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	inputs, err := c.collectInputs()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkdrop.ErrorMessage(err))
		return err
	}
	if len(inputs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no inputs given. Pass URLs as arguments or use --input.\n")
		return linkdrop.Errorf(linkdrop.EINVALID, "no inputs given")
	}

	cache := deps.Cache
	if c.NoCache {
		cache = nil
	}
	runner := &analyzeRunner{
		next:    deps.Analyzer,
		cache:   cache,
		results: make(map[string]*linkdrop.AnalysisResult, len(inputs)),
	}

	pipeline.AnalyzeAll(deps.Ctx, runner, inputs, c.Concurrency)

	// Pair results back with their inputs; inputs dropped by batch
	// deduplication have no record.
	records := make([]*analysisRecord, 0, len(inputs))
	for _, input := range inputs {
		if res := runner.resultFor(input); res != nil {
			records = append(records, &analysisRecord{Input: input, AnalysisResult: res})
		}
	}

	if c.Summarize && deps.Summarizer != nil {
		for _, rec := range records {
			c.summarize(deps, rec)
		}
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return err
		}
		return nil
	}

	for _, rec := range records {
		printRecord(deps, rec)
	}
	return nil
}

// collectInputs merges positional arguments with the optional input
// file, which holds one entry per line with #-comments.
func (c *AnalyzeCmd) collectInputs() ([]string, error) {
	inputs := append([]string{}, c.Inputs...)
	if c.Input == "" {
		return inputs, nil
	}

	data, err := os.ReadFile(c.Input)
	if err != nil {
		return nil, linkdrop.Errorf(linkdrop.EINVALID, "cannot read input file %q: %v", c.Input, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs, nil
}

// summarize adds a generated summary to a record when its body is long
// enough to warrant one. Failures are warnings, never fatal.
func (c *AnalyzeCmd) summarize(deps *Dependencies, rec *analysisRecord) {
	md := rec.Metadata
	if md == nil || md.Content == nil {
		return
	}
	content := linkdrop.GetString(md.Content)
	if len(content) < summarizeMinChars {
		return
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, linkdrop.GetString(md.Title), content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: summarization failed for %q: %s\n", rec.Input, linkdrop.ErrorMessage(err))
		return
	}
	if md.ExtraData == nil {
		md.ExtraData = map[string]any{}
	}
	md.ExtraData["summary"] = summary
}

// printRecord writes one analysis in human-readable form.
func printRecord(deps *Dependencies, rec *analysisRecord) {
	md := rec.Metadata
	if md == nil {
		md = &linkdrop.Metadata{}
	}

	heading := linkdrop.GetString(md.Title)
	if heading == "" {
		heading = rec.Input
	}
	fmt.Fprintf(deps.Stdout, "[%s] %.2f  %s\n", rec.ContentType, rec.Confidence, heading)

	if md.Domain != "" {
		fmt.Fprintf(deps.Stdout, "  domain: %s\n", md.Domain)
	}
	if md.Author != nil {
		fmt.Fprintf(deps.Stdout, "  author: %s\n", linkdrop.GetString(md.Author))
	}
	if md.Description != nil && linkdrop.GetString(md.Description) != "" {
		fmt.Fprintf(deps.Stdout, "  description: %s\n", truncate(linkdrop.GetString(md.Description), 200))
	}
	if md.ExtraData != nil {
		if summary, ok := md.ExtraData["summary"].(string); ok && summary != "" {
			fmt.Fprintf(deps.Stdout, "  summary: %s\n", summary)
		}
	}
	fmt.Fprintln(deps.Stdout)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

var _ linkdrop.Analyzer = (*analyzeRunner)(nil)

// analyzeRunner wraps the pipeline analyzer with cache consultation and
// records each input's result so the command can pair them back up after
// a concurrent batch run.
type analyzeRunner struct {
	next  linkdrop.Analyzer
	cache linkdrop.AnalysisCache // nil disables caching

	mu      sync.Mutex
	results map[string]*linkdrop.AnalysisResult
}

func (r *analyzeRunner) Analyze(ctx context.Context, input string) *linkdrop.AnalysisResult {
	if r.cache == nil || !linkdrop.IsURLLike(input) {
		res := r.next.Analyze(ctx, input)
		r.record(input, res)
		return res
	}

	key := linkdrop.NormalizeURL(input)
	if res, err := r.cache.Get(ctx, key); err == nil && res != nil {
		r.record(input, res)
		return res
	}

	res := r.next.Analyze(ctx, input)
	if res != nil {
		_ = r.cache.Put(ctx, key, res)
	}
	r.record(input, res)
	return res
}

func (r *analyzeRunner) record(input string, res *linkdrop.AnalysisResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[input] = res
}

func (r *analyzeRunner) resultFor(input string) *linkdrop.AnalysisResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.results[input]
}
