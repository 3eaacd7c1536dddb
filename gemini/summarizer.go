// Package gemini provides a content summarizer backed by Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/linkdrop"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxContentChars caps the content sent to the model. Reader output for
// long articles can run to hundreds of kilobytes; a summary only needs
// the head of the piece.
const maxContentChars = 24_000

// Ensure Summarizer implements linkdrop.Summarizer at compile time.
var _ linkdrop.Summarizer = (*Summarizer)(nil)

// Summarizer implements linkdrop.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize produces a short description of extracted page content.
func (s *Summarizer) Summarize(ctx context.Context, title, content string) (string, error) {
	if content == "" {
		return "", linkdrop.Errorf(linkdrop.EINVALID, "content required")
	}

	prompt := BuildSummaryPrompt(title, content)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", linkdrop.Errorf(linkdrop.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize saved web content. Write two or three plain sentences describing what the piece is about. No preamble, no markdown, no quotes around the summary.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildSummaryPrompt builds the user prompt containing the content to
// summarize.
func BuildSummaryPrompt(title, content string) string {
	if len(content) > maxContentChars {
		content = content[:maxContentChars]
	}

	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n\n", content)
	sb.WriteString("Summarize this content.")
	return sb.String()
}
