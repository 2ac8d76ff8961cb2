// Package gemini implements question answering using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/wikidex/wikidex"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements wikidex.Asker at compile time.
var _ wikidex.Asker = (*Asker)(nil)

// Asker implements wikidex.Asker using Google Gemini. The most
// relevant stored records are selected by keyword overlap and passed
// to the model as context.
type Asker struct {
	client  *genai.Client
	records wikidex.RecordService
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, records wikidex.RecordService) *Asker {
	return &Asker{client: client, records: records}
}

// Ask answers a natural language question using the stored wiki content.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", wikidex.Errorf(wikidex.EINVALID, "question required")
	}

	recs, err := a.records.FindRecords(ctx, wikidex.RecordFilter{})
	if err != nil {
		return "", err
	}
	if len(recs) == 0 {
		return "", wikidex.Errorf(wikidex.ENOTFOUND, "no wiki records available")
	}

	prompt := BuildUserPrompt(recs, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", wikidex.Errorf(wikidex.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about the contents of a wiki. Answer based only on the wiki content provided. If the answer is not in the wiki content, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the relevant wiki
// content and the question. Record selection and truncation follow the
// shared context sizing rules.
func BuildUserPrompt(recs []*wikidex.Record, question string) string {
	var sb strings.Builder
	sb.WriteString("<wiki>\n")
	sb.WriteString(wikidex.BuildContext(recs, question))
	sb.WriteString("\n</wiki>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
