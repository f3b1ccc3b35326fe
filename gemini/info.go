// Package gemini extracts infos from stored documents with Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/scrape"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure InfoExtractor implements scrape.InfoExtractor at compile time.
var _ scrape.InfoExtractor = (*InfoExtractor)(nil)

// ContentGenerator is the part of the Gemini API used here.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// InfoExtractor implements scrape.InfoExtractor using Google Gemini.
type InfoExtractor struct {
	gen   ContentGenerator
	model string
	focus string
}

// Option configures an InfoExtractor.
type Option func(*InfoExtractor)

// WithModel sets the Gemini model name.
func WithModel(model string) Option {
	return func(e *InfoExtractor) {
		e.model = model
	}
}

// WithFocus narrows extraction to facts about the given topic.
func WithFocus(focus string) Option {
	return func(e *InfoExtractor) {
		e.focus = focus
	}
}

// NewInfoExtractor creates a new InfoExtractor. Pass client.Models as gen.
func NewInfoExtractor(gen ContentGenerator, opts ...Option) *InfoExtractor {
	e := &InfoExtractor{gen: gen, model: DefaultModel}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractInfos asks the model for the facts stated in doc.
// The returned infos carry the document's ID and URL.
func (e *InfoExtractor) ExtractInfos(ctx context.Context, doc *scrape.Document) ([]*scrape.Info, error) {
	if doc == nil || strings.TrimSpace(doc.Content) == "" {
		return nil, scrape.Errorf(scrape.EINVALID, "document content required")
	}

	result, err := e.gen.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(doc)}},
		}},
		BuildConfig(e.focus),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, scrape.Errorf(scrape.EINTERNAL, "gemini returned nil result")
	}

	return ParseInfos(result.Text(), doc)
}

// BuildConfig returns the GenerateContentConfig for info extraction calls.
// The response is constrained to a JSON array of {"content": string} objects.
func BuildConfig(focus string) *genai.GenerateContentConfig {
	temp := float32(0.1)
	instruction := "You extract factual statements from an article. " +
		"Return each distinct fact as one self-contained sentence. " +
		"Use only information stated in the article. Return an empty array if there is nothing worth keeping."
	if focus != "" {
		instruction += " Only keep facts about: " + focus + "."
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"content": {Type: genai.TypeString},
				},
				Required: []string{"content"},
			},
		},
	}
}

// BuildUserPrompt builds the user prompt containing the article.
func BuildUserPrompt(doc *scrape.Document) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "<source>%s</source>\n", doc.URL)
	if doc.Title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", doc.Title)
	}
	if doc.Author != "" {
		fmt.Fprintf(&sb, "<author>%s</author>\n", doc.Author)
	}
	if doc.PublishDate != "" {
		fmt.Fprintf(&sb, "<published>%s</published>\n", doc.PublishDate)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n", doc.Content)
	sb.WriteString("</article>")
	return sb.String()
}

// ParseInfos decodes a model response into infos for doc. Entries with
// blank content are dropped. A response wrapped in a Markdown code fence
// is accepted.
func ParseInfos(text string, doc *scrape.Document) ([]*scrape.Info, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var items []struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, scrape.Errorf(scrape.EINTERNAL, "malformed info response: %v", err)
	}

	infos := make([]*scrape.Info, 0, len(items))
	for _, item := range items {
		content := strings.TrimSpace(item.Content)
		if content == "" {
			continue
		}
		infos = append(infos, &scrape.Info{
			DocumentID: doc.ID,
			URL:        doc.URL,
			Content:    content,
		})
	}
	return infos, nil
}
