package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	llmsdk "github.com/hoangvvo/llm-sdk/sdk-go"

	"github.com/instatrip/backend/internal/videolink"
)

// ErrUnparsableResponse indicates the model answer contained no usable JSON
// document. This is fatal for the request: no itinerary can be returned.
var ErrUnparsableResponse = errors.New("model response contains no parsable itinerary")

const defaultMaxTokens int64 = 4000

// LanguageModel is the subset of the llm-sdk model client used here.
type LanguageModel interface {
	Generate(ctx context.Context, input *llmsdk.LanguageModelInput) (*llmsdk.ModelResponse, error)
}

// Generator turns a transcript into a structured itinerary via a language
// model.
type Generator struct {
	Model     LanguageModel
	MaxTokens int64
}

// NewGenerator constructs a Generator around the provided model.
func NewGenerator(model LanguageModel) *Generator {
	return &Generator{Model: model, MaxTokens: defaultMaxTokens}
}

// Generate builds the prompt, calls the model, and parses its answer.
func (g *Generator) Generate(ctx context.Context, transcript string, ref videolink.Reference) (*Itinerary, error) {
	if g == nil || g.Model == nil {
		return nil, errors.New("language model not configured")
	}

	maxTokens := g.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	prompt := BuildPrompt(transcript, ref)
	sdkMaxTokens := uint32(maxTokens)
	resp, err := g.Model.Generate(ctx, &llmsdk.LanguageModelInput{
		Messages:  []llmsdk.Message{llmsdk.NewUserMessage(llmsdk.NewTextPart(prompt))},
		MaxTokens: &sdkMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	return ParseResponse(responseText(resp))
}

// ParseResponse decodes a model answer into an Itinerary. It first attempts
// a direct parse, then falls back to extracting the first balanced JSON
// object from surrounding prose.
func ParseResponse(text string) (*Itinerary, error) {
	var it Itinerary
	if err := json.Unmarshal([]byte(text), &it); err == nil {
		return &it, nil
	}

	raw, ok := ExtractJSONObject(text)
	if !ok {
		return nil, ErrUnparsableResponse
	}
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}
	return &it, nil
}

func responseText(resp *llmsdk.ModelResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Content {
		if part.TextPart != nil {
			sb.WriteString(part.TextPart.Text)
		}
	}
	return sb.String()
}
