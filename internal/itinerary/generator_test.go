package itinerary

import (
	"context"
	"errors"
	"strings"
	"testing"

	llmsdk "github.com/hoangvvo/llm-sdk/sdk-go"

	"github.com/instatrip/backend/internal/videolink"
)

// fakeModel returns a canned answer and records the last prompt it received.
type fakeModel struct {
	answer     string
	err        error
	lastPrompt string
}

func (f *fakeModel) Generate(ctx context.Context, input *llmsdk.LanguageModelInput) (*llmsdk.ModelResponse, error) {
	if len(input.Messages) > 0 && input.Messages[0].UserMessage != nil {
		for _, part := range input.Messages[0].UserMessage.Content {
			if part.TextPart != nil {
				f.lastPrompt = part.TextPart.Text
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llmsdk.ModelResponse{
		Content: []llmsdk.Part{llmsdk.NewTextPart(f.answer)},
	}, nil
}

func TestGeneratePromptEmbedsTranscriptAndPlatform(t *testing.T) {
	model := &fakeModel{answer: `{"destination": "Bali"}`}
	gen := NewGenerator(model)

	ref := videolink.Reference{Platform: videolink.PlatformTikTok}
	it, err := gen.Generate(context.Background(), "playas de Uluwatu y templos", ref)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if it.Destination != "Bali" {
		t.Fatalf("unexpected destination: %q", it.Destination)
	}
	if !strings.Contains(model.lastPrompt, "playas de Uluwatu y templos") {
		t.Fatal("prompt must embed the transcript")
	}
	if !strings.Contains(model.lastPrompt, "tiktok") {
		t.Fatal("prompt must name the platform")
	}
}

func TestGenerateUsesPlaceholderForEmptyTranscript(t *testing.T) {
	model := &fakeModel{answer: `{"destination": "Barcelona"}`}
	gen := NewGenerator(model)

	if _, err := gen.Generate(context.Background(), "", videolink.Reference{Platform: videolink.PlatformInstagram}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(model.lastPrompt, PlaceholderTranscript) {
		t.Fatal("empty transcript must be replaced with the placeholder")
	}
}

func TestGenerateRecoverseWrappedJSON(t *testing.T) {
	model := &fakeModel{answer: "Por supuesto, aquí está:\n```json\n{\"destination\": \"Tokio\", \"duration\": \"5 días\"}\n```\n¡Buen viaje!"}
	gen := NewGenerator(model)

	it, err := gen.Generate(context.Background(), "Shibuya y Asakusa", videolink.Reference{Platform: videolink.PlatformTikTok})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if it.Destination != "Tokio" || it.Duration != "5 días" {
		t.Fatalf("unexpected itinerary: %+v", it)
	}
}

func TestGenerateUnparsableResponse(t *testing.T) {
	model := &fakeModel{answer: "lo siento, no puedo generar un itinerario"}
	gen := NewGenerator(model)

	if _, err := gen.Generate(context.Background(), "texto", videolink.Reference{Platform: videolink.PlatformTikTok}); !errors.Is(err, ErrUnparsableResponse) {
		t.Fatalf("expected ErrUnparsableResponse, got %v", err)
	}
}

func TestGenerateModelError(t *testing.T) {
	model := &fakeModel{err: errors.New("rate limited")}
	gen := NewGenerator(model)

	if _, err := gen.Generate(context.Background(), "texto", videolink.Reference{Platform: videolink.PlatformTikTok}); err == nil {
		t.Fatal("expected error from model failure")
	}
}

func TestParseResponseToleratesUnknownFields(t *testing.T) {
	it, err := ParseResponse(`{"destination": "Roma", "unexpected_field": 42}`)
	if err != nil {
		t.Fatalf("extra fields must be tolerated, got %v", err)
	}
	if it.Destination != "Roma" {
		t.Fatalf("unexpected destination: %q", it.Destination)
	}
}

func TestParseResponseTypeMismatch(t *testing.T) {
	if _, err := ParseResponse(`{"destination": "Roma", "days": "not-a-list"}`); !errors.Is(err, ErrUnparsableResponse) {
		t.Fatalf("expected ErrUnparsableResponse, got %v", err)
	}
}
