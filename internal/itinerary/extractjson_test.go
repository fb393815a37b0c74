package itinerary

import (
	"encoding/json"
	"testing"
)

func TestExtractJSONObjectProseWrapped(t *testing.T) {
	text := "¡Claro! Aquí tienes tu itinerario:\n\n{\"destination\": \"Lisboa\", \"duration\": \"4 días\"}\n\nEspero que lo disfrutes."

	raw, ok := ExtractJSONObject(text)
	if !ok {
		t.Fatal("expected to find a JSON object")
	}

	var it Itinerary
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		t.Fatalf("extracted block is not valid JSON: %v", err)
	}
	if it.Destination != "Lisboa" {
		t.Fatalf("unexpected destination: %q", it.Destination)
	}
}

func TestExtractJSONObjectMarkdownFence(t *testing.T) {
	text := "```json\n{\"destination\": \"Tokio\", \"days\": [{\"title\": \"Día 1\"}]}\n```"

	raw, ok := ExtractJSONObject(text)
	if !ok {
		t.Fatal("expected to find a JSON object")
	}
	if raw != `{"destination": "Tokio", "days": [{"title": "Día 1"}]}` {
		t.Fatalf("unexpected extraction: %q", raw)
	}
}

func TestExtractJSONObjectNestedBraces(t *testing.T) {
	text := `prefix {"a": {"b": {"c": 1}}, "d": "x"} suffix {"ignored": true}`

	raw, ok := ExtractJSONObject(text)
	if !ok {
		t.Fatal("expected to find a JSON object")
	}
	if raw != `{"a": {"b": {"c": 1}}, "d": "x"}` {
		t.Fatalf("expected first balanced object only, got %q", raw)
	}
}

func TestExtractJSONObjectBracesInsideStrings(t *testing.T) {
	text := `{"note": "llaves {dentro} de un string", "escape": "comilla \" y barra \\"}`

	raw, ok := ExtractJSONObject(text)
	if !ok {
		t.Fatal("expected to find a JSON object")
	}
	if raw != text {
		t.Fatalf("braces inside strings must not close the object, got %q", raw)
	}
}

func TestExtractJSONObjectNoObject(t *testing.T) {
	if _, ok := ExtractJSONObject("no hay JSON por aquí"); ok {
		t.Fatal("expected no object in plain prose")
	}
	if _, ok := ExtractJSONObject("unbalanced { \"a\": 1"); ok {
		t.Fatal("expected no object for unbalanced braces")
	}
}
