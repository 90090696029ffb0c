package analysis

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalize_JSONFencedBlock(t *testing.T) {
	text := "Here is the analysis you asked for:\n```json\n{\"country\": \"USA\", \"year\": \"1975\"}\n```\nLet me know if you need more."

	result := Normalize(text)

	obj, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected object, got %T", result)
	}
	if obj["country"] != "USA" {
		t.Errorf("Expected country USA, got %v", obj["country"])
	}
	if obj["year"] != "1975" {
		t.Errorf("Expected year 1975, got %v", obj["year"])
	}
}

func TestNormalize_GenericFencedBlock(t *testing.T) {
	text := "```\n{\"denomination\": \"1 cent\"}\n```"

	result := Normalize(text)

	obj, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected object, got %T", result)
	}
	if obj["denomination"] != "1 cent" {
		t.Errorf("Expected denomination, got %v", obj["denomination"])
	}
}

func TestNormalize_MalformedFenceFallsThrough(t *testing.T) {
	// The fence content does not parse, but a brace span later in the text does.
	text := "```json\nnot json at all\n``` trailing {\"country\": \"Japan\"}"

	result := Normalize(text)

	obj, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected object, got %T", result)
	}
	if obj["country"] != "Japan" {
		t.Errorf("Expected brace-span extraction to win, got %v", result)
	}
}

func TestNormalize_BraceSpanInProse(t *testing.T) {
	text := `The coin appears to be French. {"country": "France", "denomination": "1 euro"} Hope that helps!`

	result := Normalize(text)

	obj, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected object, got %T", result)
	}
	if obj["country"] != "France" {
		t.Errorf("Expected country France, got %v", obj["country"])
	}
}

func TestNormalize_GreedySpanSwallowsTwoObjects(t *testing.T) {
	// The span runs from the first "{" to the last "}", which here glues two
	// objects into invalid JSON; the raw wrapper is the end of the cascade.
	text := `{"a": 1} and also {"b": 2}`

	result := Normalize(text)

	obj, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected object, got %T", result)
	}
	if obj["raw"] != text {
		t.Errorf("Expected raw wrapper, got %v", result)
	}
}

func TestNormalize_DirectParse(t *testing.T) {
	text := "  {\"rarity\": \"common\"}  "

	result := Normalize(text)

	obj, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected object, got %T", result)
	}
	if obj["rarity"] != "common" {
		t.Errorf("Expected rarity common, got %v", obj["rarity"])
	}
}

func TestNormalize_NoJSONReturnsRawWrapper(t *testing.T) {
	result := Normalize("no json here")

	expected := map[string]interface{}{"raw": "no json here"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestNormalize_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"{",
		"}",
		"}{",
		"{{{{",
		"```json```",
		"``````",
		"{\"unterminated\": ",
		"\x00\xff garbage",
	}
	for _, input := range inputs {
		result := Normalize(input)
		if result == nil {
			t.Errorf("Normalize(%q) returned nil", input)
		}
	}
}

func TestNormalize_RoundTripStability(t *testing.T) {
	text := `{"country": "Canada", "other_details": {"mint_mark": "W"}}`

	first := Normalize(text)
	serialized, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	second := Normalize(string(serialized))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Round trip changed the value: %v vs %v", first, second)
	}
}
