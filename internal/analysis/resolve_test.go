package analysis

import (
	"reflect"
	"testing"
)

func TestResolveField(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		aliases  []string
		def      string
		expected interface{}
	}{
		{
			name:     "Second alias matches",
			data:     map[string]interface{}{"year": "1975"},
			aliases:  []string{"year first released", "year"},
			def:      "unknown",
			expected: "1975",
		},
		{
			name:     "Alias order decides between candidates",
			data:     map[string]interface{}{"country": "France", "nation": "Germany"},
			aliases:  []string{"country", "nation"},
			def:      "unknown",
			expected: "France",
		},
		{
			name:     "Sentinel value is skipped",
			data:     map[string]interface{}{"year": "unknown"},
			aliases:  []string{"year"},
			def:      "unknown",
			expected: "unknown",
		},
		{
			name:     "Capitalized sentinel is skipped",
			data:     map[string]interface{}{"rarity": "Unknown"},
			aliases:  []string{"rarity"},
			def:      "unknown",
			expected: "unknown",
		},
		{
			name:     "Sentinel under first alias does not block second",
			data:     map[string]interface{}{"value": "unknown", "worth": "high"},
			aliases:  []string{"value", "worth"},
			def:      "unknown",
			expected: "high",
		},
		{
			name:     "Empty string is skipped",
			data:     map[string]interface{}{"composition": ""},
			aliases:  []string{"composition"},
			def:      "unknown",
			expected: "unknown",
		},
		{
			name:     "Non-object data resolves to default",
			data:     "not an object",
			aliases:  []string{"year", "country"},
			def:      "unknown",
			expected: "unknown",
		},
		{
			name:     "Nil data resolves to default",
			data:     nil,
			aliases:  []string{"year"},
			def:      "unknown",
			expected: "unknown",
		},
		{
			name:     "Numeric value passes through",
			data:     map[string]interface{}{"year": float64(1975)},
			aliases:  []string{"year"},
			def:      "unknown",
			expected: float64(1975),
		},
		{
			name:     "Custom default for prose fields",
			data:     map[string]interface{}{},
			aliases:  DescriptionAliases,
			def:      NoDescription,
			expected: NoDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveField(tt.data, tt.aliases, tt.def)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ResolveField() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTechnicalDetails_OtherDetailsVerbatim(t *testing.T) {
	other := map[string]interface{}{"mint_mark": "D", "anything": "goes"}
	data := map[string]interface{}{
		"other_details": other,
		"diameter_mm":   19.05, // ignored when other_details wins
	}

	got := TechnicalDetails(data)
	if !reflect.DeepEqual(got, other) {
		t.Errorf("Expected other_details verbatim, got %v", got)
	}
}

func TestTechnicalDetails_CollectsKnownKeys(t *testing.T) {
	data := map[string]interface{}{
		"mint_mark":   "S",
		"diameter_mm": 19.05,
		"country":     "USA", // not a technical key
	}

	got := TechnicalDetails(data)
	expected := map[string]interface{}{"mint_mark": "S", "diameter_mm": 19.05}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestTechnicalDetails_NonObject(t *testing.T) {
	got := TechnicalDetails("raw text")
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty map, got %v", got)
	}
}
