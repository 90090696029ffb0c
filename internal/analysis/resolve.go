package analysis

// Default sentinels for fields the model could not determine.
const (
	UnknownValue        = "unknown"
	NoDescription       = "No description available"
	NoHistoricalContext = "No historical context available"
)

// Alias lists for each logical output field. The upstream model is
// non-deterministic about key names, so every field is probed under all the
// names it has been observed to use, in priority order.
var (
	YearAliases = []string{
		"year first released", "year", "release_year", "mint_year",
		"first_released", "issued_year",
	}
	CountryAliases = []string{
		"country", "nation", "origin", "issuing_country",
	}
	DenominationAliases = []string{
		"denomination", "value", "face_value", "coin_value", "monetary_value",
	}
	CompositionAliases = []string{
		"composition", "material", "metal", "alloy", "composition_material",
	}
	CollectorValueAliases = []string{
		"value", "collector_value", "market_value", "estimated_value", "worth",
	}
	RarityAliases = []string{
		"rarity", "scarcity", "availability", "rarity_level",
	}
	DescriptionAliases = []string{
		"description", "description_text", "coin_description", "details",
	}
	HistoricalContextAliases = []string{
		"historical_context", "history", "historical_background", "context",
	}
)

// Keys collected into technical_details when the model does not provide an
// other_details object of its own.
var technicalKeys = []string{"mint_mark", "diameter_mm", "weight", "thickness", "edge_type"}

// ResolveField returns the value of the first alias present in data with an
// acceptable value. A value is acceptable when it is non-empty and not the
// literal "unknown"/"Unknown" sentinel; an alias holding an unacceptable
// value does not short-circuit the scan. Non-object data resolves to the
// default immediately.
func ResolveField(data interface{}, aliases []string, def string) interface{} {
	obj, ok := data.(map[string]interface{})
	if !ok {
		return def
	}
	for _, name := range aliases {
		if value, present := obj[name]; present && acceptable(value) {
			return value
		}
	}
	return def
}

// TechnicalDetails returns the model's other_details object verbatim when it
// is an object, and otherwise collects the known technical keys found at the
// top level. Always returns a non-nil map.
func TechnicalDetails(data interface{}) map[string]interface{} {
	details := map[string]interface{}{}
	obj, ok := data.(map[string]interface{})
	if !ok {
		return details
	}
	if other, ok := obj["other_details"].(map[string]interface{}); ok {
		return other
	}
	for _, key := range technicalKeys {
		if value, present := obj[key]; present {
			details[key] = value
		}
	}
	return details
}

// acceptable mirrors the truthiness rules the contract depends on: nil,
// empty strings, empty collections, zero numbers, false, and the two
// "unknown" sentinel spellings are all skipped.
func acceptable(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != "" && v != "unknown" && v != "Unknown"
	case bool:
		return v
	case float64:
		return v != 0
	case []interface{}:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	default:
		return true
	}
}
