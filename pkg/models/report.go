package models

// CoinReport is the fixed-shape contract returned to callers. Every field is
// always present; fields the model could not determine hold the string
// "unknown" (or a placeholder sentence for the prose fields).
//
// Values inside the report stay interface{} on purpose: the upstream model
// may return years as numbers, composition as a list, and so on, and the
// contract passes those through as-is.
type CoinReport struct {
	Success   bool         `json:"success"`
	Timestamp string       `json:"timestamp"`
	Analysis  CoinAnalysis `json:"coin_analysis"`
	Metadata  Metadata     `json:"metadata"`
}

// CoinAnalysis groups the resolved analysis fields.
type CoinAnalysis struct {
	BasicInfo         BasicInfo              `json:"basic_info"`
	ValueAssessment   ValueAssessment        `json:"value_assessment"`
	Description       interface{}            `json:"description"`
	HistoricalContext interface{}            `json:"historical_context"`
	TechnicalDetails  map[string]interface{} `json:"technical_details"`
}

// BasicInfo holds the identity of the coin.
type BasicInfo struct {
	ReleasedYear interface{} `json:"released_year"`
	Country      interface{} `json:"country"`
	Denomination interface{} `json:"denomination"`
	Composition  interface{} `json:"composition"`
}

// ValueAssessment holds the market-facing fields.
type ValueAssessment struct {
	CollectorValue interface{} `json:"collector_value"`
	Rarity         interface{} `json:"rarity"`
}

// Metadata describes how the report was produced.
type Metadata struct {
	ModelUsed      string `json:"model_used"`
	ImageFilename  string `json:"image_filename"`
	ImageSizeBytes int    `json:"image_size_bytes"`
	ProcessingTime string `json:"processing_time"`
}

// ErrorResponse is the error body returned for failed requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
