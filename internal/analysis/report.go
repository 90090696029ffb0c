package analysis

import (
	"time"

	"go-coin-analyzer/pkg/models"
)

// BuildReport shapes a parsed (possibly partial) model analysis into the
// fixed CoinReport contract. Fields the analysis does not carry under any
// known alias come out as "unknown" sentinels; the report is always complete.
func BuildReport(parsed interface{}, modelUsed, filename string, imageSize int) *models.CoinReport {
	now := time.Now().Format(time.RFC3339)

	return &models.CoinReport{
		Success:   true,
		Timestamp: now,
		Analysis: models.CoinAnalysis{
			BasicInfo: models.BasicInfo{
				ReleasedYear: ResolveField(parsed, YearAliases, UnknownValue),
				Country:      ResolveField(parsed, CountryAliases, UnknownValue),
				Denomination: ResolveField(parsed, DenominationAliases, UnknownValue),
				Composition:  ResolveField(parsed, CompositionAliases, UnknownValue),
			},
			ValueAssessment: models.ValueAssessment{
				CollectorValue: ResolveField(parsed, CollectorValueAliases, UnknownValue),
				Rarity:         ResolveField(parsed, RarityAliases, UnknownValue),
			},
			Description:       ResolveField(parsed, DescriptionAliases, NoDescription),
			HistoricalContext: ResolveField(parsed, HistoricalContextAliases, NoHistoricalContext),
			TechnicalDetails:  TechnicalDetails(parsed),
		},
		Metadata: models.Metadata{
			ModelUsed:      modelUsed,
			ImageFilename:  filename,
			ImageSizeBytes: imageSize,
			ProcessingTime: now,
		},
	}
}

// NeedsTextFallback reports whether the structured pass failed to identify
// the coin, in which case the raw completion text gets a keyword re-scan.
func NeedsTextFallback(report *models.CoinReport) bool {
	return report.Analysis.BasicInfo.Country == UnknownValue &&
		report.Analysis.BasicInfo.Denomination == UnknownValue
}
