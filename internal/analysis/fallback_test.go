package analysis

import (
	"testing"

	"go-coin-analyzer/pkg/models"
)

func unknownReport() *models.CoinReport {
	return BuildReport(map[string]interface{}{}, "gpt-4o", "coin.jpg", 1024)
}

func TestEnhance_CountryAndDenomination(t *testing.T) {
	report := unknownReport()

	Enhance("This is a French Republic coin, 1 euro", report)

	if report.Analysis.BasicInfo.Country != "France" {
		t.Errorf("Expected country France, got %v", report.Analysis.BasicInfo.Country)
	}
	if report.Analysis.BasicInfo.Denomination != "1 euro" {
		t.Errorf("Expected denomination 1 euro, got %v", report.Analysis.BasicInfo.Denomination)
	}
}

func TestEnhance_FirstMatchWinsInTableOrder(t *testing.T) {
	report := unknownReport()

	// Both france and germany keywords appear; france comes first in the table.
	Enhance("a german coin found in france", report)

	if report.Analysis.BasicInfo.Country != "France" {
		t.Errorf("Expected France by table order, got %v", report.Analysis.BasicInfo.Country)
	}
}

func TestEnhance_TitleCasesCanonicalName(t *testing.T) {
	report := unknownReport()

	Enhance("a quarter from the united states", report)

	if report.Analysis.BasicInfo.Country != "Usa" {
		t.Errorf("Expected Usa (title-cased canonical), got %v", report.Analysis.BasicInfo.Country)
	}
	if report.Analysis.BasicInfo.Denomination != "25 cents" {
		t.Errorf("Expected 25 cents for quarter, got %v", report.Analysis.BasicInfo.Denomination)
	}
}

func TestEnhance_CompositionCollectsAllMatchesInTableOrder(t *testing.T) {
	report := unknownReport()

	// Text order is zinc before copper; output order follows the table.
	Enhance("struck in zinc with a copper plating", report)

	if report.Analysis.BasicInfo.Composition != "copper, zinc" {
		t.Errorf("Expected composition in table order, got %v", report.Analysis.BasicInfo.Composition)
	}
}

func TestEnhance_CompositionOverwritesPriorValue(t *testing.T) {
	report := unknownReport()
	report.Analysis.BasicInfo.Composition = "something structured"

	Enhance("pure silver", report)

	if report.Analysis.BasicInfo.Composition != "silver" {
		t.Errorf("Expected composition overwrite, got %v", report.Analysis.BasicInfo.Composition)
	}
}

func TestEnhance_NoMatchLeavesFieldsUnchanged(t *testing.T) {
	report := unknownReport()

	Enhance("completely unrelated text", report)

	if report.Analysis.BasicInfo.Country != UnknownValue {
		t.Errorf("Expected country unchanged, got %v", report.Analysis.BasicInfo.Country)
	}
	if report.Analysis.BasicInfo.Denomination != UnknownValue {
		t.Errorf("Expected denomination unchanged, got %v", report.Analysis.BasicInfo.Denomination)
	}
	if report.Analysis.BasicInfo.Composition != UnknownValue {
		t.Errorf("Expected composition unchanged, got %v", report.Analysis.BasicInfo.Composition)
	}
}

func TestNeedsTextFallback(t *testing.T) {
	report := unknownReport()
	if !NeedsTextFallback(report) {
		t.Error("Expected fallback needed when both fields are unknown")
	}

	report.Analysis.BasicInfo.Country = "Japan"
	if NeedsTextFallback(report) {
		t.Error("Expected no fallback once country is resolved")
	}
}
