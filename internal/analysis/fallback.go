package analysis

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go-coin-analyzer/pkg/models"
)

// keywordEntry pairs a canonical output string with the phrases that imply
// it. Tables are ordered slices rather than maps: table order is the
// tie-break when several entries match.
type keywordEntry struct {
	canonical string
	keywords  []string
}

var countryTable = []keywordEntry{
	{"france", []string{"france", "french", "republique francaise", "république française"}},
	{"usa", []string{"united states", "usa", "us", "american"}},
	{"uk", []string{"united kingdom", "uk", "britain", "british", "england"}},
	{"germany", []string{"germany", "german", "deutschland"}},
	{"italy", []string{"italy", "italian", "italia"}},
	{"spain", []string{"spain", "spanish", "españa"}},
	{"canada", []string{"canada", "canadian"}},
	{"australia", []string{"australia", "australian"}},
	{"japan", []string{"japan", "japanese", "nihon"}},
	{"china", []string{"china", "chinese", "zhongguo"}},
}

var denominationTable = []keywordEntry{
	{"1 cent", []string{"1 cent", "one cent", "penny"}},
	{"5 cents", []string{"5 cents", "five cents", "nickel"}},
	{"10 cents", []string{"10 cents", "ten cents", "dime"}},
	{"25 cents", []string{"25 cents", "quarter", "twenty-five cents"}},
	{"50 cents", []string{"50 cents", "half dollar", "fifty cents"}},
	{"1 dollar", []string{"1 dollar", "one dollar", "dollar coin"}},
	{"1 euro", []string{"1 euro", "one euro"}},
	{"2 euros", []string{"2 euros", "two euros"}},
	{"5 euros", []string{"5 euros", "five euros"}},
	{"10 euros", []string{"10 euros", "ten euros"}},
	{"20 euros", []string{"20 euros", "twenty euros"}},
	{"50 euros", []string{"50 euros", "fifty euros"}},
	{"1 pound", []string{"1 pound", "one pound", "pound sterling"}},
	{"2 pounds", []string{"2 pounds", "two pounds"}},
	{"1 yen", []string{"1 yen", "one yen"}},
	{"5 yen", []string{"5 yen", "five yen"}},
	{"10 yen", []string{"10 yen", "ten yen"}},
	{"50 yen", []string{"50 yen", "fifty yen"}},
	{"100 yen", []string{"100 yen", "hundred yen"}},
}

var compositionTable = []keywordEntry{
	{"copper", []string{"copper", "cu"}},
	{"bronze", []string{"bronze"}},
	{"brass", []string{"brass"}},
	{"silver", []string{"silver", "ag"}},
	{"gold", []string{"gold", "au"}},
	{"nickel", []string{"nickel", "ni"}},
	{"zinc", []string{"zinc", "zn"}},
	{"aluminum", []string{"aluminum", "aluminium", "al"}},
	{"steel", []string{"steel", "iron"}},
}

var titleCaser = cases.Title(language.English)

// Enhance re-scans the raw completion text for country, denomination and
// composition keywords, overwriting the report fields on a match. It is the
// last resort when structured resolution produced nothing usable, so it is
// only called when both country and denomination are still "unknown".
//
// Country and denomination stop at the first matching table entry;
// composition collects every matching metal, joined in table order.
func Enhance(rawText string, report *models.CoinReport) {
	textLower := strings.ToLower(rawText)

	for _, entry := range countryTable {
		if containsAny(textLower, entry.keywords) {
			report.Analysis.BasicInfo.Country = titleCaser.String(entry.canonical)
			break
		}
	}

	for _, entry := range denominationTable {
		if containsAny(textLower, entry.keywords) {
			report.Analysis.BasicInfo.Denomination = entry.canonical
			break
		}
	}

	var metals []string
	for _, entry := range compositionTable {
		if containsAny(textLower, entry.keywords) {
			metals = append(metals, entry.canonical)
		}
	}
	if len(metals) > 0 {
		report.Analysis.BasicInfo.Composition = strings.Join(metals, ", ")
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
