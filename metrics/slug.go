// Package metrics turns a raw run payload into display-ready metric records:
// slug derivation, labeling, the capped summary list, full-scan lookup and
// heuristic value formatting.
package metrics

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the identifier used for lookup and routing from a raw
// payload key: lowercase, runs of non-alphanumeric characters become a
// single underscore. "EPS" -> "eps", "Debt-to-Equity" -> "debt_to_equity".
func Slugify(key string) string {
	s := strings.ToLower(key)
	s = nonAlnum.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

var labelOverrides = map[string]string{
	"eps":            "Earnings per Share (EPS)",
	"pe_ratio":       "Price / Earnings (P/E Ratio)",
	"roa":            "Return on Assets (ROA)",
	"pb_ratio":       "Price / Book (P/B Ratio)",
	"roe":            "Return on Equity (ROE)",
	"debt_to_equity": "Debt-to-Equity",
	"market_cap":     "Market Capitalization",
	"price_to_sales": "Price / Sales (P/S Ratio)",
}

// Short codes kept fully upper-cased by the title-case fallback.
var acronyms = map[string]bool{
	"EPS":    true,
	"PE":     true,
	"P/E":    true,
	"PS":     true,
	"ROE":    true,
	"ROA":    true,
	"TTM":    true,
	"FCF":    true,
	"EBITDA": true,
}

var separators = regexp.MustCompile(`[_-]+`)

// Label resolves the human-readable title for a slug. Known metrics come
// from the override table, everything else is title-cased.
func Label(slug string) string {
	if label, ok := labelOverrides[slug]; ok {
		return label
	}
	return titleCase(slug)
}

func titleCase(key string) string {
	s := strings.TrimSpace(separators.ReplaceAllString(key, " "))
	words := strings.Fields(s)
	for i, w := range words {
		if acronyms[strings.ToUpper(w)] {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
