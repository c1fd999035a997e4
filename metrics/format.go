package metrics

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder rendered for null/undefined values.
const Placeholder = "—"

const maxDisplayLen = 120

var printer = message.NewPrinter(language.AmericanEnglish)

// Explicit formatters by slug. A registered formatter is authoritative and
// skips the keyword heuristics.
var formatters = map[string]func(v interface{}) string{
	"eps":            plainNumber,
	"pe_ratio":       plainNumber,
	"pb_ratio":       plainNumber,
	"price_to_sales": plainNumber,

	"roa":            percentValue,
	"roe":            percentValue,
	"debt_to_equity": percentValue,

	"market_cap": compactMoney,
}

// Keyword heuristics for numbers without an explicit formatter, evaluated
// top to bottom. First match wins.
var heuristics = []struct {
	pattern *regexp.Regexp
	format  func(v float64) string
}{
	{
		regexp.MustCompile(`(?i)(percent|percentage|margin|growth|yoy|qoq|rate|yield)`),
		formatPercent,
	},
	{
		regexp.MustCompile(`(?i)(price|revenue|income|profit|cap|cash|debt|ebit|ebitda|valuation|sales|cost|opex|fcf|dividend)`),
		func(v float64) string { return formatMoney(v, "USD", math.Abs(v) >= 1_000_000) },
	},
	{
		regexp.MustCompile(`(?i)(count|volume|shares|documents|items|contracts|trades)`),
		func(v float64) string { return formatNumber(v, 2, math.Abs(v) >= 10_000) },
	},
}

// FormatValue renders a raw metric value as a display string. It never
// fails: anything it cannot classify degrades to a truncated JSON form so
// display survives unexpected backend payload shapes.
func FormatValue(v interface{}, slug string) string {
	if v == nil {
		return Placeholder
	}
	if format, ok := formatters[slug]; ok {
		return format(v)
	}
	if n, ok := toFloat(v); ok && isFinite(n) {
		for _, h := range heuristics {
			if h.pattern.MatchString(slug) {
				return h.format(n)
			}
		}
		digits := 2
		if math.Abs(n) < 1 {
			digits = 4
		}
		return formatNumber(n, digits, false)
	}
	if s, ok := v.(string); ok {
		if t, ok := parseDate(s); ok {
			return t.Format("1/2/2006, 3:04:05 PM")
		}
		return truncate(s, maxDisplayLen)
	}
	return truncateJSON(v)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func plainNumber(v interface{}) string {
	n, ok := toFloat(v)
	if !ok || !isFinite(n) {
		return fmt.Sprint(v)
	}
	return formatNumber(n, 2, false)
}

func percentValue(v interface{}) string {
	n, ok := toFloat(v)
	if !ok || !isFinite(n) {
		return fmt.Sprint(v)
	}
	return formatPercent(n)
}

func compactMoney(v interface{}) string {
	n, ok := toFloat(v)
	if !ok || !isFinite(n) {
		return fmt.Sprint(v)
	}
	return formatMoney(n, "USD", true)
}

func formatNumber(v float64, maxFrac int, compact bool) string {
	if compact {
		return compactNumber(v, maxFrac)
	}
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFrac)))
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

func formatMoney(v float64, currency string, compact bool) string {
	digits := 2
	if math.Abs(v) < 1 {
		digits = 4
	}
	symbol := currencySymbols[currency]
	if compact {
		return symbol + compactNumber(v, digits)
	}
	return symbol + formatNumber(v, digits, false)
}

// formatPercent treats magnitudes up to 1.0001 as ratios and scales them to
// percent; larger values are assumed to already be percentages. The 1.0001
// threshold is load-bearing for metrics like a 100% rate stored as 1.0.
func formatPercent(v float64) string {
	pct := v
	if math.Abs(v) <= 1.0001 {
		pct = v * 100
	}
	digits := 0
	switch {
	case math.Abs(pct) < 1:
		digits = 2
	case math.Abs(pct) < 10:
		digits = 1
	}
	return strconv.FormatFloat(pct, 'f', digits, 64) + "%"
}

var compactScales = []struct {
	value  float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

func compactNumber(v float64, maxFrac int) string {
	abs := math.Abs(v)
	for _, scale := range compactScales {
		if abs >= scale.value {
			return trimZeros(strconv.FormatFloat(v/scale.value, 'f', maxFrac, 64)) + scale.suffix
		}
	}
	return trimZeros(strconv.FormatFloat(v, 'f', maxFrac, 64))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate accepts ISO-ish strings only; bare words and numbers fall
// through to plain string rendering.
func parseDate(s string) (time.Time, bool) {
	if len(s) < 8 {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "…"
}

func truncateJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	s := string(data)
	runes := []rune(s)
	if len(runes) <= maxDisplayLen {
		return s
	}
	return string(runes[:maxDisplayLen-1]) + "…"
}
