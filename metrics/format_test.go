package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValueNil(t *testing.T) {
	assert.Equal(t, "—", FormatValue(nil, "eps"))
	assert.Equal(t, "—", FormatValue(nil, "anything"))
}

func TestFormatValueExplicitFormatters(t *testing.T) {
	tests := []struct {
		value interface{}
		slug  string
		want  string
	}{
		{6.126, "eps", "6.13"},
		{24.0, "pe_ratio", "24"},
		{3.5, "pb_ratio", "3.5"},
		{0.153, "roe", "15%"},
		{0.0042, "roa", "0.42%"},
		{1.76, "debt_to_equity", "1.8%"},
		{1234567890.0, "market_cap", "$1.23B"},
		{2500000000000.0, "market_cap", "$2.5T"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.value, tt.slug), "FormatValue(%v, %q)", tt.value, tt.slug)
	}
}

func TestPercentRatioThreshold(t *testing.T) {
	// Magnitudes up to 1.0001 are ratios, anything above is already percent.
	assert.Equal(t, "100%", FormatValue(1.0, "roe"))
	assert.Equal(t, "15%", FormatValue(15.0, "roe"))
	assert.Equal(t, "-4.2%", FormatValue(-0.042, "roe"))
}

func TestFormatValueHeuristics(t *testing.T) {
	tests := []struct {
		value interface{}
		slug  string
		want  string
	}{
		// percentage-like keywords
		{0.045, "revenue_growth", "4.5%"},
		{0.62, "gross_margin", "62%"},
		// money-like keywords, compact at >= 1M
		{2500000.0, "total_revenue", "$2.5M"},
		{199.99, "share_price", "$199.99"},
		// count-like keywords, compact at >= 10K
		{1250000.0, "trading_volume", "1.25M"},
		{42.0, "document_count", "42"},
		// no keyword: plain number, 4 digits below 1
		{0.1234567, "misc", "0.1235"},
		{1234.5, "misc", "1,234.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.value, tt.slug), "FormatValue(%v, %q)", tt.value, tt.slug)
	}
}

func TestFormatValueStrings(t *testing.T) {
	assert.Equal(t, "strong buy", FormatValue("strong buy", "recommendation"))

	long := strings.Repeat("x", 150)
	got := FormatValue(long, "notes")
	assert.Equal(t, strings.Repeat("x", 117)+"…", got)

	exact := strings.Repeat("y", 120)
	assert.Equal(t, exact, FormatValue(exact, "notes"))
}

func TestFormatValueDates(t *testing.T) {
	assert.Equal(t, "8/27/2025, 12:00:00 AM", FormatValue("2025-08-27", "report_date"))
	assert.Equal(t, "8/27/2025, 2:30:00 PM", FormatValue("2025-08-27T14:30:00Z", "updated"))
}

func TestFormatValueObjects(t *testing.T) {
	assert.Equal(t, `{"a":1}`, FormatValue(map[string]interface{}{"a": 1}, "misc"))
	assert.Equal(t, `[1,2,3]`, FormatValue([]interface{}{1, 2, 3}, "misc"))

	big := map[string]interface{}{"k": strings.Repeat("z", 200)}
	got := FormatValue(big, "misc")
	assert.Len(t, []rune(got), 120)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestFormatValueNeverPanicsOnOddInput(t *testing.T) {
	assert.NotPanics(t, func() {
		FormatValue(struct{ X int }{1}, "misc")
		FormatValue(true, "misc")
		FormatValue("", "misc")
	})
	// Booleans have no number/string path and degrade to JSON.
	assert.Equal(t, "true", FormatValue(true, "misc"))
}
