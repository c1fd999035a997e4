package metrics

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// DisplayCap is the maximum number of records the summary view shows.
// Entries past the cap are still reachable through Find.
const DisplayCap = 8

// Metric is one derived record: a named value plus the optional narrative
// and source references that came with it.
type Metric struct {
	Key         string      `json:"key"`
	Slug        string      `json:"slug"`
	Label       string      `json:"label"`
	Value       interface{} `json:"value"`
	LLMResponse string      `json:"llm_response,omitempty"`
	Sources     []string    `json:"sources,omitempty"`
}

// mapping resolves the object the metric entries live in: a "results"
// sub-object when present, otherwise the payload itself.
func mapping(payload []byte) gjson.Result {
	root := gjson.ParseBytes(payload)
	if results := root.Get("results"); results.IsObject() {
		return results
	}
	if root.IsObject() {
		return root
	}
	return gjson.Result{}
}

func isMetricEntry(entry gjson.Result) bool {
	return entry.IsObject() && entry.Get("value").Exists()
}

func newMetric(key string, entry gjson.Result) Metric {
	slug := Slugify(key)
	m := Metric{
		Key:         key,
		Slug:        slug,
		Label:       Label(slug),
		Value:       entry.Get("value").Value(),
		LLMResponse: entry.Get("llm_response").String(),
	}
	for _, src := range entry.Get("sources").Array() {
		m.Sources = append(m.Sources, src.String())
	}
	return m
}

// Normalize derives the capped summary list from a raw payload, in payload
// order. Entries that do not look like metrics are dropped silently; a
// payload that is not a mapping yields an empty list. The second return is
// the uncapped candidate count so callers can tell truncation occurred.
func Normalize(payload []byte) ([]Metric, int) {
	entries := mapping(payload)
	if !entries.IsObject() {
		return nil, 0
	}
	var out []Metric
	total := 0
	entries.ForEach(func(key, entry gjson.Result) bool {
		if !isMetricEntry(entry) {
			return true
		}
		total++
		if len(out) < DisplayCap {
			out = append(out, newMetric(key.String(), entry))
		}
		return true
	})
	return out, total
}

// Find locates a metric by slug. It scans the full entry set, not just the
// first DisplayCap entries, so direct navigation works for metrics the
// summary never showed.
func Find(payload []byte, slug string) (Metric, bool) {
	entries := mapping(payload)
	if !entries.IsObject() {
		return Metric{}, false
	}
	var found Metric
	ok := false
	entries.ForEach(func(key, entry gjson.Result) bool {
		if !entry.IsObject() {
			return true
		}
		if Slugify(key.String()) != slug {
			return true
		}
		found = newMetric(key.String(), entry)
		ok = true
		return false
	})
	return found, ok
}

var absoluteURL = regexp.MustCompile(`(?i)^https?://`)

// SourceHref turns a source reference into a followable href: absolute
// http(s) URLs pass through, everything else becomes a rooted path.
func SourceHref(src string) string {
	if src == "" {
		return "#"
	}
	if absoluteURL.MatchString(src) {
		return src
	}
	if strings.HasPrefix(src, "/") {
		return src
	}
	return "/" + src
}
