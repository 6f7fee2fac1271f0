// Package pricing implements the vehicle price estimation engine: reference
// price resolution, a depreciation curve, mileage and condition adjustments,
// price-band synthesis, and contract-to-market deviation assessment.
//
// Everything in this package is pure and deterministic: no I/O, no clock
// reads, no shared mutable state. A ReferenceTable is read-only after
// construction and safe for concurrent use.
package pricing

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed msrp.yaml
var msrpYAML []byte

// referenceData is the YAML shape of the packaged reference price file.
type referenceData struct {
	Makes      map[string]map[string]map[int]float64 `yaml:"makes"`
	Categories map[string]float64                    `yaml:"categories"`
}

// ReferenceTable is an immutable MSRP lookup: make → model → year → price,
// plus a body-style keyword fallback table.
type ReferenceTable struct {
	makes      map[string]map[string]map[int]float64
	categories map[string]float64
	// model names per make in sorted order, so fuzzy matching is deterministic
	modelOrder map[string][]string
}

// categoryDefaultKey is the fallback entry used when no body-style keyword
// matches or no body class is supplied.
const categoryDefaultKey = "default"

// NewReferenceTable builds a table from explicit data. Used by tests to run
// the resolver against small synthetic tables.
func NewReferenceTable(
	makes map[string]map[string]map[int]float64,
	categories map[string]float64,
) *ReferenceTable {
	t := &ReferenceTable{
		makes:      make(map[string]map[string]map[int]float64, len(makes)),
		categories: categories,
		modelOrder: make(map[string][]string, len(makes)),
	}

	for mk, models := range makes {
		key := NormalizeMake(mk)
		normalized := make(map[string]map[int]float64, len(models))
		order := make([]string, 0, len(models))
		for model, years := range models {
			mkey := NormalizeModel(model)
			normalized[mkey] = years
			order = append(order, mkey)
		}
		sort.Strings(order)
		t.makes[key] = normalized
		t.modelOrder[key] = order
	}

	return t
}

// ParseReferenceTable builds a table from YAML bytes in the msrp.yaml shape.
func ParseReferenceTable(data []byte) (*ReferenceTable, error) {
	var raw referenceData
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing reference price data: %w", err)
	}
	if len(raw.Makes) == 0 {
		return nil, fmt.Errorf("reference price data has no makes")
	}
	if _, ok := raw.Categories[categoryDefaultKey]; !ok {
		return nil, fmt.Errorf("reference price data has no default category")
	}
	return NewReferenceTable(raw.Makes, raw.Categories), nil
}

var defaultTable = sync.OnceValue(func() *ReferenceTable {
	t, err := ParseReferenceTable(msrpYAML)
	if err != nil {
		// The embedded data ships with the binary; failing to parse it is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return t
})

// DefaultTable returns the process-wide table seeded from the packaged
// msrp.yaml. It is parsed once and never rewritten.
func DefaultTable() *ReferenceTable {
	return defaultTable()
}

// NormalizeMake canonicalizes a make for lookup: trimmed, uppercased.
func NormalizeMake(make string) string {
	return strings.ToUpper(strings.TrimSpace(make))
}

// NormalizeModel canonicalizes a model for lookup: trimmed, title-cased per
// word so "camry", "CAMRY" and "Camry" all hit the same key.
func NormalizeModel(model string) string {
	words := strings.Fields(strings.TrimSpace(model))
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// titleWord title-cases a single word, treating hyphenated segments
// separately ("c-class" → "C-Class") and leaving all-caps model codes
// (RAV4, F-150, CR-V, X3) intact. Only words carrying a digit or hyphen
// count as model codes; a plain word like "CAMRY" is still title-cased.
func titleWord(w string) string {
	if w == strings.ToUpper(w) && strings.ContainsAny(w, "0123456789-") {
		return w
	}
	parts := strings.Split(strings.ToLower(w), "-")
	for i, p := range parts {
		runes := []rune(p)
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, "-")
}

// yearsFor returns the year→price map for the given normalized make/model,
// or nil when absent.
func (t *ReferenceTable) yearsFor(makeKey, modelKey string) map[int]float64 {
	models, ok := t.makes[makeKey]
	if !ok {
		return nil
	}
	return models[modelKey]
}

// CategoryPrice returns the typical price for a free-text body-class
// description via case-insensitive substring keyword match, or the default
// entry when bodyClass is empty or nothing matches.
func (t *ReferenceTable) CategoryPrice(bodyClass string) float64 {
	body := strings.ToLower(strings.TrimSpace(bodyClass))
	if body != "" {
		// Sorted iteration keeps the keyword winner deterministic.
		keywords := make([]string, 0, len(t.categories))
		for k := range t.categories {
			if k != categoryDefaultKey {
				keywords = append(keywords, k)
			}
		}
		sort.Strings(keywords)
		for _, kw := range keywords {
			if strings.Contains(body, kw) {
				return t.categories[kw]
			}
		}
	}
	return t.categories[categoryDefaultKey]
}
