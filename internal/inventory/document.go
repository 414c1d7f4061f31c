package inventory

import (
	"bytes"
	"encoding/json"
	"sort"

	"extinv/internal/cause"
	"extinv/internal/config"
)

// Schema tags the inventory document format.
const Schema = "pi.ext.inventory.v1"

// Status is the resolved tri-state of an inventory entry.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusNA   Status = "N-A"
)

// Registrations counts what an extension registered during load.
type Registrations struct {
	Commands  int `json:"commands"`
	Flags     int `json:"flags"`
	Tools     int `json:"tools"`
	Providers int `json:"providers"`
}

// ExtensionEntry is the unified inventory record for one extension.
// CauseCode is non-nil exactly when Status is FAIL; CauseDetail is non-nil
// for every FAIL (possibly empty) and carries the skip reason for N-A rows
// when one exists.
type ExtensionEntry struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Tier          int           `json:"tier"`
	Status        Status        `json:"status"`
	CauseCode     *cause.Code   `json:"cause_code"`
	CauseDetail   *string       `json:"cause_detail"`
	Registrations Registrations `json:"registrations"`
	DurationMs    int64         `json:"duration_ms"`
}

// ScenarioEntry is the unified inventory record for one scenario. The same
// CauseCode/CauseDetail contract as ExtensionEntry applies.
type ScenarioEntry struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	ExtensionID string      `json:"extension_id"`
	Kind        string      `json:"kind"`
	Summary     string      `json:"summary"`
	Status      Status      `json:"status"`
	SourceTier  string      `json:"source_tier"`
	RuntimeTier string      `json:"runtime_tier"`
	CauseCode   *cause.Code `json:"cause_code"`
	CauseDetail *string     `json:"cause_detail"`
	DurationMs  int64       `json:"duration_ms"`
}

// EntitySummary holds per-entity-type totals. N-A entries are excluded from
// the pass rate on both sides.
type EntitySummary struct {
	Total       int     `json:"total"`
	Pass        int     `json:"pass"`
	Fail        int     `json:"fail"`
	NA          int     `json:"na"`
	PassRatePct float64 `json:"pass_rate_pct"`
}

type Summary struct {
	Extensions EntitySummary `json:"extensions"`
	Scenarios  EntitySummary `json:"scenarios"`
}

// Document is the consolidated inventory. Field order here is the key order
// of the emitted JSON.
type Document struct {
	Schema               string            `json:"schema"`
	GeneratedAt          string            `json:"generated_at"`
	Summary              Summary           `json:"summary"`
	CauseTaxonomy        TaxonomyCounts    `json:"cause_taxonomy"`
	CauseDistribution    Distribution      `json:"cause_distribution"`
	Extensions           []ExtensionEntry  `json:"extensions"`
	Scenarios            []ScenarioEntry   `json:"scenarios"`
	RegressionThresholds config.Thresholds `json:"regression_thresholds"`
}

// TaxonomyCounts is the full cause taxonomy annotated with computed
// occurrence counts. It marshals as an object in canonical taxonomy order;
// a plain map would be emitted with sorted keys.
type TaxonomyCounts struct {
	counts map[cause.Code]int
}

func NewTaxonomyCounts(counts map[cause.Code]int) TaxonomyCounts {
	return TaxonomyCounts{counts: counts}
}

// Count returns the occurrence count recorded for a code.
func (t TaxonomyCounts) Count(code cause.Code) int {
	return t.counts[code]
}

func (t TaxonomyCounts) MarshalJSON() ([]byte, error) {
	type annotated struct {
		cause.Descriptor
		Count int `json:"count"`
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range cause.Taxonomy() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(d.Code))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(annotated{Descriptor: d, Count: t.counts[d.Code]})
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CauseCount is one histogram bucket.
type CauseCount struct {
	Code  cause.Code
	Count int
}

// Distribution is the cause-code histogram across all entries, ordered by
// count descending, then code ascending so reruns are byte-identical. It
// marshals as a JSON object.
type Distribution []CauseCount

// NewDistribution sorts a count map into a Distribution.
func NewDistribution(counts map[cause.Code]int) Distribution {
	d := make(Distribution, 0, len(counts))
	for code, n := range counts {
		d = append(d, CauseCount{Code: code, Count: n})
	}
	sort.Slice(d, func(i, j int) bool {
		if d[i].Count != d[j].Count {
			return d[i].Count > d[j].Count
		}
		return d[i].Code < d[j].Code
	})
	return d
}

func (d Distribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cc := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(cc.Code))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(cc.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
