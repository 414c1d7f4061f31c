package inventory

import (
	"encoding/json"
	"strings"
	"testing"

	"extinv/internal/cause"
)

func TestTaxonomyCountsMarshalOrder(t *testing.T) {
	tc := NewTaxonomyCounts(map[cause.Code]int{
		cause.MockGap:          5,
		cause.ManifestMismatch: 2,
	})

	data, err := json.Marshal(tc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := string(data)

	// Keys follow taxonomy order, not count or alphabetical order.
	var lastIdx = -1
	for _, d := range cause.Taxonomy() {
		idx := strings.Index(out, `"`+string(d.Code)+`"`)
		if idx < 0 {
			t.Fatalf("expected %q in output, got %s", d.Code, out)
		}
		if idx < lastIdx {
			t.Fatalf("taxonomy order violated at %q:\n%s", d.Code, out)
		}
		lastIdx = idx
	}

	if !strings.Contains(out, `"count":5`) || !strings.Contains(out, `"count":2`) {
		t.Errorf("expected annotated counts, got %s", out)
	}
	if !strings.Contains(out, `"remediation"`) || !strings.Contains(out, `"severity"`) {
		t.Errorf("expected full descriptors, got %s", out)
	}
}

func TestDistributionOrderAndMarshal(t *testing.T) {
	d := NewDistribution(map[cause.Code]int{
		cause.AssertionGap:     2,
		cause.MockGap:          5,
		cause.RuntimeError:     2,
		cause.ManifestMismatch: 7,
	})

	expected := []CauseCount{
		{cause.ManifestMismatch, 7},
		{cause.MockGap, 5},
		{cause.AssertionGap, 2}, // ties break ascending by code
		{cause.RuntimeError, 2},
	}
	if len(d) != len(expected) {
		t.Fatalf("expected %d buckets, got %d", len(expected), len(d))
	}
	for i, e := range expected {
		if d[i] != e {
			t.Errorf("bucket %d: expected %+v, got %+v", i, e, d[i])
		}
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"manifest_mismatch":7,"mock_gap":5,"assertion_gap":2,"runtime_error":2}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestDistributionMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(NewDistribution(nil))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("expected {}, got %s", data)
	}
}

func TestEntryMarshalNulls(t *testing.T) {
	entry := ExtensionEntry{
		ID:     "weather",
		Type:   "extension",
		Status: StatusPass,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"cause_code":null`) {
		t.Errorf("expected explicit null cause_code, got %s", out)
	}
	if !strings.Contains(out, `"cause_detail":null`) {
		t.Errorf("expected explicit null cause_detail, got %s", out)
	}
	if !strings.Contains(out, `"registrations":{"commands":0,"flags":0,"tools":0,"providers":0}`) {
		t.Errorf("expected zero registrations block, got %s", out)
	}
}

func TestDocumentKeyOrder(t *testing.T) {
	doc := buildFixture(t)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := string(data)

	// Top-level keys sit at two-space indent; "summary" holds nested
	// "extensions"/"scenarios" keys at deeper indents, so anchor on the
	// newline + indent prefix.
	keys := []string{
		"schema",
		"generated_at",
		"summary",
		"cause_taxonomy",
		"cause_distribution",
		"extensions",
		"scenarios",
		"regression_thresholds",
	}
	lastIdx := -1
	for _, key := range keys {
		anchor := "\n  \"" + key + "\":"
		idx := strings.Index(out, anchor)
		if idx < 0 {
			t.Fatalf("expected top-level key %q in document:\n%s", key, out)
		}
		if idx < lastIdx {
			t.Fatalf("document key order violated at %q", key)
		}
		lastIdx = idx
	}

	if !strings.Contains(out, `"schema": "pi.ext.inventory.v1"`) {
		t.Errorf("expected schema tag, got:\n%s", out)
	}
	if !strings.Contains(out, `"max_new_failures": 3`) {
		t.Errorf("expected thresholds block, got:\n%s", out)
	}
}

func TestDocumentDeterministic(t *testing.T) {
	// Same inputs, same timestamp: byte-identical output.
	first, err := json.MarshalIndent(buildFixture(t), "", "  ")
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	second, err := json.MarshalIndent(buildFixture(t), "", "  ")
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("document output is not deterministic across reruns")
	}
}
