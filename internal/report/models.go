// Package report defines the input records produced by the external
// conformance harness and the loaders that read them. Records are read once
// and never mutated.
package report

// Harness status values shared by extension events and scenario results.
const (
	StatusPass  = "pass"
	StatusFail  = "fail"
	StatusSkip  = "skip"
	StatusError = "error"
)

// ExtensionSummary is the extension conformance summary document
// (conformance_report.json).
type ExtensionSummary struct {
	Failures []ExtensionFailure `json:"failures"`
}

// ExtensionFailure is one entry of the summary's failures list.
type ExtensionFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// ExtensionEvent is one line of the extension events stream
// (conformance_events.jsonl), one record per extension under test.
type ExtensionEvent struct {
	ID                  string `json:"id"`
	Status              string `json:"status"`
	Tier                int    `json:"tier"`
	CommandsRegistered  int    `json:"commands_registered"`
	FlagsRegistered     int    `json:"flags_registered"`
	ToolsRegistered     int    `json:"tools_registered"`
	ProvidersRegistered int    `json:"providers_registered"`
	DurationMs          int64  `json:"duration_ms"`
	FailureReason       string `json:"failure_reason"`
}

// ScenarioSummary is the scenario conformance summary document
// (scenario_conformance.json).
type ScenarioSummary struct {
	Results []ScenarioResult `json:"results"`
}

// ScenarioResult is one executed scenario. ExtensionID references an
// extension by identifier; the reference is not validated for existence.
type ScenarioResult struct {
	ScenarioID  string   `json:"scenario_id"`
	ExtensionID string   `json:"extension_id"`
	Kind        string   `json:"kind"`
	Summary     string   `json:"summary"`
	Status      string   `json:"status"`
	SourceTier  string   `json:"source_tier"`
	RuntimeTier string   `json:"runtime_tier"`
	Diffs       []string `json:"diffs"`
	Error       string   `json:"error"`
	SkipReason  string   `json:"skip_reason"`
	DurationMs  int64    `json:"duration_ms"`
}
