package cause

import (
	"strings"

	"extinv/internal/report"
)

// Assertion-kind markers the harness embeds in diff text. This vocabulary is
// an external, versioned interface: if the harness renames an assertion
// kind, update it here, or the affected scenarios fall through to the
// AssertionGap default.
const (
	diffUIStatus        = "ui_status"
	diffUINotify        = "ui_notify"
	diffExecCalled      = "exec_called"
	diffReturnsContains = "returns_contains"
	diffContentContains = "content_contains"
)

// ClassifyScenario maps a failed scenario to a cause code. An execution
// error is judged first; otherwise the concatenated diff text is inspected
// for assertion-kind markers. Total: anything unrecognized is AssertionGap.
func ClassifyScenario(result report.ScenarioResult) Code {
	if result.Error != "" {
		if strings.Contains(result.Error, "No image data") || strings.Contains(strings.ToLower(result.Error), "parse") {
			return VCRStubGap
		}
		return MockGap
	}

	diffText := strings.Join(result.Diffs, " ")
	if strings.Contains(diffText, diffUIStatus) || strings.Contains(diffText, diffUINotify) {
		return MockGap
	}
	if strings.Contains(diffText, diffExecCalled) {
		return MockGap
	}
	if strings.Contains(diffText, diffReturnsContains) || strings.Contains(diffText, diffContentContains) {
		return AssertionGap
	}

	return AssertionGap
}
