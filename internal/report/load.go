package report

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// MissingInputError reports a required input that does not exist, naming the
// upstream harness step that produces it.
type MissingInputError struct {
	Path     string
	Producer string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s not found. Run %s first.", e.Path, e.Producer)
}

// LoadExtensionSummary reads the extension conformance summary. The file is
// required; a missing path is a MissingInputError.
func LoadExtensionSummary(path string) (*ExtensionSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path, Producer: "conformance_full_report"}
		}
		return nil, fmt.Errorf("failed to read extension summary: %w", err)
	}
	var summary ExtensionSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse extension summary %s: %w", path, err)
	}
	return &summary, nil
}

// LoadScenarioSummary reads the scenario conformance summary. The file is
// required; a missing path is a MissingInputError.
func LoadScenarioSummary(path string) (*ScenarioSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path, Producer: "scenario_conformance_suite"}
		}
		return nil, fmt.Errorf("failed to read scenario summary: %w", err)
	}
	var summary ScenarioSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse scenario summary %s: %w", path, err)
	}
	return &summary, nil
}

// LoadExtensionEvents reads the line-delimited extension events, keyed by
// extension id. The file is optional: a missing path returns a nil map and
// the builder degrades to summary-only detail. Blank lines are skipped.
func LoadExtensionEvents(path string) (map[string]ExtensionEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read extension events: %w", err)
	}
	defer f.Close()

	events := make(map[string]ExtensionEvent)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var ev ExtensionEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			return nil, fmt.Errorf("failed to parse extension event in %s: %w", path, err)
		}
		events[ev.ID] = ev
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read extension events: %w", err)
	}
	return events, nil
}
