package cli

import (
	"bytes"
	"strings"
	"testing"

	"extinv/internal/cause"
)

func TestPrintCause(t *testing.T) {
	d, ok := cause.Lookup("mock_gap")
	if !ok {
		t.Fatal("mock_gap missing from taxonomy")
	}

	buf := new(bytes.Buffer)
	printCause(buf, d)
	out := buf.String()

	expected := []string{
		"----------------------------------------",
		"CAUSE: mock_gap",
		d.Description,
		"Remediation: " + d.Remediation,
		"Severity:    high",
	}
	for _, exp := range expected {
		if !strings.Contains(out, exp) {
			t.Errorf("Expected output to contain %q, but it didn't.\nOutput:\n%s", exp, out)
		}
	}
}

func TestCausesListCmd(t *testing.T) {
	tests := []struct {
		name           string
		quiet          bool
		expectedOutput []string
		notExpected    []string
	}{
		{
			name:  "Default Output",
			quiet: false,
			expectedOutput: []string{
				"CAUSE: manifest_mismatch",
				"CAUSE: vcr_stub_gap",
				"Remediation:",
				"Severity:",
			},
		},
		{
			name:  "Quiet Output",
			quiet: true,
			expectedOutput: []string{
				"manifest_mismatch",
				"vcr_stub_gap",
			},
			notExpected: []string{
				"CAUSE:",
				"Remediation:",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			causesListQuiet = tt.quiet
			defer func() { causesListQuiet = false }()

			buf := new(bytes.Buffer)
			causesListCmd.SetOut(buf)

			if err := causesListCmd.RunE(causesListCmd, []string{}); err != nil {
				t.Fatalf("RunE() error = %v", err)
			}

			out := buf.String()
			for _, exp := range tt.expectedOutput {
				if !strings.Contains(out, exp) {
					t.Errorf("Expected output to contain %q, but it didn't.\nOutput:\n%s", exp, out)
				}
			}
			for _, notExp := range tt.notExpected {
				if strings.Contains(out, notExp) {
					t.Errorf("Expected output NOT to contain %q, but it did.\nOutput:\n%s", notExp, out)
				}
			}

			if tt.quiet {
				lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
				if len(lines) != 8 {
					t.Errorf("expected 8 cause codes, got %d lines", len(lines))
				}
			}
		})
	}
}

func TestCausesShowCmd(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput []string
		expectError    bool
	}{
		{
			name: "Show Existing Cause",
			args: []string{"test_fixture"},
			expectedOutput: []string{
				"CAUSE: test_fixture",
				"Severity:    info",
			},
		},
		{
			name:        "Show Non-Existent Cause",
			args:        []string{"no_such_cause"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			causesShowCmd.SetOut(buf)

			err := causesShowCmd.RunE(causesShowCmd, tt.args)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			out := buf.String()
			for _, exp := range tt.expectedOutput {
				if !strings.Contains(out, exp) {
					t.Errorf("Expected output to contain %q, but it didn't.\nOutput:\n%s", exp, out)
				}
			}
		})
	}
}
