package cause

import (
	"regexp"
	"strings"
)

// fixtureID is the placeholder manifest entry used by harness self-tests.
// It is not a real extension.
const fixtureID = "base_fixtures"

var (
	missingItemPattern = regexp.MustCompile(`Missing (command|tool|flag)`)
	specifierPattern   = regexp.MustCompile(`specifier: (.+?)(?:\n|$)`)
)

// extensionRule is one entry in the ordered classification policy. Rules are
// evaluated top to bottom and the first match decides the code, so a reason
// that textually satisfies several rules gets the earliest one.
type extensionRule struct {
	name     string
	classify func(id, reason string) (Code, bool)
}

var extensionRules = []extensionRule{
	{
		name: "known-fixture-id",
		classify: func(id, _ string) (Code, bool) {
			if id == fixtureID {
				return TestFixture, true
			}
			return "", false
		},
	},
	{
		name: "manifest-mismatch",
		classify: func(_, reason string) (Code, bool) {
			if missingItemPattern.MatchString(reason) {
				return ManifestMismatch, true
			}
			if strings.Contains(reason, "expects tools but none registered") {
				return ManifestMismatch, true
			}
			return "", false
		},
	},
	{
		name: "module-specifier",
		classify: func(_, reason string) (Code, bool) {
			if !strings.Contains(reason, "Unsupported module specifier") {
				return "", false
			}
			m := specifierPattern.FindStringSubmatch(reason)
			if m == nil {
				// No extractable specifier; assume an npm package.
				return MissingNPMPackage, true
			}
			if strings.HasPrefix(strings.TrimSpace(m[1]), ".") {
				return MultiFileDependency, true
			}
			return MissingNPMPackage, true
		},
	},
	{
		name: "load-error",
		classify: func(_, reason string) (Code, bool) {
			for _, marker := range []string{"Load error", "ENOENT", "not a function", "cannot read property"} {
				if strings.Contains(reason, marker) {
					return RuntimeError, true
				}
			}
			return "", false
		},
	},
	{
		name: "fixture-reason",
		classify: func(_, reason string) (Code, bool) {
			if strings.Contains(reason, fixtureID) {
				return TestFixture, true
			}
			return "", false
		},
	},
}

// ClassifyExtension maps an extension-level failure to a cause code. It is
// total: an empty reason, and any reason no rule claims, both land on
// RuntimeError.
func ClassifyExtension(id, reason string) Code {
	if reason == "" {
		return RuntimeError
	}
	for _, rule := range extensionRules {
		if code, ok := rule.classify(id, reason); ok {
			return code
		}
	}
	return RuntimeError
}
