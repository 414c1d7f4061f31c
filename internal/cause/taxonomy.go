package cause

type Severity string

const (
	SeverityInfo   Severity = "info"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Descriptor is the human-facing record for one cause code.
type Descriptor struct {
	Code        Code     `json:"code"`
	Description string   `json:"description"`
	Remediation string   `json:"remediation"`
	Severity    Severity `json:"severity"`
}

// taxonomy is the fixed cause taxonomy. Order is part of the output
// contract: the inventory document emits causes in this order.
var taxonomy = []Descriptor{
	{
		Code:        ManifestMismatch,
		Description: "Extension loads but registers different commands/tools/flags than manifest expects",
		Remediation: "Audit manifest or update extension to register expected items",
		Severity:    SeverityMedium,
	},
	{
		Code:        MissingNPMPackage,
		Description: "Extension requires an npm package not available as a virtual module stub",
		Remediation: "Add a virtual module stub to the host module loader",
		Severity:    SeverityMedium,
	},
	{
		Code:        MultiFileDependency,
		Description: "Extension uses relative imports to unbundled sibling/parent modules",
		Remediation: "Bundle multi-file extensions or add relative path resolution",
		Severity:    SeverityLow,
	},
	{
		Code:        RuntimeError,
		Description: "Extension crashes during initialization (missing data, broken API, FS dependency)",
		Remediation: "Investigate per-extension; may need environment setup or shim fixes",
		Severity:    SeverityMedium,
	},
	{
		Code:        TestFixture,
		Description: "Not a real extension; test-only fixture in manifest",
		Remediation: "Exclude from conformance or mark as N/A",
		Severity:    SeverityInfo,
	},
	{
		Code:        MockGap,
		Description: "Scenario mock infrastructure doesn't fully support the extension's hostcall pattern",
		Remediation: "Extend the scenario mock interceptor or conformance session",
		Severity:    SeverityHigh,
	},
	{
		Code:        AssertionGap,
		Description: "Scenario expectations not met due to assertion infrastructure limitations",
		Remediation: "Fix assertion logic or update expected values",
		Severity:    SeverityHigh,
	},
	{
		Code:        VCRStubGap,
		Description: "VCR/stub HTTP mock doesn't produce valid response for extension parser",
		Remediation: "Improve synthetic HTTP response or add extension-specific VCR rules",
		Severity:    SeverityMedium,
	},
}

// Taxonomy returns the cause taxonomy in canonical order.
func Taxonomy() []Descriptor {
	out := make([]Descriptor, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// Lookup finds the descriptor for a cause code.
func Lookup(code string) (Descriptor, bool) {
	for _, d := range taxonomy {
		if string(d.Code) == code {
			return d, true
		}
	}
	return Descriptor{}, false
}
