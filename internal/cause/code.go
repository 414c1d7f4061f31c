package cause

// Code identifies why a conformance entry failed. The set is closed: the
// classifiers only ever produce one of the codes below, and every code has a
// descriptor in the taxonomy.
type Code string

const (
	// ManifestMismatch: the extension loads but registers different
	// commands/tools/flags than its manifest declares.
	ManifestMismatch Code = "manifest_mismatch"

	// MissingNPMPackage: the extension imports an npm package that has no
	// virtual module stub in the host.
	MissingNPMPackage Code = "missing_npm_package"

	// MultiFileDependency: the extension imports sibling or parent modules
	// via relative specifiers that are not bundled.
	MultiFileDependency Code = "multi_file_dependency"

	// RuntimeError: the extension crashed during load or execution.
	RuntimeError Code = "runtime_error"

	// TestFixture: not a real extension, a test-only manifest fixture.
	TestFixture Code = "test_fixture"

	// MockGap: the scenario mock infrastructure does not cover the
	// extension's hostcall pattern.
	MockGap Code = "mock_gap"

	// AssertionGap: scenario expectations unmet due to assertion
	// infrastructure limits.
	AssertionGap Code = "assertion_gap"

	// VCRStubGap: the stubbed HTTP layer produced a response the extension's
	// parser cannot consume.
	VCRStubGap Code = "vcr_stub_gap"
)
