package inventory

import (
	"math"
	"sort"
	"strings"
	"time"

	"extinv/internal/cause"
	"extinv/internal/config"
	"extinv/internal/report"
)

// Build assembles the consolidated inventory document from the loaded
// reports. It is a pure in-memory transform: classification and counting
// only, no I/O. GeneratedAt is now in UTC at second precision.
func Build(ext *report.ExtensionSummary, events map[string]report.ExtensionEvent, scn *report.ScenarioSummary, thresholds config.Thresholds, now time.Time) *Document {
	extEntries := buildExtensionEntries(ext, events)
	scnEntries := buildScenarioEntries(scn)

	counts := make(map[cause.Code]int)
	extStatuses := make([]Status, 0, len(extEntries))
	for _, e := range extEntries {
		extStatuses = append(extStatuses, e.Status)
		if e.CauseCode != nil {
			counts[*e.CauseCode]++
		}
	}
	scnStatuses := make([]Status, 0, len(scnEntries))
	for _, e := range scnEntries {
		scnStatuses = append(scnStatuses, e.Status)
		if e.CauseCode != nil {
			counts[*e.CauseCode]++
		}
	}

	return &Document{
		Schema:      Schema,
		GeneratedAt: now.UTC().Format("2006-01-02T15:04:05Z"),
		Summary: Summary{
			Extensions: summarize(extStatuses),
			Scenarios:  summarize(scnStatuses),
		},
		CauseTaxonomy:        NewTaxonomyCounts(counts),
		CauseDistribution:    NewDistribution(counts),
		Extensions:           extEntries,
		Scenarios:            scnEntries,
		RegressionThresholds: thresholds,
	}
}

// buildExtensionEntries prefers the events stream for full per-extension
// detail. Without it only the summary's failures are representable, so the
// inventory degrades to FAIL rows with zero registration counts.
func buildExtensionEntries(summary *report.ExtensionSummary, events map[string]report.ExtensionEvent) []ExtensionEntry {
	failures := make(map[string]report.ExtensionFailure, len(summary.Failures))
	for _, f := range summary.Failures {
		failures[f.ID] = f
	}

	if len(events) == 0 {
		ids := make([]string, 0, len(failures))
		for id := range failures {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		entries := make([]ExtensionEntry, 0, len(ids))
		for _, id := range ids {
			reason := failures[id].Reason
			code := cause.ClassifyExtension(id, reason)
			entries = append(entries, ExtensionEntry{
				ID:          id,
				Type:        "extension",
				Status:      StatusFail,
				CauseCode:   &code,
				CauseDetail: &reason,
			})
		}
		return entries
	}

	ids := make([]string, 0, len(events))
	for id := range events {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]ExtensionEntry, 0, len(ids))
	for _, id := range ids {
		ev := events[id]
		entry := ExtensionEntry{
			ID:   id,
			Type: "extension",
			Tier: ev.Tier,
			Registrations: Registrations{
				Commands:  ev.CommandsRegistered,
				Flags:     ev.FlagsRegistered,
				Tools:     ev.ToolsRegistered,
				Providers: ev.ProvidersRegistered,
			},
			DurationMs: ev.DurationMs,
		}

		switch ev.Status {
		case report.StatusPass:
			entry.Status = StatusPass
		case report.StatusSkip:
			entry.Status = StatusNA
			if ev.FailureReason != "" {
				reason := ev.FailureReason
				entry.CauseDetail = &reason
			}
		default:
			entry.Status = StatusFail
			reason := ev.FailureReason
			if f, ok := failures[id]; ok && f.Reason != "" {
				reason = f.Reason
			}
			code := cause.ClassifyExtension(id, reason)
			entry.CauseCode = &code
			entry.CauseDetail = &reason
		}

		entries = append(entries, entry)
	}
	return entries
}

func buildScenarioEntries(summary *report.ScenarioSummary) []ScenarioEntry {
	entries := make([]ScenarioEntry, 0, len(summary.Results))
	for _, r := range summary.Results {
		entry := ScenarioEntry{
			ID:          r.ScenarioID,
			Type:        "scenario",
			ExtensionID: r.ExtensionID,
			Kind:        r.Kind,
			Summary:     r.Summary,
			SourceTier:  r.SourceTier,
			RuntimeTier: r.RuntimeTier,
			DurationMs:  r.DurationMs,
		}

		switch r.Status {
		case report.StatusPass:
			entry.Status = StatusPass
		case report.StatusSkip:
			entry.Status = StatusNA
			if r.SkipReason != "" {
				reason := r.SkipReason
				entry.CauseDetail = &reason
			}
		case report.StatusError:
			// An error during execution is definitionally a runtime defect;
			// it overrides the heuristic classifier.
			entry.Status = StatusFail
			code := cause.RuntimeError
			detail := r.Error
			entry.CauseCode = &code
			entry.CauseDetail = &detail
		default:
			entry.Status = StatusFail
			code := cause.ClassifyScenario(r)
			detail := r.Error
			if detail == "" {
				detail = strings.Join(r.Diffs, "; ")
			}
			entry.CauseCode = &code
			entry.CauseDetail = &detail
		}

		entries = append(entries, entry)
	}
	return entries
}

func summarize(statuses []Status) EntitySummary {
	s := EntitySummary{Total: len(statuses)}
	for _, st := range statuses {
		switch st {
		case StatusPass:
			s.Pass++
		case StatusFail:
			s.Fail++
		case StatusNA:
			s.NA++
		}
	}
	s.PassRatePct = passRatePct(s.Pass, s.Fail)
	return s
}

// passRatePct excludes N-A entries and floors the denominator at 1 so an
// empty report yields 0.0 instead of dividing by zero. Rounded to one
// decimal place.
func passRatePct(pass, fail int) float64 {
	denom := pass + fail
	if denom < 1 {
		denom = 1
	}
	return math.Round(float64(pass)/float64(denom)*1000) / 10
}
