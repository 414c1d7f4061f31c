package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"extinv/internal/inventory"

	"github.com/fatih/color"
)

// PrintSummary prints the operator-facing run summary: where the document
// landed, the pass ratio per entity type, and the cause histogram. For
// human operators, not machine-parsed.
func PrintSummary(w io.Writer, path string, doc *inventory.Document) error {
	bold := color.New(color.Bold)
	if _, err := bold.Fprintf(w, "Inventory written to %s\n", path); err != nil {
		return err
	}

	ext := doc.Summary.Extensions
	if _, err := fmt.Fprintf(w, "  Extensions: %d/%d PASS (%s%%)\n", ext.Pass, ext.Total, formatPct(ext.PassRatePct)); err != nil {
		return err
	}
	scn := doc.Summary.Scenarios
	if _, err := fmt.Fprintf(w, "  Scenarios:  %d/%d PASS (%s%%)\n", scn.Pass, scn.Total, formatPct(scn.PassRatePct)); err != nil {
		return err
	}

	dist, err := json.Marshal(doc.CauseDistribution)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "  Cause distribution: %s\n", dist)
	return err
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
