package scenario

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteText prints human-readable results for one or more runs. Each
// winning step prints the three demo lines; failed steps print the
// failure message instead.
func WriteText(w io.Writer, reports []*RunReport) {
	passed := 0
	for _, report := range reports {
		if report.Success {
			passed++
		}

		fmt.Fprintf(w, "=== Scenario: %s (strategy: %s) ===\n", report.Scenario, report.Strategy)
		for _, outcome := range report.Steps {
			if outcome.WinningBid != nil {
				fmt.Fprintf(w, "Auction buyer = %s\n", outcome.WinningBid.Buyer)
				fmt.Fprintf(w, "Auction buyer bid price = %d\n", outcome.WinningBid.Price)
				fmt.Fprintf(w, "Auction final price = %d\n", outcome.ClearingPrice)
			} else {
				fmt.Fprintf(w, "Auction failed = %s\n", outcome.FailureMessage)
			}
			if !outcome.ExpectationMet {
				fmt.Fprintln(w, "Expectation not met:")
				for _, detail := range outcome.Details {
					fmt.Fprintf(w, "  - %s\n", detail)
				}
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "==================================")
	fmt.Fprintf(w, "Scenarios passed: %d of %d\n", passed, len(reports))
	if passed == len(reports) {
		fmt.Fprintln(w, "DEMO: ✓ PASSED")
	} else {
		fmt.Fprintln(w, "DEMO: ✗ FAILED")
	}
}

// WriteJSON prints the full run reports as indented JSON.
func WriteJSON(w io.Writer, reports []*RunReport) error {
	output, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal reports: %w", err)
	}
	fmt.Fprintln(w, string(output))
	return nil
}
