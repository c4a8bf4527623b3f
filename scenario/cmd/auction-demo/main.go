package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cloudx-io/vickrey/scenario"
)

func main() {
	// Define CLI flags
	var (
		scenarioInput = flag.String("scenario", "", "Scenario JSON (file path or inline JSON); default runs the built-in scenarios")
		strategyName  = flag.String("strategy", scenario.StrategyVickrey, "Auction strategy: vickrey or firstprice")
		outputFormat  = flag.String("format", "text", "Output format: text or json")
		help          = flag.Bool("help", false, "Show usage information")
	)

	flag.Parse()

	// Show help
	if *help {
		showUsage()
		os.Exit(0)
	}

	runner, err := scenario.NewRunner(*strategyName)
	if err != nil {
		showUsage()
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(2)
	}

	// Load the requested scenario, or fall back to the built-in set
	scenarios := scenario.Builtin()
	if *scenarioInput != "" {
		sc, err := scenario.Load(*scenarioInput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading scenario: %v\n", err)
			os.Exit(2)
		}
		scenarios = []*scenario.Scenario{sc}
	}

	// Run scenarios
	reports := make([]*scenario.RunReport, 0, len(scenarios))
	allMet := true
	for _, sc := range scenarios {
		report, err := runner.Run(sc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running scenario %s: %v\n", sc.Name, err)
			os.Exit(2)
		}
		if !report.Success {
			allMet = false
		}
		reports = append(reports, report)
	}

	// Output results
	if *outputFormat == "json" {
		if err := scenario.WriteJSON(os.Stdout, reports); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(2)
		}
	} else {
		scenario.WriteText(os.Stdout, reports)
	}

	// Exit with appropriate code
	if !allMet {
		os.Exit(1)
	}
	os.Exit(0)
}

func showUsage() {
	fmt.Println("Sealed-Bid Auction Demo")
	fmt.Println()
	fmt.Println("Runs sealed-bid auction scenarios under second-price (Vickrey) or first-price rules.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  auction-demo [options]")
	fmt.Println()
	fmt.Println("Optional Flags:")
	fmt.Println("  --scenario <json>                 Scenario to run (file path or inline JSON)")
	fmt.Println("  --strategy <vickrey|firstprice>   Winner determination rules (default: vickrey)")
	fmt.Println("  --format <text|json>              Output format (default: text)")
	fmt.Println("  --help                            Show this help message")
	fmt.Println()
	fmt.Println("Without --scenario, the built-in demonstration scenarios run: a standard")
	fmt.Println("sale and an incremental walk through both failure modes.")
	fmt.Println()
	fmt.Println("Scenario Format:")
	fmt.Println("  {")
	fmt.Println("    \"name\": \"standard\",")
	fmt.Println("    \"reserve_price\": 100,")
	fmt.Println("    \"steps\": [{")
	fmt.Println("      \"bids\": [")
	fmt.Println("        {\"buyer\": \"A\", \"prices\": [110, 130]},")
	fmt.Println("        {\"buyer\": \"E\", \"prices\": [132, 135, 140]}")
	fmt.Println("      ],")
	fmt.Println("      \"expect\": {\"winner\": \"E\", \"winning_price\": 140, \"clearing_price\": 130}")
	fmt.Println("    }]")
	fmt.Println("  }")
	fmt.Println()
	fmt.Println("  Steps share one bid ledger: each step appends its bids, evaluates, and")
	fmt.Println("  checks the optional expectation. Prices are whole non-negative numbers.")
	fmt.Println("  An expectation declares either a winner or a failure reason")
	fmt.Println("  (insufficient_bids, insufficient_bidders), never both.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Run the built-in scenarios")
	fmt.Println("  auction-demo")
	fmt.Println()
	fmt.Println("  # Run a scenario file under first-price rules")
	fmt.Println("  auction-demo --scenario my_scenario.json --strategy firstprice")
	fmt.Println()
	fmt.Println("  # Inline JSON with JSON output")
	fmt.Println("  auction-demo \\")
	fmt.Println("    --scenario '{\"name\":\"quick\",\"reserve_price\":100,\"steps\":[{\"bids\":[{\"buyer\":\"A\",\"prices\":[110]},{\"buyer\":\"B\",\"prices\":[120]}]}]}' \\")
	fmt.Println("    --format json")
	fmt.Println()
	fmt.Println("Exit Codes:")
	fmt.Println("  0 - All scenarios matched their expectations")
	fmt.Println("  1 - At least one expectation was not met")
	fmt.Println("  2 - Invalid input or runtime error")
}
