package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/shopspring/decimal"

	"github.com/cloudx-io/vickrey/core"
)

// maxPrice is the largest price a scenario may carry; the core works in
// int64 and the loader refuses anything that does not fit.
var maxPrice = decimal.NewFromInt(math.MaxInt64)

// Scenario files carry prices as raw JSON numbers so the loader can check
// them exactly before anything is rounded or truncated.
type rawScenario struct {
	Name         string      `json:"name"`
	ReservePrice json.Number `json:"reserve_price"`
	Steps        []rawStep   `json:"steps"`
}

type rawStep struct {
	Bids   []rawBidGroup   `json:"bids"`
	Expect *rawExpectation `json:"expect"`
}

type rawBidGroup struct {
	Buyer  string        `json:"buyer"`
	Prices []json.Number `json:"prices"`
}

type rawExpectation struct {
	Winner        string      `json:"winner"`
	WinningPrice  json.Number `json:"winning_price"`
	ClearingPrice json.Number `json:"clearing_price"`
	Failure       string      `json:"failure"`
}

// Load reads a scenario from a file path or an inline JSON string. Prices
// must be whole non-negative numbers; the decimal gate here is what keeps
// fractional or oversized input away from the integer core.
func Load(input string) (*Scenario, error) {
	data := readJSONInput(input)

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw rawScenario
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	// Decode stops after one value; a scenario must be the whole input
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("parse scenario: unexpected data after scenario value")
	}

	return convertScenario(&raw)
}

// readJSONInput resolves an input that is either a file path or inline
// JSON.
func readJSONInput(input string) []byte {
	// Try reading as file first
	if data, err := os.ReadFile(input); err == nil {
		return data
	}
	// Treat as inline JSON
	return []byte(input)
}

func convertScenario(raw *rawScenario) (*Scenario, error) {
	if raw.ReservePrice == "" {
		return nil, fmt.Errorf("reserve_price is required")
	}
	reservePrice, err := parsePrice("reserve price", raw.ReservePrice)
	if err != nil {
		return nil, err
	}

	sc := &Scenario{
		Name:         raw.Name,
		ReservePrice: reservePrice,
		Steps:        make([]Step, 0, len(raw.Steps)),
	}

	for i, step := range raw.Steps {
		converted, err := convertStep(&step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		sc.Steps = append(sc.Steps, converted)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func convertStep(raw *rawStep) (Step, error) {
	step := Step{Bids: make([]BidGroup, 0, len(raw.Bids))}

	for _, group := range raw.Bids {
		prices := make([]int64, 0, len(group.Prices))
		for _, num := range group.Prices {
			price, err := parsePrice(fmt.Sprintf("price for buyer %s", group.Buyer), num)
			if err != nil {
				return Step{}, err
			}
			prices = append(prices, price)
		}
		step.Bids = append(step.Bids, BidGroup{Buyer: group.Buyer, Prices: prices})
	}

	if raw.Expect != nil {
		expect, err := convertExpectation(raw.Expect)
		if err != nil {
			return Step{}, err
		}
		step.Expect = expect
	}

	return step, nil
}

func convertExpectation(raw *rawExpectation) (*Expectation, error) {
	if raw.Failure != "" {
		if raw.Winner != "" || raw.WinningPrice != "" || raw.ClearingPrice != "" {
			return nil, fmt.Errorf("expectation cannot declare both a winner and a failure")
		}
		return &Expectation{Failure: core.FailureReason(raw.Failure)}, nil
	}

	expect := &Expectation{Winner: raw.Winner}

	if raw.WinningPrice != "" {
		price, err := parsePrice("expected winning price", raw.WinningPrice)
		if err != nil {
			return nil, err
		}
		expect.WinningPrice = price
	}
	if raw.ClearingPrice != "" {
		price, err := parsePrice("expected clearing price", raw.ClearingPrice)
		if err != nil {
			return nil, err
		}
		expect.ClearingPrice = price
	}

	return expect, nil
}

// parsePrice converts a raw JSON number into an integer price. Prices
// must be whole, non-negative, and fit an int64; anything else is a
// loader error so the core never sees approximated values.
func parsePrice(field string, num json.Number) (int64, error) {
	value, err := decimal.NewFromString(num.String())
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", field, num.String(), err)
	}
	if !value.IsInteger() {
		return 0, fmt.Errorf("%s %s is not a whole number", field, value.String())
	}
	if value.IsNegative() {
		return 0, fmt.Errorf("invalid negative %s %s", field, value.String())
	}
	if value.Cmp(maxPrice) > 0 {
		return 0, fmt.Errorf("%s %s does not fit a 64-bit price", field, value.String())
	}
	return value.IntPart(), nil
}
