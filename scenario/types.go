package scenario

import (
	"fmt"

	"github.com/cloudx-io/vickrey/core"
)

// Scenario is a declarative auction script: one object with a fixed
// reserve price and a sequence of steps that add bids and evaluate.
type Scenario struct {
	Name         string `json:"name"`
	ReservePrice int64  `json:"reserve_price"`
	Steps        []Step `json:"steps"`
}

// Step appends a batch of bids to the ledger and evaluates once. The
// ledger carries over from earlier steps; bids only accumulate.
type Step struct {
	Bids   []BidGroup   `json:"bids,omitempty"`
	Expect *Expectation `json:"expect,omitempty"`
}

// BidGroup is one buyer's bid prices, appended in order.
type BidGroup struct {
	Buyer  string  `json:"buyer"`
	Prices []int64 `json:"prices"`
}

// Expectation declares a step's outcome: either a winning result or a
// classified failure, never both.
type Expectation struct {
	Winner        string             `json:"winner,omitempty"`
	WinningPrice  int64              `json:"winning_price,omitempty"`
	ClearingPrice int64              `json:"clearing_price,omitempty"`
	Failure       core.FailureReason `json:"failure,omitempty"`
}

// Validate checks that the scenario can be run: a name, at least one
// step, no negative prices, and well-formed expectations. The strategies
// themselves are permissive; this is the layer that refuses bad input.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.ReservePrice < 0 {
		return fmt.Errorf("invalid negative reserve price %d", s.ReservePrice)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %s has no steps", s.Name)
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	return nil
}

func (st *Step) validate() error {
	for _, group := range st.Bids {
		if group.Buyer == "" {
			return fmt.Errorf("bid group is missing a buyer name")
		}
		if len(group.Prices) == 0 {
			return fmt.Errorf("no prices for buyer %s", group.Buyer)
		}
		for _, price := range group.Prices {
			if price < 0 {
				return fmt.Errorf("invalid negative price %d for buyer %s", price, group.Buyer)
			}
		}
	}

	if st.Expect != nil {
		return st.Expect.validate()
	}
	return nil
}

func (e *Expectation) validate() error {
	if e.Failure != "" {
		if e.Winner != "" || e.WinningPrice != 0 || e.ClearingPrice != 0 {
			return fmt.Errorf("expectation cannot declare both a winner and a failure")
		}
		switch e.Failure {
		case core.ReasonInsufficientBids, core.ReasonInsufficientBidders:
			return nil
		}
		return fmt.Errorf("unknown failure reason %q", e.Failure)
	}

	if e.Winner == "" {
		return fmt.Errorf("expectation needs a winner or a failure reason")
	}
	if e.WinningPrice <= 0 {
		return fmt.Errorf("invalid winning price %d for expected winner %s", e.WinningPrice, e.Winner)
	}
	if e.ClearingPrice <= 0 {
		return fmt.Errorf("invalid clearing price %d for expected winner %s", e.ClearingPrice, e.Winner)
	}
	return nil
}

// StepOutcome records one step's evaluation and its verdict against the
// declared expectation.
type StepOutcome struct {
	Step           int                `json:"step"`
	BidsAdded      int                `json:"bids_added"`
	LedgerSize     int                `json:"ledger_size"`
	QualifyingBids int                `json:"qualifying_bids"`
	RejectedBids   int                `json:"rejected_bids"`
	LedgerHash     string             `json:"ledger_hash"`
	WinningBid     *core.Bid          `json:"winning_bid,omitempty"`
	ClearingPrice  int64              `json:"clearing_price,omitempty"`
	Failure        core.FailureReason `json:"failure,omitempty"`
	FailureMessage string             `json:"failure_message,omitempty"`
	Ranking        []core.Bid         `json:"ranking,omitempty"` // best bid per buyer, best first
	ExpectationMet bool               `json:"expectation_met"`
	Details        []string           `json:"details,omitempty"`
}

// RunReport is the structured record of one scenario run.
type RunReport struct {
	RunID          string        `json:"run_id"`
	Scenario       string        `json:"scenario"`
	Strategy       string        `json:"strategy"`
	ReservePrice   int64         `json:"reserve_price"`
	Steps          []StepOutcome `json:"steps"`
	Success        bool          `json:"success"`
	ProcessingTime int64         `json:"processing_time_ms"`
}
