package scenario

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/cloudx-io/vickrey/core"
)

const (
	// StrategyVickrey names the second-price strategy in run reports and
	// on the demo CLI.
	StrategyVickrey = "vickrey"

	// StrategyFirstPrice names the first-price strategy.
	StrategyFirstPrice = "firstprice"
)

// StrategyByName returns the auction strategy registered under name.
func StrategyByName(name string) (core.AuctionStrategy, error) {
	switch name {
	case StrategyVickrey:
		return core.VickreyStrategy{}, nil
	case StrategyFirstPrice:
		return core.FirstPriceStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown auction strategy %q", name)
	}
}

// Runner executes scenarios against one auction strategy and produces
// structured run reports.
type Runner struct {
	strategyName string
	strategy     core.AuctionStrategy
}

// NewRunner creates a runner for the named strategy.
func NewRunner(strategyName string) (*Runner, error) {
	strategy, err := StrategyByName(strategyName)
	if err != nil {
		return nil, err
	}
	return &Runner{strategyName: strategyName, strategy: strategy}, nil
}

// Run evaluates every step of the scenario against the runner's strategy.
// Strategy failures are recorded as step outcomes, not returned as
// errors; a non-nil error means the scenario itself is unrunnable.
func (r *Runner) Run(sc *Scenario) (*RunReport, error) {
	startTime := time.Now()

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	log.Printf("INFO: Running scenario %s with strategy %s (%d steps)", sc.Name, r.strategyName, len(sc.Steps))

	object := core.NewAuctionObject(sc.ReservePrice)
	outcomes := make([]StepOutcome, 0, len(sc.Steps))
	success := true

	for i, step := range sc.Steps {
		bidsAdded := 0
		for _, group := range step.Bids {
			object.AddBids(core.Buyer{Name: group.Buyer}, group.Prices...)
			bidsAdded += len(group.Prices)
		}

		outcome := r.evaluateStep(i+1, bidsAdded, object, step.Expect)
		if !outcome.ExpectationMet {
			success = false
		}
		outcomes = append(outcomes, outcome)
	}

	processingTime := time.Since(startTime).Milliseconds()
	log.Printf("INFO: Scenario %s complete: success=%v, processing=%dms", sc.Name, success, processingTime)

	return &RunReport{
		RunID:          uuid.NewString(),
		Scenario:       sc.Name,
		Strategy:       r.strategyName,
		ReservePrice:   sc.ReservePrice,
		Steps:          outcomes,
		Success:        success,
		ProcessingTime: processingTime,
	}, nil
}

// evaluateStep runs one evaluation over the current ledger state and
// scores it against the step's expectation.
func (r *Runner) evaluateStep(stepNumber, bidsAdded int, object *core.AuctionObject, expect *Expectation) StepOutcome {
	bids := object.Bids()
	qualifying, rejected := core.QualifyBids(bids, object.ReservePrice())

	outcome := StepOutcome{
		Step:           stepNumber,
		BidsAdded:      bidsAdded,
		LedgerSize:     len(bids),
		QualifyingBids: len(qualifying),
		RejectedBids:   len(rejected),
		LedgerHash:     core.ComputeLedgerHash(object.ReservePrice(), bids),
	}

	ranking := core.RankBids(qualifying)
	for _, buyer := range ranking.SortedBuyers {
		outcome.Ranking = append(outcome.Ranking, ranking.BestBids[buyer])
	}

	result, err := r.strategy.DetermineWinner(object)
	if err != nil {
		var auctionErr *core.AuctionError
		if errors.As(err, &auctionErr) {
			outcome.Failure = auctionErr.Reason
			outcome.FailureMessage = auctionErr.Message
		} else {
			outcome.FailureMessage = err.Error()
		}
		log.Printf("INFO: Step %d: no sale: %v", stepNumber, err)
	} else {
		winningBid := result.WinningBid
		outcome.WinningBid = &winningBid
		outcome.ClearingPrice = result.ClearingPrice
		log.Printf("INFO: Step %d: winner=%s (%d), clearing=%d",
			stepNumber, winningBid.Buyer, winningBid.Price, result.ClearingPrice)
	}

	outcome.ExpectationMet, outcome.Details = scoreExpectation(expect, result, err)
	return outcome
}

// scoreExpectation compares an evaluation against the declared
// expectation. With no expectation a sale passes and a failure does not:
// an undeclared failure counts as unmet.
func scoreExpectation(expect *Expectation, result *core.AuctionResult, err error) (bool, []string) {
	if expect == nil {
		if err != nil {
			return false, []string{fmt.Sprintf("unexpected failure: %v", err)}
		}
		return true, nil
	}

	if expect.Failure != "" {
		if err == nil {
			return false, []string{fmt.Sprintf("expected failure %s, got winner %s at %d",
				expect.Failure, result.WinningBid.Buyer, result.ClearingPrice)}
		}
		var auctionErr *core.AuctionError
		if !errors.As(err, &auctionErr) || auctionErr.Reason != expect.Failure {
			return false, []string{fmt.Sprintf("expected failure %s, got: %v", expect.Failure, err)}
		}
		return true, nil
	}

	if err != nil {
		return false, []string{fmt.Sprintf("expected winner %s, got failure: %v", expect.Winner, err)}
	}

	details := make([]string, 0)
	if result.WinningBid.Buyer.Name != expect.Winner {
		details = append(details, fmt.Sprintf("winner: expected %s, got %s", expect.Winner, result.WinningBid.Buyer))
	}
	if result.WinningBid.Price != expect.WinningPrice {
		details = append(details, fmt.Sprintf("winning price: expected %d, got %d", expect.WinningPrice, result.WinningBid.Price))
	}
	if result.ClearingPrice != expect.ClearingPrice {
		details = append(details, fmt.Sprintf("clearing price: expected %d, got %d", expect.ClearingPrice, result.ClearingPrice))
	}
	if len(details) > 0 {
		return false, details
	}
	return true, nil
}
