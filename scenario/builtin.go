package scenario

import (
	"github.com/cloudx-io/vickrey/core"
)

// Builtin returns the demonstration scenarios shipped with the demo
// binary: a standard sale and an incremental walk through both failure
// modes.
func Builtin() []*Scenario {
	return []*Scenario{standardScenario(), limitsScenario()}
}

func standardScenario() *Scenario {
	return &Scenario{
		Name:         "standard",
		ReservePrice: 100,
		Steps: []Step{
			{
				Bids: []BidGroup{
					{Buyer: "A", Prices: []int64{110, 130}},
					{Buyer: "C", Prices: []int64{125}},
					{Buyer: "D", Prices: []int64{105, 115, 90}},
					{Buyer: "E", Prices: []int64{132, 135, 140}},
				},
				Expect: &Expectation{Winner: "E", WinningPrice: 140, ClearingPrice: 130},
			},
		},
	}
}

// limitsScenario grows one ledger across steps: the first step has too
// few bids above reserve, the second has qualifying bids from only one
// buyer, and the third finally clears.
func limitsScenario() *Scenario {
	return &Scenario{
		Name:         "limits",
		ReservePrice: 100,
		Steps: []Step{
			{
				Bids:   []BidGroup{{Buyer: "A", Prices: []int64{12}}},
				Expect: &Expectation{Failure: core.ReasonInsufficientBids},
			},
			{
				Bids:   []BidGroup{{Buyer: "A", Prices: []int64{120, 154}}},
				Expect: &Expectation{Failure: core.ReasonInsufficientBidders},
			},
			{
				Bids:   []BidGroup{{Buyer: "B", Prices: []int64{300, 110}}},
				Expect: &Expectation{Winner: "B", WinningPrice: 300, ClearingPrice: 154},
			},
		},
	}
}
