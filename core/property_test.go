package core

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

var buyerNames = []string{"A", "B", "C", "D", "E", "F"}

// drawLedger builds a random ledger: a reserve price and up to a few dozen
// bids from a small buyer pool, so collisions and ties are common.
func drawLedger(t *rapid.T) *AuctionObject {
	reserve := rapid.Int64Range(0, 1000).Draw(t, "reserve")
	object := NewAuctionObject(reserve)

	numBids := rapid.IntRange(0, 40).Draw(t, "numBids")
	for i := 0; i < numBids; i++ {
		buyer := Buyer{Name: rapid.SampledFrom(buyerNames).Draw(t, "buyer")}
		price := rapid.Int64Range(0, 2000).Draw(t, "price")
		object.AddBids(buyer, price)
	}

	return object
}

func TestVickreyStrategy_ResultInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		object := drawLedger(t)

		result, err := VickreyStrategy{}.DetermineWinner(object)
		if err != nil {
			// Failures must be one of the two classified conditions
			if !errors.Is(err, ErrInsufficientBids) && !errors.Is(err, ErrInsufficientBidders) {
				t.Fatalf("unclassified failure: %v", err)
			}
			return
		}

		reserve := object.ReservePrice()
		if result.WinningBid.Price <= reserve {
			t.Fatalf("winning bid %d does not beat reserve %d", result.WinningBid.Price, reserve)
		}
		if result.ClearingPrice <= reserve {
			t.Fatalf("clearing price %d does not beat reserve %d", result.ClearingPrice, reserve)
		}
		if result.ClearingPrice > result.WinningBid.Price {
			t.Fatalf("clearing price %d exceeds winning bid %d", result.ClearingPrice, result.WinningBid.Price)
		}
	})
}

func TestVickreyStrategy_WinnerMatchesOracle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		object := drawLedger(t)

		result, err := VickreyStrategy{}.DetermineWinner(object)
		if err != nil {
			return
		}

		// Oracle: highest price strictly above reserve
		reserve := object.ReservePrice()
		maxPrice := reserve
		for _, bid := range object.Bids() {
			if bid.Price > maxPrice {
				maxPrice = bid.Price
			}
		}
		if result.WinningBid.Price != maxPrice {
			t.Fatalf("winning price %d, want %d", result.WinningBid.Price, maxPrice)
		}

		// The winner must be the first ledger bid at that price
		for _, bid := range object.Bids() {
			if bid.Price == maxPrice {
				if bid != result.WinningBid {
					t.Fatalf("winner %v is not the earliest top bid %v", result.WinningBid, bid)
				}
				break
			}
		}
	})
}

func TestVickreyStrategy_ClearingPriceMatchesOracle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		object := drawLedger(t)

		result, err := VickreyStrategy{}.DetermineWinner(object)
		if err != nil {
			return
		}

		// Oracle: best qualifying price over every bid not owned by the
		// winning buyer
		reserve := object.ReservePrice()
		best := reserve
		for _, bid := range object.Bids() {
			if bid.Buyer == result.WinningBid.Buyer {
				continue
			}
			if bid.Price > best {
				best = bid.Price
			}
		}

		if best == reserve {
			t.Fatalf("no qualifying bid from another buyer, expected a failure")
		}
		if result.ClearingPrice != best {
			t.Fatalf("clearing price %d, want %d", result.ClearingPrice, best)
		}
	})
}

func TestVickreyStrategy_FailureClassification(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		object := drawLedger(t)

		_, err := VickreyStrategy{}.DetermineWinner(object)

		// Oracle: count qualifying bids and the distinct buyers behind them
		reserve := object.ReservePrice()
		qualifyingCount := 0
		buyers := make(map[Buyer]bool)
		for _, bid := range object.Bids() {
			if bid.Price > reserve {
				qualifyingCount++
				buyers[bid.Buyer] = true
			}
		}

		switch {
		case qualifyingCount < 2:
			if !errors.Is(err, ErrInsufficientBids) {
				t.Fatalf("want ErrInsufficientBids with %d qualifying bids, got %v", qualifyingCount, err)
			}
		case len(buyers) < 2:
			if !errors.Is(err, ErrInsufficientBidders) {
				t.Fatalf("want ErrInsufficientBidders with %d buyers, got %v", len(buyers), err)
			}
		default:
			if err != nil {
				t.Fatalf("want a sale with %d bids from %d buyers, got %v", qualifyingCount, len(buyers), err)
			}
		}
	})
}

func TestVickreyStrategy_SubReserveBidsAreInert(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		object := drawLedger(t)
		strategy := VickreyStrategy{}

		result1, err1 := strategy.DetermineWinner(object)

		// Rebuild the ledger and append bids at or below reserve; none of
		// them may change the outcome
		mirrored := NewAuctionObject(object.ReservePrice())
		for _, bid := range object.Bids() {
			mirrored.AddBids(bid.Buyer, bid.Price)
		}
		numExtra := rapid.IntRange(1, 10).Draw(t, "numExtra")
		for i := 0; i < numExtra; i++ {
			buyer := Buyer{Name: rapid.SampledFrom(buyerNames).Draw(t, "extraBuyer")}
			price := rapid.Int64Range(-100, object.ReservePrice()).Draw(t, "extraPrice")
			mirrored.AddBids(buyer, price)
		}

		result2, err2 := strategy.DetermineWinner(mirrored)

		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("sub-reserve bids changed the outcome: %v vs %v", err1, err2)
		}
		if err1 != nil {
			if !errors.Is(err2, err1) {
				t.Fatalf("sub-reserve bids changed the failure: %v vs %v", err1, err2)
			}
			return
		}
		if result1.WinningBid != result2.WinningBid {
			t.Fatalf("sub-reserve bids changed the winner: %v vs %v", result1.WinningBid, result2.WinningBid)
		}
		if result1.ClearingPrice != result2.ClearingPrice {
			t.Fatalf("sub-reserve bids changed the clearing price: %d vs %d", result1.ClearingPrice, result2.ClearingPrice)
		}
	})
}

func TestVickreyStrategy_EvaluationIsPure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		object := drawLedger(t)
		strategy := VickreyStrategy{}

		before := ComputeLedgerHash(object.ReservePrice(), object.Bids())
		result1, err1 := strategy.DetermineWinner(object)
		result2, err2 := strategy.DetermineWinner(object)
		after := ComputeLedgerHash(object.ReservePrice(), object.Bids())

		if before != after {
			t.Fatalf("evaluation mutated the ledger")
		}
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("repeated evaluation disagreed: %v vs %v", err1, err2)
		}
		if err1 != nil {
			if !errors.Is(err2, err1) {
				t.Fatalf("repeated evaluation changed the failure: %v vs %v", err1, err2)
			}
			return
		}
		if result1.WinningBid != result2.WinningBid || result1.ClearingPrice != result2.ClearingPrice {
			t.Fatalf("repeated evaluation changed the result")
		}
	})
}

func TestFirstPriceStrategy_WinnerPaysTopPrice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		object := drawLedger(t)

		result, err := FirstPriceStrategy{}.DetermineWinner(object)

		reserve := object.ReservePrice()
		maxPrice := reserve
		for _, bid := range object.Bids() {
			if bid.Price > maxPrice {
				maxPrice = bid.Price
			}
		}

		if maxPrice == reserve {
			// Nothing beats the reserve
			if !errors.Is(err, ErrInsufficientBids) {
				t.Fatalf("want ErrInsufficientBids, got %v", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("want a sale at %d, got %v", maxPrice, err)
		}
		if result.WinningBid.Price != maxPrice {
			t.Fatalf("winning price %d, want %d", result.WinningBid.Price, maxPrice)
		}
		if result.ClearingPrice != maxPrice {
			t.Fatalf("first-price clearing %d, want %d", result.ClearingPrice, maxPrice)
		}
	})
}

func TestStrategies_AgreeOnTopPrice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		object := drawLedger(t)

		vickrey, errV := VickreyStrategy{}.DetermineWinner(object)
		first, errF := FirstPriceStrategy{}.DetermineWinner(object)

		if errF != nil {
			// First-price preconditions are weaker, so a second-price
			// sale without a first-price sale is impossible
			if errV == nil {
				t.Fatalf("second-price sold while first-price failed: %v", errF)
			}
			return
		}
		if errV != nil {
			return
		}

		if vickrey.WinningBid.Price != first.WinningBid.Price {
			t.Fatalf("strategies disagree on the top price: %d vs %d",
				vickrey.WinningBid.Price, first.WinningBid.Price)
		}
		if vickrey.ClearingPrice > first.ClearingPrice {
			t.Fatalf("second-price clearing %d exceeds first-price %d",
				vickrey.ClearingPrice, first.ClearingPrice)
		}
	})
}
