package core

const (
	// minQualifyingBids is the minimum number of bids above reserve for a
	// second-price sale.
	minQualifyingBids = 2

	// minDistinctBuyers is the minimum number of distinct buyers among the
	// qualifying bids; the clearing price must come from a buyer other
	// than the winner.
	minDistinctBuyers = 2
)

// AuctionStrategy determines the winner of a populated bid ledger.
// Strategies never mutate the ledger and may be re-invoked; evaluating the
// same ledger twice yields the same outcome.
type AuctionStrategy interface {
	// DetermineWinner returns the winning bid and clearing price for the
	// object, or a classified *AuctionError when the ledger cannot
	// support a sale. Exactly one of the result and the error is non-nil.
	DetermineWinner(object *AuctionObject) (*AuctionResult, error)
}

// VickreyStrategy implements sealed-bid second-price semantics: the
// highest qualifying bid wins, and the winner pays the best qualifying
// price offered by any other buyer.
type VickreyStrategy struct{}

// DetermineWinner runs the second-price auction over the object's ledger.
//
// Processing flow:
//  1. Qualify bids strictly above the reserve price
//  2. Require at least 2 qualifying bids
//  3. Require at least 2 distinct buyers among them
//  4. Winner: first qualifying bid reaching the highest price
//  5. Clearing price: highest qualifying price from the other buyers
//
// All of the winner's bids are excluded in step 5, so a buyer never sets
// their own clearing price.
func (VickreyStrategy) DetermineWinner(object *AuctionObject) (*AuctionResult, error) {
	qualifying, _ := QualifyBids(object.Bids(), object.ReservePrice())

	if len(qualifying) < minQualifyingBids {
		return nil, ErrInsufficientBids
	}

	buyers := make(map[Buyer]struct{}, len(qualifying))
	for _, bid := range qualifying {
		buyers[bid.Buyer] = struct{}{}
	}
	if len(buyers) < minDistinctBuyers {
		return nil, ErrInsufficientBidders
	}

	winningBid := highestBid(qualifying)

	// Bids from every buyer except the winner; non-empty because at least
	// two distinct buyers qualified
	otherBids := make([]Bid, 0, len(qualifying))
	for _, bid := range qualifying {
		if bid.Buyer != winningBid.Buyer {
			otherBids = append(otherBids, bid)
		}
	}
	clearingPrice := highestBid(otherBids).Price

	return &AuctionResult{
		Object:        object,
		WinningBid:    winningBid,
		ClearingPrice: clearingPrice,
	}, nil
}

// highestBid returns the first bid in order reaching the maximum price.
// Strict improvement keeps the earliest of equal top bids, so a tie at the
// top resolves to the bid placed first. Callers guarantee bids is
// non-empty.
func highestBid(bids []Bid) Bid {
	best := bids[0]
	for _, bid := range bids[1:] {
		if bid.Price > best.Price {
			best = bid
		}
	}
	return best
}
