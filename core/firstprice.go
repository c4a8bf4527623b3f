package core

// FirstPriceStrategy implements sealed-bid first-price semantics: the
// buyer with the best qualifying bid wins and pays their own price.
// First-price clearing needs no second buyer, so a single qualifying bid
// is enough, and a buyer bidding against nobody else still wins.
//
// Ties between buyers with equal best prices resolve to the buyer who bid
// first (see RankBids).
type FirstPriceStrategy struct{}

// DetermineWinner runs the first-price auction over the object's ledger.
func (FirstPriceStrategy) DetermineWinner(object *AuctionObject) (*AuctionResult, error) {
	qualifying, _ := QualifyBids(object.Bids(), object.ReservePrice())

	if len(qualifying) == 0 {
		return nil, ErrInsufficientBids
	}

	ranking := RankBids(qualifying)
	winningBid := ranking.BestBids[ranking.SortedBuyers[0]]

	return &AuctionResult{
		Object:        object,
		WinningBid:    winningBid,
		ClearingPrice: winningBid.Price,
	}, nil
}
