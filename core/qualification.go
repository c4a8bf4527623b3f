package core

// BidBeatsReserve returns true if the bid price is strictly above the
// reserve price. The reserve is a floor that must be beaten, not met: a
// bid exactly at reserve does not qualify.
func BidBeatsReserve(bidPrice, reservePrice int64) bool {
	return bidPrice > reservePrice
}

// QualifyBids partitions bids into those strictly above the reserve price
// and those at or below it, preserving ledger order in both halves.
// Rejected bids are returned whole so callers can report them.
func QualifyBids(bids []Bid, reservePrice int64) (qualifying, rejected []Bid) {
	qualifyingBids := make([]Bid, 0, len(bids))
	rejectedBids := make([]Bid, 0)

	for _, bid := range bids {
		if BidBeatsReserve(bid.Price, reservePrice) {
			qualifyingBids = append(qualifyingBids, bid)
		} else {
			rejectedBids = append(rejectedBids, bid)
		}
	}

	return qualifyingBids, rejectedBids
}
