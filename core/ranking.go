package core

import (
	"sort"
)

// BidRanking contains buyers ordered by their best bid.
type BidRanking struct {
	Ranks        map[Buyer]int `json:"ranks"`
	BestBids     map[Buyer]Bid `json:"best_bids"`
	SortedBuyers []Buyer       `json:"sorted_buyers"`
}

// RankBids ranks buyers by their best bid, highest price first. For each
// buyer the best bid is the first bid in input order reaching that buyer's
// maximum. Buyers with equal best prices rank in order of first appearance
// in the input, so the ranking is deterministic for a given ledger.
func RankBids(bids []Bid) *BidRanking {
	if len(bids) == 0 {
		return &BidRanking{
			Ranks:        make(map[Buyer]int),
			BestBids:     make(map[Buyer]Bid),
			SortedBuyers: make([]Buyer, 0),
		}
	}

	// Find best bid per buyer while preserving order of first occurrence
	bestBids := make(map[Buyer]Bid)
	buyerOrder := make([]Buyer, 0, len(bids))
	seenBuyers := make(map[Buyer]bool)

	for _, bid := range bids {
		// Track first occurrence order
		if !seenBuyers[bid.Buyer] {
			buyerOrder = append(buyerOrder, bid.Buyer)
			seenBuyers[bid.Buyer] = true
		}

		// Keep best bid per buyer; strict improvement keeps the earliest
		existing, exists := bestBids[bid.Buyer]
		if !exists || bid.Price > existing.Price {
			bestBids[bid.Buyer] = bid
		}
	}

	// Sort by best price descending. The stable sort keeps equal best
	// prices in first-occurrence order, which is the tie-break policy.
	sortedBuyers := make([]Buyer, len(buyerOrder))
	copy(sortedBuyers, buyerOrder)
	sort.SliceStable(sortedBuyers, func(i, j int) bool {
		return bestBids[sortedBuyers[i]].Price > bestBids[sortedBuyers[j]].Price
	})

	result := &BidRanking{
		Ranks:        make(map[Buyer]int, len(sortedBuyers)),
		BestBids:     bestBids,
		SortedBuyers: sortedBuyers,
	}

	for rank, buyer := range sortedBuyers {
		result.Ranks[buyer] = rank + 1
	}

	return result
}
