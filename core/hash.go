package core

import (
	"crypto/sha256"
	"fmt"
)

// ComputeLedgerHash fingerprints a ledger state: the reserve price plus
// every bid in insertion order. Two ledgers hash equal exactly when they
// hold the same bids in the same order under the same reserve, so run
// reports for the same scenario step can be compared across runs.
//
// Formula: SHA256(reserve + "|" + buyer + ":" + price + "|" + ...)
func ComputeLedgerHash(reservePrice int64, bids []Bid) string {
	data := fmt.Sprintf("%d", reservePrice)

	for _, bid := range bids {
		data += fmt.Sprintf("|%s:%d", bid.Buyer.Name, bid.Price)
	}

	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
