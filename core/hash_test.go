package core

import (
	"crypto/sha256"
	"fmt"
	"testing"
)

func TestComputeLedgerHash(t *testing.T) {
	bids := []Bid{
		{Buyer: Buyer{Name: "A"}, Price: 110},
		{Buyer: Buyer{Name: "B"}, Price: 125},
	}

	hash := ComputeLedgerHash(100, bids)

	// Verify hash is 64 characters (SHA256 hex encoding)
	if len(hash) != 64 {
		t.Errorf("ComputeLedgerHash() hash length = %d, want 64", len(hash))
	}

	// Verify hash contains only hex characters
	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("ComputeLedgerHash() contains non-hex character: %c", c)
		}
	}

	// Same inputs should produce same hash (deterministic)
	hash2 := ComputeLedgerHash(100, bids)
	if hash != hash2 {
		t.Errorf("ComputeLedgerHash() not deterministic")
	}

	// Verify exact hash calculation
	expectedData := "100|A:110|B:125"
	expectedHash := fmt.Sprintf("%x", sha256.Sum256([]byte(expectedData)))
	if hash != expectedHash {
		t.Errorf("ComputeLedgerHash() = %v, want %v", hash, expectedHash)
	}
}

func TestComputeLedgerHash_DifferentInputs(t *testing.T) {
	bids := []Bid{{Buyer: Buyer{Name: "A"}, Price: 110}}

	base := ComputeLedgerHash(100, bids)

	// Different reserves should produce different hashes
	if ComputeLedgerHash(101, bids) == base {
		t.Errorf("Different reserves should produce different hashes")
	}

	// Different prices should produce different hashes
	repriced := []Bid{{Buyer: Buyer{Name: "A"}, Price: 111}}
	if ComputeLedgerHash(100, repriced) == base {
		t.Errorf("Different prices should produce different hashes")
	}

	// Different buyers should produce different hashes
	renamed := []Bid{{Buyer: Buyer{Name: "B"}, Price: 110}}
	if ComputeLedgerHash(100, renamed) == base {
		t.Errorf("Different buyers should produce different hashes")
	}
}

func TestComputeLedgerHash_OrderSensitive(t *testing.T) {
	forward := []Bid{
		{Buyer: Buyer{Name: "A"}, Price: 110},
		{Buyer: Buyer{Name: "B"}, Price: 125},
	}
	reversed := []Bid{
		{Buyer: Buyer{Name: "B"}, Price: 125},
		{Buyer: Buyer{Name: "A"}, Price: 110},
	}

	// Insertion order is part of the ledger state
	if ComputeLedgerHash(100, forward) == ComputeLedgerHash(100, reversed) {
		t.Errorf("Bid order should affect the hash")
	}
}

func TestComputeLedgerHash_EmptyLedger(t *testing.T) {
	hash := ComputeLedgerHash(100, nil)

	// An empty ledger hashes just the reserve price
	expectedHash := fmt.Sprintf("%x", sha256.Sum256([]byte("100")))
	if hash != expectedHash {
		t.Errorf("Empty ledger should hash just the reserve")
	}
}
