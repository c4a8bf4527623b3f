package core

// FailureReason classifies why winner determination could not produce a
// result.
type FailureReason string

const (
	// ReasonInsufficientBids: not enough bids qualified above the reserve price.
	ReasonInsufficientBids FailureReason = "insufficient_bids"

	// ReasonInsufficientBidders: enough qualifying bids, but from too few distinct buyers.
	ReasonInsufficientBidders FailureReason = "insufficient_bidders"
)

// AuctionError reports a classified winner-determination failure. The
// ledger is left untouched; callers may add bids and evaluate again.
type AuctionError struct {
	Reason  FailureReason
	Message string
}

func (e *AuctionError) Error() string {
	return e.Message
}

// Is matches any AuctionError carrying the same reason, so wrapped errors
// still compare equal to the canonical values under errors.Is.
func (e *AuctionError) Is(target error) bool {
	t, ok := target.(*AuctionError)
	return ok && t.Reason == e.Reason
}

// Canonical failure values returned by the auction strategies.
var (
	// ErrInsufficientBids: fewer qualifying bids than the strategy requires.
	ErrInsufficientBids = &AuctionError{
		Reason:  ReasonInsufficientBids,
		Message: "Need more bids above reserve !",
	}

	// ErrInsufficientBidders: the qualifying bids come from fewer than two
	// distinct buyers, so no clearing price exists.
	ErrInsufficientBidders = &AuctionError{
		Reason:  ReasonInsufficientBidders,
		Message: "Need more buyers !",
	}
)
