package core

// Buyer identifies an auction participant. Buyers are plain values compared
// by name: two Buyer values with the same Name are the same participant,
// which makes Buyer usable as a map key for counting distinct bidders and
// excluding a winner's own bids.
type Buyer struct {
	Name string
}

// String returns the buyer's name.
func (b Buyer) String() string {
	return b.Name
}

// MarshalText renders the buyer as its bare name, so Buyer works both as a
// JSON map key and as a compact field value.
func (b Buyer) MarshalText() ([]byte, error) {
	return []byte(b.Name), nil
}

// UnmarshalText parses a buyer from its bare name.
func (b *Buyer) UnmarshalText(text []byte) error {
	b.Name = string(text)
	return nil
}

// Bid is a single sealed bid: one buyer offering one price for the object.
// Bids are immutable values; a buyer may place any number of them.
type Bid struct {
	Buyer Buyer `json:"buyer"`
	Price int64 `json:"price"`
}

// AuctionObject is the bid ledger for one auctioned object. The reserve
// price is fixed at construction and bids only accumulate; there is no
// removal. The zero value is unusable, use NewAuctionObject.
//
// An AuctionObject is not safe for concurrent use: callers must not append
// bids while an evaluation is running.
type AuctionObject struct {
	reservePrice int64
	bids         []Bid
}

// NewAuctionObject creates an empty ledger with the given reserve price.
// The reserve is not validated here; input layers decide which reserves
// they accept.
func NewAuctionObject(reservePrice int64) *AuctionObject {
	return &AuctionObject{reservePrice: reservePrice}
}

// AddBids appends one bid per price for the given buyer, preserving call
// order. Prices are recorded as given; qualification against the reserve
// happens at evaluation time, not here.
func (o *AuctionObject) AddBids(buyer Buyer, prices ...int64) {
	for _, price := range prices {
		o.bids = append(o.bids, Bid{Buyer: buyer, Price: price})
	}
}

// ReservePrice returns the reserve fixed at construction.
func (o *AuctionObject) ReservePrice() int64 {
	return o.reservePrice
}

// Bids returns a copy of the ledger in insertion order. Mutating the
// returned slice does not affect the ledger.
func (o *AuctionObject) Bids() []Bid {
	bids := make([]Bid, len(o.bids))
	copy(bids, o.bids)
	return bids
}

// BidCount returns the number of bids recorded so far.
func (o *AuctionObject) BidCount() int {
	return len(o.bids)
}

// AuctionResult contains the outcome of a successful winner determination.
type AuctionResult struct {
	// Object is the ledger the result was computed from
	Object *AuctionObject

	// WinningBid is the bid that won the object
	WinningBid Bid

	// ClearingPrice is the price the winner actually pays; under
	// second-price rules it never exceeds WinningBid.Price
	ClearingPrice int64
}
