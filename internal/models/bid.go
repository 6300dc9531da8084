package models

// AuctionID identifies an auction
type AuctionID int64

// BidID identifies a persisted bid. Zero means the bid has not been stored yet.
type BidID int64

// BidderID identifies a participant placing bids
type BidderID int64

// Bid represents one bidder's offer on an auction. Bids are passed by value and never modified.
type Bid struct {
	ID       BidID    `json:"id"`
	BidderID BidderID `json:"bidder_id"`
	Amount   Money    `json:"amount"`
}

// NewBid builds a bid that has not been persisted yet
func NewBid(bidderID BidderID, amount Money) Bid {
	return Bid{BidderID: bidderID, Amount: amount}
}

// Persisted reports whether a repository has assigned the bid an identity
func (b Bid) Persisted() bool {
	return b.ID != 0
}
