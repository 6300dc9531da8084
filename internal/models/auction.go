package models

import (
	"sort"
	"time"
)

// Auction is the aggregate root owning an auction's bids.
//
// Withdrawn bids stay in the bid list until a repository saves the auction;
// price and winner are always derived from bids minus the withdrawn set.
type Auction struct {
	id            AuctionID
	title         string
	startingPrice Money
	endsAt        time.Time
	bids          []Bid
	withdrawn     map[BidID]struct{}
	version       int64
}

// AuctionOption customizes an Auction when a repository rebuilds it
type AuctionOption func(*Auction)

// WithVersion records the stored version the auction was loaded at
func WithVersion(version int64) AuctionOption {
	return func(a *Auction) {
		a.version = version
	}
}

// NewAuction builds an auction from its stored state. The bid slice is copied.
func NewAuction(id AuctionID, title string, startingPrice Money, endsAt time.Time, bids []Bid, opts ...AuctionOption) *Auction {
	a := &Auction{
		id:            id,
		title:         title,
		startingPrice: startingPrice,
		endsAt:        endsAt,
		bids:          append([]Bid(nil), bids...),
		withdrawn:     make(map[BidID]struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ID returns the auction identifier
func (a *Auction) ID() AuctionID { return a.id }

// Title returns the lot title
func (a *Auction) Title() string { return a.title }

// StartingPrice is the current price while no bid stands
func (a *Auction) StartingPrice() Money { return a.startingPrice }

// EndsAt returns when bidding closes
func (a *Auction) EndsAt() time.Time { return a.endsAt }

// Version is the stored revision this aggregate was loaded at
func (a *Auction) Version() int64 { return a.version }

// Bids returns a copy of every bid, withdrawn ones included
func (a *Auction) Bids() []Bid {
	return append([]Bid(nil), a.bids...)
}

// WithdrawnBidsIDs returns the staged withdrawals in ascending order
func (a *Auction) WithdrawnBidsIDs() []BidID {
	ids := make([]BidID, 0, len(a.withdrawn))
	for id := range a.withdrawn {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// StandingBids returns the bids that are not staged for withdrawal
func (a *Auction) StandingBids() []Bid {
	standing := make([]Bid, 0, len(a.bids))
	for _, b := range a.bids {
		if !a.IsWithdrawn(b.ID) {
			standing = append(standing, b)
		}
	}
	return standing
}

func (a *Auction) IsWithdrawn(id BidID) bool {
	_, ok := a.withdrawn[id]
	return ok
}

// IsActive reports whether the auction ends strictly after now
func (a *Auction) IsActive(now time.Time) bool {
	return a.endsAt.After(now)
}

// PlaceBid appends an unpersisted bid. Placement rules are enforced by the caller.
func (a *Auction) PlaceBid(bidderID BidderID, amount Money) {
	a.bids = append(a.bids, NewBid(bidderID, amount))
}

// WithdrawBids stages the given bids for removal. Ids that match no persisted
// bid of this auction are ignored, so retries and stale ids are harmless.
func (a *Auction) WithdrawBids(ids []BidID) {
	known := make(map[BidID]struct{}, len(a.bids))
	for _, b := range a.bids {
		if b.Persisted() {
			known[b.ID] = struct{}{}
		}
	}
	for _, id := range ids {
		if _, ok := known[id]; ok {
			a.withdrawn[id] = struct{}{}
		}
	}
}

// WinningBid returns the highest standing bid. Equal amounts go to the lower
// bid id; unpersisted bids rank after persisted ones in placement order.
func (a *Auction) WinningBid() (Bid, bool) {
	var (
		winning Bid
		found   bool
	)
	for _, b := range a.bids {
		if a.IsWithdrawn(b.ID) {
			continue
		}
		if !found || outranks(b, winning) {
			winning = b
			found = true
		}
	}
	return winning, found
}

func outranks(candidate, current Bid) bool {
	switch c := candidate.Amount.Cmp(current.Amount); {
	case c > 0:
		return true
	case c < 0:
		return false
	}
	if !candidate.Persisted() {
		return false
	}
	return !current.Persisted() || candidate.ID < current.ID
}

// Winner returns the bidder holding the winning bid, if any
func (a *Auction) Winner() (BidderID, bool) {
	b, ok := a.WinningBid()
	if !ok {
		return 0, false
	}
	return b.BidderID, true
}

// CurrentPrice is the winning amount, or the starting price without standing bids
func (a *Auction) CurrentPrice() Money {
	b, ok := a.WinningBid()
	if !ok {
		return a.startingPrice
	}
	return b.Amount
}

// Clone returns a deep, independent copy including staged withdrawals
func (a *Auction) Clone() *Auction {
	c := NewAuction(a.id, a.title, a.startingPrice, a.endsAt, a.bids, WithVersion(a.version))
	for id := range a.withdrawn {
		c.withdrawn[id] = struct{}{}
	}
	return c
}
