package helpers

import (
	"time"

	model "auctions/internal/models"
)

// Request/Response DTOs
type WithdrawBidsRequest struct {
	BidsIDs []int64 `json:"bids_ids" binding:"required,min=1,dive,gt=0"`
}

type BidResponse struct {
	ID       int64  `json:"id"`
	BidderID int64  `json:"bidder_id"`
	Amount   string `json:"amount"`
}

type AuctionResponse struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	StartingPrice string        `json:"starting_price"`
	CurrentPrice  string        `json:"current_price"`
	EndsAt        string        `json:"ends_at"`
	WinnerID      *int64        `json:"winner_id"`
	Bids          []BidResponse `json:"bids"`
	WithdrawnIDs  []int64       `json:"withdrawn_bids_ids"`
}

// ToAuctionResponse flattens an auction into its JSON form
func ToAuctionResponse(a *model.Auction) AuctionResponse {
	resp := AuctionResponse{
		ID:            int64(a.ID()),
		Title:         a.Title(),
		StartingPrice: a.StartingPrice().String(),
		CurrentPrice:  a.CurrentPrice().String(),
		EndsAt:        a.EndsAt().UTC().Format(time.RFC3339),
		Bids:          []BidResponse{},
		WithdrawnIDs:  []int64{},
	}
	if winner, ok := a.Winner(); ok {
		id := int64(winner)
		resp.WinnerID = &id
	}
	for _, b := range a.StandingBids() {
		resp.Bids = append(resp.Bids, BidResponse{
			ID:       int64(b.ID),
			BidderID: int64(b.BidderID),
			Amount:   b.Amount.String(),
		})
	}
	for _, id := range a.WithdrawnBidsIDs() {
		resp.WithdrawnIDs = append(resp.WithdrawnIDs, int64(id))
	}
	return resp
}

// ToBidIDs converts request ids into domain ids
func (r WithdrawBidsRequest) ToBidIDs() []model.BidID {
	ids := make([]model.BidID, 0, len(r.BidsIDs))
	for _, id := range r.BidsIDs {
		ids = append(ids, model.BidID(id))
	}
	return ids
}
