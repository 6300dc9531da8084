package bidding

import (
	"context"
	"fmt"

	model "auctions/internal/models"
	"auctions/internal/notifications"
	"auctions/internal/repository"
	"auctions/utils"
)

// WithdrawingBidsInput names the auction and the bids to withdraw from it
type WithdrawingBidsInput struct {
	AuctionID model.AuctionID
	BidsIDs   []model.BidID
}

// WithdrawingBids removes bids from an auction and tells the new winner, if
// the withdrawal changed who is winning.
type WithdrawingBids struct {
	repo    repository.AuctionsRepository
	gateway notifications.Gateway
}

func NewWithdrawingBids(repo repository.AuctionsRepository, gateway notifications.Gateway) *WithdrawingBids {
	return &WithdrawingBids{
		repo:    repo,
		gateway: gateway,
	}
}

// Execute loads the auction, stages the withdrawal, notifies a changed winner
// and saves the auction, in that order. The notification is decided on the
// in-memory state and always precedes Save. Errors are returned wrapped and
// nothing is retried; on ErrConflict the caller must run Execute again.
func (uc *WithdrawingBids) Execute(ctx context.Context, input WithdrawingBidsInput) error {
	auction, err := uc.repo.Get(ctx, input.AuctionID)
	if err != nil {
		return fmt.Errorf("service: failed to load auction %d: %w", input.AuctionID, err)
	}

	previousWinner, hadWinner := auction.Winner()
	auction.WithdrawBids(input.BidsIDs)
	newWinner, hasWinner := auction.Winner()

	if hasWinner && (!hadWinner || newWinner != previousWinner) {
		if err := uc.gateway.NotifyAboutWinningAuction(ctx, auction.ID(), newWinner); err != nil {
			return fmt.Errorf("service: failed to notify bidder %d about auction %d: %w", newWinner, auction.ID(), err)
		}
		utils.Info("winner changed after bid withdrawal", map[string]any{
			"auction_id":      auction.ID(),
			"previous_winner": previousWinner,
			"new_winner":      newWinner,
		})
	}

	if err := uc.repo.Save(ctx, auction); err != nil {
		return fmt.Errorf("service: failed to save auction %d: %w", auction.ID(), err)
	}
	return nil
}
