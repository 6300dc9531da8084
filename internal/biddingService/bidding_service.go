package bidding

import (
	"context"
	"fmt"

	"auctions/internal/biddingerrors"
	model "auctions/internal/models"
	"auctions/internal/notifications"
	"auctions/internal/repository"
)

// BiddingService is the entry point the HTTP layer talks to
type BiddingService struct {
	repo        repository.AuctionsRepository
	withdrawing *WithdrawingBids
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionsRepository, gateway notifications.Gateway) *BiddingService {
	return &BiddingService{
		repo:        repo,
		withdrawing: NewWithdrawingBids(repo, gateway),
	}
}

// WithdrawBids validates the request and runs the WithdrawingBids use case
func (s *BiddingService) WithdrawBids(ctx context.Context, input WithdrawingBidsInput) error {
	if input.AuctionID <= 0 {
		return fmt.Errorf("service: %w - non-positive auction ID", biddingerrors.ErrInvalidInput)
	}
	if len(input.BidsIDs) == 0 {
		return fmt.Errorf("service: %w - no bids to withdraw", biddingerrors.ErrInvalidInput)
	}
	return s.withdrawing.Execute(ctx, input)
}

// GetAuction returns a specific auction with its bids
func (s *BiddingService) GetAuction(ctx context.Context, auctionID model.AuctionID) (*model.Auction, error) {
	if auctionID <= 0 {
		return nil, fmt.Errorf("service: %w - non-positive auction ID", biddingerrors.ErrInvalidInput)
	}

	auction, err := s.repo.Get(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}

	return auction, nil
}

// GetActiveAuctions returns every auction that has not ended yet
func (s *BiddingService) GetActiveAuctions(ctx context.Context) ([]*model.Auction, error) {
	auctions, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get active auctions: %w", err)
	}

	return auctions, nil
}
