package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"auctions/internal/biddingerrors"
	model "auctions/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionsRepository loads and stores Auction aggregates.
//
// Get returns a private copy that reflects every committed withdrawal. Save
// inserts unpersisted bids, deletes withdrawn ones and fails with
// ErrAuctionNotFound for unknown auctions or ErrConflict when the auction
// changed since it was loaded. GetActive returns auctions ending after now.
type AuctionsRepository interface {
	Get(ctx context.Context, auctionID model.AuctionID) (*model.Auction, error)
	Save(ctx context.Context, auction *model.Auction) error
	GetActive(ctx context.Context) ([]*model.Auction, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionsRepository
type MemoryRepo struct {
	mu        sync.RWMutex
	auctions  map[model.AuctionID]*model.Auction // key: auctionID -> value: stored copy
	lastBidID model.BidID
	now       func() time.Time
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[model.AuctionID]*model.Auction),
		now:      time.Now,
	}
}

// Create stores a new auction, assigning ids to its unpersisted bids
func (r *MemoryRepo) Create(_ context.Context, auction *model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.ID()]; ok {
		return fmt.Errorf("create auction %d: %w", auction.ID(), biddingerrors.ErrConflict)
	}
	r.auctions[auction.ID()] = r.commit(auction, 0)
	return nil
}

// Get returns a deep copy of the stored auction
func (r *MemoryRepo) Get(_ context.Context, auctionID model.AuctionID) (*model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("get auction %d: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return stored.Clone(), nil
}

// Save replaces the stored auction with a copy that drops withdrawn bids
func (r *MemoryRepo) Save(_ context.Context, auction *model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.auctions[auction.ID()]
	if !ok {
		return fmt.Errorf("save auction %d: %w", auction.ID(), biddingerrors.ErrAuctionNotFound)
	}
	if stored.Version() != auction.Version() {
		return fmt.Errorf("save auction %d at version %d, stored %d: %w",
			auction.ID(), auction.Version(), stored.Version(), biddingerrors.ErrConflict)
	}

	r.auctions[auction.ID()] = r.commit(auction, stored.Version()+1)
	return nil
}

// GetActive returns copies of every auction ending after now
func (r *MemoryRepo) GetActive(_ context.Context) ([]*model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.now()
	active := make([]*model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		if a.IsActive(now) {
			active = append(active, a.Clone())
		}
	}
	return active, nil
}

// commit builds the stored form of auction. Callers must hold the write lock.
func (r *MemoryRepo) commit(auction *model.Auction, version int64) *model.Auction {
	standing := auction.StandingBids()
	for _, b := range standing {
		if b.ID > r.lastBidID {
			r.lastBidID = b.ID
		}
	}

	bids := make([]model.Bid, 0, len(standing))
	for _, b := range standing {
		if !b.Persisted() {
			r.lastBidID++
			b.ID = r.lastBidID
		}
		bids = append(bids, b)
	}
	return model.NewAuction(auction.ID(), auction.Title(), auction.StartingPrice(), auction.EndsAt(), bids, model.WithVersion(version))
}
