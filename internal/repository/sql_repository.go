package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"auctions/internal/biddingerrors"
	model "auctions/internal/models"

	"github.com/shopspring/decimal"
)

// SQLRepo stores auctions in the `auctions` and `bids` tables through plain SQL.
// Statements use `?` placeholders (MySQL dialect). The schema lives in migrations/.
type SQLRepo struct {
	db  *sql.DB
	now func() time.Time
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{db: db, now: time.Now}
}

// Create inserts a new auction together with its standing bids
func (r *SQLRepo) Create(ctx context.Context, auction *model.Auction) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		query := `
        INSERT INTO auctions (id, title, starting_price, current_price, ends_at, version)
        VALUES (?, ?, ?, ?, ?, 0)
    `
		if _, err := tx.ExecContext(ctx, query,
			int64(auction.ID()), auction.Title(), auction.StartingPrice().Decimal(),
			auction.CurrentPrice().Decimal(), auction.EndsAt().UTC()); err != nil {
			return fmt.Errorf("insert auction %d: %w", auction.ID(), err)
		}
		for _, b := range auction.StandingBids() {
			if err := insertBid(ctx, tx, auction.ID(), b); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLRepo) Get(ctx context.Context, auctionID model.AuctionID) (*model.Auction, error) {
	query := `
        SELECT id, title, starting_price, ends_at, version
        FROM auctions WHERE id = ?
    `
	row, err := scanAuction(r.db.QueryRowContext(ctx, query, int64(auctionID)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get auction %d: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get auction %d: %w", auctionID, err)
	}

	bids, err := loadBids(ctx, r.db, []model.AuctionID{auctionID})
	if err != nil {
		return nil, err
	}
	return row.toAuction(bids[auctionID])
}

// Save updates the auction row, inserts new bids and deletes withdrawn ones in one transaction
func (r *SQLRepo) Save(ctx context.Context, auction *model.Auction) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		query := `
        UPDATE auctions
        SET title = ?, starting_price = ?, current_price = ?, ends_at = ?, version = version + 1
        WHERE id = ? AND version = ?
    `
		res, err := tx.ExecContext(ctx, query,
			auction.Title(), auction.StartingPrice().Decimal(), auction.CurrentPrice().Decimal(),
			auction.EndsAt().UTC(), int64(auction.ID()), auction.Version())
		if err != nil {
			return fmt.Errorf("update auction %d: %w", auction.ID(), err)
		}
		updated, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update auction %d: %w", auction.ID(), err)
		}
		if updated != 1 {
			return missingOrStale(ctx, tx, auction)
		}

		for _, b := range auction.Bids() {
			if b.Persisted() {
				continue
			}
			if err := insertBid(ctx, tx, auction.ID(), b); err != nil {
				return err
			}
		}

		withdrawn := auction.WithdrawnBidsIDs()
		if len(withdrawn) == 0 {
			return nil
		}
		args := make([]any, 0, len(withdrawn)+1)
		args = append(args, int64(auction.ID()))
		for _, id := range withdrawn {
			args = append(args, int64(id))
		}
		del := `DELETE FROM bids WHERE auction_id = ? AND id IN (` + placeholders(len(withdrawn)) + `)`
		if _, err := tx.ExecContext(ctx, del, args...); err != nil {
			return fmt.Errorf("delete withdrawn bids of auction %d: %w", auction.ID(), err)
		}
		return nil
	})
}

func (r *SQLRepo) GetActive(ctx context.Context) ([]*model.Auction, error) {
	query := `
        SELECT id, title, starting_price, ends_at, version
        FROM auctions WHERE ends_at > ?
    `
	rows, err := r.db.QueryContext(ctx, query, r.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("get active auctions: %w", err)
	}
	defer rows.Close()

	var (
		found []auctionRow
		ids   []model.AuctionID
	)
	for rows.Next() {
		row, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("get active auctions: %w", err)
		}
		found = append(found, row)
		ids = append(ids, row.id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get active auctions: %w", err)
	}
	// release the connection before the bids query
	rows.Close()
	if len(found) == 0 {
		return []*model.Auction{}, nil
	}

	bids, err := loadBids(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	auctions := make([]*model.Auction, 0, len(found))
	for _, row := range found {
		a, err := row.toAuction(bids[row.id])
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, a)
	}
	return auctions, nil
}

func (r *SQLRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type auctionRow struct {
	id            model.AuctionID
	title         string
	startingPrice decimal.Decimal
	endsAt        time.Time
	version       int64
}

func scanAuction(s interface{ Scan(dest ...any) error }) (auctionRow, error) {
	var (
		row auctionRow
		id  int64
	)
	if err := s.Scan(&id, &row.title, &row.startingPrice, &row.endsAt, &row.version); err != nil {
		return auctionRow{}, err
	}
	row.id = model.AuctionID(id)
	return row, nil
}

func (row auctionRow) toAuction(bids []model.Bid) (*model.Auction, error) {
	price, err := model.DollarsFromDecimal(row.startingPrice)
	if err != nil {
		return nil, fmt.Errorf("load auction %d: %w", row.id, err)
	}
	return model.NewAuction(row.id, row.title, price, row.endsAt, bids, model.WithVersion(row.version)), nil
}

func loadBids(ctx context.Context, q queryer, auctionIDs []model.AuctionID) (map[model.AuctionID][]model.Bid, error) {
	args := make([]any, 0, len(auctionIDs))
	for _, id := range auctionIDs {
		args = append(args, int64(id))
	}
	query := `SELECT id, auction_id, bidder_id, amount FROM bids WHERE auction_id IN (` +
		placeholders(len(auctionIDs)) + `) ORDER BY id`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load bids: %w", err)
	}
	defer rows.Close()

	bids := make(map[model.AuctionID][]model.Bid, len(auctionIDs))
	for rows.Next() {
		var (
			id, auctionID, bidderID int64
			amount                  decimal.Decimal
		)
		if err := rows.Scan(&id, &auctionID, &bidderID, &amount); err != nil {
			return nil, fmt.Errorf("load bids: %w", err)
		}
		money, err := model.DollarsFromDecimal(amount)
		if err != nil {
			return nil, fmt.Errorf("load bid %d: %w", id, err)
		}
		bids[model.AuctionID(auctionID)] = append(bids[model.AuctionID(auctionID)], model.Bid{
			ID:       model.BidID(id),
			BidderID: model.BidderID(bidderID),
			Amount:   money,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load bids: %w", err)
	}
	return bids, nil
}

// insertBid keeps the id of bids that already have one, otherwise the
// auto-increment column assigns it.
func insertBid(ctx context.Context, tx *sql.Tx, auctionID model.AuctionID, b model.Bid) error {
	query := `INSERT INTO bids (auction_id, bidder_id, amount) VALUES (?, ?, ?)`
	args := []any{int64(auctionID), int64(b.BidderID), b.Amount.Decimal()}
	if b.Persisted() {
		query = `INSERT INTO bids (id, auction_id, bidder_id, amount) VALUES (?, ?, ?, ?)`
		args = append([]any{int64(b.ID)}, args...)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert bid for auction %d: %w", auctionID, err)
	}
	return nil
}

// missingOrStale explains why an optimistic update touched no row
func missingOrStale(ctx context.Context, tx *sql.Tx, auction *model.Auction) error {
	var count int
	err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM auctions WHERE id = ?`, int64(auction.ID())).Scan(&count)
	if err != nil {
		return fmt.Errorf("save auction %d: %w", auction.ID(), err)
	}
	if count == 0 {
		return fmt.Errorf("save auction %d: %w", auction.ID(), biddingerrors.ErrAuctionNotFound)
	}
	return fmt.Errorf("save auction %d at version %d: %w", auction.ID(), auction.Version(), biddingerrors.ErrConflict)
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
