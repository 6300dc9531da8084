package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"auctions/internal/biddingerrors"
	model "auctions/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// AuctionRecord is the mapped row of the auctions table
type AuctionRecord struct {
	ID            int64           `gorm:"primaryKey;autoIncrement:false"`
	Title         string          `gorm:"size:255;not null"`
	StartingPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CurrentPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EndsAt        time.Time       `gorm:"not null;index"`
	Version       int64           `gorm:"not null;default:0"`
	Bids          []BidRecord     `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE"`
}

func (AuctionRecord) TableName() string { return "auctions" }

// BidRecord is the mapped row of the bids table
type BidRecord struct {
	ID        int64           `gorm:"primaryKey"`
	AuctionID int64           `gorm:"not null;index"`
	BidderID  int64           `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (BidRecord) TableName() string { return "bids" }

// OpenGorm connects to one of the supported dialects: mysql, postgres or sqlite
func OpenGorm(dialect, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch dialect {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported gorm dialect %q", dialect)
	}

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", dialect, err)
	}
	return db, nil
}

// GormRepo implements AuctionsRepository on top of the mapped records
type GormRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db, now: time.Now}
}

// Migrate creates or updates the auctions and bids tables
func (r *GormRepo) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&AuctionRecord{}, &BidRecord{})
}

func (r *GormRepo) Create(ctx context.Context, auction *model.Auction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := AuctionRecord{
			ID:            int64(auction.ID()),
			Title:         auction.Title(),
			StartingPrice: auction.StartingPrice().Decimal(),
			CurrentPrice:  auction.CurrentPrice().Decimal(),
			EndsAt:        auction.EndsAt().UTC(),
		}
		if err := tx.Omit("Bids").Create(&rec).Error; err != nil {
			return fmt.Errorf("create auction %d: %w", auction.ID(), err)
		}
		return createBids(tx, auction.ID(), auction.StandingBids())
	})
}

func (r *GormRepo) Get(ctx context.Context, auctionID model.AuctionID) (*model.Auction, error) {
	var rec AuctionRecord
	err := r.db.WithContext(ctx).
		Preload("Bids", orderByID).
		First(&rec, int64(auctionID)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get auction %d: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get auction %d: %w", auctionID, err)
	}
	return rec.toAuction()
}

func (r *GormRepo) Save(ctx context.Context, auction *model.Auction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&AuctionRecord{}).
			Where("id = ? AND version = ?", int64(auction.ID()), auction.Version()).
			Updates(map[string]any{
				"title":          auction.Title(),
				"starting_price": auction.StartingPrice().Decimal(),
				"current_price":  auction.CurrentPrice().Decimal(),
				"ends_at":        auction.EndsAt().UTC(),
				"version":        gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return fmt.Errorf("update auction %d: %w", auction.ID(), res.Error)
		}
		if res.RowsAffected != 1 {
			var count int64
			if err := tx.Model(&AuctionRecord{}).Where("id = ?", int64(auction.ID())).Count(&count).Error; err != nil {
				return fmt.Errorf("save auction %d: %w", auction.ID(), err)
			}
			if count == 0 {
				return fmt.Errorf("save auction %d: %w", auction.ID(), biddingerrors.ErrAuctionNotFound)
			}
			return fmt.Errorf("save auction %d at version %d: %w", auction.ID(), auction.Version(), biddingerrors.ErrConflict)
		}

		var fresh []model.Bid
		for _, b := range auction.Bids() {
			if !b.Persisted() {
				fresh = append(fresh, b)
			}
		}
		if err := createBids(tx, auction.ID(), fresh); err != nil {
			return err
		}

		withdrawn := auction.WithdrawnBidsIDs()
		if len(withdrawn) == 0 {
			return nil
		}
		ids := make([]int64, 0, len(withdrawn))
		for _, id := range withdrawn {
			ids = append(ids, int64(id))
		}
		if err := tx.Where("auction_id = ? AND id IN ?", int64(auction.ID()), ids).Delete(&BidRecord{}).Error; err != nil {
			return fmt.Errorf("delete withdrawn bids of auction %d: %w", auction.ID(), err)
		}
		return nil
	})
}

func (r *GormRepo) GetActive(ctx context.Context) ([]*model.Auction, error) {
	var recs []AuctionRecord
	err := r.db.WithContext(ctx).
		Preload("Bids", orderByID).
		Where("ends_at > ?", r.now().UTC()).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("get active auctions: %w", err)
	}

	auctions := make([]*model.Auction, 0, len(recs))
	for _, rec := range recs {
		a, err := rec.toAuction()
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, a)
	}
	return auctions, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func createBids(tx *gorm.DB, auctionID model.AuctionID, bids []model.Bid) error {
	if len(bids) == 0 {
		return nil
	}
	recs := make([]BidRecord, 0, len(bids))
	for _, b := range bids {
		recs = append(recs, BidRecord{
			ID:        int64(b.ID),
			AuctionID: int64(auctionID),
			BidderID:  int64(b.BidderID),
			Amount:    b.Amount.Decimal(),
		})
	}
	if err := tx.Create(&recs).Error; err != nil {
		return fmt.Errorf("insert bids for auction %d: %w", auctionID, err)
	}
	return nil
}

func (rec AuctionRecord) toAuction() (*model.Auction, error) {
	startingPrice, err := model.DollarsFromDecimal(rec.StartingPrice)
	if err != nil {
		return nil, fmt.Errorf("load auction %d: %w", rec.ID, err)
	}
	bids := make([]model.Bid, 0, len(rec.Bids))
	for _, b := range rec.Bids {
		amount, err := model.DollarsFromDecimal(b.Amount)
		if err != nil {
			return nil, fmt.Errorf("load bid %d: %w", b.ID, err)
		}
		bids = append(bids, model.Bid{
			ID:       model.BidID(b.ID),
			BidderID: model.BidderID(b.BidderID),
			Amount:   amount,
		})
	}
	return model.NewAuction(model.AuctionID(rec.ID), rec.Title, startingPrice, rec.EndsAt, bids, model.WithVersion(rec.Version)), nil
}
