package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	bidding "auctions/internal/biddingService"
	"auctions/internal/config"
	model "auctions/internal/models"
	"auctions/internal/notifications"
	"auctions/internal/repository"
	"auctions/internal/server"
	"auctions/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
)

// auctionStore is what main needs from a backend: the port plus seeding
type auctionStore interface {
	repository.AuctionsRepository
	Create(ctx context.Context, auction *model.Auction) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		utils.Fatal("invalid log level", map[string]any{"level": cfg.Log.Level, "error": err.Error()})
	}
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to open repository", map[string]any{"backend": cfg.Repository.Backend, "error": err.Error()})
	}
	defer closeRepo()

	if cfg.Repository.SeedDemo {
		seedDemoAuctions(ctx, repo)
	}

	gateway, closeGateway, err := openGateway(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to open notification gateway", map[string]any{"backend": cfg.Notifications.Backend, "error": err.Error()})
	}
	defer closeGateway()

	biddingSvc := bidding.NewBiddingService(repo, gateway)
	router := server.SetupRouter(biddingSvc)

	utils.Info("starting auction server", map[string]any{"config": cfg.String()})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

func openRepository(ctx context.Context, cfg *config.Config) (auctionStore, func(), error) {
	switch cfg.Repository.Backend {
	case config.BackendSQL:
		db, err := sql.Open("mysql", cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping mysql: %w", err)
		}
		return repository.NewSQLRepo(db), func() { _ = db.Close() }, nil

	case config.BackendGorm:
		db, err := repository.OpenGorm(cfg.Gorm.Dialect, cfg.Gorm.DSN)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewGormRepo(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repo, closeDB, nil

	default:
		return repository.NewMemoryRepo(), func() {}, nil
	}
}

func openGateway(ctx context.Context, cfg *config.Config) (notifications.Gateway, func(), error) {
	if cfg.Notifications.Backend != config.NotificationsRedis {
		return notifications.NewLogGateway(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	return notifications.NewRedisGateway(client, cfg.Redis.Channel), func() { _ = client.Close() }, nil
}

// seedDemoAuctions adds sample auctions; ones that already exist are skipped
func seedDemoAuctions(ctx context.Context, repo auctionStore) {
	endsAt := time.Now().Add(7 * 24 * time.Hour)
	auctions := []*model.Auction{
		model.NewAuction(1, "Antique clock", model.MustDollars("100.00"), endsAt, nil),
		model.NewAuction(2, "Vintage camera", model.MustDollars("1.00"), endsAt, []model.Bid{
			{ID: 2, BidderID: 1, Amount: model.MustDollars("11.00")},
			{ID: 4, BidderID: 2, Amount: model.MustDollars("10.50")},
		}),
		model.NewAuction(3, "Oil painting", model.MustDollars("150.00"), endsAt, []model.Bid{
			model.NewBid(3, model.MustDollars("175.00")),
		}),
	}

	for _, a := range auctions {
		if err := repo.Create(ctx, a); err != nil {
			utils.Warn("skipping demo auction", map[string]any{"auction_id": a.ID(), "error": err.Error()})
		}
	}
}
