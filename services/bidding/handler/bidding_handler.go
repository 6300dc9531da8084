package handler

import (
	"context"
	"fmt"
	"net/http"

	bidding "auctions/internal/biddingService"
	model "auctions/internal/models"
	"auctions/services/bidding/helpers"
	"auctions/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_service.go -package=handler

type BiddingServiceInterface interface {
	WithdrawBids(ctx context.Context, input bidding.WithdrawingBidsInput) error
	GetAuction(ctx context.Context, auctionID model.AuctionID) (*model.Auction, error)
	GetActiveAuctions(ctx context.Context) ([]*model.Auction, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// WithdrawBidsHandler handles POST /auctions/:auction_id/withdrawals
func (h *BiddingHandler) WithdrawBidsHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		h.fail(c, "WithdrawBidsHandler", err, map[string]any{"auction_id": c.Param("auction_id")})
		return
	}

	var req helpers.WithdrawBidsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WithdrawBidsHandler", err)
		return
	}

	input := bidding.WithdrawingBidsInput{AuctionID: auctionID, BidsIDs: req.ToBidIDs()}
	if err := h.service.WithdrawBids(c.Request.Context(), input); err != nil {
		h.fail(c, "WithdrawBidsHandler", err, map[string]any{
			"auction_id": auctionID,
			"bids_ids":   req.BidsIDs,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID, "bids_ids": req.BidsIDs}, "bids withdrawn successfully")
	helpers.LogSuccess("WithdrawBidsHandler", "bids withdrawn successfully", map[string]any{
		"auction_id": auctionID,
		"bids_ids":   req.BidsIDs,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *BiddingHandler) GetAuctionHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		h.fail(c, "GetAuctionHandler", err, map[string]any{"auction_id": c.Param("auction_id")})
		return
	}

	auction, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		h.fail(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"bids_count": len(auction.StandingBids()),
	})
}

// GetActiveAuctionsHandler handles GET /auctions
func (h *BiddingHandler) GetActiveAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.GetActiveAuctions(c.Request.Context())
	if err != nil {
		h.fail(c, "GetActiveAuctionsHandler", err, map[string]any{})
		return
	}

	resp := make([]helpers.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		resp = append(resp, helpers.ToAuctionResponse(a))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "active auctions retrieved successfully")
	helpers.LogSuccess("GetActiveAuctionsHandler", "active auctions retrieved successfully", map[string]any{
		"auctions_count": len(resp),
	})
}

func (h *BiddingHandler) fail(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}
