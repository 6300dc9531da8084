package integrationtests

import (
	"net/http"
	"testing"
	"time"

	model "auctions/internal/models"
	"auctions/services/bidding/helpers"

	"github.com/stretchr/testify/require"
)

func contestedAuction() *model.Auction {
	return model.NewAuction(2, "Vintage camera", model.MustDollars("1.00"), time.Now().Add(time.Hour), []model.Bid{
		{ID: 2, BidderID: 1, Amount: model.MustDollars("11.00")},
		{ID: 4, BidderID: 2, Amount: model.MustDollars("10.50")},
	})
}

// WithdrawBidsHandler Tests
func TestWithdrawBids(t *testing.T) {
	tests := []struct {
		name         string
		request      any
		auctionPath  string
		wantStatus   int
		wantPrice    string
		wantWinner   any
		wantNotified []sentNotification
	}{
		{
			name:         "Winner_Withdrawn",
			request:      helpers.WithdrawBidsRequest{BidsIDs: []int64{1, 2, 3}},
			auctionPath:  "/auctions/2",
			wantStatus:   http.StatusOK,
			wantPrice:    "10.50",
			wantWinner:   2.0,
			wantNotified: []sentNotification{{AuctionID: 2, BidderID: 2}},
		},
		{
			name:        "Loser_Withdrawn",
			request:     helpers.WithdrawBidsRequest{BidsIDs: []int64{4}},
			auctionPath: "/auctions/2",
			wantStatus:  http.StatusOK,
			wantPrice:   "11.00",
			wantWinner:  1.0,
		},
		{
			name:        "All_Withdrawn",
			request:     helpers.WithdrawBidsRequest{BidsIDs: []int64{2, 4}},
			auctionPath: "/auctions/2",
			wantStatus:  http.StatusOK,
			wantPrice:   "1.00",
			wantWinner:  nil,
		},
		{
			name:        "Invalid_JSON",
			request:     "{bids_ids: [1,}",
			auctionPath: "/auctions/2",
			wantStatus:  http.StatusBadRequest,
			wantPrice:   "11.00",
			wantWinner:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, gateway := SetupTestRouterWithAuctions(t, contestedAuction())

			_, w := ExecuteRequestAndParse(t, router, http.MethodPost, tt.auctionPath+"/withdrawals", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, tt.auctionPath, nil)
			require.Equal(t, http.StatusOK, w.Code)
			data := resp["data"].(map[string]any)
			require.Equal(t, tt.wantPrice, data["current_price"])
			require.Equal(t, tt.wantWinner, data["winner_id"])
			require.Empty(t, data["withdrawn_bids_ids"], "withdrawn bids are deleted on save")

			require.Equal(t, tt.wantNotified, gateway.Sent())
		})
	}
}

func TestWithdrawBids_Twice(t *testing.T) {
	router, gateway := SetupTestRouterWithAuctions(t, contestedAuction())

	for i := 0; i < 2; i++ {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/2/withdrawals", helpers.WithdrawBidsRequest{BidsIDs: []int64{2}})
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.Len(t, gateway.Sent(), 1)
}

func TestWithdrawBids_UnknownAuction(t *testing.T) {
	router, gateway := SetupTestRouterWithAuctions(t, contestedAuction())

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/42/withdrawals", helpers.WithdrawBidsRequest{BidsIDs: []int64{1}})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "auction not found", resp["message"])
	require.Empty(t, gateway.Sent())
}

// GetActiveAuctionsHandler Tests
func TestGetActiveAuctions(t *testing.T) {
	ended := model.NewAuction(7, "Expired lot", model.MustDollars("3.00"), time.Now().Add(-time.Hour), nil)
	router, _ := SetupTestRouterWithAuctions(t, contestedAuction(), ended)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].([]any)
	require.Len(t, data, 1)
	require.Equal(t, 2.0, data[0].(map[string]any)["id"])
}
