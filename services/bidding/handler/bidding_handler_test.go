package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bidding "auctions/internal/biddingService"
	"auctions/internal/biddingerrors"
	model "auctions/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *MockBiddingServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/withdrawals", handler.WithdrawBidsHandler)
	router.GET("/auctions/:auction_id", handler.GetAuctionHandler)
	router.GET("/auctions", handler.GetActiveAuctionsHandler)
	return router, mockService
}

func serve(t *testing.T, router *gin.Engine, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func contestedAuction() *model.Auction {
	return model.NewAuction(2, "Vintage camera", model.MustDollars("1.00"), time.Now().Add(time.Hour), []model.Bid{
		{ID: 2, BidderID: 1, Amount: model.MustDollars("11.00")},
		{ID: 4, BidderID: 2, Amount: model.MustDollars("10.50")},
	})
}

// Test WithdrawBidsHandler
func TestWithdrawBidsHandler(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		mockSetup      func(m *MockBiddingServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			path: "/auctions/2/withdrawals",
			body: `{"bids_ids":[1,2,3]}`,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().
					WithdrawBids(gomock.Any(), bidding.WithdrawingBidsInput{AuctionID: 2, BidsIDs: []model.BidID{1, 2, 3}}).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids withdrawn successfully",
		},
		{
			name:           "invalid_json",
			path:           "/auctions/2/withdrawals",
			body:           `{invalid json}`,
			mockSetup:      func(*MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_bids_ids",
			path:           "/auctions/2/withdrawals",
			body:           `{}`,
			mockSetup:      func(*MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "empty_bids_ids",
			path:           "/auctions/2/withdrawals",
			body:           `{"bids_ids":[]}`,
			mockSetup:      func(*MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "non_numeric_auction_id",
			path:           "/auctions/abc/withdrawals",
			body:           `{"bids_ids":[1]}`,
			mockSetup:      func(*MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name: "auction_not_found",
			path: "/auctions/9/withdrawals",
			body: `{"bids_ids":[1]}`,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().WithdrawBids(gomock.Any(), gomock.Any()).Return(biddingerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name: "conflict",
			path: "/auctions/2/withdrawals",
			body: `{"bids_ids":[2]}`,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().WithdrawBids(gomock.Any(), gomock.Any()).Return(biddingerrors.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "modified concurrently",
		},
		{
			name: "service_generic_error",
			path: "/auctions/2/withdrawals",
			body: `{"bids_ids":[2]}`,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().WithdrawBids(gomock.Any(), gomock.Any()).Return(errors.New("mailer unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService := newTestRouter(t)
			tc.mockSetup(mockService)

			status, resp := serve(t, router, http.MethodPost, tc.path, tc.body)

			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test GetAuctionHandler
func TestGetAuctionHandler(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockSetup      func(m *MockBiddingServiceInterface)
		expectedStatus int
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success",
			path: "/auctions/2",
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().GetAuction(gomock.Any(), model.AuctionID(2)).Return(contestedAuction(), nil)
			},
			expectedStatus: http.StatusOK,
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, 2.0, data["id"])
				require.Equal(t, "11.00", data["current_price"])
				require.Equal(t, 1.0, data["winner_id"])
				require.Len(t, data["bids"], 2)
			},
		},
		{
			name:           "zero_id",
			path:           "/auctions/0",
			mockSetup:      func(*MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not_found",
			path: "/auctions/5",
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().GetAuction(gomock.Any(), model.AuctionID(5)).Return(nil, biddingerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService := newTestRouter(t)
			tc.mockSetup(mockService)

			status, resp := serve(t, router, http.MethodGet, tc.path, "")

			require.Equal(t, tc.expectedStatus, status)
			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test GetActiveAuctionsHandler
func TestGetActiveAuctionsHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Parallel()

		router, mockService := newTestRouter(t)
		mockService.EXPECT().GetActiveAuctions(gomock.Any()).Return([]*model.Auction{contestedAuction()}, nil)

		status, resp := serve(t, router, http.MethodGet, "/auctions", "")

		require.Equal(t, http.StatusOK, status)
		require.Len(t, resp["data"], 1)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		router, mockService := newTestRouter(t)
		mockService.EXPECT().GetActiveAuctions(gomock.Any()).Return(nil, nil)

		status, resp := serve(t, router, http.MethodGet, "/auctions", "")

		require.Equal(t, http.StatusOK, status)
		require.Equal(t, []any{}, resp["data"])
	})

	t.Run("service_error", func(t *testing.T) {
		t.Parallel()

		router, mockService := newTestRouter(t)
		mockService.EXPECT().GetActiveAuctions(gomock.Any()).Return(nil, errors.New("db failure"))

		status, resp := serve(t, router, http.MethodGet, "/auctions", "")

		require.Equal(t, http.StatusInternalServerError, status)
		require.Contains(t, resp["message"], "internal server error")
	})
}
